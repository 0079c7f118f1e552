package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/travelothai/travelothai-api/internal/api/handler/v1/request"
	"github.com/travelothai/travelothai-api/internal/api/handler/v1/response"
	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/service"
)

type TicketService interface {
	ListTicketTypes(ctx context.Context) ([]domain.TicketType, error)
	GetTicketType(ctx context.Context, id uint) (domain.TicketType, error)
	CreateTicketType(ctx context.Context, ticketType domain.TicketType) (domain.TicketType, error)
	UpdateTicketType(ctx context.Context, ticketType domain.TicketType) (domain.TicketType, error)
	DeleteTicketType(ctx context.Context, id uint) error
	ListUsageRules(ctx context.Context) ([]domain.TicketUsageRule, error)
	GetUsageRule(ctx context.Context, id uint) (domain.TicketUsageRule, error)
	CreateUsageRule(ctx context.Context, rule domain.TicketUsageRule) (domain.TicketUsageRule, error)
	UpdateUsageRule(ctx context.Context, rule domain.TicketUsageRule) (domain.TicketUsageRule, error)
	DeleteUsageRule(ctx context.Context, id uint) error
	ListTickets(ctx context.Context) ([]domain.Ticket, error)
	GetTicket(ctx context.Context, id uint) (domain.Ticket, error)
	CreateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	UpdateTicket(ctx context.Context, ticket domain.Ticket) (domain.Ticket, error)
	CollectTicket(ctx context.Context, id uint) (domain.Ticket, error)
	DeleteTicket(ctx context.Context, id uint) error
	ListCampaigns(ctx context.Context) ([]domain.TicketCampaign, error)
	GetCampaign(ctx context.Context, id uint) (domain.TicketCampaign, error)
	CreateCampaign(ctx context.Context, campaign domain.TicketCampaign) (domain.TicketCampaign, error)
	UpdateCampaign(ctx context.Context, campaign domain.TicketCampaign) (domain.TicketCampaign, error)
	DeleteCampaign(ctx context.Context, id uint) error
	RegisterCampaign(ctx context.Context, campaignID uint) error
	ToggleCampaignActive(ctx context.Context, campaignID uint) (domain.TicketCampaign, error)
	ListCampaignTicketTypes(ctx context.Context) ([]domain.TicketCampaignTicketType, error)
	GetCampaignTicketType(ctx context.Context, id uint) (domain.TicketCampaignTicketType, error)
	CreateCampaignTicketType(ctx context.Context, binding domain.TicketCampaignTicketType) (domain.TicketCampaignTicketType, error)
	UpdateCampaignTicketType(ctx context.Context, binding domain.TicketCampaignTicketType) (domain.TicketCampaignTicketType, error)
	DeleteCampaignTicketType(ctx context.Context, id uint) error
}

type TicketHandler struct {
	svc TicketService
}

func NewTicketHandler(svc TicketService) *TicketHandler {
	return &TicketHandler{
		svc: svc,
	}
}

// Ticket types.

// HandleListTicketTypes godoc
// @Summary      List ticket types
// @Tags         tickets
// @Produce      json
// @Success      200  {array}   domain.TicketType
// @Failure      500  {object}  response.Err
// @Router       /tickets/types [get]
func (h *TicketHandler) HandleListTicketTypes(ctx *gin.Context) {
	types, err := h.svc.ListTicketTypes(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListTicketTypes -> h.svc.ListTicketTypes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, types)
}

// HandleGetTicketType godoc
// @Summary      Get a ticket type by ID
// @Tags         tickets
// @Produce      json
// @Param        typeID  path      int  true  "ticket type ID"
// @Success      200  {object}  domain.TicketType
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/types/{typeID} [get]
func (h *TicketHandler) HandleGetTicketType(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "typeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ticketType, err := h.svc.GetTicketType(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTicketTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Ticket type"))
			return
		}

		err = fmt.Errorf("v1.HandleGetTicketType -> h.svc.GetTicketType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, ticketType)
}

// HandleCreateTicketType godoc
// @Summary      Create a ticket type
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        request  body      request.TicketTypeRequest  true  "request body"
// @Success      201  {object}  domain.TicketType
// @Failure      400  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/types [post]
func (h *TicketHandler) HandleCreateTicketType(ctx *gin.Context) {
	var req request.TicketTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateTicketType(ctx.Request.Context(), domain.TicketType{
		Name: req.Name,
	})
	if err != nil {
		if errors.Is(err, service.ErrTicketTypeNameTaken) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrTicketTypeNameTaken))
			return
		}

		err = fmt.Errorf("v1.HandleCreateTicketType -> h.svc.CreateTicketType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateTicketType godoc
// @Summary      Update a ticket type
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        typeID  path      int  true  "ticket type ID"
// @Param        request  body      request.TicketTypeRequest  true  "request body"
// @Success      200  {object}  domain.TicketType
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/types/{typeID} [put]
func (h *TicketHandler) HandleUpdateTicketType(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "typeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.TicketTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateTicketType(ctx.Request.Context(), domain.TicketType{
		ID:   id,
		Name: req.Name,
	})
	if err != nil {
		if errors.Is(err, service.ErrTicketTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Ticket type"))
			return
		}
		if errors.Is(err, service.ErrTicketTypeNameTaken) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrTicketTypeNameTaken))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateTicketType -> h.svc.UpdateTicketType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteTicketType godoc
// @Summary      Delete a ticket type
// @Tags         tickets
// @Produce      json
// @Param        typeID  path      int  true  "ticket type ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/types/{typeID} [delete]
func (h *TicketHandler) HandleDeleteTicketType(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "typeID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteTicketType(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTicketTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Ticket type"))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteTicketType -> h.svc.DeleteTicketType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Usage rules.

// HandleListUsageRules godoc
// @Summary      List ticket usage rules
// @Tags         tickets
// @Produce      json
// @Success      200  {array}   domain.TicketUsageRule
// @Failure      500  {object}  response.Err
// @Router       /tickets/usage-rules [get]
func (h *TicketHandler) HandleListUsageRules(ctx *gin.Context) {
	rules, err := h.svc.ListUsageRules(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListUsageRules -> h.svc.ListUsageRules -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, rules)
}

// HandleGetUsageRule godoc
// @Summary      Get a ticket usage rule by ID
// @Tags         tickets
// @Produce      json
// @Param        ruleID  path      int  true  "usage rule ID"
// @Success      200  {object}  domain.TicketUsageRule
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/usage-rules/{ruleID} [get]
func (h *TicketHandler) HandleGetUsageRule(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "ruleID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	rule, err := h.svc.GetUsageRule(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTicketUsageRuleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Ticket usage rule"))
			return
		}

		err = fmt.Errorf("v1.HandleGetUsageRule -> h.svc.GetUsageRule -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, rule)
}

// HandleCreateUsageRule godoc
// @Summary      Create a ticket usage rule
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        request  body      request.TicketUsageRuleRequest  true  "request body"
// @Success      201  {object}  domain.TicketUsageRule
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/usage-rules [post]
func (h *TicketHandler) HandleCreateUsageRule(ctx *gin.Context) {
	var req request.TicketUsageRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateUsageRule(ctx.Request.Context(), domain.TicketUsageRule{
		TicketTypeID: req.TicketTypeID,
		CategoryID:   req.CategoryID,
		Allowance:    req.Allowance,
		TaxReduction: req.TaxReduction,
	})
	if err != nil {
		if errors.Is(err, service.ErrTicketTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Ticket type"))
			return
		}
		if errors.Is(err, service.ErrProvinceCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Province category"))
			return
		}

		err = fmt.Errorf("v1.HandleCreateUsageRule -> h.svc.CreateUsageRule -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateUsageRule godoc
// @Summary      Update a ticket usage rule
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        ruleID  path      int  true  "usage rule ID"
// @Param        request  body      request.TicketUsageRuleRequest  true  "request body"
// @Success      200  {object}  domain.TicketUsageRule
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/usage-rules/{ruleID} [put]
func (h *TicketHandler) HandleUpdateUsageRule(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "ruleID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.TicketUsageRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateUsageRule(ctx.Request.Context(), domain.TicketUsageRule{
		ID:           id,
		TicketTypeID: req.TicketTypeID,
		CategoryID:   req.CategoryID,
		Allowance:    req.Allowance,
		TaxReduction: req.TaxReduction,
	})
	if err != nil {
		if errors.Is(err, service.ErrTicketUsageRuleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Ticket usage rule"))
			return
		}
		if errors.Is(err, service.ErrTicketTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Ticket type"))
			return
		}
		if errors.Is(err, service.ErrProvinceCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Province category"))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateUsageRule -> h.svc.UpdateUsageRule -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteUsageRule godoc
// @Summary      Delete a ticket usage rule
// @Tags         tickets
// @Produce      json
// @Param        ruleID  path      int  true  "usage rule ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/usage-rules/{ruleID} [delete]
func (h *TicketHandler) HandleDeleteUsageRule(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "ruleID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteUsageRule(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTicketUsageRuleNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Ticket usage rule"))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteUsageRule -> h.svc.DeleteUsageRule -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Campaigns.

// HandleListCampaigns godoc
// @Summary      List ticket campaigns
// @Tags         tickets
// @Produce      json
// @Success      200  {array}   domain.TicketCampaign
// @Failure      500  {object}  response.Err
// @Router       /tickets/campaigns [get]
func (h *TicketHandler) HandleListCampaigns(ctx *gin.Context) {
	campaigns, err := h.svc.ListCampaigns(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListCampaigns -> h.svc.ListCampaigns -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, campaigns)
}

// HandleGetCampaign godoc
// @Summary      Get a ticket campaign by ID
// @Tags         tickets
// @Produce      json
// @Param        campaignID  path      int  true  "campaign ID"
// @Success      200  {object}  domain.TicketCampaign
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/campaigns/{campaignID} [get]
func (h *TicketHandler) HandleGetCampaign(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "campaignID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	campaign, err := h.svc.GetCampaign(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Campaign"))
			return
		}

		err = fmt.Errorf("v1.HandleGetCampaign -> h.svc.GetCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, campaign)
}

// HandleCreateCampaign godoc
// @Summary      Create a ticket campaign
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        request  body      request.TicketCampaignRequest  true  "request body"
// @Success      201  {object}  domain.TicketCampaign
// @Failure      400  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/campaigns [post]
func (h *TicketHandler) HandleCreateCampaign(ctx *gin.Context) {
	var req request.TicketCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateCampaign(ctx.Request.Context(), domain.TicketCampaign{
		Name:      req.Name,
		Limit:     req.Limit,
		IsActive:  true,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		if errors.Is(err, service.ErrCampaignNameTaken) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrCampaignNameTaken))
			return
		}

		err = fmt.Errorf("v1.HandleCreateCampaign -> h.svc.CreateCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateCampaign godoc
// @Summary      Update a ticket campaign
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        campaignID  path      int  true  "campaign ID"
// @Param        request  body      request.TicketCampaignRequest  true  "request body"
// @Success      200  {object}  domain.TicketCampaign
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/campaigns/{campaignID} [put]
func (h *TicketHandler) HandleUpdateCampaign(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "campaignID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.TicketCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateCampaign(ctx.Request.Context(), domain.TicketCampaign{
		ID:        id,
		Name:      req.Name,
		Limit:     req.Limit,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Campaign"))
			return
		}
		if errors.Is(err, service.ErrCampaignNameTaken) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrCampaignNameTaken))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateCampaign -> h.svc.UpdateCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteCampaign godoc
// @Summary      Delete a ticket campaign
// @Tags         tickets
// @Produce      json
// @Param        campaignID  path      int  true  "campaign ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/campaigns/{campaignID} [delete]
func (h *TicketHandler) HandleDeleteCampaign(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "campaignID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteCampaign(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Campaign"))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteCampaign -> h.svc.DeleteCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleRegisterCampaign godoc
// @Summary      Register for a ticket campaign
// @Description  Consumes one registration slot and issues one unassigned ticket per bound ticket type.
// @Tags         tickets
// @Produce      json
// @Param        campaignID  path      int  true  "campaign ID"
// @Success      200  {boolean}  bool
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/campaigns/register/{campaignID} [post]
func (h *TicketHandler) HandleRegisterCampaign(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "campaignID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.RegisterCampaign(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Campaign"))
			return
		}
		if errors.Is(err, service.ErrCampaignLimitExceeded) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrCampaignLimitExceeded))
			return
		}

		err = fmt.Errorf("v1.HandleRegisterCampaign -> h.svc.RegisterCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, true)
}

// HandleToggleCampaignActive godoc
// @Summary      Toggle a ticket campaign's active flag
// @Tags         tickets
// @Produce      json
// @Param        campaignID  path      int  true  "campaign ID"
// @Success      200  {boolean}  bool
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/campaigns/is-active/{campaignID} [put]
func (h *TicketHandler) HandleToggleCampaignActive(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "campaignID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if _, err := h.svc.ToggleCampaignActive(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Campaign"))
			return
		}

		err = fmt.Errorf("v1.HandleToggleCampaignActive -> h.svc.ToggleCampaignActive -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, true)
}

// Campaign ticket-type bindings.

// HandleListCampaignTicketTypes godoc
// @Summary      List campaign ticket-type bindings
// @Tags         tickets
// @Produce      json
// @Success      200  {array}   domain.TicketCampaignTicketType
// @Failure      500  {object}  response.Err
// @Router       /tickets/campaigns/ticket-types [get]
func (h *TicketHandler) HandleListCampaignTicketTypes(ctx *gin.Context) {
	bindings, err := h.svc.ListCampaignTicketTypes(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListCampaignTicketTypes -> h.svc.ListCampaignTicketTypes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, bindings)
}

// HandleGetCampaignTicketType godoc
// @Summary      Get a campaign ticket-type binding by ID
// @Tags         tickets
// @Produce      json
// @Param        bindingID  path      int  true  "binding ID"
// @Success      200  {object}  domain.TicketCampaignTicketType
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/campaigns/ticket-types/{bindingID} [get]
func (h *TicketHandler) HandleGetCampaignTicketType(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "bindingID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	binding, err := h.svc.GetCampaignTicketType(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCampaignTicketTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Campaign ticket type"))
			return
		}

		err = fmt.Errorf("v1.HandleGetCampaignTicketType -> h.svc.GetCampaignTicketType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, binding)
}

// HandleCreateCampaignTicketType godoc
// @Summary      Bind a ticket type to a campaign
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        request  body      request.TicketCampaignTicketTypeRequest  true  "request body"
// @Success      201  {object}  domain.TicketCampaignTicketType
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/campaigns/ticket-types [post]
func (h *TicketHandler) HandleCreateCampaignTicketType(ctx *gin.Context) {
	var req request.TicketCampaignTicketTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateCampaignTicketType(ctx.Request.Context(), domain.TicketCampaignTicketType{
		CampaignID:     req.CampaignID,
		TicketTypeID:   req.TicketTypeID,
		Amount:         req.Amount,
		ExpirationDate: req.ExpirationDate,
	})
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Campaign"))
			return
		}
		if errors.Is(err, service.ErrTicketTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Ticket type"))
			return
		}

		err = fmt.Errorf("v1.HandleCreateCampaignTicketType -> h.svc.CreateCampaignTicketType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateCampaignTicketType godoc
// @Summary      Update a campaign ticket-type binding
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        bindingID  path      int  true  "binding ID"
// @Param        request  body      request.TicketCampaignTicketTypeRequest  true  "request body"
// @Success      200  {object}  domain.TicketCampaignTicketType
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/campaigns/ticket-types/{bindingID} [put]
func (h *TicketHandler) HandleUpdateCampaignTicketType(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "bindingID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.TicketCampaignTicketTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateCampaignTicketType(ctx.Request.Context(), domain.TicketCampaignTicketType{
		ID:             id,
		CampaignID:     req.CampaignID,
		TicketTypeID:   req.TicketTypeID,
		Amount:         req.Amount,
		ExpirationDate: req.ExpirationDate,
	})
	if err != nil {
		if errors.Is(err, service.ErrCampaignTicketTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Campaign ticket type"))
			return
		}
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Campaign"))
			return
		}
		if errors.Is(err, service.ErrTicketTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Ticket type"))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateCampaignTicketType -> h.svc.UpdateCampaignTicketType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteCampaignTicketType godoc
// @Summary      Delete a campaign ticket-type binding
// @Tags         tickets
// @Produce      json
// @Param        bindingID  path      int  true  "binding ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/campaigns/ticket-types/{bindingID} [delete]
func (h *TicketHandler) HandleDeleteCampaignTicketType(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "bindingID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteCampaignTicketType(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCampaignTicketTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Campaign ticket type"))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteCampaignTicketType -> h.svc.DeleteCampaignTicketType -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Tickets.

// HandleListTickets godoc
// @Summary      List tickets
// @Tags         tickets
// @Produce      json
// @Success      200  {array}   domain.Ticket
// @Failure      500  {object}  response.Err
// @Router       /tickets [get]
func (h *TicketHandler) HandleListTickets(ctx *gin.Context) {
	tickets, err := h.svc.ListTickets(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListTickets -> h.svc.ListTickets -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tickets)
}

// HandleGetTicket godoc
// @Summary      Get a ticket by ID
// @Tags         tickets
// @Produce      json
// @Param        ticketID  path      int  true  "ticket ID"
// @Success      200  {object}  domain.Ticket
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/{ticketID} [get]
func (h *TicketHandler) HandleGetTicket(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "ticketID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ticket, err := h.svc.GetTicket(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Ticket"))
			return
		}

		err = fmt.Errorf("v1.HandleGetTicket -> h.svc.GetTicket -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, ticket)
}

// HandleCreateTicket godoc
// @Summary      Create a ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        request  body      request.TicketRequest  true  "request body"
// @Success      201  {object}  domain.Ticket
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets [post]
func (h *TicketHandler) HandleCreateTicket(ctx *gin.Context) {
	var req request.TicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateTicket(ctx.Request.Context(), domain.Ticket{
		UserID:       req.UserID,
		TicketTypeID: req.TicketTypeID,
		CampaignID:   req.CampaignID,
		Amount:       req.Amount,
		ExpiresAt:    req.ExpiresAt,
	})
	if err != nil {
		if errors.Is(err, service.ErrTicketTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Ticket type"))
			return
		}

		err = fmt.Errorf("v1.HandleCreateTicket -> h.svc.CreateTicket -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateTicket godoc
// @Summary      Update a ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        ticketID  path      int  true  "ticket ID"
// @Param        request  body      request.TicketRequest  true  "request body"
// @Success      200  {object}  domain.Ticket
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/{ticketID} [put]
func (h *TicketHandler) HandleUpdateTicket(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "ticketID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.TicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateTicket(ctx.Request.Context(), domain.Ticket{
		ID:           id,
		UserID:       req.UserID,
		TicketTypeID: req.TicketTypeID,
		CampaignID:   req.CampaignID,
		Amount:       req.Amount,
		ExpiresAt:    req.ExpiresAt,
	})
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Ticket"))
			return
		}
		if errors.Is(err, service.ErrTicketTypeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Ticket type"))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateTicket -> h.svc.UpdateTicket -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleCollectTicket godoc
// @Summary      Collect a ticket back from its traveler
// @Description  Clears the ticket's traveler, returning it to the unassigned pool. Idempotent.
// @Tags         tickets
// @Produce      json
// @Param        ticketID  path      int  true  "ticket ID"
// @Success      200  {object}  domain.Ticket
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/{ticketID}/traveler [put]
func (h *TicketHandler) HandleCollectTicket(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "ticketID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	collected, err := h.svc.CollectTicket(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Ticket"))
			return
		}

		err = fmt.Errorf("v1.HandleCollectTicket -> h.svc.CollectTicket -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, collected)
}

// HandleDeleteTicket godoc
// @Summary      Delete a ticket
// @Tags         tickets
// @Produce      json
// @Param        ticketID  path      int  true  "ticket ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /tickets/{ticketID} [delete]
func (h *TicketHandler) HandleDeleteTicket(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "ticketID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteTicket(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Ticket"))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteTicket -> h.svc.DeleteTicket -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
