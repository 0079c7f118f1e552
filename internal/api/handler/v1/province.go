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

type ProvinceService interface {
	ListCategories(ctx context.Context) ([]domain.ProvinceCategory, error)
	GetCategory(ctx context.Context, id uint) (domain.ProvinceCategory, error)
	CreateCategory(ctx context.Context, category domain.ProvinceCategory) (domain.ProvinceCategory, error)
	UpdateCategory(ctx context.Context, category domain.ProvinceCategory) (domain.ProvinceCategory, error)
	DeleteCategory(ctx context.Context, id uint) error
	ListProvinces(ctx context.Context) ([]domain.Province, error)
	GetProvince(ctx context.Context, id uint) (domain.Province, error)
	CreateProvince(ctx context.Context, province domain.Province) (domain.Province, error)
	UpdateProvince(ctx context.Context, province domain.Province) (domain.Province, error)
	DeleteProvince(ctx context.Context, id uint) error
}

type ProvinceHandler struct {
	svc ProvinceService
}

func NewProvinceHandler(svc ProvinceService) *ProvinceHandler {
	return &ProvinceHandler{
		svc: svc,
	}
}

// HandleListCategories godoc
// @Summary      List province categories
// @Tags         provinces
// @Produce      json
// @Success      200  {array}   domain.ProvinceCategory
// @Failure      500  {object}  response.Err
// @Router       /provinces/categories [get]
func (h *ProvinceHandler) HandleListCategories(ctx *gin.Context) {
	categories, err := h.svc.ListCategories(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListCategories -> h.svc.ListCategories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, categories)
}

// HandleGetCategory godoc
// @Summary      Get a province category by ID
// @Tags         provinces
// @Produce      json
// @Param        categoryID  path      int  true  "category ID"
// @Success      200  {object}  domain.ProvinceCategory
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /provinces/categories/{categoryID} [get]
func (h *ProvinceHandler) HandleGetCategory(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "categoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	category, err := h.svc.GetCategory(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProvinceCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Province category"))
			return
		}

		err = fmt.Errorf("v1.HandleGetCategory -> h.svc.GetCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// HandleCreateCategory godoc
// @Summary      Create a province category
// @Tags         provinces
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateProvinceCategoryRequest  true  "request body"
// @Success      201  {object}  domain.ProvinceCategory
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /provinces/categories [post]
func (h *ProvinceHandler) HandleCreateCategory(ctx *gin.Context) {
	var req request.CreateProvinceCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateCategory(ctx.Request.Context(), domain.ProvinceCategory{
		Name: req.Name,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateCategory -> h.svc.CreateCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateCategory godoc
// @Summary      Update a province category
// @Tags         provinces
// @Accept       json
// @Produce      json
// @Param        categoryID  path      int  true  "category ID"
// @Param        request  body      request.UpdateProvinceCategoryRequest  true  "request body"
// @Success      200  {object}  domain.ProvinceCategory
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /provinces/categories/{categoryID} [put]
func (h *ProvinceHandler) HandleUpdateCategory(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "categoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateProvinceCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateCategory(ctx.Request.Context(), domain.ProvinceCategory{
		ID:   id,
		Name: req.Name,
	})
	if err != nil {
		if errors.Is(err, service.ErrProvinceCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Province category"))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateCategory -> h.svc.UpdateCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteCategory godoc
// @Summary      Delete a province category
// @Tags         provinces
// @Produce      json
// @Param        categoryID  path      int  true  "category ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /provinces/categories/{categoryID} [delete]
func (h *ProvinceHandler) HandleDeleteCategory(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "categoryID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteCategory(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProvinceCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Province category"))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteCategory -> h.svc.DeleteCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListProvinces godoc
// @Summary      List provinces
// @Tags         provinces
// @Produce      json
// @Success      200  {array}   domain.Province
// @Failure      500  {object}  response.Err
// @Router       /provinces [get]
func (h *ProvinceHandler) HandleListProvinces(ctx *gin.Context) {
	provinces, err := h.svc.ListProvinces(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListProvinces -> h.svc.ListProvinces -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, provinces)
}

// HandleGetProvince godoc
// @Summary      Get a province by ID
// @Tags         provinces
// @Produce      json
// @Param        provinceID  path      int  true  "province ID"
// @Success      200  {object}  domain.Province
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /provinces/{provinceID} [get]
func (h *ProvinceHandler) HandleGetProvince(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "provinceID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	province, err := h.svc.GetProvince(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProvinceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Province"))
			return
		}

		err = fmt.Errorf("v1.HandleGetProvince -> h.svc.GetProvince -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, province)
}

// HandleCreateProvince godoc
// @Summary      Create a province
// @Tags         provinces
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateProvinceRequest  true  "request body"
// @Success      201  {object}  domain.Province
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /provinces [post]
func (h *ProvinceHandler) HandleCreateProvince(ctx *gin.Context) {
	var req request.CreateProvinceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateProvince(ctx.Request.Context(), domain.Province{
		Name:       req.Name,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		if errors.Is(err, service.ErrProvinceCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Province category"))
			return
		}

		err = fmt.Errorf("v1.HandleCreateProvince -> h.svc.CreateProvince -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateProvince godoc
// @Summary      Update a province
// @Tags         provinces
// @Accept       json
// @Produce      json
// @Param        provinceID  path      int  true  "province ID"
// @Param        request  body      request.UpdateProvinceRequest  true  "request body"
// @Success      200  {object}  domain.Province
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /provinces/{provinceID} [put]
func (h *ProvinceHandler) HandleUpdateProvince(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "provinceID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateProvinceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateProvince(ctx.Request.Context(), domain.Province{
		ID:         id,
		Name:       req.Name,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		if errors.Is(err, service.ErrProvinceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Province"))
			return
		}
		if errors.Is(err, service.ErrProvinceCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Province category"))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateProvince -> h.svc.UpdateProvince -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteProvince godoc
// @Summary      Delete a province
// @Tags         provinces
// @Produce      json
// @Param        provinceID  path      int  true  "province ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /provinces/{provinceID} [delete]
func (h *ProvinceHandler) HandleDeleteProvince(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "provinceID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteProvince(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProvinceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Province"))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteProvince -> h.svc.DeleteProvince -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
