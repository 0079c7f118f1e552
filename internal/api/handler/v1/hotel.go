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

type HotelService interface {
	ListHotels(ctx context.Context) ([]domain.Hotel, error)
	GetHotel(ctx context.Context, id uint) (domain.Hotel, error)
	CreateHotel(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error)
	UpdateHotel(ctx context.Context, hotel domain.Hotel) (domain.Hotel, error)
	DeleteHotel(ctx context.Context, id uint) error
}

type HotelHandler struct {
	svc HotelService
}

func NewHotelHandler(svc HotelService) *HotelHandler {
	return &HotelHandler{
		svc: svc,
	}
}

// HandleListHotels godoc
// @Summary      List hotels
// @Tags         hotels
// @Produce      json
// @Success      200  {array}   domain.Hotel
// @Failure      500  {object}  response.Err
// @Router       /hotels [get]
func (h *HotelHandler) HandleListHotels(ctx *gin.Context) {
	hotels, err := h.svc.ListHotels(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListHotels -> h.svc.ListHotels -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, hotels)
}

// HandleGetHotel godoc
// @Summary      Get a hotel by ID
// @Tags         hotels
// @Produce      json
// @Param        hotelID  path      int  true  "hotel ID"
// @Success      200  {object}  domain.Hotel
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /hotels/{hotelID} [get]
func (h *HotelHandler) HandleGetHotel(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "hotelID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	hotel, err := h.svc.GetHotel(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrHotelNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Hotel"))
			return
		}

		err = fmt.Errorf("v1.HandleGetHotel -> h.svc.GetHotel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, hotel)
}

// HandleCreateHotel godoc
// @Summary      Create a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateHotelRequest  true  "request body"
// @Success      201  {object}  domain.Hotel
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /hotels [post]
func (h *HotelHandler) HandleCreateHotel(ctx *gin.Context) {
	var req request.CreateHotelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateHotel(ctx.Request.Context(), domain.Hotel{
		Name:       req.Name,
		ProvinceID: req.ProvinceID,
		Price:      req.Price,
	})
	if err != nil {
		if errors.Is(err, service.ErrProvinceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Province"))
			return
		}

		err = fmt.Errorf("v1.HandleCreateHotel -> h.svc.CreateHotel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateHotel godoc
// @Summary      Update a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Param        hotelID  path      int  true  "hotel ID"
// @Param        request  body      request.UpdateHotelRequest  true  "request body"
// @Success      200  {object}  domain.Hotel
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /hotels/{hotelID} [put]
func (h *HotelHandler) HandleUpdateHotel(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "hotelID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateHotelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateHotel(ctx.Request.Context(), domain.Hotel{
		ID:         id,
		Name:       req.Name,
		ProvinceID: req.ProvinceID,
		Price:      req.Price,
	})
	if err != nil {
		if errors.Is(err, service.ErrHotelNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Hotel"))
			return
		}
		if errors.Is(err, service.ErrProvinceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Province"))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateHotel -> h.svc.UpdateHotel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteHotel godoc
// @Summary      Delete a hotel
// @Tags         hotels
// @Produce      json
// @Param        hotelID  path      int  true  "hotel ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /hotels/{hotelID} [delete]
func (h *HotelHandler) HandleDeleteHotel(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "hotelID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteHotel(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrHotelNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Hotel"))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteHotel -> h.svc.DeleteHotel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
