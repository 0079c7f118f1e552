package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/travelothai/travelothai-api/internal/api/handler/v1/request"
	"github.com/travelothai/travelothai-api/internal/api/handler/v1/response"
	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/service"
)

type BookingService interface {
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	GetBooking(ctx context.Context, id uint) (domain.Booking, error)
	CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	CancelBooking(ctx context.Context, id uint) (domain.Booking, error)
	RescheduleBooking(ctx context.Context, bookingID uint, newTravelDate time.Time, reason string) (domain.BookingRescheduleLog, error)
	ListRescheduleLogs(ctx context.Context) ([]domain.BookingRescheduleLog, error)
	GetRescheduleLogs(ctx context.Context, bookingID uint) ([]domain.BookingRescheduleLog, error)
}

type BookingHandler struct {
	svc BookingService
}

func NewBookingHandler(svc BookingService) *BookingHandler {
	return &BookingHandler{
		svc: svc,
	}
}

// HandleListBookings godoc
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   domain.Booking
// @Failure      500  {object}  response.Err
// @Router       /bookings [get]
func (h *BookingHandler) HandleListBookings(ctx *gin.Context) {
	bookings, err := h.svc.ListBookings(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListBookings -> h.svc.ListBookings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, bookings)
}

// HandleGetBooking godoc
// @Summary      Get a booking by ID
// @Tags         bookings
// @Produce      json
// @Param        bookingID  path      int  true  "booking ID"
// @Success      200  {object}  domain.Booking
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /bookings/{bookingID} [get]
func (h *BookingHandler) HandleGetBooking(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "bookingID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	booking, err := h.svc.GetBooking(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Booking"))
			return
		}

		err = fmt.Errorf("v1.HandleGetBooking -> h.svc.GetBooking -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, booking)
}

// HandleCreateBooking godoc
// @Summary      Create a booking
// @Description  Prices the booking from the hotel; an attached ticket discounts it by its type's tax reduction and consumes one use.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateBookingRequest  true  "request body"
// @Success      201  {object}  domain.Booking
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /bookings [post]
func (h *BookingHandler) HandleCreateBooking(ctx *gin.Context) {
	var req request.CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	booking := domain.Booking{
		HotelID:  req.HotelID,
		UserID:   req.UserID,
		TicketID: req.TicketID,
	}
	if req.TravelDate != nil {
		booking.TravelDate = *req.TravelDate
	}

	created, err := h.svc.CreateBooking(ctx.Request.Context(), booking)
	if err != nil {
		if errors.Is(err, service.ErrHotelNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Hotel"))
			return
		}
		if errors.Is(err, service.ErrTicketNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Ticket"))
			return
		}
		if errors.Is(err, service.ErrTicketFullyUsed) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrTicketFullyUsed))
			return
		}

		err = fmt.Errorf("v1.HandleCreateBooking -> h.svc.CreateBooking -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleCancelBooking godoc
// @Summary      Cancel a booking
// @Tags         bookings
// @Produce      json
// @Param        bookingID  path      int  true  "booking ID"
// @Success      200  {object}  domain.Booking
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /bookings/{bookingID}/cancel [put]
func (h *BookingHandler) HandleCancelBooking(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "bookingID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	cancelled, err := h.svc.CancelBooking(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Booking"))
			return
		}

		err = fmt.Errorf("v1.HandleCancelBooking -> h.svc.CancelBooking -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, cancelled)
}

// HandleRescheduleBooking godoc
// @Summary      Reschedule a booking
// @Description  Moves the travel date and appends a reschedule log entry.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        bookingID  path      int  true  "booking ID"
// @Param        request  body      request.RescheduleBookingRequest  true  "request body"
// @Success      200  {boolean}  bool
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /bookings/{bookingID}/reschedule [post]
func (h *BookingHandler) HandleRescheduleBooking(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "bookingID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.RescheduleBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if _, err := h.svc.RescheduleBooking(ctx.Request.Context(), id, req.NewTravelDate, req.Reason); err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Booking"))
			return
		}

		err = fmt.Errorf("v1.HandleRescheduleBooking -> h.svc.RescheduleBooking -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, true)
}

// HandleListRescheduleLogs godoc
// @Summary      List all reschedule logs
// @Tags         bookings
// @Produce      json
// @Success      200  {array}   domain.BookingRescheduleLog
// @Failure      500  {object}  response.Err
// @Router       /bookings/reschedule-logs [get]
func (h *BookingHandler) HandleListRescheduleLogs(ctx *gin.Context) {
	logs, err := h.svc.ListRescheduleLogs(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListRescheduleLogs -> h.svc.ListRescheduleLogs -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, logs)
}

// HandleGetRescheduleLogs godoc
// @Summary      List reschedule logs for a booking
// @Tags         bookings
// @Produce      json
// @Param        bookingID  path      int  true  "booking ID"
// @Success      200  {array}   domain.BookingRescheduleLog
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /bookings/{bookingID}/reschedule-logs [get]
func (h *BookingHandler) HandleGetRescheduleLogs(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "bookingID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	logs, err := h.svc.GetRescheduleLogs(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Booking"))
			return
		}

		err = fmt.Errorf("v1.HandleGetRescheduleLogs -> h.svc.GetRescheduleLogs -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, logs)
}
