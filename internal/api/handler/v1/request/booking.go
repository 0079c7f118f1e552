package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateBookingRequest struct {
	HotelID    uint       `json:"hotel_id"`
	UserID     uint       `json:"user_id"`
	TicketID   *uint      `json:"ticket_id"`
	TravelDate *time.Time `json:"travel_date"`
}

func (req *CreateBookingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.HotelID, validation.Required),
		validation.Field(&req.UserID, validation.Required),
	)
}

type RescheduleBookingRequest struct {
	NewTravelDate time.Time `json:"new_travel_date"`
	Reason        string    `json:"reason"`
}

func (req *RescheduleBookingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.NewTravelDate, validation.Required),
		validation.Field(&req.Reason, validation.Length(0, 500)),
	)
}
