package domain

import "time"

type BookingStatus string

const (
	BookingStatusBooking     BookingStatus = "booking"
	BookingStatusRescheduled BookingStatus = "rescheduled"
	BookingStatusCancelled   BookingStatus = "cancelled"
)

type Booking struct {
	ID             uint          `json:"id"`
	HotelID        uint          `json:"hotel_id"`
	UserID         uint          `json:"user_id"`
	TicketID       *uint         `json:"ticket_id"`
	TravelDate     time.Time     `json:"travel_date"`
	Price          float64       `json:"price"`
	DiscountAmount float64       `json:"discount_amount"`
	FinalPrice     float64       `json:"final_price"`
	Status         BookingStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

type BookingRescheduleLog struct {
	ID                 uint      `json:"id"`
	BookingID          uint      `json:"booking_id"`
	PreviousTravelDate time.Time `json:"previous_travel_date"`
	NewTravelDate      time.Time `json:"new_travel_date"`
	Reason             string    `json:"reason"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
