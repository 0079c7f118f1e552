package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrTicketFullyUsed = errors.New("ticket has already been fully used")
)

const statusRescheduled = "rescheduled"

type Booking struct {
	ID             uint  `gorm:"primaryKey"`
	HotelID        uint  `gorm:"not null"`
	UserID         uint
	TicketID       *uint `gorm:"index"`
	TravelDate     time.Time
	Price          float64 `gorm:"not null"`
	DiscountAmount float64 `gorm:"default:0"`
	FinalPrice     float64 `gorm:"default:0"`
	Status         string  `gorm:"not null;default:booking"`

	Hotel  Hotel   `gorm:"foreignKey:HotelID"`
	Ticket *Ticket `gorm:"foreignKey:TicketID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type BookingRescheduleLog struct {
	ID                 uint `gorm:"primaryKey"`
	BookingID          uint `gorm:"index;not null"`
	PreviousTravelDate time.Time
	NewTravelDate      time.Time
	Reason             string

	Booking Booking `gorm:"foreignKey:BookingID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type BookingDAO struct {
	db *gorm.DB
}

func NewBookingDAO(db *gorm.DB) *BookingDAO {
	return &BookingDAO{
		db: db,
	}
}

func (d *BookingDAO) List(ctx context.Context) ([]Booking, error) {
	var bookings []Booking

	result := d.db.WithContext(ctx).Find(&bookings)
	if result.Error != nil {
		return nil, result.Error
	}

	return bookings, nil
}

func (d *BookingDAO) FindByID(ctx context.Context, id uint) (Booking, error) {
	var booking Booking

	result := d.db.WithContext(ctx).First(&booking, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Booking{}, ErrBookingNotFound
		}

		return Booking{}, result.Error
	}

	return booking, nil
}

// Insert creates the booking. When a ticket is attached, the ticket row is
// locked FOR UPDATE and its used counter incremented in the same transaction,
// so concurrent bookings cannot push used past amount.
func (d *BookingDAO) Insert(ctx context.Context, booking Booking) (Booking, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if booking.TicketID != nil {
			var ticket Ticket

			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&ticket, *booking.TicketID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrTicketNotFound
				}

				return err
			}

			if ticket.Used >= ticket.Amount {
				return ErrTicketFullyUsed
			}

			if err = tx.Model(&ticket).Update("used", ticket.Used+1).Error; err != nil {
				return err
			}
		}

		return tx.Create(&booking).Error
	})
	if err != nil {
		return Booking{}, err
	}

	return booking, nil
}

func (d *BookingDAO) UpdateStatus(ctx context.Context, id uint, status string) (Booking, error) {
	result := d.db.WithContext(ctx).Model(&Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return Booking{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Booking{}, ErrBookingNotFound
	}

	return d.FindByID(ctx, id)
}

// Reschedule appends a reschedule log, moves the booking's travel date and
// marks the booking rescheduled, all in one transaction.
func (d *BookingDAO) Reschedule(ctx context.Context, bookingID uint, newTravelDate time.Time, reason string) (BookingRescheduleLog, error) {
	var log BookingRescheduleLog

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking Booking

		err := tx.First(&booking, bookingID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}

			return err
		}

		log = BookingRescheduleLog{
			BookingID:          booking.ID,
			PreviousTravelDate: booking.TravelDate,
			NewTravelDate:      newTravelDate,
			Reason:             reason,
		}
		if err = tx.Create(&log).Error; err != nil {
			return err
		}

		return tx.Model(&booking).Updates(map[string]interface{}{
			"travel_date": newTravelDate,
			"status":      statusRescheduled,
		}).Error
	})
	if err != nil {
		return BookingRescheduleLog{}, err
	}

	return log, nil
}

func (d *BookingDAO) ListRescheduleLogs(ctx context.Context) ([]BookingRescheduleLog, error) {
	var logs []BookingRescheduleLog

	result := d.db.WithContext(ctx).Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}

	return logs, nil
}

func (d *BookingDAO) FindRescheduleLogsByBookingID(ctx context.Context, bookingID uint) ([]BookingRescheduleLog, error) {
	var logs []BookingRescheduleLog

	result := d.db.WithContext(ctx).Where("booking_id = ?", bookingID).Find(&logs)
	if result.Error != nil {
		return nil, result.Error
	}

	return logs, nil
}
