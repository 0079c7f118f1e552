package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository/dao"
)

var (
	ErrBookingNotFound = dao.ErrBookingNotFound
	ErrTicketFullyUsed = dao.ErrTicketFullyUsed
)

type BookingDAO interface {
	List(ctx context.Context) ([]dao.Booking, error)
	FindByID(ctx context.Context, id uint) (dao.Booking, error)
	Insert(ctx context.Context, booking dao.Booking) (dao.Booking, error)
	UpdateStatus(ctx context.Context, id uint, status string) (dao.Booking, error)
	Reschedule(ctx context.Context, bookingID uint, newTravelDate time.Time, reason string) (dao.BookingRescheduleLog, error)
	ListRescheduleLogs(ctx context.Context) ([]dao.BookingRescheduleLog, error)
	FindRescheduleLogsByBookingID(ctx context.Context, bookingID uint) ([]dao.BookingRescheduleLog, error)
}

type BookingRepository struct {
	dao BookingDAO
}

func NewBookingRepository(dao BookingDAO) *BookingRepository {
	return &BookingRepository{
		dao: dao,
	}
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	result := make([]domain.Booking, len(bookings))
	for i, booking := range bookings {
		result[i] = r.daoToDomain(booking)
	}

	return result, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uint) (domain.Booking, error) {
	booking, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(booking), nil
}

func (r *BookingRepository) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(booking))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uint, status domain.BookingStatus) (domain.Booking, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, string(status))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *BookingRepository) Reschedule(ctx context.Context, bookingID uint, newTravelDate time.Time, reason string) (domain.BookingRescheduleLog, error) {
	log, err := r.dao.Reschedule(ctx, bookingID, newTravelDate, reason)
	if err != nil {
		return domain.BookingRescheduleLog{}, fmt.Errorf("r.dao.Reschedule -> %w", err)
	}

	return r.logDaoToDomain(log), nil
}

func (r *BookingRepository) ListRescheduleLogs(ctx context.Context) ([]domain.BookingRescheduleLog, error) {
	logs, err := r.dao.ListRescheduleLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListRescheduleLogs -> %w", err)
	}

	result := make([]domain.BookingRescheduleLog, len(logs))
	for i, log := range logs {
		result[i] = r.logDaoToDomain(log)
	}

	return result, nil
}

func (r *BookingRepository) GetRescheduleLogsByBookingID(ctx context.Context, bookingID uint) ([]domain.BookingRescheduleLog, error) {
	logs, err := r.dao.FindRescheduleLogsByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRescheduleLogsByBookingID -> %w", err)
	}

	result := make([]domain.BookingRescheduleLog, len(logs))
	for i, log := range logs {
		result[i] = r.logDaoToDomain(log)
	}

	return result, nil
}

func (r *BookingRepository) domainToDao(b domain.Booking) dao.Booking {
	return dao.Booking{
		ID:             b.ID,
		HotelID:        b.HotelID,
		UserID:         b.UserID,
		TicketID:       b.TicketID,
		TravelDate:     b.TravelDate,
		Price:          b.Price,
		DiscountAmount: b.DiscountAmount,
		FinalPrice:     b.FinalPrice,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (r *BookingRepository) daoToDomain(b dao.Booking) domain.Booking {
	return domain.Booking{
		ID:             b.ID,
		HotelID:        b.HotelID,
		UserID:         b.UserID,
		TicketID:       b.TicketID,
		TravelDate:     b.TravelDate,
		Price:          b.Price,
		DiscountAmount: b.DiscountAmount,
		FinalPrice:     b.FinalPrice,
		Status:         domain.BookingStatus(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (r *BookingRepository) logDaoToDomain(l dao.BookingRescheduleLog) domain.BookingRescheduleLog {
	return domain.BookingRescheduleLog{
		ID:                 l.ID,
		BookingID:          l.BookingID,
		PreviousTravelDate: l.PreviousTravelDate,
		NewTravelDate:      l.NewTravelDate,
		Reason:             l.Reason,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
}
