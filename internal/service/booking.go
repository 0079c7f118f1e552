package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository"
)

var (
	ErrBookingNotFound = repository.ErrBookingNotFound
	ErrTicketFullyUsed = repository.ErrTicketFullyUsed
)

// Bookings default to a travel date one week out when none is given.
const defaultTravelLeadTime = 7 * 24 * time.Hour

type BookingRepository interface {
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id uint) (domain.Booking, error)
	Create(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	UpdateStatus(ctx context.Context, id uint, status domain.BookingStatus) (domain.Booking, error)
	Reschedule(ctx context.Context, bookingID uint, newTravelDate time.Time, reason string) (domain.BookingRescheduleLog, error)
	ListRescheduleLogs(ctx context.Context) ([]domain.BookingRescheduleLog, error)
	GetRescheduleLogsByBookingID(ctx context.Context, bookingID uint) ([]domain.BookingRescheduleLog, error)
}

type BookingService struct {
	repo       BookingRepository
	hotelRepo  HotelRepository
	ticketRepo TicketRepository
}

func NewBookingService(repo BookingRepository, hotelRepo HotelRepository, ticketRepo TicketRepository) *BookingService {
	return &BookingService{
		repo:       repo,
		hotelRepo:  hotelRepo,
		ticketRepo: ticketRepo,
	}
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return bookings, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id uint) (domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return domain.Booking{}, ErrBookingNotFound
		}

		return domain.Booking{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}

	return booking, nil
}

// CreateBooking prices the booking from the hotel and, when a ticket is
// attached, discounts it by the tax reduction of the ticket's type. The
// ticket's use counter moves together with the booking insert, so a fully
// used ticket can never be attached twice.
func (s *BookingService) CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, booking.HotelID)
	if err != nil {
		if errors.Is(err, ErrHotelNotFound) {
			return domain.Booking{}, ErrHotelNotFound
		}

		return domain.Booking{}, fmt.Errorf("s.hotelRepo.GetByID -> %w", err)
	}

	booking.Price = hotel.Price
	booking.DiscountAmount = 0

	if booking.TicketID != nil {
		ticket, err := s.ticketRepo.GetTicket(ctx, *booking.TicketID)
		if err != nil {
			if errors.Is(err, ErrTicketNotFound) {
				return domain.Booking{}, ErrTicketNotFound
			}

			return domain.Booking{}, fmt.Errorf("s.ticketRepo.GetTicket -> %w", err)
		}
		if ticket.Used >= ticket.Amount {
			return domain.Booking{}, ErrTicketFullyUsed
		}

		taxReduction, err := s.ticketRepo.GetTaxReductionByTypeID(ctx, ticket.TicketTypeID)
		if err != nil {
			return domain.Booking{}, fmt.Errorf("s.ticketRepo.GetTaxReductionByTypeID -> %w", err)
		}

		booking.DiscountAmount = hotel.Price * taxReduction
	}

	booking.FinalPrice = booking.Price - booking.DiscountAmount
	booking.Status = domain.BookingStatusBooking
	if booking.TravelDate.IsZero() {
		booking.TravelDate = time.Now().Add(defaultTravelLeadTime)
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, ErrTicketNotFound) {
			return domain.Booking{}, ErrTicketNotFound
		}
		if errors.Is(err, ErrTicketFullyUsed) {
			return domain.Booking{}, ErrTicketFullyUsed
		}

		return domain.Booking{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// CancelBooking flips the status and nothing else. Ticket uses already
// consumed by the booking stay consumed.
func (s *BookingService) CancelBooking(ctx context.Context, id uint) (domain.Booking, error) {
	cancelled, err := s.repo.UpdateStatus(ctx, id, domain.BookingStatusCancelled)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return domain.Booking{}, ErrBookingNotFound
		}

		return domain.Booking{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	return cancelled, nil
}

func (s *BookingService) RescheduleBooking(ctx context.Context, bookingID uint, newTravelDate time.Time, reason string) (domain.BookingRescheduleLog, error) {
	log, err := s.repo.Reschedule(ctx, bookingID, newTravelDate, reason)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return domain.BookingRescheduleLog{}, ErrBookingNotFound
		}

		return domain.BookingRescheduleLog{}, fmt.Errorf("s.repo.Reschedule -> %w", err)
	}

	return log, nil
}

func (s *BookingService) ListRescheduleLogs(ctx context.Context) ([]domain.BookingRescheduleLog, error) {
	logs, err := s.repo.ListRescheduleLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListRescheduleLogs -> %w", err)
	}

	return logs, nil
}

func (s *BookingService) GetRescheduleLogs(ctx context.Context, bookingID uint) ([]domain.BookingRescheduleLog, error) {
	if _, err := s.GetBooking(ctx, bookingID); err != nil {
		return nil, err
	}

	logs, err := s.repo.GetRescheduleLogsByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetRescheduleLogsByBookingID -> %w", err)
	}

	return logs, nil
}
