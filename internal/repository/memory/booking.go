package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository"
)

type BookingRepository struct {
	mu sync.Mutex

	bookings   map[uint]domain.Booking
	logs       map[uint]domain.BookingRescheduleLog
	nextID     uint
	nextLogID  uint
	ticketRepo *TicketRepository
}

// NewBookingRepository shares the ticket repository so that inserting a
// booking and consuming a ticket use stay coupled, like the SQL transaction.
func NewBookingRepository(ticketRepo *TicketRepository) *BookingRepository {
	return &BookingRepository{
		bookings:   make(map[uint]domain.Booking),
		logs:       make(map[uint]domain.BookingRescheduleLog),
		nextID:     1,
		nextLogID:  1,
		ticketRepo: ticketRepo,
	}
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Booking, 0, len(r.bookings))
	for _, booking := range r.bookings {
		result = append(result, booking)
	}

	return result, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uint) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return domain.Booking{}, repository.ErrBookingNotFound
	}

	return booking, nil
}

func (r *BookingRepository) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	if booking.TicketID != nil {
		if err := r.ticketRepo.ConsumeTicketUse(*booking.TicketID); err != nil {
			return domain.Booking{}, fmt.Errorf("r.ticketRepo.ConsumeTicketUse -> %w", err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = r.nextID
	r.nextID++
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	r.bookings[booking.ID] = booking

	return booking, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uint, status domain.BookingStatus) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return domain.Booking{}, repository.ErrBookingNotFound
	}

	booking.Status = status
	booking.UpdatedAt = time.Now()
	r.bookings[booking.ID] = booking

	return booking, nil
}

func (r *BookingRepository) Reschedule(ctx context.Context, bookingID uint, newTravelDate time.Time, reason string) (domain.BookingRescheduleLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[bookingID]
	if !ok {
		return domain.BookingRescheduleLog{}, repository.ErrBookingNotFound
	}

	log := domain.BookingRescheduleLog{
		ID:                 r.nextLogID,
		BookingID:          booking.ID,
		PreviousTravelDate: booking.TravelDate,
		NewTravelDate:      newTravelDate,
		Reason:             reason,
		CreatedAt:          time.Now(),
	}
	log.UpdatedAt = log.CreatedAt
	r.nextLogID++
	r.logs[log.ID] = log

	booking.TravelDate = newTravelDate
	booking.Status = domain.BookingStatusRescheduled
	booking.UpdatedAt = time.Now()
	r.bookings[booking.ID] = booking

	return log, nil
}

func (r *BookingRepository) ListRescheduleLogs(ctx context.Context) ([]domain.BookingRescheduleLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.BookingRescheduleLog, 0, len(r.logs))
	for _, log := range r.logs {
		result = append(result, log)
	}

	return result, nil
}

func (r *BookingRepository) GetRescheduleLogsByBookingID(ctx context.Context, bookingID uint) ([]domain.BookingRescheduleLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []domain.BookingRescheduleLog
	for _, log := range r.logs {
		if log.BookingID == bookingID {
			result = append(result, log)
		}
	}

	return result, nil
}
