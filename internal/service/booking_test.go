package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository/memory"
	"github.com/travelothai/travelothai-api/internal/service"
)

type bookingFixture struct {
	svc        *service.BookingService
	hotelRepo  *memory.HotelRepository
	ticketRepo *memory.TicketRepository
}

func newBookingFixture(t *testing.T) bookingFixture {
	t.Helper()

	hotelRepo := memory.NewHotelRepository()
	ticketRepo := memory.NewTicketRepository()
	bookingRepo := memory.NewBookingRepository(ticketRepo)

	return bookingFixture{
		svc:        service.NewBookingService(bookingRepo, hotelRepo, ticketRepo),
		hotelRepo:  hotelRepo,
		ticketRepo: ticketRepo,
	}
}

func (f bookingFixture) createHotel(t *testing.T, price float64) domain.Hotel {
	t.Helper()

	hotel, err := f.hotelRepo.Create(context.Background(), domain.Hotel{
		Name:       "Riverside",
		ProvinceID: 1,
		Price:      price,
	})
	require.NoError(t, err)

	return hotel
}

// createDiscountTicket sets up a ticket type with a usage rule carrying the
// given tax reduction and returns a ticket of that type with the given number
// of uses.
func (f bookingFixture) createDiscountTicket(t *testing.T, taxReduction float64, amount int) domain.Ticket {
	t.Helper()
	ctx := context.Background()

	ticketType, err := f.ticketRepo.CreateType(ctx, domain.TicketType{Name: "Voucher"})
	require.NoError(t, err)

	_, err = f.ticketRepo.CreateUsageRule(ctx, domain.TicketUsageRule{
		TicketTypeID: ticketType.ID,
		CategoryID:   1,
		Allowance:    true,
		TaxReduction: taxReduction,
	})
	require.NoError(t, err)

	ticket, err := f.ticketRepo.CreateTicket(ctx, domain.Ticket{
		TicketTypeID: ticketType.ID,
		Amount:       amount,
		ExpiresAt:    time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	return ticket
}

func TestCreateBookingPricesFromHotel(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	hotel := f.createHotel(t, 1500)

	before := time.Now()
	booking, err := f.svc.CreateBooking(ctx, domain.Booking{
		HotelID: hotel.ID,
		UserID:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, 1500.0, booking.Price)
	assert.Equal(t, 0.0, booking.DiscountAmount)
	assert.Equal(t, 1500.0, booking.FinalPrice)
	assert.Equal(t, domain.BookingStatusBooking, booking.Status)

	// No travel date given, so it defaults to a week out.
	wantDate := before.Add(7 * 24 * time.Hour)
	assert.WithinDuration(t, wantDate, booking.TravelDate, time.Minute)
}

func TestCreateBookingUnknownHotel(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.CreateBooking(context.Background(), domain.Booking{HotelID: 42, UserID: 1})
	assert.ErrorIs(t, err, service.ErrHotelNotFound)
}

func TestCreateBookingAppliesTicketDiscount(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	hotel := f.createHotel(t, 1000)
	ticket := f.createDiscountTicket(t, 0.1, 2)

	booking, err := f.svc.CreateBooking(ctx, domain.Booking{
		HotelID:  hotel.ID,
		UserID:   1,
		TicketID: &ticket.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, booking.Price)
	assert.Equal(t, 100.0, booking.DiscountAmount)
	assert.Equal(t, 900.0, booking.FinalPrice)

	after, err := f.ticketRepo.GetTicket(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, after.Used)
}

func TestCreateBookingExhaustsTicketUses(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	hotel := f.createHotel(t, 800)
	ticket := f.createDiscountTicket(t, 0.2, 2)

	for i := 0; i < 2; i++ {
		_, err := f.svc.CreateBooking(ctx, domain.Booking{
			HotelID:  hotel.ID,
			UserID:   1,
			TicketID: &ticket.ID,
		})
		require.NoError(t, err)
	}

	_, err := f.svc.CreateBooking(ctx, domain.Booking{
		HotelID:  hotel.ID,
		UserID:   1,
		TicketID: &ticket.ID,
	})
	assert.ErrorIs(t, err, service.ErrTicketFullyUsed)

	after, err := f.ticketRepo.GetTicket(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, after.Used)
}

func TestCreateBookingUnknownTicket(t *testing.T) {
	f := newBookingFixture(t)

	hotel := f.createHotel(t, 500)
	missing := uint(42)

	_, err := f.svc.CreateBooking(context.Background(), domain.Booking{
		HotelID:  hotel.ID,
		UserID:   1,
		TicketID: &missing,
	})
	assert.ErrorIs(t, err, service.ErrTicketNotFound)
}

func TestCancelBookingFlipsStatusOnly(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	hotel := f.createHotel(t, 1200)
	booking, err := f.svc.CreateBooking(ctx, domain.Booking{HotelID: hotel.ID, UserID: 1})
	require.NoError(t, err)

	cancelled, err := f.svc.CancelBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, booking.TravelDate, cancelled.TravelDate)
	assert.Equal(t, booking.FinalPrice, cancelled.FinalPrice)

	_, err = f.svc.CancelBooking(ctx, 99)
	assert.ErrorIs(t, err, service.ErrBookingNotFound)
}

func TestRescheduleBookingWritesLog(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	hotel := f.createHotel(t, 900)
	originalDate := time.Now().AddDate(0, 0, 14).Truncate(time.Second)
	booking, err := f.svc.CreateBooking(ctx, domain.Booking{
		HotelID:    hotel.ID,
		UserID:     1,
		TravelDate: originalDate,
	})
	require.NoError(t, err)

	newDate := originalDate.AddDate(0, 0, 7)
	log, err := f.svc.RescheduleBooking(ctx, booking.ID, newDate, "typhoon warning")
	require.NoError(t, err)
	assert.Equal(t, booking.ID, log.BookingID)
	assert.Equal(t, originalDate, log.PreviousTravelDate)
	assert.Equal(t, newDate, log.NewTravelDate)
	assert.Equal(t, "typhoon warning", log.Reason)

	after, err := f.svc.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRescheduled, after.Status)
	assert.Equal(t, newDate, after.TravelDate)

	logs, err := f.svc.GetRescheduleLogs(ctx, booking.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, log.ID, logs[0].ID)
}

func TestRescheduleLogsUnknownBooking(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.svc.RescheduleBooking(context.Background(), 42, time.Now(), "")
	assert.ErrorIs(t, err, service.ErrBookingNotFound)

	_, err = f.svc.GetRescheduleLogs(context.Background(), 42)
	assert.ErrorIs(t, err, service.ErrBookingNotFound)
}
