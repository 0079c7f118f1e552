package dao_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/travelothai/travelothai-api/internal/repository/dao"
)

// insertHotel seeds the category -> province -> hotel chain the booking FKs
// need and returns the hotel.
func insertHotel(t *testing.T, db *gorm.DB) dao.Hotel {
	t.Helper()
	ctx := context.Background()

	category, err := dao.NewProvinceDAO(db).InsertCategory(ctx, dao.ProvinceCategory{Name: "Beach"})
	require.NoError(t, err)

	province, err := dao.NewProvinceDAO(db).Insert(ctx, dao.Province{Name: "Phuket", CategoryID: category.ID})
	require.NoError(t, err)

	hotel, err := dao.NewHotelDAO(db).Insert(ctx, dao.Hotel{Name: "Riverside", ProvinceID: province.ID, Price: 1000})
	require.NoError(t, err)

	return hotel
}

func TestRescheduleMarksBookingRescheduled(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := startPostgres(t)
	bookingDAO := dao.NewBookingDAO(db)
	ctx := context.Background()

	hotel := insertHotel(t, db)

	originalDate := time.Now().AddDate(0, 0, 14).UTC().Truncate(time.Second)
	booking, err := bookingDAO.Insert(ctx, dao.Booking{
		HotelID:    hotel.ID,
		UserID:     1,
		TravelDate: originalDate,
		Price:      hotel.Price,
		FinalPrice: hotel.Price,
		Status:     "booking",
	})
	require.NoError(t, err)

	newDate := originalDate.AddDate(0, 0, 7)
	log, err := bookingDAO.Reschedule(ctx, booking.ID, newDate, "flight moved")
	require.NoError(t, err)
	assert.Equal(t, booking.ID, log.BookingID)
	assert.Equal(t, originalDate, log.PreviousTravelDate.UTC())
	assert.Equal(t, newDate, log.NewTravelDate.UTC())

	after, err := bookingDAO.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "rescheduled", after.Status)
	assert.Equal(t, newDate, after.TravelDate.UTC())
}

func TestRescheduleUnknownBooking(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := startPostgres(t)
	bookingDAO := dao.NewBookingDAO(db)

	_, err := bookingDAO.Reschedule(context.Background(), 12345, time.Now(), "")
	assert.ErrorIs(t, err, dao.ErrBookingNotFound)
}
