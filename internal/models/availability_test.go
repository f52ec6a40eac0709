package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcombes/olympass/internal/models"
)

func TestAvailableSeatsNoBookings(t *testing.T) {
	db := newTestDB(t)
	event := createEvent(t, db, 5000)

	available, err := event.AvailableSeats(db)
	require.NoError(t, err)

	assert.Equal(t, 5000, available)
}

func TestAvailableSeatsSubtractsBookedOffers(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db)
	event := createEvent(t, db, 5000)
	duo := createOffer(t, db, 2)
	familiale := createOffer(t, db, 4)

	createBookingLine(t, db, user, event, duo)
	createBookingLine(t, db, user, event, duo)
	createBookingLine(t, db, user, event, familiale)

	available, err := event.AvailableSeats(db)
	require.NoError(t, err)

	assert.Equal(t, 5000-2-2-4, available)
}

func TestAvailableSeatsIgnoresOtherEvents(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db)
	booked := createEvent(t, db, 1000)
	untouched := createEvent(t, db, 1000)
	duo := createOffer(t, db, 2)

	createBookingLine(t, db, user, booked, duo)

	available, err := untouched.AvailableSeats(db)
	require.NoError(t, err)

	assert.Equal(t, 1000, available)
}

func TestAvailabilityStatusThreshold(t *testing.T) {
	tests := []struct {
		name       string
		available  int
		totalSeats uint
		want       string
	}{
		{"exactly 5 percent is normal", 50, 1000, "normal"},
		{"one seat below 5 percent is low", 49, 1000, "low"},
		{"full capacity is normal", 1000, 1000, "normal"},
		{"sold out is low", 0, 1000, "low"},
		{"odd capacity boundary", 4000, 80000, "normal"},
		{"odd capacity below boundary", 3999, 80000, "low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.AvailabilityStatus(tt.available, tt.totalSeats))
		})
	}
}

func TestTicketCodeUniqueConstraint(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db)
	event := createEvent(t, db, 100)
	solo := createOffer(t, db, 1)

	line := createBookingLine(t, db, user, event, solo)

	duplicate := models.BookingLine{
		BookingID:   line.BookingID,
		EventID:     event.ID,
		OfferID:     solo.ID,
		QRCode:      line.QRCode,
		QRCodeImage: "uploads/qr_codes/other.png",
	}

	assert.Error(t, db.Create(&duplicate).Error, "duplicate ticket code must fail the write")
}
