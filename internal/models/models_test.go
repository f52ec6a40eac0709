package models_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lcombes/olympass/config"
	"github.com/lcombes/olympass/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database
	// and makes the pragma below stick for the whole test.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, config.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()

	user := models.User{
		Person: models.Person{
			Firstname:   "Alice",
			Lastname:    "Martin",
			DateOfBirth: time.Date(1990, time.May, 10, 0, 0, 0, 0, time.UTC),
			Country:     "France",
		},
		Email:    uuid.New().String() + "@example.com",
		Password: "irrelevant",
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createEvent(t *testing.T, db *gorm.DB, totalSeats uint) models.Event {
	t.Helper()

	sport := models.Sport{Title: "Natation " + uuid.New().String()[:8], Image: "uploads/sports/natation.png"}
	require.NoError(t, db.Create(&sport).Error)

	location := models.Location{
		Name:       "Stade " + uuid.New().String()[:8],
		City:       "Paris",
		TotalSeats: totalSeats,
	}
	require.NoError(t, db.Create(&location).Error)

	event := models.Event{
		SportID:    sport.ID,
		LocationID: location.ID,
		Date:       time.Date(2026, time.July, 26, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		EndTime:    "12:00",
		Price:      45.50,
	}
	require.NoError(t, db.Create(&event).Error)

	event.Sport = sport
	event.Location = location
	return event
}

func createOffer(t *testing.T, db *gorm.DB, numberSeats uint) models.Offer {
	t.Helper()

	offer := models.Offer{
		Type:        "Offre " + uuid.New().String()[:8],
		NumberSeats: numberSeats,
		Discount:    0,
	}
	require.NoError(t, db.Create(&offer).Error)
	return offer
}

func createBookingLine(t *testing.T, db *gorm.DB, user models.User, event models.Event, offer models.Offer) models.BookingLine {
	t.Helper()

	booking := models.Booking{UserID: user.ID}
	require.NoError(t, db.Create(&booking).Error)

	line := models.BookingLine{
		ID:          uuid.New(),
		BookingID:   booking.ID,
		EventID:     event.ID,
		OfferID:     offer.ID,
		QRCodeImage: "uploads/qr_codes/missing.png",
	}
	line.QRCode = line.ID.String() + "|" + user.ID.String()
	require.NoError(t, db.Create(&line).Error)
	return line
}
