package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	ID         uint      `gorm:"primaryKey" json:"id_event"`
	SportID    uint      `gorm:"not null" json:"-"`
	Sport      Sport     `gorm:"constraint:OnDelete:CASCADE" json:"sport"`
	LocationID uint      `gorm:"not null" json:"-"`
	Location   Location  `gorm:"constraint:OnDelete:CASCADE" json:"location"`
	Date       time.Time `gorm:"not null" json:"date"`
	StartTime  string    `gorm:"size:5;not null" json:"start_time"`
	EndTime    string    `gorm:"size:5;not null" json:"end_time"`
	Price      float64   `gorm:"not null;check:price >= 0 AND price <= 999.99" json:"price"`
}

// BookedSeats sums the seat counts of every offer attached to the event's
// booking lines. No lines means zero booked seats.
func (event *Event) BookedSeats(db *gorm.DB) (int, error) {
	var booked int64
	err := db.Model(&BookingLine{}).
		Joins("JOIN offers ON offers.id = booking_lines.offer_id").
		Where("booking_lines.event_id = ?", event.ID).
		Select("COALESCE(SUM(offers.number_seats), 0)").
		Scan(&booked).Error
	if err != nil {
		return 0, err
	}
	return int(booked), nil
}

// AvailableSeats derives the remaining capacity from the booking ledger at
// read time. Event.Location must be loaded.
func (event *Event) AvailableSeats(db *gorm.DB) (int, error) {
	booked, err := event.BookedSeats(db)
	if err != nil {
		return 0, err
	}
	return int(event.Location.TotalSeats) - booked, nil
}

// AvailabilityStatus flags low remaining capacity. The 5% boundary belongs
// to the normal state: 20*available == total is still "normal". Integer
// arithmetic keeps the boundary exact.
func AvailabilityStatus(available int, totalSeats uint) string {
	if 20*available < int(totalSeats) {
		return "low"
	}
	return "normal"
}
