package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is one checkout transaction owned by a buyer. It is created
// atomically with its lines and never partially persisted.
type Booking struct {
	ID          uuid.UUID     `gorm:"type:uuid;primary_key" json:"id_booking"`
	BookingDate time.Time     `gorm:"not null;autoCreateTime" json:"booking_date"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"-"`
	User        User          `gorm:"foreignKey:UserID" json:"-"`
	Lines       []BookingLine `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"lines"`
}

func (booking *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	return
}

// BeforeDelete removes the booking's lines through GORM rather than leaving
// them to the database cascade, so each line's AfterDelete hook runs and its
// QR image file is cleaned up.
func (booking *Booking) BeforeDelete(tx *gorm.DB) error {
	var lines []BookingLine
	if err := tx.Where("booking_id = ?", booking.ID).Find(&lines).Error; err != nil {
		return err
	}
	for i := range lines {
		if err := tx.Delete(&lines[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
