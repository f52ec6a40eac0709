package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lcombes/olympass/internal/helpers"
)

// BookingLine is one purchased ticket within a booking. QRCode and
// QRCodeImage are written once, when the line is created, and are immutable
// afterwards. Events and offers stay deletable only while no line references
// them: a purchased ticket must never vanish because reference data was
// cleaned up.
type BookingLine struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id_booking_line"`
	QRCode      string    `gorm:"size:73;unique;not null" json:"qr_code"`
	QRCodeImage string    `gorm:"not null" json:"qr_code_image"`
	BookingID   uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Booking     Booking   `gorm:"foreignKey:BookingID" json:"-"`
	EventID     uint      `gorm:"not null;index" json:"id_event"`
	Event       Event     `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
	OfferID     uint      `gorm:"not null;index" json:"id_offer"`
	Offer       Offer     `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

func (line *BookingLine) BeforeCreate(tx *gorm.DB) (err error) {
	if line.ID == uuid.Nil {
		line.ID = uuid.New()
	}
	return
}

// AfterDelete removes the generated QR image so no orphaned files remain.
func (line *BookingLine) AfterDelete(tx *gorm.DB) error {
	return helpers.DeleteFileIfExists(line.QRCodeImage)
}
