package models

import (
	"gorm.io/gorm"

	"github.com/lcombes/olympass/internal/helpers"
)

type Sport struct {
	ID    uint   `gorm:"primaryKey" json:"id_sport"`
	Title string `gorm:"size:30;unique;not null" json:"title"`
	Image string `gorm:"not null" json:"image"`
}

// AfterDelete removes the sport's image asset so no orphaned files remain.
func (sport *Sport) AfterDelete(tx *gorm.DB) error {
	return helpers.DeleteFileIfExists(sport.Image)
}
