package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Person carries the identity attributes shared by every buyer. It is
// embedded into User so the ticket code can reference a single person id.
type Person struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Firstname   string    `gorm:"size:50;not null" json:"firstname"`
	Lastname    string    `gorm:"size:50;not null" json:"lastname"`
	DateOfBirth time.Time `gorm:"not null" json:"date_of_birth"`
	Country     string    `gorm:"size:75;not null" json:"country"`
}

type User struct {
	Person      `gorm:"embedded"`
	Email       string     `gorm:"size:100;unique;not null" json:"email"`
	Password    string     `gorm:"not null" json:"-"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	IsStaff     bool       `gorm:"not null;default:false" json:"is_staff"`
	IsSuperuser bool       `gorm:"not null;default:false" json:"is_superuser"`
	DateJoined  time.Time  `gorm:"autoCreateTime" json:"date_joined"`
	LastLogin   *time.Time `json:"last_login"`
}

func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return
}
