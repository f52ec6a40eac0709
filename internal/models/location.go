package models

type Location struct {
	ID         uint   `gorm:"primaryKey" json:"id_location"`
	Name       string `gorm:"size:50;unique;not null" json:"name"`
	City       string `gorm:"size:50;not null" json:"city"`
	TotalSeats uint   `gorm:"not null;check:total_seats <= 80000" json:"total_seats"`
}
