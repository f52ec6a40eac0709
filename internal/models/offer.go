package models

type Offer struct {
	ID          uint   `gorm:"primaryKey" json:"id_offer"`
	Type        string `gorm:"size:50;unique;not null" json:"type"`
	NumberSeats uint   `gorm:"not null;check:number_seats >= 1" json:"number_seats"`
	Discount    uint   `gorm:"not null" json:"discount"`
}
