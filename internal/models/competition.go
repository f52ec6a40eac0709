package models

const (
	GenderFemmes = "Femmes"
	GenderHommes = "Hommes"
	GenderMixte  = "Mixte"
)

type Competition struct {
	ID          uint    `gorm:"primaryKey" json:"id_competition"`
	Description string  `gorm:"size:50;not null" json:"description"`
	Gender      string  `gorm:"size:6;not null;check:gender IN ('Femmes','Hommes','Mixte')" json:"gender"`
	Phase       *string `gorm:"size:50" json:"phase"`
	EventID     uint    `gorm:"not null" json:"event"`
	Event       Event   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
