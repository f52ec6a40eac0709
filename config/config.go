package config

import (
	"fmt"
	"os"

	"github.com/lcombes/olympass/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

func LoadConfig() (*Config, error) {
	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
	}, nil
}

func NewLogger() (*zap.Logger, error) {
	if os.Getenv("GIN_MODE") == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	// Translated errors let handlers match constraint violations by kind.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := enableUUIDExtension(db); err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	seedOffers(db)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Sport{},
		&models.Location{},
		&models.Event{},
		&models.Competition{},
		&models.Offer{},
		&models.Booking{},
		&models.BookingLine{},
	)
}

func seedOffers(db *gorm.DB) {
	offers := []models.Offer{
		{Type: "Solo", NumberSeats: 1, Discount: 0},
		{Type: "Duo", NumberSeats: 2, Discount: 5},
		{Type: "Familiale", NumberSeats: 4, Discount: 10},
	}

	for _, offer := range offers {
		var existingOffer models.Offer
		result := db.Where("type = ?", offer.Type).First(&existingOffer)
		if result.Error != nil {
			db.Create(&offer)
		}
	}
}
