package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lcombes/olympass/internal/helpers"
	"github.com/lcombes/olympass/internal/models"
)

func ListOffers(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var offers []models.Offer
	if err := gormDB.Order("number_seats, discount").Find(&offers).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving offers.")
		return
	}

	c.JSON(http.StatusOK, offers)
}

// ListSeats returns the distinct seat-count values across all offers.
func ListSeats(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var seats []uint
	if err := gormDB.Model(&models.Offer{}).Distinct("number_seats").Order("number_seats").Pluck("number_seats", &seats).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving seat counts.")
		return
	}

	data := make([]gin.H, 0, len(seats))
	for _, numberSeats := range seats {
		data = append(data, gin.H{"number_seats": numberSeats})
	}

	c.JSON(http.StatusOK, data)
}
