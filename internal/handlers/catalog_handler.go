package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lcombes/olympass/internal/helpers"
	"github.com/lcombes/olympass/internal/models"
)

type CartDetailsRequest struct {
	Cart []struct {
		IDEvent uint `json:"id_event"`
		IDOffer uint `json:"id_offer"`
	} `json:"cart" binding:"required"`
}

func eventResponse(gormDB *gorm.DB, event *models.Event) (gin.H, error) {
	availableSeats, err := event.AvailableSeats(gormDB)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"id_event":        event.ID,
		"sport":           event.Sport,
		"location":        event.Location,
		"date":            event.Date.Format("2006-01-02"),
		"start_time":      event.StartTime,
		"end_time":        event.EndTime,
		"price":           event.Price,
		"available_seats": availableSeats,
		"availability":    models.AvailabilityStatus(availableSeats, event.Location.TotalSeats),
	}, nil
}

func ListSports(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var sports []models.Sport
	if err := gormDB.Order("title").Find(&sports).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving sports.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sports})
}

func ListEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var events []models.Event
	if err := gormDB.Preload("Sport").Preload("Location").Order("date, start_time").Find(&events).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	data := make([]gin.H, 0, len(events))
	for i := range events {
		item, err := eventResponse(gormDB, &events[i])
		if err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Error computing availability.")
			return
		}
		data = append(data, item)
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

func ListCompetitions(c *gin.Context) {
	eventID, err := helpers.StringToInt(c.Param("eventId"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var competitions []models.Competition
	if err := gormDB.Where("event_id = ?", eventID).Order("description").Find(&competitions).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving competitions.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": competitions})
}

// CartDetails resolves cart pairs to full event and offer detail. Pairs that
// reference nothing are silently skipped; this is a read-only lookup, the
// checkout path is the one that must abort on a bad reference.
func CartDetails(c *gin.Context) {
	var req CartDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	data := make([]gin.H, 0, len(req.Cart))
	for _, item := range req.Cart {
		var event models.Event
		if err := gormDB.Preload("Sport").Preload("Location").First(&event, item.IDEvent).Error; err != nil {
			continue
		}
		var offer models.Offer
		if err := gormDB.First(&offer, item.IDOffer).Error; err != nil {
			continue
		}

		eventItem, err := eventResponse(gormDB, &event)
		if err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Error computing availability.")
			return
		}
		data = append(data, gin.H{
			"event": eventItem,
			"offer": offer,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

func CreateSport(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Sport image is required.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	imagePath, err := helpers.UploadFile(c, fileHeader, "sports")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	sport := models.Sport{
		Title: title,
		Image: imagePath,
	}

	if err := gormDB.Create(&sport).Error; err != nil {
		helpers.DeleteFileIfExists(imagePath)
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create sport.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Sport created successfully.",
		"id_sport": sport.ID,
	})
}

func DeleteSport(c *gin.Context) {
	sportID, err := helpers.StringToInt(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid sport ID.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var sport models.Sport
	if err := gormDB.First(&sport, sportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "Sport not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving sport.")
		return
	}

	if err := gormDB.Delete(&sport).Error; err != nil {
		// Cascading through events would reach booked lines, which the
		// schema restricts: purchased tickets survive reference cleanup.
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			helpers.RespondWithError(c, http.StatusConflict, "Sport is referenced by booked events.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete sport.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sport deleted successfully."})
}
