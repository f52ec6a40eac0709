package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lcombes/olympass/internal/helpers"
	"github.com/lcombes/olympass/internal/models"
	"github.com/lcombes/olympass/internal/ticket"
	"github.com/lcombes/olympass/internal/validation"
)

// checkoutFailure is a client-caused checkout abort, mapped to a field-scoped
// error payload. Anything else rolling out of the transaction is a server
// fault.
type checkoutFailure struct {
	status  int
	field   string
	message string
}

func (f *checkoutFailure) Error() string {
	return f.message
}

func lockForUpdate(tx *gorm.DB) *gorm.DB {
	// sqlite has no row locks; its writes serialize on the database handle.
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// ProcessPayment validates the card-like payload, then creates one Booking
// and one BookingLine per cart item inside a single transaction. Ticket code
// and image are generated here, before each line is committed, and never
// again afterwards. Any unresolvable reference or capacity breach aborts the
// whole checkout; no partial booking survives.
func ProcessPayment(c *gin.Context) {
	var req validation.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if errs := req.Validate(time.Now()); !errs.Empty() {
		helpers.RespondWithFieldErrors(c, http.StatusBadRequest, errs)
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}
	userUUID, ok := userID.(uuid.UUID)
	if !ok {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID type.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var writtenImages []string

	err := gormDB.Transaction(func(tx *gorm.DB) error {
		booking := models.Booking{
			ID:     uuid.New(),
			UserID: userUUID,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		for _, item := range req.Cart {
			// Lock the event row so concurrent checkouts for the same
			// event serialize on the capacity check.
			var event models.Event
			if err := lockForUpdate(tx).First(&event, *item.IDEvent).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &checkoutFailure{
						status:  http.StatusBadRequest,
						field:   "cart",
						message: fmt.Sprintf("Event %d does not exist.", *item.IDEvent),
					}
				}
				return err
			}
			if err := tx.First(&event.Location, event.LocationID).Error; err != nil {
				return err
			}

			var offer models.Offer
			if err := tx.First(&offer, *item.IDOffer).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &checkoutFailure{
						status:  http.StatusBadRequest,
						field:   "cart",
						message: fmt.Sprintf("Offer %d does not exist.", *item.IDOffer),
					}
				}
				return err
			}

			availableSeats, err := event.AvailableSeats(tx)
			if err != nil {
				return err
			}
			if int(offer.NumberSeats) > availableSeats {
				return &checkoutFailure{
					status:  http.StatusConflict,
					field:   "cart",
					message: fmt.Sprintf("Not enough seats left for event %d.", event.ID),
				}
			}

			line := models.BookingLine{
				ID:        uuid.New(),
				BookingID: booking.ID,
				EventID:   event.ID,
				OfferID:   offer.ID,
			}
			line.QRCode = ticket.Code(line.ID, userUUID)

			qrImage, err := ticket.Render(line.QRCode)
			if err != nil {
				return err
			}
			imagePath, err := helpers.WriteAsset("qr_codes", qrImage, ".png")
			if err != nil {
				return err
			}
			writtenImages = append(writtenImages, imagePath)
			line.QRCodeImage = imagePath

			// A ticket-code collision trips the unique constraint here and
			// rolls back the whole checkout.
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		// The transaction is gone; so must be the images written for it.
		for _, imagePath := range writtenImages {
			helpers.DeleteFileIfExists(imagePath)
		}

		var failure *checkoutFailure
		if errors.As(err, &failure) {
			errs := validation.NewErrors()
			errs.Add(failure.field, failure.message)
			helpers.RespondWithFieldErrors(c, failure.status, errs)
			return
		}

		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to process payment.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}
