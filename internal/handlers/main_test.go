package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lcombes/olympass/config"
	"github.com/lcombes/olympass/internal/models"
	"github.com/lcombes/olympass/internal/server"
)

const testSecret = "handler-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database
	// and makes the pragma below stick for the whole test.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, config.Migrate(db))

	r := gin.New()
	server.SetupRoutes(r, db)
	return r, db
}

func seedUser(t *testing.T, db *gorm.DB, email, password string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Person: models.Person{
			Firstname:   "Alice",
			Lastname:    "Martin",
			DateOfBirth: time.Date(1990, time.May, 10, 0, 0, 0, 0, time.UTC),
			Country:     "France",
		},
		Email:    email,
		Password: string(hashed),
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedEvent(t *testing.T, db *gorm.DB, totalSeats uint) models.Event {
	t.Helper()

	sport := models.Sport{Title: "Natation " + uuid.New().String()[:8], Image: "uploads/sports/natation.png"}
	require.NoError(t, db.Create(&sport).Error)

	location := models.Location{
		Name:       "Stade " + uuid.New().String()[:8],
		City:       "Paris",
		TotalSeats: totalSeats,
	}
	require.NoError(t, db.Create(&location).Error)

	event := models.Event{
		SportID:    sport.ID,
		LocationID: location.ID,
		Date:       time.Date(2026, time.July, 26, 0, 0, 0, 0, time.UTC),
		StartTime:  "10:00",
		EndTime:    "12:00",
		Price:      45.50,
	}
	require.NoError(t, db.Create(&event).Error)
	return event
}

func seedOffer(t *testing.T, db *gorm.DB, offerType string, numberSeats uint) models.Offer {
	t.Helper()

	offer := models.Offer{Type: offerType, NumberSeats: numberSeats}
	require.NoError(t, db.Create(&offer).Error)
	return offer
}

func accessToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    userID.String(),
		"token_type": "access",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
