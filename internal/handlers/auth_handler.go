package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lcombes/olympass/internal/helpers"
	"github.com/lcombes/olympass/internal/models"
	"github.com/lcombes/olympass/internal/validation"
)

const (
	accessTokenLifetime  = 1 * time.Hour
	refreshTokenLifetime = 7 * 24 * time.Hour
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CheckEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

func signToken(userID uuid.UUID, tokenType string, lifetime time.Duration, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    userID.String(),
		"token_type": tokenType,
		"exp":        time.Now().Add(lifetime).Unix(),
	})
	return token.SignedString([]byte(secret))
}

func CheckEmail(c *gin.Context) {
	var req CheckEmailRequest
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

	var count int64
	if err := gormDB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error checking email.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": count > 0})
}

func Register(c *gin.Context) {
	var req validation.RegisterRequest
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

	dateOfBirth, errs := req.Validate(time.Now(), func(email string) bool {
		var count int64
		gormDB.Model(&models.User{}).Where("email = ?", email).Count(&count)
		return count > 0
	})
	if !errs.Empty() {
		helpers.RespondWithFieldErrors(c, http.StatusBadRequest, errs)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to hash the password.")
		return
	}

	user := models.User{
		Person: models.Person{
			ID:          uuid.New(),
			Firstname:   req.Firstname,
			Lastname:    req.Lastname,
			DateOfBirth: dateOfBirth,
			Country:     req.Country,
		},
		Email:    req.Email,
		Password: string(hashedPassword),
		IsActive: true,
	}

	if err := gormDB.Create(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create user.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func Login(c *gin.Context) {
	var req LoginRequest
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

	// All authentication failures collapse to one message, no hint about
	// which part was wrong.
	var user models.User
	if err := gormDB.Where("email = ? AND is_active = ?", req.Email, true).First(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		helpers.RespondWithError(c, http.StatusInternalServerError, "JWT_SECRET not configured.")
		return
	}

	access, err := signToken(user.ID, "access", accessTokenLifetime, secret)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}
	refresh, err := signToken(user.ID, "refresh", refreshTokenLifetime, secret)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}

	now := time.Now()
	gormDB.Model(&user).Update("last_login", now)

	c.JSON(http.StatusOK, gin.H{
		"access":  access,
		"refresh": refresh,
	})
}

func RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		helpers.RespondWithError(c, http.StatusInternalServerError, "JWT_SECRET not configured.")
		return
	}

	token, err := jwt.Parse(req.Refresh, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired refresh token.")
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["token_type"] != "refresh" {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired refresh token.")
		return
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired refresh token.")
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired refresh token.")
		return
	}

	access, err := signToken(userID, "access", accessTokenLifetime, secret)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}

func Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var user models.User
	if err := gormDB.Where("id = ?", userID).First(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "User not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"firstname": user.Firstname,
		"lastname":  user.Lastname,
	})
}

func Logout(c *gin.Context) {
	// Tokens are stateless; the client drops them.
	c.JSON(http.StatusOK, gin.H{"success": true})
}
