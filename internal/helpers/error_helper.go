package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithFieldErrors is the aggregate-validation payload: every failing
// field is reported, the request is never short-circuited to the first error.
func RespondWithFieldErrors(c *gin.Context, statusCode int, errors map[string][]string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"errors":  errors,
	})
}
