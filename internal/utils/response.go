// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/artmint/artmint-backend/internal/models"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    models.MessageCode `json:"code"`
	Message string             `json:"message"`
	Details interface{}        `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code models.MessageCode, message string, details interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	if message == "" {
		message = "invalid request"
	}
	ErrorResponse(c, http.StatusBadRequest, models.CodeInvalidPayload, message, details)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = "authentication required"
	}
	ErrorResponse(c, http.StatusUnauthorized, models.CodeUnauthorized, message, nil)
}

func NotFoundResponse(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	ErrorResponse(c, http.StatusNotFound, models.CodeNotFound, message, nil)
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	ErrorResponse(c, http.StatusInternalServerError, models.CodeError, message, nil)
}

func ValidationErrorResponse(c *gin.Context, errors []ValidationError) {
	ErrorResponse(c, http.StatusBadRequest, models.CodeInvalidPayload, "invalid input", errors)
}

// ServiceErrorResponse maps a tagged service failure onto the HTTP
// surface. Unauthorized means the caller is known but not the
// authorized actor, so it maps to 403 rather than 401.
func ServiceErrorResponse(c *gin.Context, err error) {
	appErr, ok := models.AsAppError(err)
	if !ok {
		InternalErrorResponse(c, err.Error())
		return
	}

	switch appErr.Code {
	case models.CodeNotFound:
		ErrorResponse(c, http.StatusNotFound, appErr.Code, appErr.Detail, nil)
	case models.CodeInvalidPayload:
		ErrorResponse(c, http.StatusBadRequest, appErr.Code, appErr.Detail, nil)
	case models.CodeUnauthorized:
		ErrorResponse(c, http.StatusForbidden, appErr.Code, appErr.Detail, nil)
	default:
		ErrorResponse(c, http.StatusInternalServerError, appErr.Code, appErr.Detail, nil)
	}
}

func GetArtistIDFromContext(c *gin.Context) (string, bool) {
	if artistID, exists := c.Get("artist_id"); exists {
		if artistIDStr, ok := artistID.(string); ok {
			return artistIDStr, true
		}
	}
	return "", false
}
