package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDOf(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDOf(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDOf(c),
	})
}

// HandleServiceError writes the response for a service error. Causes are
// logged by the services before they are collapsed to a sentinel.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidMoodValue):
		RespondError(c, http.StatusBadRequest, "Mood value must be between 1 and 10")
	case errors.Is(err, ErrInvalidMonth), errors.Is(err, ErrInvalidYear):
		RespondError(c, http.StatusBadRequest, "Invalid year or month")
	case errors.Is(err, ErrBlankTrigger):
		RespondError(c, http.StatusBadRequest, "Trigger must not be blank")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrDuplicateTrigger):
		RespondError(c, http.StatusConflict, "Trigger already exists")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid name or password")
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrDatabaseError):
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
