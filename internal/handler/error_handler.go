package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"field-track-api/internal/response"
)

// handleServiceError maps service-layer errors to HTTP responses
func handleServiceError(c *gin.Context, err error) {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch appErr.Code {
		case response.ErrCodeValidation, response.ErrCodeBadRequest:
			status = http.StatusBadRequest
		case response.ErrCodeNotFound:
			status = http.StatusNotFound
		case response.ErrCodeConflict:
			status = http.StatusConflict
		case response.ErrCodeUnavailable:
			status = http.StatusServiceUnavailable
		}
		response.SendError(c, status, appErr.Code, appErr.Message)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Resource not found")
		return
	}

	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}

// parseUUIDParam reads and validates a uuid path parameter. It writes the
// error response itself; callers just return on !ok.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeBadRequest, "Invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}
