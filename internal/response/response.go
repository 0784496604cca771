// Package response defines the shared error type and the JSON response
// helpers used by every handler.
package response

import (
	"github.com/gin-gonic/gin"
)

// Error codes shared between services and handlers
const (
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeNotFound    = "NOT_FOUND"
	ErrCodeConflict    = "ALREADY_EXISTS"
	ErrCodeBadRequest  = "BAD_REQUEST"
	ErrCodeInternal    = "INTERNAL_ERROR"
	ErrCodeUnavailable = "SERVICE_UNAVAILABLE"
)

// AppError is the error type services return to handlers
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates an AppError with an arbitrary code
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NewNotFoundError creates a NOT_FOUND error
func NewNotFoundError(message, details string) *AppError {
	return NewAppError(ErrCodeNotFound, message, details)
}

// NewValidationError creates a VALIDATION_ERROR error
func NewValidationError(message, details string) *AppError {
	return NewAppError(ErrCodeValidation, message, details)
}

// ErrorResponse is the JSON body of a failed request
type ErrorResponse struct {
	Error AppError `json:"error"`
}

// SuccessResponse is the JSON body of a successful request
type SuccessResponse struct {
	Data interface{} `json:"data"`
}

// SendError writes an error response
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: AppError{Code: code, Message: message}})
}

// SendSuccess writes a success response
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{Data: data})
}
