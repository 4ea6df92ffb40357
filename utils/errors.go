package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppError represents an application error
type AppError struct {
	Code    int                   `json:"code"`
	Message string                `json:"message"`
	Fields  FieldValidationErrors `json:"fields,omitempty"`
	Err     error                 `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequestError creates a 400 Bad Request error
func BadRequestError(message string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, message, err)
}

// InvalidFieldsError creates a 400 error carrying every invalid field
func InvalidFieldsError(message string, fields FieldValidationErrors, err error) *AppError {
	appErr := NewAppError(http.StatusBadRequest, message, err)
	appErr.Fields = fields
	return appErr
}

// NotFoundError creates a 404 Not Found error
func NotFoundError(message string, err error) *AppError {
	return NewAppError(http.StatusNotFound, message, err)
}

// ConflictError creates a 409 Conflict error
func ConflictError(message string, err error) *AppError {
	return NewAppError(http.StatusConflict, message, err)
}

// InternalError creates a 500 error. The message is what the client sees.
func InternalError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}

// GetAppError returns the AppError if the error is an AppError
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// RespondError writes err to the client. Only the public message and field list
// leave the process; the wrapped cause is logged.
func RespondError(c *gin.Context, err error) {
	appErr := GetAppError(err)
	if appErr == nil {
		appErr = InternalError("Internal server error", err)
	}
	if appErr.Err != nil {
		LogError("%s %s: %v", c.Request.Method, c.FullPath(), appErr)
	}
	if len(appErr.Fields) > 0 {
		ValidationFailed(c, appErr.Message, appErr.Fields)
		return
	}
	Error(c, appErr.Code, appErr.Message, nil)
}
