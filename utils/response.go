package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StandardResponse represents the error envelope returned by the API
type StandardResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func successBody(message string, data gin.H) gin.H {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range data {
		body[k] = v
	}
	return body
}

// Success sends a 200 response; data keys are merged into the top level object
func Success(c *gin.Context, message string, data gin.H) {
	c.JSON(http.StatusOK, successBody(message, data))
}

// Created sends a standardized created response (201)
func Created(c *gin.Context, message string, data gin.H) {
	c.JSON(http.StatusCreated, successBody(message, data))
}

// SuccessWithPagination sends a list of items with pagination metadata
func SuccessWithPagination(c *gin.Context, items interface{}, p *Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"items":   items,
		"pagination": gin.H{
			"page":        p.Page,
			"limit":       p.Limit,
			"total":       p.Total,
			"total_pages": p.LastPage,
		},
	})
}

// Error sends a standardized error response
func Error(c *gin.Context, statusCode int, message string, err interface{}) {
	c.JSON(statusCode, StandardResponse{
		Success: false,
		Message: message,
		Error:   err,
	})
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string, err interface{}) {
	Error(c, http.StatusBadRequest, message, err)
}

// TooManyRequests sends a 429 response
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message, nil)
}

// InternalServerError sends a 500 Internal Server Error response
func InternalServerError(c *gin.Context, message string, err interface{}) {
	Error(c, http.StatusInternalServerError, message, err)
}

// ValidationFailed sends a 400 response listing every invalid field
func ValidationFailed(c *gin.Context, message string, fields FieldValidationErrors) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
		"errors":  fields,
	})
}
