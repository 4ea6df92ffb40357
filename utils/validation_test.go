package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	for _, phone := range []string{"+1 (555) 123-4567", "+919876543210", "9876543210"} {
		assert.True(t, IsValidPhone(phone), phone)
	}
	for _, phone := range []string{"", "call me", "+", "12-ab-34", "1+23"} {
		assert.False(t, IsValidPhone(phone), phone)
	}
}

func TestFieldValidationErrors(t *testing.T) {
	var errs FieldValidationErrors
	RequireString(&errs, "name", "  ")
	RequireOneOf(&errs, "status", "", "new", "closed")
	RequireOneOf(&errs, "budget", "lots", "under-5k")

	assert.Len(t, errs, 2)
	assert.True(t, errs.Has("name"))
	assert.True(t, errs.Has("budget"))
	assert.False(t, errs.Has("status"))
	assert.Equal(t, "name: is required; budget: must be one of: under-5k", errs.Error())
}

func TestIsValidEmailAndURL(t *testing.T) {
	assert.True(t, IsValidEmail("asha@example.com"))
	assert.False(t, IsValidEmail("asha@"))
	assert.True(t, IsValidURL("https://github.com/corp"))
	assert.False(t, IsValidURL("github"))
}
