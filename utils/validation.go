package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Add records a violation for field
func (e *FieldValidationErrors) Add(field, message string) {
	*e = append(*e, FieldValidationError{Field: field, Message: message})
}

// Has reports whether field has at least one violation
func (e FieldValidationErrors) Has(field string) bool {
	for _, err := range e {
		if err.Field == field {
			return true
		}
	}
	return false
}

var validate = validator.New()

// IsValidEmail checks an email address
func IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// IsValidURL checks an absolute URL
func IsValidURL(raw string) bool {
	return validate.Var(raw, "required,url") == nil
}

// IsValidPhone accepts E.164 numbers and common formatted numbers like "+1 (555) 123-4567"
func IsValidPhone(phone string) bool {
	var digits strings.Builder
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '+' && i == 0:
			digits.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return false
		}
	}
	normalized := digits.String()
	if !strings.HasPrefix(normalized, "+") {
		normalized = "+" + normalized
	}
	return validate.Var(normalized, "e164") == nil
}

// RequireString records a violation when value is blank
func RequireString(errs *FieldValidationErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, "is required")
	}
}

// RequireOneOf records a violation when value is not one of allowed. Empty values pass.
func RequireOneOf(errs *FieldValidationErrors, field, value string, allowed ...string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	errs.Add(field, "must be one of: "+strings.Join(allowed, ", "))
}
