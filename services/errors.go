package services

import (
	"errors"

	"github.com/Govind-619/CorpSite/utils"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrGateway            = errors.New("payment gateway error")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrOrderNotFound      = errors.New("order not found")
	ErrPersistence        = errors.New("persistence error")
	ErrStatusConflict     = errors.New("order status conflict")
	ErrDuplicateOrder     = errors.New("duplicate order")
	ErrTransitionRejected = errors.New("status transition rejected")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
)

// InputError lists every field that failed validation.
// It matches ErrInvalidAmount when the amount field is among them.
type InputError struct {
	Fields utils.FieldValidationErrors
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Fields.Error()
}

func (e *InputError) Is(target error) bool {
	switch target {
	case ErrInvalidInput:
		return true
	case ErrInvalidAmount:
		return e.Fields.Has("amount")
	}
	return false
}

func newInputError(fields utils.FieldValidationErrors) error {
	if len(fields) == 0 {
		return nil
	}
	return &InputError{Fields: fields}
}

// FieldsOf returns the field list carried by an InputError, if any
func FieldsOf(err error) utils.FieldValidationErrors {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.Fields
	}
	return nil
}
