package controllers

import (
	"errors"

	"github.com/Govind-619/CorpSite/services"
	"github.com/Govind-619/CorpSite/utils"
)

// toAppError maps service errors onto HTTP errors. Client input errors keep
// their detail; upstream and store errors get a generic message.
func toAppError(err error) *utils.AppError {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		return utils.InvalidFieldsError("Invalid amount", services.FieldsOf(err), err)
	case errors.Is(err, services.ErrInvalidInput):
		if fields := services.FieldsOf(err); len(fields) > 0 {
			return utils.InvalidFieldsError("Validation failed", fields, err)
		}
		return utils.BadRequestError("Invalid request", err)
	case errors.Is(err, services.ErrInvalidSignature):
		return utils.BadRequestError("Invalid payment signature", err)
	case errors.Is(err, services.ErrOrderNotFound):
		return utils.NotFoundError("Order not found", err)
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundError("Resource not found", err)
	case errors.Is(err, services.ErrStatusConflict):
		return utils.ConflictError("Order status conflict", err)
	case errors.Is(err, services.ErrDuplicateOrder):
		return utils.ConflictError("Order already exists", err)
	case errors.Is(err, services.ErrAlreadyExists):
		return utils.ConflictError("Resource already exists", err)
	case errors.Is(err, services.ErrGateway):
		return utils.InternalError("Failed to create payment order", err)
	}
	return utils.InternalError("Internal server error", err)
}
