package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Govind-619/CorpSite/models"
	"github.com/Govind-619/CorpSite/utils"
)

// The client verify flow and the webhook flow both move orders through these
// helpers, so a given real-world event always lands on the same end state.

// markPaid moves an order to paid. Re-confirming the same payment is a no-op;
// changed reports whether this call performed the transition.
func markPaid(ctx context.Context, store OrderStore, orderID, paymentID, signature string) (order *models.PaymentOrder, changed bool, err error) {
	order, err = store.Transition(ctx, Transition{
		OrderID:   orderID,
		To:        models.PaymentStatusPaid,
		PaymentID: paymentID,
		Signature: signature,
	})
	if err == nil {
		return order, true, nil
	}
	if !errors.Is(err, ErrTransitionRejected) {
		return nil, false, err
	}

	switch order.Status {
	case models.PaymentStatusPaid:
		if paymentID != "" && order.GatewayPaymentID != "" && order.GatewayPaymentID != paymentID {
			return order, false, fmt.Errorf("%w: order %s already paid by %s, got %s",
				ErrStatusConflict, orderID, order.GatewayPaymentID, paymentID)
		}
		if signature != "" && order.GatewaySignature == "" && paymentID != "" {
			attached, err := store.AttachSignature(ctx, orderID, paymentID, signature)
			if err != nil {
				return nil, false, err
			}
			if !attached {
				utils.LogDebug("Signature for order %s not attached, another writer stamped it first", orderID)
			}
			// report what is stored, not what this call asked for
			if order, err = store.FindByOrderID(ctx, orderID); err != nil {
				return nil, false, err
			}
		}
		return order, false, nil
	case models.PaymentStatusFailed:
		return order, false, fmt.Errorf("%w: order %s is failed, refusing to mark paid", ErrStatusConflict, orderID)
	}
	return order, false, fmt.Errorf("%w: order %s is %s", ErrStatusConflict, orderID, order.Status)
}

// markFailed moves an order to failed. A paid order is never revoked.
func markFailed(ctx context.Context, store OrderStore, orderID, paymentID, reason string) (order *models.PaymentOrder, changed bool, err error) {
	order, err = store.Transition(ctx, Transition{
		OrderID:       orderID,
		To:            models.PaymentStatusFailed,
		PaymentID:     paymentID,
		FailureReason: reason,
	})
	if err == nil {
		return order, true, nil
	}
	if !errors.Is(err, ErrTransitionRejected) {
		return nil, false, err
	}

	if order.Status == models.PaymentStatusFailed {
		return order, false, nil
	}
	utils.LogError("Refusing to mark order %s failed: current status %s", orderID, order.Status)
	return order, false, fmt.Errorf("%w: order %s is %s, refusing to mark failed", ErrStatusConflict, orderID, order.Status)
}

// markAttempted records that the customer started paying. Later statuses win.
func markAttempted(ctx context.Context, store OrderStore, orderID, paymentID string) (order *models.PaymentOrder, changed bool, err error) {
	order, err = store.Transition(ctx, Transition{
		OrderID:   orderID,
		To:        models.PaymentStatusAttempted,
		PaymentID: paymentID,
	})
	if err == nil {
		return order, true, nil
	}
	if errors.Is(err, ErrTransitionRejected) {
		return order, false, nil
	}
	return nil, false, err
}
