package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/Govind-619/CorpSite/models"
	"github.com/Govind-619/CorpSite/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func paymentEvent(event, orderID, paymentID string) []byte {
	return []byte(fmt.Sprintf(`{
		"entity": "event",
		"event": %q,
		"payload": {
			"payment": {
				"entity": {
					"id": %q,
					"order_id": %q,
					"status": "captured",
					"error_code": "BAD_REQUEST_ERROR",
					"error_description": "Payment declined by bank"
				}
			}
		}
	}`, event, paymentID, orderID))
}

func newTestWebhookService(t *testing.T) (*WebhookService, OrderStore, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	store := NewOrderStore(db)
	seedOrder(t, store, testOrderID, models.PaymentStatusCreated)
	return NewWebhookService(db), store, db
}

func orderStatus(t *testing.T, store OrderStore) *models.PaymentOrder {
	t.Helper()
	order, err := store.FindByOrderID(context.Background(), testOrderID)
	require.NoError(t, err)
	return order
}

func TestWebhookCapturedMarksPaid(t *testing.T) {
	svc, store, _ := newTestWebhookService(t)

	result, err := svc.Handle(context.Background(), "evt_1", paymentEvent(EventPaymentCaptured, testOrderID, testPaymentID))
	require.NoError(t, err)
	assert.Equal(t, models.WebhookOutcomeApplied, result.Outcome)
	assert.Equal(t, testOrderID, result.OrderID)

	order := orderStatus(t, store)
	assert.Equal(t, models.PaymentStatusPaid, order.Status)
	assert.Equal(t, testPaymentID, order.GatewayPaymentID)
}

func TestWebhookOrderPaidIdempotentWithCaptured(t *testing.T) {
	svc, store, _ := newTestWebhookService(t)
	ctx := context.Background()

	_, err := svc.Handle(ctx, "evt_1", paymentEvent(EventPaymentCaptured, testOrderID, testPaymentID))
	require.NoError(t, err)

	body := []byte(fmt.Sprintf(`{"event":"order.paid","payload":{"order":{"entity":{"id":%q,"status":"paid"}},"payment":{"entity":{"id":%q,"order_id":%q}}}}`,
		testOrderID, testPaymentID, testOrderID))
	result, err := svc.Handle(ctx, "evt_2", body)
	require.NoError(t, err)
	assert.Equal(t, models.WebhookOutcomeNoop, result.Outcome)
	assert.Equal(t, models.PaymentStatusPaid, orderStatus(t, store).Status)
}

func TestWebhookFailedMarksFailed(t *testing.T) {
	svc, store, _ := newTestWebhookService(t)

	result, err := svc.Handle(context.Background(), "evt_1", paymentEvent(EventPaymentFailed, testOrderID, testPaymentID))
	require.NoError(t, err)
	assert.Equal(t, models.WebhookOutcomeApplied, result.Outcome)

	order := orderStatus(t, store)
	assert.Equal(t, models.PaymentStatusFailed, order.Status)
	assert.Equal(t, "BAD_REQUEST_ERROR: Payment declined by bank", order.FailureReason)
}

func TestWebhookCapturedAfterFailedIsConflict(t *testing.T) {
	svc, store, db := newTestWebhookService(t)
	ctx := context.Background()

	_, err := svc.Handle(ctx, "evt_1", paymentEvent(EventPaymentFailed, testOrderID, testPaymentID))
	require.NoError(t, err)

	result, err := svc.Handle(ctx, "evt_2", paymentEvent(EventPaymentCaptured, testOrderID, "pay_retry"))
	require.NoError(t, err, "conflicts are acknowledged")
	assert.Equal(t, models.WebhookOutcomeRejected, result.Outcome)
	assert.Contains(t, result.Detail, ErrStatusConflict.Error())

	assert.Equal(t, models.PaymentStatusFailed, orderStatus(t, store).Status, "failed is not silently overwritten")

	var record models.WebhookEvent
	require.NoError(t, db.Where("event_id = ?", "evt_2").First(&record).Error)
	assert.Equal(t, models.WebhookOutcomeRejected, record.Outcome)
	require.NotNil(t, record.ProcessError)
	assert.Contains(t, *record.ProcessError, ErrStatusConflict.Error())
	assert.NotNil(t, record.ProcessedAt)
}

func TestWebhookFailedAfterPaidIsConflict(t *testing.T) {
	svc, store, _ := newTestWebhookService(t)
	ctx := context.Background()

	_, err := svc.Handle(ctx, "evt_1", paymentEvent(EventPaymentCaptured, testOrderID, testPaymentID))
	require.NoError(t, err)

	result, err := svc.Handle(ctx, "evt_2", paymentEvent(EventPaymentFailed, testOrderID, testPaymentID))
	require.NoError(t, err)
	assert.Equal(t, models.WebhookOutcomeRejected, result.Outcome)
	assert.Equal(t, models.PaymentStatusPaid, orderStatus(t, store).Status)
}

func TestWebhookAuthorizedMarksAttempted(t *testing.T) {
	svc, store, _ := newTestWebhookService(t)
	ctx := context.Background()

	result, err := svc.Handle(ctx, "evt_1", paymentEvent(EventPaymentAuthorized, testOrderID, testPaymentID))
	require.NoError(t, err)
	assert.Equal(t, models.WebhookOutcomeApplied, result.Outcome)
	assert.Equal(t, models.PaymentStatusAttempted, orderStatus(t, store).Status)

	_, err = svc.Handle(ctx, "evt_2", paymentEvent(EventPaymentCaptured, testOrderID, testPaymentID))
	require.NoError(t, err)

	// a late authorized event does not move a paid order back
	result, err = svc.Handle(ctx, "evt_3", paymentEvent(EventPaymentAuthorized, testOrderID, testPaymentID))
	require.NoError(t, err)
	assert.Equal(t, models.WebhookOutcomeNoop, result.Outcome)
	assert.Equal(t, models.PaymentStatusPaid, orderStatus(t, store).Status)
}

func TestWebhookRedeliveryIsDeduplicated(t *testing.T) {
	svc, store, db := newTestWebhookService(t)
	ctx := context.Background()
	body := paymentEvent(EventPaymentCaptured, testOrderID, testPaymentID)

	first, err := svc.Handle(ctx, "evt_1", body)
	require.NoError(t, err)
	before := orderStatus(t, store)

	second, err := svc.Handle(ctx, "evt_1", body)
	require.NoError(t, err)
	assert.Equal(t, models.WebhookOutcomeApplied, first.Outcome)
	assert.Equal(t, models.WebhookOutcomeDuplicate, second.Outcome)

	after := orderStatus(t, store)
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.GatewayPaymentID, after.GatewayPaymentID)

	var n int64
	require.NoError(t, db.Model(&models.WebhookEvent{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestWebhookSameEventUnderNewIDConvergesOnSameState(t *testing.T) {
	svc, store, _ := newTestWebhookService(t)
	ctx := context.Background()
	body := paymentEvent(EventPaymentCaptured, testOrderID, testPaymentID)

	_, err := svc.Handle(ctx, "evt_1", body)
	require.NoError(t, err)
	result, err := svc.Handle(ctx, "evt_1_retry", body)
	require.NoError(t, err)

	assert.Equal(t, models.WebhookOutcomeNoop, result.Outcome)
	assert.Equal(t, models.PaymentStatusPaid, orderStatus(t, store).Status)
}

func TestWebhookUnknownEventIgnored(t *testing.T) {
	svc, store, db := newTestWebhookService(t)

	result, err := svc.Handle(context.Background(), "evt_1", []byte(`{"event":"refund.processed","payload":{}}`))
	require.NoError(t, err)
	assert.Equal(t, models.WebhookOutcomeIgnored, result.Outcome)
	assert.Equal(t, models.PaymentStatusCreated, orderStatus(t, store).Status)

	var record models.WebhookEvent
	require.NoError(t, db.Where("event_id = ?", "evt_1").First(&record).Error)
	assert.Equal(t, "refund.processed", record.EventType)
	assert.Nil(t, record.ProcessError)
}

func TestWebhookUnknownOrderIsRecorded(t *testing.T) {
	svc, _, db := newTestWebhookService(t)

	result, err := svc.Handle(context.Background(), "evt_1", paymentEvent(EventPaymentCaptured, "order_unknown", testPaymentID))
	require.NoError(t, err)
	assert.Equal(t, models.WebhookOutcomeRejected, result.Outcome)

	var n int64
	require.NoError(t, db.Model(&models.PaymentOrder{}).Where("order_id = ?", "order_unknown").Count(&n).Error)
	assert.Zero(t, n, "no order is fabricated")
}

func TestWebhookMissingOrderID(t *testing.T) {
	svc, _, _ := newTestWebhookService(t)

	result, err := svc.Handle(context.Background(), "evt_1", []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1"}}}}`))
	require.NoError(t, err)
	assert.Equal(t, models.WebhookOutcomeRejected, result.Outcome)
}

func TestWebhookMalformedPayload(t *testing.T) {
	svc, _, db := newTestWebhookService(t)

	for _, body := range []string{`not json`, `{}`, `{"event":""}`} {
		_, err := svc.Handle(context.Background(), "evt_bad", []byte(body))
		assert.ErrorIs(t, err, ErrInvalidInput, body)
	}

	var n int64
	require.NoError(t, db.Model(&models.WebhookEvent{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestEventIDFor(t *testing.T) {
	body := []byte(`{"event":"payment.captured"}`)

	assert.Equal(t, "evt_header", EventIDFor(" evt_header ", body))

	derived := EventIDFor("", body)
	assert.Equal(t, derived, EventIDFor("", body))
	assert.NotEqual(t, derived, EventIDFor("", []byte(`{"event":"payment.failed"}`)))
	assert.Len(t, derived, len("sha256:")+64)
}
