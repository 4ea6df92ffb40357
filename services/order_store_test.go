package services

import (
	"context"
	"testing"

	"github.com/Govind-619/CorpSite/models"
	"github.com/Govind-619/CorpSite/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, store OrderStore, orderID string, status models.PaymentStatus) *models.PaymentOrder {
	t.Helper()
	order := &models.PaymentOrder{
		OrderID:  orderID,
		Amount:   decimal.RequireFromString("49.99"),
		Currency: "INR",
		Status:   status,
		Receipt:  "receipt_" + orderID,
		Customer: models.Customer{Name: "Asha", Email: "asha@example.com"},
	}
	require.NoError(t, store.Create(context.Background(), order))
	return order
}

func TestOrderStoreCreateAndFind(t *testing.T) {
	store := NewOrderStore(testutil.NewDB(t))
	ctx := context.Background()

	seedOrder(t, store, "order_1", "")

	got, err := store.FindByOrderID(ctx, "order_1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCreated, got.Status)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("49.99")))
	assert.Equal(t, "asha@example.com", got.Customer.Email)

	_, err = store.FindByOrderID(ctx, "order_missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderStoreCreateNeverOverwrites(t *testing.T) {
	store := NewOrderStore(testutil.NewDB(t))
	ctx := context.Background()

	seedOrder(t, store, "order_1", models.PaymentStatusCreated)
	_, err := store.Transition(ctx, Transition{OrderID: "order_1", To: models.PaymentStatusPaid, PaymentID: "pay_1"})
	require.NoError(t, err)

	dup := &models.PaymentOrder{OrderID: "order_1", Amount: decimal.NewFromInt(1), Currency: "INR"}
	err = store.Create(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicateOrder)

	got, err := store.FindByOrderID(ctx, "order_1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPaid, got.Status)
	assert.True(t, got.Amount.Equal(decimal.RequireFromString("49.99")))
}

func TestOrderStoreTransitions(t *testing.T) {
	tests := []struct {
		from     models.PaymentStatus
		to       models.PaymentStatus
		accepted bool
	}{
		{models.PaymentStatusCreated, models.PaymentStatusAttempted, true},
		{models.PaymentStatusCreated, models.PaymentStatusPaid, true},
		{models.PaymentStatusCreated, models.PaymentStatusFailed, true},
		{models.PaymentStatusAttempted, models.PaymentStatusPaid, true},
		{models.PaymentStatusAttempted, models.PaymentStatusFailed, true},
		{models.PaymentStatusAttempted, models.PaymentStatusAttempted, false},
		{models.PaymentStatusPaid, models.PaymentStatusFailed, false},
		{models.PaymentStatusPaid, models.PaymentStatusAttempted, false},
		{models.PaymentStatusFailed, models.PaymentStatusPaid, false},
		{models.PaymentStatusFailed, models.PaymentStatusAttempted, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			store := NewOrderStore(testutil.NewDB(t))
			seedOrder(t, store, "order_1", tt.from)

			order, err := store.Transition(context.Background(), Transition{
				OrderID:   "order_1",
				To:        tt.to,
				PaymentID: "pay_1",
			})
			require.NotNil(t, order)
			if tt.accepted {
				require.NoError(t, err)
				assert.Equal(t, tt.to, order.Status)
				assert.Equal(t, "pay_1", order.GatewayPaymentID)
			} else {
				assert.ErrorIs(t, err, ErrTransitionRejected)
				assert.Equal(t, tt.from, order.Status)
				assert.Empty(t, order.GatewayPaymentID)
			}
		})
	}
}

func TestOrderStoreTransitionToCreatedIsRefused(t *testing.T) {
	store := NewOrderStore(testutil.NewDB(t))
	seedOrder(t, store, "order_1", models.PaymentStatusPaid)

	_, err := store.Transition(context.Background(), Transition{OrderID: "order_1", To: models.PaymentStatusCreated})
	assert.ErrorIs(t, err, ErrStatusConflict)
}

func TestOrderStoreTransitionUnknownOrder(t *testing.T) {
	store := NewOrderStore(testutil.NewDB(t))

	order, err := store.Transition(context.Background(), Transition{OrderID: "order_404", To: models.PaymentStatusPaid})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderStoreAttachSignature(t *testing.T) {
	store := NewOrderStore(testutil.NewDB(t))
	ctx := context.Background()
	seedOrder(t, store, "order_1", models.PaymentStatusCreated)

	_, err := store.Transition(ctx, Transition{OrderID: "order_1", To: models.PaymentStatusPaid, PaymentID: "pay_1"})
	require.NoError(t, err)

	attached, err := store.AttachSignature(ctx, "order_1", "pay_other", "sig_other")
	require.NoError(t, err)
	assert.False(t, attached)
	got, _ := store.FindByOrderID(ctx, "order_1")
	assert.Empty(t, got.GatewaySignature, "signature for a different payment is ignored")

	attached, err = store.AttachSignature(ctx, "order_1", "pay_1", "sig_1")
	require.NoError(t, err)
	assert.True(t, attached)
	attached, err = store.AttachSignature(ctx, "order_1", "pay_1", "sig_2")
	require.NoError(t, err)
	assert.False(t, attached)
	got, _ = store.FindByOrderID(ctx, "order_1")
	assert.Equal(t, "sig_1", got.GatewaySignature, "first signature is kept")
}

func TestOrderStoreAttachSignatureAdoptsPaymentID(t *testing.T) {
	store := NewOrderStore(testutil.NewDB(t))
	ctx := context.Background()
	seedOrder(t, store, "order_1", models.PaymentStatusCreated)

	_, err := store.Transition(ctx, Transition{OrderID: "order_1", To: models.PaymentStatusPaid})
	require.NoError(t, err)

	attached, err := store.AttachSignature(ctx, "order_1", "pay_1", "sig_1")
	require.NoError(t, err)
	assert.True(t, attached)

	got, err := store.FindByOrderID(ctx, "order_1")
	require.NoError(t, err)
	assert.Equal(t, "pay_1", got.GatewayPaymentID)
	assert.Equal(t, "sig_1", got.GatewaySignature)
}

func TestOrderStoreList(t *testing.T) {
	store := NewOrderStore(testutil.NewDB(t))
	ctx := context.Background()

	seedOrder(t, store, "order_1", models.PaymentStatusCreated)
	seedOrder(t, store, "order_2", models.PaymentStatusPaid)
	seedOrder(t, store, "order_3", models.PaymentStatusPaid)

	orders, total, err := store.List(ctx, OrderFilter{}, 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, orders, 2)

	orders, total, err = store.List(ctx, OrderFilter{Status: models.PaymentStatusPaid}, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, o := range orders {
		assert.Equal(t, models.PaymentStatusPaid, o.Status)
	}

	_, total, err = store.List(ctx, OrderFilter{Email: "ASHA@example.com"}, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	_, total, err = store.List(ctx, OrderFilter{Email: "nobody@example.com"}, 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
}
