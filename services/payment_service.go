package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Govind-619/CorpSite/models"
	"github.com/Govind-619/CorpSite/utils"
)

// CreateOrderInput is the client request for a new payment order
type CreateOrderInput struct {
	Amount   json.RawMessage
	Currency string
	Customer models.Customer
}

// OrderSummary is returned to the client after order creation.
// Amount is in minor units, ready to hand to the checkout widget.
type OrderSummary struct {
	OrderID  string
	Amount   int64
	Currency string
}

// VerifyPaymentInput carries the proof the checkout widget hands back
type VerifyPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
}

// VerificationResult reports the order after verification.
// AlreadyPaid is set when the order was paid before this call.
type VerificationResult struct {
	Order       *models.PaymentOrder
	AlreadyPaid bool
}

// PaymentService owns the payment order lifecycle
type PaymentService struct {
	store   OrderStore
	gateway Gateway
	signer  *SignatureVerifier
	now     func() time.Time
}

func NewPaymentService(store OrderStore, gateway Gateway, signer *SignatureVerifier) *PaymentService {
	return &PaymentService{
		store:   store,
		gateway: gateway,
		signer:  signer,
		now:     time.Now,
	}
}

// CreateOrder opens an order on the gateway and records it locally as created.
// Nothing is persisted when validation or the gateway call fails.
func (s *PaymentService) CreateOrder(ctx context.Context, in CreateOrderInput) (*OrderSummary, error) {
	var fields utils.FieldValidationErrors

	amount, ok := ParseAmount(in.Amount)
	var minor int64
	if ok {
		minor, ok = ToMinorUnits(amount)
	}
	if !ok {
		fields.Add("amount", "must be a positive number")
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = models.DefaultCurrency
	}
	if !isCurrencyCode(currency) {
		fields.Add("currency", "must be a three letter ISO 4217 code")
	}

	customer := models.Customer{
		Name:    strings.TrimSpace(in.Customer.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Customer.Email)),
		Contact: strings.TrimSpace(in.Customer.Contact),
	}
	if customer.Email != "" && !utils.IsValidEmail(customer.Email) {
		fields.Add("customer.email", "must be a valid email address")
	}
	if customer.Contact != "" && !utils.IsValidPhone(customer.Contact) {
		fields.Add("customer.contact", "must be a valid phone number")
	}
	if err := newInputError(fields); err != nil {
		utils.LogDebug("Rejected order creation: %v", err)
		return nil, err
	}

	receipt := "receipt_" + strconv.FormatInt(s.now().UnixNano(), 10)
	utils.LogInfo("Creating gateway order - Receipt: %s, Amount: %d %s", receipt, minor, currency)

	gwOrder, err := s.gateway.CreateOrder(ctx, GatewayOrderRequest{
		Amount:   minor,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		utils.LogError("Gateway order creation failed - Receipt: %s: %v", receipt, err)
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	if gwOrder.Amount != 0 && gwOrder.Amount != minor {
		utils.LogError("Gateway amount mismatch for order %s - Sent: %d, Got: %d", gwOrder.ID, minor, gwOrder.Amount)
	}
	if gwOrder.Currency != "" {
		currency = gwOrder.Currency
	}

	order := &models.PaymentOrder{
		OrderID:  gwOrder.ID,
		Amount:   amount,
		Currency: currency,
		Status:   models.PaymentStatusCreated,
		Receipt:  receipt,
		Customer: customer,
	}
	if err := s.store.Create(ctx, order); err != nil {
		// the gateway knows this order but we do not; reconciliation needs the id
		utils.LogError("Gateway order %s created but not persisted: %v", gwOrder.ID, err)
		return nil, err
	}
	utils.LogInfo("Payment order %s created - Amount: %s %s", order.OrderID, amount.String(), currency)

	return &OrderSummary{
		OrderID:  gwOrder.ID,
		Amount:   minor,
		Currency: currency,
	}, nil
}

// VerifyPayment checks the client's payment signature and marks the order paid.
// A bad signature never changes the order.
func (s *PaymentService) VerifyPayment(ctx context.Context, in VerifyPaymentInput) (*VerificationResult, error) {
	var fields utils.FieldValidationErrors
	utils.RequireString(&fields, "razorpay_order_id", in.OrderID)
	utils.RequireString(&fields, "razorpay_payment_id", in.PaymentID)
	utils.RequireString(&fields, "razorpay_signature", in.Signature)
	if err := newInputError(fields); err != nil {
		return nil, err
	}

	if !s.signer.VerifyPayment(in.OrderID, in.PaymentID, in.Signature) {
		utils.LogError("Payment verification failed - Order ID: %s, Payment ID: %s", in.OrderID, in.PaymentID)
		return nil, ErrInvalidSignature
	}
	utils.LogDebug("Payment signature verified for order ID: %s", in.OrderID)

	order, changed, err := markPaid(ctx, s.store, in.OrderID, in.PaymentID, strings.ToLower(strings.TrimSpace(in.Signature)))
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			utils.LogError("Verified payment %s references unknown order %s", in.PaymentID, in.OrderID)
		} else {
			utils.LogError("Failed to mark order %s paid: %v", in.OrderID, err)
		}
		return nil, err
	}

	if changed {
		utils.LogInfo("Order %s marked paid by payment %s", order.OrderID, in.PaymentID)
	} else {
		utils.LogInfo("Order %s already paid, verification is a no-op", order.OrderID)
	}
	return &VerificationResult{Order: order, AlreadyPaid: !changed}, nil
}

// GetStatus returns the stored order without side effects
func (s *PaymentService) GetStatus(ctx context.Context, orderID string) (*models.PaymentOrder, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrOrderNotFound
	}
	return s.store.FindByOrderID(ctx, orderID)
}

// ListOrders returns a page of orders, newest first
func (s *PaymentService) ListOrders(ctx context.Context, filter OrderFilter, p *utils.Pagination) ([]models.PaymentOrder, error) {
	orders, total, err := s.store.List(ctx, filter, p.Offset, p.Limit)
	if err != nil {
		return nil, err
	}
	p.SetTotal(total)
	return orders, nil
}

// MaxExportRows caps a single spreadsheet export
const MaxExportRows = 10000

// Export writes the orders matching filter as an XLSX workbook and returns how many were written
func (s *PaymentService) Export(ctx context.Context, w io.Writer, filter OrderFilter) (int, error) {
	orders, total, err := s.store.List(ctx, filter, 0, MaxExportRows)
	if err != nil {
		return 0, err
	}
	if total > int64(len(orders)) {
		utils.LogInfo("Order export truncated - Matching: %d, Exported: %d", total, len(orders))
	}

	title := "Payment Orders"
	if filter.Status != "" {
		title += " (" + string(filter.Status) + ")"
	}
	title += " - generated " + s.now().Format("2006-01-02 15:04")
	if err := ExportOrders(w, title, orders); err != nil {
		return 0, fmt.Errorf("export orders: %w", err)
	}
	return len(orders), nil
}

// Receipt renders the PDF receipt of a paid order
func (s *PaymentService) Receipt(ctx context.Context, orderID string, issuer ReceiptIssuer) ([]byte, error) {
	order, err := s.GetStatus(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return RenderReceipt(issuer, order)
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
