package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Govind-619/CorpSite/models"
	"github.com/Govind-619/CorpSite/services"
	"github.com/Govind-619/CorpSite/utils"

	"github.com/gin-gonic/gin"
)

// PaymentService is the part of services.PaymentService the handlers use
type PaymentService interface {
	CreateOrder(ctx context.Context, in services.CreateOrderInput) (*services.OrderSummary, error)
	VerifyPayment(ctx context.Context, in services.VerifyPaymentInput) (*services.VerificationResult, error)
	GetStatus(ctx context.Context, orderID string) (*models.PaymentOrder, error)
	ListOrders(ctx context.Context, filter services.OrderFilter, p *utils.Pagination) ([]models.PaymentOrder, error)
	Export(ctx context.Context, w io.Writer, filter services.OrderFilter) (int, error)
	Receipt(ctx context.Context, orderID string, issuer services.ReceiptIssuer) ([]byte, error)
}

// PaymentController serves the payment endpoints
type PaymentController struct {
	payments PaymentService
	issuer   func(ctx context.Context) services.ReceiptIssuer
}

func NewPaymentController(payments PaymentService, issuer func(ctx context.Context) services.ReceiptIssuer) *PaymentController {
	if issuer == nil {
		issuer = func(context.Context) services.ReceiptIssuer { return services.ReceiptIssuer{} }
	}
	return &PaymentController{payments: payments, issuer: issuer}
}

type createOrderRequest struct {
	Amount   json.RawMessage `json:"amount"`
	Currency string          `json:"currency"`
	Customer models.Customer `json:"customer"`
}

type verifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// POST /api/payment/create-order
func (pc *PaymentController) CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")

	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid create order request: %v", err)
		utils.BadRequest(c, "Invalid request body", nil)
		return
	}

	summary, err := pc.payments.CreateOrder(c.Request.Context(), services.CreateOrderInput{
		Amount:   req.Amount,
		Currency: req.Currency,
		Customer: req.Customer,
	})
	if err != nil {
		utils.RespondError(c, toAppError(err))
		return
	}

	utils.Success(c, "", gin.H{
		"order": gin.H{
			"id":       summary.OrderID,
			"amount":   summary.Amount,
			"currency": summary.Currency,
		},
	})
}

// POST /api/payment/verify
func (pc *PaymentController) Verify(c *gin.Context) {
	utils.LogInfo("VerifyPayment called")

	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid verify request: %v", err)
		utils.BadRequest(c, "Invalid request body", nil)
		return
	}

	result, err := pc.payments.VerifyPayment(c.Request.Context(), services.VerifyPaymentInput{
		OrderID:   req.RazorpayOrderID,
		PaymentID: req.RazorpayPaymentID,
		Signature: req.RazorpaySignature,
	})
	if err != nil {
		utils.RespondError(c, toAppError(err))
		return
	}

	message := "Payment verified successfully"
	if result.AlreadyPaid {
		message = "Payment already verified"
	}
	utils.Success(c, message, nil)
}

// GET /api/payment/status/:orderId
func (pc *PaymentController) Status(c *gin.Context) {
	orderID := c.Param("orderId")
	utils.LogDebug("Payment status requested for order ID: %s", orderID)

	order, err := pc.payments.GetStatus(c.Request.Context(), orderID)
	if err != nil {
		utils.RespondError(c, toAppError(err))
		return
	}
	utils.Success(c, "", gin.H{"payment": order})
}

// GET /api/payment/orders
func (pc *PaymentController) ListOrders(c *gin.Context) {
	pagination := utils.NewPagination(c)
	filter, ok := orderFilterFromQuery(c)
	if !ok {
		return
	}

	orders, err := pc.payments.ListOrders(c.Request.Context(), filter, pagination)
	if err != nil {
		utils.RespondError(c, toAppError(err))
		return
	}
	utils.SuccessWithPagination(c, orders, pagination)
}

// GET /api/payment/receipt/:orderId
func (pc *PaymentController) Receipt(c *gin.Context) {
	orderID := c.Param("orderId")
	utils.LogInfo("Receipt requested for order ID: %s", orderID)

	pdf, err := pc.payments.Receipt(c.Request.Context(), orderID, pc.issuer(c.Request.Context()))
	if err != nil {
		utils.RespondError(c, toAppError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", orderID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/payment/export
func (pc *PaymentController) Export(c *gin.Context) {
	filter, ok := orderFilterFromQuery(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	n, err := pc.payments.Export(c.Request.Context(), &buf, filter)
	if err != nil {
		utils.RespondError(c, toAppError(err))
		return
	}
	utils.LogInfo("Exported %d payment orders", n)

	filename := fmt.Sprintf("payments-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// GET /api/payment/test
func (pc *PaymentController) RouteInfo(c *gin.Context) {
	utils.Success(c, "Payment routes are working", gin.H{
		"routes": []string{
			"POST /api/payment/create-order",
			"POST /api/payment/verify",
			"GET /api/payment/status/:orderId",
			"POST /api/payment/webhook",
			"GET /api/payment/orders",
			"GET /api/payment/receipt/:orderId",
			"GET /api/payment/export",
		},
	})
}

func orderFilterFromQuery(c *gin.Context) (services.OrderFilter, bool) {
	filter := services.OrderFilter{
		Status: models.PaymentStatus(c.Query("status")),
		Email:  c.Query("email"),
	}
	switch filter.Status {
	case "", models.PaymentStatusCreated, models.PaymentStatusAttempted, models.PaymentStatusPaid, models.PaymentStatusFailed:
		return filter, true
	}
	var fields utils.FieldValidationErrors
	fields.Add("status", "must be one of: created, attempted, paid, failed")
	utils.ValidationFailed(c, "Invalid filter", fields)
	return filter, false
}
