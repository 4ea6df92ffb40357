package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Govind-619/CorpSite/utils"

	razorpay "github.com/razorpay/razorpay-go"
)

// GatewayOrderRequest is what the gateway needs to open an order. Amount is in minor units.
type GatewayOrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]string
}

// GatewayOrder is the gateway's canonical view of a newly created order
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Status   string
}

// Gateway creates orders on the payment processor
type Gateway interface {
	CreateOrder(ctx context.Context, req GatewayOrderRequest) (*GatewayOrder, error)
}

// RazorpayGateway is the Gateway backed by the Razorpay Orders API
type RazorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway builds the client once at process start
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	utils.LogInfo("Razorpay gateway configured - Key: %s", utils.MaskSecret(keyID))
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, req GatewayOrderRequest) (*GatewayOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	orderData := map[string]interface{}{
		"amount":          req.Amount,
		"currency":        req.Currency,
		"receipt":         req.Receipt,
		"payment_capture": 1,
	}
	if len(req.Notes) > 0 {
		orderData["notes"] = req.Notes
	}

	body, err := g.client.Order.Create(orderData, nil)
	if err != nil {
		return nil, err
	}
	return parseGatewayOrder(body)
}

func parseGatewayOrder(body map[string]interface{}) (*GatewayOrder, error) {
	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("gateway response has no order id")
	}
	order := &GatewayOrder{ID: id}
	order.Currency, _ = body["currency"].(string)
	order.Status, _ = body["status"].(string)

	switch v := body["amount"].(type) {
	case float64:
		order.Amount = int64(v)
	case int64:
		order.Amount = v
	case int:
		order.Amount = int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			order.Amount = n
		}
	}
	return order, nil
}
