package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/Govind-619/CorpSite/services"
	"github.com/Govind-619/CorpSite/utils"

	"github.com/gin-gonic/gin"
)

const (
	webhookSignatureHeader = "X-Razorpay-Signature"
	webhookEventIDHeader   = "X-Razorpay-Event-Id"
)

// WebhookHandler applies authenticated gateway events
type WebhookHandler interface {
	Handle(ctx context.Context, eventID string, body []byte) (*services.WebhookResult, error)
}

// WebhookVerifier authenticates a raw webhook body
type WebhookVerifier interface {
	VerifyWebhook(body []byte, signature string) bool
}

// WebhookController receives gateway-pushed events
type WebhookController struct {
	events   WebhookHandler
	verifier WebhookVerifier
}

func NewWebhookController(events WebhookHandler, verifier WebhookVerifier) *WebhookController {
	return &WebhookController{events: events, verifier: verifier}
}

// POST /api/payment/webhook
func (wc *WebhookController) Receive(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.LogError("Failed to read webhook body: %v", err)
		utils.BadRequest(c, "Unreadable request body", nil)
		return
	}

	if !wc.verifier.VerifyWebhook(body, c.GetHeader(webhookSignatureHeader)) {
		utils.LogError("Webhook signature verification failed - IP: %s", c.ClientIP())
		utils.BadRequest(c, "Invalid webhook signature", nil)
		return
	}

	eventID := services.EventIDFor(c.GetHeader(webhookEventIDHeader), body)
	result, err := wc.events.Handle(c.Request.Context(), eventID, body)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			utils.LogError("Malformed webhook payload for event %s: %v", eventID, err)
			utils.BadRequest(c, "Malformed webhook payload", nil)
			return
		}
		utils.LogError("Webhook event %s could not be processed: %v", eventID, err)
		utils.InternalServerError(c, "Webhook processing failed", nil)
		return
	}

	utils.LogDebug("Webhook event %s acknowledged with outcome %s", result.EventID, result.Outcome)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
