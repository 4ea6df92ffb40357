package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Govind-619/CorpSite/models"
	"github.com/Govind-619/CorpSite/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gateway event types handled by the ingestor
const (
	EventPaymentAuthorized = "payment.authorized"
	EventPaymentCaptured   = "payment.captured"
	EventPaymentFailed     = "payment.failed"
	EventOrderPaid         = "order.paid"
)

type gatewayEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment *struct {
			Entity gatewayPayment `json:"entity"`
		} `json:"payment"`
		Order *struct {
			Entity gatewayOrderEntity `json:"entity"`
		} `json:"order"`
	} `json:"payload"`
}

type gatewayPayment struct {
	ID               string `json:"id"`
	OrderID          string `json:"order_id"`
	Status           string `json:"status"`
	ErrorCode        string `json:"error_code"`
	ErrorDescription string `json:"error_description"`
}

type gatewayOrderEntity struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (e *gatewayEvent) orderID() string {
	if e.Payload.Order != nil && e.Payload.Order.Entity.ID != "" {
		return e.Payload.Order.Entity.ID
	}
	if e.Payload.Payment != nil {
		return e.Payload.Payment.Entity.OrderID
	}
	return ""
}

func (e *gatewayEvent) payment() gatewayPayment {
	if e.Payload.Payment != nil {
		return e.Payload.Payment.Entity
	}
	return gatewayPayment{}
}

// WebhookResult describes what the ingestor did with one delivery
type WebhookResult struct {
	EventID   string
	EventType string
	OrderID   string
	Outcome   string
	Detail    string
}

// WebhookService reconciles gateway-pushed events with stored orders
type WebhookService struct {
	db *gorm.DB
}

func NewWebhookService(db *gorm.DB) *WebhookService {
	return &WebhookService{db: db}
}

// EventIDFor returns the gateway event id, or a digest of the body when the
// header is missing so redeliveries still collapse onto one record.
func EventIDFor(headerID string, body []byte) string {
	if id := strings.TrimSpace(headerID); id != "" {
		return id
	}
	sum := sha256.Sum256(body)
	return "sha256:" + hex.EncodeToString(sum[:])
}

// Handle applies an authenticated event body. Conflicts and unknown orders are
// recorded and acknowledged; only store failures are returned so the gateway retries.
func (s *WebhookService) Handle(ctx context.Context, eventID string, body []byte) (*WebhookResult, error) {
	var ev gatewayEvent
	if err := json.Unmarshal(body, &ev); err != nil || ev.Event == "" {
		return nil, fmt.Errorf("%w: malformed webhook payload", ErrInvalidInput)
	}

	result := &WebhookResult{
		EventID:   eventID,
		EventType: ev.Event,
		OrderID:   ev.orderID(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := models.WebhookEvent{
			EventID:    eventID,
			EventType:  ev.Event,
			OrderID:    result.OrderID,
			PaymentID:  ev.payment().ID,
			Payload:    datatypes.JSON(body),
			ReceivedAt: time.Now(),
		}
		res := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "event_id"}}, DoNothing: true}).Create(&record)
		if res.Error != nil {
			return fmt.Errorf("%w: record webhook event %s: %v", ErrPersistence, eventID, res.Error)
		}
		if res.RowsAffected == 0 {
			result.Outcome = models.WebhookOutcomeDuplicate
			return nil
		}

		applyErr := s.apply(ctx, NewOrderStore(tx), &ev, result)
		if applyErr != nil && errors.Is(applyErr, ErrPersistence) {
			return applyErr
		}

		processed := time.Now()
		updates := map[string]interface{}{
			"outcome":      result.Outcome,
			"processed_at": &processed,
		}
		if applyErr != nil {
			msg := truncate(applyErr.Error(), 255)
			updates["process_error"] = &msg
			result.Detail = msg
		}
		if err := tx.Model(&models.WebhookEvent{}).Where("id = ?", record.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("%w: update webhook event %s: %v", ErrPersistence, eventID, err)
		}
		return nil
	})
	if err != nil {
		utils.LogError("Webhook event %s (%s) failed: %v", eventID, ev.Event, err)
		return nil, err
	}

	switch result.Outcome {
	case models.WebhookOutcomeDuplicate:
		utils.LogInfo("Webhook event %s deduplicated", eventID)
	case models.WebhookOutcomeRejected:
		utils.LogError("Webhook event %s (%s) for order %s rejected: %s", eventID, ev.Event, result.OrderID, result.Detail)
	default:
		utils.LogInfo("Webhook event %s (%s) for order %s: %s", eventID, ev.Event, result.OrderID, result.Outcome)
	}
	return result, nil
}

func (s *WebhookService) apply(ctx context.Context, store OrderStore, ev *gatewayEvent, result *WebhookResult) error {
	payment := ev.payment()

	switch ev.Event {
	case EventPaymentAuthorized, EventPaymentCaptured, EventPaymentFailed, EventOrderPaid:
		if result.OrderID == "" {
			result.Outcome = models.WebhookOutcomeRejected
			return fmt.Errorf("%w: event carries no order id", ErrInvalidInput)
		}
	default:
		result.Outcome = models.WebhookOutcomeIgnored
		return nil
	}

	var (
		changed bool
		err     error
	)
	switch ev.Event {
	case EventPaymentAuthorized:
		_, changed, err = markAttempted(ctx, store, result.OrderID, payment.ID)
	case EventPaymentCaptured, EventOrderPaid:
		_, changed, err = markPaid(ctx, store, result.OrderID, payment.ID, "")
	case EventPaymentFailed:
		_, changed, err = markFailed(ctx, store, result.OrderID, payment.ID, failureReason(payment))
	}

	switch {
	case err != nil:
		result.Outcome = models.WebhookOutcomeRejected
	case changed:
		result.Outcome = models.WebhookOutcomeApplied
	default:
		result.Outcome = models.WebhookOutcomeNoop
	}
	return err
}

func failureReason(p gatewayPayment) string {
	switch {
	case p.ErrorCode != "" && p.ErrorDescription != "":
		return p.ErrorCode + ": " + p.ErrorDescription
	case p.ErrorDescription != "":
		return p.ErrorDescription
	case p.ErrorCode != "":
		return p.ErrorCode
	}
	return "payment failed at gateway"
}
