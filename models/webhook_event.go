package models

import (
	"time"

	"gorm.io/datatypes"
)

// Webhook event outcomes recorded for auditing
const (
	WebhookOutcomeApplied   = "applied"
	WebhookOutcomeNoop      = "noop"
	WebhookOutcomeIgnored   = "ignored"
	WebhookOutcomeRejected  = "rejected"
	WebhookOutcomeDuplicate = "duplicate"
)

// WebhookEvent stores every gateway event once, keyed by its event id
type WebhookEvent struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	EventID      string         `json:"event_id" gorm:"size:128;not null;uniqueIndex"`
	EventType    string         `json:"event_type" gorm:"size:64;not null"`
	OrderID      string         `json:"order_id" gorm:"size:64;index"`
	PaymentID    string         `json:"payment_id" gorm:"size:64"`
	Payload      datatypes.JSON `json:"payload" gorm:"not null"`
	Outcome      string         `json:"outcome" gorm:"size:16"`
	ProcessError *string        `json:"process_error,omitempty" gorm:"size:255"`
	ReceivedAt   time.Time      `json:"received_at" gorm:"not null"`
	ProcessedAt  *time.Time     `json:"processed_at,omitempty"`
}

func (WebhookEvent) TableName() string { return "webhook_events" }
