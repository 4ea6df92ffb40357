package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle state of a payment order
type PaymentStatus string

const (
	PaymentStatusCreated   PaymentStatus = "created"
	PaymentStatusAttempted PaymentStatus = "attempted"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// DefaultCurrency is used when the client does not send one
const DefaultCurrency = "INR"

// IsTerminal reports whether no further transition may leave this status
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusFailed
}

// AllowedSources returns the statuses an order may be in when moving to target.
// Transitions only ever move forward.
func AllowedSources(target PaymentStatus) []PaymentStatus {
	switch target {
	case PaymentStatusAttempted:
		return []PaymentStatus{PaymentStatusCreated}
	case PaymentStatusPaid, PaymentStatusFailed:
		return []PaymentStatus{PaymentStatusCreated, PaymentStatusAttempted}
	default:
		return nil
	}
}

// CanTransition reports whether from -> to is a legal forward move
func CanTransition(from, to PaymentStatus) bool {
	for _, s := range AllowedSources(to) {
		if s == from {
			return true
		}
	}
	return false
}

// Customer is a snapshot taken when the order is created. It is never refreshed.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// PaymentOrder is one purchase attempt, keyed by the gateway order id.
// Amount is always in major units (rupees), exactly as the client sent it.
type PaymentOrder struct {
	ID               uint            `json:"-" gorm:"primaryKey"`
	OrderID          string          `json:"order_id" gorm:"size:64;not null;uniqueIndex"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:numeric;not null"`
	Currency         string          `json:"currency" gorm:"size:3;not null;default:INR"`
	Status           PaymentStatus   `json:"status" gorm:"size:16;not null;default:created;index"`
	Receipt          string          `json:"receipt" gorm:"size:40"`
	GatewayPaymentID string          `json:"gateway_payment_id,omitempty" gorm:"size:64"`
	GatewaySignature string          `json:"gateway_signature,omitempty" gorm:"size:128"`
	FailureReason    string          `json:"failure_reason,omitempty" gorm:"size:255"`
	Customer         Customer        `json:"customer" gorm:"embedded;embeddedPrefix:customer_"`
	CreatedAt        time.Time       `json:"created_at" gorm:"<-:create"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (PaymentOrder) TableName() string { return "payment_orders" }
