package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Govind-619/CorpSite/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Transition describes a status change requested for one order
type Transition struct {
	OrderID       string
	To            models.PaymentStatus
	PaymentID     string
	Signature     string
	FailureReason string
}

// OrderFilter narrows order listings
type OrderFilter struct {
	Status models.PaymentStatus
	Email  string
}

// OrderStore persists payment orders keyed by gateway order id
type OrderStore interface {
	Create(ctx context.Context, order *models.PaymentOrder) error
	FindByOrderID(ctx context.Context, orderID string) (*models.PaymentOrder, error)
	// Transition applies t atomically if the order is in an allowed source status.
	// When it is not, the current order is returned with ErrTransitionRejected.
	Transition(ctx context.Context, t Transition) (*models.PaymentOrder, error)
	AttachSignature(ctx context.Context, orderID, paymentID, signature string) (bool, error)
	List(ctx context.Context, filter OrderFilter, offset, limit int) ([]models.PaymentOrder, int64, error)
}

// GormOrderStore is the OrderStore over gorm
type GormOrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

func (s *GormOrderStore) Create(ctx context.Context, order *models.PaymentOrder) error {
	if order.Status == "" {
		order.Status = models.PaymentStatusCreated
	}
	res := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "order_id"}}, DoNothing: true}).
		Create(order)
	if res.Error != nil {
		return fmt.Errorf("%w: create order %s: %v", ErrPersistence, order.OrderID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateOrder, order.OrderID)
	}
	return nil
}

func (s *GormOrderStore) FindByOrderID(ctx context.Context, orderID string) (*models.PaymentOrder, error) {
	var order models.PaymentOrder
	err := s.db.WithContext(ctx).Where("order_id = ?", orderID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find order %s: %v", ErrPersistence, orderID, err)
	}
	return &order, nil
}

func (s *GormOrderStore) Transition(ctx context.Context, t Transition) (*models.PaymentOrder, error) {
	sources := models.AllowedSources(t.To)
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: %s is not a transition target", ErrStatusConflict, t.To)
	}

	updates := map[string]interface{}{
		"status":     t.To,
		"updated_at": time.Now(),
	}
	if t.PaymentID != "" {
		updates["gateway_payment_id"] = t.PaymentID
	}
	if t.Signature != "" {
		updates["gateway_signature"] = t.Signature
	}
	if t.FailureReason != "" {
		updates["failure_reason"] = truncate(t.FailureReason, 255)
	}

	res := s.db.WithContext(ctx).Model(&models.PaymentOrder{}).
		Where("order_id = ? AND status IN ?", t.OrderID, sources).
		Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("%w: transition order %s to %s: %v", ErrPersistence, t.OrderID, t.To, res.Error)
	}

	order, err := s.FindByOrderID(ctx, t.OrderID)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected == 0 {
		return order, ErrTransitionRejected
	}
	return order, nil
}

// AttachSignature stamps the verified payment proof on a paid order that has no
// signature yet. An order marked paid without a payment id adopts paymentID.
// It reports whether a row changed.
func (s *GormOrderStore) AttachSignature(ctx context.Context, orderID, paymentID, signature string) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.PaymentOrder{}).
		Where("order_id = ? AND status = ?", orderID, models.PaymentStatusPaid).
		Where("(gateway_payment_id = ? OR gateway_payment_id = '' OR gateway_payment_id IS NULL)", paymentID).
		Where("(gateway_signature = '' OR gateway_signature IS NULL)").
		Updates(map[string]interface{}{
			"gateway_payment_id": paymentID,
			"gateway_signature":  signature,
			"updated_at":         time.Now(),
		})
	if res.Error != nil {
		return false, fmt.Errorf("%w: attach signature to %s: %v", ErrPersistence, orderID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *GormOrderStore) List(ctx context.Context, filter OrderFilter, offset, limit int) ([]models.PaymentOrder, int64, error) {
	scoped := func() *gorm.DB {
		query := s.db.WithContext(ctx).Model(&models.PaymentOrder{})
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.Email != "" {
			query = query.Where("LOWER(customer_email) = ?", strings.ToLower(filter.Email))
		}
		return query
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: count orders: %v", ErrPersistence, err)
	}

	var orders []models.PaymentOrder
	q := scoped().Order("created_at DESC").Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: list orders: %v", ErrPersistence, err)
	}
	return orders, total, nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
