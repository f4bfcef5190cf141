package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"nexyatra/internal/domain"
)

type PaymentOrderRepository struct {
	db *gorm.DB
}

func NewPaymentOrderRepository(db *gorm.DB) *PaymentOrderRepository {
	return &PaymentOrderRepository{db: db}
}

func (r *PaymentOrderRepository) Create(ctx context.Context, order *domain.PaymentOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *PaymentOrderRepository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.PaymentOrder, error) {
	var order domain.PaymentOrder
	if err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// RecordOutcomeIdempotent moves an order to a terminal status exactly once.
// An order already in a terminal state is left untouched and (false, nil) is
// returned, so redelivered status checks cannot flip an outcome.
func (r *PaymentOrderRepository) RecordOutcomeIdempotent(ctx context.Context, transactionID string, status domain.OrderStatus, state, message string, completedAt time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.PaymentOrder{}).
		Where("transaction_id = ? AND status NOT IN ?", transactionID, []domain.OrderStatus{domain.OrderSuccess, domain.OrderFailed}).
		Updates(map[string]interface{}{
			"status":          status,
			"gateway_state":   state,
			"gateway_message": message,
			"completed_at":    completedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// List returns orders newest-first for the admin dashboard.
func (r *PaymentOrderRepository) List(ctx context.Context, status *domain.OrderStatus, limit, offset int) ([]domain.PaymentOrder, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.PaymentOrder{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []domain.PaymentOrder
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
