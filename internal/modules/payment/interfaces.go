package payment

import (
	"context"
	"time"

	"nexyatra/internal/domain"
	"nexyatra/internal/gateway/phonepe"
)

type gatewayClient interface {
	CreateOrder(ctx context.Context, payload phonepe.OrderPayload) (*phonepe.OrderResult, error)
	OrderStatus(ctx context.Context, merchantOrderID string) (*phonepe.StatusResult, error)
}

type orderRepo interface {
	Create(ctx context.Context, order *domain.PaymentOrder) error
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.PaymentOrder, error)
	RecordOutcomeIdempotent(ctx context.Context, transactionID string, status domain.OrderStatus, state, message string, completedAt time.Time) (bool, error)
	List(ctx context.Context, status *domain.OrderStatus, limit, offset int) ([]domain.PaymentOrder, int64, error)
}

type statusCache interface {
	GetTerminal(ctx context.Context, transactionID string) (domain.OrderStatus, string, bool)
	SetTerminal(ctx context.Context, transactionID string, status domain.OrderStatus, message string)
}

type eventPublisher interface {
	Publish(event string, payload interface{})
}
