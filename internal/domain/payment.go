package domain

import "time"

// OrderStatus is the shim-side view of a payment order. It is derived from
// the processor's state on every status check, never invented locally.
type OrderStatus string

const (
	OrderPending OrderStatus = "PENDING"
	OrderSuccess OrderStatus = "SUCCESS"
	OrderFailed  OrderStatus = "FAILED"
)

// Terminal reports whether the status can never change again.
func (s OrderStatus) Terminal() bool {
	return s == OrderSuccess || s == OrderFailed
}

// PaymentOrder is the audit record of one attempted payment. The shim itself
// stays stateless: the row is written best-effort and a write failure never
// fails the request it belongs to.
type PaymentOrder struct {
	ID              int64       `gorm:"primaryKey" json:"id"`
	TransactionID   string      `gorm:"type:varchar(64);uniqueIndex;not null" json:"transaction_id"`
	AmountPaise     int64       `gorm:"not null" json:"amount_paise"`
	Phone           string      `gorm:"type:varchar(20);not null" json:"phone"`
	DestinationName string      `gorm:"type:varchar(160)" json:"destination_name"`
	DestinationSlug string      `gorm:"type:varchar(120);index" json:"destination_slug"`
	RedirectURL     string      `gorm:"type:text" json:"redirect_url"`
	Status          OrderStatus `gorm:"type:varchar(20);default:'PENDING';index" json:"status"`
	GatewayState    string      `gorm:"type:varchar(40)" json:"gateway_state"`
	GatewayMessage  string      `gorm:"type:text" json:"gateway_message"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (PaymentOrder) TableName() string { return "payment_orders" }
