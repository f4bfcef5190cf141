package payment

import "errors"

var (
	ErrMissingFields  = errors.New("missing required fields")
	ErrInvalidPhone   = errors.New("invalid phone number")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrMissingOrderID = errors.New("missing order id")
	ErrNotConfigured  = errors.New("payment gateway not configured")
)
