package payment

// CreateOrderRequest is the storefront checkout payload. Amount is in rupees;
// conversion to paise happens server-side.
type CreateOrderRequest struct {
	Amount          float64 `json:"amount" example:"35000"`
	Phone           string  `json:"phone" example:"9876543210"`
	DestinationName string  `json:"destinationName" example:"Kerala"`
	DestinationSlug string  `json:"destinationSlug" example:"kerala"`
	CallbackURL     string  `json:"callbackUrl" example:"https://example.com/payment-callback"`
}

type CreateOrderResponse struct {
	Success       bool   `json:"success" example:"true"`
	RedirectURL   string `json:"redirectUrl" example:"https://mercury.phonepe.com/transact/..."`
	TransactionID string `json:"transactionId" example:"ORDER_1700000000000_A1B2C3"`
}

type CheckStatusRequest struct {
	TransactionID string `json:"transactionId" example:"ORDER_1700000000000_A1B2C3"`
}

type CheckStatusResponse struct {
	Success bool   `json:"success" example:"true"`
	Status  string `json:"status" example:"SUCCESS"`
	Message string `json:"message,omitempty" example:"Your payment is successful."`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Invalid phone number"`
	Code  string `json:"code,omitempty" example:"PAYMENT_DECLINED"`
}
