package phonepe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"nexyatra/internal/config"
)

// ErrUnreachable covers transport failures, upstream 5xx and an open circuit
// breaker. It is distinct from a GatewayError, which is the processor
// explicitly declining the order.
var ErrUnreachable = errors.New("payment gateway unreachable")

// GatewayError carries the processor's own decline code and message verbatim.
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway rejected: %s (%s)", e.Message, e.Code)
}

// OrderPayload is the checkout/v2/pay request body.
type OrderPayload struct {
	MerchantOrderID string      `json:"merchantOrderId"`
	Amount          int64       `json:"amount"`
	ExpireAfter     int         `json:"expireAfter"`
	MetaInfo        MetaInfo    `json:"metaInfo"`
	PaymentFlow     PaymentFlow `json:"paymentFlow"`
}

type MetaInfo struct {
	UDF1 string `json:"udf1"`
	UDF2 string `json:"udf2"`
	UDF3 string `json:"udf3"`
}

type PaymentFlow struct {
	Type         string       `json:"type"`
	Message      string       `json:"message"`
	MerchantURLs MerchantURLs `json:"merchantUrls"`
}

type MerchantURLs struct {
	RedirectURL string `json:"redirectUrl"`
}

type payResponse struct {
	RedirectURL string `json:"redirectUrl"`
	State       string `json:"state"`
	Code        string `json:"code"`
	Message     string `json:"message"`
}

type statusResponse struct {
	State   string `json:"state"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OrderResult is the accepted-order view returned by CreateOrder.
type OrderResult struct {
	RedirectURL string
}

// StatusResult is the processor's order state at query time.
type StatusResult struct {
	State   string
	Message string
}

// Client talks to the PhonePe checkout v2 API. All calls run through a
// circuit breaker so a dead upstream fails fast instead of tying up request
// handlers for the full timeout, one by one.
type Client struct {
	http       *resty.Client
	auth       Authorizer
	breaker    *gobreaker.CircuitBreaker
	merchantID string
	paymentURL string
	statusURL  string
}

func NewClient(cfg config.PhonePeConfig) *Client {
	httpc := resty.New().SetTimeout(cfg.Timeout)
	return &Client{
		http:       httpc,
		auth:       NewOAuthAuthorizer(httpc, cfg.AuthURL, cfg.ClientID, cfg.ClientSecret),
		breaker:    newBreaker(),
		merchantID: cfg.MerchantID,
		paymentURL: cfg.PaymentURL,
		statusURL:  cfg.StatusURL,
	}
}

// NewClientWithAuthorizer is the seam for tests and for swapping in the
// legacy checksum scheme.
func NewClientWithAuthorizer(cfg config.PhonePeConfig, auth Authorizer) *Client {
	c := NewClient(cfg)
	c.auth = auth
	return c
}

func newBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "phonepe",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}

// CreateOrder registers the order with the processor and returns the hosted
// payment URL. A processor decline comes back as *GatewayError with the
// upstream code and message untouched.
func (c *Client) CreateOrder(ctx context.Context, payload OrderPayload) (*OrderResult, error) {
	header, err := c.auth.AuthHeader(ctx)
	if err != nil {
		return nil, err
	}

	res, err := c.breaker.Execute(func() (interface{}, error) {
		var body payResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetHeader("Authorization", header).
			SetHeader("X-Merchant-Id", c.merchantID).
			SetBody(payload).
			SetResult(&body).
			SetError(&body).
			Post(c.paymentURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
		}
		if resp.StatusCode() >= 500 {
			return nil, fmt.Errorf("%w: upstream %s", ErrUnreachable, resp.Status())
		}
		if resp.IsError() || body.RedirectURL == "" {
			msg := body.Message
			if msg == "" {
				msg = "Failed to create payment order"
			}
			return nil, &GatewayError{Code: body.Code, Message: msg}
		}
		return &OrderResult{RedirectURL: body.RedirectURL}, nil
	})
	if err != nil {
		return nil, breakerErr(err)
	}
	return res.(*OrderResult), nil
}

// OrderStatus queries the processor for the current state of an order.
func (c *Client) OrderStatus(ctx context.Context, merchantOrderID string) (*StatusResult, error) {
	header, err := c.auth.AuthHeader(ctx)
	if err != nil {
		return nil, err
	}

	res, err := c.breaker.Execute(func() (interface{}, error) {
		var body statusResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetHeader("Authorization", header).
			SetHeader("X-Merchant-Id", c.merchantID).
			SetResult(&body).
			SetError(&body).
			Get(fmt.Sprintf("%s/%s/status", c.statusURL, merchantOrderID))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
		}
		if resp.StatusCode() >= 500 {
			return nil, fmt.Errorf("%w: upstream %s", ErrUnreachable, resp.Status())
		}
		if resp.IsError() && body.State == "" {
			msg := body.Message
			if msg == "" {
				msg = "Failed to fetch order status"
			}
			return nil, &GatewayError{Code: body.Code, Message: msg}
		}
		return &StatusResult{State: body.State, Message: body.Message}, nil
	})
	if err != nil {
		return nil, breakerErr(err)
	}
	return res.(*StatusResult), nil
}

// breakerErr folds gobreaker's own sentinels into the unreachable bucket; a
// tripped breaker looks the same to callers as a down upstream.
func breakerErr(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return err
}
