package payment

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"nexyatra/internal/config"
	"nexyatra/internal/domain"
	"nexyatra/internal/gateway/phonepe"
)

// orderExpirySeconds is how long the processor keeps an unpaid order open.
const orderExpirySeconds = 1200

var (
	mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
	nonDigits     = regexp.MustCompile(`\D`)
)

// OrderHandle is what a successful create hands back to the storefront. The
// transaction id is the only durable artifact; the caller persists it to
// correlate the later status check.
type OrderHandle struct {
	TransactionID string
	RedirectURL   string
	Status        domain.OrderStatus
}

// StatusView is the mapped outcome of one status query.
type StatusView struct {
	TransactionID string
	Status        domain.OrderStatus
	Message       string
}

// Service implements the order gateway shim: validate, sign, create, poll.
// It holds no per-order state between calls; orders and the status cache are
// best-effort recording, never load-bearing.
type Service struct {
	gateway gatewayClient
	orders  orderRepo
	cache   statusCache
	events  eventPublisher
	cfg     config.PhonePeConfig
	loggerf func(format string, args ...interface{})
}

func NewService(gateway gatewayClient, orders orderRepo, cache statusCache, events eventPublisher, cfg config.PhonePeConfig, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		gateway: gateway,
		orders:  orders,
		cache:   cache,
		events:  events,
		cfg:     cfg,
		loggerf: loggerf,
	}
}

// NormalizePhone strips non-digits, keeps the last 10 digits and validates
// against the Indian mobile numbering pattern.
func NormalizePhone(raw string) (string, bool) {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return digits, mobilePattern.MatchString(digits)
}

const suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewTransactionID builds ORDER_<unix millis>_<6 random alphanumerics>.
// Uniqueness is probabilistic and scoped to the processor's dedup window;
// nothing is persisted to guarantee it.
func NewTransactionID() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return "ORDER_" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + string(suffix)
}

// CreateOrder validates the request, registers the order with the processor
// and returns the hosted redirect URL. All validation happens before any
// network call.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderHandle, error) {
	if req.Amount == 0 || strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.DestinationName) == "" {
		return nil, ErrMissingFields
	}
	phone, ok := NormalizePhone(req.Phone)
	if !ok {
		return nil, ErrInvalidPhone
	}
	amountPaise := int64(math.Round(req.Amount * 100))
	if amountPaise <= 0 {
		return nil, ErrInvalidAmount
	}
	if !s.cfg.Configured() {
		return nil, ErrNotConfigured
	}

	txnID := NewTransactionID()
	redirect := fmt.Sprintf("%s?txnId=%s&destination=%s", req.CallbackURL, txnID, url.QueryEscape(req.DestinationSlug))

	payload := phonepe.OrderPayload{
		MerchantOrderID: txnID,
		Amount:          amountPaise,
		ExpireAfter:     orderExpirySeconds,
		MetaInfo: phonepe.MetaInfo{
			UDF1: req.DestinationName,
			UDF2: req.DestinationSlug,
			UDF3: "MUID" + phone,
		},
		PaymentFlow: phonepe.PaymentFlow{
			Type:    "PG_CHECKOUT",
			Message: fmt.Sprintf("Payment for %s", req.DestinationName),
			MerchantURLs: phonepe.MerchantURLs{
				RedirectURL: redirect,
			},
		},
	}

	s.loggerf("level=info msg=create order txn_id=%s amount_paise=%d destination=%s", txnID, amountPaise, req.DestinationSlug)

	result, err := s.gateway.CreateOrder(ctx, payload)
	if err != nil {
		s.loggerf("level=error msg=create order failed txn_id=%s err=%v", txnID, err)
		return nil, err
	}

	s.recordCreated(ctx, txnID, amountPaise, phone, req, result.RedirectURL)
	if s.events != nil {
		s.events.Publish("payment.created", map[string]interface{}{
			"transaction_id": txnID,
			"amount_paise":   amountPaise,
			"destination":    req.DestinationSlug,
		})
	}

	return &OrderHandle{
		TransactionID: txnID,
		RedirectURL:   result.RedirectURL,
		Status:        domain.OrderPending,
	}, nil
}

// CheckStatus queries the processor and maps its state to the shim's
// three-value status. Unrecognized states map to PENDING: SUCCESS is only
// ever reported on the processor's explicit success state.
func (s *Service) CheckStatus(ctx context.Context, transactionID string) (*StatusView, error) {
	if strings.TrimSpace(transactionID) == "" {
		return nil, ErrMissingOrderID
	}

	if s.cache != nil {
		if status, message, ok := s.cache.GetTerminal(ctx, transactionID); ok {
			return &StatusView{TransactionID: transactionID, Status: status, Message: message}, nil
		}
	}

	// An order already settled locally never changes upstream; skip the
	// gateway round-trip.
	if s.orders != nil {
		if order, err := s.orders.GetByTransactionID(ctx, transactionID); err == nil && order != nil && order.Status.Terminal() {
			if s.cache != nil {
				s.cache.SetTerminal(ctx, transactionID, order.Status, order.GatewayMessage)
			}
			return &StatusView{TransactionID: transactionID, Status: order.Status, Message: order.GatewayMessage}, nil
		}
	}

	if !s.cfg.Configured() {
		return nil, ErrNotConfigured
	}

	result, err := s.gateway.OrderStatus(ctx, transactionID)
	if err != nil {
		s.loggerf("level=error msg=status check failed txn_id=%s err=%v", transactionID, err)
		return nil, err
	}

	status := mapGatewayState(result.State)
	s.loggerf("level=info msg=status check txn_id=%s state=%s status=%s", transactionID, result.State, status)

	if status.Terminal() {
		if s.cache != nil {
			s.cache.SetTerminal(ctx, transactionID, status, result.Message)
		}
		s.recordOutcome(ctx, transactionID, status, result)
	}

	return &StatusView{TransactionID: transactionID, Status: status, Message: result.Message}, nil
}

// ListOrders returns recorded payment attempts for the admin dashboard.
func (s *Service) ListOrders(ctx context.Context, status *domain.OrderStatus, limit, offset int) ([]domain.PaymentOrder, int64, error) {
	if s.orders == nil {
		return nil, 0, nil
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.orders.List(ctx, status, limit, offset)
}

// mapGatewayState folds the processor's state codes into the shim's enum.
// Anything unknown stays PENDING.
func mapGatewayState(state string) domain.OrderStatus {
	switch state {
	case "COMPLETED":
		return domain.OrderSuccess
	case "FAILED":
		return domain.OrderFailed
	default:
		return domain.OrderPending
	}
}

func (s *Service) recordCreated(ctx context.Context, txnID string, amountPaise int64, phone string, req CreateOrderRequest, redirectURL string) {
	if s.orders == nil {
		return
	}
	order := &domain.PaymentOrder{
		TransactionID:   txnID,
		AmountPaise:     amountPaise,
		Phone:           phone,
		DestinationName: req.DestinationName,
		DestinationSlug: req.DestinationSlug,
		RedirectURL:     redirectURL,
		Status:          domain.OrderPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		s.loggerf("level=error msg=failed to record payment order txn_id=%s err=%v", txnID, err)
	}
}

func (s *Service) recordOutcome(ctx context.Context, txnID string, status domain.OrderStatus, result *phonepe.StatusResult) {
	if s.orders != nil {
		changed, err := s.orders.RecordOutcomeIdempotent(ctx, txnID, status, result.State, result.Message, time.Now().UTC())
		if err != nil {
			s.loggerf("level=error msg=failed to record order outcome txn_id=%s err=%v", txnID, err)
		} else if !changed {
			// Already terminal; redelivered or repeated checks are no-ops.
			return
		}
	}
	if s.events != nil {
		event := "payment.failed"
		if status == domain.OrderSuccess {
			event = "payment.completed"
		}
		s.events.Publish(event, map[string]interface{}{
			"transaction_id": txnID,
			"status":         string(status),
			"message":        result.Message,
		})
	}
}
