package phonepe

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"nexyatra/internal/config"
)

func testPayload() OrderPayload {
	return OrderPayload{
		MerchantOrderID: "ORDER_1700000000000_A1B2C3",
		Amount:          100000,
		ExpireAfter:     1200,
		MetaInfo:        MetaInfo{UDF1: "Kerala", UDF2: "kerala", UDF3: "MUID9876543210"},
		PaymentFlow: PaymentFlow{
			Type:         "PG_CHECKOUT",
			Message:      "Payment for Kerala",
			MerchantURLs: MerchantURLs{RedirectURL: "https://example.com/cb?txnId=x&destination=kerala"},
		},
	}
}

func newAuthServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse token form: %v", err)
		}
		if r.Form.Get("grant_type") != "client_credentials" {
			t.Errorf("unexpected grant_type %q", r.Form.Get("grant_type"))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "tok-123",
			"token_type":   "O-Bearer",
			"expires_at":   time.Now().Add(time.Hour).Unix(),
		})
	}))
}

func newTestClient(cfg config.PhonePeConfig) *Client {
	cfg.MerchantID = "M1"
	cfg.ClientID = "C1"
	cfg.ClientSecret = "S1"
	cfg.Timeout = 2 * time.Second
	return NewClient(cfg)
}

func TestCreateOrder_SendsBearerAndMerchantHeaders(t *testing.T) {
	var authHits int32
	auth := newAuthServer(t, &authHits)
	defer auth.Close()

	pay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "O-Bearer tok-123" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		if got := r.Header.Get("X-Merchant-Id"); got != "M1" {
			t.Errorf("unexpected X-Merchant-Id header %q", got)
		}
		var payload OrderPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if payload.ExpireAfter != 1200 || payload.PaymentFlow.Type != "PG_CHECKOUT" {
			t.Errorf("unexpected payload: %+v", payload)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"redirectUrl": "https://mercury.phonepe.com/transact/abc", "state": "PENDING"})
	}))
	defer pay.Close()

	client := newTestClient(config.PhonePeConfig{AuthURL: auth.URL, PaymentURL: pay.URL})
	result, err := client.CreateOrder(context.Background(), testPayload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RedirectURL != "https://mercury.phonepe.com/transact/abc" {
		t.Fatalf("unexpected redirect url %q", result.RedirectURL)
	}
}

func TestCreateOrder_TokenReusedAcrossCalls(t *testing.T) {
	var authHits int32
	auth := newAuthServer(t, &authHits)
	defer auth.Close()

	pay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"redirectUrl": "https://pay.test/x"})
	}))
	defer pay.Close()

	client := newTestClient(config.PhonePeConfig{AuthURL: auth.URL, PaymentURL: pay.URL})
	for i := 0; i < 3; i++ {
		if _, err := client.CreateOrder(context.Background(), testPayload()); err != nil {
			t.Fatalf("call %d: unexpected error %v", i, err)
		}
	}
	if got := atomic.LoadInt32(&authHits); got != 1 {
		t.Fatalf("expected a single token exchange, got %d", got)
	}
}

func TestCreateOrder_DeclineKeptVerbatim(t *testing.T) {
	var authHits int32
	auth := newAuthServer(t, &authHits)
	defer auth.Close()

	pay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"code": "AMOUNT_LIMIT_EXCEEDED", "message": "Amount exceeds merchant limit"})
	}))
	defer pay.Close()

	client := newTestClient(config.PhonePeConfig{AuthURL: auth.URL, PaymentURL: pay.URL})
	_, err := client.CreateOrder(context.Background(), testPayload())

	var gwErr *GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected GatewayError, got %v", err)
	}
	if gwErr.Code != "AMOUNT_LIMIT_EXCEEDED" || gwErr.Message != "Amount exceeds merchant limit" {
		t.Fatalf("decline was remapped: %+v", gwErr)
	}
}

func TestCreateOrder_UpstreamErrorIsUnreachable(t *testing.T) {
	var authHits int32
	auth := newAuthServer(t, &authHits)
	defer auth.Close()

	pay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer pay.Close()

	client := newTestClient(config.PhonePeConfig{AuthURL: auth.URL, PaymentURL: pay.URL})
	_, err := client.CreateOrder(context.Background(), testPayload())
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
}

func TestOrderStatus_ParsesState(t *testing.T) {
	var authHits int32
	auth := newAuthServer(t, &authHits)
	defer auth.Close()

	status := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ORDER_1_ABCDEF/status" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"state": "COMPLETED", "message": "Your payment is successful."})
	}))
	defer status.Close()

	client := newTestClient(config.PhonePeConfig{AuthURL: auth.URL, StatusURL: status.URL})
	result, err := client.OrderStatus(context.Background(), "ORDER_1_ABCDEF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.State != "COMPLETED" || result.Message != "Your payment is successful." {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	var authHits int32
	auth := newAuthServer(t, &authHits)
	defer auth.Close()

	var payHits int32
	pay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&payHits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer pay.Close()

	client := newTestClient(config.PhonePeConfig{AuthURL: auth.URL, PaymentURL: pay.URL})
	for i := 0; i < 5; i++ {
		if _, err := client.CreateOrder(context.Background(), testPayload()); !errors.Is(err, ErrUnreachable) {
			t.Fatalf("call %d: expected ErrUnreachable, got %v", i, err)
		}
	}
	before := atomic.LoadInt32(&payHits)

	// Breaker is open now; the next call fails fast without an HTTP hit.
	if _, err := client.CreateOrder(context.Background(), testPayload()); !errors.Is(err, ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable from open breaker, got %v", err)
	}
	if after := atomic.LoadInt32(&payHits); after != before {
		t.Fatalf("open breaker still reached upstream: %d -> %d hits", before, after)
	}
}

func TestAuthHeader_TokenExchangeFailure(t *testing.T) {
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid client credentials"})
	}))
	defer auth.Close()

	client := newTestClient(config.PhonePeConfig{AuthURL: auth.URL, PaymentURL: "http://pay.invalid"})
	_, err := client.CreateOrder(context.Background(), testPayload())
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
}
