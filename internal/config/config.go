package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultJWTSecret  = "change-me-jwt-secret"
	defaultJWTAccess  = "24h"
	defaultListenAddr = ":8080"

	defaultPhonePeAuthURL    = "https://api-preprod.phonepe.com/apis/pg-sandbox/v1/oauth/token"
	defaultPhonePePaymentURL = "https://api-preprod.phonepe.com/apis/pg-sandbox/checkout/v2/pay"
	defaultPhonePeStatusURL  = "https://api-preprod.phonepe.com/apis/pg-sandbox/checkout/v2/order"
	defaultGatewayTimeout    = "15s"
)

// Config is the full runtime configuration, loaded once in main and passed
// into constructors. Nothing reads the environment after startup.
type Config struct {
	AppEnv     string
	ListenAddr string

	DatabaseURL string

	JWTSecret    string
	JWTAccessTTL time.Duration

	CORSAllowedOrigins []string

	PhonePe PhonePeConfig

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// PhonePeConfig holds the payment gateway credentials and endpoints.
// MerchantID, ClientID and ClientSecret have no defaults: an empty value means
// the gateway is not configured and order creation must be refused.
type PhonePeConfig struct {
	MerchantID   string
	ClientID     string
	ClientSecret string
	AuthURL      string
	PaymentURL   string
	StatusURL    string
	Timeout      time.Duration
}

// Configured reports whether all gateway credentials are present.
func (p PhonePeConfig) Configured() bool {
	return p.MerchantID != "" && p.ClientID != "" && p.ClientSecret != ""
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)
	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", "nexyatra.db")

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccess)
	if err != nil {
		return nil, err
	}
	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("config: JWT_SECRET must be set in prod")
	}

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	cfg.PhonePe = PhonePeConfig{
		MerchantID:   strings.TrimSpace(os.Getenv("PHONEPE_MERCHANT_ID")),
		ClientID:     strings.TrimSpace(os.Getenv("PHONEPE_CLIENT_ID")),
		ClientSecret: strings.TrimSpace(os.Getenv("PHONEPE_CLIENT_SECRET")),
		AuthURL:      getEnv("PHONEPE_AUTH_URL", defaultPhonePeAuthURL),
		PaymentURL:   getEnv("PHONEPE_PAYMENT_URL", defaultPhonePePaymentURL),
		StatusURL:    getEnv("PHONEPE_STATUS_URL", defaultPhonePeStatusURL),
	}
	cfg.PhonePe.Timeout, err = parseDurationEnv("PHONEPE_TIMEOUT", defaultGatewayTimeout)
	if err != nil {
		return nil, err
	}

	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if cfg.RedisDB, err = strconv.Atoi(raw); err != nil {
			return nil, fmt.Errorf("config: invalid REDIS_DB %q: %w", raw, err)
		}
	}

	return cfg, nil
}

func getEnv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(name, def string) (time.Duration, error) {
	raw := getEnv(name, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", name, raw, err)
	}
	return d, nil
}
