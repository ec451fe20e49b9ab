package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv             string
	Port               string
	DatabaseURL        string
	RedisURL           string
	CORSAllowedOrigins []string

	CatalogPath     string
	CatalogCacheTTL time.Duration

	CartSnapshotTTL time.Duration

	PaymentProvider string
	StripeSecretKey string
	PaymentTimeout  time.Duration
	CurrencyCode    string

	OrderStore string

	IdempotencyTTL      time.Duration
	CheckoutRateWindow  time.Duration
	CheckoutRateMax     int
	SecurityHeaders     bool
	MaxRequestBodyBytes int64
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:             valueOrDefault(k.String("APP_ENV"), "development"),
		Port:               valueOrDefault(k.String("PORT"), "8080"),
		DatabaseURL:        k.String("DATABASE_URL"),
		RedisURL:           k.String("REDIS_URL"),
		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),

		CatalogPath:     valueOrDefault(k.String("CATALOG_PATH"), "data/products.json"),
		CatalogCacheTTL: parseDuration(k.String("CATALOG_CACHE_TTL"), "60s"),

		CartSnapshotTTL: parseDuration(k.String("CART_SNAPSHOT_TTL"), "168h"),

		PaymentProvider: strings.ToLower(valueOrDefault(k.String("PAYMENT_PROVIDER"), "stripe")),
		StripeSecretKey: k.String("STRIPE_SECRET_KEY"),
		PaymentTimeout:  parseDuration(k.String("PAYMENT_TIMEOUT"), "5s"),
		CurrencyCode:    strings.ToLower(valueOrDefault(k.String("CURRENCY_CODE"), "sgd")),

		OrderStore: strings.ToLower(valueOrDefault(k.String("ORDER_STORE"), "postgres")),

		IdempotencyTTL:      parseDuration(k.String("IDEMPOTENCY_TTL"), "24h"),
		CheckoutRateWindow:  parseDuration(k.String("CHECKOUT_RATE_WINDOW"), "1m"),
		CheckoutRateMax:     parseInt(k.String("CHECKOUT_RATE_MAX"), 30),
		SecurityHeaders:     parseBool(valueOrDefault(k.String("SECURITY_HEADERS"), "true")),
		MaxRequestBodyBytes: int64(parseInt(k.String("MAX_REQUEST_BODY_BYTES"), 1<<20)),
	}

	if cfg.RedisURL == "" {
		return nil, errors.New("REDIS_URL is required")
	}
	if cfg.OrderStore != "postgres" && cfg.OrderStore != "memory" {
		return nil, fmt.Errorf("unsupported ORDER_STORE: %s", cfg.OrderStore)
	}
	if cfg.OrderStore == "postgres" && cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required when ORDER_STORE=postgres")
	}
	if cfg.PaymentProvider != "stripe" && cfg.PaymentProvider != "mock" {
		return nil, fmt.Errorf("unsupported PAYMENT_PROVIDER: %s", cfg.PaymentProvider)
	}
	if cfg.PaymentProvider == "stripe" && cfg.StripeSecretKey == "" {
		return nil, errors.New("STRIPE_SECRET_KEY is required when PAYMENT_PROVIDER=stripe")
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

func parseInt(value string, fallback int) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	var n int
	if _, err := fmt.Sscanf(trimmed, "%d", &n); err != nil {
		return fallback
	}
	return n
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// MustLoad behaves like Load but panics on error. Useful for tests and command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
