package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"REDIS_URL":         "redis://localhost:6379/0",
		"DATABASE_URL":      "postgres://localhost:5432/storefront",
		"STRIPE_SECRET_KEY": "sk_test_123",
		"PORT":              "",
		"PAYMENT_PROVIDER":  "",
		"ORDER_STORE":       "",
		"CURRENCY_CODE":     "",
		"CATALOG_PATH":      "",
		"CART_SNAPSHOT_TTL": "",
		"CHECKOUT_RATE_MAX": "",
	})
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, "stripe", cfg.PaymentProvider)
	require.Equal(t, "postgres", cfg.OrderStore)
	require.Equal(t, "sgd", cfg.CurrencyCode)
	require.Equal(t, "data/products.json", cfg.CatalogPath)
	require.Equal(t, 168*time.Hour, cfg.CartSnapshotTTL)
	require.Equal(t, 30, cfg.CheckoutRateMax)
}

func TestLoadRequiresRedis(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{
		"REDIS_URL":    "",
		"DATABASE_URL": "postgres://localhost:5432/storefront",
		"ORDER_STORE":  "memory",
	})
	require.Error(t, err)
}

func TestLoadRequiresDatabaseForPostgresStore(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{
		"REDIS_URL":         "redis://localhost:6379/0",
		"DATABASE_URL":      "",
		"ORDER_STORE":       "postgres",
		"PAYMENT_PROVIDER":  "mock",
		"STRIPE_SECRET_KEY": "",
	})
	require.Error(t, err)
}

func TestLoadRequiresStripeKey(t *testing.T) {
	_, err := config.LoadForTests(map[string]string{
		"REDIS_URL":         "redis://localhost:6379/0",
		"DATABASE_URL":      "postgres://localhost:5432/storefront",
		"PAYMENT_PROVIDER":  "stripe",
		"STRIPE_SECRET_KEY": "",
	})
	require.Error(t, err)
}

func TestLoadMockProviderNeedsNoKey(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"REDIS_URL":         "redis://localhost:6379/0",
		"DATABASE_URL":      "",
		"ORDER_STORE":       "memory",
		"PAYMENT_PROVIDER":  "mock",
		"STRIPE_SECRET_KEY": "",
	})
	require.NoError(t, err)
	require.Equal(t, "mock", cfg.PaymentProvider)
	require.Equal(t, "memory", cfg.OrderStore)
}
