package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
		t.Setenv("RAZORPAY_KEY_SECRET", "rzp_secret")
		t.Setenv("PORT", "8080")
		t.Setenv("APP_ENV", "development")
		t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://shop.example.com")
		t.Setenv("RECEIPT_PREFIX", "rcpt_")
		t.Setenv("SHUTDOWN_TIMEOUT", "3s")
		t.Setenv("RATE_LIMIT_ENABLED", "false")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "rzp_test_key", cfg.RazorpayKeyID)
		assert.Equal(t, "rzp_secret", cfg.RazorpayKeySecret)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, []string{"http://localhost:3000", "https://shop.example.com"}, cfg.AllowedOrigins)
		assert.Equal(t, "rcpt_", cfg.ReceiptPrefix)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
		assert.False(t, cfg.RateLimitEnabled)
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
		t.Setenv("RAZORPAY_KEY_SECRET", "rzp_secret")
		unsetEnv(t, "PORT", "APP_ENV", "ALLOWED_ORIGINS", "RECEIPT_PREFIX", "SHUTDOWN_TIMEOUT", "RATE_LIMIT_ENABLED")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "5000", cfg.AppPort)
		assert.Equal(t, "production", cfg.AppEnv)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
		assert.Equal(t, "receipt_", cfg.ReceiptPrefix)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
		assert.True(t, cfg.RateLimitEnabled)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("Missing secret fails fast", func(t *testing.T) {
		t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
		t.Setenv("RAZORPAY_KEY_SECRET", "")

		cfg, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "RAZORPAY_KEY_SECRET")
	})

	t.Run("Long receipt prefix fails fast", func(t *testing.T) {
		t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
		t.Setenv("RAZORPAY_KEY_SECRET", "rzp_secret")
		t.Setenv("RECEIPT_PREFIX", strings.Repeat("r", 31))

		cfg, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("Missing key id fails fast", func(t *testing.T) {
		t.Setenv("RAZORPAY_KEY_ID", "")
		t.Setenv("RAZORPAY_KEY_SECRET", "rzp_secret")

		_, err := LoadConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "RAZORPAY_KEY_ID")
	})
}

func TestConfig_Validate(t *testing.T) {
	base := Config{
		RazorpayKeyID:     "id",
		RazorpayKeySecret: "secret",
		AppPort:           "5000",
		AllowedOrigins:    []string{"http://localhost:3000"},
		ShutdownTimeout:   time.Second,
	}

	assert.NoError(t, base.Validate())

	noOrigins := base
	noOrigins.AllowedOrigins = nil
	assert.Error(t, noOrigins.Validate())

	badTimeout := base
	badTimeout.ShutdownTimeout = 0
	assert.Error(t, badTimeout.Validate())

	t.Run("Receipt prefix length", func(t *testing.T) {
		longest := base
		longest.ReceiptPrefix = strings.Repeat("p", 30)
		assert.NoError(t, longest.Validate())

		tooLong := base
		tooLong.ReceiptPrefix = strings.Repeat("p", 31)
		err := tooLong.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "RECEIPT_PREFIX")
	})
}

// unsetEnv removes keys for the duration of the test so envDefault applies.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		prev, ok := os.LookupEnv(k)
		require.NoError(t, os.Unsetenv(k))
		if ok {
			t.Cleanup(func() { os.Setenv(k, prev) })
		}
	}
}
