package config

import (
	"fmt"
	"strings"
	"time"

	"payment-service/internal/utils"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const EnvDevelopment = "development"

type Config struct {
	RazorpayKeyID     string        `env:"RAZORPAY_KEY_ID,required,notEmpty"`
	RazorpayKeySecret string        `env:"RAZORPAY_KEY_SECRET,required,notEmpty"`
	AppPort           string        `env:"PORT" envDefault:"5000"`
	AppEnv            string        `env:"APP_ENV" envDefault:"production"`
	AllowedOrigins    []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	ReceiptPrefix     string        `env:"RECEIPT_PREFIX" envDefault:"receipt_"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RateLimitEnabled  bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
}

// LoadConfig reads the process environment (and an optional .env file) once.
// Gateway credentials are mandatory; there is no fallback.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	cfg.AllowedOrigins = origins

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return fmt.Errorf("PORT is required")
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_ORIGINS must contain at least one origin")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if maxPrefix := utils.MaxReceiptLen - utils.ReceiptSuffixLen; len(c.ReceiptPrefix) > maxPrefix {
		return fmt.Errorf("RECEIPT_PREFIX must be at most %d characters", maxPrefix)
	}
	return nil
}

// IsDevelopment enables diagnostic details in error responses.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}
