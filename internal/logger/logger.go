package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "payment-service"

var global *zap.Logger

// Init replaces the process logger. "development" and "test" get a colored
// console encoder at debug level; anything else gets JSON on stdout.
func Init(env string) {
	l, err := newConfig(env).Build(
		zap.AddCaller(),
		zap.Fields(zap.String("service", serviceName)),
	)
	if err != nil {
		panic(err)
	}
	global = l
}

func newConfig(env string) zap.Config {
	switch env {
	case "development", "test":
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stdout"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// L returns the process logger, building one from APP_ENV on first use.
func L() *zap.Logger {
	if global == nil {
		Init(os.Getenv("APP_ENV"))
	}
	return global
}

func Sync() {
	if global != nil {
		_ = global.Sync()
	}
}

// Masked logs a credential with everything but the last four characters hidden.
func Masked(key, value string) zap.Field {
	visible := 4
	if len(value) <= visible {
		visible = 0
	}
	hidden := len(value) - visible
	return zap.String(key, strings.Repeat("*", hidden)+value[hidden:])
}
