package api

import (
	"net/http"

	"payment-service/internal/health"
	"payment-service/internal/logger"
	"payment-service/internal/middleware"

	"github.com/gorilla/mux"
)

type RouterDeps struct {
	Handler        *Handler
	AllowedOrigins []string
	Metrics        middleware.RequestObserver
	MetricsHandler http.Handler
	// RateLimiter is optional; nil disables rate limiting.
	RateLimiter *middleware.RateLimiter
	// Ready backs /health; nil means always ready.
	Ready func() bool
}

// NewRouter wires the endpoints and wraps them, outermost first, in CORS,
// request ID, access logging, metrics and rate limiting.
func NewRouter(d RouterDeps) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", d.Handler.Root).Methods(http.MethodGet)
	r.HandleFunc("/health", health.Handler(d.Ready)).Methods(http.MethodGet)
	if d.MetricsHandler != nil {
		r.Handle("/metrics", d.MetricsHandler).Methods(http.MethodGet)
	}

	r.HandleFunc("/create-order", d.Handler.CreateOrder).Methods(http.MethodPost)
	r.HandleFunc("/verify", d.Handler.Verify).Methods(http.MethodPost)

	var h http.Handler = r
	if d.RateLimiter != nil {
		h = d.RateLimiter.Middleware(h)
	}
	if d.Metrics != nil {
		h = middleware.Metrics(d.Metrics, r)(h)
	}
	h = logger.LoggingMiddleware(h)
	h = logger.RequestIDMiddleware(h)
	return middleware.CORS(d.AllowedOrigins)(h)
}
