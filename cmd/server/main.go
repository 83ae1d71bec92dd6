package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"payment-service/internal/api"
	"payment-service/internal/config"
	"payment-service/internal/logger"
	"payment-service/internal/metrics"
	"payment-service/internal/middleware"
	"payment-service/internal/order"
	"payment-service/internal/payment"
	"payment-service/internal/signature"

	"go.uber.org/zap"
)

// server bundles the HTTP handler with the resources it must release on shutdown.
type server struct {
	handler http.Handler
	limiter *middleware.RateLimiter
	ready   *atomic.Bool
}

func (s *server) close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

func newServer(cfg *config.Config, gw payment.Gateway) *server {
	m := metrics.New()
	gw = payment.NewInstrumentedGateway(gw, m)

	orderSvc := order.NewService(gw, cfg.ReceiptPrefix)
	verifier := signature.NewVerifier(cfg.RazorpayKeySecret)
	h := api.NewHandler(orderSvc, verifier, m, cfg.IsDevelopment())

	ready := &atomic.Bool{}
	ready.Store(true)

	var limiter *middleware.RateLimiter
	if cfg.RateLimitEnabled {
		limiter = middleware.NewRateLimiter()
	}

	return &server{
		handler: api.NewRouter(api.RouterDeps{
			Handler:        h,
			AllowedOrigins: cfg.AllowedOrigins,
			Metrics:        m,
			MetricsHandler: m.Handler(),
			RateLimiter:    limiter,
			Ready:          ready.Load,
		}),
		limiter: limiter,
		ready:   ready,
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.L().Fatal("Invalid configuration", zap.Error(err))
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	gw := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	srv := newServer(cfg, gw)
	defer srv.close()

	httpSrv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           srv.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Payment service listening",
			zap.String("addr", httpSrv.Addr),
			zap.String("env", cfg.AppEnv),
			zap.Strings("allowed_origins", cfg.AllowedOrigins),
			logger.Masked("razorpay_key_id", cfg.RazorpayKeyID),
		)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	case <-ctx.Done():
		log.Info("Received shutdown signal, starting graceful shutdown")
	}

	srv.ready.Store(false)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
		return
	}
	log.Info("Graceful shutdown completed")
}
