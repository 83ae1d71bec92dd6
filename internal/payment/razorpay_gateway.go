package payment

import (
	"context"
	"errors"
	"strings"

	"payment-service/internal/logger"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

// orderCreator is the slice of the razorpay SDK the adapter uses.
type orderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type razorpayGateway struct {
	keyID     string
	keySecret string
	orders    orderCreator
}

// ----------------- Constructor -----------------

// NewRazorpayGateway builds the adapter. The SDK's HTTP client bounds every call
// with its own timeout.
func NewRazorpayGateway(keyID, keySecret string) Gateway {
	client := razorpay.NewClient(keyID, keySecret)
	return &razorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		orders:    client.Order,
	}
}

// ----------------- CreateOrder -----------------

type createResult struct {
	body map[string]interface{}
	err  error
}

func (g *razorpayGateway) CreateOrder(ctx context.Context, opts CreateOptions) (Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("receipt", opts.Receipt),
		zap.Int64("amount", opts.AmountMinor),
		zap.String("currency", opts.Currency),
		logger.Masked("key_id", g.keyID),
	)

	if err := ctx.Err(); err != nil {
		log.Warn("Order creation skipped, request already cancelled", zap.Error(err))
		return nil, g.sanitize(err)
	}

	log.Info("Sending order request to Razorpay")

	// The SDK takes no context. The call runs to completion (bounded by the SDK
	// timeout) even if the caller goes away; its result is then discarded.
	done := make(chan createResult, 1)
	go func() {
		body, err := g.orders.Create(opts.toPayload(), nil)
		done <- createResult{body: body, err: err}
	}()

	var res createResult
	select {
	case res = <-done:
	case <-ctx.Done():
		log.Warn("Caller cancelled while waiting for Razorpay", zap.Error(ctx.Err()))
		return nil, g.sanitize(ctx.Err())
	}

	if res.err != nil {
		gwErr := g.sanitize(res.err)
		log.Error("Razorpay order creation failed", zap.String("provider_error", gwErr.Message))
		return nil, gwErr
	}
	if len(res.body) == 0 {
		log.Error("Razorpay returned an empty order")
		return nil, g.sanitize(ErrEmptyResponse)
	}

	order := Order(res.body)
	log.Info("Razorpay order created",
		zap.String("order_id", order.ID()),
		zap.String("status", order.Status()),
	)
	return order, nil
}

// sanitize wraps err as a GatewayError with any credential scrubbed from its text.
func (g *razorpayGateway) sanitize(err error) *GatewayError {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr
	}
	e := newGatewayError(err)
	if g.keySecret != "" {
		e.Message = strings.ReplaceAll(e.Message, g.keySecret, "[REDACTED]")
	}
	return e
}
