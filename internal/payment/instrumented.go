package payment

import (
	"context"
	"time"
)

// Observer receives the outcome of every provider call.
type Observer interface {
	ObserveGatewayCall(outcome string, d time.Duration)
}

type instrumentedGateway struct {
	next Gateway
	obs  Observer
}

// NewInstrumentedGateway reports call outcomes ("success" or "error") and latency to obs.
func NewInstrumentedGateway(next Gateway, obs Observer) Gateway {
	return &instrumentedGateway{next: next, obs: obs}
}

func (g *instrumentedGateway) CreateOrder(ctx context.Context, opts CreateOptions) (Order, error) {
	start := time.Now()
	order, err := g.next.CreateOrder(ctx, opts)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	g.obs.ObserveGatewayCall(outcome, time.Since(start))
	return order, err
}
