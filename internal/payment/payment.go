package payment

import "context"

// Gateway creates orders at the external payment provider.
type Gateway interface {
	CreateOrder(ctx context.Context, opts CreateOptions) (Order, error)
}
