package order

import (
	"context"
	"fmt"

	"payment-service/internal/logger"
	"payment-service/internal/payment"
	"payment-service/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (payment.Order, error)
}

type service struct {
	gateway       payment.Gateway
	receiptPrefix string
	newReceipt    func(prefix string) (string, error)
}

func NewService(gateway payment.Gateway, receiptPrefix string) Service {
	return &service{
		gateway:       gateway,
		receiptPrefix: receiptPrefix,
		newReceipt:    utils.GenerateReceipt,
	}
}

// CreateOrder validates the request and creates exactly one order at the
// gateway. Nothing is retried or stored.
func (s *service) CreateOrder(ctx context.Context, req CreateOrderRequest) (payment.Order, error) {
	log := logger.FromCtx(ctx)

	if req.Amount == nil {
		log.Warn("Rejected order without amount")
		return nil, ErrInvalidAmount
	}
	if !validAmount(*req.Amount) {
		// String() would expand a huge exponent, so log the shape only.
		log.Warn("Rejected order with invalid amount", zap.Int32("exponent", req.Amount.Exponent()))
		return nil, ErrInvalidAmount
	}
	if err := validateNotes(req.Notes); err != nil {
		log.Warn("Rejected order with invalid notes", zap.Error(err))
		return nil, err
	}

	receipt, err := s.newReceipt(s.receiptPrefix)
	if err != nil {
		log.Error("Failed to generate receipt", zap.Error(err))
		return nil, fmt.Errorf("generate receipt: %w", err)
	}

	opts := payment.CreateOptions{
		AmountMinor: ToMinorUnits(*req.Amount),
		Currency:    payment.CurrencyINR,
		Receipt:     receipt,
		Notes:       req.Notes,
	}

	order, err := s.gateway.CreateOrder(ctx, opts)
	if err != nil {
		return nil, err
	}

	log.Info("Order created",
		zap.String("order_id", order.ID()),
		zap.String("receipt", opts.Receipt),
		zap.Int64("amount", opts.AmountMinor),
	)
	return order, nil
}

func validateNotes(notes map[string]string) error {
	if len(notes) > maxNotes {
		return fmt.Errorf("%w: at most %d notes allowed", ErrInvalidNotes, maxNotes)
	}
	for k, v := range notes {
		if len(v) > maxNoteValueLen {
			return fmt.Errorf("%w: note %q exceeds %d characters", ErrInvalidNotes, k, maxNoteValueLen)
		}
	}
	return nil
}
