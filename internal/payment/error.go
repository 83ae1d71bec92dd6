package payment

import (
	"errors"
	"fmt"
)

var ErrEmptyResponse = errors.New("empty order response")

// GatewayError is returned for every failed provider call. Message holds the
// provider's diagnostic text and never any credential.
type GatewayError struct {
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("razorpay error: %s", e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func newGatewayError(err error) *GatewayError {
	return &GatewayError{Message: err.Error(), Err: err}
}
