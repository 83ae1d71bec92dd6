package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var ErrMissingParameters = errors.New("missing required parameters")

const (
	StatusSuccess = "success"
	StatusFailure = "failure"

	ReasonSignatureMismatch = "signature_mismatch"
)

// Result is the outcome of a verification. A mismatch is a Result, not an error.
type Result struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

func (r Result) OK() bool { return r.Status == StatusSuccess }

// Verifier checks payment signatures issued by the gateway. It holds only the
// shared secret and is safe for concurrent use.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Expected returns hex(HMAC-SHA256(secret, orderID + "|" + paymentID)).
func (v *Verifier) Expected(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func (v *Verifier) Verify(orderID, paymentID, signature string) (Result, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return Result{}, ErrMissingParameters
	}

	expected := v.Expected(orderID, paymentID)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return Result{Status: StatusFailure, Reason: ReasonSignatureMismatch}, nil
	}
	return Result{Status: StatusSuccess}, nil
}
