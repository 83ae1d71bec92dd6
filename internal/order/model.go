package order

import "github.com/shopspring/decimal"

const (
	// minorUnitsPerMajor converts rupees to paise.
	minorUnitsPerMajor = 100

	// Bounds on the decoded decimal's shape, checked before any arithmetic.
	// Rescaling a value with a huge exponent allocates 10^exp.
	minAmountExponent = -18
	maxAmountExponent = 12
	maxCoefficientBit = 128

	maxNotes        = 15
	maxNoteValueLen = 256
)

var (
	minAmount = decimal.NewFromInt(1)
	// maxAmount is ₹10 crore; its paise value stays far inside int64.
	maxAmount = decimal.NewFromInt(100_000_000)
)

// CreateOrderRequest is the body of POST /create-order. Amount is in rupees.
type CreateOrderRequest struct {
	Amount *decimal.Decimal   `json:"amount"`
	Notes  map[string]string `json:"notes,omitempty"`
}

// ToMinorUnits truncates amount*100 toward zero: 12.999 becomes 1299.
// Callers must check the amount with validAmount first.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(minorUnitsPerMajor)).Truncate(0).IntPart()
}

// validAmount reports whether amount lies in [minAmount, maxAmount]. The
// exponent and coefficient size are checked first so that comparing an
// absurd literal such as 1e500000000 costs nothing.
func validAmount(amount decimal.Decimal) bool {
	exp := amount.Exponent()
	if exp < minAmountExponent || exp > maxAmountExponent {
		return false
	}
	if amount.Coefficient().BitLen() > maxCoefficientBit {
		return false
	}
	return !amount.LessThan(minAmount) && !amount.GreaterThan(maxAmount)
}
