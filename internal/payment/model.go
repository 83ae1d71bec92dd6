package payment

// CurrencyINR is the only currency orders are created in.
const CurrencyINR = "INR"

// CreateOptions is the provider-facing order payload. AmountMinor is in paise.
type CreateOptions struct {
	AmountMinor int64
	Currency    string
	Receipt     string
	Notes       map[string]string
}

func (o CreateOptions) toPayload() map[string]interface{} {
	notes := o.Notes
	if notes == nil {
		notes = map[string]string{}
	}
	return map[string]interface{}{
		"amount":   o.AmountMinor,
		"currency": o.Currency,
		"receipt":  o.Receipt,
		"notes":    notes,
	}
}

// Order is the provider's order object, passed through to the client untouched.
type Order map[string]interface{}

func (o Order) ID() string       { return o.str("id") }
func (o Order) Receipt() string  { return o.str("receipt") }
func (o Order) Currency() string { return o.str("currency") }
func (o Order) Status() string   { return o.str("status") }

// Amount returns the order amount in minor units.
func (o Order) Amount() int64 {
	switch v := o["amount"].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

func (o Order) str(key string) string {
	s, _ := o[key].(string)
	return s
}
