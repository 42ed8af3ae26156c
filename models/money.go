package models

import (
	"encoding/json"

	"github.com/paygateio/paypalsdk/validation"
)

// amountValue constrains wire amount strings: at most seven integer digits,
// at most two decimal places, no thousands separators.
var amountValue = validation.CurrencyAmount(7)

// Money is the amount object used by the v2-style endpoints: the magnitude
// under "value" and the currency under "currency_code". The older "total"/
// "currency" spelling is Amount; the API uses both and they must not be
// unified.
type Money struct {
	CurrencyCode CurrencyCode `json:"currency_code"`
	Value        string       `json:"value"`
}

// NewMoney creates a validated Money value.
func NewMoney(currency CurrencyCode, value string) (*Money, error) {
	if !currency.Valid() {
		return nil, validation.NewFieldError("currency_code", "must be an accepted ISO-4217 currency")
	}
	if err := amountValue.Validate("value", value); err != nil {
		return nil, err
	}
	return &Money{CurrencyCode: currency, Value: value}, nil
}

// UnmarshalJSON re-runs the amount predicate so malformed server responses
// are rejected at decode time.
func (m *Money) UnmarshalJSON(b []byte) error {
	type money Money
	var decoded money
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}
	if err := amountValue.Validate("value", decoded.Value); err != nil {
		return validation.NewDecodeError("money", "%v", err)
	}
	*m = Money(decoded)
	return nil
}

// Amount is the v1 payments amount object: magnitude under "total", currency
// under "currency", with an optional details breakdown.
type Amount struct {
	Currency CurrencyCode   `json:"currency"`
	Total    string         `json:"total"`
	Details  *AmountDetails `json:"details,omitempty"`
}

// AmountDetails breaks an amount down into its components.
type AmountDetails struct {
	Subtotal         string `json:"subtotal,omitempty"`
	Shipping         string `json:"shipping,omitempty"`
	Tax              string `json:"tax,omitempty"`
	HandlingFee      string `json:"handling_fee,omitempty"`
	ShippingDiscount string `json:"shipping_discount,omitempty"`
	Insurance        string `json:"insurance,omitempty"`
	GiftWrap         string `json:"gift_wrap,omitempty"`
}

// NewAmount creates a validated Amount value.
func NewAmount(currency CurrencyCode, total string) (*Amount, error) {
	if !currency.Valid() {
		return nil, validation.NewFieldError("currency", "must be an accepted ISO-4217 currency")
	}
	if err := amountValue.Validate("total", total); err != nil {
		return nil, err
	}
	return &Amount{Currency: currency, Total: total}, nil
}

// UnmarshalJSON validates the total against the amount predicate.
func (a *Amount) UnmarshalJSON(b []byte) error {
	type amount Amount
	var decoded amount
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}
	if err := amountValue.Validate("total", decoded.Total); err != nil {
		return validation.NewDecodeError("amount", "%v", err)
	}
	*a = Amount(decoded)
	return nil
}
