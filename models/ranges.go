package models

import (
	"encoding/json"

	"github.com/paygateio/paypalsdk/validation"
	"github.com/shopspring/decimal"
)

// PercentRange is an inclusive integer percentage band, encoded as sibling
// "minimum_percent" and "maximum_percent" keys. Bounds: 0 <= min <= 99,
// 1 <= max <= 100, min <= max, so a collapsed (0,0) band is rejected.
type PercentRange struct {
	Minimum int `json:"minimum_percent"`
	Maximum int `json:"maximum_percent"`
}

var (
	percentMin = validation.Between(0, 99)
	percentMax = validation.Between(1, 100)
)

// NewPercentRange creates a validated percent range.
func NewPercentRange(min, max int) (*PercentRange, error) {
	if err := percentMin.Validate("minimum_percent", min); err != nil {
		return nil, err
	}
	if err := percentMax.Validate("maximum_percent", max); err != nil {
		return nil, err
	}
	if min > max {
		return nil, validation.NewFieldError("minimum_percent", "must not exceed maximum_percent")
	}
	return &PercentRange{Minimum: min, Maximum: max}, nil
}

// PercentRangeUpTo creates the range [0, max].
func PercentRangeUpTo(max int) (*PercentRange, error) {
	return NewPercentRange(0, max)
}

// PercentRangeFrom creates the range [min, 100].
func PercentRangeFrom(min int) (*PercentRange, error) {
	return NewPercentRange(min, 100)
}

// Values returns the inclusive integer sequence from Minimum to Maximum.
// Each call yields a fresh slice starting at Minimum.
func (r *PercentRange) Values() []int {
	values := make([]int, 0, r.Maximum-r.Minimum+1)
	for v := r.Minimum; v <= r.Maximum; v++ {
		values = append(values, v)
	}
	return values
}

// UnmarshalJSON re-validates the bounds so out-of-band server values are
// rejected.
func (r *PercentRange) UnmarshalJSON(b []byte) error {
	type percentRange PercentRange
	var decoded percentRange
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}
	checked, err := NewPercentRange(decoded.Minimum, decoded.Maximum)
	if err != nil {
		return validation.NewDecodeError("percent range", "%v", err)
	}
	*r = *checked
	return nil
}

// MoneyRange is a monetary band with a shared currency for both bounds,
// encoded as sibling "minimum_amount" and "maximum_amount" money objects.
type MoneyRange struct {
	Minimum Money `json:"minimum_amount"`
	Maximum Money `json:"maximum_amount"`
}

// NewMoneyRange creates a validated money range. Both bounds carry the same
// currency and the minimum must not exceed the maximum.
func NewMoneyRange(currency CurrencyCode, min, max string) (*MoneyRange, error) {
	lower, err := NewMoney(currency, min)
	if err != nil {
		return nil, err
	}
	upper, err := NewMoney(currency, max)
	if err != nil {
		return nil, err
	}
	lo, _ := decimal.NewFromString(min)
	hi, _ := decimal.NewFromString(max)
	if lo.GreaterThan(hi) {
		return nil, validation.NewFieldError("minimum_amount", "must not exceed maximum_amount")
	}
	return &MoneyRange{Minimum: *lower, Maximum: *upper}, nil
}

// UnmarshalJSON enforces the shared-currency and ordering invariants on
// decoded ranges.
func (r *MoneyRange) UnmarshalJSON(b []byte) error {
	type moneyRange MoneyRange
	var decoded moneyRange
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}
	if decoded.Minimum.CurrencyCode != decoded.Maximum.CurrencyCode {
		return validation.NewDecodeError("money range", "bounds carry different currencies")
	}
	lo, _ := decimal.NewFromString(decoded.Minimum.Value)
	hi, _ := decimal.NewFromString(decoded.Maximum.Value)
	if lo.GreaterThan(hi) {
		return validation.NewDecodeError("money range", "minimum_amount exceeds maximum_amount")
	}
	*r = MoneyRange(decoded)
	return nil
}
