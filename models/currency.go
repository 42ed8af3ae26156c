package models

import (
	"encoding/json"

	"github.com/paygateio/paypalsdk/validation"
)

// CurrencyCode is an ISO-4217 code drawn from the closed set of currencies
// the PayPal REST API accepts.
type CurrencyCode string

// Currencies accepted by the API.
const (
	CurrencyAUD CurrencyCode = "AUD"
	CurrencyBRL CurrencyCode = "BRL"
	CurrencyCAD CurrencyCode = "CAD"
	CurrencyCHF CurrencyCode = "CHF"
	CurrencyCNY CurrencyCode = "CNY"
	CurrencyCZK CurrencyCode = "CZK"
	CurrencyDKK CurrencyCode = "DKK"
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyGBP CurrencyCode = "GBP"
	CurrencyHKD CurrencyCode = "HKD"
	CurrencyHUF CurrencyCode = "HUF"
	CurrencyILS CurrencyCode = "ILS"
	CurrencyJPY CurrencyCode = "JPY"
	CurrencyMXN CurrencyCode = "MXN"
	CurrencyMYR CurrencyCode = "MYR"
	CurrencyNOK CurrencyCode = "NOK"
	CurrencyNZD CurrencyCode = "NZD"
	CurrencyPHP CurrencyCode = "PHP"
	CurrencyPLN CurrencyCode = "PLN"
	CurrencyRUB CurrencyCode = "RUB"
	CurrencySEK CurrencyCode = "SEK"
	CurrencySGD CurrencyCode = "SGD"
	CurrencyTHB CurrencyCode = "THB"
	CurrencyTWD CurrencyCode = "TWD"
	CurrencyUSD CurrencyCode = "USD"
)

var currencyCodes = map[CurrencyCode]bool{
	CurrencyAUD: true, CurrencyBRL: true, CurrencyCAD: true, CurrencyCHF: true,
	CurrencyCNY: true, CurrencyCZK: true, CurrencyDKK: true, CurrencyEUR: true,
	CurrencyGBP: true, CurrencyHKD: true, CurrencyHUF: true, CurrencyILS: true,
	CurrencyJPY: true, CurrencyMXN: true, CurrencyMYR: true, CurrencyNOK: true,
	CurrencyNZD: true, CurrencyPHP: true, CurrencyPLN: true, CurrencyRUB: true,
	CurrencySEK: true, CurrencySGD: true, CurrencyTHB: true, CurrencyTWD: true,
	CurrencyUSD: true,
}

// AllCurrencyCodes returns every accepted currency code.
func AllCurrencyCodes() []CurrencyCode {
	return []CurrencyCode{
		CurrencyAUD, CurrencyBRL, CurrencyCAD, CurrencyCHF, CurrencyCNY,
		CurrencyCZK, CurrencyDKK, CurrencyEUR, CurrencyGBP, CurrencyHKD,
		CurrencyHUF, CurrencyILS, CurrencyJPY, CurrencyMXN, CurrencyMYR,
		CurrencyNOK, CurrencyNZD, CurrencyPHP, CurrencyPLN, CurrencyRUB,
		CurrencySEK, CurrencySGD, CurrencyTHB, CurrencyTWD, CurrencyUSD,
	}
}

// Valid reports whether the code is in the accepted set.
func (c CurrencyCode) Valid() bool {
	return currencyCodes[c]
}

func (c CurrencyCode) String() string {
	return string(c)
}

// UnmarshalJSON rejects currency strings outside the accepted set instead of
// defaulting.
func (c *CurrencyCode) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return validation.NewDecodeError("currency code", "expected a JSON string: %v", err)
	}
	code := CurrencyCode(s)
	if !code.Valid() {
		return validation.NewDecodeError("currency code", "unrecognised currency %q", s)
	}
	*c = code
	return nil
}
