package models

import (
	"encoding/json"

	"github.com/paygateio/paypalsdk/validation"
)

// Field predicates shared across resources. The same predicate instance
// backs every field with that constraint.
var (
	line100     = validation.MaxLength(100)
	city50      = validation.And(validation.NotEmpty(), validation.MaxLength(50))
	state100    = validation.MaxLength(100)
	postal20    = validation.MaxLength(20)
	countryCode = validation.CountryCode()
	emailAddr   = validation.Email()
)

// Address is a postal address. Country codes are validated against the full
// ISO-3166 alpha-2 assignment list, never just the two-uppercase-letters
// shape.
type Address struct {
	Line1       string `json:"line1"`
	Line2       string `json:"line2,omitempty"`
	City        string `json:"city"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	CountryCode string `json:"country_code"`
	Phone       string `json:"phone,omitempty"`
}

// NewAddress creates a validated address.
func NewAddress(line1, city, state, postalCode, country string) (*Address, error) {
	if err := validation.Combine(
		line100.Validate("line1", line1),
		city50.Validate("city", city),
		state100.Validate("state", state),
		postal20.Validate("postal_code", postalCode),
		countryCode.Validate("country_code", country),
	); err != nil {
		return nil, err
	}
	return &Address{Line1: line1, City: city, State: state, PostalCode: postalCode, CountryCode: country}, nil
}

// UnmarshalJSON re-runs the country predicate so a malformed server address
// aborts the decode.
func (a *Address) UnmarshalJSON(b []byte) error {
	type address Address
	var decoded address
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}
	if err := countryCode.Validate("country_code", decoded.CountryCode); err != nil {
		return validation.NewDecodeError("address", "%v", err)
	}
	*a = Address(decoded)
	return nil
}

// Phone is an E.123-style phone number split into its wire components.
type Phone struct {
	CountryCode    string `json:"country_code"`
	NationalNumber string `json:"national_number"`
	Extension      string `json:"extension,omitempty"`
}

// NewPhone creates a validated phone number.
func NewPhone(countryCallingCode, nationalNumber, extension string) (*Phone, error) {
	if err := validation.Combine(
		validation.PhoneCountryCode().Validate("country_code", countryCallingCode),
		validation.PhoneNational().Validate("national_number", nationalNumber),
		validation.PhoneExtension().Validate("extension", extension),
	); err != nil {
		return nil, err
	}
	return &Phone{CountryCode: countryCallingCode, NationalNumber: nationalNumber, Extension: extension}, nil
}

// TypedPhone pairs a phone number with its contact type.
type TypedPhone struct {
	Type  PhoneType `json:"type"`
	Phone Phone     `json:"phone"`
}

// Link is a HATEOAS link returned alongside most resources. The server
// assigns these; the client never sends them.
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method,omitempty"`
}

// Name is a party name.
type Name struct {
	Prefix     string `json:"prefix,omitempty"`
	GivenName  string `json:"given_name,omitempty"`
	Surname    string `json:"surname,omitempty"`
	MiddleName string `json:"middle_name,omitempty"`
	Suffix     string `json:"suffix,omitempty"`
	FullName   string `json:"full_name,omitempty"`
}

// Email wraps a validated email address string.
type Email struct {
	value validation.Constrained[string]
}

// NewEmail creates a validated email address.
func NewEmail(address string) (Email, error) {
	v, err := validation.NewConstrained("email", emailAddr, address)
	if err != nil {
		return Email{}, err
	}
	return Email{value: v}, nil
}

// String returns the address.
func (e Email) String() string {
	return e.value.Value()
}

// Set replaces the address, keeping the old one if the new value fails
// validation.
func (e *Email) Set(address string) error {
	return e.value.Set(address)
}

// MarshalJSON encodes the bare address string.
func (e Email) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.value.Value())
}

// UnmarshalJSON validates the incoming address.
func (e *Email) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return validation.NewDecodeError("email", "expected a JSON string: %v", err)
	}
	parsed, err := NewEmail(s)
	if err != nil {
		return validation.NewDecodeError("email", "%v", err)
	}
	*e = parsed
	return nil
}

// Payer identifies who funds a payment.
type Payer struct {
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        string        `json:"status,omitempty"`
	PayerInfo     *PayerInfo    `json:"payer_info,omitempty"`
}

// PayerInfo carries the payer's identifying details.
type PayerInfo struct {
	Email       string   `json:"email,omitempty"`
	FirstName   string   `json:"first_name,omitempty"`
	LastName    string   `json:"last_name,omitempty"`
	PayerID     string   `json:"payer_id,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	CountryCode string   `json:"country_code,omitempty"`
	Address     *Address `json:"shipping_address,omitempty"`
}
