// Package models defines the typed data-transfer objects exchanged with the
// PayPal REST API, the wire codec special cases they require and the closed
// enum vocabularies shared across resources.
package models

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CheckRequired runs struct tag validation over a decoded response so that
// responses missing required keys are rejected rather than returned
// partially populated.
func CheckRequired(v interface{}) error {
	return validate.Struct(v)
}
