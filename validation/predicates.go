package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Predicate is a pure, reusable check over a single value. The description is
// quoted verbatim in FieldError messages.
type Predicate[T any] struct {
	Description string
	check       func(T) bool
}

// NewPredicate creates a predicate from a description and a check function.
func NewPredicate[T any](description string, check func(T) bool) Predicate[T] {
	return Predicate[T]{Description: description, check: check}
}

// Holds reports whether the value satisfies the predicate.
func (p Predicate[T]) Holds(v T) bool {
	return p.check != nil && p.check(v)
}

// Validate runs the predicate against v on behalf of the named field,
// returning a FieldError on failure.
func (p Predicate[T]) Validate(field string, v T) error {
	if p.check == nil {
		return NewFieldError(field, "no predicate attached")
	}
	if !p.check(v) {
		return NewFieldError(field, p.Description)
	}
	return nil
}

// And composes predicates that must all hold.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	descs := make([]string, len(preds))
	for i, p := range preds {
		descs[i] = p.Description
	}
	return NewPredicate(strings.Join(descs, " and "), func(v T) bool {
		for _, p := range preds {
			if !p.check(v) {
				return false
			}
		}
		return true
	})
}

// Or composes predicates of which at least one must hold.
func Or[T any](preds ...Predicate[T]) Predicate[T] {
	descs := make([]string, len(preds))
	for i, p := range preds {
		descs[i] = p.Description
	}
	return NewPredicate(strings.Join(descs, " or "), func(v T) bool {
		for _, p := range preds {
			if p.check(v) {
				return true
			}
		}
		return false
	})
}

// MaxLength passes strings of at most n characters. The bound is inclusive:
// a string of exactly n characters passes, n+1 fails.
func MaxLength(n int) Predicate[string] {
	return NewPredicate(fmt.Sprintf("length must be at most %d characters", n), func(s string) bool {
		return len(s) <= n
	})
}

// MinLength passes strings of at least n characters.
func MinLength(n int) Predicate[string] {
	return NewPredicate(fmt.Sprintf("length must be at least %d characters", n), func(s string) bool {
		return len(s) >= n
	})
}

// Between passes integers within [min, max] inclusive.
func Between(min, max int) Predicate[int] {
	return NewPredicate(fmt.Sprintf("value must be between %d and %d", min, max), func(v int) bool {
		return v >= min && v <= max
	})
}

// Matches passes strings matching the given pattern in full.
func Matches(description, pattern string) Predicate[string] {
	re := regexp.MustCompile("^(?:" + pattern + ")$")
	return NewPredicate(description, re.MatchString)
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// CurrencyAmount passes decimal amount strings with at most maxIntDigits
// integer digits and at most two fractional digits. No thousands separators.
// The string must also parse as a decimal, which rules out shapes such as
// a bare "-".
func CurrencyAmount(maxIntDigits int) Predicate[string] {
	re := regexp.MustCompile(fmt.Sprintf(`^-?\d{1,%d}(\.\d{1,2})?$`, maxIntDigits))
	return NewPredicate(
		fmt.Sprintf("amount must have at most %d integer digits and 2 decimal places", maxIntDigits),
		func(s string) bool {
			if !re.MatchString(s) {
				return false
			}
			_, err := decimal.NewFromString(s)
			return err == nil
		},
	)
}

// CountryCode passes two-letter uppercase codes present in the ISO-3166
// alpha-2 set. Shape-only matches such as "ZZ" fail.
func CountryCode() Predicate[string] {
	return NewPredicate("must be an ISO-3166 alpha-2 country code", func(s string) bool {
		return isoCountryCodes[s]
	})
}

// Email passes addresses of the form local@domain where the domain contains
// a dot, neither part is empty and the whole address is at most 254 characters.
func Email() Predicate[string] {
	return NewPredicate("must be a valid email address", func(s string) bool {
		if len(s) > 254 {
			return false
		}
		at := strings.Index(s, "@")
		if at <= 0 || at != strings.LastIndex(s, "@") {
			return false
		}
		local, domain := s[:at], s[at+1:]
		if local == "" || domain == "" {
			return false
		}
		dot := strings.Index(domain, ".")
		return dot > 0 && dot < len(domain)-1
	})
}

// PhoneCountryCode passes country calling codes of one to three digits.
func PhoneCountryCode() Predicate[string] {
	return NewPredicate("country calling code must be 1 to 3 digits", func(s string) bool {
		return len(s) >= 1 && len(s) <= 3 && digitsOnly.MatchString(s)
	})
}

// PhoneNational passes national numbers of one to fourteen digits.
func PhoneNational() Predicate[string] {
	return NewPredicate("national number must be 1 to 14 digits", func(s string) bool {
		return len(s) >= 1 && len(s) <= 14 && digitsOnly.MatchString(s)
	})
}

// PhoneExtension passes extensions of at most fifteen digits.
func PhoneExtension() Predicate[string] {
	return NewPredicate("extension must be at most 15 digits", func(s string) bool {
		return len(s) <= 15 && (s == "" || digitsOnly.MatchString(s))
	})
}

// Timestamp passes RFC3339 date-time strings with an offset or Z suffix.
func Timestamp() Predicate[string] {
	return NewPredicate("must be an ISO-8601 date-time", func(s string) bool {
		_, err := time.Parse(time.RFC3339, s)
		return err == nil
	})
}

// DateOnly passes calendar dates of the form yyyy-mm-dd and rejects any
// string carrying a time component.
func DateOnly() Predicate[string] {
	return NewPredicate("must be an ISO-8601 date with no time component", func(s string) bool {
		_, err := time.Parse("2006-01-02", s)
		return err == nil
	})
}

// NotEmpty passes non-empty strings.
func NotEmpty() Predicate[string] {
	return NewPredicate("must not be empty", func(s string) bool {
		return s != ""
	})
}
