package models

import (
	"encoding/json"
	"time"

	"github.com/paygateio/paypalsdk/validation"
)

const dateLayout = "2006-01-02"

// Timestamp is an RFC3339 date-time carried as a flat wire string.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps a time value.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MarshalJSON encodes the timestamp as an RFC3339 string.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339))
}

// UnmarshalJSON rejects strings that do not parse as RFC3339.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return validation.NewDecodeError("timestamp", "expected a JSON string: %v", err)
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return validation.NewDecodeError("timestamp", "%q is not an ISO-8601 date-time", s)
	}
	t.Time = parsed
	return nil
}

// Date is a calendar date with no time component. On the wire it is nested
// under a "date_no_time" key rather than carried as a flat string.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a date, rejecting impossible calendar values. time.Date
// normalises overflow (a 30th of February becomes the 2nd of March), so the
// check is that normalisation changed nothing.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, validation.NewFieldError("date_no_time", "must be a valid calendar date")
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// ParseDate parses a yyyy-mm-dd string, rejecting any time component.
func ParseDate(s string) (Date, error) {
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, validation.NewDecodeError("date", "%q is not a date without time", s)
	}
	return Date{Year: parsed.Year(), Month: parsed.Month(), Day: parsed.Day()}, nil
}

func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(dateLayout)
}

type dateWire struct {
	DateNoTime string `json:"date_no_time"`
}

// MarshalJSON wraps the date string under the "date_no_time" key.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(dateWire{DateNoTime: d.String()})
}

// UnmarshalJSON decodes the nested "date_no_time" form.
func (d *Date) UnmarshalJSON(b []byte) error {
	var wire dateWire
	if err := json.Unmarshal(b, &wire); err != nil {
		return validation.NewDecodeError("date", "expected a date_no_time object: %v", err)
	}
	parsed, err := ParseDate(wire.DateNoTime)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
