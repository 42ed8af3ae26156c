package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/paygateio/paypalsdk/validation"
)

// Version is a "major.minor" wire string handled internally as two integers,
// used for webhook event type versions. Decode fails unless the string splits
// into exactly two integer components on ".".
type Version struct {
	Major int
	Minor int
}

// ParseVersion parses a "major.minor" string.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return Version{}, validation.NewDecodeError("version", "%q is not of the form major.minor", s)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, validation.NewDecodeError("version", "major component %q is not an integer", parts[0])
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, validation.NewDecodeError("version", "minor component %q is not an integer", parts[1])
	}
	return Version{Major: major, Minor: minor}, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// MarshalJSON encodes the version as its wire string.
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes and validates the wire string.
func (v *Version) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return validation.NewDecodeError("version", "expected a JSON string: %v", err)
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
