package models

import (
	"encoding/json"

	"github.com/paygateio/paypalsdk/validation"
)

// PatchOp is a JSON-Patch operation name, carried under the "op" wire key.
type PatchOp string

// Patch operations accepted by the API.
const (
	PatchAdd     PatchOp = "add"
	PatchRemove  PatchOp = "remove"
	PatchReplace PatchOp = "replace"
	PatchMove    PatchOp = "move"
	PatchCopy    PatchOp = "copy"
	PatchTest    PatchOp = "test"
)

var patchOps = map[PatchOp]bool{
	PatchAdd: true, PatchRemove: true, PatchReplace: true,
	PatchMove: true, PatchCopy: true, PatchTest: true,
}

// AllPatchOps returns every patch operation.
func AllPatchOps() []PatchOp {
	return []PatchOp{PatchAdd, PatchRemove, PatchReplace, PatchMove, PatchCopy, PatchTest}
}

// Valid reports whether the operation is recognised.
func (op PatchOp) Valid() bool {
	return patchOps[op]
}

// UnmarshalJSON rejects unrecognised operation strings.
func (op *PatchOp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return validation.NewDecodeError("patch op", "expected a JSON string: %v", err)
	}
	decoded := PatchOp(s)
	if !decoded.Valid() {
		return validation.NewDecodeError("patch op", "unrecognised operation %q", s)
	}
	*op = decoded
	return nil
}

// PatchValue is the closed set of value shapes a patch may carry: a string,
// a number, a list of strings, a list of integers or a nested object. Keeping
// the set closed keeps encoding total; anything else is an encode error.
type PatchValue interface {
	isPatchValue()
}

// PatchString is a string patch value.
type PatchString string

// PatchNumber is a numeric patch value.
type PatchNumber float64

// PatchStringList is a list-of-strings patch value.
type PatchStringList []string

// PatchIntList is a list-of-integers patch value.
type PatchIntList []int

// PatchObject is a nested-object patch value.
type PatchObject map[string]string

func (PatchString) isPatchValue()     {}
func (PatchNumber) isPatchValue()     {}
func (PatchStringList) isPatchValue() {}
func (PatchIntList) isPatchValue()    {}
func (PatchObject) isPatchValue()     {}

// NewPatchValue converts a caller-supplied value into a PatchValue, returning
// an EncodeError for types outside the closed set.
func NewPatchValue(v interface{}) (PatchValue, error) {
	switch value := v.(type) {
	case string:
		return PatchString(value), nil
	case int:
		return PatchNumber(value), nil
	case float64:
		return PatchNumber(value), nil
	case []string:
		return PatchStringList(value), nil
	case []int:
		return PatchIntList(value), nil
	case map[string]string:
		return PatchObject(value), nil
	case PatchValue:
		return value, nil
	default:
		return nil, validation.NewEncodeError("patch value", "unsupported value type %T", v)
	}
}

// Patch is a single JSON-Patch style update. "from" is only meaningful for
// move and copy operations and is omitted from the wire when empty.
type Patch struct {
	Operation PatchOp
	Path      string
	Value     PatchValue
	From      string
}

type patchWire struct {
	Op    PatchOp         `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
	From  string          `json:"from,omitempty"`
}

// MarshalJSON renames Operation to the "op" wire key and omits an absent
// value or from entirely rather than emitting null.
func (p Patch) MarshalJSON() ([]byte, error) {
	if !p.Operation.Valid() {
		return nil, validation.NewEncodeError("patch", "unrecognised operation %q", string(p.Operation))
	}
	wire := patchWire{Op: p.Operation, Path: p.Path, From: p.From}
	if p.Value != nil {
		raw, err := json.Marshal(p.Value)
		if err != nil {
			return nil, validation.NewEncodeError("patch", "value not representable: %v", err)
		}
		wire.Value = raw
	}
	return json.Marshal(wire)
}

// UnmarshalJSON reconstructs the closed-variant value from the raw JSON
// token type.
func (p *Patch) UnmarshalJSON(b []byte) error {
	var wire patchWire
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	p.Operation = wire.Op
	p.Path = wire.Path
	p.From = wire.From
	p.Value = nil
	if len(wire.Value) == 0 {
		return nil
	}
	value, err := decodePatchValue(wire.Value)
	if err != nil {
		return err
	}
	p.Value = value
	return nil
}

func decodePatchValue(raw json.RawMessage) (PatchValue, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return PatchString(s), nil
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return PatchNumber(n), nil
	}
	var ints []int
	if err := json.Unmarshal(raw, &ints); err == nil {
		return PatchIntList(ints), nil
	}
	var strs []string
	if err := json.Unmarshal(raw, &strs); err == nil {
		return PatchStringList(strs), nil
	}
	var obj map[string]string
	if err := json.Unmarshal(raw, &obj); err == nil {
		return PatchObject(obj), nil
	}
	return nil, validation.NewDecodeError("patch value", "value %s is outside the supported shapes", string(raw))
}
