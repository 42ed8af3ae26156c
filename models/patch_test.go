package models

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitPatchOp(t *testing.T) {
	Convey("Every listed operation validates and round trips", t, func() {
		for _, op := range AllPatchOps() {
			So(op.Valid(), ShouldBeTrue)

			encoded, err := json.Marshal(op)
			So(err, ShouldBeNil)

			var decoded PatchOp
			So(json.Unmarshal(encoded, &decoded), ShouldBeNil)
			So(decoded, ShouldEqual, op)
		}
	})

	Convey("An unrecognised operation fails to decode", t, func() {
		var decoded PatchOp
		So(json.Unmarshal([]byte(`"merge"`), &decoded), ShouldNotBeNil)
	})
}

func TestUnitPatch(t *testing.T) {
	Convey("A replace patch renames Operation to op and omits from", t, func() {
		patch := Patch{
			Operation: PatchReplace,
			Path:      "/note_to_payer",
			Value:     PatchString("thank you"),
		}

		encoded, err := json.Marshal(patch)
		So(err, ShouldBeNil)
		So(string(encoded), ShouldEqual, `{"op":"replace","path":"/note_to_payer","value":"thank you"}`)
	})

	Convey("A move patch carries from and no value", t, func() {
		patch := Patch{
			Operation: PatchMove,
			Path:      "/transactions/0/description",
			From:      "/transactions/0/note",
		}

		encoded, err := json.Marshal(patch)
		So(err, ShouldBeNil)
		So(string(encoded), ShouldEqual, `{"op":"move","path":"/transactions/0/description","from":"/transactions/0/note"}`)

		Convey("And round trips", func() {
			var decoded Patch
			So(json.Unmarshal(encoded, &decoded), ShouldBeNil)
			So(decoded, ShouldResemble, patch)
		})
	})

	Convey("An unrecognised operation fails to encode", t, func() {
		patch := Patch{Operation: PatchOp("merge"), Path: "/"}
		_, err := json.Marshal(patch)
		So(err, ShouldNotBeNil)
	})

	Convey("Each value shape survives a round trip", t, func() {
		values := []PatchValue{
			PatchString("text"),
			PatchNumber(42),
			PatchStringList{"a", "b"},
			PatchIntList{1, 2, 3},
			PatchObject{"key": "value"},
		}
		for _, value := range values {
			patch := Patch{Operation: PatchAdd, Path: "/x", Value: value}

			encoded, err := json.Marshal(patch)
			So(err, ShouldBeNil)

			var decoded Patch
			So(json.Unmarshal(encoded, &decoded), ShouldBeNil)
			So(decoded.Value, ShouldResemble, value)
		}
	})

	Convey("A value outside the supported shapes fails to decode", t, func() {
		var decoded Patch
		err := json.Unmarshal([]byte(`{"op":"add","path":"/x","value":{"nested":{"deep":true}}}`), &decoded)
		So(err, ShouldNotBeNil)
	})
}

func TestUnitNewPatchValue(t *testing.T) {
	Convey("Supported Go values convert to their wire shapes", t, func() {
		value, err := NewPatchValue("text")
		So(err, ShouldBeNil)
		So(value, ShouldEqual, PatchString("text"))

		value, err = NewPatchValue(7)
		So(err, ShouldBeNil)
		So(value, ShouldEqual, PatchNumber(7))

		value, err = NewPatchValue([]string{"a"})
		So(err, ShouldBeNil)
		So(value, ShouldResemble, PatchStringList{"a"})
	})

	Convey("An unsupported type is an encode error", t, func() {
		_, err := NewPatchValue(struct{ X int }{1})
		So(err, ShouldNotBeNil)
	})
}
