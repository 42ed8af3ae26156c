package models

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitKeyValueList(t *testing.T) {
	Convey("A list encodes as an array of key/value objects", t, func() {
		list := NewKeyValueList(
			KeyValuePair{Key: "colour", Value: "red"},
			KeyValuePair{Key: "size", Value: "large"},
		)

		encoded, err := json.Marshal(list)
		So(err, ShouldBeNil)
		So(string(encoded), ShouldEqual, `[{"key":"colour","value":"red"},{"key":"size","value":"large"}]`)

		Convey("And round trips preserving order", func() {
			var decoded KeyValueList
			So(json.Unmarshal(encoded, &decoded), ShouldBeNil)
			So(decoded, ShouldResemble, list)
		})
	})

	Convey("Duplicate keys are tolerated", t, func() {
		list := NewKeyValueList(
			KeyValuePair{Key: "tag", Value: "first"},
			KeyValuePair{Key: "tag", Value: "second"},
		)

		encoded, _ := json.Marshal(list)
		var decoded KeyValueList
		So(json.Unmarshal(encoded, &decoded), ShouldBeNil)
		So(len(decoded), ShouldEqual, 2)

		Convey("Get returns the first match", func() {
			value, ok := decoded.Get("tag")
			So(ok, ShouldBeTrue)
			So(value, ShouldEqual, "first")
		})
	})

	Convey("Get reports a missing key", t, func() {
		list := NewKeyValueList(KeyValuePair{Key: "present", Value: "yes"})
		_, ok := list.Get("absent")
		So(ok, ShouldBeFalse)
	})

	Convey("KeyValueListFromMap sorts entries by key", t, func() {
		list := KeyValueListFromMap(map[string]string{"b": "2", "a": "1", "c": "3"})
		So(list, ShouldResemble, KeyValueList{
			{Key: "a", Value: "1"},
			{Key: "b", Value: "2"},
			{Key: "c", Value: "3"},
		})
	})
}
