package models

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitPercentRange(t *testing.T) {
	Convey("A (25,75) range constructs and yields the inclusive sequence", t, func() {
		r, err := NewPercentRange(25, 75)
		So(err, ShouldBeNil)

		values := r.Values()
		So(len(values), ShouldEqual, 51)
		So(values[0], ShouldEqual, 25)
		So(values[len(values)-1], ShouldEqual, 75)

		Convey("Each call yields a fresh slice", func() {
			again := r.Values()
			again[0] = -1
			So(r.Values()[0], ShouldEqual, 25)
		})
	})

	Convey("A collapsed (50,50) range constructs", t, func() {
		r, err := NewPercentRange(50, 50)
		So(err, ShouldBeNil)
		So(r.Values(), ShouldResemble, []int{50})
	})

	Convey("A (0,0) range is rejected", t, func() {
		_, err := NewPercentRange(0, 0)
		So(err, ShouldNotBeNil)
	})

	Convey("A (100,54) range is rejected", t, func() {
		_, err := NewPercentRange(100, 54)
		So(err, ShouldNotBeNil)
	})

	Convey("An inverted (60,40) range is rejected", t, func() {
		_, err := NewPercentRange(60, 40)
		So(err, ShouldNotBeNil)
	})

	Convey("Open ended helpers fill in the missing bound", t, func() {
		upTo, err := PercentRangeUpTo(30)
		So(err, ShouldBeNil)
		So(upTo.Minimum, ShouldEqual, 0)
		So(upTo.Maximum, ShouldEqual, 30)

		from, err := PercentRangeFrom(70)
		So(err, ShouldBeNil)
		So(from.Minimum, ShouldEqual, 70)
		So(from.Maximum, ShouldEqual, 100)
	})

	Convey("It encodes as sibling percent keys and round trips", t, func() {
		r, _ := NewPercentRange(25, 75)
		encoded, err := json.Marshal(r)
		So(err, ShouldBeNil)
		So(string(encoded), ShouldEqual, `{"minimum_percent":25,"maximum_percent":75}`)

		var decoded PercentRange
		So(json.Unmarshal(encoded, &decoded), ShouldBeNil)
		So(decoded, ShouldResemble, *r)
	})

	Convey("An out of band range is rejected at decode", t, func() {
		var decoded PercentRange
		err := json.Unmarshal([]byte(`{"minimum_percent":0,"maximum_percent":0}`), &decoded)
		So(err, ShouldNotBeNil)
	})
}

func TestUnitMoneyRange(t *testing.T) {
	Convey("A valid range constructs with a shared currency", t, func() {
		r, err := NewMoneyRange(CurrencyUSD, "100.00", "500.00")
		So(err, ShouldBeNil)
		So(r.Minimum.CurrencyCode, ShouldEqual, CurrencyUSD)
		So(r.Maximum.CurrencyCode, ShouldEqual, CurrencyUSD)

		Convey("And round trips", func() {
			encoded, err := json.Marshal(r)
			So(err, ShouldBeNil)

			var decoded MoneyRange
			So(json.Unmarshal(encoded, &decoded), ShouldBeNil)
			So(decoded, ShouldResemble, *r)
		})
	})

	Convey("An inverted range is rejected", t, func() {
		_, err := NewMoneyRange(CurrencyUSD, "500.00", "100.00")
		So(err, ShouldNotBeNil)
	})

	Convey("Mismatched currencies are rejected at decode", t, func() {
		var decoded MoneyRange
		err := json.Unmarshal([]byte(`{"minimum_amount":{"currency_code":"USD","value":"1.00"},"maximum_amount":{"currency_code":"EUR","value":"2.00"}}`), &decoded)
		So(err, ShouldNotBeNil)
	})
}
