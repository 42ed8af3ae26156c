package validation

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitConstrained(t *testing.T) {
	Convey("Given a content field bounded at 2000 characters", t, func() {
		bound := MaxLength(2000)

		Convey("A 2000 character value constructs successfully", func() {
			c, err := NewConstrained("content", bound, strings.Repeat("a", 2000))
			So(err, ShouldBeNil)
			So(len(c.Value()), ShouldEqual, 2000)
		})

		Convey("A 2001 character value is rejected at construction", func() {
			_, err := NewConstrained("content", bound, strings.Repeat("a", 2001))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "content")
		})

		Convey("A failed Set leaves the previous value in place", func() {
			c, err := NewConstrained("content", bound, "original")
			So(err, ShouldBeNil)

			err = c.Set(strings.Repeat("a", 2001))
			So(err, ShouldNotBeNil)
			So(c.Value(), ShouldEqual, "original")
		})

		Convey("A successful Set replaces the value", func() {
			c, err := NewConstrained("content", bound, "original")
			So(err, ShouldBeNil)

			So(c.Set("replacement"), ShouldBeNil)
			So(c.Value(), ShouldEqual, "replacement")
		})

		Convey("Revalidate always passes on a constructed value", func() {
			c, err := NewConstrained("content", bound, "ok")
			So(err, ShouldBeNil)
			So(c.Revalidate(), ShouldBeNil)
			So(c.Revalidate(), ShouldBeNil)
		})

		Convey("Revalidate fails on a zero value never built through NewConstrained", func() {
			var c Constrained[string]
			So(c.Revalidate(), ShouldNotBeNil)
		})

		Convey("Equal compares wrapped values only", func() {
			a, _ := NewConstrained("a", MaxLength(10), "same")
			b, _ := NewConstrained("b", MaxLength(20), "same")
			c, _ := NewConstrained("c", MaxLength(10), "different")

			So(a.Equal(b), ShouldBeTrue)
			So(a.Equal(c), ShouldBeFalse)
		})
	})
}

func TestUnitValidationErrors(t *testing.T) {
	Convey("Combine returns nil when every error is nil", t, func() {
		So(Combine(nil, nil), ShouldBeNil)
	})

	Convey("Combine aggregates each failure", t, func() {
		err := Combine(
			NewFieldError("line1", "must not be empty"),
			nil,
			NewFieldError("city", "length must be at most 50 characters"),
		)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "line1")
		So(err.Error(), ShouldContainSubstring, "city")
	})
}
