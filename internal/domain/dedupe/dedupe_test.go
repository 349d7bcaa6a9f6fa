package dedupe_test

import (
	"testing"

	dedupe "github.com/okian/roam/internal/domain/dedupe"
	"github.com/okian/roam/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMerge(t *testing.T) {
	Convey("Given overlapping candidate pools", t, func() {
		a := []model.Candidate{{ID: "1", Name: "first"}, {ID: "2"}}
		b := []model.Candidate{{ID: "2"}, {ID: "3"}, {ID: "1", Name: "shadowed"}}

		Convey("When merging", func() {
			out := dedupe.Merge(a, b)

			Convey("Then each ID appears once, first occurrence winning", func() {
				So(out, ShouldHaveLength, 3)
				So(out[0].ID, ShouldEqual, "1")
				So(out[0].Name, ShouldEqual, "first")
				So(out[1].ID, ShouldEqual, "2")
				So(out[2].ID, ShouldEqual, "3")
			})
		})

		Convey("When all pools are empty", func() {
			So(dedupe.Merge(nil, nil), ShouldBeNil)
			So(dedupe.Merge(), ShouldBeNil)
		})

		Convey("When pools do not overlap", func() {
			out := dedupe.Merge(a, []model.Candidate{{ID: "9"}})

			Convey("Then the concatenation order is preserved", func() {
				So(out, ShouldHaveLength, 3)
				So(out[2].ID, ShouldEqual, "9")
			})
		})
	})
}
