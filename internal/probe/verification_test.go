package probe

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func item(id string, score float64) Item {
	var it Item
	it.Candidate.ID = id
	it.Score = score
	return it
}

func TestVerifyOrdering(t *testing.T) {
	Convey("Given the ordering check", t, func() {
		Convey("When scores strictly descend", func() {
			items := []Item{item("a", 0.9), item("b", 0.5), item("c", 0.1)}
			So(verifyOrdering(items), ShouldBeTrue)
		})

		Convey("When a score rises mid-list", func() {
			items := []Item{item("a", 0.5), item("b", 0.9)}
			So(verifyOrdering(items), ShouldBeFalse)
		})

		Convey("When ties are ordered by ID", func() {
			So(verifyOrdering([]Item{item("a", 0.5), item("b", 0.5)}), ShouldBeTrue)
			So(verifyOrdering([]Item{item("b", 0.5), item("a", 0.5)}), ShouldBeFalse)
		})

		Convey("When the list is empty or a singleton", func() {
			So(verifyOrdering(nil), ShouldBeTrue)
			So(verifyOrdering([]Item{item("a", 0.1)}), ShouldBeTrue)
		})
	})
}

func TestVerifyPageMath(t *testing.T) {
	Convey("Given the page envelope check", t, func() {
		Convey("When the envelope is consistent", func() {
			p := PagedResponse{
				Items:           []Item{item("a", 0.9), item("b", 0.8)},
				Total:           4,
				Page:            1,
				PageSize:        2,
				TotalPages:      2,
				HasNextPage:     true,
				HasPreviousPage: false,
			}
			So(verifyPageMath(p), ShouldBeTrue)
		})

		Convey("When the empty envelope is canonical", func() {
			p := PagedResponse{Total: 0, Page: 1, PageSize: 20, TotalPages: 1}
			So(verifyPageMath(p), ShouldBeTrue)
		})

		Convey("When the page exceeds the page count", func() {
			p := PagedResponse{Total: 4, Page: 3, PageSize: 2, TotalPages: 2}
			So(verifyPageMath(p), ShouldBeFalse)
		})

		Convey("When the flags contradict the position", func() {
			p := PagedResponse{
				Items:       []Item{item("a", 0.9), item("b", 0.8)},
				Total:       4,
				Page:        1,
				PageSize:    2,
				TotalPages:  2,
				HasNextPage: false,
			}
			So(verifyPageMath(p), ShouldBeFalse)
		})

		Convey("When a non-final page comes up short", func() {
			p := PagedResponse{
				Items:       []Item{item("a", 0.9)},
				Total:       4,
				Page:        1,
				PageSize:    2,
				TotalPages:  2,
				HasNextPage: true,
			}
			So(verifyPageMath(p), ShouldBeFalse)
		})

		Convey("When the item count exceeds the page size", func() {
			p := PagedResponse{
				Items:      []Item{item("a", 0.9), item("b", 0.8), item("c", 0.7)},
				Total:      3,
				Page:       1,
				PageSize:   2,
				TotalPages: 2,
			}
			So(verifyPageMath(p), ShouldBeFalse)
		})
	})
}
