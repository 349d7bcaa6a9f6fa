package ranking_test

import (
	"testing"

	"github.com/okian/roam/internal/domain/model"
	ranking "github.com/okian/roam/internal/domain/ranking"
	. "github.com/smartystreets/goconvey/convey"
)

func scored(pairs ...interface{}) []model.ScoredCandidate {
	out := make([]model.ScoredCandidate, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, model.ScoredCandidate{
			Candidate: model.Candidate{ID: pairs[i].(string)},
			Score:     pairs[i+1].(float64),
		})
	}
	return out
}

func ids(in []model.ScoredCandidate) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = s.Candidate.ID
	}
	return out
}

func TestRank(t *testing.T) {
	Convey("Given a scored candidate set", t, func() {
		Convey("When ranking with a threshold", func() {
			in := scored("a", 0.9, "b", 0.4, "c", 0.41, "d", 0.1)
			out := ranking.Rank(in, 0.4)

			Convey("Then scores at or below the threshold are dropped", func() {
				So(ids(out), ShouldResemble, []string{"a", "c"})
			})
		})

		Convey("When scores tie", func() {
			in := scored("z", 0.5, "a", 0.5, "m", 0.7)
			out := ranking.Rank(in, 0)

			Convey("Then ties break by candidate ID ascending", func() {
				So(ids(out), ShouldResemble, []string{"m", "a", "z"})
			})
		})

		Convey("When ranking twice", func() {
			in := scored("b", 0.5, "a", 0.5, "c", 0.5)
			first := ids(ranking.Rank(in, 0))
			second := ids(ranking.Rank(in, 0))

			Convey("Then the order is reproducible", func() {
				So(first, ShouldResemble, second)
				So(first, ShouldResemble, []string{"a", "b", "c"})
			})
		})

		Convey("When everything falls below the threshold", func() {
			out := ranking.Rank(scored("a", 0.1), 0.5)

			Convey("Then the result is empty, not nil-panicky", func() {
				So(out, ShouldBeEmpty)
			})
		})
	})
}

func TestTopN(t *testing.T) {
	Convey("Given a ranked slice", t, func() {
		in := scored("a", 0.9, "b", 0.8, "c", 0.7)

		Convey("When truncating below its length", func() {
			So(ids(ranking.TopN(in, 2)), ShouldResemble, []string{"a", "b"})
		})

		Convey("When n exceeds the length", func() {
			So(ranking.TopN(in, 10), ShouldHaveLength, 3)
		})

		Convey("When n is not positive", func() {
			So(ranking.TopN(in, 0), ShouldBeEmpty)
			So(ranking.TopN(in, -3), ShouldBeEmpty)
		})
	})
}

func TestPaginate(t *testing.T) {
	Convey("Given the paginator", t, func() {
		Convey("When the ranked set is empty", func() {
			page := ranking.Paginate(nil, 1, 10, 20)

			Convey("Then the envelope is the canonical empty page", func() {
				So(page.Items, ShouldBeEmpty)
				So(page.Total, ShouldEqual, 0)
				So(page.Page, ShouldEqual, 1)
				So(page.TotalPages, ShouldEqual, 1)
				So(page.HasNextPage, ShouldBeFalse)
				So(page.HasPreviousPage, ShouldBeFalse)
			})
		})

		Convey("When the requested page is past the end", func() {
			in := make([]model.ScoredCandidate, 12)
			for i := range in {
				in[i] = model.ScoredCandidate{Candidate: model.Candidate{ID: string(rune('a' + i))}}
			}
			page := ranking.Paginate(in, 5, 10, 20)

			Convey("Then the page clamps to the last one", func() {
				So(page.Page, ShouldEqual, 2)
				So(page.TotalPages, ShouldEqual, 2)
				So(page.Items, ShouldHaveLength, 2)
				So(page.HasNextPage, ShouldBeFalse)
				So(page.HasPreviousPage, ShouldBeTrue)
			})
		})

		Convey("When the page size is not positive", func() {
			in := scored("a", 0.9, "b", 0.8)
			page := ranking.Paginate(in, 1, 0, 20)

			Convey("Then the default size applies", func() {
				So(page.PageSize, ShouldEqual, 20)
				So(page.Items, ShouldHaveLength, 2)
			})
		})

		Convey("When both size and default are unusable", func() {
			page := ranking.Paginate(scored("a", 0.9), 1, 0, 0)

			Convey("Then the size bottoms out at 1", func() {
				So(page.PageSize, ShouldEqual, 1)
				So(page.Items, ShouldHaveLength, 1)
			})
		})

		Convey("When slicing a middle page", func() {
			in := scored("a", 0.9, "b", 0.8, "c", 0.7, "d", 0.6, "e", 0.5)
			page := ranking.Paginate(in, 2, 2, 20)

			Convey("Then the window and flags line up", func() {
				So(ids(page.Items), ShouldResemble, []string{"c", "d"})
				So(page.HasNextPage, ShouldBeTrue)
				So(page.HasPreviousPage, ShouldBeTrue)
				So(page.TotalPages, ShouldEqual, 3)
			})
		})
	})
}
