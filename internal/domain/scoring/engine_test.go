package scoring_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/roam/internal/domain/model"
	scoring "github.com/okian/roam/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEngineNew(t *testing.T) {
	Convey("Given the engine constructor", t, func() {
		Convey("When built with defaults", func() {
			e, err := scoring.New()

			Convey("Then it should be ready with the default tables", func() {
				So(err, ShouldBeNil)
				So(e, ShouldNotBeNil)
				So(e.Tables().Version, ShouldNotBeEmpty)
			})
		})

		Convey("When built with broken tables", func() {
			_, err := scoring.New(scoring.WithTables(scoring.Tables{}))

			Convey("Then construction should fail fast", func() {
				So(errors.Is(err, scoring.ErrInvalidTables), ShouldBeTrue)
			})
		})
	})
}

func TestEngineScore(t *testing.T) {
	Convey("Given an engine and the attractions config", t, func() {
		e, err := scoring.New()
		So(err, ShouldBeNil)
		attractions := categoryByID(t, "attractions")

		Convey("When scoring an empty candidate set", func() {
			scored, err := e.Score(context.Background(), attractions, model.ScoringContext{}, nil)

			Convey("Then an empty result should come back without error", func() {
				So(err, ShouldBeNil)
				So(scored, ShouldBeEmpty)
			})
		})

		Convey("When two candidates differ only in the must-see flag", func() {
			base := model.Candidate{
				ID:              "plain",
				PlaceTypes:      []string{"tourist_attraction"},
				RatingTier:      model.RatingHigh,
				ReviewCountTier: model.ReviewsHigh,
				PriceLevel:      model.PriceModerate,
			}
			mustSee := base
			mustSee.ID = "must-see"
			mustSee.MustSee = true

			scored, err := e.Score(context.Background(), attractions, model.ScoringContext{}, []model.Candidate{base, mustSee})

			Convey("Then the must-see candidate should score higher", func() {
				So(err, ShouldBeNil)
				So(scored, ShouldHaveLength, 2)
				byID := map[string]float64{}
				for _, s := range scored {
					byID[s.Candidate.ID] = s.Score
				}
				So(byID["must-see"], ShouldBeGreaterThan, byID["plain"])
			})
		})

		Convey("When the context requests cluster-relative scoring", func() {
			sc := model.ScoringContext{
				Location: model.LocationContext{Kind: model.LocationActivityCluster},
				SelectedActivities: []model.GeoPoint{
					{Lat: 38.720, Lng: -9.140},
					{Lat: 38.722, Lng: -9.142},
				},
			}
			inside := model.Candidate{
				ID:         "inside",
				PlaceTypes: []string{"tourist_attraction"},
				Location:   model.Location{Lat: 38.721, Lng: -9.141},
			}
			outside := inside
			outside.ID = "outside"
			outside.Location = model.Location{Lat: 39.5, Lng: -9.141}

			scored, err := e.Score(context.Background(), attractions, sc, []model.Candidate{inside, outside})

			Convey("Then clusters are derived from the selected activities", func() {
				So(err, ShouldBeNil)
				byID := map[string]float64{}
				for _, s := range scored {
					byID[s.Candidate.ID] = s.Score
				}
				So(byID["inside"], ShouldBeGreaterThan, byID["outside"])
			})
		})

		Convey("When the request context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := e.Score(ctx, attractions, model.ScoringContext{}, []model.Candidate{{ID: "x"}})

			Convey("Then the pass should be abandoned", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})

		Convey("When a context triggers weight adjustments", func() {
			c := model.Candidate{
				ID:              "venue",
				MustSee:         true,
				PlaceTypes:      []string{"tourist_attraction"},
				ReviewCountTier: model.ReviewsVeryHigh,
			}
			neutral, err := e.Score(context.Background(), attractions, model.ScoringContext{}, []model.Candidate{c})
			So(err, ShouldBeNil)
			popular, err := e.Score(context.Background(), attractions, model.ScoringContext{
				CrowdPreference: model.CrowdPopular,
			}, []model.Candidate{c})
			So(err, ShouldBeNil)

			Convey("Then the popular preference should lift a prestigious venue", func() {
				So(popular[0].Score, ShouldBeGreaterThan, neutral[0].Score)
			})
		})
	})
}
