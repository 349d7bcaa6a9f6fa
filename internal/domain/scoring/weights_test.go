package scoring_test

import (
	"testing"

	"github.com/okian/roam/internal/domain/model"
	scoring "github.com/okian/roam/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBaseWeightTables(t *testing.T) {
	Convey("Given the built-in category configurations", t, func() {
		configs := append(scoring.DefaultCategories(), scoring.ForYouCategory())

		Convey("Then every base weight table should sum to 1.0", func() {
			for _, cat := range configs {
				So(cat.BaseWeights.Sum(), ShouldAlmostEqual, 1.0, 1e-9)
			}
		})

		Convey("Then every weight table should cover exactly its dimensions", func() {
			for _, cat := range configs {
				So(cat.BaseWeights, ShouldHaveLength, len(cat.Dimensions))
				for _, d := range cat.Dimensions {
					So(cat.BaseWeights[d], ShouldBeGreaterThan, 0)
				}
			}
		})
	})
}

func TestEffectiveWeights(t *testing.T) {
	Convey("Given the default adjustment rules", t, func() {
		rules := scoring.DefaultAdjustmentRules()

		base := scoring.Weights{
			scoring.DimensionPrestige: 0.25,
			scoring.DimensionInterest: 0.20,
			scoring.DimensionActivity: 0.20,
			scoring.DimensionPrice:    0.10,
			scoring.DimensionLocation: 0.15,
			scoring.DimensionTime:     0.10,
		}

		Convey("When no context field triggers a rule", func() {
			out := scoring.EffectiveWeights(base, rules, model.ScoringContext{})

			Convey("Then the base table should come back unchanged", func() {
				So(out.Sum(), ShouldAlmostEqual, 1.0, 1e-9)
				So(out[scoring.DimensionPrestige], ShouldAlmostEqual, 0.25, 1e-9)
			})
		})

		Convey("When the traveler prefers popular venues", func() {
			out := scoring.EffectiveWeights(base, rules, model.ScoringContext{
				CrowdPreference: model.CrowdPopular,
			})

			Convey("Then prestige gains what location loses", func() {
				So(out[scoring.DimensionPrestige], ShouldAlmostEqual, 0.35, 1e-9)
				So(out[scoring.DimensionLocation], ShouldAlmostEqual, 0.05, 1e-9)
				So(out.Sum(), ShouldAlmostEqual, 1.0, 1e-9)
			})
		})

		Convey("When a rule targets a dimension the category does not score", func() {
			// Restaurants carry no prestige dimension, so the popular
			// rule can only land its location delta and the sum drifts.
			restaurantBase := scoring.Weights{
				scoring.DimensionInterest: 0.25,
				scoring.DimensionActivity: 0.15,
				scoring.DimensionPrice:    0.30,
				scoring.DimensionLocation: 0.30,
			}
			out := scoring.EffectiveWeights(restaurantBase, rules, model.ScoringContext{
				CrowdPreference: model.CrowdPopular,
			})

			Convey("Then the missing dimension stays absent and the sum drifts", func() {
				_, hasPrestige := out[scoring.DimensionPrestige]
				So(hasPrestige, ShouldBeFalse)
				So(out[scoring.DimensionLocation], ShouldAlmostEqual, 0.20, 1e-9)
				So(out.Sum(), ShouldAlmostEqual, 0.90, 1e-9)
			})
		})

		Convey("When several rules fire together", func() {
			out := scoring.EffectiveWeights(base, rules, model.ScoringContext{
				Budget:             model.BudgetLow,
				EnergyLevel:        model.EnergyHigh,
				PreferredStartTime: model.StartEarly,
			})

			Convey("Then the deltas should stack additively", func() {
				So(out[scoring.DimensionPrice], ShouldAlmostEqual, 0.20, 1e-9)
				So(out[scoring.DimensionActivity], ShouldAlmostEqual, 0.20, 1e-9)
				So(out[scoring.DimensionPrestige], ShouldAlmostEqual, 0.20, 1e-9)
				So(out[scoring.DimensionTime], ShouldAlmostEqual, 0.15, 1e-9)
				So(out[scoring.DimensionInterest], ShouldAlmostEqual, 0.15, 1e-9)
				So(out[scoring.DimensionLocation], ShouldAlmostEqual, 0.10, 1e-9)
				So(out.Sum(), ShouldAlmostEqual, 1.0, 1e-9)
			})
		})

		Convey("When the base table is used afterwards", func() {
			_ = scoring.EffectiveWeights(base, rules, model.ScoringContext{
				CrowdPreference: model.CrowdHidden,
			})

			Convey("Then the base table should be untouched", func() {
				So(base[scoring.DimensionPrestige], ShouldAlmostEqual, 0.25, 1e-9)
				So(base[scoring.DimensionLocation], ShouldAlmostEqual, 0.15, 1e-9)
			})
		})
	})
}

func TestWeightsHelpers(t *testing.T) {
	Convey("Given a drifted weight table", t, func() {
		w := scoring.Weights{
			scoring.DimensionPrice:    0.4,
			scoring.DimensionLocation: 0.4,
		}

		Convey("When renormalizing", func() {
			out := w.Renormalized()

			Convey("Then the copy should sum to 1.0 and the original stay put", func() {
				So(out.Sum(), ShouldAlmostEqual, 1.0, 1e-9)
				So(w.Sum(), ShouldAlmostEqual, 0.8, 1e-9)
			})
		})

		Convey("When cloning", func() {
			out := w.Clone()
			out[scoring.DimensionPrice] = 0.9

			Convey("Then the original should be independent", func() {
				So(w[scoring.DimensionPrice], ShouldAlmostEqual, 0.4, 1e-9)
			})
		})
	})
}
