package scoring_test

import (
	"errors"
	"testing"

	scoring "github.com/okian/roam/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCategoryRegistry(t *testing.T) {
	Convey("Given the built-in category configurations", t, func() {
		configs := scoring.DefaultCategories()

		Convey("When building a registry", func() {
			registry, err := scoring.NewRegistry(configs)

			Convey("Then all ten categories should register", func() {
				So(err, ShouldBeNil)
				So(registry, ShouldHaveLength, 10)
			})

			Convey("Then lookups should resolve known identifiers", func() {
				cat, err := registry.Lookup("restaurants")
				So(err, ShouldBeNil)
				So(cat.Name, ShouldEqual, "Restaurants")
				So(cat.Mode, ShouldEqual, scoring.ModePaged)
			})

			Convey("Then unknown identifiers should fail with the sentinel", func() {
				_, err := registry.Lookup("SHOPPING")
				So(errors.Is(err, scoring.ErrUnknownCategory), ShouldBeTrue)
			})
		})

		Convey("When a duplicate identifier is registered", func() {
			_, err := scoring.NewRegistry(append(configs, configs[0]))

			Convey("Then registry construction should fail", func() {
				So(errors.Is(err, scoring.ErrInvalidCategory), ShouldBeTrue)
			})
		})
	})
}

func TestCategoryConfigValidate(t *testing.T) {
	Convey("Given a well-formed category config", t, func() {
		good := scoring.DefaultCategories()[0]
		So(good.Validate(), ShouldBeNil)

		Convey("When the weights do not sum to 1.0", func() {
			bad := good
			bad.BaseWeights = bad.BaseWeights.Clone()
			bad.BaseWeights[scoring.DimensionPrestige] += 0.1

			So(errors.Is(bad.Validate(), scoring.ErrInvalidCategory), ShouldBeTrue)
		})

		Convey("When a dimension has no weight", func() {
			bad := good
			bad.BaseWeights = bad.BaseWeights.Clone()
			delete(bad.BaseWeights, scoring.DimensionTime)

			So(errors.Is(bad.Validate(), scoring.ErrInvalidCategory), ShouldBeTrue)
		})

		Convey("When top-n mode is declared without N", func() {
			bad := good
			bad.Mode = scoring.ModeTopN
			bad.TopN = 0

			So(errors.Is(bad.Validate(), scoring.ErrInvalidCategory), ShouldBeTrue)
		})

		Convey("When the mode is unknown", func() {
			bad := good
			bad.Mode = "streamed"

			So(errors.Is(bad.Validate(), scoring.ErrInvalidCategory), ShouldBeTrue)
		})

		Convey("When the location breakpoints are out of order", func() {
			bad := good
			bad.Location = scoring.LocationProfile{
				FullCreditMeters: 5000,
				MidCreditMeters:  2000,
				DecayLimitMeters: 10000,
			}

			So(errors.Is(bad.Validate(), scoring.ErrInvalidCategory), ShouldBeTrue)
		})
	})
}
