package scoring_test

import (
	"errors"
	"testing"

	"github.com/okian/roam/internal/domain/model"
	scoring "github.com/okian/roam/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTablesValidate(t *testing.T) {
	Convey("Given the default lookup tables", t, func() {
		tables := scoring.DefaultTables()

		Convey("Then they should validate", func() {
			So(tables.Validate(), ShouldBeNil)
		})

		Convey("When the version is cleared", func() {
			tables.Version = ""

			Convey("Then validation should fail", func() {
				So(errors.Is(tables.Validate(), scoring.ErrInvalidTables), ShouldBeTrue)
			})
		})

		Convey("When a price ordinal is removed", func() {
			tables.PriceOrdinals = map[model.PriceLevel]float64{
				model.PriceFree: 1,
			}

			Convey("Then validation should fail", func() {
				So(errors.Is(tables.Validate(), scoring.ErrInvalidTables), ShouldBeTrue)
			})
		})

		Convey("When a popularity value leaves its range", func() {
			tables.ReviewTierPopularity[model.ReviewsLow] = 1.5

			Convey("Then validation should fail", func() {
				So(errors.Is(tables.Validate(), scoring.ErrInvalidTables), ShouldBeTrue)
			})
		})

		Convey("When budget data is missing", func() {
			tables.BudgetTargets = map[model.Budget]float64{}

			Convey("Then validation should fail", func() {
				So(errors.Is(tables.Validate(), scoring.ErrInvalidTables), ShouldBeTrue)
			})
		})
	})
}
