package catalog_test

import (
	"context"
	"errors"
	"testing"

	catalog "github.com/okian/roam/internal/adapters/catalog"
	"github.com/okian/roam/internal/domain/model"
	scoring "github.com/okian/roam/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryCatalog(t *testing.T) {
	Convey("Given a catalog loaded with mixed candidates", t, func() {
		c := catalog.NewMemoryCatalog(catalog.WithSeason("summer"))
		c.Load("lisbon", []model.Candidate{
			{ID: "open-museum", PlaceTypes: []string{"museum"}, BusinessStatus: model.StatusOperational},
			{ID: "closed-museum", PlaceTypes: []string{"museum"}, BusinessStatus: model.StatusClosedTemporarily},
			{ID: "cafe", PlaceTypes: []string{"cafe"}, BusinessStatus: model.StatusOperational},
			{ID: "summer-beach", PlaceTypes: []string{"museum"}, BusinessStatus: model.StatusOperational, SeasonalAvailability: "summer"},
			{ID: "winter-rink", PlaceTypes: []string{"museum"}, BusinessStatus: model.StatusOperational, SeasonalAvailability: "winter"},
		})

		museums := scoring.CategoryConfig{
			ID:                "museums",
			AllowedPlaceTypes: []string{"museum", "art_gallery"},
		}

		Convey("When fetching candidates for a category", func() {
			got, err := c.Candidates(context.Background(), "lisbon", museums)

			Convey("Then status, season and allowlist filters all apply", func() {
				So(err, ShouldBeNil)
				So(idsOf(got), ShouldResemble, []string{"open-museum", "summer-beach"})
			})
		})

		Convey("When the category has no allowlist", func() {
			got, err := c.Candidates(context.Background(), "lisbon", scoring.CategoryConfig{ID: "anything"})

			Convey("Then any operational, in-season candidate passes", func() {
				So(err, ShouldBeNil)
				So(idsOf(got), ShouldResemble, []string{"open-museum", "cafe", "summer-beach"})
			})
		})

		Convey("When the city is unknown", func() {
			_, err := c.Candidates(context.Background(), "atlantis", museums)

			Convey("Then the sentinel error surfaces", func() {
				So(errors.Is(err, catalog.ErrCityNotFound), ShouldBeTrue)
			})
		})

		Convey("When the request context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := c.Candidates(ctx, "lisbon", museums)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})

		Convey("When inspecting the loaded state", func() {
			So(c.Cities(), ShouldHaveLength, 1)
			So(c.Count("lisbon"), ShouldEqual, 5)
			So(c.Count("atlantis"), ShouldEqual, 0)
		})
	})
}

func TestSeedCity(t *testing.T) {
	Convey("Given the demo seeder", t, func() {
		center := model.GeoPoint{Lat: 38.7223, Lng: -9.1393}

		Convey("When seeding the same city twice with the same seed", func() {
			a := catalog.NewMemoryCatalog()
			b := catalog.NewMemoryCatalog()
			a.SeedCity("lisbon", center, 50, 7)
			b.SeedCity("lisbon", center, 50, 7)

			aAll, err := a.Candidates(context.Background(), "lisbon", scoring.CategoryConfig{})
			So(err, ShouldBeNil)
			bAll, err := b.Candidates(context.Background(), "lisbon", scoring.CategoryConfig{})
			So(err, ShouldBeNil)

			Convey("Then the generated data is identical", func() {
				So(idsOf(aAll), ShouldResemble, idsOf(bAll))
			})
		})

		Convey("When seeding with different seeds", func() {
			a := catalog.NewMemoryCatalog()
			b := catalog.NewMemoryCatalog()
			a.SeedCity("lisbon", center, 50, 1)
			b.SeedCity("lisbon", center, 50, 2)

			Convey("Then the attribute mix differs even though IDs are positional", func() {
				aAll, err := a.Candidates(context.Background(), "lisbon", scoring.CategoryConfig{})
				So(err, ShouldBeNil)
				bAll, err := b.Candidates(context.Background(), "lisbon", scoring.CategoryConfig{})
				So(err, ShouldBeNil)
				So(aAll, ShouldNotResemble, bAll)
			})
		})

		Convey("When seeding a reasonable volume", func() {
			c := catalog.NewMemoryCatalog()
			c.SeedCity("rome", center, 200, 1)

			Convey("Then the full count is loaded and positioned near the center", func() {
				So(c.Count("rome"), ShouldEqual, 200)
				all, err := c.Candidates(context.Background(), "rome", scoring.CategoryConfig{})
				So(err, ShouldBeNil)
				for _, cand := range all {
					So(cand.Location.Lat, ShouldBeBetween, center.Lat-0.1, center.Lat+0.1)
					So(cand.Location.Lng, ShouldBeBetween, center.Lng-0.1, center.Lng+0.1)
				}
			})
		})
	})
}

func idsOf(in []model.Candidate) []string {
	out := make([]string, len(in))
	for i, c := range in {
		out[i] = c.ID
	}
	return out
}
