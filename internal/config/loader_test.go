package config_test

import (
	"context"
	"testing"

	config "github.com/okian/roam/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given the configuration loader", t, func() {
		Convey("When loading with no overrides", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then the defaults apply", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9090")
				So(cfg.MaxPageSize, ShouldEqual, 50)
				So(cfg.SeedCandidatesPerCity, ShouldEqual, 150)
				So(cfg.SeedCities, ShouldContainKey, "lisbon")
			})
		})

		Convey("When an environment variable overrides a field", func() {
			t.Setenv("ROAM_ADDR", ":8081")
			t.Setenv("ROAM_MAX_PAGE_SIZE", "10")

			cfg, err := config.Load(context.Background())

			Convey("Then the env values win", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8081")
				So(cfg.MaxPageSize, ShouldEqual, 10)
			})
		})

		Convey("When the page size override is invalid", func() {
			t.Setenv("ROAM_MAX_PAGE_SIZE", "0")

			_, err := config.Load(context.Background())
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParsedSeedCities(t *testing.T) {
	Convey("Given a config with seed cities", t, func() {
		cfg := config.New()

		Convey("When parsing the default map", func() {
			cities, err := cfg.ParsedSeedCities()

			Convey("Then every entry decodes to a point", func() {
				So(err, ShouldBeNil)
				So(cities, ShouldHaveLength, 3)
				So(cities["lisbon"].Lat, ShouldAlmostEqual, 38.7223, 1e-6)
				So(cities["lisbon"].Lng, ShouldAlmostEqual, -9.1393, 1e-6)
			})
		})

		Convey("When an entry is malformed", func() {
			cfg.SeedCities["broken"] = "not-a-pair"

			_, err := cfg.ParsedSeedCities()
			So(err, ShouldNotBeNil)
		})

		Convey("When an entry has a bad number", func() {
			cfg.SeedCities["broken"] = "12.0,east"

			_, err := cfg.ParsedSeedCities()
			So(err, ShouldNotBeNil)
		})
	})
}
