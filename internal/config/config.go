// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxPageSize caps the page size a client may request.
	MaxPageSize int `koanf:"max_page_size"`

	// SeedCandidatesPerCity sizes the demo catalog loaded at startup.
	SeedCandidatesPerCity int `koanf:"seed_candidates_per_city"`

	// SeedValue makes the demo catalog reproducible across restarts.
	SeedValue int64 `koanf:"seed_value"`

	// SeedCities maps demo city ids to "lat,lng" center strings.
	SeedCities map[string]string `koanf:"seed_cities"`

	// Season selects the seasonal-availability filter applied by the
	// catalog, e.g. "summer".
	Season string `koanf:"season"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:              "info",
		Addr:                  ":9090",
		MaxPageSize:           50,
		SeedCandidatesPerCity: 150,
		SeedValue:             1,
		SeedCities: map[string]string{
			"lisbon": "38.7223,-9.1393",
			"rome":   "41.9028,12.4964",
			"tokyo":  "35.6762,139.6503",
		},
		Season: "summer",
	}
}
