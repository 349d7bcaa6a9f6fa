package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/roam/internal/domain/model"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if ROAM_CONFIG is set
//  3. env (prefix ROAM_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("ROAM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: ROAM_ADDR, ROAM_MAX_PAGE_SIZE, ...
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("ROAM_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "roam_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.MaxPageSize < 1 {
		return nil, fmt.Errorf("%w: max_page_size must be positive", ErrInvalidConfig)
	}
	if _, err := cfg.ParsedSeedCities(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParsedSeedCities decodes the "lat,lng" seed city map into points.
func (c *Config) ParsedSeedCities() (map[string]model.GeoPoint, error) {
	out := make(map[string]model.GeoPoint, len(c.SeedCities))
	for city, raw := range c.SeedCities {
		lat, lng, err := parseLatLng(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: seed city %s: %w", ErrInvalidConfig, city, err)
		}
		out[city] = model.GeoPoint{Lat: lat, Lng: lng}
	}
	return out, nil
}

func parseLatLng(raw string) (lat, lng float64, err error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want \"lat,lng\", got %q", raw)
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad latitude in %q: %w", raw, err)
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad longitude in %q: %w", raw, err)
	}
	return lat, lng, nil
}
