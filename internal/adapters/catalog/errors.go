package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrCityNotFound = errors.New("city not found")
)
