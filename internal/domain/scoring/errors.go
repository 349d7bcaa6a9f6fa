package scoring

import "errors"

// Sentinel kinds for scoring errors.
var (
	ErrInvalidTables   = errors.New("invalid lookup tables")
	ErrInvalidCategory = errors.New("invalid category config")
	ErrUnknownCategory = errors.New("unknown category")
)
