package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrDuplicateLabel = errors.New("duplicate category label")
	ErrEmptyCorpus    = errors.New("empty corpus")
	ErrMissingColumn  = errors.New("headline column not found")
)
