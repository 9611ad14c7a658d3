package ehr

import "errors"

var (
	// ErrNotFound covers missing rows and ownership mismatches alike so
	// callers cannot probe for another doctor's records.
	ErrNotFound = errors.New("not found")

	ErrConfigurationMissing = errors.New("no active configuration for provider")
	ErrInvalidProvider      = errors.New("unknown provider")
)
