package prescription

import "errors"

// ErrNotFound is returned both when no prescription exists and when it exists
// but belongs to another doctor, so existence is never leaked across tenants.
var ErrNotFound = errors.New("prescription not found")

var ErrInvalidMedication = errors.New("invalid medication")
