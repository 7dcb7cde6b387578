package store

import "errors"

// ErrNotFound is returned when a requested record does not exist, is not
// visible to the requesting salon, or (for services) is inactive where an
// active one is required. Callers cannot tell those cases apart on purpose.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a uniqueness rule (salon email or slug) would
// be violated.
var ErrConflict = errors.New("record conflicts with an existing one")
