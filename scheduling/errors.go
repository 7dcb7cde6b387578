package scheduling

import (
	"errors"
	"fmt"
	"strings"
)

// Domain rejections. All of these are expected outcomes of Admit/Reschedule
// and map deterministically onto HTTP status codes; anything else coming out
// of the scheduling package is a storage failure.
var (
	// ErrSlotConflict: the requested interval overlaps an existing booking.
	ErrSlotConflict = errors.New("time slot is already booked")

	// ErrInvalidService: unknown service, a different salon's service, or an
	// inactive one where an active one is required.
	ErrInvalidService = errors.New("invalid service")

	// ErrNotFound: the referenced booking does not exist.
	ErrNotFound = errors.New("booking not found")
)

// ValidationError names the missing or malformed request fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}
