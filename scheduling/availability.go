package scheduling

import (
	"context"
	"errors"
	"time"

	"salonbook-backend/store"
	"salonbook-backend/utils"
)

// Slot is one candidate start time of the requested service's duration.
type Slot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

// Engine computes which start times currently fit a service without touching
// an existing booking. It never writes.
type Engine struct {
	services *store.ServiceStore
	bookings *store.BookingStore

	// blockingStatuses restricts which bookings occupy slots; nil means all.
	blockingStatuses []string
}

func NewEngine(services *store.ServiceStore, bookings *store.BookingStore, blockingStatuses []string) *Engine {
	return &Engine{services: services, bookings: bookings, blockingStatuses: blockingStatuses}
}

// ComputeAvailability enumerates candidate starts between hours.Open and
// hours.Close on the given date, stepped by stepMin minutes, and marks each
// against the salon's existing bookings. Candidates whose end would run past
// closing are dropped. The result is rebuilt from storage on every call and
// ordered by start time ascending.
//
// Returns ErrInvalidService when the service is unknown, another salon's, or
// inactive.
func (e *Engine) ComputeAvailability(ctx context.Context, salonID uint, date time.Time, serviceID uint, hours BusinessHours, stepMin int) ([]Slot, error) {
	service, err := e.services.GetActiveService(ctx, salonID, serviceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidService
		}
		return nil, err
	}

	if hours.Closed {
		return []Slot{}, nil
	}
	if stepMin <= 0 {
		stepMin = DefaultGranularity
	}

	open, err := atClock(date, hours.Open)
	if err != nil {
		return nil, err
	}
	closeAt, err := atClock(date, hours.Close)
	if err != nil {
		return nil, err
	}

	// Fetch every booking touching the civil day, not just those starting on
	// it, so a booking spilling over from the previous midnight still blocks.
	dayStart := utils.BeginningOfDay(open)
	existing, err := e.bookings.ListOverlapping(ctx, salonID, dayStart, utils.EndOfDay(open), 0, e.blockingStatuses)
	if err != nil {
		return nil, err
	}

	slots := []Slot{}
	for start := open; start.Before(closeAt); start = AddMinutes(start, stepMin) {
		end := AddMinutes(start, service.DurationMin)
		if end.After(closeAt) {
			continue // service must finish before closing
		}
		slot := Slot{Start: start, End: end, Available: true}
		for _, b := range existing {
			if Overlaps(start, end, b.StartsAt, b.EndsAt) {
				slot.Available = false
				break
			}
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
