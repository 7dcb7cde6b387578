package scheduling

import (
	"fmt"
	"strings"
	"time"

	"salonbook-backend/models"
)

// Defaults used when a salon has not configured its working hours.
const (
	DefaultOpen        = "08:00"
	DefaultClose       = "18:00"
	DefaultGranularity = 30 // minutes between candidate start times
)

// BusinessHours is one day's booking window, both ends as "HH:MM" wall clock.
type BusinessHours struct {
	Open   string
	Close  string
	Closed bool
}

// HoursForDate reads the salon's working-hours blob (keyed by lowercase
// weekday name, values {open, close, closed}) and returns the window for the
// given date. Missing or partial configuration falls back to the defaults.
func HoursForDate(wh models.JSONB, date time.Time) BusinessHours {
	hours := BusinessHours{Open: DefaultOpen, Close: DefaultClose}

	day, ok := wh[strings.ToLower(date.Weekday().String())].(map[string]interface{})
	if !ok {
		return hours
	}
	if open, ok := day["open"].(string); ok && open != "" {
		hours.Open = open
	}
	if closeAt, ok := day["close"].(string); ok && closeAt != "" {
		hours.Close = closeAt
	}
	if closed, ok := day["closed"].(bool); ok {
		hours.Closed = closed
	}
	return hours
}

// atClock anchors an "HH:MM" wall-clock value on the given date.
func atClock(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}
	year, month, day := date.Date()
	return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
