package config

import (
	"os"
	"strings"
)

// BlockingStatuses returns the booking statuses that occupy a time slot.
//
// The default is every status: a cancelled or no-show booking still blocks
// its slot, matching the behavior the product has shipped with so far. Set
// BOOKING_BLOCKING_STATUSES (comma separated, e.g. "SCHEDULED,COMPLETED") to
// free slots held by cancelled bookings.
func BlockingStatuses() []string {
	env := os.Getenv("BOOKING_BLOCKING_STATUSES")
	if env == "" {
		return nil // nil means all statuses block
	}
	var statuses []string
	for _, s := range strings.Split(env, ",") {
		if s = strings.TrimSpace(s); s != "" {
			statuses = append(statuses, strings.ToUpper(s))
		}
	}
	return statuses
}
