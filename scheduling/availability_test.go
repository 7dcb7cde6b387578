package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"salonbook-backend/models"
)

var testDate = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func slotAt(slots []Slot, h, m int) (Slot, bool) {
	want := time.Date(2025, 3, 10, h, m, 0, 0, time.UTC)
	for _, s := range slots {
		if s.Start.Equal(want) {
			return s, true
		}
	}
	return Slot{}, false
}

func TestComputeAvailabilityAroundExistingBooking(t *testing.T) {
	env := newTestEnv(t)
	salon := env.salon(t, "klip", "klip@example.com")
	service := env.service(t, salon.ID, "Perm", 90, true)
	engine := NewEngine(env.services, env.bookings, nil)
	ctx := context.Background()

	// One existing booking [12:00,13:00)
	existing := models.Booking{
		SalonID:      salon.ID,
		ServiceID:    service.ID,
		CustomerName: "Mette",
		StartsAt:     at(12, 0),
		EndsAt:       at(13, 0),
	}
	if err := env.bookings.Insert(ctx, &existing); err != nil {
		t.Fatalf("insert: %v", err)
	}

	hours := BusinessHours{Open: "08:00", Close: "18:00"}
	slots, err := engine.ComputeAvailability(ctx, salon.ID, testDate, service.ID, hours, 30)
	if err != nil {
		t.Fatalf("ComputeAvailability: %v", err)
	}

	// 90 minute service, 30 minute steps: candidates run 08:00..16:30
	if len(slots) == 0 {
		t.Fatal("no slots returned")
	}
	first, last := slots[0], slots[len(slots)-1]
	if !first.Start.Equal(at(8, 0)) {
		t.Errorf("first slot starts %v, want 08:00", first.Start)
	}
	if !last.Start.Equal(at(16, 30)) {
		t.Errorf("last slot starts %v, want 16:30 (must finish before close)", last.Start)
	}

	// 11:00-12:30 overlaps 12:00-13:00 -> unavailable
	if slot, ok := slotAt(slots, 11, 0); !ok || slot.Available {
		t.Errorf("11:00 slot available = %v, want unavailable", slot.Available)
	}
	// 13:00-14:30 abuts the booking -> available
	if slot, ok := slotAt(slots, 13, 0); !ok || !slot.Available {
		t.Errorf("13:00 slot available = %v, want available", slot.Available)
	}
	// 10:30-12:00 abuts from the front -> available
	if slot, ok := slotAt(slots, 10, 30); !ok || !slot.Available {
		t.Errorf("10:30 slot available = %v, want available", slot.Available)
	}

	// ordered ascending
	for i := 1; i < len(slots); i++ {
		if !slots[i-1].Start.Before(slots[i].Start) {
			t.Fatalf("slots not ascending at index %d", i)
		}
	}
}

func TestComputeAvailabilityIdempotent(t *testing.T) {
	env := newTestEnv(t)
	salon := env.salon(t, "klip", "klip@example.com")
	service := env.service(t, salon.ID, "Cut", 30, true)
	engine := NewEngine(env.services, env.bookings, nil)
	ctx := context.Background()

	hours := BusinessHours{Open: "08:00", Close: "18:00"}
	first, err := engine.ComputeAvailability(ctx, salon.ID, testDate, service.ID, hours, 30)
	if err != nil {
		t.Fatalf("ComputeAvailability: %v", err)
	}
	second, err := engine.ComputeAvailability(ctx, salon.ID, testDate, service.ID, hours, 30)
	if err != nil {
		t.Fatalf("ComputeAvailability: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Start.Equal(second[i].Start) || first[i].Available != second[i].Available {
			t.Fatalf("slot %d differs between calls", i)
		}
	}
}

func TestComputeAvailabilityCrossMidnightSpillover(t *testing.T) {
	env := newTestEnv(t)
	salon := env.salon(t, "klip", "klip@example.com")
	service := env.service(t, salon.ID, "Cut", 30, true)
	engine := NewEngine(env.services, env.bookings, nil)
	ctx := context.Background()

	// A booking that started the previous evening and runs into this day
	spill := models.Booking{
		SalonID:      salon.ID,
		ServiceID:    service.ID,
		CustomerName: "Night owl",
		StartsAt:     time.Date(2025, 3, 9, 23, 0, 0, 0, time.UTC),
		EndsAt:       time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC),
	}
	if err := env.bookings.Insert(ctx, &spill); err != nil {
		t.Fatalf("insert: %v", err)
	}

	hours := BusinessHours{Open: "08:00", Close: "18:00"}
	slots, err := engine.ComputeAvailability(ctx, salon.ID, testDate, service.ID, hours, 30)
	if err != nil {
		t.Fatalf("ComputeAvailability: %v", err)
	}

	if slot, ok := slotAt(slots, 8, 0); !ok || slot.Available {
		t.Error("08:00 slot should be blocked by the booking spilling over midnight")
	}
	if slot, ok := slotAt(slots, 8, 30); !ok || !slot.Available {
		t.Error("08:30 slot should be free")
	}
}

func TestComputeAvailabilityClosedDayAndInvalidService(t *testing.T) {
	env := newTestEnv(t)
	salon := env.salon(t, "klip", "klip@example.com")
	service := env.service(t, salon.ID, "Cut", 30, true)
	inactive := env.service(t, salon.ID, "Perm", 90, false)
	engine := NewEngine(env.services, env.bookings, nil)
	ctx := context.Background()

	slots, err := engine.ComputeAvailability(ctx, salon.ID, testDate, service.ID, BusinessHours{Open: "08:00", Close: "18:00", Closed: true}, 30)
	if err != nil {
		t.Fatalf("ComputeAvailability: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("closed day returned %d slots", len(slots))
	}

	if _, err := engine.ComputeAvailability(ctx, salon.ID, testDate, inactive.ID, BusinessHours{Open: "08:00", Close: "18:00"}, 30); !errors.Is(err, ErrInvalidService) {
		t.Errorf("inactive service err = %v, want ErrInvalidService", err)
	}
	if _, err := engine.ComputeAvailability(ctx, salon.ID, testDate, 9999, BusinessHours{Open: "08:00", Close: "18:00"}, 30); !errors.Is(err, ErrInvalidService) {
		t.Errorf("unknown service err = %v, want ErrInvalidService", err)
	}
}

func TestComputeAvailabilityServiceLongerThanDay(t *testing.T) {
	env := newTestEnv(t)
	salon := env.salon(t, "klip", "klip@example.com")
	service := env.service(t, salon.ID, "Full day retreat", 700, true)
	engine := NewEngine(env.services, env.bookings, nil)

	slots, err := engine.ComputeAvailability(context.Background(), salon.ID, testDate, service.ID, BusinessHours{Open: "08:00", Close: "18:00"}, 30)
	if err != nil {
		t.Fatalf("ComputeAvailability: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("got %d slots for a service that cannot fit, want 0", len(slots))
	}
}
