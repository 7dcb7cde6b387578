package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"salonbook-backend/models"
)

func TestSalonCreateGeneratesUniqueSlug(t *testing.T) {
	db := newTestDB(t)
	s := NewSalonStore(db)
	ctx := context.Background()

	first := models.Salon{Name: "Søstrene Saks", Owner: "Anna", Email: "first@example.com", Type: "hair"}
	if err := s.Create(ctx, &first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if first.Slug != "soestrene-saks" {
		t.Errorf("slug = %q, want %q", first.Slug, "soestrene-saks")
	}

	second := models.Salon{Name: "Søstrene Saks", Owner: "Bo", Email: "second@example.com", Type: "hair"}
	if err := s.Create(ctx, &second); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if second.Slug != "soestrene-saks-1" {
		t.Errorf("slug = %q, want %q", second.Slug, "soestrene-saks-1")
	}

	got, err := s.GetBySlug(ctx, "soestrene-saks-1")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ID != second.ID {
		t.Errorf("GetBySlug resolved salon %d, want %d", got.ID, second.ID)
	}
}

func TestSalonCreateRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	s := NewSalonStore(db)
	ctx := context.Background()

	first := models.Salon{Name: "Klip & Co", Owner: "Anna", Email: "same@example.com", Type: "hair"}
	if err := s.Create(ctx, &first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	dup := models.Salon{Name: "Another", Owner: "Bo", Email: "same@example.com", Type: "nails"}
	if err := s.Create(ctx, &dup); !errors.Is(err, ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestSalonUpdateRejectsTakenSlug(t *testing.T) {
	db := newTestDB(t)
	s := NewSalonStore(db)
	ctx := context.Background()

	first := models.Salon{Name: "Klip En", Owner: "Anna", Email: "one@example.com", Type: "hair"}
	second := models.Salon{Name: "Klip To", Owner: "Bo", Email: "two@example.com", Type: "hair"}
	if err := s.Create(ctx, &first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Create(ctx, &second); err != nil {
		t.Fatalf("Create: %v", err)
	}

	second.Slug = first.Slug
	if err := s.Update(ctx, &second); !errors.Is(err, ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestSalonDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	s := NewSalonStore(db)
	bookings := NewBookingStore(db)
	ctx := context.Background()

	salon := seedSalon(t, db, "klip", "klip@example.com")
	service := seedService(t, db, salon.ID, "Cut", 30, true)
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mustInsertBooking(t, bookings, salon.ID, service.ID, start, start.Add(30*time.Minute))

	removed, err := s.Delete(ctx, salon.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Error("expected Delete to report a removed row")
	}

	var bookingCount, serviceCount int64
	db.Model(&models.Booking{}).Where("salon_id = ?", salon.ID).Count(&bookingCount)
	db.Model(&models.Service{}).Where("salon_id = ?", salon.ID).Count(&serviceCount)
	if bookingCount != 0 || serviceCount != 0 {
		t.Errorf("cascade left %d bookings and %d services", bookingCount, serviceCount)
	}

	if _, err := s.GetByID(ctx, salon.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID after delete = %v, want ErrNotFound", err)
	}
}
