package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"salonbook-backend/models"
)

// BookingStore is the only component that reads or writes booking rows.
// Overlap policy lives above it, in the scheduling package.
type BookingStore struct {
	db *gorm.DB
}

func NewBookingStore(db *gorm.DB) *BookingStore {
	return &BookingStore{db: db}
}

// Transaction runs fn with a BookingStore bound to a database transaction.
// Returning an error from fn rolls everything back.
func (s *BookingStore) Transaction(ctx context.Context, fn func(tx *BookingStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingStore{db: tx})
	})
}

// ListBySalon returns every booking for the salon, any status, joined with
// its service. Callers sort and filter themselves.
func (s *BookingStore) ListBySalon(ctx context.Context, salonID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Preload("Service").
		Where("salon_id = ?", salonID).
		Find(&bookings).Error
	return bookings, err
}

// ListOverlapping returns the salon's bookings whose [starts_at, ends_at)
// interval intersects [start, end). excludeID skips a booking's own row when
// rescheduling (0 skips nothing); a non-empty statuses list restricts the
// result to those statuses.
func (s *BookingStore) ListOverlapping(ctx context.Context, salonID uint, start, end time.Time, excludeID uint, statuses []string) ([]models.Booking, error) {
	q := s.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Where("starts_at < ? AND ends_at > ?", end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	var bookings []models.Booking
	err := q.Find(&bookings).Error
	return bookings, err
}

func (s *BookingStore) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).Preload("Service").First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Insert persists the booking and fills in its generated id and reference.
func (s *BookingStore) Insert(ctx context.Context, booking *models.Booking) error {
	return s.db.WithContext(ctx).Create(booking).Error
}

func (s *BookingStore) Update(ctx context.Context, booking *models.Booking) error {
	return s.db.WithContext(ctx).Save(booking).Error
}

// Delete removes a booking row. Returns false when no row matched.
func (s *BookingStore) Delete(ctx context.Context, id uint) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&models.Booking{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
