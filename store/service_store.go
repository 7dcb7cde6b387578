package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"salonbook-backend/models"
)

type ServiceStore struct {
	db *gorm.DB
}

func NewServiceStore(db *gorm.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

// GetActiveService looks up a bookable service. A service that does not
// exist, belongs to another salon, or has been deactivated all come back as
// ErrNotFound so public callers learn nothing about other salons' catalogs.
func (s *ServiceStore) GetActiveService(ctx context.Context, salonID, serviceID uint) (*models.Service, error) {
	var service models.Service
	err := s.db.WithContext(ctx).
		Where("id = ? AND salon_id = ? AND active = ?", serviceID, salonID, true).
		First(&service).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// GetService is the staff-side lookup: salon-scoped but inactive services are
// still visible (their historical bookings remain valid).
func (s *ServiceStore) GetService(ctx context.Context, salonID, serviceID uint) (*models.Service, error) {
	var service models.Service
	err := s.db.WithContext(ctx).
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&service).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// GetByID is the admin lookup, unscoped by salon.
func (s *ServiceStore) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	err := s.db.WithContext(ctx).First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (s *ServiceStore) List(ctx context.Context, salonID uint) ([]models.Service, error) {
	var services []models.Service
	err := s.db.WithContext(ctx).Where("salon_id = ?", salonID).Find(&services).Error
	return services, err
}

func (s *ServiceStore) ListActive(ctx context.Context, salonID uint) ([]models.Service, error) {
	var services []models.Service
	err := s.db.WithContext(ctx).
		Where("salon_id = ? AND active = ?", salonID, true).
		Find(&services).Error
	return services, err
}

func (s *ServiceStore) Create(ctx context.Context, service *models.Service) error {
	return s.db.WithContext(ctx).Create(service).Error
}

func (s *ServiceStore) Update(ctx context.Context, service *models.Service) error {
	return s.db.WithContext(ctx).Save(service).Error
}

// Delete removes a service and all of its bookings. Destructive but
// intentional: the alternative is bookings pointing at a missing service.
func (s *ServiceStore) Delete(ctx context.Context, id uint) (bool, error) {
	var removed bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Booking{}, "service_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Service{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected > 0
		return nil
	})
	return removed, err
}
