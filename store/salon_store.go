package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"salonbook-backend/models"
	"salonbook-backend/utils"
)

type SalonStore struct {
	db *gorm.DB
}

func NewSalonStore(db *gorm.DB) *SalonStore {
	return &SalonStore{db: db}
}

func (s *SalonStore) List(ctx context.Context) ([]models.Salon, error) {
	var salons []models.Salon
	err := s.db.WithContext(ctx).Find(&salons).Error
	return salons, err
}

func (s *SalonStore) GetByID(ctx context.Context, id uint) (*models.Salon, error) {
	var salon models.Salon
	err := s.db.WithContext(ctx).First(&salon, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &salon, nil
}

// GetBySlug resolves a salon from its subdomain slug.
func (s *SalonStore) GetBySlug(ctx context.Context, slug string) (*models.Salon, error) {
	var salon models.Salon
	err := s.db.WithContext(ctx).First(&salon, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &salon, nil
}

// Create persists a new salon. The slug is derived from the name; on
// collision a numeric suffix is appended until it is unique.
func (s *SalonStore) Create(ctx context.Context, salon *models.Salon) error {
	var existing models.Salon
	err := s.db.WithContext(ctx).First(&existing, "email = ?", salon.Email).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	base := utils.GenerateSlug(salon.Name)
	slug := base
	for counter := 1; ; counter++ {
		err := s.db.WithContext(ctx).First(&models.Salon{}, "slug = ?", slug).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			break
		}
		if err != nil {
			return err
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
	salon.Slug = slug

	return s.db.WithContext(ctx).Create(salon).Error
}

// Update saves the salon after checking that a changed email or slug does not
// collide with another salon's.
func (s *SalonStore) Update(ctx context.Context, salon *models.Salon) error {
	var conflict models.Salon
	err := s.db.WithContext(ctx).
		Where("(email = ? OR slug = ?) AND id <> ?", salon.Email, salon.Slug, salon.ID).
		First(&conflict).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.WithContext(ctx).Save(salon).Error
}

// Delete removes a salon together with its bookings and services.
func (s *SalonStore) Delete(ctx context.Context, id uint) (bool, error) {
	var removed bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Booking{}, "salon_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Service{}, "salon_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Salon{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected > 0
		return nil
	})
	return removed, err
}
