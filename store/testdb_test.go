package store

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"salonbook-backend/models"
)

// newTestDB opens an in-memory SQLite database migrated with the booking
// schema. Connections are capped at one so every query sees the same
// in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Salon{}, &models.Service{}, &models.Booking{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedSalon(t *testing.T, db *gorm.DB, name, email string) models.Salon {
	t.Helper()
	salon := models.Salon{Name: name, Slug: name, Owner: "Owner", Email: email, Type: "hair"}
	if err := db.Create(&salon).Error; err != nil {
		t.Fatalf("seed salon: %v", err)
	}
	return salon
}

func seedService(t *testing.T, db *gorm.DB, salonID uint, name string, durationMin int, active bool) models.Service {
	t.Helper()
	service := models.Service{SalonID: salonID, Name: name, DurationMin: durationMin, Price: 350, Active: true}
	if err := db.Create(&service).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	// The column default would override a zero-value Active on insert.
	if !active {
		if err := db.Model(&service).Update("active", false).Error; err != nil {
			t.Fatalf("deactivate service: %v", err)
		}
		service.Active = false
	}
	return service
}
