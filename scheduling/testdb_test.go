package scheduling

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"salonbook-backend/models"
	"salonbook-backend/store"
)

type testEnv struct {
	db       *gorm.DB
	salons   *store.SalonStore
	services *store.ServiceStore
	bookings *store.BookingStore
}

func newTestEnv(t *testing.T) *testEnv {
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
	return &testEnv{
		db:       db,
		salons:   store.NewSalonStore(db),
		services: store.NewServiceStore(db),
		bookings: store.NewBookingStore(db),
	}
}

func (e *testEnv) salon(t *testing.T, name, email string) models.Salon {
	t.Helper()
	salon := models.Salon{Name: name, Slug: name, Owner: "Owner", Email: email, Type: "hair"}
	if err := e.db.Create(&salon).Error; err != nil {
		t.Fatalf("seed salon: %v", err)
	}
	return salon
}

func (e *testEnv) service(t *testing.T, salonID uint, name string, durationMin int, active bool) models.Service {
	t.Helper()
	service := models.Service{SalonID: salonID, Name: name, DurationMin: durationMin, Price: 350, Active: true}
	if err := e.db.Create(&service).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	if !active {
		if err := e.db.Model(&service).Update("active", false).Error; err != nil {
			t.Fatalf("deactivate service: %v", err)
		}
		service.Active = false
	}
	return service
}
