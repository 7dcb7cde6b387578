package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking statuses
const (
	StatusScheduled = "SCHEDULED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
	StatusNoShow    = "NO_SHOW"
)

// BookingStatuses lists every valid status value.
var BookingStatuses = []string{StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow}

type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SalonID   uint      `gorm:"index;not null" json:"salonId"`
	ServiceID uint      `gorm:"index;not null" json:"serviceId"`
	Reference uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"reference"`

	CustomerName  string `gorm:"not null" json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	StartsAt time.Time `gorm:"index;not null" json:"startsAt"`
	EndsAt   time.Time `gorm:"index;not null" json:"endsAt"` // strictly after StartsAt
	Status   string    `gorm:"type:varchar(20);default:'SCHEDULED'" json:"status"`
	Notes    string    `gorm:"type:text" json:"notes"`

	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Reference doubles as the customer-facing confirmation code.
func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.Reference == uuid.Nil {
		b.Reference = uuid.New()
	}
	if b.Status == "" {
		b.Status = StatusScheduled
	}
	return
}

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s string) bool {
	for _, v := range BookingStatuses {
		if v == s {
			return true
		}
	}
	return false
}
