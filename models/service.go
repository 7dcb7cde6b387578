package models

type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	SalonID     uint    `gorm:"index;not null" json:"salonId"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	DurationMin int     `gorm:"not null" json:"durationMin"` // in minutes, > 0
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Active      bool    `gorm:"default:true" json:"active"`

	Bookings []Booking `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"bookings,omitempty"`
}
