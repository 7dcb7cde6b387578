package models

type Salon struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Slug    string `gorm:"uniqueIndex;not null" json:"slug"`
	Owner   string `gorm:"not null" json:"owner"`
	Address string `json:"address"`
	Email   string `gorm:"uniqueIndex;not null" json:"email"`
	Type    string `json:"type"`
	Paid    bool   `gorm:"default:false" json:"paid"`

	PublicConfig JSONB `gorm:"type:jsonb;default:'{}'" json:"publicConfig"`
	WorkingHours JSONB `gorm:"type:jsonb;default:'{}'" json:"workingHours"`

	Services []Service `gorm:"foreignKey:SalonID;constraint:OnDelete:CASCADE" json:"services,omitempty"`
	Bookings []Booking `gorm:"foreignKey:SalonID;constraint:OnDelete:CASCADE" json:"bookings,omitempty"`
}
