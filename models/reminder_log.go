package models

import (
	"time"

	"gorm.io/gorm"
)

// ReminderLog records each booking reminder send attempt.
type ReminderLog struct {
	ID        uint   `gorm:"primaryKey"`
	SalonID   uint   `gorm:"index;not null"`
	BookingID uint   `gorm:"index;not null"`
	Message   string `gorm:"type:text"`
	Status    string `gorm:"type:varchar(20)"` // sent, failed
	ErrorMsg  string `gorm:"type:text"`
	Channel   string `gorm:"type:varchar(20)"` // whatsapp, sms
	SentAt    time.Time

	gorm.Model
}
