// services/reminder_service.go
package services

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"salonbook-backend/models"
	"salonbook-backend/utils"
)

// ReminderService sends next-day appointment reminders over SMS or WhatsApp.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Booking reminder scheduler started")
}

// SendDailyReminders messages every customer with a scheduled booking
// tomorrow who left a phone number.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily booking reminder processing...")

	dayStart := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))
	dayEnd := dayStart.Add(24 * time.Hour)

	var bookings []models.Booking
	err := s.db.Preload("Service").
		Where("status = ?", models.StatusScheduled).
		Where("starts_at >= ? AND starts_at < ?", dayStart, dayEnd).
		Where("customer_phone <> ''").
		Find(&bookings).Error
	if err != nil {
		log.Printf("Failed to fetch tomorrow's bookings: %v", err)
		return
	}

	for _, booking := range bookings {
		s.sendReminder(booking)
	}

	log.Println("Daily booking reminder processing completed")
}

func (s *ReminderService) sendReminder(booking models.Booking) {
	if !utils.ValidatePhone(booking.CustomerPhone) {
		log.Printf("Booking %d: skipping reminder, invalid phone %q", booking.ID, booking.CustomerPhone)
		return
	}

	serviceName := "your appointment"
	if booking.Service != nil {
		serviceName = booking.Service.Name
	}
	message := "Hi " + booking.CustomerName + ", this is a reminder of " +
		serviceName + " tomorrow at " + booking.StartsAt.Format("15:04") + ". See you there!"

	// WhatsApp for E.164 numbers, plain SMS otherwise
	channel := "sms"
	to := booking.CustomerPhone
	if strings.HasPrefix(booking.CustomerPhone, "+") {
		to = "whatsapp:" + booking.CustomerPhone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", booking.CustomerPhone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", booking.CustomerPhone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", booking.CustomerPhone)
	}

	reminderLog := models.ReminderLog{
		SalonID:   booking.SalonID,
		BookingID: booking.ID,
		Message:   message,
		Status:    status,
		ErrorMsg:  errorMsg,
		Channel:   channel,
		SentAt:    time.Now(),
	}
	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for booking %d: %v", booking.ID, err)
	}
}
