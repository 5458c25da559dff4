// services/reminder_service.go
package services

import (
	"log"
	"os"
	"strings"
	"time"

	"pawpro-backend/models"
	"pawpro-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

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

	// Run every day at 8 AM
	c.AddFunc("0 8 * * *", func() {
		s.SendDailyReminders()
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders sends next-day appointment reminders for every
// business that has them enabled
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	var businesses []models.Business
	if err := s.db.Find(&businesses, "appointment_reminders = ?", true).Error; err != nil {
		log.Printf("Failed to fetch businesses: %v", err)
		return
	}

	for _, business := range businesses {
		s.ProcessBusinessReminders(business.ID)
	}

	log.Println("Daily reminder processing completed")
}

func (s *ReminderService) ProcessBusinessReminders(businessID uuid.UUID) {
	appointments, err := s.upcomingAppointments(businessID)
	if err != nil {
		log.Printf("Business %s: Failed to get upcoming appointments: %v", businessID, err)
		return
	}

	if len(appointments) == 0 {
		return
	}

	// Get active upcoming-appointment template
	var template models.ReminderTemplate
	if err := s.db.Where("business_id = ? AND type = ? AND is_active = true", businessID, "upcoming").
		First(&template).Error; err != nil {
		log.Printf("Business %s: No active upcoming template: %v", businessID, err)
		return
	}

	for _, appt := range appointments {
		// Skip appointments already reminded
		var count int64
		s.db.Model(&models.ReminderLog{}).
			Where("appointment_id = ? AND type = ? AND status = ?", appt.ID, "upcoming", "sent").
			Count(&count)
		if count > 0 {
			continue
		}

		var customer models.Customer
		if err := s.db.First(&customer, "id = ?", appt.CustomerID).Error; err != nil {
			log.Printf("Failed to load customer %s: %v", appt.CustomerID, err)
			continue
		}

		message := RenderTemplate(template.Message, &appt, &customer)
		s.Send(businessID, &appt, &customer, template.ID, "upcoming", message)
	}
}

// upcomingAppointments returns tomorrow's scheduled appointments
func (s *ReminderService) upcomingAppointments(businessID uuid.UUID) ([]models.Appointment, error) {
	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))
	dayAfter := tomorrow.AddDate(0, 0, 1)

	var appointments []models.Appointment
	err := s.db.Preload("Rows").Preload("Rows.Addons").
		Where("business_id = ? AND status = ? AND starts_at >= ? AND starts_at < ?",
			businessID, "scheduled", tomorrow, dayAfter).
		Find(&appointments).Error
	return appointments, err
}

// Send delivers a message via Twilio (WhatsApp for E.164 phones, SMS
// otherwise) and records the attempt in the reminder log
func (s *ReminderService) Send(businessID uuid.UUID, appt *models.Appointment, customer *models.Customer, templateID uuid.UUID, msgType, message string) {
	channel := "sms"
	var to string

	// Use WhatsApp if phone is in E.164 format and starts with '+'
	if strings.HasPrefix(customer.Phone, "+") {
		to = "whatsapp:" + customer.Phone
		channel = "whatsapp"
	} else {
		to = customer.Phone
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
		log.Printf("Failed to send message to %s: %v", customer.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Message sent to %s, SID: %s", customer.Phone, *resp.Sid)
	} else {
		log.Printf("Message sent to %s, but no SID returned", customer.Phone)
	}

	reminderLog := models.ReminderLog{
		BusinessID:    businessID,
		CustomerID:    customer.ID,
		AppointmentID: appt.ID,
		TemplateID:    templateID,
		Type:          msgType,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       channel,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for customer %s: %v", customer.ID, err)
	}
}
