package models

import (
	"github.com/google/uuid"
)

type Business struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key"`
	Name                  string    `gorm:"not null"`
	Address               string
	Phone                 string
	WorkingHours          JSONB `gorm:"type:jsonb;default:'{}'"`
	AppointmentReminders  bool  `gorm:"default:true"`
	WhatsAppNotifications bool  `gorm:"default:false"`
	SMSNotifications      bool  `gorm:"default:false"`

	Users             []User             `gorm:"foreignKey:BusinessID"`
	Customers         []Customer         `gorm:"foreignKey:BusinessID"`
	Services          []Service          `gorm:"foreignKey:BusinessID"`
	Appointments      []Appointment      `gorm:"foreignKey:BusinessID"`
	ReminderTemplates []ReminderTemplate `gorm:"foreignKey:BusinessID"`
}
