package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderTemplate struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`
	Type       string    `gorm:"type:varchar(20);not null"` // upcoming, confirmation
	Message    string    `gorm:"type:text;not null"`
	IsActive   bool      `gorm:"default:true"`
	gorm.Model
}
