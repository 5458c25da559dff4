package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BusinessID      uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Reference  string    `gorm:"uniqueIndex;not null"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	StartsAt   time.Time `gorm:"index;not null"`

	Status         string `gorm:"type:varchar(20);default:'scheduled'"` // scheduled, completed, cancelled
	RecurrenceRule string // RFC 5545 subset, empty for one-off appointments
	Notes          string

	TotalPrice    float64 `gorm:"type:decimal(10,2);not null"`
	TotalDuration int     `gorm:"not null"` // minutes

	Rows []AppointmentRow `gorm:"foreignKey:AppointmentID"`

	gorm.Model
}

// AppointmentRow is one line item pairing a pet with a selected service,
// tier, and add-ons. Names and prices are snapshotted at booking time so
// later catalog edits don't rewrite history.
type AppointmentRow struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	AppointmentID uuid.UUID `gorm:"type:uuid;index;not null"`
	PetID         uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceID     uuid.UUID `gorm:"type:uuid;index;not null"`

	ServiceName string `gorm:"not null"`
	PetName     string `gorm:"not null"`

	PriceTierID *uuid.UUID `gorm:"type:uuid"`
	TierLabel   string
	TierSource  string `gorm:"type:varchar(10);default:'none'"` // none, auto, manual, stored

	Price    float64 `gorm:"type:decimal(10,2);not null"`
	Duration int     `gorm:"not null"`

	Addons []AppointmentRowAddon `gorm:"foreignKey:RowID"`
}

func (r *AppointmentRow) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

type AppointmentRowAddon struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	RowID   uuid.UUID `gorm:"type:uuid;index;not null"`
	AddonID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name  string  `gorm:"not null"`
	Price float64 `gorm:"type:decimal(10,2);not null"`
}

func (a *AppointmentRowAddon) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
