package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PriceTier is a weight-range-scoped price override for a service.
// Nil MinWeight/MaxWeight bounds are open-ended.
type PriceTier struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceID  uuid.UUID `gorm:"type:uuid;index;not null"`

	Label        string
	MinWeight    *float64 `gorm:"type:decimal(6,2)"`
	MaxWeight    *float64 `gorm:"type:decimal(6,2)"`
	Price        float64  `gorm:"type:decimal(10,2);not null"`
	DisplayOrder int      `gorm:"default:0"`
}

func (t *PriceTier) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
