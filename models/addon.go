package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Addon struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceID  uuid.UUID `gorm:"type:uuid;index;not null"`

	Name         string `gorm:"not null"`
	Description  string
	Price        float64 `gorm:"type:decimal(10,2);not null"`
	DisplayOrder int     `gorm:"default:0"`
	IsActive     bool    `gorm:"default:true"`
}

func (a *Addon) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
