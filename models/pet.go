package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Pet struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	BusinessID uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name      string `gorm:"not null"`
	Species   string `gorm:"type:varchar(30);default:'dog'"` // dog, cat, ...
	Breed     string
	Weight    *float64 `gorm:"type:decimal(6,2)"` // kg, nullable until weighed
	Birthdate *time.Time
	Notes     string
	IsActive  bool `gorm:"default:true"`

	gorm.Model
}

func (p *Pet) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
