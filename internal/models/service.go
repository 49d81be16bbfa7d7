package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ServiceKindService = "service"
	ServiceKindStyle   = "style"

	ServiceAvailable   = "Available"
	ServiceUnavailable = "Unavailable"
)

// Service is a catalogue entry: either a service (cut, shave) or a style.
type Service struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	BarbershopID string `gorm:"size:36;index;not null" json:"barbershopId" validate:"required"`

	Name   string  `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Kind   string  `gorm:"size:20;default:'service'" json:"kind" validate:"oneof=service style"`
	Price  float64 `json:"price" validate:"gte=0"`
	Status string  `gorm:"size:20;default:'Available'" json:"status" validate:"oneof=Available Unavailable"`

	ImageURL string `gorm:"size:512" json:"imageUrl"`
	ImageKey string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	s.ID = newID(s.ID)
	return nil
}
