package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking mirrors the "bookings" collection document. It is created by the
// public intake with status pending and afterwards only its status changes.
type Booking struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	BarbershopID string `gorm:"size:36;index;not null" json:"barbershopId" validate:"required"`

	ClientName     string `gorm:"size:100;not null" json:"clientName" validate:"required,max=100"`
	ServiceOrdered string `gorm:"size:100" json:"serviceOrdered" validate:"max=100"`
	StyleOrdered   string `gorm:"size:100" json:"styleOrdered" validate:"max=100"`
	BarberName     string `gorm:"size:100" json:"barberName" validate:"max=100"`

	// calendar date only, held at midnight UTC
	Date time.Time `gorm:"type:date;not null" json:"date" validate:"required"`
	Time string    `gorm:"size:10" json:"time" validate:"omitempty,max=10"`

	Status string `gorm:"size:20;default:'pending'" json:"status" validate:"required,oneof=pending confirmed canceled"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	b.ID = newID(b.ID)
	return nil
}
