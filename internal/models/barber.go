package models

import (
	"time"

	"gorm.io/gorm"
)

// Barber is a staff profile kept under the owning barbershop.
type Barber struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	BarbershopID string `gorm:"size:36;index;not null" json:"barbershopId" validate:"required"`

	FullName      string `gorm:"size:100;not null" json:"fullName" validate:"required,max=100"`
	ContactNumber string `gorm:"size:20" json:"contactNumber" validate:"max=20"`
	Address       string `gorm:"size:255" json:"address" validate:"max=255"`
	Email         string `gorm:"size:100" json:"email" validate:"omitempty,email,max=100"`
	Available     bool   `gorm:"not null" json:"available"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Barber) BeforeCreate(tx *gorm.DB) error {
	b.ID = newID(b.ID)
	return nil
}
