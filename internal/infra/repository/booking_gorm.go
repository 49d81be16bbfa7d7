package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/booking"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
	"github.com/BruksfildServices01/barber-dashboard/internal/timezone"
	"github.com/BruksfildServices01/barber-dashboard/internal/validators"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *BookingGormRepository) FetchAll(
	ctx context.Context,
	ownerID string,
) ([]models.Booking, error) {

	bookings := []models.Booking{}
	if ownerID == "" {
		return bookings, nil
	}

	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", ownerID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, classify("FetchAll", err)
	}

	return bookings, nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *BookingGormRepository) SetStatus(
	ctx context.Context,
	ownerID string,
	bookingID string,
	status domain.Status,
) (*models.Booking, error) {

	if err := validators.Var(string(status), "oneof=pending confirmed canceled"); err != nil {
		return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidRecord, status)
	}

	var b models.Booking
	res := r.db.WithContext(ctx).
		Model(&b).
		Clauses(clause.Returning{}).
		Where("id = ? AND barbershop_id = ?", bookingID, ownerID).
		Update("status", string(status))

	if res.Error != nil {
		return nil, classify("SetStatus", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	return &b, nil
}

func (r *BookingGormRepository) Remove(
	ctx context.Context,
	ownerID string,
	bookingID string,
) error {

	// zero rows affected means it was already gone
	err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", bookingID, ownerID).
		Delete(&models.Booking{}).Error

	return classify("Remove", err)
}

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {

	b.Status = string(domain.InitialStatus())
	if !b.Date.IsZero() {
		b.Date = timezone.CivilDate(b.Date)
	}

	if err := validators.Record(b); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
	}

	return classify("Create", r.db.WithContext(ctx).Create(b).Error)
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
