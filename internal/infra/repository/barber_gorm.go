package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
	"github.com/BruksfildServices01/barber-dashboard/internal/validators"
)

type BarberGormRepository struct {
	db *gorm.DB
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{db: db}
}

func (r *BarberGormRepository) List(
	ctx context.Context,
	ownerID string,
	onlyAvailable bool,
) ([]models.Barber, error) {

	q := r.db.WithContext(ctx).Where("barbershop_id = ?", ownerID)
	if onlyAvailable {
		q = q.Where("available = ?", true)
	}

	barbers := []models.Barber{}
	if err := q.Order("full_name ASC").Find(&barbers).Error; err != nil {
		return nil, classifyShop("ListBarbers", err, shop.ErrBarberNotFound)
	}
	return barbers, nil
}

func (r *BarberGormRepository) Create(
	ctx context.Context,
	b *models.Barber,
) error {

	if err := validators.Record(b); err != nil {
		return fmt.Errorf("%w: %v", shop.ErrInvalidRecord, err)
	}

	err := r.db.WithContext(ctx).Create(b).Error
	return classifyShop("CreateBarber", err, shop.ErrBarberNotFound)
}

func (r *BarberGormRepository) SetAvailability(
	ctx context.Context,
	ownerID string,
	barberID string,
	available bool,
) (*models.Barber, error) {

	var b models.Barber
	res := r.db.WithContext(ctx).
		Model(&b).
		Clauses(clause.Returning{}).
		Where("id = ? AND barbershop_id = ?", barberID, ownerID).
		Update("available", available)

	if res.Error != nil {
		return nil, classifyShop("SetAvailability", res.Error, shop.ErrBarberNotFound)
	}
	if res.RowsAffected == 0 {
		return nil, shop.ErrBarberNotFound
	}
	return &b, nil
}

func (r *BarberGormRepository) Delete(
	ctx context.Context,
	ownerID string,
	barberID string,
) error {

	err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", barberID, ownerID).
		Delete(&models.Barber{}).Error

	return classifyShop("DeleteBarber", err, shop.ErrBarberNotFound)
}

var _ shop.BarberRepository = (*BarberGormRepository)(nil)
