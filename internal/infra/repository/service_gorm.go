package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
	"github.com/BruksfildServices01/barber-dashboard/internal/validators"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) List(
	ctx context.Context,
	ownerID string,
	f shop.ServiceFilter,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Where("barbershop_id = ?", ownerID)

	if f.Kind != "" {
		q = q.Where("kind = ?", f.Kind)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+f.Query+"%")
	}

	services := []models.Service{}
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		return nil, classifyShop("ListServices", err, shop.ErrServiceNotFound)
	}
	return services, nil
}

func (r *ServiceGormRepository) Get(
	ctx context.Context,
	ownerID string,
	serviceID string,
) (*models.Service, error) {

	var s models.Service
	err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", serviceID, ownerID).
		First(&s).Error
	if err != nil {
		return nil, classifyShop("GetService", err, shop.ErrServiceNotFound)
	}
	return &s, nil
}

func (r *ServiceGormRepository) Create(
	ctx context.Context,
	s *models.Service,
) error {

	if err := validators.Record(s); err != nil {
		return fmt.Errorf("%w: %v", shop.ErrInvalidRecord, err)
	}
	return classifyShop("CreateService", r.db.WithContext(ctx).Create(s).Error, shop.ErrServiceNotFound)
}

func (r *ServiceGormRepository) Update(
	ctx context.Context,
	s *models.Service,
) error {

	if err := validators.Record(s); err != nil {
		return fmt.Errorf("%w: %v", shop.ErrInvalidRecord, err)
	}

	res := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ? AND barbershop_id = ?", s.ID, s.BarbershopID).
		Updates(map[string]any{
			"name":      s.Name,
			"kind":      s.Kind,
			"price":     s.Price,
			"status":    s.Status,
			"image_url": s.ImageURL,
			"image_key": s.ImageKey,
		})

	if res.Error != nil {
		return classifyShop("UpdateService", res.Error, shop.ErrServiceNotFound)
	}
	if res.RowsAffected == 0 {
		return shop.ErrServiceNotFound
	}
	return nil
}

func (r *ServiceGormRepository) Delete(
	ctx context.Context,
	ownerID string,
	serviceID string,
) error {

	err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", serviceID, ownerID).
		Delete(&models.Service{}).Error

	return classifyShop("DeleteService", err, shop.ErrServiceNotFound)
}

var _ shop.ServiceRepository = (*ServiceGormRepository)(nil)
