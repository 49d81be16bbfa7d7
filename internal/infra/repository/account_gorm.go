package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// --------------------------------------------------
// Owner accounts
// --------------------------------------------------

func (r *AccountGormRepository) CreateOwner(
	ctx context.Context,
	barbershop *models.Barbershop,
	user *models.User,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(barbershop).Error; err != nil {
			return err
		}

		user.BarbershopID = barbershop.ID
		return tx.Omit("Barbershop").Create(user).Error
	})

	if name, ok := uniqueViolation(err); ok {
		if strings.Contains(name, "slug") {
			return shop.ErrSlugTaken
		}
		if strings.Contains(name, "email") {
			return shop.ErrEmailTaken
		}
	}

	return classifyShop("CreateOwner", err, shop.ErrBarbershopNotFound)
}

func (r *AccountGormRepository) FindUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Barbershop").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, classifyShop("FindUserByEmail", err, shop.ErrUserNotFound)
	}
	return &user, nil
}

func (r *AccountGormRepository) GetUser(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Barbershop").
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, classifyShop("GetUser", err, shop.ErrUserNotFound)
	}
	return &user, nil
}

// --------------------------------------------------
// Barbershops
// --------------------------------------------------

func (r *AccountGormRepository) GetBarbershopByID(
	ctx context.Context,
	id string,
) (*models.Barbershop, error) {

	var b models.Barbershop
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		return nil, classifyShop("GetBarbershopByID", err, shop.ErrBarbershopNotFound)
	}
	return &b, nil
}

func (r *AccountGormRepository) GetBarbershopBySlug(
	ctx context.Context,
	slug string,
) (*models.Barbershop, error) {

	var b models.Barbershop
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&b).Error; err != nil {
		return nil, classifyShop("GetBarbershopBySlug", err, shop.ErrBarbershopNotFound)
	}
	return &b, nil
}

func (r *AccountGormRepository) UpdateBarbershop(
	ctx context.Context,
	b *models.Barbershop,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Barbershop{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"name":     b.Name,
			"phone":    b.Phone,
			"address":  b.Address,
			"timezone": b.Timezone,
		})

	if res.Error != nil {
		return classifyShop("UpdateBarbershop", res.Error, shop.ErrBarbershopNotFound)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", shop.ErrBarbershopNotFound, b.ID)
	}
	return nil
}

var _ shop.AccountRepository = (*AccountGormRepository)(nil)
