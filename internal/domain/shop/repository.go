package shop

import (
	"context"

	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

type AccountRepository interface {
	// CreateOwner stores a new barbershop together with its owner account.
	CreateOwner(ctx context.Context, shop *models.Barbershop, user *models.User) error

	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)

	GetBarbershopByID(ctx context.Context, id string) (*models.Barbershop, error)
	GetBarbershopBySlug(ctx context.Context, slug string) (*models.Barbershop, error)
	UpdateBarbershop(ctx context.Context, shop *models.Barbershop) error
}

type BarberRepository interface {
	List(ctx context.Context, ownerID string, onlyAvailable bool) ([]models.Barber, error)
	Create(ctx context.Context, b *models.Barber) error
	SetAvailability(ctx context.Context, ownerID, barberID string, available bool) (*models.Barber, error)

	// Delete is idempotent.
	Delete(ctx context.Context, ownerID, barberID string) error
}

type ServiceRepository interface {
	List(ctx context.Context, ownerID string, f ServiceFilter) ([]models.Service, error)
	Get(ctx context.Context, ownerID, serviceID string) (*models.Service, error)
	Create(ctx context.Context, s *models.Service) error
	Update(ctx context.Context, s *models.Service) error

	// Delete is idempotent.
	Delete(ctx context.Context, ownerID, serviceID string) error
}
