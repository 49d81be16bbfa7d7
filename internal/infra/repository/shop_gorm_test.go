package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

func newOwner(t *testing.T, repo *AccountGormRepository) (*models.Barbershop, *models.User) {
	t.Helper()
	suffix := uuid.NewString()[:8]

	b := &models.Barbershop{Name: "Shop " + suffix, Slug: "shop-" + suffix, Timezone: "UTC"}
	u := &models.User{Name: "Owner", Email: suffix + "@example.com", PasswordHash: "x", Role: "owner"}
	require.NoError(t, repo.CreateOwner(context.Background(), b, u))
	return b, u
}

func TestAccountGormRepository(t *testing.T) {
	db := setupDB(t)
	repo := NewAccountGormRepository(db)
	ctx := context.Background()

	b, u := newOwner(t, repo)
	assert.Equal(t, b.ID, u.BarbershopID)

	got, err := repo.FindUserByEmail(ctx, u.Email)
	require.NoError(t, err)
	assert.Equal(t, b.Slug, got.Barbershop.Slug)

	_, err = repo.GetUser(ctx, uuid.NewString())
	assert.ErrorIs(t, err, shop.ErrUserNotFound)

	err = repo.CreateOwner(ctx,
		&models.Barbershop{Name: "dup", Slug: b.Slug},
		&models.User{Name: "x", Email: uuid.NewString() + "@example.com", PasswordHash: "x"},
	)
	assert.ErrorIs(t, err, shop.ErrSlugTaken)

	b.Timezone = "America/Sao_Paulo"
	require.NoError(t, repo.UpdateBarbershop(ctx, b))

	bySlug, err := repo.GetBarbershopBySlug(ctx, b.Slug)
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", bySlug.Timezone)

	_, err = repo.GetBarbershopByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, shop.ErrBarbershopNotFound)
}

func TestBarberGormRepository(t *testing.T) {
	db := setupDB(t)
	repo := NewBarberGormRepository(db)
	ctx := context.Background()
	owner := uuid.NewString()

	require.NoError(t, repo.Create(ctx, &models.Barber{BarbershopID: owner, FullName: "Ana", Available: true}))
	off := &models.Barber{BarbershopID: owner, FullName: "Bruno"}
	require.NoError(t, repo.Create(ctx, off))

	all, err := repo.List(ctx, owner, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	avail, err := repo.List(ctx, owner, true)
	require.NoError(t, err)
	require.Len(t, avail, 1)
	assert.Equal(t, "Ana", avail[0].FullName)

	updated, err := repo.SetAvailability(ctx, owner, off.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Available)

	_, err = repo.SetAvailability(ctx, uuid.NewString(), off.ID, false)
	assert.ErrorIs(t, err, shop.ErrBarberNotFound)

	assert.ErrorIs(t, repo.Create(ctx, &models.Barber{BarbershopID: owner}), shop.ErrInvalidRecord)

	require.NoError(t, repo.Delete(ctx, owner, off.ID))
	require.NoError(t, repo.Delete(ctx, owner, off.ID))
}

func TestServiceGormRepository(t *testing.T) {
	db := setupDB(t)
	repo := NewServiceGormRepository(db)
	ctx := context.Background()
	owner := uuid.NewString()

	cut := &models.Service{BarbershopID: owner, Name: "Classic Cut", Kind: "service", Price: 30, Status: "Available"}
	fade := &models.Service{BarbershopID: owner, Name: "Skin Fade", Kind: "style", Price: 45, Status: "Unavailable"}
	require.NoError(t, repo.Create(ctx, cut))
	require.NoError(t, repo.Create(ctx, fade))

	styles, err := repo.List(ctx, owner, shop.ServiceFilter{Kind: "style"})
	require.NoError(t, err)
	require.Len(t, styles, 1)
	assert.Equal(t, fade.ID, styles[0].ID)

	found, err := repo.List(ctx, owner, shop.ServiceFilter{Query: "cut"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	fade.Status = "Available"
	require.NoError(t, repo.Update(ctx, fade))

	got, err := repo.Get(ctx, owner, fade.ID)
	require.NoError(t, err)
	assert.Equal(t, "Available", got.Status)

	fade.Status = "Retired"
	assert.ErrorIs(t, repo.Update(ctx, fade), shop.ErrInvalidRecord)

	require.NoError(t, repo.Delete(ctx, owner, cut.ID))
	_, err = repo.Get(ctx, owner, cut.ID)
	assert.ErrorIs(t, err, shop.ErrServiceNotFound)
}
