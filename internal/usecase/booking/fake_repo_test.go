package booking

import (
	"context"
	"sync"

	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/booking"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

type fakeRepo struct {
	mu    sync.Mutex
	items []models.Booking

	fetchErr  error
	statusErr error
	removeErr error

	fetches  int
	sets     []string
	removals []string
}

func (f *fakeRepo) FetchAll(ctx context.Context, ownerID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}

	out := []models.Booking{}
	for _, b := range f.items {
		if b.BarbershopID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) SetStatus(
	ctx context.Context,
	ownerID string,
	bookingID string,
	status domain.Status,
) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sets = append(f.sets, bookingID+":"+string(status))
	if f.statusErr != nil {
		return nil, f.statusErr
	}

	for i := range f.items {
		if f.items[i].ID == bookingID && f.items[i].BarbershopID == ownerID {
			f.items[i].Status = string(status)
			b := f.items[i]
			return &b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) Remove(ctx context.Context, ownerID string, bookingID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.removals = append(f.removals, bookingID)
	if f.removeErr != nil {
		return f.removeErr
	}

	for i := range f.items {
		if f.items[i].ID == bookingID && f.items[i].BarbershopID == ownerID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeRepo) Create(ctx context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append(f.items, *b)
	return nil
}

type fakeShops struct {
	shops map[string]*models.Barbershop
	calls int
}

func (f *fakeShops) GetBarbershopByID(ctx context.Context, id string) (*models.Barbershop, error) {
	f.calls++
	if s, ok := f.shops[id]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}
