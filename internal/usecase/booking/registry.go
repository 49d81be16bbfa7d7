package booking

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/booking"
	"github.com/BruksfildServices01/barber-dashboard/internal/metrics"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
	"github.com/BruksfildServices01/barber-dashboard/internal/session"
	"github.com/BruksfildServices01/barber-dashboard/internal/timezone"
)

// Factory builds a controller for a freshly seen session.
type Factory func(ctx context.Context, s session.Session) (*Controller, error)

type BarbershopReader interface {
	GetBarbershopByID(ctx context.Context, id string) (*models.Barbershop, error)
}

// NewFactory resolves the shop timezone so day boundaries follow the shop.
func NewFactory(
	repo domain.Repository,
	shops BarbershopReader,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
) Factory {
	return func(ctx context.Context, s session.Session) (*Controller, error) {
		tz := ""
		if s.OwnerID != "" {
			shop, err := shops.GetBarbershopByID(ctx, s.OwnerID)
			if err != nil {
				return nil, err
			}
			tz = shop.Timezone
		}
		return NewController(repo, audit, m, s, timezone.Location(tz)), nil
	}
}

// Registry keeps one controller per live session. A controller is loaded
// once when first requested and dropped on sign-out or expiry.
type Registry struct {
	factory Factory
	now     func() time.Time

	mu          sync.Mutex
	controllers map[string]*Controller
}

func NewRegistry(factory Factory) *Registry {
	return &Registry{
		factory:     factory,
		now:         time.Now,
		controllers: make(map[string]*Controller),
	}
}

func (r *Registry) Get(ctx context.Context, s session.Session) (*Controller, error) {
	r.mu.Lock()
	r.evictExpired()
	if c, ok := r.controllers[s.ID]; ok {
		r.mu.Unlock()
		return c, nil
	}
	r.mu.Unlock()

	c, err := r.factory(ctx, s)
	if err != nil {
		return nil, err
	}
	if err := c.Load(ctx); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// another request for the same session may have won the race
	if existing, ok := r.controllers[s.ID]; ok {
		return existing, nil
	}
	r.controllers[s.ID] = c
	return c, nil
}

func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	delete(r.controllers, sessionID)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.controllers)
}

// Sweep drops controllers of sessions that expired without signing out.
func (r *Registry) Sweep() {
	r.mu.Lock()
	r.evictExpired()
	r.mu.Unlock()
}

func (r *Registry) evictExpired() {
	now := r.now()
	for id, c := range r.controllers {
		if exp := c.session.ExpiresAt; !exp.IsZero() && now.After(exp) {
			delete(r.controllers, id)
		}
	}
}
