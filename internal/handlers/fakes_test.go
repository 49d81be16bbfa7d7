package handlers

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/booking"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

// ------------------------------------------------------
// bookings
// ------------------------------------------------------

type memBookings struct {
	mu    sync.Mutex
	items []models.Booking
	err   error
}

func (m *memBookings) FetchAll(ctx context.Context, ownerID string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Booking{}
	for _, b := range m.items {
		if b.BarbershopID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBookings) SetStatus(ctx context.Context, ownerID, bookingID string, status domain.Status) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.items {
		if m.items[i].ID == bookingID && m.items[i].BarbershopID == ownerID {
			m.items[i].Status = string(status)
			b := m.items[i]
			return &b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memBookings) Remove(ctx context.Context, ownerID, bookingID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for i := range m.items {
		if m.items[i].ID == bookingID && m.items[i].BarbershopID == ownerID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memBookings) Create(ctx context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	b.ID = uuid.NewString()
	b.Status = string(domain.InitialStatus())
	m.items = append(m.items, *b)
	return nil
}

// ------------------------------------------------------
// accounts
// ------------------------------------------------------

type memAccounts struct {
	shops map[string]*models.Barbershop
	users map[string]*models.User
}

func newMemAccounts() *memAccounts {
	return &memAccounts{
		shops: map[string]*models.Barbershop{},
		users: map[string]*models.User{},
	}
}

func (m *memAccounts) CreateOwner(ctx context.Context, b *models.Barbershop, u *models.User) error {
	for _, s := range m.shops {
		if s.Slug == b.Slug {
			return shop.ErrSlugTaken
		}
	}
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return shop.ErrEmailTaken
		}
	}
	b.ID = uuid.NewString()
	u.ID = uuid.NewString()
	u.BarbershopID = b.ID
	cp := *b
	m.shops[b.ID] = &cp
	stored := *u
	m.users[u.ID] = &stored
	return nil
}

func (m *memAccounts) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return m.withShop(u), nil
		}
	}
	return nil, shop.ErrUserNotFound
}

func (m *memAccounts) GetUser(ctx context.Context, id string) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return m.withShop(u), nil
	}
	return nil, shop.ErrUserNotFound
}

func (m *memAccounts) withShop(u *models.User) *models.User {
	cp := *u
	if s, ok := m.shops[u.BarbershopID]; ok {
		cp.Barbershop = *s
	}
	return &cp
}

func (m *memAccounts) GetBarbershopByID(ctx context.Context, id string) (*models.Barbershop, error) {
	if s, ok := m.shops[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, shop.ErrBarbershopNotFound
}

func (m *memAccounts) GetBarbershopBySlug(ctx context.Context, slug string) (*models.Barbershop, error) {
	for _, s := range m.shops {
		if s.Slug == slug {
			cp := *s
			return &cp, nil
		}
	}
	return nil, shop.ErrBarbershopNotFound
}

func (m *memAccounts) UpdateBarbershop(ctx context.Context, b *models.Barbershop) error {
	if _, ok := m.shops[b.ID]; !ok {
		return shop.ErrBarbershopNotFound
	}
	cp := *b
	m.shops[b.ID] = &cp
	return nil
}

// ------------------------------------------------------
// barbers
// ------------------------------------------------------

type memBarbers struct {
	items []models.Barber
}

func (m *memBarbers) List(ctx context.Context, ownerID string, onlyAvailable bool) ([]models.Barber, error) {
	out := []models.Barber{}
	for _, b := range m.items {
		if b.BarbershopID == ownerID && (!onlyAvailable || b.Available) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBarbers) Create(ctx context.Context, b *models.Barber) error {
	if b.FullName == "" {
		return shop.ErrInvalidRecord
	}
	b.ID = uuid.NewString()
	m.items = append(m.items, *b)
	return nil
}

func (m *memBarbers) SetAvailability(ctx context.Context, ownerID, barberID string, available bool) (*models.Barber, error) {
	for i := range m.items {
		if m.items[i].ID == barberID && m.items[i].BarbershopID == ownerID {
			m.items[i].Available = available
			b := m.items[i]
			return &b, nil
		}
	}
	return nil, shop.ErrBarberNotFound
}

func (m *memBarbers) Delete(ctx context.Context, ownerID, barberID string) error {
	for i := range m.items {
		if m.items[i].ID == barberID && m.items[i].BarbershopID == ownerID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	return nil
}

// ------------------------------------------------------
// services
// ------------------------------------------------------

type memServices struct {
	items map[string]models.Service
}

func newMemServices() *memServices {
	return &memServices{items: map[string]models.Service{}}
}

func (m *memServices) List(ctx context.Context, ownerID string, f shop.ServiceFilter) ([]models.Service, error) {
	out := []models.Service{}
	for _, s := range m.items {
		if s.BarbershopID != ownerID {
			continue
		}
		if f.Kind != "" && s.Kind != f.Kind {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		if f.Query != "" && !strings.Contains(strings.ToLower(s.Name), f.Query) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memServices) Get(ctx context.Context, ownerID, id string) (*models.Service, error) {
	s, ok := m.items[id]
	if !ok || s.BarbershopID != ownerID {
		return nil, shop.ErrServiceNotFound
	}
	return &s, nil
}

func (m *memServices) Create(ctx context.Context, s *models.Service) error {
	if s.Kind != models.ServiceKindService && s.Kind != models.ServiceKindStyle {
		return shop.ErrInvalidRecord
	}
	s.ID = uuid.NewString()
	m.items[s.ID] = *s
	return nil
}

func (m *memServices) Update(ctx context.Context, s *models.Service) error {
	if _, ok := m.items[s.ID]; !ok {
		return shop.ErrServiceNotFound
	}
	m.items[s.ID] = *s
	return nil
}

func (m *memServices) Delete(ctx context.Context, ownerID, id string) error {
	if s, ok := m.items[id]; ok && s.BarbershopID == ownerID {
		delete(m.items, id)
	}
	return nil
}

// ------------------------------------------------------
// images / audit
// ------------------------------------------------------

type fakeUploader struct {
	uploaded []string
	removed  []string
	err      error
}

func (f *fakeUploader) Upload(ctx context.Context, ownerID string, r io.Reader) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	if _, err := io.ReadAll(r); err != nil {
		return "", "", err
	}
	key := "services/" + ownerID + "/" + uuid.NewString() + ".webp"
	f.uploaded = append(f.uploaded, key)
	return key, "https://cdn.example.com/" + key, nil
}

func (f *fakeUploader) Remove(ctx context.Context, key string) error {
	f.removed = append(f.removed, key)
	return nil
}

type fakeAuditLister struct {
	got  audit.Query
	logs []models.AuditLog
}

func (f *fakeAuditLister) List(ctx context.Context, q audit.Query) ([]models.AuditLog, int64, error) {
	f.got = q
	return f.logs, int64(len(f.logs)), nil
}
