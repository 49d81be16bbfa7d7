package session

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
)

var (
	ErrInvalidToken = httperr.ErrBusiness("invalid_token")
	ErrRevoked      = httperr.ErrBusiness("session_revoked")
)

// Session is the authenticated identity handed explicitly to everything
// that needs the owner key. It lives from sign-in until sign-out or expiry.
type Session struct {
	ID        string
	UserID    string
	OwnerID   string
	Role      string
	ExpiresAt time.Time
}

type RevocationStore interface {
	Revoke(ctx context.Context, id string, ttl time.Duration) error
	IsRevoked(ctx context.Context, id string) (bool, error)
}

type claims struct {
	BarbershopID string `json:"barbershopId"`
	Role         string `json:"role"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	store  RevocationStore
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration, store RevocationStore) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		now:    time.Now,
	}
}

// Issue starts a session for the owner account and returns its bearer token.
func (m *Manager) Issue(userID, ownerID, role string) (string, Session, error) {
	now := m.now()
	s := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		OwnerID:   ownerID,
		Role:      role,
		ExpiresAt: now.Add(m.ttl),
	}

	c := claims{
		BarbershopID: ownerID,
		Role:         role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", Session{}, fmt.Errorf("session: sign token: %w", err)
	}

	return signed, s, nil
}

// Resolve validates the token and rejects sessions that were signed out.
func (m *Manager) Resolve(ctx context.Context, tokenString string) (Session, error) {
	var c claims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&c,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return m.secret, nil
		},
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}

	if c.ID == "" || c.Subject == "" || c.BarbershopID == "" || c.ExpiresAt == nil {
		return Session{}, ErrInvalidToken
	}

	revoked, err := m.store.IsRevoked(ctx, c.ID)
	if err != nil {
		return Session{}, fmt.Errorf("session: revocation check: %w", err)
	}
	if revoked {
		return Session{}, ErrRevoked
	}

	return Session{
		ID:        c.ID,
		UserID:    c.Subject,
		OwnerID:   c.BarbershopID,
		Role:      c.Role,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

// Invalidate signs the session out for the rest of its lifetime.
func (m *Manager) Invalidate(ctx context.Context, s Session) error {
	ttl := s.ExpiresAt.Sub(m.now())
	if ttl <= 0 {
		return nil
	}
	return m.store.Revoke(ctx, s.ID, ttl)
}
