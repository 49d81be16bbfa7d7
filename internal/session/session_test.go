package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(now *time.Time) *Manager {
	store := NewMemoryStore()
	store.now = func() time.Time { return *now }

	m := NewManager("secret", time.Hour, store)
	m.now = func() time.Time { return *now }
	return m
}

func TestIssueAndResolve(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	m := newTestManager(&now)

	token, issued, err := m.Issue("user-1", "shop-1", "owner")
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)

	got, err := m.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, got.ID)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "shop-1", got.OwnerID)
	assert.Equal(t, "owner", got.Role)
	assert.True(t, issued.ExpiresAt.Equal(got.ExpiresAt))
}

func TestResolveRejectsExpired(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	m := newTestManager(&now)

	token, _, err := m.Issue("user-1", "shop-1", "owner")
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = m.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveRejectsForeignSignature(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	m := newTestManager(&now)
	other := NewManager("other-secret", time.Hour, NewMemoryStore())
	other.now = m.now

	token, _, err := other.Issue("user-1", "shop-1", "owner")
	require.NoError(t, err)

	_, err = m.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveRequiresOwner(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	m := newTestManager(&now)

	c := jwt.MapClaims{
		"sub": "user-1",
		"jti": "abc",
		"exp": now.Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestInvalidate(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	m := newTestManager(&now)
	ctx := context.Background()

	token, s, err := m.Issue("user-1", "shop-1", "owner")
	require.NoError(t, err)
	require.NoError(t, m.Invalidate(ctx, s))

	_, err = m.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrRevoked)

	// a fresh sign-in is unaffected
	token2, _, err := m.Issue("user-1", "shop-1", "owner")
	require.NoError(t, err)
	_, err = m.Resolve(ctx, token2)
	assert.NoError(t, err)
}

func TestMemoryStoreExpires(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, s.Revoke(ctx, "id", time.Minute))
	revoked, err := s.IsRevoked(ctx, "id")
	require.NoError(t, err)
	assert.True(t, revoked)

	now = now.Add(2 * time.Minute)
	revoked, err = s.IsRevoked(ctx, "id")
	require.NoError(t, err)
	assert.False(t, revoked)
}
