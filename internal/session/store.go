package session

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

type RedisStore struct {
	rdb redis.Cmdable
}

func NewRedisStore(rdb redis.Cmdable) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func revokedKey(id string) string {
	return "session:revoked:" + id
}

func (s *RedisStore) Revoke(ctx context.Context, id string, ttl time.Duration) error {
	return s.rdb.Set(ctx, revokedKey(id), "1", ttl).Err()
}

func (s *RedisStore) IsRevoked(ctx context.Context, id string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedKey(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryStore keeps revocations in process. Used when REDIS_URL is unset.
type MemoryStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryStore) Revoke(ctx context.Context, id string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[id] = s.now().Add(ttl)
	return nil
}

func (s *MemoryStore) IsRevoked(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.revoked[id]
	if !ok {
		return false, nil
	}
	if s.now().After(until) {
		delete(s.revoked, id)
		return false, nil
	}
	return true, nil
}
