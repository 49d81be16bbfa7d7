package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/booking"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

// CachedBookingRepository keeps each owner's FetchAll result in Redis and
// drops it on every write through this repository. Cache failures are
// logged and never fail the call.
//
// Every write bumps a per-owner generation before dropping the entry, and a
// cached entry is only served while its generation is current. A FetchAll
// that raced a write may still store its result, but it is never read back.
type CachedBookingRepository struct {
	next domain.Repository
	rdb  redis.Cmdable
	ttl  time.Duration
}

type cachedBookings struct {
	Gen      int64            `json:"gen"`
	Bookings []models.Booking `json:"bookings"`
}

func NewCachedBookingRepository(
	next domain.Repository,
	rdb redis.Cmdable,
	ttl time.Duration,
) *CachedBookingRepository {
	return &CachedBookingRepository{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
	}
}

func bookingsKey(ownerID string) string {
	return "bookings:" + ownerID
}

func bookingsGenKey(ownerID string) string {
	return "bookings:gen:" + ownerID
}

func (r *CachedBookingRepository) generation(ctx context.Context, ownerID string) (int64, error) {
	gen, err := r.rdb.Get(ctx, bookingsGenKey(ownerID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (r *CachedBookingRepository) FetchAll(
	ctx context.Context,
	ownerID string,
) ([]models.Booking, error) {

	gen, err := r.generation(ctx, ownerID)
	if err != nil {
		log.Println("booking cache read error:", err)
		return r.next.FetchAll(ctx, ownerID)
	}

	raw, err := r.rdb.Get(ctx, bookingsKey(ownerID)).Bytes()
	switch {
	case err == nil:
		var cached cachedBookings
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr != nil {
			log.Println("booking cache: corrupt entry for", ownerID)
		} else if cached.Gen == gen {
			return cached.Bookings, nil
		}
	case !errors.Is(err, redis.Nil):
		log.Println("booking cache read error:", err)
	}

	bookings, err := r.next.FetchAll(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	entry := cachedBookings{Gen: gen, Bookings: bookings}
	if b, err := json.Marshal(entry); err == nil {
		if err := r.rdb.Set(ctx, bookingsKey(ownerID), b, r.ttl).Err(); err != nil {
			log.Println("booking cache write error:", err)
		}
	}

	return bookings, nil
}

func (r *CachedBookingRepository) SetStatus(
	ctx context.Context,
	ownerID string,
	bookingID string,
	status domain.Status,
) (*models.Booking, error) {

	b, err := r.next.SetStatus(ctx, ownerID, bookingID, status)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, ownerID)
	return b, nil
}

func (r *CachedBookingRepository) Remove(
	ctx context.Context,
	ownerID string,
	bookingID string,
) error {

	if err := r.next.Remove(ctx, ownerID, bookingID); err != nil {
		return err
	}
	r.invalidate(ctx, ownerID)
	return nil
}

func (r *CachedBookingRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := r.next.Create(ctx, b); err != nil {
		return err
	}
	r.invalidate(ctx, b.BarbershopID)
	return nil
}

func (r *CachedBookingRepository) invalidate(ctx context.Context, ownerID string) {
	if err := r.rdb.Incr(ctx, bookingsGenKey(ownerID)).Err(); err != nil {
		log.Println("booking cache generation error:", err)
	}
	if err := r.rdb.Del(ctx, bookingsKey(ownerID)).Err(); err != nil {
		log.Println("booking cache invalidate error:", err)
	}
}

var _ domain.Repository = (*CachedBookingRepository)(nil)
