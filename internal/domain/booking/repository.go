package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

// Repository is the remote store boundary for bookings. Every call is an
// independent write; there are no transactions and the last write wins.
type Repository interface {
	// FetchAll returns the owner's bookings in store order. No match is an
	// empty slice, not an error.
	FetchAll(
		ctx context.Context,
		ownerID string,
	) ([]models.Booking, error)

	// SetStatus writes the status field only and returns the stored record.
	SetStatus(
		ctx context.Context,
		ownerID string,
		bookingID string,
		status Status,
	) (*models.Booking, error)

	// Remove is idempotent: an absent record is not an error.
	Remove(
		ctx context.Context,
		ownerID string,
		bookingID string,
	) error

	Create(
		ctx context.Context,
		b *models.Booking,
	) error
}
