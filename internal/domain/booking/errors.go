package booking

import (
	"errors"

	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
)

var (
	ErrNotFound          = httperr.ErrBusiness("booking_not_found")
	ErrInvalidTransition = httperr.ErrBusiness("invalid_state")
	ErrInvalidRecord     = httperr.ErrBusiness("invalid_booking")
	ErrNoPendingIntent   = httperr.ErrBusiness("no_pending_intent")
	ErrInvalidAction     = httperr.ErrBusiness("invalid_action")
)

// ErrRemoteUnavailable wraps transport and storage failures. It is not a
// business error: callers surface it as a generic failure.
var ErrRemoteUnavailable = errors.New("booking: remote store unavailable")
