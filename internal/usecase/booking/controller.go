package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/booking"
	"github.com/BruksfildServices01/barber-dashboard/internal/httperr"
	"github.com/BruksfildServices01/barber-dashboard/internal/metrics"
	"github.com/BruksfildServices01/barber-dashboard/internal/models"
	"github.com/BruksfildServices01/barber-dashboard/internal/session"
	"github.com/BruksfildServices01/barber-dashboard/internal/timezone"
)

// Intent is an action waiting for the user's explicit confirmation.
type Intent struct {
	BookingID string        `json:"bookingId"`
	Action    domain.Action `json:"action"`
}

// Controller owns one session's in-memory booking set. The remote store
// stays authoritative: local state only changes after a remote write
// succeeds, and other sessions' writes show up on the next Load.
type Controller struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
	session session.Session
	loc     *time.Location

	mu       sync.Mutex
	bookings []models.Booking
	selected time.Time
	intent   *Intent
}

func NewController(
	repo domain.Repository,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	s session.Session,
	loc *time.Location,
) *Controller {
	return &Controller{
		repo:     repo,
		audit:    audit,
		metrics:  m,
		session:  s,
		loc:      loc,
		bookings: []models.Booking{},
		selected: timezone.StartOfDay(time.Now(), loc),
	}
}

// ======================================================
// LOAD
// ======================================================

// Load replaces the in-memory set with the owner's bookings.
func (c *Controller) Load(ctx context.Context) error {
	if c.session.OwnerID == "" {
		c.mu.Lock()
		c.bookings = []models.Booking{}
		c.intent = nil
		c.mu.Unlock()
		return nil
	}

	list, err := c.repo.FetchAll(ctx, c.session.OwnerID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.bookings = list
	if c.intent != nil {
		if _, ok := c.find(c.intent.BookingID); !ok {
			c.intent = nil
		}
	}
	return nil
}

func (c *Controller) Bookings() []models.Booking {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Booking, len(c.bookings))
	copy(out, c.bookings)
	return out
}

// ======================================================
// TRANSITIONS
// ======================================================

func (c *Controller) Accept(ctx context.Context, bookingID string) (*models.Booking, error) {
	return c.transition(ctx, bookingID, domain.ActionAccept)
}

func (c *Controller) Cancel(ctx context.Context, bookingID string) (*models.Booking, error) {
	return c.transition(ctx, bookingID, domain.ActionCancel)
}

func (c *Controller) transition(
	ctx context.Context,
	bookingID string,
	action domain.Action,
) (*models.Booking, error) {

	target, ok := action.Target()
	if !ok {
		return nil, domain.ErrInvalidAction
	}

	c.mu.Lock()
	current, found := c.find(bookingID)
	c.mu.Unlock()

	if !found {
		c.observe(action, domain.ErrNotFound)
		return nil, domain.ErrNotFound
	}

	if err := action.Check(domain.Status(current.Status)); err != nil {
		c.observe(action, err)
		return nil, err
	}

	updated, err := c.repo.SetStatus(ctx, c.session.OwnerID, bookingID, target)
	if err != nil {
		c.observe(action, err)
		return nil, err
	}

	c.mu.Lock()
	c.replace(*updated)
	c.mu.Unlock()

	c.record(action, bookingID, map[string]any{
		"from": current.Status,
		"to":   updated.Status,
	})
	c.observe(action, nil)

	return updated, nil
}

// ======================================================
// CONFIRMATION (INTENTS)
// ======================================================

// Request stores a pending intent, replacing any previous one. Accept and
// cancel are checked against the current status up front.
func (c *Controller) Request(bookingID string, action domain.Action) (Intent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.find(bookingID)
	if !ok {
		return Intent{}, domain.ErrNotFound
	}
	if err := action.Check(domain.Status(b.Status)); err != nil {
		return Intent{}, err
	}

	in := Intent{BookingID: bookingID, Action: action}
	c.intent = &in
	return in, nil
}

func (c *Controller) Intent() (Intent, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.intent == nil {
		return Intent{}, false
	}
	return *c.intent, true
}

func (c *Controller) Dismiss() {
	c.mu.Lock()
	c.intent = nil
	c.mu.Unlock()
}

// Confirm takes the pending intent and executes it, returning the intent it
// ran. The intent is consumed before the remote call, so a repeated confirm
// cannot issue a second write. A transport failure puts it back for a retry.
// The returned booking is nil for a delete.
func (c *Controller) Confirm(ctx context.Context) (Intent, *models.Booking, error) {
	c.mu.Lock()
	if c.intent == nil {
		c.mu.Unlock()
		return Intent{}, nil, domain.ErrNoPendingIntent
	}
	in := *c.intent
	c.intent = nil
	c.mu.Unlock()

	var (
		b   *models.Booking
		err error
	)
	if in.Action == domain.ActionDelete {
		err = c.remove(ctx, in.BookingID)
	} else {
		b, err = c.transition(ctx, in.BookingID, in.Action)
	}

	if errors.Is(err, domain.ErrRemoteUnavailable) {
		c.mu.Lock()
		if c.intent == nil {
			c.intent = &in
		}
		c.mu.Unlock()
	}

	return in, b, err
}

func (c *Controller) remove(ctx context.Context, bookingID string) error {
	if err := c.repo.Remove(ctx, c.session.OwnerID, bookingID); err != nil {
		c.observe(domain.ActionDelete, err)
		return err
	}

	c.mu.Lock()
	for i := range c.bookings {
		if c.bookings[i].ID == bookingID {
			c.bookings = append(c.bookings[:i:i], c.bookings[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	c.record(domain.ActionDelete, bookingID, nil)
	c.observe(domain.ActionDelete, nil)
	return nil
}

// ======================================================
// TODAY VIEW
// ======================================================

// SelectDate changes the selected day and returns its view. It never
// touches the remote store.
func (c *Controller) SelectDate(date time.Time) domain.TodayView {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selected = timezone.StartOfDay(date, c.loc)
	return domain.BuildTodayView(c.bookings, c.selected, c.loc)
}

func (c *Controller) TodayView() domain.TodayView {
	c.mu.Lock()
	defer c.mu.Unlock()

	return domain.BuildTodayView(c.bookings, c.selected, c.loc)
}

func (c *Controller) Location() *time.Location {
	return c.loc
}

// ======================================================
// HELPERS (callers hold mu)
// ======================================================

func (c *Controller) find(id string) (models.Booking, bool) {
	for _, b := range c.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booking{}, false
}

func (c *Controller) replace(updated models.Booking) {
	for i := range c.bookings {
		if c.bookings[i].ID == updated.ID {
			c.bookings[i] = updated
			return
		}
	}
}

// ======================================================
// AUDIT / METRICS
// ======================================================

var auditActions = map[domain.Action]string{
	domain.ActionAccept: "booking_confirmed",
	domain.ActionCancel: "booking_canceled",
	domain.ActionDelete: "booking_deleted",
}

func (c *Controller) record(action domain.Action, bookingID string, meta any) {
	c.audit.Dispatch(audit.Event{
		BarbershopID: c.session.OwnerID,
		UserID:       audit.Ptr(c.session.UserID),
		Action:       auditActions[action],
		Entity:       "booking",
		EntityID:     audit.Ptr(bookingID),
		Metadata:     meta,
	})
}

func (c *Controller) observe(action domain.Action, err error) {
	c.metrics.ObserveBookingAction(string(action), outcome(err))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrRemoteUnavailable):
		return "remote_unavailable"
	}
	if code := httperr.Code(err); code != "" {
		return code
	}
	return "error"
}
