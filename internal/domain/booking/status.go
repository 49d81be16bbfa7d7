package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return true
	}
	return false
}

// InitialStatus is the status every booking is created with.
func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Validations
// ===============================

// CanAccept allows pending bookings and re-accepting a confirmed one.
func CanAccept(current Status) error {
	return canMove(current, StatusConfirmed)
}

// CanCancel allows pending bookings and re-cancelling a canceled one.
func CanCancel(current Status) error {
	return canMove(current, StatusCanceled)
}

func canMove(current, target Status) error {
	if current == StatusPending || current == target {
		return nil
	}
	return ErrInvalidTransition
}
