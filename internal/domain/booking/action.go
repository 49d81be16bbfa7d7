package booking

import "strings"

// Action is a staff decision on a booking. Accept and cancel are status
// transitions; delete leaves the state machine entirely.
type Action string

const (
	ActionAccept Action = "accept"
	ActionCancel Action = "cancel"
	ActionDelete Action = "delete"
)

func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionAccept, ActionCancel, ActionDelete:
		return a, nil
	}
	return "", ErrInvalidAction
}

// Target is the status an action writes. Delete has none.
func (a Action) Target() (Status, bool) {
	switch a {
	case ActionAccept:
		return StatusConfirmed, true
	case ActionCancel:
		return StatusCanceled, true
	}
	return "", false
}

// Check reports whether the action may be applied to a booking in current.
func (a Action) Check(current Status) error {
	switch a {
	case ActionAccept:
		return CanAccept(current)
	case ActionCancel:
		return CanCancel(current)
	case ActionDelete:
		return nil
	}
	return ErrInvalidAction
}
