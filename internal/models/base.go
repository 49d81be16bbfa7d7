package models

import "github.com/google/uuid"

// ids are opaque strings assigned on insert
func newID(current string) string {
	if current != "" {
		return current
	}
	return uuid.NewString()
}
