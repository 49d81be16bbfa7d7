package shop

import (
	"strings"

	"github.com/BruksfildServices01/barber-dashboard/internal/models"
)

// ServiceFilter narrows a catalogue listing. Empty fields match everything.
type ServiceFilter struct {
	Kind   string
	Status string
	Query  string
}

// NewServiceFilter normalizes raw query values. Kind is case-insensitive,
// status accepts any casing of Available/Unavailable.
func NewServiceFilter(kind, status, query string) (ServiceFilter, error) {
	f := ServiceFilter{
		Kind:  strings.ToLower(strings.TrimSpace(kind)),
		Query: strings.ToLower(strings.TrimSpace(query)),
	}

	switch f.Kind {
	case "", models.ServiceKindService, models.ServiceKindStyle:
	default:
		return ServiceFilter{}, ErrInvalidFilter
	}

	switch strings.ToLower(strings.TrimSpace(status)) {
	case "":
	case strings.ToLower(models.ServiceAvailable):
		f.Status = models.ServiceAvailable
	case strings.ToLower(models.ServiceUnavailable):
		f.Status = models.ServiceUnavailable
	default:
		return ServiceFilter{}, ErrInvalidFilter
	}

	return f, nil
}
