package handlers

import (
	"time"

	"github.com/BruksfildServices01/barber-dashboard/internal/timezone"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// parseBookingDate reads the YYYY-MM-DD date and HH:mm time of a booking
// request. The date is stored as a civil date and does not depend on the
// shop's timezone.
func parseBookingDate(dateStr string, timeStr string) (time.Time, error) {
	date, err := timezone.ParseCivilDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}

	if timeStr != "" {
		if _, err := time.Parse(timeLayout, timeStr); err != nil {
			return time.Time{}, err
		}
	}

	return date, nil
}
