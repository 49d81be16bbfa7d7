package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-dashboard/internal/models"
	"github.com/BruksfildServices01/barber-dashboard/internal/timezone"
)

// TodayView is the derived list of bookings falling on one calendar day.
type TodayView struct {
	Date  time.Time        `json:"date"`
	Items []models.Booking `json:"items"`
}

// BuildTodayView keeps the bookings whose civil date is the calendar day of
// date in loc. Input order is preserved.
func BuildTodayView(
	bookings []models.Booking,
	date time.Time,
	loc *time.Location,
) TodayView {

	day := timezone.StartOfDay(date, loc)

	items := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if OnDay(b.Date, day) {
			items = append(items, b)
		}
	}

	return TodayView{
		Date:  day,
		Items: items,
	}
}

// OnDay reports whether a stored booking date, a civil date held at midnight
// UTC, names the calendar day that selected falls on in its own location.
// Changing the shop's timezone never moves a booking to another day.
func OnDay(stored, selected time.Time) bool {
	return timezone.CivilDate(stored.UTC()).Equal(timezone.CivilDate(selected))
}
