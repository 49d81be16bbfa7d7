package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestStartOfDayUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	// 01:30 UTC on May 2nd is still May 1st at UTC-3
	ts := time.Date(2024, 5, 2, 1, 30, 0, 0, time.UTC)

	got := StartOfDay(ts, loc)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, loc), got)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-01", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01/05/2024", time.UTC)
	assert.Error(t, err)
}

func TestCivilDateIgnoresZoneOffset(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	// midnight in Tokyo is still the previous day in UTC
	local := time.Date(2024, 5, 1, 0, 0, 0, 0, tokyo)

	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), CivilDate(local))

	d, err := ParseCivilDate("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, CivilDate(local), d)
}
