package workdays

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sales-request-system/pkg/errors"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBetween_SameDay(t *testing.T) {
	for _, d := range []time.Time{
		date(2024, time.January, 1), // Monday
		date(2024, time.January, 6), // Saturday
		date(2024, time.January, 7), // Sunday
		date(2024, time.February, 29),
	} {
		got, err := Between(d, d)
		require.NoError(t, err)
		assert.Equal(t, 1, got, "same-day duration must be 1 for %s", d.Format("2006-01-02"))
	}
}

func TestBetween_MondayToSunday(t *testing.T) {
	// 2024-01-01 is a Monday. Mon counts as 1, Tue-Fri add 4, weekend excluded.
	got, err := Between(date(2024, time.January, 1), date(2024, time.January, 7))
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestBetween_WeekendOnlySpan(t *testing.T) {
	// Saturday to Sunday: only the start day counts.
	got, err := Between(date(2024, time.January, 6), date(2024, time.January, 7))
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestBetween_AcrossTwoWeeks(t *testing.T) {
	// Mon 2024-01-01 through Fri 2024-01-12: two full business weeks.
	got, err := Between(date(2024, time.January, 1), date(2024, time.January, 12))
	require.NoError(t, err)
	assert.Equal(t, 10, got)
}

func TestBetween_StartOnWeekend(t *testing.T) {
	// Sat 2024-01-06 to Wed 2024-01-10: start counts 1, Mon+Tue+Wed add 3.
	got, err := Between(date(2024, time.January, 6), date(2024, time.January, 10))
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestBetween_EndBeforeStart(t *testing.T) {
	_, err := Between(date(2024, time.January, 10), date(2024, time.January, 9))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRange)
}

func TestBetween_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 2, 0, 1, 0, 0, time.UTC)
	got, err := Between(start, end)
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestBetween_Idempotent(t *testing.T) {
	start, end := date(2024, time.March, 4), date(2024, time.March, 15)
	first, err := Between(start, end)
	require.NoError(t, err)
	second, err := Between(start, end)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
