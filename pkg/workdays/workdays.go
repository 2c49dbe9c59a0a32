// Package workdays computes elapsed business days between calendar dates.
package workdays

import (
	"time"

	apperrors "sales-request-system/pkg/errors"
)

// Between returns the number of working days from start to end inclusive.
// The start date always counts as one day, even when start == end; every
// following Monday-Friday up to and including end adds one more. Saturdays
// and Sundays are never counted. end before start is a caller contract
// violation and returns ErrInvalidRange.
func Between(start, end time.Time) (int, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)

	if end.Before(start) {
		return 0, apperrors.ErrInvalidRange
	}
	if start.Equal(end) {
		return 1, nil
	}

	days := 0
	for d := start.AddDate(0, 0, 1); !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days + 1, nil
}

// BetweenNow is Between with the current date as the end bound.
func BetweenNow(start time.Time) (int, error) {
	return Between(start, time.Now())
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
