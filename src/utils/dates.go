package utils

import (
	"fmt"
	"time"
)

const ShortSlashDateLayout = "2006/01/02"
const ShortDashDateLayout = "2006-01-02"
const MonthLayout = "2006-01"

// DaysBetween returns the whole number of days between two dates, never negative.
func DaysBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}

// MonthKey buckets a date into its "YYYY-MM" month key.
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// MonthStart returns midnight UTC on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// LastMonths returns the month-start dates for the trailing n months ending at
// the month containing ref, in chronological order.
func LastMonths(ref time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	months := make([]time.Time, 0, n)
	start := MonthStart(ref).AddDate(0, -(n - 1), 0)
	for i := 0; i < n; i++ {
		months = append(months, start.AddDate(0, i, 0))
	}
	return months
}

// GenerateDates returns every date from startDate to endDate inclusive, stepped
// by interval.
func GenerateDates(startDate, endDate time.Time, interval time.Duration) ([]time.Time, error) {
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("endDate must be after startDate")
	}

	var dates []time.Time
	for currentDate := startDate; currentDate.Before(endDate) || currentDate.Equal(endDate); currentDate = currentDate.Add(interval) {
		dates = append(dates, currentDate)
	}

	return dates, nil
}
