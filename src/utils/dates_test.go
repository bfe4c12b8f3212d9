package utils_test

import (
	"testing"
	"time"

	"agency/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 365, utils.DaysBetween(start, end))
	assert.Equal(t, 0, utils.DaysBetween(start, start))
	assert.Equal(t, 0, utils.DaysBetween(end, start), "never negative")
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-06", utils.MonthKey(time.Date(2024, 6, 15, 13, 30, 0, 0, time.UTC)))
}

func TestMonthStart(t *testing.T) {
	got := utils.MonthStart(time.Date(2024, 6, 15, 13, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestLastMonths(t *testing.T) {
	ref := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	months := utils.LastMonths(ref, 3)
	require.Len(t, months, 3)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), months[0])
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), months[2])

	assert.Nil(t, utils.LastMonths(ref, 0))
}

func TestGenerateDates(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)

	dates, err := utils.GenerateDates(start, end, 24*time.Hour)
	require.NoError(t, err)
	assert.Len(t, dates, 4)
	assert.Equal(t, start, dates[0])
	assert.Equal(t, end, dates[3])

	_, err = utils.GenerateDates(end, start, 24*time.Hour)
	assert.Error(t, err)
}
