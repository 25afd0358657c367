package service

import (
	"testing"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_AcceptedFormats(t *testing.T) {
	want := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.Local)

	inputs := []string{
		"03/14/2026",
		"2026-03-14",
		"14 March, 2026",
		"March 14, 2026",
		"14 Mar 2026",
		"Mar 14, 2026",
		"  2026-03-14  ",
	}

	for _, in := range inputs {
		got, err := parseDate(in)
		require.NoError(t, err, "input %q", in)
		assert.True(t, got.Equal(want), "input %q parsed to %v", in, got)
	}
}

func TestParseDate_SlashFormatIsMonthFirst(t *testing.T) {
	// "02/03/2026" is ambiguous between layouts; the first one claims it.
	got, err := parseDate("02/03/2026")
	require.NoError(t, err)
	assert.Equal(t, time.February, got.Month())
	assert.Equal(t, 3, got.Day())
}

func TestParseDate_Unsupported(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "14/03/2026", "2026.03.14"} {
		_, err := parseDate(in)
		require.Error(t, err, "input %q", in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestDaysBetween(t *testing.T) {
	checkin := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.Local)

	assert.Equal(t, 0, daysBetween(checkin, checkin))
	assert.Equal(t, 1, daysBetween(checkin, checkin.AddDate(0, 0, 1)))
	assert.Equal(t, 30, daysBetween(checkin, checkin.AddDate(0, 0, 30)))
	// Time-of-day noise must not change the night count.
	assert.Equal(t, 2, daysBetween(checkin.Add(23*time.Hour), checkin.AddDate(0, 0, 2).Add(30*time.Minute)))
}

func TestDaysBetween_AcrossDSTTransition(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Clocks spring forward on 2026-03-08, so this stay spans 47 real hours
	// but still covers two nights.
	checkin := time.Date(2026, time.March, 7, 0, 0, 0, 0, ny)
	checkout := time.Date(2026, time.March, 9, 0, 0, 0, 0, ny)
	assert.Equal(t, 2, daysBetween(checkin, checkout))

	// Fall back on 2026-11-01: 25 real hours, still one night.
	checkin = time.Date(2026, time.October, 31, 0, 0, 0, 0, ny)
	checkout = time.Date(2026, time.November, 1, 0, 0, 0, 0, ny)
	assert.Equal(t, 1, daysBetween(checkin, checkout))
}
