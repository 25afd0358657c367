package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

// dateLayouts are tried in this fixed order; the first successful parse
// wins. The order matters for inputs like "02/03/2026" that only the first
// layout should claim.
var dateLayouts = []string{
	"01/02/2006",      // MM/DD/YYYY
	"2006-01-02",      // YYYY-MM-DD
	"2 January, 2006", // DD Month, YYYY
	"January 2, 2006", // Month DD, YYYY
	"2 Jan 2006",      // DD Mon YYYY
	"Jan 2, 2006",     // Mon DD, YYYY
}

var acceptedFormats = strings.Join([]string{
	"MM/DD/YYYY", "YYYY-MM-DD", "DD Month, YYYY",
	"Month DD, YYYY", "DD Mon YYYY", "Mon DD, YYYY",
}, ", ")

// parseDate accepts any of the supported human and machine formats and
// returns a date at midnight server-local time.
func parseDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unsupported date %q, accepted formats: %s",
		domain.ErrValidation, value, acceptedFormats)
}

// dateOnly truncates a timestamp to midnight in its own location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from checkin to checkout. Both dates
// are re-anchored to UTC midnight first so a DST transition between them
// cannot shave the elapsed duration below a whole day.
func daysBetween(checkin, checkout time.Time) int {
	in := time.Date(checkin.Year(), checkin.Month(), checkin.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkout.Year(), checkout.Month(), checkout.Day(), 0, 0, 0, 0, time.UTC)
	return int(out.Sub(in).Hours() / 24)
}
