// Package dates provides the day-granularity date handling shared by the
// ledger and loan engine. Dates cross the API boundary as YYYY-MM-DD and are
// stored as UTC midnights.
package dates

import (
	"fmt"
	"time"

	"github.com/SscSPs/pocket_finance_app/internal/apperrors"
)

// Layout is the wire format for calendar dates.
const Layout = "2006-01-02"

// Parse converts a YYYY-MM-DD string into a UTC-midnight time.Time.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return t, nil
}

// Format renders a date in the wire format.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Truncate drops the time-of-day component, keeping the calendar day in UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day as a UTC midnight.
func Today() time.Time {
	return Truncate(time.Now())
}

// DaysBetween returns the absolute number of whole days between two dates.
// Inputs are truncated to calendar days first, so the result is exact.
func DaysBetween(a, b time.Time) int {
	diff := Truncate(b).Sub(Truncate(a))
	if diff < 0 {
		diff = -diff
	}
	return int(diff / (24 * time.Hour))
}

// MonthsBetween returns the number of whole 30-day months spanned by the two
// dates, rounding partial months up, with a minimum of one month. Partial
// months always count in the lender's favour; a same-day window is one month.
func MonthsBetween(start, due time.Time) int {
	days := DaysBetween(start, due)
	months := (days + 29) / 30
	if months < 1 {
		months = 1
	}
	return months
}
