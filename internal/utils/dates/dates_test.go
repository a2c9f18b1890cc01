package dates_test

import (
	"testing"
	"time"

	"github.com/SscSPs/pocket_finance_app/internal/apperrors"
	"github.com/SscSPs/pocket_finance_app/internal/utils/dates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_RoundTrip(t *testing.T) {
	parsed, err := dates.Parse("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), parsed)
	assert.Equal(t, "2026-09-01", dates.Format(parsed))
}

func TestParse_RejectsOtherLayouts(t *testing.T) {
	for _, input := range []string{"01-09-2026", "2026/09/01", "Sept 1 2026", ""} {
		_, err := dates.Parse(input)
		require.Error(t, err, input)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}

func TestTruncate_DropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2026, time.September, 1, 23, 45, 12, 0, loc)

	got := dates.Truncate(in)

	// 23:45 IST is 18:15 UTC the same day.
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, time.September, 11, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 10, dates.DaysBetween(a, b))
	assert.Equal(t, 10, dates.DaysBetween(b, a))
	assert.Equal(t, 0, dates.DaysBetween(a, a))
}

func TestMonthsBetween(t *testing.T) {
	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		due    time.Time
		months int
	}{
		{"same day counts one month", start, 1},
		{"partial month rounds up", start.AddDate(0, 0, 10), 1},
		{"exactly thirty days", start.AddDate(0, 0, 30), 1},
		{"thirty one days spills into a second month", start.AddDate(0, 0, 31), 2},
		{"ninety days", start.AddDate(0, 0, 90), 3},
		{"a year", start.AddDate(1, 0, 0), 13},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.months, dates.MonthsBetween(start, tc.due))
		})
	}
}
