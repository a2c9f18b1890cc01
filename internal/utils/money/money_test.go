package money_test

import (
	"testing"

	"github.com/SscSPs/pocket_finance_app/internal/apperrors"
	"github.com/SscSPs/pocket_finance_app/internal/utils/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := money.Parse("1200.505")
	require.NoError(t, err)
	assert.Equal(t, "1200.51", got.StringFixed(2))

	_, err = money.Parse("12,00")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRound_HalfUp(t *testing.T) {
	cases := map[string]string{
		"3.555":   "3.56",
		"3.554":   "3.55",
		"10":      "10.00",
		"0.005":   "0.01",
		"249.995": "250.00",
	}
	for in, want := range cases {
		got := money.Round(decimal.RequireFromString(in))
		assert.Equal(t, want, got.StringFixed(2), in)
	}
}

func TestFormat_AlwaysTwoFractionDigits(t *testing.T) {
	assert.Equal(t, "5000.00", money.Format(decimal.RequireFromString("5000")))
	assert.Equal(t, "3799.50", money.Format(decimal.RequireFromString("3799.5")))
}

func TestIsPositive(t *testing.T) {
	assert.True(t, money.IsPositive(decimal.RequireFromString("0.01")))
	assert.False(t, money.IsPositive(decimal.Zero))
	assert.False(t, money.IsPositive(decimal.RequireFromString("-5")))
}
