package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotalPrice(t *testing.T) {
	tests := []struct {
		name    string
		rate    string
		in, out string
		want    string
	}{
		{"three nights", "100", "2024-01-01", "2024-01-04", "300.00"},
		{"one night", "89.99", "2024-02-28", "2024-02-29", "89.99"},
		{"leap day span", "50.50", "2024-02-28", "2024-03-01", "101.00"},
		{"fractional rate", "33.335", "2024-01-01", "2024-01-02", "33.34"},
		{"full calendar span", "1", "0001-01-01", "9999-12-31", "3652058.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeTotalPrice(decimal.RequireFromString(tt.rate), date(t, tt.in), date(t, tt.out))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestComputeTotalPrice_InvalidRange(t *testing.T) {
	_, err := ComputeTotalPrice(decimal.NewFromInt(100), date(t, "2024-01-04"), date(t, "2024-01-04"))
	assert.ErrorIs(t, err, ErrDateRangeInvalid)

	_, err = ComputeTotalPrice(decimal.NewFromInt(100), date(t, "2024-01-04"), date(t, "2024-01-01"))
	assert.ErrorIs(t, err, ErrDateRangeInvalid)
}

func TestComputeTotalPrice_NonPositiveRate(t *testing.T) {
	_, err := ComputeTotalPrice(decimal.Zero, date(t, "2024-01-01"), date(t, "2024-01-02"))
	assert.ErrorIs(t, err, ErrInvalidPrice)
}
