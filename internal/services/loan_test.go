package services

import (
	"testing"

	"github.com/dmitrijs2005/gophbank/internal/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateLoan(t *testing.T) {
	cases := []struct {
		name                  string
		principal             int64
		months                int
		rate                  string
		monthly, total, extra int64
	}{
		{"one percent a month", 100_000, 12, "12", 8885, 106619, 6619},
		{"zero rate", 120_000, 12, "0", 10_000, 120_000, 0},
		{"single month", 50_000, 1, "12", 50_500, 50_500, 500},
		{"mortgage", 1_000_000, 60, "9.5", 21_002, 1_260_112, 260_112},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := CalculateLoan(tc.principal, tc.months, decimal.RequireFromString(tc.rate))
			require.NoError(t, err)
			assert.Equal(t, tc.monthly, q.Monthly)
			assert.Equal(t, tc.total, q.Total)
			assert.Equal(t, tc.extra, q.Overpayment)
		})
	}
}

func TestCalculateLoan_InvalidTerms(t *testing.T) {
	for _, tc := range []struct {
		p      int64
		months int
		rate   string
	}{
		{0, 12, "10"},
		{-1, 12, "10"},
		{1000, 0, "10"},
		{1000, 12, "-1"},
	} {
		_, err := CalculateLoan(tc.p, tc.months, decimal.RequireFromString(tc.rate))
		require.ErrorIs(t, err, common.ErrInvalidLoanTerms)
	}
}
