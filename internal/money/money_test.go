package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/money"
)

func TestRounder_Round(t *testing.T) {
	type testCase struct {
		name  string
		mode  money.RoundingMode
		input string
		want  string
	}

	tests := []testCase{
		{name: "HalfUpRoundsAway", mode: money.HalfUp, input: "2.345", want: "2.35"},
		{name: "HalfUpNegative", mode: money.HalfUp, input: "-2.345", want: "-2.35"},
		{name: "HalfEvenToEven", mode: money.HalfEven, input: "2.345", want: "2.34"},
		{name: "HalfEvenOddUp", mode: money.HalfEven, input: "2.355", want: "2.36"},
		{name: "NoHalfWay", mode: money.HalfEven, input: "2.3449", want: "2.34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := money.Rounder{Places: 2, Mode: tt.mode}
			got := r.Round(decimal.RequireFromString(tt.input))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestParseRoundingMode(t *testing.T) {
	m, err := money.ParseRoundingMode(" HALF_EVEN ")
	require.NoError(t, err)
	assert.Equal(t, money.HalfEven, m)

	_, err = money.ParseRoundingMode("ceiling")
	assert.Error(t, err)
}

func TestOrZero(t *testing.T) {
	got, missing := money.OrZero(nil)
	assert.True(t, missing)
	assert.True(t, got.IsZero())

	v := decimal.NewFromInt(7)
	got, missing = money.OrZero(&v)
	assert.False(t, missing)
	assert.True(t, got.Equal(v))
}

func TestParseAmount(t *testing.T) {
	type testCase struct {
		input   string
		want    string
		wantErr bool
	}

	tests := []testCase{
		{input: "1,23,456.78", want: "123456.78"},
		{input: "1234.5", want: "1234.5"},
		{input: "₹ 1,000", want: "1000"},
		{input: "Rs. 250.00", want: "250"},
		{input: "(200.00)", want: "-200"},
		{input: "", wantErr: true},
		{input: "twelve", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := money.ParseAmount(tt.input)
			if tt.wantErr {
				var pe *apperr.ParseError
				require.ErrorAs(t, err, &pe)
				assert.Equal(t, "amount", pe.Field)

				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}
