package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
)

// RoundingMode selects how half-way values are resolved at the final rounding step.
type RoundingMode string

const (
	// HalfUp rounds half-way values away from zero (2.345 -> 2.35, -2.345 -> -2.35).
	HalfUp RoundingMode = "half_up"
	// HalfEven rounds half-way values to the nearest even digit (2.345 -> 2.34).
	HalfEven RoundingMode = "half_even"
)

func ParseRoundingMode(s string) (RoundingMode, error) {
	switch m := RoundingMode(strings.ToLower(strings.TrimSpace(s))); m {
	case HalfUp, HalfEven:
		return m, nil
	}

	return "", fmt.Errorf("unknown rounding mode %q", s)
}

// Rounder applies a fixed precision and rounding mode to currency values.
type Rounder struct {
	Places int32
	Mode   RoundingMode
}

// DefaultRounder rounds to paise with half-up.
func DefaultRounder() Rounder {
	return Rounder{Places: 2, Mode: HalfUp}
}

func (r Rounder) Round(d decimal.Decimal) decimal.Decimal {
	if r.Mode == HalfEven {
		return d.RoundBank(r.Places)
	}

	return d.Round(r.Places)
}

var hundred = decimal.NewFromInt(100)

// Percent converts a percentage such as 18 into its multiplier 0.18.
func Percent(p decimal.Decimal) decimal.Decimal {
	return p.Div(hundred)
}

// OrZero dereferences d, reporting whether the value was missing.
func OrZero(d *decimal.Decimal) (decimal.Decimal, bool) {
	if d == nil {
		return decimal.Zero, true
	}

	return *d, false
}

var errEmptyAmount = errors.New("empty amount")

var currencyMarks = []string{"₹", "INR", "Rs.", "Rs", "rs.", "rs"}

// ParseAmount parses spreadsheet-style amounts: "1,23,456.78", "₹ 1,000", "(200.00)".
// Thousands separators of any grouping are dropped; the dot is the decimal separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return decimal.Zero, &apperr.ParseError{Field: "amount", Value: s, Err: errEmptyAmount}
	}

	negative := false
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		negative = true
		clean = clean[1 : len(clean)-1]
	}

	for _, mark := range currencyMarks {
		clean = strings.TrimPrefix(clean, mark)
	}

	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.ReplaceAll(clean, " ", "")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, &apperr.ParseError{Field: "amount", Value: s, Err: err}
	}

	if negative {
		d = d.Neg()
	}

	return d, nil
}
