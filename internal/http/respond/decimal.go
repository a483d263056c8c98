package respond

import "github.com/shopspring/decimal"

// Money renders a stored amount with its two decimal places intact.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// OptionalDecimal renders an optional input value as entered, or null.
func OptionalDecimal(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}

	s := d.String()

	return &s
}
