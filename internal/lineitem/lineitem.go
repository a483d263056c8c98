// Package lineitem holds the priced line shape shared by invoices and quotations.
package lineitem

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
)

type Line struct {
	ItemID      *uuid.UUID
	Description string
	Rate        *decimal.Decimal
	Quantity    *decimal.Decimal
	TaxPercent  *decimal.Decimal

	Net   decimal.Decimal
	Tax   decimal.Decimal
	Total decimal.Decimal
}

// Recompute fills in each line's derived amounts and returns the document totals.
func Recompute(calc *derive.Calculator, lines []Line) derive.LinesResult {
	in := make([]derive.LineInput, len(lines))
	for i, l := range lines {
		in[i] = derive.LineInput{Rate: l.Rate, Quantity: l.Quantity, TaxPercent: l.TaxPercent}
	}

	res := calc.Lines(in)

	for i := range lines {
		lines[i].Net = res.Lines[i].Net
		lines[i].Tax = res.Lines[i].Tax
		lines[i].Total = res.Lines[i].Total
	}

	return res
}

var hundred = decimal.NewFromInt(100)

// Validate records problems under "lines[i].field" keys.
func Validate(v *apperr.ValidationError, lines []Line) {
	if len(lines) == 0 {
		v.Add("lines", "must have at least one line")
		return
	}

	for i, l := range lines {
		if l.ItemID == nil && l.Description == "" {
			v.Add(fmt.Sprintf("lines[%d].description", i), "is required when no item is given")
		}

		if l.Rate != nil && l.Rate.IsNegative() {
			v.Add(fmt.Sprintf("lines[%d].rate", i), "must not be negative")
		}

		if l.Quantity != nil && l.Quantity.IsNegative() {
			v.Add(fmt.Sprintf("lines[%d].quantity", i), "must not be negative")
		}

		if l.TaxPercent != nil && (l.TaxPercent.IsNegative() || l.TaxPercent.GreaterThan(hundred)) {
			v.Add(fmt.Sprintf("lines[%d].tax_percent", i), "must be between 0 and 100")
		}
	}
}
