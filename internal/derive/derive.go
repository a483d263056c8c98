// Package derive recomputes stored totals, dues and statuses from a record's current inputs.
// Every function here is pure: the same inputs always give the same outputs.
package derive

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/liftdesk/internal/money"
)

// DuePolicy decides what happens to the amount due when a record is overpaid.
type DuePolicy string

const (
	// DueClamp keeps the amount due at zero or above and reports the overpayment as credit.
	DueClamp DuePolicy = "clamp"
	// DueCredit lets the amount due go negative.
	DueCredit DuePolicy = "credit"
)

func ParseDuePolicy(s string) (DuePolicy, error) {
	switch p := DuePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case DueClamp, DueCredit:
		return p, nil
	}

	return "", fmt.Errorf("unknown amount due policy %q", s)
}

type Calculator struct {
	rounder money.Rounder
	policy  DuePolicy
}

func NewCalculator(rounder money.Rounder, policy DuePolicy) *Calculator {
	if policy == "" {
		policy = DueClamp
	}

	return &Calculator{rounder: rounder, policy: policy}
}

func (c *Calculator) Rounder() money.Rounder { return c.rounder }
func (c *Calculator) Policy() DuePolicy      { return c.policy }

// LineInput is one priced line. Nil fields are treated as zero and reported.
type LineInput struct {
	Rate       *decimal.Decimal
	Quantity   *decimal.Decimal
	TaxPercent *decimal.Decimal
}

type LineResult struct {
	Net       decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
	Defaulted []string
}

// Line computes total = rate * quantity * (1 + tax/100), rounded once at the end.
// Tax is total minus the rounded net so that Net + Tax == Total exactly.
func (c *Calculator) Line(in LineInput) LineResult {
	var defaulted []string

	rate := pick(in.Rate, "rate", &defaulted)
	qty := pick(in.Quantity, "quantity", &defaulted)
	taxPct := pick(in.TaxPercent, "tax_percent", &defaulted)

	gross := rate.Mul(qty)
	total := c.rounder.Round(gross.Mul(decimal.NewFromInt(1).Add(money.Percent(taxPct))))
	net := c.rounder.Round(gross)

	return LineResult{
		Net:       net,
		Tax:       total.Sub(net),
		Total:     total,
		Defaulted: defaulted,
	}
}

type LinesResult struct {
	Lines     []LineResult
	Subtotal  decimal.Decimal
	TaxTotal  decimal.Decimal
	Total     decimal.Decimal
	Defaulted []string
}

// Lines sums already-rounded line results, so document totals always equal
// the sum of the totals printed on each line.
func (c *Calculator) Lines(in []LineInput) LinesResult {
	res := LinesResult{
		Lines:    make([]LineResult, len(in)),
		Subtotal: decimal.Zero,
		TaxTotal: decimal.Zero,
		Total:    decimal.Zero,
	}

	for i, l := range in {
		lr := c.Line(l)
		res.Lines[i] = lr
		res.Subtotal = res.Subtotal.Add(lr.Net)
		res.TaxTotal = res.TaxTotal.Add(lr.Tax)
		res.Total = res.Total.Add(lr.Total)

		for _, f := range lr.Defaulted {
			res.Defaulted = append(res.Defaulted, fmt.Sprintf("lines[%d].%s", i, f))
		}
	}

	return res
}

type ContractInput struct {
	Price            *decimal.Decimal
	Units            *decimal.Decimal
	GSTPercent       *decimal.Decimal
	GenerateContract bool
}

type ContractResult struct {
	Total     decimal.Decimal
	Defaulted []string
}

// Contract computes price * units * (1 + gst/100) when the contract is to be generated,
// and pins the total to zero otherwise.
func (c *Calculator) Contract(in ContractInput) ContractResult {
	if !in.GenerateContract {
		return ContractResult{Total: decimal.Zero}
	}

	var defaulted []string

	price := pick(in.Price, "price", &defaulted)
	units := pick(in.Units, "unit_count", &defaulted)
	gst := pick(in.GSTPercent, "gst_percent", &defaulted)

	total := price.Mul(units).Mul(decimal.NewFromInt(1).Add(money.Percent(gst)))

	return ContractResult{Total: c.rounder.Round(total), Defaulted: defaulted}
}

// Due holds the outstanding amount and any overpayment.
type Due struct {
	AmountDue decimal.Decimal
	Credit    decimal.Decimal
}

func (c *Calculator) Due(total, paid decimal.Decimal) Due {
	raw := c.rounder.Round(total.Sub(paid))

	credit := decimal.Zero
	if raw.IsNegative() {
		credit = raw.Neg()
	}

	if c.policy == DueClamp && raw.IsNegative() {
		return Due{AmountDue: decimal.Zero, Credit: credit}
	}

	return Due{AmountDue: raw, Credit: credit}
}

func pick(d *decimal.Decimal, name string, defaulted *[]string) decimal.Decimal {
	v, missing := money.OrZero(d)
	if missing {
		*defaulted = append(*defaulted, name)
	}

	return v
}
