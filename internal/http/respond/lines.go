package respond

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/liftdesk/internal/lineitem"
)

// LineRequest is the JSON shape of a priced line on invoices and quotations.
type LineRequest struct {
	ItemID      string           `json:"item_id" validate:"omitempty,uuid"`
	Description string           `json:"description" validate:"max=500"`
	Rate        *decimal.Decimal `json:"rate"`
	Quantity    *decimal.Decimal `json:"quantity"`
	TaxPercent  *decimal.Decimal `json:"tax_percent"`
}

func Lines(reqs []LineRequest) []lineitem.Line {
	out := make([]lineitem.Line, len(reqs))
	for i, req := range reqs {
		out[i] = lineitem.Line{
			Description: req.Description,
			Rate:        req.Rate,
			Quantity:    req.Quantity,
			TaxPercent:  req.TaxPercent,
		}

		if id, err := uuid.Parse(req.ItemID); err == nil {
			out[i].ItemID = &id
		}
	}

	return out
}

type LineResponse struct {
	ItemID      *uuid.UUID `json:"item_id"`
	Description string     `json:"description"`
	Rate        *string    `json:"rate"`
	Quantity    *string    `json:"quantity"`
	TaxPercent  *string    `json:"tax_percent"`
	Net         string     `json:"net"`
	Tax         string     `json:"tax"`
	Total       string     `json:"total"`
}

func LineResponses(lines []lineitem.Line) []LineResponse {
	out := make([]LineResponse, len(lines))
	for i, l := range lines {
		out[i] = LineResponse{
			ItemID:      l.ItemID,
			Description: l.Description,
			Rate:        OptionalDecimal(l.Rate),
			Quantity:    OptionalDecimal(l.Quantity),
			TaxPercent:  OptionalDecimal(l.TaxPercent),
			Net:         Money(l.Net),
			Tax:         Money(l.Tax),
			Total:       Money(l.Total),
		}
	}

	return out
}
