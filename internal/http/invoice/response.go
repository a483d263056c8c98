package invoice

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/http/respond"
	"github.com/MrJamesThe3rd/liftdesk/internal/invoice"
)

type invoiceResponse struct {
	ID          uuid.UUID              `json:"id"`
	ReferenceID string                 `json:"reference_id"`
	CustomerID  uuid.UUID              `json:"customer_id"`
	AMCID       *uuid.UUID             `json:"amc_id"`
	IssueDate   string                 `json:"issue_date"`
	DueDate     string                 `json:"due_date,omitempty"`
	Lines       []respond.LineResponse `json:"lines,omitempty"`
	Subtotal    string                 `json:"subtotal"`
	TaxTotal    string                 `json:"tax_total"`
	Total       string                 `json:"total"`
	TotalPaid   string                 `json:"total_paid"`
	AmountDue   string                 `json:"amount_due"`
	Credit      string                 `json:"credit"`
	Status      string                 `json:"status"`
	Defaulted   []string               `json:"defaulted_inputs,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:          inv.ID,
		ReferenceID: inv.ReferenceID,
		CustomerID:  inv.CustomerID,
		AMCID:       inv.AMCID,
		IssueDate:   respond.FormatDate(inv.IssueDate),
		DueDate:     respond.FormatDate(inv.DueDate),
		Lines:       respond.LineResponses(inv.Lines),
		Subtotal:    respond.Money(inv.Subtotal),
		TaxTotal:    respond.Money(inv.TaxTotal),
		Total:       respond.Money(inv.Total),
		TotalPaid:   respond.Money(inv.TotalPaid),
		AmountDue:   respond.Money(inv.AmountDue),
		Credit:      respond.Money(inv.Credit),
		Status:      string(inv.Status),
		Defaulted:   inv.Defaulted,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

func toResponseList(invs []*invoice.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invs))
	for i, inv := range invs {
		resp[i] = toResponse(inv)
	}

	return resp
}
