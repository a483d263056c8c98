package amc

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/amc"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/respond"
)

type amcResponse struct {
	ID               uuid.UUID `json:"id"`
	ReferenceID      string    `json:"reference_id"`
	CustomerID       uuid.UUID `json:"customer_id"`
	LiftDescription  string    `json:"lift_description,omitempty"`
	StartDate        string    `json:"start_date,omitempty"`
	EndDate          string    `json:"end_date,omitempty"`
	Price            *string   `json:"price"`
	UnitCount        *string   `json:"unit_count"`
	GSTPercent       *string   `json:"gst_percent"`
	GenerateContract bool      `json:"generate_contract"`
	Total            string    `json:"total"`
	TotalPaid        string    `json:"total_paid"`
	AmountDue        string    `json:"amount_due"`
	Credit           string    `json:"credit"`
	Status           string    `json:"status"`
	DerivedStatus    string    `json:"derived_status"`
	Override         *string   `json:"status_override"`
	OverrideReason   string    `json:"override_reason,omitempty"`
	Defaulted        []string  `json:"defaulted_inputs,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toResponse(a *amc.AMC) amcResponse {
	resp := amcResponse{
		ID:               a.ID,
		ReferenceID:      a.ReferenceID,
		CustomerID:       a.CustomerID,
		LiftDescription:  a.LiftDescription,
		StartDate:        respond.FormatDate(a.StartDate),
		EndDate:          respond.FormatDate(a.EndDate),
		Price:            respond.OptionalDecimal(a.Price),
		UnitCount:        respond.OptionalDecimal(a.UnitCount),
		GSTPercent:       respond.OptionalDecimal(a.GSTPercent),
		GenerateContract: a.GenerateContract,
		Total:            respond.Money(a.Total),
		TotalPaid:        respond.Money(a.TotalPaid),
		AmountDue:        respond.Money(a.AmountDue),
		Credit:           respond.Money(a.Credit),
		Status:           string(a.Status()),
		DerivedStatus:    string(a.DerivedStatus),
		OverrideReason:   a.OverrideReason,
		Defaulted:        a.Defaulted,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}

	if a.StatusOverride != nil {
		s := string(*a.StatusOverride)
		resp.Override = &s
	}

	return resp
}

func toResponseList(as []*amc.AMC) []amcResponse {
	resp := make([]amcResponse, len(as))
	for i, a := range as {
		resp[i] = toResponse(a)
	}

	return resp
}

// parseUUID is only called on values the validator has accepted.
func parseUUID(s string) uuid.UUID {
	id, _ := uuid.Parse(s)
	return id
}
