package servicelog

import (
	"net/http"

	"github.com/MrJamesThe3rd/liftdesk/internal/http/respond"
	"github.com/MrJamesThe3rd/liftdesk/internal/servicelog"
)

type Handler struct {
	svc *servicelog.Service
}

func NewHandler(svc *servicelog.Service) *Handler {
	return &Handler{svc: svc}
}

type entryResponse struct {
	Kind      string `json:"kind"`
	Date      string `json:"date"`
	Reference string `json:"reference_id"`
	Summary   string `json:"summary"`
	Status    string `json:"status"`

	// Contract only.
	EndDate   string `json:"end_date,omitempty"`
	AmountDue string `json:"amount_due,omitempty"`
}

func toResponse(e servicelog.Entry) entryResponse {
	resp := entryResponse{
		Kind:      string(e.Kind()),
		Date:      respond.FormatDate(e.Date()),
		Reference: e.Reference(),
	}

	switch v := e.(type) {
	case servicelog.Regular:
		resp.Summary = v.Complaint.Subject
		resp.Status = string(v.Complaint.Status)
	case servicelog.Contract:
		resp.Summary = v.AMC.LiftDescription
		resp.Status = string(v.AMC.Status())
		resp.EndDate = respond.FormatDate(v.AMC.EndDate)
		resp.AmountDue = respond.Money(v.AMC.AmountDue)
	}

	return resp
}

// History serves GET /customers/{id}/history.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	entries, err := h.svc.List(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toResponse(e)
	}

	respond.JSON(w, http.StatusOK, resp)
}
