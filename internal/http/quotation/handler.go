package quotation

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/respond"
	"github.com/MrJamesThe3rd/liftdesk/internal/quotation"
)

type Handler struct {
	svc *quotation.Service
}

func NewHandler(svc *quotation.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/by-reference/{ref}", h.getByReference)
	r.Get("/{id}", h.get)
	r.Post("/{id}/accept", h.accept)
}

type quotationRequest struct {
	CustomerID string                `json:"customer_id" validate:"required,uuid"`
	QuoteDate  string                `json:"quote_date" validate:"omitempty,datetime=2006-01-02"`
	ValidUntil string                `json:"valid_until" validate:"omitempty,datetime=2006-01-02"`
	Lines      []respond.LineRequest `json:"lines" validate:"required,min=1,dive"`
}

type quotationResponse struct {
	ID          uuid.UUID              `json:"id"`
	ReferenceID string                 `json:"reference_id"`
	CustomerID  uuid.UUID              `json:"customer_id"`
	QuoteDate   string                 `json:"quote_date"`
	ValidUntil  string                 `json:"valid_until,omitempty"`
	Lines       []respond.LineResponse `json:"lines,omitempty"`
	Subtotal    string                 `json:"subtotal"`
	TaxTotal    string                 `json:"tax_total"`
	Total       string                 `json:"total"`
	Status      string                 `json:"status"`
	AcceptedAt  *time.Time             `json:"accepted_at"`
	Defaulted   []string               `json:"defaulted_inputs,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

func toResponse(q *quotation.Quotation) quotationResponse {
	return quotationResponse{
		ID:          q.ID,
		ReferenceID: q.ReferenceID,
		CustomerID:  q.CustomerID,
		QuoteDate:   respond.FormatDate(q.QuoteDate),
		ValidUntil:  respond.FormatDate(q.ValidUntil),
		Lines:       respond.LineResponses(q.Lines),
		Subtotal:    respond.Money(q.Subtotal),
		TaxTotal:    respond.Money(q.TaxTotal),
		Total:       respond.Money(q.Total),
		Status:      string(q.Status),
		AcceptedAt:  q.AcceptedAt,
		Defaulted:   q.Defaulted,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req quotationRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	customerID, _ := uuid.Parse(req.CustomerID)

	q, err := h.svc.Create(r.Context(), quotation.Params{
		CustomerID: customerID,
		QuoteDate:  respond.Date(req.QuoteDate),
		ValidUntil: respond.Date(req.ValidUntil),
		Lines:      respond.Lines(req.Lines),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(q))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	customerID, err := respond.UUIDQuery(r, "customer_id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	filter := quotation.ListFilter{CustomerID: customerID}

	if s := r.URL.Query().Get("status"); s != "" {
		status := derive.QuoteStatus(s)
		if status != derive.QuoteOpen && status != derive.QuoteExpired && status != derive.QuoteAccepted {
			respond.Error(w, r, apperr.Invalid("status", "must be one of: open expired accepted"))
			return
		}

		filter.Status = &status
	}

	qs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]quotationResponse, len(qs))
	for i, q := range qs {
		resp[i] = toResponse(q)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	q, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(q))
}

func (h *Handler) getByReference(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.GetByReference(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(q))
}

func (h *Handler) accept(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	q, err := h.svc.Accept(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(q))
}
