package payment

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/respond"
	"github.com/MrJamesThe3rd/liftdesk/internal/payment"
)

type Handler struct {
	svc *payment.Service
}

func NewHandler(svc *payment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Post("/resync", h.resync)
	r.Get("/", h.list)
	r.Get("/by-reference/{ref}", h.getByReference)
	r.Get("/{id}", h.get)
}

type paymentRequest struct {
	CustomerID string          `json:"customer_id" validate:"required,uuid"`
	TargetKind string          `json:"target_kind" validate:"required,oneof=invoice amc"`
	TargetID   string          `json:"target_id" validate:"required,uuid"`
	Amount     decimal.Decimal `json:"amount"`
	ReceivedOn string          `json:"received_on" validate:"omitempty,datetime=2006-01-02"`
	Mode       string          `json:"mode" validate:"required,oneof=cash cheque bank_transfer upi"`
	Note       string          `json:"note" validate:"max=500"`
}

type paymentResponse struct {
	ID          uuid.UUID `json:"id"`
	ReferenceID string    `json:"reference_id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	TargetKind  string    `json:"target_kind"`
	TargetID    uuid.UUID `json:"target_id"`
	Amount      string    `json:"amount"`
	ReceivedOn  string    `json:"received_on"`
	Mode        string    `json:"mode"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toResponse(p *payment.Payment) paymentResponse {
	return paymentResponse{
		ID:          p.ID,
		ReferenceID: p.ReferenceID,
		CustomerID:  p.CustomerID,
		TargetKind:  string(p.TargetKind),
		TargetID:    p.TargetID,
		Amount:      respond.Money(p.Amount),
		ReceivedOn:  respond.FormatDate(p.ReceivedOn),
		Mode:        string(p.Mode),
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	customerID, _ := uuid.Parse(req.CustomerID)
	targetID, _ := uuid.Parse(req.TargetID)

	p, err := h.svc.Create(r.Context(), payment.Params{
		CustomerID: customerID,
		TargetKind: payment.TargetKind(req.TargetKind),
		TargetID:   targetID,
		Amount:     req.Amount,
		ReceivedOn: respond.Date(req.ReceivedOn),
		Mode:       payment.Mode(req.Mode),
		Note:       req.Note,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(p))
}

type resyncRequest struct {
	TargetKind string `json:"target_kind" validate:"required,oneof=invoice amc"`
	TargetID   string `json:"target_id" validate:"required,uuid"`
}

// resync recomputes a target's paid total and amount due from the ledger.
func (h *Handler) resync(w http.ResponseWriter, r *http.Request) {
	var req resyncRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	targetID, _ := uuid.Parse(req.TargetID)

	if err := h.svc.Resync(r.Context(), payment.TargetKind(req.TargetKind), targetID); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var (
		filter payment.ListFilter
		err    error
	)

	if filter.CustomerID, err = respond.UUIDQuery(r, "customer_id"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if filter.TargetID, err = respond.UUIDQuery(r, "target_id"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if s := r.URL.Query().Get("target_kind"); s != "" {
		kind := payment.TargetKind(s)
		if !kind.IsValid() {
			respond.Error(w, r, apperr.Invalid("target_kind", "must be one of: invoice amc"))
			return
		}

		filter.TargetKind = &kind
	}

	ps, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]paymentResponse, len(ps))
	for i, p := range ps {
		resp[i] = toResponse(p)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) getByReference(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetByReference(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
}
