package invoice

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/respond"
	"github.com/MrJamesThe3rd/liftdesk/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/by-reference/{ref}", h.getByReference)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
}

type invoiceRequest struct {
	CustomerID string                `json:"customer_id" validate:"required,uuid"`
	AMCID      string                `json:"amc_id" validate:"omitempty,uuid"`
	IssueDate  string                `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	DueDate    string                `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Lines      []respond.LineRequest `json:"lines" validate:"required,min=1,dive"`
}

func (req invoiceRequest) params() invoice.Params {
	p := invoice.Params{
		IssueDate: respond.Date(req.IssueDate),
		DueDate:   respond.Date(req.DueDate),
		Lines:     respond.Lines(req.Lines),
	}

	p.CustomerID, _ = uuid.Parse(req.CustomerID)

	if id, err := uuid.Parse(req.AMCID); err == nil {
		p.AMCID = &id
	}

	return p
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req invoiceRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	inv, err := h.svc.Create(r.Context(), req.params())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(inv))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var (
		filter invoice.ListFilter
		err    error
	)

	if filter.CustomerID, err = respond.UUIDQuery(r, "customer_id"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if filter.AMCID, err = respond.UUIDQuery(r, "amc_id"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if filter.From, err = respond.DateQuery(r, "from"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if filter.To, err = respond.DateQuery(r, "to"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := derive.PaymentStatus(s)

		switch status {
		case derive.PaymentOpen, derive.PaymentPartiallyPaid, derive.PaymentPaid, derive.PaymentOverdue:
			filter.Status = &status
		default:
			respond.Error(w, r, apperr.Invalid("status", "must be one of: open partially_paid paid overdue"))
			return
		}
	}

	invs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(invs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) getByReference(w http.ResponseWriter, r *http.Request) {
	inv, err := h.svc.GetByReference(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req invoiceRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	inv, err := h.svc.Update(r.Context(), id, req.params())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inv))
}
