package complaint

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/complaint"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/respond"
)

type Handler struct {
	svc *complaint.Service
}

func NewHandler(svc *complaint.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/by-reference/{ref}", h.getByReference)
	r.Get("/{id}", h.get)
	r.Put("/{id}/status", h.updateStatus)
}

type complaintRequest struct {
	CustomerID  string `json:"customer_id" validate:"required,uuid"`
	AMCID       string `json:"amc_id" validate:"omitempty,uuid"`
	Subject     string `json:"subject" validate:"required,max=200"`
	Description string `json:"description" validate:"max=4000"`
	ReportedOn  string `json:"reported_on" validate:"omitempty,datetime=2006-01-02"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress resolved"`
}

type complaintResponse struct {
	ID          uuid.UUID  `json:"id"`
	ReferenceID string     `json:"reference_id"`
	CustomerID  uuid.UUID  `json:"customer_id"`
	AMCID       *uuid.UUID `json:"amc_id"`
	Subject     string     `json:"subject"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	ReportedOn  string     `json:"reported_on"`
	ResolvedOn  string     `json:"resolved_on,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toResponse(c *complaint.Complaint) complaintResponse {
	return complaintResponse{
		ID:          c.ID,
		ReferenceID: c.ReferenceID,
		CustomerID:  c.CustomerID,
		AMCID:       c.AMCID,
		Subject:     c.Subject,
		Description: c.Description,
		Status:      string(c.Status),
		ReportedOn:  respond.FormatDate(c.ReportedOn),
		ResolvedOn:  respond.FormatDate(c.ResolvedOn),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req complaintRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	params := complaint.Params{
		Subject:     req.Subject,
		Description: req.Description,
		ReportedOn:  respond.Date(req.ReportedOn),
	}

	params.CustomerID, _ = uuid.Parse(req.CustomerID)

	if id, err := uuid.Parse(req.AMCID); err == nil {
		params.AMCID = &id
	}

	c, err := h.svc.Create(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(c))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var (
		filter complaint.ListFilter
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

	if s := r.URL.Query().Get("status"); s != "" {
		status := complaint.Status(s)
		if !status.IsValid() {
			respond.Error(w, r, apperr.Invalid("status", "must be one of: open in_progress resolved"))
			return
		}

		filter.Status = &status
	}

	cs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]complaintResponse, len(cs))
	for i, c := range cs {
		resp[i] = toResponse(c)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) getByReference(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetByReference(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req statusRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.UpdateStatus(r.Context(), id, complaint.Status(req.Status))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}
