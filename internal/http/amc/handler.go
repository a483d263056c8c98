package amc

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/liftdesk/internal/amc"
	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/respond"
)

type Handler struct {
	svc *amc.Service
}

func NewHandler(svc *amc.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/by-reference/{ref}", h.getByReference)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Put("/{id}/override", h.setOverride)
	r.Delete("/{id}/override", h.clearOverride)
}

type amcRequest struct {
	CustomerID       string           `json:"customer_id" validate:"required,uuid"`
	LiftDescription  string           `json:"lift_description" validate:"max=500"`
	StartDate        string           `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate          string           `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Price            *decimal.Decimal `json:"price"`
	UnitCount        *decimal.Decimal `json:"unit_count"`
	GSTPercent       *decimal.Decimal `json:"gst_percent"`
	GenerateContract bool             `json:"generate_contract"`
}

func (req amcRequest) params() amc.Params {
	return amc.Params{
		CustomerID:       parseUUID(req.CustomerID),
		LiftDescription:  req.LiftDescription,
		StartDate:        respond.Date(req.StartDate),
		EndDate:          respond.Date(req.EndDate),
		Price:            req.Price,
		UnitCount:        req.UnitCount,
		GSTPercent:       req.GSTPercent,
		GenerateContract: req.GenerateContract,
	}
}

type overrideRequest struct {
	Status string `json:"status" validate:"required,oneof=active expired on_hold"`
	Reason string `json:"reason" validate:"required,max=500"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req amcRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	a, err := h.svc.Create(r.Context(), req.params())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(a))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	customerID, err := respond.UUIDQuery(r, "customer_id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	filter := amc.ListFilter{CustomerID: customerID}

	if s := r.URL.Query().Get("status"); s != "" {
		status := derive.ContractStatus(s)
		if !status.IsValid() {
			respond.Error(w, r, apperr.Invalid("status", "must be one of: active expired on_hold"))
			return
		}

		filter.Status = &status
	}

	as, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(as))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(a))
}

func (h *Handler) getByReference(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.GetByReference(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(a))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req amcRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	a, err := h.svc.Update(r.Context(), id, req.params())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(a))
}

func (h *Handler) setOverride(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req overrideRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	a, err := h.svc.SetOverride(r.Context(), id, derive.ContractStatus(req.Status), req.Reason)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(a))
}

func (h *Handler) clearOverride(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	a, err := h.svc.ClearOverride(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(a))
}
