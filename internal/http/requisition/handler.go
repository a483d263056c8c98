package requisition

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/liftdesk/internal/http/respond"
	"github.com/MrJamesThe3rd/liftdesk/internal/requisition"
)

type Handler struct {
	svc *requisition.Service
}

func NewHandler(svc *requisition.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/by-reference/{ref}", h.getByReference)
	r.Get("/{id}", h.get)
}

type lineRequest struct {
	ItemID   string          `json:"item_id" validate:"required,uuid"`
	Quantity decimal.Decimal `json:"quantity"`
}

type requisitionRequest struct {
	CustomerID  string        `json:"customer_id" validate:"required,uuid"`
	AMCID       string        `json:"amc_id" validate:"omitempty,uuid"`
	RequestedOn string        `json:"requested_on" validate:"omitempty,datetime=2006-01-02"`
	Note        string        `json:"note" validate:"max=1000"`
	Lines       []lineRequest `json:"lines" validate:"required,min=1,dive"`
}

type lineResponse struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity string    `json:"quantity"`
}

type requisitionResponse struct {
	ID          uuid.UUID      `json:"id"`
	ReferenceID string         `json:"reference_id"`
	CustomerID  uuid.UUID      `json:"customer_id"`
	AMCID       *uuid.UUID     `json:"amc_id"`
	RequestedOn string         `json:"requested_on"`
	Note        string         `json:"note,omitempty"`
	Lines       []lineResponse `json:"lines,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func toResponse(r *requisition.Requisition) requisitionResponse {
	lines := make([]lineResponse, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = lineResponse{ItemID: l.ItemID, Quantity: l.Quantity.String()}
	}

	return requisitionResponse{
		ID:          r.ID,
		ReferenceID: r.ReferenceID,
		CustomerID:  r.CustomerID,
		AMCID:       r.AMCID,
		RequestedOn: respond.FormatDate(r.RequestedOn),
		Note:        r.Note,
		Lines:       lines,
		CreatedAt:   r.CreatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req requisitionRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	params := requisition.Params{
		RequestedOn: respond.Date(req.RequestedOn),
		Note:        req.Note,
		Lines:       make([]requisition.Line, len(req.Lines)),
	}

	params.CustomerID, _ = uuid.Parse(req.CustomerID)

	if id, err := uuid.Parse(req.AMCID); err == nil {
		params.AMCID = &id
	}

	for i, l := range req.Lines {
		itemID, _ := uuid.Parse(l.ItemID)
		params.Lines[i] = requisition.Line{ItemID: itemID, Quantity: l.Quantity}
	}

	created, err := h.svc.Create(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(created))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var (
		filter requisition.ListFilter
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

	rs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]requisitionResponse, len(rs))
	for i, req := range rs {
		resp[i] = toResponse(req)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	req, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(req))
}

func (h *Handler) getByReference(w http.ResponseWriter, r *http.Request) {
	req, err := h.svc.GetByReference(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(req))
}
