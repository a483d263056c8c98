package item

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/liftdesk/internal/http/respond"
	"github.com/MrJamesThe3rd/liftdesk/internal/item"
)

type Handler struct {
	svc *item.Service
}

func NewHandler(svc *item.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/by-code/{code}", h.getByCode)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
}

type itemRequest struct {
	Code       string           `json:"code" validate:"required,max=64"`
	Name       string           `json:"name" validate:"required,max=200"`
	Unit       string           `json:"unit" validate:"omitempty,max=16"`
	Rate       *decimal.Decimal `json:"rate"`
	TaxPercent *decimal.Decimal `json:"tax_percent"`
}

func (req itemRequest) params() item.Params {
	return item.Params{
		Code:       req.Code,
		Name:       req.Name,
		Unit:       req.Unit,
		Rate:       req.Rate,
		TaxPercent: req.TaxPercent,
	}
}

type itemResponse struct {
	ID          uuid.UUID `json:"id"`
	ReferenceID string    `json:"reference_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Unit        string    `json:"unit"`
	Rate        *string   `json:"rate"`
	TaxPercent  *string   `json:"tax_percent"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toResponse(it *item.Item) itemResponse {
	return itemResponse{
		ID:          it.ID,
		ReferenceID: it.ReferenceID,
		Code:        it.Code,
		Name:        it.Name,
		Unit:        it.Unit,
		Rate:        respond.OptionalDecimal(it.Rate),
		TaxPercent:  respond.OptionalDecimal(it.TaxPercent),
		UpdatedAt:   it.UpdatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	it, err := h.svc.Create(r.Context(), req.params())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(it))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), item.ListFilter{Search: r.URL.Query().Get("q")})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]itemResponse, len(items))
	for i, it := range items {
		resp[i] = toResponse(it)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	it, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(it))
}

func (h *Handler) getByCode(w http.ResponseWriter, r *http.Request) {
	it, err := h.svc.GetByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(it))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := respond.IDParam(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req itemRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	it, err := h.svc.Update(r.Context(), id, req.params())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(it))
}
