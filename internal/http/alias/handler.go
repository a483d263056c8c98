package alias

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/alias"
	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/respond"
)

type Handler struct {
	svc *alias.Service
}

func NewHandler(svc *alias.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/suggest", h.suggest)
	r.Post("/", h.learn)
}

type suggestResponse struct {
	Raw      string `json:"raw"`
	ItemCode string `json:"item_code"`
	Matched  bool   `json:"matched"`
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("raw")
	if raw == "" {
		respond.Error(w, r, apperr.Invalid("raw", "is required"))
		return
	}

	code, err := h.svc.Suggest(r.Context(), raw)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, suggestResponse{Raw: raw, ItemCode: code, Matched: code != ""})
}

type learnRequest struct {
	Pattern  string `json:"pattern" validate:"required,max=200"`
	ItemCode string `json:"item_code" validate:"required,max=64"`
}

type aliasResponse struct {
	ID        uuid.UUID `json:"id"`
	Pattern   string    `json:"pattern"`
	ItemCode  string    `json:"item_code"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(a *alias.Alias) aliasResponse {
	return aliasResponse{ID: a.ID, Pattern: a.Pattern, ItemCode: a.ItemCode, CreatedAt: a.CreatedAt}
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	var req learnRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	a, err := h.svc.Learn(r.Context(), req.Pattern, req.ItemCode)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(a))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	aliases, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]aliasResponse, len(aliases))
	for i, a := range aliases {
		resp[i] = toResponse(a)
	}

	respond.JSON(w, http.StatusOK, resp)
}
