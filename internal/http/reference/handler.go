package reference

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/respond"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

type Service interface {
	Peek(ctx context.Context, entity reference.Entity) (string, error)
	Counters(ctx context.Context) (map[reference.Entity]int64, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{entity}/next", h.next)
}

type schemeResponse struct {
	Entity   reference.Entity `json:"entity"`
	Prefix   string           `json:"prefix"`
	PadWidth int              `json:"pad_width"`
	Example  string           `json:"example"`
	// Last is the most recently allocated reference, absent until the first allocation.
	Last string `json:"last,omitempty"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	counters, err := h.svc.Counters(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	entities := reference.Entities()

	resp := make([]schemeResponse, 0, len(entities))
	for _, e := range entities {
		s, _ := reference.SchemeFor(e)

		item := schemeResponse{Entity: e, Prefix: s.Prefix, PadWidth: s.PadWidth, Example: s.Format(s.Base + 1)}
		if n, ok := counters[e]; ok {
			item.Last = s.Format(n)
		}

		resp = append(resp, item)
	}

	respond.JSON(w, http.StatusOK, resp)
}

type nextResponse struct {
	Entity reference.Entity `json:"entity"`
	Next   string           `json:"next"`
}

// next previews the reference the next create would receive. It is not reserved.
func (h *Handler) next(w http.ResponseWriter, r *http.Request) {
	entity := reference.Entity(chi.URLParam(r, "entity"))

	if _, err := reference.SchemeFor(entity); err != nil {
		respond.Error(w, r, apperr.NotFound("entity", string(entity)))
		return
	}

	next, err := h.svc.Peek(r.Context(), entity)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, nextResponse{Entity: entity, Next: next})
}
