package sweep

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/liftdesk/internal/http/respond"
	"github.com/MrJamesThe3rd/liftdesk/internal/sweep"
)

type Handler struct {
	svc *sweep.Service
}

func NewHandler(svc *sweep.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.run)
}

// run sweeps now. 202 means another runner was already sweeping.
func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.RunOnce(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	status := http.StatusOK
	if summary.Skipped {
		status = http.StatusAccepted
	}

	respond.JSON(w, status, summary)
}
