package bulk

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/bulk"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/respond"
)

type Handler struct {
	svc      *bulk.Service
	maxBytes int64
}

func NewHandler(svc *bulk.Service, maxBytes int64) *Handler {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}

	return &Handler{svc: svc, maxBytes: maxBytes}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.kinds)
	r.Post("/{kind}", h.importFile)
}

func (h *Handler) kinds(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, bulk.Kinds())
}

// importFile answers 200 with the row report even when some rows failed;
// only an unusable upload is an error response.
func (h *Handler) importFile(w http.ResponseWriter, r *http.Request) {
	kind, err := bulk.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		respond.Error(w, r, apperr.Invalid("file", "failed to parse form: "+err.Error()))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, r, apperr.Invalid("file", "is required"))
		return
	}
	defer file.Close()

	report, err := h.svc.Import(r.Context(), kind, header.Filename, file)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, report)
}
