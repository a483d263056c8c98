package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/liftdesk/internal/amc"
	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
	"github.com/MrJamesThe3rd/liftdesk/internal/export"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/respond"
	"github.com/MrJamesThe3rd/liftdesk/internal/invoice"
)

type Handler struct {
	svc *export.Service
	cal clock.Calendar
}

func NewHandler(svc *export.Service, cal clock.Calendar) *Handler {
	return &Handler{svc: svc, cal: cal}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/amcs.xlsx", h.amcs)
	r.Get("/invoices.xlsx", h.invoices)
}

func (h *Handler) amcs(w http.ResponseWriter, r *http.Request) {
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

	var buf bytes.Buffer
	if err := h.svc.AMCRegister(r.Context(), filter, &buf); err != nil {
		respond.Error(w, r, err)
		return
	}

	h.download(w, "amc", &buf)
}

func (h *Handler) invoices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		filter invoice.ListFilter
		err    error
	)

	if filter.CustomerID, err = respond.UUIDQuery(r, "customer_id"); err != nil {
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

	if s := q.Get("status"); s != "" {
		status := derive.PaymentStatus(s)

		switch status {
		case derive.PaymentOpen, derive.PaymentPartiallyPaid, derive.PaymentPaid, derive.PaymentOverdue:
			filter.Status = &status
		default:
			respond.Error(w, r, apperr.Invalid("status", "must be one of: open partially_paid paid overdue"))
			return
		}
	}

	var buf bytes.Buffer
	if err := h.svc.InvoiceRegister(r.Context(), filter, &buf); err != nil {
		respond.Error(w, r, err)
		return
	}

	h.download(w, "invoice", &buf)
}

// download sends a fully rendered workbook, so a failed export never leaves a truncated file.
func (h *Handler) download(w http.ResponseWriter, register string, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(register, h.cal.Today())))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write export", "register", register, "error", err)
	}
}
