package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/liftdesk/internal/http/alias"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/amc"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/bulk"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/complaint"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/customer"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/export"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/invoice"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/item"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/payment"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/quotation"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/reference"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/requisition"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/servicelog"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/sweep"
)

type Handlers struct {
	Customers    *customer.Handler
	History      *servicelog.Handler
	Items        *item.Handler
	AMCs         *amc.Handler
	Invoices     *invoice.Handler
	Quotations   *quotation.Handler
	Requisitions *requisition.Handler
	Payments     *payment.Handler
	Complaints   *complaint.Handler
	References   *reference.Handler
	Import       *bulk.Handler
	Aliases      *alias.Handler
	Export       *export.Handler
	Sweep        *sweep.Handler
}

type Options struct {
	AllowedOrigins []string
	Timeout        time.Duration
}

func jsonOnly(r chi.Router) {
	r.Use(middleware.AllowContentType("application/json"))
}

func New(h Handlers, opts Options) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			jsonOnly(r)
			h.Customers.Routes(r)
			r.Get("/{id}/history", h.History.History)
		})

		r.Route("/items", func(r chi.Router) {
			jsonOnly(r)
			h.Items.Routes(r)
		})

		r.Route("/amcs", func(r chi.Router) {
			jsonOnly(r)
			h.AMCs.Routes(r)
		})

		r.Route("/invoices", func(r chi.Router) {
			jsonOnly(r)
			h.Invoices.Routes(r)
		})

		r.Route("/quotations", func(r chi.Router) {
			jsonOnly(r)
			h.Quotations.Routes(r)
		})

		r.Route("/requisitions", func(r chi.Router) {
			jsonOnly(r)
			h.Requisitions.Routes(r)
		})

		r.Route("/payments", func(r chi.Router) {
			jsonOnly(r)
			h.Payments.Routes(r)
		})

		r.Route("/complaints", func(r chi.Router) {
			jsonOnly(r)
			h.Complaints.Routes(r)
		})

		r.Route("/aliases", func(r chi.Router) {
			jsonOnly(r)
			h.Aliases.Routes(r)
		})

		r.Route("/references", h.References.Routes)
		r.Route("/import", h.Import.Routes)
		r.Route("/export", h.Export.Routes)
		r.Route("/sweep", h.Sweep.Routes)
	})

	return router
}
