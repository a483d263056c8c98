package invoice_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
	"github.com/MrJamesThe3rd/liftdesk/internal/database"
	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
	invoiceHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/invoice"
	"github.com/MrJamesThe3rd/liftdesk/internal/invoice"
	"github.com/MrJamesThe3rd/liftdesk/internal/money"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

func newServer(t *testing.T, setup func(repo *invoice.MockRepository, refs *reference.MockAllocator)) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := invoice.NewMockRepository(ctrl)
	refs := reference.NewMockAllocator(ctrl)

	if setup != nil {
		setup(repo, refs)
	}

	calc := derive.NewCalculator(money.DefaultRounder(), derive.DueClamp)
	cal := clock.Calendar{Clock: clock.Fixed(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)), Location: time.UTC}

	r := chi.NewRouter()
	r.Route("/invoices", invoiceHandler.NewHandler(invoice.NewService(repo, refs, calc, cal)).Routes)

	return r
}

func TestHandler(t *testing.T) {
	customerID := uuid.NewString()
	id := uuid.New()

	type testCase struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(repo *invoice.MockRepository, refs *reference.MockAllocator)
		wantStatus int
		wantBody   []string
	}

	tests := []testCase{
		{
			name:   "CreateComputesTotals",
			method: http.MethodPost,
			path:   "/invoices",
			body: `{"customer_id":"` + customerID + `","due_date":"2025-06-30",` +
				`"lines":[{"description":"Door sensor","rate":"100","quantity":"2","tax_percent":"18"}]}`,
			setup: func(repo *invoice.MockRepository, refs *reference.MockAllocator) {
				refs.EXPECT().Allocate(gomock.Any(), reference.EntityInvoice).Return("INV010", nil)
				repo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, inv *invoice.Invoice) error {
						inv.ID = uuid.New()
						return nil
					})
			},
			wantStatus: http.StatusCreated,
			wantBody: []string{
				`"reference_id":"INV010"`, `"issue_date":"2025-06-15"`, `"subtotal":"200.00"`,
				`"tax_total":"36.00"`, `"total":"236.00"`, `"status":"open"`,
			},
		},
		{
			name:   "CreateMissingRateIsDefaulted",
			method: http.MethodPost,
			path:   "/invoices",
			body:   `{"customer_id":"` + customerID + `","lines":[{"description":"Callout","quantity":"1"}]}`,
			setup: func(repo *invoice.MockRepository, refs *reference.MockAllocator) {
				refs.EXPECT().Allocate(gomock.Any(), reference.EntityInvoice).Return("INV011", nil)
				repo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   []string{`"total":"0.00"`, `"defaulted_inputs"`, `"rate":null`},
		},
		{
			name:       "CreateNeedsLines",
			method:     http.MethodPost,
			path:       "/invoices",
			body:       `{"customer_id":"` + customerID + `","lines":[]}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"lines"`},
		},
		{
			name:   "CreateDueBeforeIssue",
			method: http.MethodPost,
			path:   "/invoices",
			body: `{"customer_id":"` + customerID + `","issue_date":"2025-06-10","due_date":"2025-06-01",` +
				`"lines":[{"description":"Rope","rate":"10"}]}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"due_date":"must not be before issue_date"`},
		},
		{
			name:   "UpdateKeepsPaidTotal",
			method: http.MethodPut,
			path:   "/invoices/" + id.String(),
			body:   `{"customer_id":"` + customerID + `","lines":[{"description":"Brake pads","rate":"500","quantity":"1"}]}`,
			setup: func(repo *invoice.MockRepository, _ *reference.MockAllocator) {
				repo.EXPECT().MutateInvoice(gomock.Any(), id, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, fn func(database.Querier, *invoice.Invoice) error) (*invoice.Invoice, error) {
						inv := &invoice.Invoice{ID: id, ReferenceID: "INV003", TotalPaid: decimal.NewFromInt(200)}
						if err := fn(nil, inv); err != nil {
							return nil, err
						}

						return inv, nil
					})
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"total_paid":"200.00"`, `"amount_due":"300.00"`, `"status":"partially_paid"`},
		},
		{
			name:   "UpdateMissing",
			method: http.MethodPut,
			path:   "/invoices/" + id.String(),
			body:   `{"customer_id":"` + customerID + `","lines":[{"description":"Brake pads","rate":"500"}]}`,
			setup: func(repo *invoice.MockRepository, _ *reference.MockAllocator) {
				repo.EXPECT().MutateInvoice(gomock.Any(), id, gomock.Any()).Return(nil, apperr.NotFound("invoice", id.String()))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "ListByStatus",
			method: http.MethodGet,
			path:   "/invoices?status=overdue&from=2025-04-01",
			setup: func(repo *invoice.MockRepository, _ *reference.MockAllocator) {
				repo.EXPECT().ListInvoices(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f invoice.ListFilter) ([]*invoice.Invoice, error) {
						assert.Equal(t, derive.PaymentOverdue, *f.Status)
						assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), *f.From)

						return []*invoice.Invoice{{ReferenceID: "INV001", Status: derive.PaymentOverdue}}, nil
					})
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"reference_id":"INV001"`},
		},
		{
			name:       "ListUnknownStatus",
			method:     http.MethodGet,
			path:       "/invoices?status=void",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "ListBadDate",
			method:     http.MethodGet,
			path:       "/invoices?to=30-06-2025",
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"to"`},
		},
		{
			name:   "GetByReference",
			method: http.MethodGet,
			path:   "/invoices/by-reference/INV007",
			setup: func(repo *invoice.MockRepository, _ *reference.MockAllocator) {
				repo.EXPECT().GetInvoiceByReference(gomock.Any(), "INV007").
					Return(&invoice.Invoice{ID: id, ReferenceID: "INV007", Status: derive.PaymentPaid}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"reference_id":"INV007"`, `"status":"paid"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.setup)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}
