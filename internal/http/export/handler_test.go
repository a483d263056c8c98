package export_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/liftdesk/internal/amc"
	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
	"github.com/MrJamesThe3rd/liftdesk/internal/customer"
	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
	"github.com/MrJamesThe3rd/liftdesk/internal/export"
	exportHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/export"
	"github.com/MrJamesThe3rd/liftdesk/internal/invoice"
)

type mocks struct {
	amcs      *export.MockAMCLister
	invoices  *export.MockInvoiceLister
	customers *export.MockCustomerLister
}

func TestHandler(t *testing.T) {
	type testCase struct {
		name         string
		path         string
		setup        func(m mocks)
		wantStatus   int
		wantFilename string
	}

	tests := []testCase{
		{
			name: "InvoiceRegister",
			path: "/export/invoices.xlsx?status=overdue&from=2025-04-01",
			setup: func(m mocks) {
				m.invoices.EXPECT().List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f invoice.ListFilter) ([]*invoice.Invoice, error) {
						assert.Equal(t, derive.PaymentOverdue, *f.Status)
						assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), *f.From)

						return []*invoice.Invoice{{ReferenceID: "INV001", Status: derive.PaymentOverdue}}, nil
					})
				m.customers.EXPECT().List(gomock.Any(), customer.ListFilter{}).Return(nil, nil)
			},
			wantStatus:   http.StatusOK,
			wantFilename: `attachment; filename="invoice-register-20250615.xlsx"`,
		},
		{
			name: "AMCRegister",
			path: "/export/amcs.xlsx?status=on_hold",
			setup: func(m mocks) {
				onHold := derive.ContractOnHold
				m.amcs.EXPECT().List(gomock.Any(), amc.ListFilter{Status: &onHold}).
					Return([]*amc.AMC{{ReferenceID: "AMC01", DerivedStatus: derive.ContractActive, StatusOverride: &onHold}}, nil)
				m.customers.EXPECT().List(gomock.Any(), customer.ListFilter{}).Return(nil, nil)
			},
			wantStatus:   http.StatusOK,
			wantFilename: `attachment; filename="amc-register-20250615.xlsx"`,
		},
		{
			name:       "UnknownStatus",
			path:       "/export/amcs.xlsx?status=cancelled",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "BadDate",
			path:       "/export/invoices.xlsx?to=2025-13-01",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "ListFailsBeforeAnyBytes",
			path: "/export/invoices.xlsx",
			setup: func(m mocks) {
				m.invoices.EXPECT().List(gomock.Any(), invoice.ListFilter{}).Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			m := mocks{
				amcs:      export.NewMockAMCLister(ctrl),
				invoices:  export.NewMockInvoiceLister(ctrl),
				customers: export.NewMockCustomerLister(ctrl),
			}

			if tt.setup != nil {
				tt.setup(m)
			}

			cal := clock.Calendar{Clock: clock.Fixed(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)), Location: time.UTC}

			r := chi.NewRouter()
			r.Route("/export", exportHandler.NewHandler(export.NewService(m.amcs, m.invoices, m.customers), cal).Routes)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantFilename == "" {
				assert.Empty(t, rec.Header().Get("Content-Disposition"))
				return
			}

			assert.Equal(t, export.ContentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantFilename, rec.Header().Get("Content-Disposition"))

			f, err := excelize.OpenReader(rec.Body)
			require.NoError(t, err)
			assert.NotEmpty(t, f.GetSheetList())
		})
	}
}
