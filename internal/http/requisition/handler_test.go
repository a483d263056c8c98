package requisition_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
	requisitionHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/requisition"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
	"github.com/MrJamesThe3rd/liftdesk/internal/requisition"
)

func newServer(t *testing.T, setup func(repo *requisition.MockRepository, refs *reference.MockAllocator)) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := requisition.NewMockRepository(ctrl)
	refs := reference.NewMockAllocator(ctrl)

	if setup != nil {
		setup(repo, refs)
	}

	cal := clock.Calendar{Clock: clock.Fixed(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)), Location: time.UTC}

	r := chi.NewRouter()
	r.Route("/requisitions", requisitionHandler.NewHandler(requisition.NewService(repo, refs, cal)).Routes)

	return r
}

func TestHandler(t *testing.T) {
	customerID := uuid.NewString()
	itemID := uuid.New()

	type testCase struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(repo *requisition.MockRepository, refs *reference.MockAllocator)
		wantStatus int
		wantBody   []string
	}

	tests := []testCase{
		{
			name:   "Create",
			method: http.MethodPost,
			path:   "/requisitions",
			body:   `{"customer_id":"` + customerID + `","note":"  urgent  ","lines":[{"item_id":"` + itemID.String() + `","quantity":"2.5"}]}`,
			setup: func(repo *requisition.MockRepository, refs *reference.MockAllocator) {
				refs.EXPECT().Allocate(gomock.Any(), reference.EntityRequisition).Return("REQ012", nil)
				repo.EXPECT().CreateRequisition(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *requisition.Requisition) error {
						assert.Equal(t, "urgent", r.Note)
						return nil
					})
			},
			wantStatus: http.StatusCreated,
			wantBody: []string{
				`"reference_id":"REQ012"`, `"requested_on":"2025-06-15"`,
				`"item_id":"` + itemID.String() + `"`, `"quantity":"2.5"`,
			},
		},
		{
			name:       "CreateZeroQuantity",
			method:     http.MethodPost,
			path:       "/requisitions",
			body:       `{"customer_id":"` + customerID + `","lines":[{"item_id":"` + itemID.String() + `","quantity":"0"}]}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"lines[0].quantity":"must be greater than 0"`},
		},
		{
			name:       "CreateLineWithoutItem",
			method:     http.MethodPost,
			path:       "/requisitions",
			body:       `{"customer_id":"` + customerID + `","lines":[{"quantity":"1"}]}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`item_id`},
		},
		{
			name:   "CreateUnknownItem",
			method: http.MethodPost,
			path:   "/requisitions",
			body:   `{"customer_id":"` + customerID + `","lines":[{"item_id":"` + itemID.String() + `","quantity":"1"}]}`,
			setup: func(repo *requisition.MockRepository, refs *reference.MockAllocator) {
				refs.EXPECT().Allocate(gomock.Any(), reference.EntityRequisition).Return("REQ013", nil)
				repo.EXPECT().CreateRequisition(gomock.Any(), gomock.Any()).Return(apperr.NotFound("item", itemID.String()))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "ListByCustomer",
			method: http.MethodGet,
			path:   "/requisitions?customer_id=" + customerID,
			setup: func(repo *requisition.MockRepository, _ *reference.MockAllocator) {
				repo.EXPECT().ListRequisitions(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f requisition.ListFilter) ([]*requisition.Requisition, error) {
						assert.Equal(t, customerID, f.CustomerID.String())
						assert.Nil(t, f.AMCID)

						return []*requisition.Requisition{{ReferenceID: "REQ001"}}, nil
					})
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"reference_id":"REQ001"`},
		},
		{
			name:       "ListBadAMC",
			method:     http.MethodGet,
			path:       "/requisitions?amc_id=AMC01",
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"amc_id":"must be a UUID"`},
		},
		{
			name:   "GetByReference",
			method: http.MethodGet,
			path:   "/requisitions/by-reference/REQ004",
			setup: func(repo *requisition.MockRepository, _ *reference.MockAllocator) {
				repo.EXPECT().GetRequisitionByReference(gomock.Any(), "REQ004").Return(&requisition.Requisition{ReferenceID: "REQ004"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"reference_id":"REQ004"`},
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
