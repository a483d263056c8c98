package complaint_test

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

	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
	"github.com/MrJamesThe3rd/liftdesk/internal/complaint"
	complaintHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/complaint"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

func newServer(t *testing.T, setup func(repo *complaint.MockRepository, refs *reference.MockAllocator)) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := complaint.NewMockRepository(ctrl)
	refs := reference.NewMockAllocator(ctrl)

	if setup != nil {
		setup(repo, refs)
	}

	cal := clock.Calendar{Clock: clock.Fixed(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)), Location: time.UTC}

	r := chi.NewRouter()
	r.Route("/complaints", complaintHandler.NewHandler(complaint.NewService(repo, refs, cal)).Routes)

	return r
}

// existing returns a MutateComplaint stub that runs fn against c.
func existing(c *complaint.Complaint) func(context.Context, uuid.UUID, func(*complaint.Complaint) error) (*complaint.Complaint, error) {
	return func(_ context.Context, _ uuid.UUID, fn func(*complaint.Complaint) error) (*complaint.Complaint, error) {
		if err := fn(c); err != nil {
			return nil, err
		}

		return c, nil
	}
}

func TestHandler(t *testing.T) {
	customerID := uuid.NewString()
	id := uuid.New()

	type testCase struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(repo *complaint.MockRepository, refs *reference.MockAllocator)
		wantStatus int
		wantBody   []string
	}

	tests := []testCase{
		{
			name:   "CreateStartsOpen",
			method: http.MethodPost,
			path:   "/complaints",
			body:   `{"customer_id":"` + customerID + `","subject":"Car stuck at 3rd floor"}`,
			setup: func(repo *complaint.MockRepository, refs *reference.MockAllocator) {
				refs.EXPECT().Allocate(gomock.Any(), reference.EntityComplaint).Return("CMP007", nil)
				repo.EXPECT().CreateComplaint(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   []string{`"reference_id":"CMP007"`, `"status":"open"`, `"reported_on":"2025-06-15"`},
		},
		{
			name:       "CreateBlankSubject",
			method:     http.MethodPost,
			path:       "/complaints",
			body:       `{"customer_id":"` + customerID + `","subject":"   "}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"subject":"is required"`},
		},
		{
			name:   "ResolveStampsDate",
			method: http.MethodPut,
			path:   "/complaints/" + id.String() + "/status",
			body:   `{"status":"resolved"}`,
			setup: func(repo *complaint.MockRepository, _ *reference.MockAllocator) {
				repo.EXPECT().MutateComplaint(gomock.Any(), id, gomock.Any()).
					DoAndReturn(existing(&complaint.Complaint{ID: id, Status: complaint.StatusInProgress}))
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"status":"resolved"`, `"resolved_on":"2025-06-15"`},
		},
		{
			name:   "ReopenClearsResolvedOn",
			method: http.MethodPut,
			path:   "/complaints/" + id.String() + "/status",
			body:   `{"status":"open"}`,
			setup: func(repo *complaint.MockRepository, _ *reference.MockAllocator) {
				repo.EXPECT().MutateComplaint(gomock.Any(), id, gomock.Any()).DoAndReturn(existing(&complaint.Complaint{
					ID: id, Status: complaint.StatusResolved, ResolvedOn: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				}))
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"status":"open"`},
		},
		{
			name:   "ResolvedCannotGoInProgress",
			method: http.MethodPut,
			path:   "/complaints/" + id.String() + "/status",
			body:   `{"status":"in_progress"}`,
			setup: func(repo *complaint.MockRepository, _ *reference.MockAllocator) {
				repo.EXPECT().MutateComplaint(gomock.Any(), id, gomock.Any()).
					DoAndReturn(existing(&complaint.Complaint{ID: id, Status: complaint.StatusResolved}))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"status":"cannot move from resolved to in_progress"`},
		},
		{
			name:       "UnknownStatus",
			method:     http.MethodPut,
			path:       "/complaints/" + id.String() + "/status",
			body:       `{"status":"closed"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "ListByStatus",
			method: http.MethodGet,
			path:   "/complaints?status=in_progress",
			setup: func(repo *complaint.MockRepository, _ *reference.MockAllocator) {
				repo.EXPECT().ListComplaints(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, f complaint.ListFilter) ([]*complaint.Complaint, error) {
						assert.Equal(t, complaint.StatusInProgress, *f.Status)
						return []*complaint.Complaint{{ReferenceID: "CMP001", Status: complaint.StatusInProgress}}, nil
					})
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"reference_id":"CMP001"`},
		},
		{
			name:       "ListUnknownStatus",
			method:     http.MethodGet,
			path:       "/complaints?status=closed",
			wantStatus: http.StatusBadRequest,
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
