package reference_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	referenceHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/reference"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

type fakeService struct {
	counters map[reference.Entity]int64
	err      error
}

func (f fakeService) Peek(_ context.Context, entity reference.Entity) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	scheme, err := reference.SchemeFor(entity)
	if err != nil {
		return "", err
	}

	return scheme.Format(f.counters[entity] + 1), nil
}

func (f fakeService) Counters(context.Context) (map[reference.Entity]int64, error) {
	return f.counters, f.err
}

func TestHandler(t *testing.T) {
	type testCase struct {
		name       string
		svc        fakeService
		path       string
		wantStatus int
		wantBody   []string
		notInBody  []string
	}

	tests := []testCase{
		{
			name:       "ListShowsLastAllocated",
			svc:        fakeService{counters: map[reference.Entity]int64{reference.EntityInvoice: 41}},
			path:       "/references",
			wantStatus: http.StatusOK,
			wantBody:   []string{`"entity":"invoice"`, `"last":"INV041"`, `"example":"CUST001"`},
			notInBody:  []string{`"last":"CUST`},
		},
		{
			name:       "ListCountersUnavailable",
			svc:        fakeService{err: errors.New("connection refused")},
			path:       "/references",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "Next",
			svc:        fakeService{counters: map[reference.Entity]int64{reference.EntityAMC: 9}},
			path:       "/references/amc/next",
			wantStatus: http.StatusOK,
			wantBody:   []string{`"entity":"amc"`, `"next":"AMC10"`},
		},
		{
			name:       "NextUnknownEntity",
			path:       "/references/lift/next",
			wantStatus: http.StatusNotFound,
			wantBody:   []string{`not found`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Route("/references", referenceHandler.NewHandler(tt.svc).Routes)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}

			for _, unwanted := range tt.notInBody {
				assert.NotContains(t, rec.Body.String(), unwanted)
			}
		})
	}
}
