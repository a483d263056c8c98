package sweep_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
	sweepHandler "github.com/MrJamesThe3rd/liftdesk/internal/http/sweep"
	"github.com/MrJamesThe3rd/liftdesk/internal/sweep"
)

func TestHandler_Run(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name       string
		setupMock  func(locker *sweep.MockLocker, invoices *sweep.MockRefresher)
		wantStatus int
		wantBody   []string
	}

	tests := []testCase{
		{
			name: "Swept",
			setupMock: func(locker *sweep.MockLocker, invoices *sweep.MockRefresher) {
				locker.EXPECT().TryLock(gomock.Any()).Return(func() {}, true, nil)
				invoices.EXPECT().RefreshStatuses(gomock.Any(), today).Return(3, nil)
				invoices.EXPECT().Name().Return("invoice").AnyTimes()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"skipped":false`, `"updated":{"invoice":3}`, `"today":"2025-06-15T00:00:00Z"`},
		},
		{
			name: "LockHeldElsewhere",
			setupMock: func(locker *sweep.MockLocker, _ *sweep.MockRefresher) {
				locker.EXPECT().TryLock(gomock.Any()).Return(nil, false, nil)
			},
			wantStatus: http.StatusAccepted,
			wantBody:   []string{`"skipped":true`},
		},
		{
			name: "LockUnavailable",
			setupMock: func(locker *sweep.MockLocker, _ *sweep.MockRefresher) {
				locker.EXPECT().TryLock(gomock.Any()).Return(nil, false, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`"error":"internal error"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			locker := sweep.NewMockLocker(ctrl)
			invoices := sweep.NewMockRefresher(ctrl)
			tt.setupMock(locker, invoices)

			cal := clock.Calendar{Clock: clock.Fixed(today.Add(2 * time.Hour)), Location: time.UTC}

			r := chi.NewRouter()
			r.Route("/sweep", sweepHandler.NewHandler(sweep.NewService(locker, cal, invoices)).Routes)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sweep", nil))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}
