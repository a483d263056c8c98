package sweep_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
	"github.com/MrJamesThe3rd/liftdesk/internal/sweep"
)

var (
	now   = time.Date(2025, 6, 1, 20, 30, 0, 0, time.UTC)
	ist   = time.FixedZone("IST", 5*3600+1800)
	cal   = clock.Calendar{Clock: clock.Fixed(now), Location: ist}
	today = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
)

func refresher(ctrl *gomock.Controller, name string) *sweep.MockRefresher {
	r := sweep.NewMockRefresher(ctrl)
	r.EXPECT().Name().Return(name).AnyTimes()

	return r
}

func TestService_RunOnce(t *testing.T) {
	type testCase struct {
		name        string
		setupMock   func(ctrl *gomock.Controller, locker *sweep.MockLocker) []sweep.Refresher
		want        *sweep.Summary
		wantErr     string
		wantRelease bool
	}

	tests := []testCase{
		{
			name: "AllRefreshers",
			setupMock: func(ctrl *gomock.Controller, locker *sweep.MockLocker) []sweep.Refresher {
				amcs, invoices := refresher(ctrl, "amc"), refresher(ctrl, "invoice")
				amcs.EXPECT().RefreshStatuses(gomock.Any(), today).Return(2, nil)
				invoices.EXPECT().RefreshStatuses(gomock.Any(), today).Return(0, nil)

				return []sweep.Refresher{amcs, invoices}
			},
			want:        &sweep.Summary{Today: today, Updated: map[string]int{"amc": 2, "invoice": 0}},
			wantRelease: true,
		},
		{
			name: "OneFailsOthersRun",
			setupMock: func(ctrl *gomock.Controller, locker *sweep.MockLocker) []sweep.Refresher {
				amcs, quotes := refresher(ctrl, "amc"), refresher(ctrl, "quotation")
				amcs.EXPECT().RefreshStatuses(gomock.Any(), today).Return(0, errors.New("deadlock detected"))
				quotes.EXPECT().RefreshStatuses(gomock.Any(), today).Return(3, nil)

				return []sweep.Refresher{amcs, quotes}
			},
			want:        &sweep.Summary{Today: today, Updated: map[string]int{"quotation": 3}},
			wantErr:     "amc: deadlock detected",
			wantRelease: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			locker := sweep.NewMockLocker(ctrl)

			released := false
			locker.EXPECT().TryLock(gomock.Any()).Return(func() { released = true }, true, nil)

			refreshers := tt.setupMock(ctrl, locker)

			got, err := sweep.NewService(locker, cal, refreshers...).RunOnce(context.Background())

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantRelease, released)
		})
	}
}

func TestService_RunOnce_LockHeld(t *testing.T) {
	ctrl := gomock.NewController(t)

	locker := sweep.NewMockLocker(ctrl)
	locker.EXPECT().TryLock(gomock.Any()).Return(nil, false, nil)

	amcs := refresher(ctrl, "amc")

	got, err := sweep.NewService(locker, cal, amcs).RunOnce(context.Background())
	require.NoError(t, err)
	assert.True(t, got.Skipped)
	assert.Empty(t, got.Updated)
}

func TestService_RunOnce_LockError(t *testing.T) {
	ctrl := gomock.NewController(t)

	locker := sweep.NewMockLocker(ctrl)
	locker.EXPECT().TryLock(gomock.Any()).Return(nil, false, errors.New("connection refused"))

	_, err := sweep.NewService(locker, cal).RunOnce(context.Background())
	assert.ErrorContains(t, err, "connection refused")
}

func TestRunner_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx, cancel := context.WithCancel(context.Background())

	locker := sweep.NewMockLocker(ctrl)
	locker.EXPECT().TryLock(gomock.Any()).Return(func() {}, true, nil).MinTimes(2)

	runs := 0
	amcs := refresher(ctrl, "amc")
	amcs.EXPECT().RefreshStatuses(gomock.Any(), today).DoAndReturn(func(context.Context, time.Time) (int, error) {
		runs++
		if runs == 2 {
			cancel()
		}

		return 0, nil
	}).MinTimes(2)

	done := make(chan struct{})

	go func() {
		sweep.NewRunner(sweep.NewService(locker, cal, amcs), time.Millisecond).Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop after cancel")
	}

	assert.Equal(t, 2, runs)
}

func TestPGLocker_TryLock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT pg_try_advisory_lock($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"pg_try_advisory_lock"}).AddRow(true))
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_unlock($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	release, ok, err := sweep.NewPGLocker(db).TryLock(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	release()
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGLocker_TryLock_Held(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT pg_try_advisory_lock($1)")).
		WillReturnRows(sqlmock.NewRows([]string{"pg_try_advisory_lock"}).AddRow(false))

	_, ok, err := sweep.NewPGLocker(db).TryLock(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
