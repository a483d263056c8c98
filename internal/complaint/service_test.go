package complaint_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
	"github.com/MrJamesThe3rd/liftdesk/internal/complaint"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

var today = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func newService(repo complaint.Repository, refs reference.Allocator) *complaint.Service {
	return complaint.NewService(repo, refs, clock.Calendar{Clock: clock.Fixed(today.Add(time.Hour)), Location: time.UTC})
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := complaint.NewMockRepository(ctrl)
	refs := reference.NewMockAllocator(ctrl)

	refs.EXPECT().Allocate(gomock.Any(), reference.EntityComplaint).Return("CMP001", nil)
	repo.EXPECT().CreateComplaint(gomock.Any(), gomock.Any()).Return(nil)

	got, err := newService(repo, refs).Create(context.Background(), complaint.Params{
		CustomerID: uuid.New(),
		Subject:    "  Lift stuck at 3rd floor ",
	})

	require.NoError(t, err)
	assert.Equal(t, "CMP001", got.ReferenceID)
	assert.Equal(t, complaint.StatusOpen, got.Status)
	assert.Equal(t, "Lift stuck at 3rd floor", got.Subject)
	assert.Equal(t, today, got.ReportedOn)
}

func TestService_Create_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := newService(complaint.NewMockRepository(ctrl), reference.NewMockAllocator(ctrl)).
		Create(context.Background(), complaint.Params{Subject: "   "})

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "customer_id")
	assert.Contains(t, ve.Fields, "subject")
}

func TestService_UpdateStatus(t *testing.T) {
	type testCase struct {
		name         string
		from         complaint.Status
		resolvedOn   time.Time
		to           complaint.Status
		wantResolved time.Time
		wantErr      bool
	}

	tests := []testCase{
		{name: "Start", from: complaint.StatusOpen, to: complaint.StatusInProgress},
		{name: "ResolveStampsToday", from: complaint.StatusInProgress, to: complaint.StatusResolved, wantResolved: today},
		{name: "ReopenClearsDate", from: complaint.StatusResolved, resolvedOn: today.AddDate(0, 0, -3), to: complaint.StatusOpen},
		{name: "SameStatusKeepsDate", from: complaint.StatusResolved, resolvedOn: today.AddDate(0, 0, -3), to: complaint.StatusResolved, wantResolved: today.AddDate(0, 0, -3)},
		{name: "ResolvedCannotGoInProgress", from: complaint.StatusResolved, to: complaint.StatusInProgress, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			existing := &complaint.Complaint{ID: uuid.New(), Status: tt.from, ResolvedOn: tt.resolvedOn}

			repo := complaint.NewMockRepository(ctrl)
			repo.EXPECT().MutateComplaint(gomock.Any(), existing.ID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, fn func(*complaint.Complaint) error) (*complaint.Complaint, error) {
					if err := fn(existing); err != nil {
						return nil, err
					}

					return existing, nil
				})

			got, err := newService(repo, reference.NewMockAllocator(ctrl)).UpdateStatus(context.Background(), existing.ID, tt.to)

			if tt.wantErr {
				var ve *apperr.ValidationError
				assert.ErrorAs(t, err, &ve)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Status)
			assert.Equal(t, tt.wantResolved, got.ResolvedOn)
		})
	}
}

func TestService_UpdateStatus_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := newService(complaint.NewMockRepository(ctrl), reference.NewMockAllocator(ctrl)).
		UpdateStatus(context.Background(), uuid.New(), "closed")

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "status")
}
