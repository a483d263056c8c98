package requisition_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
	"github.com/MrJamesThe3rd/liftdesk/internal/requisition"
)

func TestService_Create(t *testing.T) {
	customerID := uuid.New()
	itemID := uuid.New()
	today := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

	type args struct {
		params requisition.Params
	}

	type testCase struct {
		name       string
		args       args
		setupMock  func(repo *requisition.MockRepository, refs *reference.MockAllocator)
		wantRef    string
		wantFields []string
		wantErr    error
	}

	tests := []testCase{
		{
			name: "DefaultsRequestedOnToToday",
			args: args{params: requisition.Params{
				CustomerID: customerID,
				Note:       " urgent ",
				Lines:      []requisition.Line{{ItemID: itemID, Quantity: decimal.NewFromInt(3)}},
			}},
			setupMock: func(repo *requisition.MockRepository, refs *reference.MockAllocator) {
				refs.EXPECT().Allocate(gomock.Any(), reference.EntityRequisition).Return("REQ001", nil)
				repo.EXPECT().CreateRequisition(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *requisition.Requisition) error {
						assert.Equal(t, today, r.RequestedOn)
						assert.Equal(t, "urgent", r.Note)

						return nil
					})
			},
			wantRef: "REQ001",
		},
		{
			name: "ZeroQuantity",
			args: args{params: requisition.Params{
				CustomerID: customerID,
				Lines:      []requisition.Line{{ItemID: itemID, Quantity: decimal.Zero}},
			}},
			wantFields: []string{"lines[0].quantity"},
		},
		{
			name:       "Empty",
			args:       args{params: requisition.Params{}},
			wantFields: []string{"customer_id", "lines"},
		},
		{
			name: "UnknownItem",
			args: args{params: requisition.Params{
				CustomerID: customerID,
				Lines:      []requisition.Line{{ItemID: itemID, Quantity: decimal.NewFromInt(1)}},
			}},
			setupMock: func(repo *requisition.MockRepository, refs *reference.MockAllocator) {
				refs.EXPECT().Allocate(gomock.Any(), reference.EntityRequisition).Return("REQ002", nil)
				repo.EXPECT().CreateRequisition(gomock.Any(), gomock.Any()).Return(apperr.NotFound("item", itemID.String()))
			},
			wantErr: apperr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := requisition.NewMockRepository(ctrl)
			refs := reference.NewMockAllocator(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, refs)
			}

			svc := requisition.NewService(repo, refs, clock.Calendar{Clock: clock.Fixed(today.Add(15 * time.Hour)), Location: time.UTC})
			got, err := svc.Create(context.Background(), tt.args.params)

			switch {
			case tt.wantFields != nil:
				var ve *apperr.ValidationError
				require.ErrorAs(t, err, &ve)

				for _, f := range tt.wantFields {
					assert.Contains(t, ve.Fields, f)
				}
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantRef, got.ReferenceID)
			}
		})
	}
}
