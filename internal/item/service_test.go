package item_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/item"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name       string
		params     item.Params
		setupMock  func(repo *item.MockRepository, refs *reference.MockAllocator)
		wantFields []string
	}

	tests := []testCase{
		{
			name:   "Success",
			params: item.Params{Code: " rope-8mm ", Name: "Wire rope 8mm", Rate: dec("450"), TaxPercent: dec("18")},
			setupMock: func(repo *item.MockRepository, refs *reference.MockAllocator) {
				refs.EXPECT().Allocate(gomock.Any(), reference.EntityItem).Return("ITM001", nil)
				repo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, it *item.Item) error {
						assert.Equal(t, "ROPE-8MM", it.Code)
						assert.Equal(t, "nos", it.Unit)
						it.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name:       "Invalid",
			params:     item.Params{Rate: dec("-1"), TaxPercent: dec("180")},
			wantFields: []string{"code", "name", "rate", "tax_percent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := item.NewMockRepository(ctrl)
			refs := reference.NewMockAllocator(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, refs)
			}

			got, err := item.NewService(repo, refs).Create(context.Background(), tt.params)

			if tt.wantFields != nil {
				var ve *apperr.ValidationError
				require.ErrorAs(t, err, &ve)

				for _, f := range tt.wantFields {
					assert.Contains(t, ve.Fields, f)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "ITM001", got.ReferenceID)
		})
	}
}

func TestService_GetByCode_IsCaseInsensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := item.NewMockRepository(ctrl)
	repo.EXPECT().GetItemByCode(gomock.Any(), "DOOR-SENSOR").Return(&item.Item{Code: "DOOR-SENSOR"}, nil)

	got, err := item.NewService(repo, reference.NewMockAllocator(ctrl)).GetByCode(context.Background(), " door-sensor")
	require.NoError(t, err)
	assert.Equal(t, "DOOR-SENSOR", got.Code)
}
