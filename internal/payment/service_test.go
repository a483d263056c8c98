package payment_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/clock"
	"github.com/MrJamesThe3rd/liftdesk/internal/database"
	"github.com/MrJamesThe3rd/liftdesk/internal/payment"
	"github.com/MrJamesThe3rd/liftdesk/internal/reference"
)

var today = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func calendar() clock.Calendar {
	return clock.Calendar{Clock: clock.Fixed(today.Add(12 * time.Hour)), Location: time.UTC}
}

type paidFunc = func(context.Context, database.Querier, uuid.UUID) (decimal.Decimal, error)

// runPaid is a Target stub owned by owner that invokes the ledger callback like a row-locked mutation would.
func runPaid(owner uuid.UUID, got *decimal.Decimal) func(context.Context, uuid.UUID, paidFunc) error {
	return func(ctx context.Context, _ uuid.UUID, paid paidFunc) error {
		total, err := paid(ctx, nil, owner)
		if err != nil {
			return err
		}

		*got = total

		return nil
	}
}

func TestService_Create(t *testing.T) {
	customerID := uuid.New()
	targetID := uuid.New()

	type args struct {
		params payment.Params
	}

	type testCase struct {
		name       string
		args       args
		setupMock  func(repo *payment.MockRepository, refs *reference.MockAllocator, invoices *payment.MockTarget, applied *decimal.Decimal)
		wantPaid   string
		wantFields []string
		wantErr    error
	}

	tests := []testCase{
		{
			name: "AppliesLedgerTotal",
			args: args{params: payment.Params{
				CustomerID: customerID, TargetKind: payment.TargetInvoice, TargetID: targetID,
				Amount: decimal.NewFromInt(500), Mode: payment.ModeUPI,
			}},
			setupMock: func(repo *payment.MockRepository, refs *reference.MockAllocator, invoices *payment.MockTarget, applied *decimal.Decimal) {
				refs.EXPECT().Allocate(gomock.Any(), reference.EntityPayment).Return("PAY001", nil)
				invoices.EXPECT().ApplyPaid(gomock.Any(), targetID, gomock.Any()).DoAndReturn(runPaid(customerID, applied))
				repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ database.Querier, p *payment.Payment) error {
						assert.Equal(t, today, p.ReceivedOn)
						return nil
					})
				repo.EXPECT().TotalFor(gomock.Any(), gomock.Any(), payment.TargetInvoice, targetID).Return(decimal.NewFromInt(1500), nil)
			},
			wantPaid: "1500",
		},
		{
			name: "OtherCustomersTargetWritesNothing",
			args: args{params: payment.Params{
				CustomerID: customerID, TargetKind: payment.TargetInvoice, TargetID: targetID,
				Amount: decimal.NewFromInt(500), Mode: payment.ModeCheque,
			}},
			setupMock: func(_ *payment.MockRepository, refs *reference.MockAllocator, invoices *payment.MockTarget, applied *decimal.Decimal) {
				refs.EXPECT().Allocate(gomock.Any(), reference.EntityPayment).Return("PAY003", nil)
				invoices.EXPECT().ApplyPaid(gomock.Any(), targetID, gomock.Any()).DoAndReturn(runPaid(uuid.New(), applied))
			},
			wantFields: []string{"customer_id"},
		},
		{
			name: "MissingTargetWritesNothing",
			args: args{params: payment.Params{
				CustomerID: customerID, TargetKind: payment.TargetInvoice, TargetID: targetID,
				Amount: decimal.NewFromInt(500), Mode: payment.ModeCash,
			}},
			setupMock: func(_ *payment.MockRepository, refs *reference.MockAllocator, invoices *payment.MockTarget, _ *decimal.Decimal) {
				refs.EXPECT().Allocate(gomock.Any(), reference.EntityPayment).Return("PAY002", nil)
				invoices.EXPECT().ApplyPaid(gomock.Any(), targetID, gomock.Any()).Return(apperr.NotFound("invoice", targetID.String()))
			},
			wantErr: apperr.ErrNotFound,
		},
		{
			name: "Invalid",
			args: args{params: payment.Params{
				TargetKind: "cheque", Amount: decimal.NewFromInt(-5), Mode: "barter",
			}},
			wantFields: []string{"customer_id", "target_kind", "target_id", "amount", "mode"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := payment.NewMockRepository(ctrl)
			refs := reference.NewMockAllocator(ctrl)
			invoices := payment.NewMockTarget(ctrl)
			amcs := payment.NewMockTarget(ctrl)

			var applied decimal.Decimal

			if tt.setupMock != nil {
				tt.setupMock(repo, refs, invoices, &applied)
			}

			svc := payment.NewService(repo, refs, calendar(), map[payment.TargetKind]payment.Target{
				payment.TargetInvoice: invoices,
				payment.TargetAMC:     amcs,
			})

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
				assert.NotNil(t, got)
				assert.Equal(t, tt.wantPaid, applied.String())
			}
		})
	}
}

// ledger keeps payments in memory. target serialises ApplyPaid per id like a row lock.
type ledger struct {
	mu       sync.Mutex
	payments []*payment.Payment
}

func (l *ledger) CreatePayment(_ context.Context, _ database.Querier, p *payment.Payment) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	p.ID = uuid.New()
	l.payments = append(l.payments, p)

	return nil
}

func (l *ledger) GetPayment(context.Context, uuid.UUID) (*payment.Payment, error) { return nil, nil }

func (l *ledger) GetPaymentByReference(context.Context, string) (*payment.Payment, error) {
	return nil, nil
}

func (l *ledger) ListPayments(context.Context, payment.ListFilter) ([]*payment.Payment, error) {
	return nil, nil
}

func (l *ledger) TotalFor(_ context.Context, _ database.Querier, kind payment.TargetKind, id uuid.UUID) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := decimal.Zero

	for _, p := range l.payments {
		if p.TargetKind == kind && p.TargetID == id {
			total = total.Add(p.Amount)
		}
	}

	return total, nil
}

type target struct {
	mu    sync.Mutex
	owner uuid.UUID
	paid  decimal.Decimal
}

func (t *target) ApplyPaid(ctx context.Context, _ uuid.UUID, paid paidFunc) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	total, err := paid(ctx, nil, t.owner)
	if err != nil {
		return err
	}

	t.paid = total

	return nil
}

type counter struct {
	mu sync.Mutex
	n  int64
}

func (c *counter) Allocate(_ context.Context, entity reference.Entity) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.n++

	scheme, _ := reference.SchemeFor(entity)

	return scheme.Format(c.n), nil
}

func TestService_Create_ConcurrentPaymentsSettleOnLedgerTotal(t *testing.T) {
	const workers = 20

	customerID := uuid.New()
	amc := &target{owner: customerID}
	l := &ledger{}
	svc := payment.NewService(l, &counter{}, calendar(), map[payment.TargetKind]payment.Target{payment.TargetAMC: amc})

	amcID := uuid.New()

	var wg sync.WaitGroup

	errs := make(chan error, workers)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := svc.Create(context.Background(), payment.Params{
				CustomerID: customerID, TargetKind: payment.TargetAMC, TargetID: amcID,
				Amount: decimal.RequireFromString("12.50"), Mode: payment.ModeCash,
			})
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, "250.00", amc.paid.StringFixed(2))
	assert.Len(t, l.payments, workers)
}

func TestService_Resync(t *testing.T) {
	targetID := uuid.New()

	type args struct {
		kind payment.TargetKind
	}

	type testCase struct {
		name       string
		args       args
		setupMock  func(repo *payment.MockRepository, amcs *payment.MockTarget, applied *decimal.Decimal)
		wantPaid   string
		wantFields []string
	}

	tests := []testCase{
		{
			name: "ReappliesLedgerTotal",
			args: args{kind: payment.TargetAMC},
			setupMock: func(repo *payment.MockRepository, amcs *payment.MockTarget, applied *decimal.Decimal) {
				amcs.EXPECT().ApplyPaid(gomock.Any(), targetID, gomock.Any()).DoAndReturn(runPaid(uuid.New(), applied))
				repo.EXPECT().TotalFor(gomock.Any(), gomock.Any(), payment.TargetAMC, targetID).Return(decimal.NewFromInt(750), nil)
			},
			wantPaid: "750",
		},
		{
			name:       "UnknownKind",
			args:       args{kind: "quotation"},
			wantFields: []string{"target_kind"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := payment.NewMockRepository(ctrl)
			amcs := payment.NewMockTarget(ctrl)

			var applied decimal.Decimal

			if tt.setupMock != nil {
				tt.setupMock(repo, amcs, &applied)
			}

			svc := payment.NewService(repo, reference.NewMockAllocator(ctrl), calendar(), map[payment.TargetKind]payment.Target{
				payment.TargetAMC: amcs,
			})

			err := svc.Resync(context.Background(), tt.args.kind, targetID)

			if tt.wantFields != nil {
				var ve *apperr.ValidationError
				require.ErrorAs(t, err, &ve)

				for _, f := range tt.wantFields {
					assert.Contains(t, ve.Fields, f)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPaid, applied.String())
		})
	}
}
