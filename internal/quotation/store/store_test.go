package store_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/derive"
	"github.com/MrJamesThe3rd/liftdesk/internal/lineitem"
	"github.com/MrJamesThe3rd/liftdesk/internal/quotation"
	"github.com/MrJamesThe3rd/liftdesk/internal/quotation/store"
)

var quotationColumns = []string{
	"id", "reference_id", "customer_id", "quote_date", "valid_until",
	"subtotal", "tax_total", "total", "accepted_at", "status",
	"created_at", "updated_at",
}

var lineColumns = []string{"item_id", "description", "rate", "quantity", "tax_percent", "net", "tax", "total"}

func sampleQuotation() *quotation.Quotation {
	rate := decimal.RequireFromString("45000")
	itemID := uuid.New()

	return &quotation.Quotation{
		ReferenceID: "QUO005",
		CustomerID:  uuid.New(),
		QuoteDate:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		ValidUntil:  time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		Lines:       []lineitem.Line{{ItemID: &itemID, Description: "Controller upgrade", Rate: &rate}},
		Total:       rate,
		Status:      derive.QuoteOpen,
	}
}

func TestStore_CreateQuotation(t *testing.T) {
	type testCase struct {
		name      string
		insertErr error
		lineErr   error
		wantErr   func(t *testing.T, err error)
	}

	tests := []testCase{
		{
			name: "inserted with lines",
		},
		{
			name:      "duplicate reference",
			insertErr: &pgconn.PgError{Code: "23505", ConstraintName: "quotations_reference_id_key"},
			wantErr: func(t *testing.T, err error) {
				var dup *apperr.DuplicateReferenceError
				require.ErrorAs(t, err, &dup)
				assert.Equal(t, "QUO005", dup.Reference)
			},
		},
		{
			name:    "unknown line item",
			lineErr: &pgconn.PgError{Code: "23503", ConstraintName: "quotation_lines_item_id_fkey"},
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, apperr.ErrNotFound)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			id := uuid.New()
			now := time.Now()

			mock.ExpectBegin()

			insert := mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO quotations"))
			if tc.insertErr != nil {
				insert.WillReturnError(tc.insertErr)
				mock.ExpectRollback()
			} else {
				insert.WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id.String(), now, now))
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM quotation_lines")).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

				line := mock.ExpectExec(regexp.QuoteMeta("INSERT INTO quotation_lines"))
				if tc.lineErr != nil {
					line.WillReturnError(tc.lineErr)
					mock.ExpectRollback()
				} else {
					line.WillReturnResult(sqlmock.NewResult(0, 1))
					mock.ExpectCommit()
				}
			}

			q := sampleQuotation()
			err = store.New(db).CreateQuotation(context.Background(), q)

			if tc.wantErr != nil {
				tc.wantErr(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, q.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_GetQuotationByReference(t *testing.T) {
	type testCase struct {
		name    string
		setup   func(mock sqlmock.Sqlmock, id uuid.UUID)
		wantErr error
	}

	tests := []testCase{
		{
			name: "found with lines",
			setup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				accepted := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)
				mock.ExpectQuery(regexp.QuoteMeta("FROM quotations WHERE reference_id = $1")).
					WithArgs("QUO002").
					WillReturnRows(sqlmock.NewRows(quotationColumns).AddRow(
						id.String(), "QUO002", uuid.NewString(), time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), nil,
						"100.00", "18.00", "118.00", accepted, "accepted", time.Now(), time.Now(),
					))
				mock.ExpectQuery(regexp.QuoteMeta("FROM quotation_lines")).
					WithArgs(id).
					WillReturnRows(sqlmock.NewRows(lineColumns).AddRow(nil, "Survey", "100", "1", "18", "100.00", "18.00", "118.00"))
			},
		},
		{
			name: "missing",
			setup: func(mock sqlmock.Sqlmock, _ uuid.UUID) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM quotations WHERE reference_id = $1")).
					WithArgs("QUO002").
					WillReturnRows(sqlmock.NewRows(quotationColumns))
			},
			wantErr: apperr.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			id := uuid.New()
			tc.setup(mock, id)

			got, err := store.New(db).GetQuotationByReference(context.Background(), "QUO002")

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, got.ID)
				assert.True(t, got.ValidUntil.IsZero())
				require.NotNil(t, got.AcceptedAt)
				assert.Equal(t, derive.QuoteAccepted, got.Status)
				require.Len(t, got.Lines, 1)
				assert.Equal(t, "Survey", got.Lines[0].Description)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestStore_MutateQuotation(t *testing.T) {
	errRejected := errors.New("rejected")

	type testCase struct {
		name    string
		fn      func(q *quotation.Quotation) error
		found   bool
		wantErr error
	}

	tests := []testCase{
		{
			name:  "updated",
			found: true,
			fn: func(q *quotation.Quotation) error {
				q.Status = derive.QuoteAccepted
				return nil
			},
		},
		{
			name:    "fn error rolls back",
			found:   true,
			fn:      func(*quotation.Quotation) error { return errRejected },
			wantErr: errRejected,
		},
		{
			name:    "missing",
			fn:      func(*quotation.Quotation) error { return nil },
			wantErr: apperr.ErrNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			id := uuid.New()

			mock.ExpectBegin()

			lock := mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).WithArgs(id)
			if !tc.found {
				lock.WillReturnRows(sqlmock.NewRows(quotationColumns))
				mock.ExpectRollback()
			} else {
				lock.WillReturnRows(sqlmock.NewRows(quotationColumns).AddRow(
					id.String(), "QUO003", uuid.NewString(), time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
					time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), "100.00", "0.00", "100.00", nil, "open", time.Now(), time.Now(),
				))
				mock.ExpectQuery(regexp.QuoteMeta("FROM quotation_lines")).
					WithArgs(id).
					WillReturnRows(sqlmock.NewRows(lineColumns).AddRow(nil, "Survey", "100", "1", nil, "100.00", "0.00", "100.00"))

				if tc.wantErr != nil {
					mock.ExpectRollback()
				} else {
					mock.ExpectQuery(regexp.QuoteMeta("UPDATE quotations")).
						WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))
					mock.ExpectExec(regexp.QuoteMeta("DELETE FROM quotation_lines")).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO quotation_lines")).WillReturnResult(sqlmock.NewResult(0, 1))
					mock.ExpectCommit()
				}
			}

			got, err := store.New(db).MutateQuotation(context.Background(), id, tc.fn)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, derive.QuoteAccepted, got.Status)
				assert.Len(t, got.Lines, 1)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
