package respond_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	"github.com/MrJamesThe3rd/liftdesk/internal/http/respond"
)

func TestError(t *testing.T) {
	type testCase struct {
		name       string
		err        error
		wantStatus int
		wantBody   map[string]any
	}

	tests := []testCase{
		{
			name:       "Validation",
			err:        apperr.Invalid("customer_id", "is required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "validation failed", "fields": map[string]any{"customer_id": "is required"}},
		},
		{
			name:       "Parse",
			err:        &apperr.ParseError{Field: "amount", Value: "abc", Err: errors.New("bad digits")},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": `cannot parse amount "abc": bad digits`, "fields": map[string]any{"amount": "bad digits"}},
		},
		{
			name:       "NotFound",
			err:        fmt.Errorf("get: %w", apperr.NotFound("customer", "CUST009")),
			wantStatus: http.StatusNotFound,
			wantBody:   map[string]any{"error": `customer "CUST009" not found`},
		},
		{
			name:       "Duplicate",
			err:        &apperr.DuplicateReferenceError{Entity: "invoice", Reference: "INV004"},
			wantStatus: http.StatusConflict,
			wantBody:   map[string]any{"error": "invoice reference INV004 already exists", "retryable": true},
		},
		{
			name:       "Internal",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"error": "internal error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respond.Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

type lineRequest struct {
	Rate string `json:"rate" validate:"required"`
}

type createRequest struct {
	CustomerID string        `json:"customer_id" validate:"required,uuid"`
	Date       string        `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Mode       string        `json:"mode" validate:"omitempty,oneof=cash upi"`
	Lines      []lineRequest `json:"lines" validate:"min=1,dive"`
}

func TestDecode(t *testing.T) {
	type testCase struct {
		name       string
		body       string
		wantFields map[string]string
	}

	tests := []testCase{
		{
			name: "Valid",
			body: `{"customer_id":"3f1c2a6e-8a4b-4c55-9d2e-2f9c0b7a1e11","date":"2025-04-01","lines":[{"rate":"10"}]}`,
		},
		{
			name: "FieldErrors",
			body: `{"date":"01/04/2025","mode":"card","lines":[{"rate":""}]}`,
			wantFields: map[string]string{
				"customer_id":   "is required",
				"date":          "must be a date formatted 2006-01-02",
				"mode":          "must be one of: cash upi",
				"lines[0].rate": "is required",
			},
		},
		{
			name:       "Malformed",
			body:       `{"customer_id":`,
			wantFields: map[string]string{"body": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dst createRequest
			err := respond.Decode(req, &dst)

			if tt.wantFields == nil {
				require.NoError(t, err)
				return
			}

			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)

			for field, msg := range tt.wantFields {
				require.Contains(t, ve.Fields, field)

				if msg != "" {
					assert.Equal(t, msg, ve.Fields[field])
				}
			}
		})
	}
}

func TestDateQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?from=2025-01-31&to=31-01-2025", nil)

	from, err := respond.DateQuery(req, "from")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31", respond.FormatDate(*from))

	_, err = respond.DateQuery(req, "to")

	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "to")

	missing, err := respond.DateQuery(req, "since")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
