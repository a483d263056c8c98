// Package respond holds the JSON encoding, request binding and error mapping
// shared by every HTTP handler.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
)

type errorBody struct {
	Error     string            `json:"error"`
	Fields    map[string]string `json:"fields,omitempty"`
	Retryable bool              `json:"retryable,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error maps err onto a status code. Only unexpected errors are logged; their
// details never reach the client.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation *apperr.ValidationError
		parse      *apperr.ParseError
		notFound   *apperr.NotFoundError
		duplicate  *apperr.DuplicateReferenceError
	)

	switch {
	case errors.As(err, &validation):
		JSON(w, http.StatusBadRequest, errorBody{Error: "validation failed", Fields: validation.Fields})
	case errors.As(err, &parse):
		JSON(w, http.StatusBadRequest, errorBody{
			Error:  parse.Error(),
			Fields: map[string]string{parse.Field: parse.Err.Error()},
		})
	case errors.As(err, &notFound):
		JSON(w, http.StatusNotFound, errorBody{Error: notFound.Error()})
	case errors.As(err, &duplicate):
		JSON(w, http.StatusConflict, errorBody{Error: duplicate.Error(), Retryable: duplicate.Retryable()})
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		JSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

// IDParam parses a UUID path parameter.
func IDParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, apperr.Invalid(name, "must be a UUID")
	}

	return id, nil
}

// DateQuery parses an optional YYYY-MM-DD query parameter.
func DateQuery(r *http.Request, name string) (*time.Time, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, &apperr.ParseError{Field: name, Value: s, Err: err}
	}

	return &t, nil
}

// UUIDQuery parses an optional UUID query parameter.
func UUIDQuery(r *http.Request, name string) (*uuid.UUID, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return nil, apperr.Invalid(name, "must be a UUID")
	}

	return &id, nil
}

// Date parses a YYYY-MM-DD string that Decode has already validated.
// An empty string yields the zero time.
func Date(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}
	}

	return t
}

// FormatDate renders a calendar date, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(time.DateOnly)
}
