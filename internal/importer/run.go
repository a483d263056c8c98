package importer

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
)

// Row error codes.
const (
	CodeRequired  = "required"
	CodeInvalid   = "invalid"
	CodeNotFound  = "not_found"
	CodeDuplicate = "duplicate"
	CodeFailed    = "failed"
)

// RowError locates one problem in the upload. Row is the 1-based spreadsheet row;
// the header is row 1.
type RowError struct {
	Row     int    `json:"row"`
	Column  string `json:"column,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

type Report struct {
	Total     int        `json:"total"`
	Succeeded int        `json:"succeeded"`
	Failed    int        `json:"failed"`
	Errors    []RowError `json:"errors"`
	// Truncated is set when more errors occurred than were kept.
	Truncated bool `json:"truncated,omitempty"`
}

func (r *Report) addErrors(errs []RowError, limit int) {
	for _, e := range errs {
		if limit > 0 && len(r.Errors) >= limit {
			r.Truncated = true
			return
		}

		r.Errors = append(r.Errors, e)
	}
}

// ApplyFunc creates whatever the row describes.
type ApplyFunc func(ctx context.Context, row Row) error

type Runner struct {
	// MaxErrors caps Report.Errors. Zero keeps every error.
	MaxErrors int
}

// Run validates rows against schema and applies the valid ones in file order.
// A failing row never stops the run. Blank rows are skipped and not counted.
// The returned error is non-nil only when the file itself is unusable or ctx ends.
func (r Runner) Run(ctx context.Context, rows [][]string, schema Schema, apply ApplyFunc) (*Report, error) {
	report := &Report{Errors: []RowError{}}

	if len(rows) == 0 {
		return nil, apperr.Invalid("file", "file is empty")
	}

	cols, err := schema.columns(rows[0])
	if err != nil {
		return nil, apperr.Invalid("file", err.Error())
	}

	for i, cells := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if blank(cells) {
			continue
		}

		number := i + 2
		report.Total++

		row, errs := buildRow(ctx, schema, cols, cells, number)
		if len(errs) == 0 {
			if err := apply(ctx, row); err != nil {
				errs = row.annotate(rowErrors(number, err))
			}
		}

		if len(errs) > 0 {
			report.Failed++
			report.addErrors(errs, r.MaxErrors)

			continue
		}

		report.Succeeded++
	}

	return report, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}

func buildRow(ctx context.Context, schema Schema, cols map[string]int, cells []string, number int) (Row, []RowError) {
	row := Row{
		Number: number,
		values: make(map[string]any, len(schema.Fields)),
		raw:    make(map[string]string, len(schema.Fields)),
	}

	var errs []RowError

	for _, f := range schema.Fields {
		raw := ""
		if idx, ok := cols[f.Name]; ok && idx < len(cells) {
			raw = strings.TrimSpace(cells[idx])
		}

		row.raw[f.Name] = raw

		if raw == "" {
			if f.Required {
				errs = append(errs, RowError{Row: number, Column: f.Name, Code: CodeRequired, Message: "is required"})
			}

			continue
		}

		v, err := f.parse(raw)
		if err != nil {
			errs = append(errs, RowError{Row: number, Column: f.Name, Code: CodeInvalid, Message: err.Error(), Value: raw})
			continue
		}

		if f.Resolve != nil {
			resolved, err := f.Resolve(ctx, raw)
			if err != nil {
				e := rowErrors(number, err)[0]
				e.Column = f.Name
				e.Value = raw
				errs = append(errs, e)

				continue
			}

			v = resolved
		}

		row.values[f.Name] = v
	}

	return row, errs
}

// rowErrors maps the shared error taxonomy onto row errors. Validation errors
// expand to one entry per field.
func rowErrors(number int, err error) []RowError {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) && len(ve.Fields) > 0 {
		fields := make([]string, 0, len(ve.Fields))
		for f := range ve.Fields {
			fields = append(fields, f)
		}

		sort.Strings(fields)

		out := make([]RowError, 0, len(fields))
		for _, f := range fields {
			out = append(out, RowError{Row: number, Column: f, Code: CodeInvalid, Message: ve.Fields[f]})
		}

		return out
	}

	var pe *apperr.ParseError
	if errors.As(err, &pe) {
		return []RowError{{Row: number, Column: pe.Field, Code: CodeInvalid, Message: pe.Err.Error(), Value: pe.Value}}
	}

	if errors.Is(err, apperr.ErrNotFound) {
		return []RowError{{Row: number, Code: CodeNotFound, Message: err.Error()}}
	}

	var dup *apperr.DuplicateReferenceError
	if errors.As(err, &dup) {
		return []RowError{{Row: number, Code: CodeDuplicate, Message: err.Error()}}
	}

	slog.Error("import row failed", "row", number, "error", err)

	return []RowError{{Row: number, Code: CodeFailed, Message: "could not save row"}}
}
