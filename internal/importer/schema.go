package importer

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/MrJamesThe3rd/liftdesk/internal/money"
)

type Kind int

const (
	KindText Kind = iota
	KindDecimal
	KindInt
	KindDate
	KindBool
)

// Resolver turns a raw cell into a domain value, e.g. a customer reference into its id.
// Returning an error fails the row at this column.
type Resolver func(ctx context.Context, raw string) (any, error)

type Field struct {
	Name     string
	Aliases  []string
	Kind     Kind
	Required bool
	Resolve  Resolver
}

type Schema struct {
	Fields []Field
}

// normaliseHeader folds case and treats spaces, dashes, dots and underscores alike,
// so "Unit Count", "unit_count" and "UNIT-COUNT" all match.
func normaliseHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	return strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-' || r == '.'
	}), "")
}

// HeaderError reports required columns the header row does not provide.
type HeaderError struct {
	Missing []string
}

func (e *HeaderError) Error() string {
	return "missing required columns: " + strings.Join(e.Missing, ", ")
}

// columns maps field names to their index in header.
func (s Schema) columns(header []string) (map[string]int, error) {
	byHeader := make(map[string]int, len(header))

	for i, h := range header {
		if n := normaliseHeader(h); n != "" {
			if _, seen := byHeader[n]; !seen {
				byHeader[n] = i
			}
		}
	}

	cols := make(map[string]int, len(s.Fields))

	var missing []string

	for _, f := range s.Fields {
		found := false

		for _, name := range append([]string{f.Name}, f.Aliases...) {
			if idx, ok := byHeader[normaliseHeader(name)]; ok {
				cols[f.Name] = idx
				found = true

				break
			}
		}

		if !found && f.Required {
			missing = append(missing, f.Name)
		}
	}

	if len(missing) > 0 {
		return nil, &HeaderError{Missing: missing}
	}

	return cols, nil
}

var dateLayouts = []string{
	time.DateOnly,
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"02-Jan-2006",
	"2 Jan 2006",
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	// Unformatted workbook cells come through as Excel serial numbers.
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, fmt.Errorf("expected a date like 2025-04-01 or 01/04/2025")
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "y", "yes", "true", "1":
		return true, nil
	case "n", "no", "false", "0":
		return false, nil
	}

	return false, fmt.Errorf("expected yes or no")
}

func (f Field) parse(raw string) (any, error) {
	switch f.Kind {
	case KindDecimal:
		d, err := money.ParseAmount(raw)
		if err != nil {
			return nil, fmt.Errorf("expected a number")
		}

		return d, nil
	case KindInt:
		n, err := strconv.ParseInt(strings.ReplaceAll(raw, ",", ""), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("expected a whole number")
		}

		return n, nil
	case KindDate:
		return parseDate(raw)
	case KindBool:
		return parseBool(raw)
	}

	return raw, nil
}

// Row is one validated data row. Getters return zero values for absent optional cells.
type Row struct {
	Number int
	values map[string]any
	raw    map[string]string
}

func (r Row) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

func (r Row) Raw(name string) string { return r.raw[name] }

// annotate copies the uploaded cell into errors that name one of the row's columns.
func (r Row) annotate(errs []RowError) []RowError {
	for i := range errs {
		if errs[i].Value == "" && r.Has(errs[i].Column) {
			errs[i].Value = r.Raw(errs[i].Column)
		}
	}

	return errs
}

func (r Row) Value(name string) any { return r.values[name] }

func (r Row) Text(name string) string {
	s, _ := r.values[name].(string)
	return s
}

// Decimal returns nil when the cell is empty so callers keep "missing" distinct from zero.
func (r Row) Decimal(name string) *decimal.Decimal {
	d, ok := r.values[name].(decimal.Decimal)
	if !ok {
		return nil
	}

	return &d
}

func (r Row) Int(name string) int64 {
	n, _ := r.values[name].(int64)
	return n
}

func (r Row) Date(name string) time.Time {
	t, _ := r.values[name].(time.Time)
	return t
}

func (r Row) Bool(name string) bool {
	b, _ := r.values[name].(bool)
	return b
}
