// Package importer reads CSV and XLSX uploads and applies them row by row,
// collecting per-row errors instead of aborting the file.
package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/MrJamesThe3rd/liftdesk/internal/apperr"
	enc "github.com/MrJamesThe3rd/liftdesk/internal/encoding"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatFor picks the reader from the file extension.
func FormatFor(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	}

	return "", apperr.Invalid("file", fmt.Sprintf("unsupported file type %q: use .csv or .xlsx", filepath.Ext(filename)))
}

// Read returns every row of a CSV file or of the first sheet of a workbook.
func Read(r io.Reader, format Format) ([][]string, error) {
	switch format {
	case FormatCSV:
		return readCSV(r)
	case FormatXLSX:
		return readXLSX(r)
	}

	return nil, fmt.Errorf("unknown format %q", format)
}

func readCSV(r io.Reader) ([][]string, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	br := bufio.NewReader(utf8r)

	sample, err := br.Peek(1024)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("peek: %w", err)
	}

	reader := csv.NewReader(br)
	reader.Comma = enc.SniffDelimiter(sample)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperr.Invalid("file", "unreadable CSV: "+err.Error())
	}

	return rows, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperr.Invalid("file", "unreadable workbook: "+err.Error())
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperr.Invalid("file", "workbook has no sheets")
	}

	// Raw values keep dates as serial numbers instead of the sheet's display format.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	return rows, nil
}
