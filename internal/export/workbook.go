package export

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type cellKind int

const (
	cellText cellKind = iota
	cellMoney
	cellNumber
	cellDate
)

type column struct {
	title string
	width float64
	kind  cellKind
	// total marks money columns summed into the totals row.
	total bool
}

type sheet struct {
	name    string
	columns []column
	rows    [][]any
}

const (
	moneyFormat = "#,##0.00"
	dateFormat  = "dd-mm-yyyy"
)

type styles struct {
	header, money, number, date, totalLabel, totalMoney int
}

func newStyles(f *excelize.File) (styles, error) {
	var (
		s   styles
		err error
	)

	moneyFmt, dateFmt := moneyFormat, dateFormat

	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 11},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
			Border:    []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
			Alignment: &excelize.Alignment{Vertical: "center"},
		}},
		{&s.money, &excelize.Style{CustomNumFmt: &moneyFmt}},
		{&s.number, &excelize.Style{NumFmt: 2}},
		{&s.date, &excelize.Style{CustomNumFmt: &dateFmt}},
		{&s.totalLabel, &excelize.Style{
			Font:   &excelize.Font{Bold: true},
			Border: []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
		}},
		{&s.totalMoney, &excelize.Style{
			Font:         &excelize.Font{Bold: true},
			Border:       []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
			CustomNumFmt: &moneyFmt,
		}},
	}

	for _, d := range defs {
		if *d.dst, err = f.NewStyle(d.style); err != nil {
			return s, fmt.Errorf("creating style: %w", err)
		}
	}

	return s, nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// write renders sh as a single-sheet workbook: a styled header, one row per record
// and a totals row summing every column marked total.
func write(w io.Writer, sh sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sh.name); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	st, err := newStyles(f)
	if err != nil {
		return err
	}

	for i, c := range sh.columns {
		cell := cellName(i+1, 1)
		if err := f.SetCellValue(sh.name, cell, c.title); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}

		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sh.name, col, col, c.width); err != nil {
			return fmt.Errorf("sizing column %s: %w", col, err)
		}
	}

	if err := f.SetCellStyle(sh.name, cellName(1, 1), cellName(len(sh.columns), 1), st.header); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	totals := make([]decimal.Decimal, len(sh.columns))

	for r, values := range sh.rows {
		row := r + 2

		for i, c := range sh.columns {
			if err := writeCell(f, sh.name, st, c, cellName(i+1, row), values[i]); err != nil {
				return err
			}

			if d, ok := values[i].(decimal.Decimal); ok && c.total {
				totals[i] = totals[i].Add(d)
			}
		}
	}

	totalRow := len(sh.rows) + 2

	if err := f.SetCellValue(sh.name, cellName(1, totalRow), "Total"); err != nil {
		return fmt.Errorf("writing totals: %w", err)
	}

	if err := f.SetCellStyle(sh.name, cellName(1, totalRow), cellName(len(sh.columns), totalRow), st.totalLabel); err != nil {
		return fmt.Errorf("styling totals: %w", err)
	}

	for i, c := range sh.columns {
		if !c.total {
			continue
		}

		cell := cellName(i+1, totalRow)
		if err := f.SetCellValue(sh.name, cell, totals[i].InexactFloat64()); err != nil {
			return fmt.Errorf("writing totals: %w", err)
		}

		if err := f.SetCellStyle(sh.name, cell, cell, st.totalMoney); err != nil {
			return fmt.Errorf("styling totals: %w", err)
		}
	}

	if err := f.SetPanes(sh.name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

func writeCell(f *excelize.File, sheetName string, st styles, c column, cell string, v any) error {
	var style int

	switch val := v.(type) {
	case nil:
		return nil
	case decimal.Decimal:
		v = val.InexactFloat64()

		style = st.money
		if c.kind == cellNumber {
			style = st.number
		}
	case *decimal.Decimal:
		if val == nil {
			return nil
		}

		return writeCell(f, sheetName, st, c, cell, *val)
	case time.Time:
		if val.IsZero() {
			return nil
		}

		style = st.date
	}

	if err := f.SetCellValue(sheetName, cell, v); err != nil {
		return fmt.Errorf("writing %s: %w", cell, err)
	}

	if style != 0 {
		if err := f.SetCellStyle(sheetName, cell, cell, style); err != nil {
			return fmt.Errorf("styling %s: %w", cell, err)
		}
	}

	return nil
}
