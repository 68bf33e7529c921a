package export

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// Column widths are sized to the longest cell plus padding, capped so one
// verbose field cannot blow up the sheet layout.
const (
	columnPadding  = 2
	maxColumnWidth = 50
)

// WriteExcel writes the dataset as a single-sheet workbook named "Data".
func (d Dataset) WriteExcel(w io.Writer) error {
	if d.Empty() {
		return ErrNoData
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := writeSheet(f, "Data", d, true); err != nil {
		return err
	}
	return f.Write(w)
}

// WriteWorkbook writes one workbook with one sheet per non-empty dataset.
// Empty datasets are skipped; if every dataset is empty nothing is written.
func WriteWorkbook(w io.Writer, datasets []Dataset) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	wrote := false
	for _, d := range datasets {
		if d.Empty() {
			continue
		}
		if err := writeSheet(f, d.Name, d, !wrote); err != nil {
			return err
		}
		wrote = true
	}
	if !wrote {
		return ErrNoData
	}
	return f.Write(w)
}

func writeSheet(f *excelize.File, name string, d Dataset, first bool) error {
	if first {
		// Rename the default sheet instead of leaving an empty "Sheet1" behind.
		if err := f.SetSheetName("Sheet1", name); err != nil {
			return err
		}
	} else {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	header := make([]any, len(d.Columns))
	for i, col := range d.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	row := make([]any, len(d.Columns))
	for n, rec := range d.Rows {
		for i, col := range d.Columns {
			row[i] = rec[col]
		}
		cell, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}

	for i, col := range d.Columns {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := ColumnWidth(d, col)
		if err := f.SetColWidth(name, colName, colName, float64(width)); err != nil {
			return err
		}
	}
	return nil
}

// ColumnWidth computes the display width for a column: the longest value in
// that column (header included) plus padding, capped at maxColumnWidth.
func ColumnWidth(d Dataset, column string) int {
	longest := len(column)
	for _, row := range d.Rows {
		if l := len(row[column]); l > longest {
			longest = l
		}
	}
	width := longest + columnPadding
	if width > maxColumnWidth {
		width = maxColumnWidth
	}
	return width
}
