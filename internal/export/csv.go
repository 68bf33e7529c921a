// Package export converts record sets into downloadable CSV and XLSX artifacts.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"
)

// ErrNoData is returned when a dataset has no rows; empty sets are never
// exported as empty files.
var ErrNoData = errors.New("no records to export")

// Dataset is a schema-less record set: an ordered column list plus rows
// mapping column name to printable value. Missing keys render empty.
type Dataset struct {
	Name    string
	Columns []string
	Rows    []map[string]string
}

// Empty reports whether the dataset has no rows.
func (d Dataset) Empty() bool {
	return len(d.Rows) == 0
}

// WriteCSV writes the dataset as RFC 4180 CSV: the header row first, then one
// line per record with the same column order throughout. Fields containing
// commas or quotes are quoted with internal quotes doubled.
func (d Dataset) WriteCSV(w io.Writer) error {
	if d.Empty() {
		return ErrNoData
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(d.Columns); err != nil {
		return err
	}

	record := make([]string, len(d.Columns))
	for _, row := range d.Rows {
		for i, col := range d.Columns {
			record[i] = row[col]
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Filename builds the download name for an export artifact: {base}_{YYYY-MM-DD}.{ext}.
func Filename(base, ext string) string {
	return FilenameAt(base, ext, time.Now())
}

// FilenameAt is Filename with an explicit timestamp.
func FilenameAt(base, ext string, t time.Time) string {
	return fmt.Sprintf("%s_%s.%s", base, t.Format("2006-01-02"), ext)
}
