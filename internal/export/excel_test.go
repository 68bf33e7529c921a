package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestColumnWidth(t *testing.T) {
	d := Dataset{
		Columns: []string{"email", "note"},
		Rows: []map[string]string{
			{"email": "short@x.co", "note": strings.Repeat("y", 80)},
			{"email": "a-much-longer-address@example.com", "note": "n"},
		},
	}

	// Longest value (33 chars) plus padding.
	assert.Equal(t, 35, ColumnWidth(d, "email"))
	// Verbose cells are capped.
	assert.Equal(t, 50, ColumnWidth(d, "note"))
	// Header length counts when it is the longest value.
	empty := Dataset{Columns: []string{"created_at"}, Rows: []map[string]string{{"created_at": "x"}}}
	assert.Equal(t, len("created_at")+2, ColumnWidth(empty, "created_at"))
}

func TestWriteExcel(t *testing.T) {
	d := Dataset{
		Name:    "Contacts",
		Columns: []string{"id", "name"},
		Rows: []map[string]string{
			{"id": "1", "name": "Ada"},
			{"id": "2", "name": "Grace"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, d.WriteExcel(&buf))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Data"}, f.GetSheetList())

	rows, err := f.GetRows("Data")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "name"}, rows[0])
	assert.Equal(t, []string{"1", "Ada"}, rows[1])
	assert.Equal(t, []string{"2", "Grace"}, rows[2])
}

func TestWriteExcelEmpty(t *testing.T) {
	d := Dataset{Name: "Contacts", Columns: []string{"id"}}
	var buf bytes.Buffer
	assert.ErrorIs(t, d.WriteExcel(&buf), ErrNoData)
}

func TestWriteWorkbookSkipsEmptyDatasets(t *testing.T) {
	datasets := []Dataset{
		{Name: "Contacts", Columns: []string{"id"}, Rows: []map[string]string{{"id": "1"}}},
		{Name: "Applications", Columns: []string{"id"}},
		{Name: "Newsletter", Columns: []string{"email"}, Rows: []map[string]string{{"email": "a@b.co"}}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, datasets))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Contacts", "Newsletter"}, f.GetSheetList())
}

func TestWriteWorkbookAllEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteWorkbook(&buf, []Dataset{{Name: "Contacts", Columns: []string{"id"}}})
	assert.ErrorIs(t, err, ErrNoData)
	assert.Zero(t, buf.Len())
}
