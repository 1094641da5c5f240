package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() Table {
	return Table{
		Title: "Attendance Report - 2025-03-10",
		Sheet: "Attendance",
		Columns: []Column{
			{Header: "Employee", Width: 28},
			{Header: "Check-In", Width: 14},
			{Header: "Check-Out", Width: 14},
			{Header: "Status", Width: 18},
		},
		Rows: [][]string{
			{"Alice", "09:05 AM", "05:10 PM", "present"},
			{"Bob", "-", "-", "absent"},
			{"Carol", "08:55 AM", "-", "present"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"pdf":   FormatPDF,
		"PDF":   FormatPDF,
		"xlsx":  FormatExcel,
		"excel": FormatExcel,
		" csv ": FormatCSV,
	} {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseFormat("docx")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, err = ParseFormat("")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteCSV(t *testing.T) {
	table := sampleTable()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 4, "header plus one line per record")
	assert.Equal(t, []string{"Employee", "Check-In", "Check-Out", "Status"}, records[0])
	assert.Equal(t, []string{"Alice", "09:05 AM", "05:10 PM", "present"}, records[1])
}

func TestWriteCSVSkipsSummary(t *testing.T) {
	table := sampleTable()
	table.Summary = [][]string{{"Period", "2025-03-01 to 2025-03-10"}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, table))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 4, "summary rows stay out of the CSV")
}

func TestWriteExcelRoundTrip(t *testing.T) {
	table := sampleTable()

	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, table))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)

	// Title row, blank, header, then data
	require.GreaterOrEqual(t, len(rows), 6)
	assert.Equal(t, "Attendance Report - 2025-03-10", rows[0][0])
	assert.Equal(t, []string{"Employee", "Check-In", "Check-Out", "Status"}, rows[2])
	assert.Equal(t, []string{"Alice", "09:05 AM", "05:10 PM", "present"}, rows[3])
	assert.Equal(t, []string{"Bob", "-", "-", "absent"}, rows[4])
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sampleTable()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output starts with the PDF magic")
	assert.Greater(t, buf.Len(), 500)
}

// Every writer renders the identical table, so the formatted cell strings
// can never drift between formats.
func TestFormatParity(t *testing.T) {
	table := sampleTable()

	var csvBuf, xlsxBuf, pdfBuf bytes.Buffer
	require.NoError(t, Write(&csvBuf, FormatCSV, table))
	require.NoError(t, Write(&xlsxBuf, FormatExcel, table))
	require.NoError(t, Write(&pdfBuf, FormatPDF, table))

	csvRecords, err := csv.NewReader(strings.NewReader(csvBuf.String())).ReadAll()
	require.NoError(t, err)

	f, err := excelize.OpenReader(&xlsxBuf)
	require.NoError(t, err)
	defer f.Close()
	xlsxRows, err := f.GetRows("Attendance")
	require.NoError(t, err)

	// Same row count: CSV has header+data, the workbook adds title and a
	// spacer above them.
	assert.Equal(t, len(csvRecords), len(xlsxRows)-2)

	// Identical check-in/check-out strings row by row
	for i, rec := range csvRecords[1:] {
		assert.Equal(t, rec[1], xlsxRows[i+3][1])
		assert.Equal(t, rec[2], xlsxRows[i+3][2])
	}
}

func TestWritersDoNotMutateTable(t *testing.T) {
	table := sampleTable()
	original := sampleTable()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, table))
	buf.Reset()
	require.NoError(t, Write(&buf, FormatExcel, table))
	buf.Reset()
	require.NoError(t, Write(&buf, FormatPDF, table))

	assert.Equal(t, original, table)
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Format("docx"), sampleTable())
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
