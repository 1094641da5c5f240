// Package export renders an in-memory record set to the three download
// formats the dashboard offers. All formats consume the same Table built once
// by the caller, which is what keeps row counts and cell strings identical
// across PDF, Excel and CSV.
package export

import (
	"errors"
	"strings"
)

// Format is a requested download format.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "xlsx"
	FormatCSV   Format = "csv"
)

var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat normalizes a query-string format value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "xlsx", "excel":
		return FormatExcel, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", ErrUnknownFormat
	}
}

// ContentType returns the download MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatCSV:
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}

// Ext returns the file extension, dot included.
func (f Format) Ext() string {
	switch f {
	case FormatPDF:
		return ".pdf"
	case FormatExcel:
		return ".xlsx"
	case FormatCSV:
		return ".csv"
	default:
		return ""
	}
}

// Column describes one table column. Width is in Excel character units; the
// PDF writer scales widths proportionally to the page.
type Column struct {
	Header string
	Width  float64
}

// Table is the format-independent tabular snapshot of a record set. Callers
// build it from their already-loaded view state; the writers below never
// modify it.
type Table struct {
	// Title is printed above the table in PDF and Excel output.
	Title string
	// Sheet names the Excel worksheet.
	Sheet string
	// Summary rows are prepended above the data table (Reports period and
	// aggregate counts). They do not count as data rows.
	Summary [][]string
	Columns []Column
	Rows    [][]string
}
