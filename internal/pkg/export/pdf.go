package export

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF writes a tabular PDF: title line, filled header row, one row per
// record. Column widths are scaled from the Table's Excel-unit widths to fill
// the printable page width.
func WritePDF(w io.Writer, t Table) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	if t.Title != "" {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, 10, t.Title)
		pdf.Ln(12)
	}

	if len(t.Summary) > 0 {
		pdf.SetFont("Helvetica", "", 10)
		for _, summary := range t.Summary {
			line := ""
			for i, value := range summary {
				if i > 0 {
					line += ": "
				}
				line += value
			}
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	printable := pageWidth - left - right

	var totalUnits float64
	for _, col := range t.Columns {
		totalUnits += col.Width
	}
	widths := make([]float64, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = printable * col.Width / totalUnits
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for i, col := range t.Columns {
		pdf.CellFormat(widths[i], 8, col.Header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range t.Rows {
		for i := range t.Columns {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			pdf.CellFormat(widths[i], 7, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
