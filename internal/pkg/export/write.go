package export

import "io"

// Write renders the table in the requested format.
func Write(w io.Writer, f Format, t Table) error {
	switch f {
	case FormatPDF:
		return WritePDF(w, t)
	case FormatExcel:
		return WriteExcel(w, t)
	case FormatCSV:
		return WriteCSV(w, t)
	default:
		return ErrUnknownFormat
	}
}
