package export

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes the header row and one record per row. Summary rows are an
// Excel/PDF embellishment and are not part of the CSV contract.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col.Header
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
