package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteExcel writes a single-worksheet workbook with explicit column headers
// and widths, one row per record. Summary rows, when present, sit above the
// data table.
func WriteExcel(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Sheet
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		index, err := f.NewSheet(sheet)
		if err != nil {
			return fmt.Errorf("create worksheet: %w", err)
		}
		f.SetActiveSheet(index)
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("drop default worksheet: %w", err)
		}
	}

	for i, col := range t.Columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheet, name, name, col.Width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	rowNum := 1

	if t.Title != "" {
		titleStyle, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Size: 14},
		})
		if err != nil {
			return fmt.Errorf("title style: %w", err)
		}
		cell := fmt.Sprintf("A%d", rowNum)
		if err := f.SetCellValue(sheet, cell, t.Title); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, titleStyle); err != nil {
			return err
		}
		rowNum += 2
	}

	for _, summary := range t.Summary {
		for i, value := range summary {
			cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
		rowNum++
	}
	if len(t.Summary) > 0 {
		rowNum++
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}
	rowNum++

	for _, row := range t.Rows {
		for i, value := range row {
			cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
		rowNum++
	}

	return f.Write(w)
}
