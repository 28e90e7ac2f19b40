package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const accountingSheet = "Munkaidő"

// RenderXLSX writes the accounting document as a styled workbook with the
// same layout as the PDF: header, summary table, detailed overtime register.
func RenderXLSX(accounting Accounting) ([]byte, error) {
	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	index, err := file.NewSheet(accountingSheet)
	if err != nil {
		return nil, err
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	widths := []float64{20, 15, 15, 15, 40}
	for i, width := range widths {
		column, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetColWidth(accountingSheet, column, column, width); err != nil {
			return nil, err
		}
	}

	titleStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, err
	}
	boldStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	headStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"CCCCCC"}},
	})
	if err != nil {
		return nil, err
	}

	setRow := func(row int, values ...any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		return file.SetSheetRow(accountingSheet, cell, &values)
	}

	if err := setRow(1, accounting.Title); err != nil {
		return nil, err
	}
	if err := setRow(2, accounting.EmployeeLine); err != nil {
		return nil, err
	}
	if err := setRow(4, "Megnevezés", "Mértéke", "Idő"); err != nil {
		return nil, err
	}

	row := 5
	for _, summary := range accounting.Summary {
		if err := setRow(row, summary.Label, summary.Rate, summary.Value); err != nil {
			return nil, err
		}
		row++
	}

	row++
	if err := setRow(row, "Részletes túlórajegyzék"); err != nil {
		return nil, err
	}
	row++
	detailHeadRow := row
	if err := setRow(row, "Dátum", "Kezdés", "Vége", "Idő", "Megjegyzés"); err != nil {
		return nil, err
	}
	row++
	for _, overtime := range accounting.Overtimes {
		if err := setRow(row, overtime.Date, overtime.Start, overtime.End, overtime.Duration, overtime.Reason); err != nil {
			return nil, err
		}
		row++
	}

	if err := file.SetCellStyle(accountingSheet, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}
	if err := file.SetCellStyle(accountingSheet, "A2", "A2", boldStyle); err != nil {
		return nil, err
	}
	if err := file.SetCellStyle(accountingSheet, "A4", "C4", headStyle); err != nil {
		return nil, err
	}
	if err := file.SetCellStyle(accountingSheet,
		fmt.Sprintf("A%d", detailHeadRow-1), fmt.Sprintf("A%d", detailHeadRow-1), boldStyle); err != nil {
		return nil, err
	}
	if err := file.SetCellStyle(accountingSheet,
		fmt.Sprintf("A%d", detailHeadRow), fmt.Sprintf("E%d", detailHeadRow), headStyle); err != nil {
		return nil, err
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
