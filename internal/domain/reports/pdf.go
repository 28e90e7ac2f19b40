package reports

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF lays the accounting document out as an A4 portrait PDF: summary
// table, overtime register, signature lines.
func RenderPDF(accounting Accounting) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, tr(accounting.Title))
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, tr(accounting.EmployeeLine))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(44, 62, 80)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(80, 7, tr("Megnevezés"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 7, tr("Mértéke"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, tr("Idő"), "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range accounting.Summary {
		pdf.CellFormat(80, 6, tr(row.Label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, row.Rate, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, tr(row.Value), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, tr("Részletes túlórajegyzék"))
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(220, 53, 69)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(30, 6, tr("Dátum"), "1", 0, "R", true, 0, "")
	pdf.CellFormat(20, 6, tr("Kezdés"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 6, tr("Vége"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 6, tr("Idő"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(92, 6, tr("Megjegyzés"), "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range accounting.Overtimes {
		pdf.CellFormat(30, 5.5, row.Date, "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 5.5, row.Start, "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 5.5, row.End, "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 5.5, row.Duration, "1", 0, "C", false, 0, "")
		pdf.CellFormat(92, 5.5, tr(row.Reason), "1", 1, "L", false, 0, "")
	}

	y := pdf.GetY() + 20
	if y > 270 {
		pdf.AddPage()
		y = 30
	}
	pdf.SetLineWidth(0.5)
	pdf.SetFont("Helvetica", "B", 9)
	signatures := []struct {
		x     float64
		label string
	}{
		{14, "Dolgozó"},
		{85, "Ellenőrizte"},
		{156, "Jóváhagyta"},
	}
	for _, sig := range signatures {
		pdf.Line(sig.x, y, sig.x+40, y)
		pdf.SetXY(sig.x, y+1)
		pdf.CellFormat(40, 5, tr(sig.label), "", 0, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
