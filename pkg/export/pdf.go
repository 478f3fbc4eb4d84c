package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfPageWidth  = 277.0
	pdfHeaderRowH = 8.0
	pdfBodyRowH   = 7.0
)

// PDF renders tables as a landscape A4 document.
type PDF struct{}

func (PDF) ContentType() string { return "application/pdf" }

func (PDF) Extension() string { return "pdf" }

// Render lays out the title and a bordered grid, repeating the header row on
// every page.
func (PDF) Render(table Table) ([]byte, error) {
	if err := table.validate(); err != nil {
		return nil, err
	}
	doc := gofpdf.New("L", "mm", "A4", "")
	doc.SetMargins(10, 12, 10)
	doc.SetAutoPageBreak(true, 12)

	width := pdfPageWidth / float64(len(table.Columns))
	header := func() {
		doc.SetFont("Arial", "B", 10)
		doc.SetFillColor(230, 230, 230)
		for _, col := range table.Columns {
			doc.CellFormat(width, pdfHeaderRowH, col, "1", 0, "C", true, 0, "")
		}
		doc.Ln(-1)
		doc.SetFont("Arial", "", 9)
	}
	doc.SetHeaderFunc(func() {
		if doc.PageNo() > 1 {
			header()
		}
	})

	doc.AddPage()
	if table.Title != "" {
		doc.SetFont("Arial", "B", 14)
		doc.CellFormat(0, 10, table.Title, "", 1, "C", false, 0, "")
		doc.Ln(3)
	}
	header()
	for _, row := range table.Rows {
		for _, cell := range row {
			doc.CellFormat(width, pdfBodyRowH, cell, "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := doc.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
