package export

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"

	"sales-request-system/internal/entities"
)

// PDFExporter renders a report as a landscape A4 document.
type PDFExporter struct {
	organization string
}

func NewPDFExporter(organization string) Exporter {
	return &PDFExporter{organization: organization}
}

func (e *PDFExporter) ContentType() string   { return "application/pdf" }
func (e *PDFExporter) FileExtension() string { return "pdf" }

// Column widths tuned for landscape A4 (277mm printable).
var pdfColWidths = []float64{10, 28, 40, 24, 24, 24, 20, 30, 22, 28, 27}

func (e *PDFExporter) Render(data *entities.ReportData) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	e.writeHeader(pdf, data)
	e.writeSummary(pdf, data)
	e.writeStatusBreakdown(pdf, data)
	e.writeDetails(pdf, data)
	e.writeColorGuide(pdf)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *PDFExporter) writeHeader(pdf *fpdf.Fpdf, data *entities.ReportData) {
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, e.organization, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, reportTitle(data), "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

func (e *PDFExporter) writeSummary(pdf *fpdf.Fpdf, data *entities.ReportData) {
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, row := range summaryRows(data) {
		pdf.CellFormat(60, 6, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, row[1], "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func (e *PDFExporter) writeStatusBreakdown(pdf *fpdf.Fpdf, data *entities.ReportData) {
	counts := workingSetStatusCounts(data.Requests)
	if len(counts) == 0 {
		return
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "Status Breakdown", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, sc := range counts {
		r, g, b := StatusFillRGB(sc.Name)
		pdf.SetFillColor(r, g, b)
		pdf.CellFormat(60, 6, sc.Name, "1", 0, "L", true, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", sc.Count), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)
}

func (e *PDFExporter) writeDetails(pdf *fpdf.Fpdf, data *entities.ReportData) {
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, "Requests", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 7)
	pdf.SetFillColor(229, 231, 235)
	for i, header := range detailHeaders {
		pdf.CellFormat(pdfColWidths[i], 10, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 7)
	for i, req := range data.Requests {
		rr, rg, rb := StatusFillRGB(req.Status)
		for col, cell := range detailRow(i, req) {
			if col == durationColumn && req.IsOverdue() {
				or, og, ob := hexToRGB(OverdueFillHex)
				pdf.SetFillColor(or, og, ob)
			} else {
				pdf.SetFillColor(rr, rg, rb)
			}
			pdf.CellFormat(pdfColWidths[col], 6, truncate(cell, 42), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func (e *PDFExporter) writeColorGuide(pdf *fpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 7, "Color Guide", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, entry := range colorGuide {
		r, g, b := hexToRGB(entry.Hex)
		pdf.SetFillColor(r, g, b)
		pdf.CellFormat(10, 5, "", "1", 0, "L", true, 0, "")
		pdf.CellFormat(70, 5, entry.Label, "", 1, "L", false, 0, "")
	}
}

// truncate keeps table cells on one line, cutting on rune boundaries.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}
