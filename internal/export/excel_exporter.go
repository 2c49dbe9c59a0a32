package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"sales-request-system/internal/entities"
)

// ExcelExporter renders a report as an xlsx workbook with one sheet.
type ExcelExporter struct {
	organization string
}

func NewExcelExporter(organization string) Exporter {
	return &ExcelExporter{organization: organization}
}

func (e *ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *ExcelExporter) FileExtension() string { return "xlsx" }

const sheetName = "Report"

func (e *ExcelExporter) Render(data *entities.ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetName)

	row := 1
	row = e.writeHeader(f, data, row)
	row = e.writeSummary(f, data, row)
	row = e.writeStatusBreakdown(f, data, row)
	row = e.writeDetails(f, data, row)
	e.writeColorGuide(f, row)

	e.setColumnWidths(f)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *ExcelExporter) writeHeader(f *excelize.File, data *entities.ReportData, row int) int {
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	f.MergeCell(sheetName, cell(1, row), cell(len(detailHeaders), row))
	f.SetCellValue(sheetName, cell(1, row), e.organization)
	f.SetCellStyle(sheetName, cell(1, row), cell(1, row), titleStyle)
	row++

	f.MergeCell(sheetName, cell(1, row), cell(len(detailHeaders), row))
	f.SetCellValue(sheetName, cell(1, row), reportTitle(data))
	f.SetCellStyle(sheetName, cell(1, row), cell(1, row), titleStyle)

	return row + 2
}

func (e *ExcelExporter) writeSummary(f *excelize.File, data *entities.ReportData, row int) int {
	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	f.SetCellValue(sheetName, cell(1, row), "Summary")
	f.SetCellStyle(sheetName, cell(1, row), cell(1, row), bold)
	row++

	for _, item := range summaryRows(data) {
		f.SetCellValue(sheetName, cell(1, row), item[0])
		f.SetCellValue(sheetName, cell(2, row), item[1])
		row++
	}
	return row + 1
}

func (e *ExcelExporter) writeStatusBreakdown(f *excelize.File, data *entities.ReportData, row int) int {
	counts := workingSetStatusCounts(data.Requests)
	if len(counts) == 0 {
		return row
	}

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellValue(sheetName, cell(1, row), "Status Breakdown")
	f.SetCellStyle(sheetName, cell(1, row), cell(1, row), bold)
	row++

	for _, sc := range counts {
		fill := e.fillStyle(f, StatusFillHex(sc.Name))
		f.SetCellValue(sheetName, cell(1, row), sc.Name)
		f.SetCellStyle(sheetName, cell(1, row), cell(1, row), fill)
		f.SetCellValue(sheetName, cell(2, row), sc.Count)
		row++
	}
	return row + 1
}

func (e *ExcelExporter) writeDetails(f *excelize.File, data *entities.ReportData, row int) int {
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 9},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E5E7EB"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
	})

	headers := make([]interface{}, len(detailHeaders))
	for i, h := range detailHeaders {
		headers[i] = h
	}
	f.SetSheetRow(sheetName, cell(1, row), &headers)
	f.SetCellStyle(sheetName, cell(1, row), cell(len(detailHeaders), row), headerStyle)
	row++

	for i, req := range data.Requests {
		values := detailRow(i, req)
		cells := make([]interface{}, len(values))
		for col, v := range values {
			cells[col] = v
		}
		f.SetSheetRow(sheetName, cell(1, row), &cells)

		statusFill := e.fillStyle(f, StatusFillHex(req.Status))
		f.SetCellStyle(sheetName, cell(1, row), cell(len(values), row), statusFill)
		if req.IsOverdue() {
			overdueFill := e.fillStyle(f, OverdueFillHex)
			f.SetCellStyle(sheetName, cell(durationColumn+1, row), cell(durationColumn+1, row), overdueFill)
		}
		row++
	}
	return row + 1
}

func (e *ExcelExporter) writeColorGuide(f *excelize.File, row int) {
	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellValue(sheetName, cell(1, row), "Color Guide")
	f.SetCellStyle(sheetName, cell(1, row), cell(1, row), bold)
	row++

	for _, entry := range colorGuide {
		fill := e.fillStyle(f, entry.Hex)
		f.SetCellStyle(sheetName, cell(1, row), cell(1, row), fill)
		f.SetCellValue(sheetName, cell(2, row), entry.Label)
		row++
	}
}

func (e *ExcelExporter) fillStyle(f *excelize.File, hex string) int {
	style, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hex}},
	})
	return style
}

func (e *ExcelExporter) setColumnWidths(f *excelize.File) {
	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "B", 24)
	f.SetColWidth(sheetName, "C", "C", 40)
	f.SetColWidth(sheetName, "D", "E", 18)
	f.SetColWidth(sheetName, "F", "I", 16)
	f.SetColWidth(sheetName, "J", "J", 22)
	f.SetColWidth(sheetName, "K", "K", 32)
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
