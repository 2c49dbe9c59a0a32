package export

import (
	"bytes"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"sales-request-system/internal/entities"
	"sales-request-system/pkg/constants"
)

func TestFormatNGN(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "NGN 0.00"},
		{999, "NGN 999.00"},
		{1000, "NGN 1,000.00"},
		{2500.5, "NGN 2,500.50"},
		{1234567.891, "NGN 1,234,567.89"},
		{-1234.5, "NGN -1,234.50"},
	}
	for _, c := range cases {
		v := c.in
		assert.Equal(t, c.want, FormatNGN(&v))
	}

	assert.Equal(t, "N/A", FormatNGN(nil))
}

func TestStatusFillHex(t *testing.T) {
	assert.Equal(t, "FEF3C7", StatusFillHex(constants.StatusInProgress))
	assert.Equal(t, "E5E7EB", StatusFillHex(constants.StatusPendingPresales))
	assert.Equal(t, "E9D5FF", StatusFillHex(constants.StatusPendingReview))
	assert.Equal(t, "FED7AA", StatusFillHex(constants.StatusPendingApproval))
	assert.Equal(t, "DCFCE7", StatusFillHex(constants.StatusClosed))
	assert.Equal(t, "FFFFFF", StatusFillHex("Retired Status"))
}

func TestHexToRGB(t *testing.T) {
	r, g, b := hexToRGB("FECACA")
	assert.Equal(t, 0xFE, r)
	assert.Equal(t, 0xCA, g)
	assert.Equal(t, 0xCA, b)

	r, g, b = StatusFillRGB("unknown")
	assert.Equal(t, 255, r)
	assert.Equal(t, 255, g)
	assert.Equal(t, 255, b)
}

func sampleReport() *entities.ReportData {
	received := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &entities.ReportData{
		Type:       entities.ReportDaily,
		PeriodFrom: received,
		PeriodTo:   received,
		Created:    2,
		Completed:  1,
		InProgress: 1,
		Overdue:    1,
		Requests: []entities.Request{
			{
				ID: 1, CustomerName: "Acme Ltd", Description: "New internet link",
				Status: constants.StatusClosed, BoqCost: null.Float64From(1500),
				RequesterName:       null.StringFrom("Jane BM"),
				DateRequestReceived: received,
				SentOutDate:         null.TimeFrom(received.AddDate(0, 0, 2)),
				TargetDays:          null.IntFrom(5), DurationDays: 3,
				TeamMemberInvolved: "John Doe",
			},
			{
				ID: 2, CustomerName: "Beta Corp", Description: "Collocation space",
				Status:              constants.StatusInProgress,
				DateRequestReceived: received,
				TargetDays:          null.IntFrom(2), DurationDays: 9,
				TeamMemberInvolved: "Adaeze Okafor",
			},
		},
	}
}

func TestDetailRow(t *testing.T) {
	data := sampleReport()
	row := detailRow(0, data.Requests[0])

	require.Len(t, row, len(detailHeaders))
	assert.Equal(t, "1", row[0])
	assert.Equal(t, "Acme Ltd", row[1])
	assert.Equal(t, "NGN 1,500.00", row[3])
	assert.Equal(t, "Jane BM", row[4])
	assert.Equal(t, "2024-01-01", row[5])
	assert.Equal(t, "5", row[6])
	assert.Equal(t, "2024-01-03", row[7])
	assert.Equal(t, "3", row[durationColumn])

	// Missing optionals.
	row = detailRow(1, data.Requests[1])
	assert.Equal(t, "N/A", row[3])
	assert.Equal(t, "N/A", row[7], "no close date renders as N/A")
}

func TestWorkingSetStatusCounts(t *testing.T) {
	counts := workingSetStatusCounts(sampleReport().Requests)

	require.Len(t, counts, 2)
	// Pipeline order, not insertion order.
	assert.Equal(t, constants.StatusInProgress, counts[0].Name)
	assert.Equal(t, constants.StatusClosed, counts[1].Name)
}

func TestReportTitle(t *testing.T) {
	data := sampleReport()
	assert.Equal(t, "Daily Report - January 1, 2024", reportTitle(data))

	data.Type = entities.ReportWeekly
	data.PeriodTo = data.PeriodFrom.AddDate(0, 0, 6)
	assert.Equal(t, "Weekly Report - January 1, 2024 to January 7, 2024", reportTitle(data))
}

func TestPDFExporterRender(t *testing.T) {
	exporter := NewPDFExporter("GBB Solution Design Team")

	document, err := exporter.Render(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, document)
	assert.True(t, bytes.HasPrefix(document, []byte("%PDF")), "output is a pdf document")

	assert.Equal(t, "application/pdf", exporter.ContentType())
	assert.Equal(t, "pdf", exporter.FileExtension())
}

func TestExcelExporterRender(t *testing.T) {
	exporter := NewExcelExporter("GBB Solution Design Team")

	document, err := exporter.Render(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, document)

	f, err := excelize.OpenReader(bytes.NewReader(document))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "GBB Solution Design Team", title)

	assert.Equal(t, "xlsx", exporter.FileExtension())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "toolong...", truncate("toolongvalue", 10))
}

func TestTruncateMultiByte(t *testing.T) {
	got := truncate("Société Générale Sénégal", 10)
	assert.Equal(t, "Société...", got)
	assert.True(t, utf8.ValidString(got), "cut must land on a rune boundary")

	// Short multi-byte strings whose byte length exceeds max stay intact.
	assert.Equal(t, "ééééé", truncate("ééééé", 5))
}
