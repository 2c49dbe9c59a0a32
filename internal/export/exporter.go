package export

import (
	"fmt"
	"strings"
	"time"

	"sales-request-system/internal/entities"
	"sales-request-system/pkg/constants"
)

// Exporter renders an aggregated report into a downloadable document. Both
// renderers share the status color table and overdue highlighting so the PDF
// and the spreadsheet read the same.
type Exporter interface {
	Render(data *entities.ReportData) ([]byte, error)
	ContentType() string
	FileExtension() string
}

var statusFills = map[string]string{
	constants.StatusInProgress:      "FEF3C7",
	constants.StatusPendingPresales: "E5E7EB",
	constants.StatusPendingReview:   "E9D5FF",
	constants.StatusPendingApproval: "FED7AA",
	constants.StatusClosed:          "DCFCE7",
}

// OverdueFillHex highlights the duration cell of an overdue request.
const OverdueFillHex = "FECACA"

// StatusFillHex returns the row background for a status, white for unknown
// statuses.
func StatusFillHex(status string) string {
	if hex, ok := statusFills[status]; ok {
		return hex
	}
	return "FFFFFF"
}

// StatusFillRGB is StatusFillHex decomposed into components.
func StatusFillRGB(status string) (int, int, int) {
	return hexToRGB(StatusFillHex(status))
}

func hexToRGB(hex string) (int, int, int) {
	var r, g, b int
	fmt.Sscanf(hex, "%02X%02X%02X", &r, &g, &b)
	return r, g, b
}

// detailHeaders are the request table columns, identical in both formats.
var detailHeaders = []string{
	"S/N",
	"Customer",
	"Description",
	"BOQ-Cost",
	"BM (Name)",
	"Date Request Received",
	"Target (working days)",
	"Date Sent Out (Date sent to BD/RDIS/EBG)",
	"Duration (Working days)",
	"Team Member Involved",
	"Comment",
}

// durationColumn is the zero-based index of the duration cell that gets the
// overdue highlight.
const durationColumn = 8

// FormatNGN renders a BOQ cost as naira with thousands separators, or "N/A"
// when no cost is recorded.
func FormatNGN(cost *float64) string {
	if cost == nil {
		return "N/A"
	}
	whole := fmt.Sprintf("%.2f", *cost)
	parts := strings.SplitN(whole, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("NGN %s%s.%s", sign, grouped.String(), fracPart)
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// reportTitle builds the "<Type> Report - <period>" heading.
func reportTitle(data *entities.ReportData) string {
	var label string
	switch data.Type {
	case entities.ReportWeekly:
		label = "Weekly"
	case entities.ReportMonthly:
		label = "Monthly"
	default:
		label = "Daily"
	}
	return fmt.Sprintf("%s Report - %s", label, periodLabel(data))
}

func periodLabel(data *entities.ReportData) string {
	if data.Type == entities.ReportDaily {
		return data.PeriodFrom.Format("January 2, 2006")
	}
	return fmt.Sprintf("%s to %s",
		data.PeriodFrom.Format("January 2, 2006"),
		data.PeriodTo.Format("January 2, 2006"))
}

// summaryRows are the scalar counters shown above the request table.
func summaryRows(data *entities.ReportData) [][2]string {
	return [][2]string{
		{"Requests Created", fmt.Sprintf("%d", data.Created)},
		{"Requests Completed", fmt.Sprintf("%d", data.Completed)},
		{"In Progress", fmt.Sprintf("%d", data.InProgress)},
		{"Overdue", fmt.Sprintf("%d", data.Overdue)},
	}
}

// workingSetStatusCounts tallies the request table per status for the
// breakdown block, pipeline order first, unknown statuses after.
func workingSetStatusCounts(requests []entities.Request) []entities.StatusCount {
	counts := make(map[string]int)
	for _, req := range requests {
		counts[req.Status]++
	}

	result := make([]entities.StatusCount, 0, len(counts))
	for _, status := range constants.Statuses {
		if n, ok := counts[status]; ok {
			result = append(result, entities.StatusCount{Name: status, Count: n})
			delete(counts, status)
		}
	}
	for status, n := range counts {
		result = append(result, entities.StatusCount{Name: status, Count: n})
	}
	return result
}

// colorGuide is the legend rendered at the bottom of both formats.
var colorGuide = []struct {
	Label string
	Hex   string
}{
	{"In Progress", statusFills[constants.StatusInProgress]},
	{"Pending with Presales", statusFills[constants.StatusPendingPresales]},
	{"Pending review", statusFills[constants.StatusPendingReview]},
	{"Pending approval", statusFills[constants.StatusPendingApproval]},
	{"Closed Request", statusFills[constants.StatusClosed]},
	{"Overdue (duration cell)", OverdueFillHex},
}

// detailRow flattens one request into table cells.
func detailRow(index int, req entities.Request) []string {
	var boq *float64
	if req.BoqCost.Valid {
		boq = &req.BoqCost.Float64
	}

	target := "N/A"
	if req.TargetDays.Valid && req.TargetDays.Int > 0 {
		target = fmt.Sprintf("%d", req.TargetDays.Int)
	}

	sentOut := "N/A"
	if req.SentOutDate.Valid {
		sentOut = formatDate(req.SentOutDate.Time)
	}

	return []string{
		fmt.Sprintf("%d", index+1),
		req.CustomerName,
		req.Description,
		FormatNGN(boq),
		req.RequesterName.String,
		formatDate(req.DateRequestReceived),
		target,
		sentOut,
		fmt.Sprintf("%d", req.DurationDays),
		req.TeamMemberInvolved,
		req.Comment.String,
	}
}
