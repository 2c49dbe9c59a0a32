package entities

import "time"

// ReportType selects the reporting period granularity and the activity cap.
type ReportType string

const (
	ReportDaily   ReportType = "daily"
	ReportWeekly  ReportType = "weekly"
	ReportMonthly ReportType = "monthly"
)

// ActivityLimit is the format-dependent cap on log entries per report.
func (t ReportType) ActivityLimit() int {
	switch t {
	case ReportWeekly:
		return 100
	case ReportMonthly:
		return 200
	default:
		return 50
	}
}

type StatusCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type TeamPerformance struct {
	Name      string `json:"name"`
	Completed int    `json:"completed"`
}

type TypeBreakdown struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	AvgDays float64 `json:"avg_days"`
}

type DepartmentBreakdown struct {
	Name     string  `json:"name"`
	Requests int     `json:"requests"`
	AvgDays  float64 `json:"avg_response"`
}

// ReportData is the aggregated result for one reporting period. Both
// renderers consume it as-is.
type ReportData struct {
	Type       ReportType
	PeriodFrom time.Time
	PeriodTo   time.Time

	Created    int
	Completed  int
	InProgress int // global, not period-scoped
	Overdue    int // global, live-recomputed

	StatusBreakdown []StatusCount         // weekly
	TeamPerformance []TeamPerformance     // weekly
	ProjectTypes    []TypeBreakdown       // monthly
	Departments     []DepartmentBreakdown // monthly

	Activities []RequestLog

	// Requests is the working set: every non-closed request plus every
	// request closed inside the period, sorted by status priority.
	Requests []Request
}
