package dto

// DashboardStatsDTO mirrors the dashboard cards: pending folds the three
// pending statuses into one number.
type DashboardStatsDTO struct {
	Total      int `json:"total"`
	InProgress int `json:"in_progress"`
	Pending    int `json:"pending"`
	Closed     int `json:"closed"`
	Overdue    int `json:"overdue"`
	ClosedWeek int `json:"closed_week"`
}
