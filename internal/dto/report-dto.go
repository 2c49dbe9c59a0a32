package dto

import "sales-request-system/internal/entities"

type ReportDataDTO struct {
	Created    int `json:"created"`
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Overdue    int `json:"overdue"`

	StatusBreakdown []entities.StatusCount         `json:"status_breakdown,omitempty"`
	TeamPerformance []entities.TeamPerformance     `json:"team_performance,omitempty"`
	ProjectTypes    []entities.TypeBreakdown       `json:"project_types,omitempty"`
	Departments     []entities.DepartmentBreakdown `json:"departments,omitempty"`

	Activities []RequestLogDTO `json:"activities"`
	Requests   []RequestDTO    `json:"requests"`
}

func NewReportDataDTO(data *entities.ReportData) ReportDataDTO {
	return ReportDataDTO{
		Created:         data.Created,
		Completed:       data.Completed,
		InProgress:      data.InProgress,
		Overdue:         data.Overdue,
		StatusBreakdown: data.StatusBreakdown,
		TeamPerformance: data.TeamPerformance,
		ProjectTypes:    data.ProjectTypes,
		Departments:     data.Departments,
		Activities:      NewRequestLogDTOs(data.Activities),
		Requests:        NewRequestDTOs(data.Requests),
	}
}
