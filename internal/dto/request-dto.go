package dto

import (
	"time"

	"sales-request-system/internal/entities"
)

const dateLayout = "2006-01-02"

type RequestDTO struct {
	ID                  uint64   `json:"id"`
	CustomID            string   `json:"custom_id"`
	CustomerName        string   `json:"customer_name"`
	Description         string   `json:"description"`
	ProjectType         string   `json:"project_type"`
	ServiceType         string   `json:"service_type"`
	Status              string   `json:"status"`
	BoqCost             *float64 `json:"boq_cost"`
	RequesterName       string   `json:"requester_name"`
	Department          string   `json:"department"`
	DateRequestReceived string   `json:"date_request_received"`
	TargetDays          *int     `json:"target_days"`
	SentOutDate         *string  `json:"sent_out_date"`
	DurationDays        int      `json:"duration_days"`
	TeamMemberInvolved  string   `json:"team_member_involved"`
	Comment             string   `json:"comment"`
	CreatedDate         string   `json:"created_date"`
	UpdatedDate         string   `json:"updated_date"`
}

func NewRequestDTO(e entities.Request) RequestDTO {
	d := RequestDTO{
		ID:                  e.ID,
		CustomID:            e.CustomID,
		CustomerName:        e.CustomerName,
		Description:         e.Description,
		ProjectType:         e.ProjectType,
		ServiceType:         e.ServiceType,
		Status:              e.Status,
		RequesterName:       e.RequesterName.String,
		Department:          e.Department.String,
		DateRequestReceived: e.DateRequestReceived.Format(dateLayout),
		DurationDays:        e.DurationDays,
		TeamMemberInvolved:  e.TeamMemberInvolved,
		Comment:             e.Comment.String,
		CreatedDate:         e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedDate:         e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if e.BoqCost.Valid {
		cost := e.BoqCost.Float64
		d.BoqCost = &cost
	}
	if e.TargetDays.Valid {
		target := e.TargetDays.Int
		d.TargetDays = &target
	}
	if e.SentOutDate.Valid {
		sent := e.SentOutDate.Time.Format(dateLayout)
		d.SentOutDate = &sent
	}
	return d
}

func NewRequestDTOs(list []entities.Request) []RequestDTO {
	dtos := make([]RequestDTO, len(list))
	for i, e := range list {
		dtos[i] = NewRequestDTO(e)
	}
	return dtos
}

type CreateRequestDTO struct {
	CustomerName        string   `json:"customer_name" validate:"required"`
	Description         string   `json:"description" validate:"required"`
	ProjectType         string   `json:"project_type"`
	ServiceType         string   `json:"service_type" validate:"omitempty,service_type"`
	BoqCost             *float64 `json:"boq_cost" validate:"omitempty,gte=0"`
	RequesterName       *string  `json:"requester_name"`
	Department          *string  `json:"department"`
	DateRequestReceived string   `json:"date_request_received" validate:"required,calendar_date"`
	TargetDays          *int     `json:"target_days" validate:"omitempty,gt=0"`
	TeamMemberInvolved  string   `json:"team_member_involved" validate:"required"`
	Comment             *string  `json:"comment"`
}

// UpdateRequestDTO is a partial patch: nil fields keep their current values.
type UpdateRequestDTO struct {
	CustomerName        *string  `json:"customer_name" validate:"omitempty,min=1"`
	Description         *string  `json:"description" validate:"omitempty,min=1"`
	ProjectType         *string  `json:"project_type"`
	ServiceType         *string  `json:"service_type" validate:"omitempty,service_type"`
	Status              *string  `json:"status" validate:"omitempty,request_status"`
	BoqCost             *float64 `json:"boq_cost" validate:"omitempty,gte=0"`
	RequesterName       *string  `json:"requester_name"`
	Department          *string  `json:"department"`
	DateRequestReceived *string  `json:"date_request_received" validate:"omitempty,calendar_date"`
	TargetDays          *int     `json:"target_days" validate:"omitempty,gt=0"`
	SentOutDate         *string  `json:"sent_out_date" validate:"omitempty,calendar_date"`
	TeamMemberInvolved  *string  `json:"team_member_involved" validate:"omitempty,min=1"`
	Comment             *string  `json:"comment"`
}

// RequestFilter narrows GetAll by inclusive received-date bounds and the
// overdue flag.
type RequestFilter struct {
	DateFrom    *time.Time
	DateTo      *time.Time
	OverdueOnly bool
}
