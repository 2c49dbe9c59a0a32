package dto

import "sales-request-system/internal/entities"

type RequestLogDTO struct {
	ID           uint64 `json:"id"`
	RequestID    uint64 `json:"request_id"`
	UserID       uint64 `json:"user_id"`
	UserName     string `json:"user_name"`
	Action       string `json:"action"`
	FieldName    string `json:"field_name,omitempty"`
	OldValue     string `json:"old_value,omitempty"`
	NewValue     string `json:"new_value,omitempty"`
	Timestamp    string `json:"timestamp"`
	CustomerName string `json:"customer_name,omitempty"`
}

func NewRequestLogDTO(e entities.RequestLog) RequestLogDTO {
	return RequestLogDTO{
		ID:           e.ID,
		RequestID:    e.RequestID,
		UserID:       e.UserID,
		UserName:     e.UserName,
		Action:       e.Action,
		FieldName:    e.FieldName.String,
		OldValue:     e.OldValue.String,
		NewValue:     e.NewValue.String,
		Timestamp:    e.Timestamp.Format("2006-01-02 15:04:05"),
		CustomerName: e.CustomerName,
	}
}

func NewRequestLogDTOs(list []entities.RequestLog) []RequestLogDTO {
	dtos := make([]RequestLogDTO, len(list))
	for i, e := range list {
		dtos[i] = NewRequestLogDTO(e)
	}
	return dtos
}
