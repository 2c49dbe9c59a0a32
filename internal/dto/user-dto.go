package dto

import "sales-request-system/internal/entities"

type UserDTO struct {
	ID         uint64 `json:"id"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
	Email      string `json:"email,omitempty"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role"`
}

func NewUserDTO(e entities.User) UserDTO {
	return UserDTO{
		ID:         e.ID,
		Username:   e.Username,
		FullName:   e.FullName,
		Email:      e.Email.String,
		Department: e.Department.String,
		Role:       e.Role,
	}
}

func NewUserDTOs(list []entities.User) []UserDTO {
	dtos := make([]UserDTO, len(list))
	for i, e := range list {
		dtos[i] = NewUserDTO(e)
	}
	return dtos
}
