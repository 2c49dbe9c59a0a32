package services

import (
	"context"
	"strings"

	"sales-request-system/internal/dto"
	"sales-request-system/internal/repositories"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context) ([]dto.UserDTO, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
}

func NewUserService(userRepo repositories.UserRepositoryInterface) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

// GetUsers lists assignable team members. The legacy "mahmud" account is a
// retired seed user kept for old activity logs and is hidden here.
func (s *UserService) GetUsers(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	visible := users[:0]
	for _, u := range users {
		if strings.ToLower(u.FullName) == "mahmud" {
			continue
		}
		visible = append(visible, u)
	}

	return dto.NewUserDTOs(visible), nil
}
