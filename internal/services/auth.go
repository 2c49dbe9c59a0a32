package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"sales-request-system/internal/dto"
	"sales-request-system/internal/repositories"
	"sales-request-system/pkg/constants"
	apperrors "sales-request-system/pkg/errors"
	"sales-request-system/pkg/service"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, data dto.LoginDTO) (*dto.TokenPairDTO, error)
	Refresh(ctx context.Context, data dto.RefreshDTO) (*dto.TokenPairDTO, error)
}

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	cacheRepo  repositories.CacheRepositoryInterface
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:   userRepo,
		cacheRepo:  cacheRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (s *AuthService) Login(ctx context.Context, data dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepo.FindByUsername(ctx, data.Username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(data.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user.ID)
}

// Refresh exchanges a valid refresh token for a new pair. The presented
// token's jti must match the one stored at login; rotation invalidates the
// old token.
func (s *AuthService) Refresh(ctx context.Context, data dto.RefreshDTO) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(data.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	storedJTI, err := s.cacheRepo.Get(ctx, fmt.Sprintf(constants.CacheKeyRefreshJTI, claims.UserID))
	if err != nil || storedJTI != claims.ID {
		return nil, apperrors.ErrInvalidToken
	}

	return s.issueTokens(ctx, claims.UserID)
}

func (s *AuthService) issueTokens(ctx context.Context, userID uint64) (*dto.TokenPairDTO, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	access, refresh, refreshJTI, err := s.jwtService.GenerateTokens(user.ID)
	if err != nil {
		s.logger.Error("failed to generate tokens", zap.Uint64("userID", user.ID), zap.Error(err))
		return nil, err
	}

	key := fmt.Sprintf(constants.CacheKeyRefreshJTI, user.ID)
	if err := s.cacheRepo.Set(ctx, key, refreshJTI, s.jwtService.GetRefreshTokenTTL()); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenPairDTO{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.NewUserDTO(*user),
	}, nil
}
