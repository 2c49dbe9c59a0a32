package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"sales-request-system/internal/dto"
	"sales-request-system/internal/repositories"
	"sales-request-system/pkg/config"
	"sales-request-system/pkg/constants"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type DashboardService struct {
	requestRepo repositories.RequestRepositoryInterface
	cacheRepo   repositories.CacheRepositoryInterface
	cfg         *config.Config
	logger      *zap.Logger
}

func NewDashboardService(
	requestRepo repositories.RequestRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	cfg *config.Config,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		requestRepo: requestRepo,
		cacheRepo:   cacheRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

// GetStats returns the dashboard counters, served from Redis when a fresh
// copy exists. Cache failures fall through to the database.
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	if cached, err := s.cacheRepo.Get(ctx, constants.CacheKeyDashboardStats); err == nil {
		var stats dto.DashboardStatsDTO
		if unmarshalErr := json.Unmarshal([]byte(cached), &stats); unmarshalErr == nil {
			return &stats, nil
		} else {
			s.logger.Warn("discarding unreadable cached dashboard stats", zap.Error(unmarshalErr))
		}
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.cacheRepo.Set(ctx, constants.CacheKeyDashboardStats, string(payload), s.cfg.Report.StatsCacheTTL); err != nil {
			s.logger.Warn("failed to cache dashboard stats", zap.Error(err))
		}
	}

	return stats, nil
}

func (s *DashboardService) computeStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	stats := &dto.DashboardStatsDTO{}
	now := time.Now()

	var err error
	if stats.Total, err = s.requestRepo.CountAll(ctx); err != nil {
		return nil, err
	}

	statusCounts, err := s.requestRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats.InProgress = statusCounts[constants.StatusInProgress]
	stats.Pending = statusCounts[constants.StatusPendingPresales] +
		statusCounts[constants.StatusPendingReview] +
		statusCounts[constants.StatusPendingApproval]
	stats.Closed = statusCounts[constants.StatusClosed]

	targeted, err := s.requestRepo.FetchWithTargets(ctx)
	if err != nil {
		return nil, err
	}
	stats.Overdue = countOverdue(targeted, now)

	weekAgo := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -7)
	if stats.ClosedWeek, err = s.requestRepo.CountClosedSince(ctx, weekAgo); err != nil {
		return nil, err
	}

	return stats, nil
}
