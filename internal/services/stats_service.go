package services

import (
	"context"
	"fmt"

	"prodorder/internal/models"
	"prodorder/internal/repositories"
)

// recentOrderLimit caps the recent-order list in the statistics summary.
const recentOrderLimit = 5

type StatsServiceInterface interface {
	Summary(ctx context.Context) (*models.StatsSummary, error)
}

type statsService struct {
	statsRepo repositories.StatsRepository
}

// NewStatsService creates a new stats service instance
func NewStatsService(statsRepo repositories.StatsRepository) StatsServiceInterface {
	return &statsService{statsRepo: statsRepo}
}

// Summary recomputes the order counts and recent orders from storage on every
// call; nothing is cached between requests.
func (s *statsService) Summary(ctx context.Context) (*models.StatsSummary, error) {
	stats, err := s.statsRepo.OrderCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate order counts: %w", err)
	}

	recent, err := s.statsRepo.RecentOrders(ctx, recentOrderLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent orders: %w", err)
	}
	if recent == nil {
		recent = []*models.RecentOrder{}
	}

	return &models.StatsSummary{
		Stats:        *stats,
		RecentOrders: recent,
	}, nil
}
