package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/iinterntechnologies-oss/crm-tool/internal/cache"
	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/repository"
)

// deadlineWindowDays is how far ahead the dashboard looks for upcoming
// client deadlines
const deadlineWindowDays = 7

// StatsService computes the dashboard aggregate, backed by a short-TTL
// cache when Redis is configured
type StatsService struct {
	repo   *repository.StatsRepository
	cache  *cache.StatsCache
	logger *logrus.Logger
}

// NewStatsService creates a new stats service. cache may be nil.
func NewStatsService(repo *repository.StatsRepository, statsCache *cache.StatsCache, logger *logrus.Logger) *StatsService {
	return &StatsService{repo: repo, cache: statsCache, logger: logger}
}

// Get returns the dashboard stats, serving from cache when possible
func (s *StatsService) Get(ctx context.Context) (*models.Stats, error) {
	if cached := s.cache.Get(ctx); cached != nil {
		return cached, nil
	}

	cutoff := models.Today().AddDays(deadlineWindowDays)
	stats, err := s.repo.Collect(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("collecting stats: %w", err)
	}

	s.cache.Set(ctx, stats)
	return stats, nil
}
