package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
)

// StatsRepository aggregates the dashboard numbers
type StatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Collect computes the dashboard aggregate: lead count, client count,
// revenue summed across client payments and customer totals, and client
// deadlines falling before the cutoff date.
func (r *StatsRepository) Collect(ctx context.Context, deadlineCutoff models.Date) (*models.Stats, error) {
	stats := &models.Stats{}

	if err := r.db.WithContext(ctx).Model(&models.Lead{}).Count(&stats.TotalLeads).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&models.Client{}).Count(&stats.ActiveProjects).Error; err != nil {
		return nil, err
	}

	var clientRevenue float64
	if err := r.db.WithContext(ctx).Model(&models.Client{}).
		Select("COALESCE(SUM(payment_collected), 0)").
		Scan(&clientRevenue).Error; err != nil {
		return nil, err
	}

	var customerRevenue float64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).
		Select("COALESCE(SUM(total_paid), 0)").
		Scan(&customerRevenue).Error; err != nil {
		return nil, err
	}
	stats.Revenue = clientRevenue + customerRevenue

	if err := r.db.WithContext(ctx).Model(&models.Client{}).
		Where("deadline < ?", deadlineCutoff).
		Count(&stats.Deadlines).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
