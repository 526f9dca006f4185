package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
)

// GoalRepository handles database operations for revenue goals
type GoalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// List retrieves all goals, most recently started first
func (r *GoalRepository) List(ctx context.Context) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.WithContext(ctx).Order("date_started DESC").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// GetByID retrieves a goal by id
func (r *GoalRepository) GetByID(ctx context.Context, id string) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.WithContext(ctx).First(&goal, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// Create persists a new goal
func (r *GoalRepository) Create(ctx context.Context, goal *models.Goal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

// Save writes every column of an existing goal
func (r *GoalRepository) Save(ctx context.Context, goal *models.Goal) error {
	return r.db.WithContext(ctx).Save(goal).Error
}

// Delete removes a goal
func (r *GoalRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Goal{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
