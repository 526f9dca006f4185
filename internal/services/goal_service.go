package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/repository"
)

// GoalService handles business logic for revenue goals
type GoalService struct {
	goals      *repository.GoalRepository
	activities *ActivityService
	logger     *logrus.Logger
}

// NewGoalService creates a new goal service
func NewGoalService(goals *repository.GoalRepository, activities *ActivityService, logger *logrus.Logger) *GoalService {
	return &GoalService{goals: goals, activities: activities, logger: logger}
}

// List returns all goals, most recently started first
func (s *GoalService) List(ctx context.Context) ([]models.Goal, error) {
	return s.goals.List(ctx)
}

// Get returns a goal by id
func (s *GoalService) Get(ctx context.Context, id string) (*models.Goal, error) {
	return s.goals.GetByID(ctx, id)
}

// Create persists a new goal. An unset start date defaults to today.
func (s *GoalService) Create(ctx context.Context, req *models.GoalCreateRequest) (*models.Goal, error) {
	goal := &models.Goal{
		Title:        req.Title,
		TargetAmount: req.TargetAmount,
		Deadline:     req.Deadline,
		DateStarted:  req.DateStarted,
	}
	if goal.DateStarted.IsZero() {
		goal.DateStarted = models.Today()
	}

	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("creating goal: %w", err)
	}
	return goal, nil
}

// Update applies a partial update to a goal. Flipping is_achieved to true
// stamps date_achieved if the caller did not supply one, and records the
// achievement in the activity feed.
func (s *GoalService) Update(ctx context.Context, id string, req *models.GoalUpdateRequest) (*models.Goal, error) {
	goal, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
	}
	if req.Deadline != nil {
		goal.Deadline = *req.Deadline
	}
	if req.DateStarted != nil {
		goal.DateStarted = *req.DateStarted
	}
	if req.DateAchieved != nil {
		goal.DateAchieved = req.DateAchieved
	}

	justAchieved := false
	if req.IsAchieved != nil && *req.IsAchieved && !goal.IsAchieved {
		justAchieved = true
		goal.IsAchieved = true
		if goal.DateAchieved == nil {
			today := models.Today()
			goal.DateAchieved = &today
		}
	} else if req.IsAchieved != nil {
		goal.IsAchieved = *req.IsAchieved
	}

	if err := s.goals.Save(ctx, goal); err != nil {
		return nil, fmt.Errorf("updating goal: %w", err)
	}

	if justAchieved {
		s.activities.Record(ctx, models.ActivityGoalAchieved, models.EntityGoal,
			goal.ID, goal.Title,
			fmt.Sprintf("Goal achieved: %s", goal.Title),
			map[string]interface{}{"target_amount": goal.TargetAmount})
		s.logger.WithField("goal_id", goal.ID).Info("Goal achieved")
	}

	return goal, nil
}

// Delete removes a goal
func (s *GoalService) Delete(ctx context.Context, id string) error {
	return s.goals.Delete(ctx, id)
}
