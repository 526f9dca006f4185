package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/repository"
)

// TaskService handles business logic for tasks. Parent references are
// validated and resolved here; the storage layer never sees a task whose
// logical reference and typed foreign keys disagree.
type TaskService struct {
	tasks      *repository.TaskRepository
	activities *ActivityService
	logger     *logrus.Logger
}

// NewTaskService creates a new task service
func NewTaskService(tasks *repository.TaskRepository, activities *ActivityService, logger *logrus.Logger) *TaskService {
	return &TaskService{tasks: tasks, activities: activities, logger: logger}
}

// List returns all tasks, newest first
func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	return s.tasks.List(ctx)
}

// Get returns a task by id
func (s *TaskService) Get(ctx context.Context, id string) (*models.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

// Create validates the parent reference and persists a new task. Tasks may
// be general, so related_to=general with no id is accepted.
func (s *TaskService) Create(ctx context.Context, req *models.TaskCreateRequest) (*models.Task, error) {
	ref, err := models.ParseParentRef(req.RelatedTo, req.RelatedID, true)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:        req.Title,
		Description:  req.Description,
		Priority:     req.Priority,
		Status:       req.Status,
		DueDate:      req.DueDate,
		TaskTemplate: req.TaskTemplate,
		ServiceType:  req.ServiceType,
		IsTemplate:   req.IsTemplate,
	}
	task.ApplyParent(ref)

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return task, nil
}

// Update applies a partial update to a task. Touching either half of the
// parent pair re-resolves the whole reference from the effective values, so
// a repointed task never keeps a foreign key to its old parent. Completing
// a task stamps completed_at and records it in the activity feed.
func (s *TaskService) Update(ctx context.Context, id string, req *models.TaskUpdateRequest) (*models.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.TaskTemplate != nil {
		task.TaskTemplate = req.TaskTemplate
	}
	if req.ServiceType != nil {
		task.ServiceType = req.ServiceType
	}
	if req.IsTemplate != nil {
		task.IsTemplate = *req.IsTemplate
	}

	if req.TouchesParent() {
		relatedTo := task.RelatedTo
		if req.RelatedTo != nil {
			relatedTo = *req.RelatedTo
		}
		relatedID := ""
		if task.RelatedID != nil {
			relatedID = *task.RelatedID
		}
		if req.RelatedID != nil {
			relatedID = *req.RelatedID
		}

		ref, err := models.ParseParentRef(relatedTo, relatedID, true)
		if err != nil {
			return nil, err
		}
		task.ApplyParent(ref)
	}

	justCompleted := false
	if req.Status != nil {
		if *req.Status == models.TaskCompleted && task.Status != models.TaskCompleted {
			justCompleted = true
			now := time.Now().UTC()
			task.CompletedAt = &now
		}
		task.Status = *req.Status
	}

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}

	if justCompleted {
		s.activities.Record(ctx, models.ActivityTaskCompleted, models.EntityTask,
			task.ID, task.Title,
			fmt.Sprintf("Task completed: %s", task.Title), nil)
	}

	return task, nil
}

// Delete removes a task
func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
