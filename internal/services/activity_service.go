package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/iinterntechnologies-oss/crm-tool/internal/events"
	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/repository"
)

// ActivityService handles the append-only activity feed
type ActivityService struct {
	repo      *repository.ActivityRepository
	publisher *events.Publisher
	logger    *logrus.Logger
}

// NewActivityService creates a new activity service. publisher may be nil
// when event streaming is disabled.
func NewActivityService(repo *repository.ActivityRepository, publisher *events.Publisher, logger *logrus.Logger) *ActivityService {
	return &ActivityService{repo: repo, publisher: publisher, logger: logger}
}

// List returns the most recent activities, bounded by limit
func (s *ActivityService) List(ctx context.Context, limit int) ([]models.Activity, error) {
	return s.repo.List(ctx, limit)
}

// Create appends an activity supplied by the caller
func (s *ActivityService) Create(ctx context.Context, req *models.ActivityCreateRequest) (*models.Activity, error) {
	metadata := datatypes.JSON([]byte("{}"))
	if len(req.Metadata) > 0 {
		if !json.Valid(req.Metadata) {
			return nil, fmt.Errorf("%w: metadata is not valid JSON", models.ErrInvalidInput)
		}
		metadata = datatypes.JSON(req.Metadata)
	}

	activity := &models.Activity{
		ActivityType: req.ActivityType,
		EntityType:   req.EntityType,
		EntityID:     req.EntityID,
		EntityName:   req.EntityName,
		Description:  req.Description,
		Metadata:     metadata,
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("creating activity: %w", err)
	}

	s.publish("created", activity)
	return activity, nil
}

// Delete removes an activity
func (s *ActivityService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Record appends an activity on behalf of an entity service. Failures are
// logged and swallowed: the feed must never fail the mutation it narrates.
func (s *ActivityService) Record(ctx context.Context, activityType models.ActivityType, entityType models.EntityType, entityID, entityName, description string, metadata map[string]interface{}) {
	encoded := datatypes.JSON([]byte("{}"))
	if len(metadata) > 0 {
		if data, err := json.Marshal(metadata); err == nil {
			encoded = datatypes.JSON(data)
		}
	}

	activity := &models.Activity{
		ActivityType: activityType,
		EntityType:   entityType,
		EntityID:     entityID,
		EntityName:   entityName,
		Description:  description,
		Metadata:     encoded,
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"activity_type": activityType,
			"entity_type":   entityType,
			"entity_id":     entityID,
		}).Warn("Failed to record activity")
		return
	}

	s.publish("created", activity)
}

func (s *ActivityService) publish(eventType string, activity *models.Activity) {
	if s.publisher == nil {
		return
	}
	go s.publisher.PublishActivity(eventType, activity)
}
