package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityType names the event recorded in the activity feed
type ActivityType string

const (
	ActivityLeadCreated       ActivityType = "lead_created"
	ActivityClientAdded       ActivityType = "client_added"
	ActivityCustomerCompleted ActivityType = "customer_completed"
	ActivityGoalAchieved      ActivityType = "goal_achieved"
	ActivityTaskCompleted     ActivityType = "task_completed"
)

// EntityType names the kind of record an activity refers to
type EntityType string

const (
	EntityLead     EntityType = "lead"
	EntityClient   EntityType = "client"
	EntityCustomer EntityType = "customer"
	EntityGoal     EntityType = "goal"
	EntityTask     EntityType = "task"
)

// Activity is an append-only audit entry. It carries only a logical
// reference (entity_type, entity_id) with no enforced foreign key, plus a
// denormalized entity_name snapshot so the feed stays readable after the
// referenced row is gone. Rows are immutable after creation except for
// deletion; orphans are collected by the offline integrity sweep.
type Activity struct {
	ID           string         `json:"id" gorm:"type:varchar(36);primaryKey"`
	ActivityType ActivityType   `json:"activity_type" gorm:"type:varchar(50);not null"`
	EntityType   EntityType     `json:"entity_type" gorm:"type:varchar(50);not null"`
	EntityID     string         `json:"entity_id" gorm:"type:varchar(36);not null"`
	EntityName   string         `json:"entity_name" gorm:"type:varchar(255)"`
	Description  string         `json:"description" gorm:"type:varchar(500)"`
	Metadata     datatypes.JSON `json:"metadata"`
	CreatedAt    time.Time      `json:"created_at" gorm:"index"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if len(a.Metadata) == 0 {
		a.Metadata = datatypes.JSON([]byte("{}"))
	}
	return nil
}

func (Activity) TableName() string {
	return "activities"
}
