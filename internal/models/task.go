package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskPriority ranks how urgently a task needs attention
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// TaskStatus tracks a task through its lifecycle
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

// Task is an actionable item optionally hanging off a client or a lead.
// It carries the parent reference twice: the logical pair
// (related_to, related_id) kept for wire compatibility, and the resolved
// typed foreign keys client_id/lead_id that back the cascade constraints.
// ApplyParent is the only writer of these fields, so at most one foreign
// key is ever non-null and it always agrees with the logical pair.
type Task struct {
	ID          string       `json:"id" gorm:"type:varchar(36);primaryKey"`
	Title       string       `json:"title" gorm:"type:varchar(255);not null"`
	Description string       `json:"description" gorm:"type:varchar(1000)"`
	Priority    TaskPriority `json:"priority" gorm:"type:varchar(20);default:'medium'"`
	Status      TaskStatus   `json:"status" gorm:"type:varchar(20);default:'pending'"`
	DueDate     *Date        `json:"due_date"`
	CompletedAt *time.Time   `json:"completed_at"`
	CreatedAt   time.Time    `json:"created_at"`

	// Logical parent reference: client, lead or general
	RelatedTo string  `json:"related_to" gorm:"type:varchar(20);not null"`
	RelatedID *string `json:"related_id" gorm:"type:varchar(36)"`

	// Resolved typed foreign keys; both null when related_to is general
	ClientID *string `json:"client_id" gorm:"type:varchar(36);index"`
	LeadID   *string `json:"lead_id" gorm:"type:varchar(36);index"`

	// Template provenance for generated tasks
	TaskTemplate *string `json:"task_template" gorm:"type:varchar(50)"`
	ServiceType  *string `json:"service_type" gorm:"type:varchar(50)"`
	IsTemplate   bool    `json:"is_template" gorm:"default:false"`
}

// ApplyParent encodes a parent reference into both representations,
// clearing any previously resolved foreign key first so a repointed task
// never retains a key to its old parent kind.
func (t *Task) ApplyParent(ref ParentRef) {
	t.RelatedTo = string(ref.Kind)
	t.RelatedID = nil
	t.ClientID = nil
	t.LeadID = nil

	switch ref.Kind {
	case ParentClient:
		id := ref.ID
		t.RelatedID = &id
		t.ClientID = &id
	case ParentLead:
		id := ref.ID
		t.RelatedID = &id
		t.LeadID = &id
	}
}

// Parent decodes the stored reference back into the tagged variant
func (t *Task) Parent() ParentRef {
	ref := ParentRef{Kind: ParentKind(t.RelatedTo)}
	if t.RelatedID != nil {
		ref.ID = *t.RelatedID
	}
	return ref
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.Status == "" {
		t.Status = TaskPending
	}
	return nil
}

func (Task) TableName() string {
	return "tasks"
}
