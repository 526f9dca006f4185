package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Note is a free-text annotation on a client or a lead. Unlike tasks,
// notes always have a concrete parent; "general" is not a valid kind here.
// The parent reference follows the same dual encoding as Task, with
// ApplyParent as the only writer.
type Note struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Content   string    `json:"content" gorm:"type:varchar(2000);not null"`
	IsPinned  bool      `json:"is_pinned" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Logical parent reference: client or lead
	RelatedTo string `json:"related_to" gorm:"type:varchar(20);not null"`
	RelatedID string `json:"related_id" gorm:"type:varchar(36);not null"`

	// Resolved typed foreign keys; exactly one is non-null
	ClientID *string `json:"client_id" gorm:"type:varchar(36);index"`
	LeadID   *string `json:"lead_id" gorm:"type:varchar(36);index"`
}

// ApplyParent encodes a parent reference into both representations,
// clearing any previously resolved foreign key first.
func (n *Note) ApplyParent(ref ParentRef) {
	n.RelatedTo = string(ref.Kind)
	n.RelatedID = ref.ID
	n.ClientID = nil
	n.LeadID = nil

	switch ref.Kind {
	case ParentClient:
		id := ref.ID
		n.ClientID = &id
	case ParentLead:
		id := ref.ID
		n.LeadID = &id
	}
}

// Parent decodes the stored reference back into the tagged variant
func (n *Note) Parent() ParentRef {
	return ParentRef{Kind: ParentKind(n.RelatedTo), ID: n.RelatedID}
}

func (n *Note) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

func (Note) TableName() string {
	return "notes"
}
