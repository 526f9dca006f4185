package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadStatus tracks where a prospect sits in the sales funnel
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusLost      LeadStatus = "lost"
)

// Lead is an unconverted sales prospect
type Lead struct {
	ID           string     `json:"id" gorm:"type:varchar(36);primaryKey"`
	BusinessName string     `json:"business_name" gorm:"type:varchar(255);not null"`
	Contact      string     `json:"contact" gorm:"type:varchar(255)"`
	Comment      string     `json:"comment" gorm:"type:varchar(500)"`
	Status       LeadStatus `json:"status" gorm:"type:varchar(20);default:'new'"`

	// Dependent rows removed by the database when the lead goes away
	Tasks []Task `json:"-" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	Notes []Note `json:"-" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Status == "" {
		l.Status = LeadStatusNew
	}
	return nil
}

func (Lead) TableName() string {
	return "leads"
}
