package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStage is the delivery-pipeline position of a client project.
// The order is Discovery -> Design -> Development -> UAT -> Launched, but
// no transition order is enforced; any value may be set at any time.
type ProjectStage string

const (
	StageDiscovery   ProjectStage = "Discovery"
	StageDesign      ProjectStage = "Design"
	StageDevelopment ProjectStage = "Development"
	StageUAT         ProjectStage = "UAT"
	StageLaunched    ProjectStage = "Launched"
)

// Client is an actively engaged, paying, in-delivery project
type Client struct {
	ID               string       `json:"id" gorm:"type:varchar(36);primaryKey"`
	BusinessName     string       `json:"business_name" gorm:"type:varchar(255);not null"`
	BusinessType     string       `json:"business_type" gorm:"type:varchar(255)"`
	Contact          string       `json:"contact" gorm:"type:varchar(255)"`
	Onboarding       Date         `json:"onboarding"`
	Deadline         Date         `json:"deadline"`
	Delivery         string       `json:"delivery" gorm:"type:varchar(255)"`
	PaymentCollected float64      `json:"payment_collected" gorm:"default:0"`
	IsCompleted      bool         `json:"is_completed" gorm:"default:false"`

	// Technical specification
	DomainName      *string      `json:"domain_name" gorm:"type:varchar(255)"`
	HostingProvider *string      `json:"hosting_provider" gorm:"type:varchar(255)"`
	CMSType         *string      `json:"cms_type" gorm:"type:varchar(100)"`
	ProjectStage    ProjectStage `json:"project_stage" gorm:"type:varchar(20);default:'Discovery'"`
	MaintenancePlan bool         `json:"maintenance_plan" gorm:"default:false"`
	RenewalDate     *Date        `json:"renewal_date"`

	// Dependent rows removed by the database when the client goes away
	Tasks []Task `json:"-" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Notes []Note `json:"-" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.ProjectStage == "" {
		c.ProjectStage = StageDiscovery
	}
	return nil
}

func (Client) TableName() string {
	return "clients"
}
