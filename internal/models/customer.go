package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a snapshot of a client taken at project completion. It is an
// independent record: converting a client copies fields into a new customer
// row and flags the client completed, with no link between the two.
type Customer struct {
	ID            string  `json:"id" gorm:"type:varchar(36);primaryKey"`
	BusinessName  string  `json:"business_name" gorm:"type:varchar(255);not null"`
	CompletedDate Date    `json:"completed_date"`
	TotalPaid     float64 `json:"total_paid" gorm:"default:0"`

	// Technical specification carried over from the client
	DomainName      *string `json:"domain_name" gorm:"type:varchar(255)"`
	HostingProvider *string `json:"hosting_provider" gorm:"type:varchar(255)"`
	CMSType         *string `json:"cms_type" gorm:"type:varchar(100)"`
	MaintenancePlan bool    `json:"maintenance_plan" gorm:"default:false"`
	RenewalDate     *Date   `json:"renewal_date"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (Customer) TableName() string {
	return "customers"
}
