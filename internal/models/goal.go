package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal is a revenue target with a start date and a deadline
type Goal struct {
	ID           string  `json:"id" gorm:"type:varchar(36);primaryKey"`
	Title        string  `json:"title" gorm:"type:varchar(255)"`
	TargetAmount float64 `json:"target_amount" gorm:"not null"`
	Deadline     Date    `json:"deadline"`
	DateStarted  Date    `json:"date_started"`
	DateAchieved *Date   `json:"date_achieved"`
	IsAchieved   bool    `json:"is_achieved" gorm:"default:false"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

func (Goal) TableName() string {
	return "goals"
}
