package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity action types
const (
	ActionGoalCreated   = "goal_created"
	ActionTaskAdded     = "task_added"
	ActionTaskToggled   = "task_toggled"
	ActionWeekCompleted = "week_completed"
	ActionCheckedIn     = "checked_in"
	ActionDataCleared   = "data_cleared"
)

type Activity struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ActionType string    `json:"actionType" gorm:"index;not null"`
	GoalID     *string   `json:"goalId" gorm:"index"`
	Metadata   *string   `json:"metadata"` // JSON string for extra context
	CreatedAt  time.Time `json:"createdAt" gorm:"index"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
