package services

import (
	"context"
	"encoding/json"
	"log"
	"math"

	"gorm.io/gorm"

	"github.com/arnold/weeklygoals-api/internal/models"
)

// ActivityService records a feed of what happened to goals and the streak.
// A nil *ActivityService records nothing.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Log stores an activity row. Failures are logged and otherwise ignored.
func (s *ActivityService) Log(ctx context.Context, actionType string, goalID *string, metadata map[string]interface{}) {
	if s == nil || s.db == nil {
		return
	}

	activity := models.Activity{
		ActionType: actionType,
		GoalID:     goalID,
	}

	if metadata != nil {
		data, err := json.Marshal(metadata)
		if err == nil {
			m := string(data)
			activity.Metadata = &m
		}
	}

	if err := s.db.WithContext(ctx).Create(&activity).Error; err != nil {
		log.Printf("activity: failed to log %s: %v", actionType, err)
	}
}

// List returns one page of activity, newest first, with the total count.
func (s *ActivityService) List(ctx context.Context, page, limit int) ([]models.Activity, int64, error) {
	activities := []models.Activity{}
	if s == nil || s.db == nil {
		return activities, 0, nil
	}

	if limit < 1 {
		limit = 1
	}
	if maxPage := math.MaxInt32 / limit; page > maxPage {
		page = maxPage
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	db := s.db.WithContext(ctx)
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&activities).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := db.Model(&models.Activity{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	return activities, total, nil
}
