package services

import (
	"context"

	"github.com/arnold/weeklygoals-api/internal/models"
	"github.com/arnold/weeklygoals-api/internal/store"
)

// SettingsService backs the destructive settings actions.
type SettingsService struct {
	goals    *GoalService
	streaks  *StreakService
	activity *ActivityService
}

func NewSettingsService(goals *GoalService, streaks *StreakService, activity *ActivityService) *SettingsService {
	return &SettingsService{goals: goals, streaks: streaks, activity: activity}
}

// ClearGoals deletes all goals and keeps the streak.
func (s *SettingsService) ClearGoals(ctx context.Context) error {
	return s.goals.Clear(ctx)
}

// ClearAll deletes the goals and then the streak.
func (s *SettingsService) ClearAll(ctx context.Context) error {
	if err := s.goals.store.Remove(ctx, store.GoalsKey); err != nil {
		return err
	}
	if err := s.streaks.Clear(ctx); err != nil {
		return err
	}
	s.activity.Log(ctx, models.ActionDataCleared, nil, map[string]interface{}{
		"scope": "all",
	})
	return nil
}
