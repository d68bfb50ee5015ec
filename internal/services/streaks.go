package services

import (
	"context"
	"time"

	"cloud.google.com/go/civil"

	"github.com/arnold/weeklygoals-api/internal/models"
	"github.com/arnold/weeklygoals-api/internal/store"
	"github.com/arnold/weeklygoals-api/internal/streak"
)

// StreakService loads the streak document, runs a check-in through the
// streak engine and saves the whole document back.
type StreakService struct {
	store    store.Store
	activity *ActivityService
	push     *PushService
	now      func() time.Time
	loc      *time.Location
}

func NewStreakService(st store.Store, activity *ActivityService, push *PushService, now func() time.Time, loc *time.Location) *StreakService {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &StreakService{store: st, activity: activity, push: push, now: now, loc: loc}
}

// Today is the current calendar date in the configured time zone.
func (s *StreakService) Today() civil.Date {
	return civil.DateOf(s.now().In(s.loc))
}

func (s *StreakService) load(ctx context.Context) (models.StreakState, error) {
	var state models.StreakState
	if _, err := store.GetJSON(ctx, s.store, store.StreakKey, &state); err != nil {
		return models.StreakState{}, err
	}
	if state.HeatmapData == nil {
		state.HeatmapData = models.Heatmap{}
	}
	return state, nil
}

// Status returns the streak as of today.
func (s *StreakService) Status(ctx context.Context) (models.StreakStatus, error) {
	state, err := s.load(ctx)
	if err != nil {
		return models.StreakStatus{}, err
	}
	return streak.Status(state, s.Today()), nil
}

// CheckIn records today's check-in. Nothing is written when today already
// has one.
func (s *StreakService) CheckIn(ctx context.Context, typ models.CheckinType) (models.StreakStatus, streak.Outcome, error) {
	state, err := s.load(ctx)
	if err != nil {
		return models.StreakStatus{}, streak.Outcome{}, err
	}

	today := s.Today()
	next, out, err := streak.CheckIn(state, today, typ)
	if err != nil {
		return models.StreakStatus{}, streak.Outcome{}, err
	}

	if err := store.SetJSON(ctx, s.store, store.StreakKey, next); err != nil {
		return models.StreakStatus{}, streak.Outcome{}, err
	}

	s.activity.Log(ctx, models.ActionCheckedIn, nil, map[string]interface{}{
		"date":          today.String(),
		"type":          string(typ),
		"result":        string(out.Result),
		"currentStreak": out.CurrentStreak,
	})
	s.push.NotifyCheckIn(ctx, out)

	return streak.Status(next, today), out, nil
}

// Clear removes the streak document.
func (s *StreakService) Clear(ctx context.Context) error {
	return s.store.Remove(ctx, store.StreakKey)
}
