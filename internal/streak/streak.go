// Package streak computes daily check-in streaks.
package streak

import (
	"errors"

	"cloud.google.com/go/civil"

	"github.com/arnold/weeklygoals-api/internal/models"
)

var (
	ErrAlreadyCheckedIn   = errors.New("already checked in today")
	ErrInvalidCheckinType = errors.New("check-in type must be partial or full")
)

// Result describes how a check-in moved the current streak.
type Result string

const (
	Advanced   Result = "advanced"   // consecutive full day
	Maintained Result = "maintained" // consecutive partial day
	Restarted  Result = "restarted"  // full day after a gap or first check-in
	Lapsed     Result = "lapsed"     // partial day after a gap or first check-in
)

type Outcome struct {
	Result         Result             `json:"result"`
	Type           models.CheckinType `json:"type"`
	Date           civil.Date         `json:"date"`
	PreviousStreak int                `json:"previousStreak"`
	CurrentStreak  int                `json:"currentStreak"`
	NewRecord      bool               `json:"newRecord"`
}

// DaysSince returns today minus the last check-in date in whole days. ok is
// false when there has been no check-in yet.
func DaysSince(state models.StreakState, today civil.Date) (days int, ok bool) {
	if state.LastCheckinDate == nil {
		return 0, false
	}
	return today.DaysSince(*state.LastCheckinDate), true
}

// CheckIn applies a check-in for today and returns the next state. The input
// state is never modified; on error it is returned as is.
func CheckIn(state models.StreakState, today civil.Date, typ models.CheckinType) (models.StreakState, Outcome, error) {
	if !typ.Valid() {
		return state, Outcome{}, ErrInvalidCheckinType
	}

	days, ok := DaysSince(state, today)
	if ok && days == 0 {
		return state, Outcome{}, ErrAlreadyCheckedIn
	}

	next := state
	next.HeatmapData = state.HeatmapData.Clone()

	var result Result
	switch {
	case ok && days < 0:
		// Last check-in dated after today: the streak is kept as is.
		result = Maintained
	case ok && days == 1:
		if typ == models.CheckinFull {
			next.CurrentStreak++
			result = Advanced
		} else {
			result = Maintained
		}
	default:
		// Gap of two or more days, or no previous check-in.
		if typ == models.CheckinFull {
			next.CurrentStreak = 1
			result = Restarted
		} else {
			next.CurrentStreak = 0
			result = Lapsed
		}
	}

	if next.CurrentStreak > next.LongestStreak {
		next.LongestStreak = next.CurrentStreak
	}

	next.HeatmapData[today] = typ.Intensity()
	date := today
	next.LastCheckinDate = &date
	next.LastCheckinType = &typ

	return next, Outcome{
		Result:         result,
		Type:           typ,
		Date:           today,
		PreviousStreak: state.CurrentStreak,
		CurrentStreak:  next.CurrentStreak,
		NewRecord:      next.LongestStreak > state.LongestStreak,
	}, nil
}

// CanCheckIn reports whether a check-in for today would be accepted.
func CanCheckIn(state models.StreakState, today civil.Date) bool {
	days, ok := DaysSince(state, today)
	return !ok || days != 0
}

// Status is the loaded view of the streak for today. A streak whose last
// check-in is more than a day old shows as 0; the stored value is left for
// the next check-in to resolve.
func Status(state models.StreakState, today civil.Date) models.StreakStatus {
	current := state.CurrentStreak
	if days, ok := DaysSince(state, today); ok && days > 1 {
		current = 0
	}
	return models.StreakStatus{
		CurrentStreak:   current,
		LongestStreak:   state.LongestStreak,
		LastCheckinDate: state.LastCheckinDate,
		LastCheckinType: state.LastCheckinType,
		HeatmapData:     state.HeatmapData.Entries(),
		CanCheckInToday: CanCheckIn(state, today),
		Today:           today,
	}
}
