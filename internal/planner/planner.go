// Package planner splits a goal's date range into calendar weeks and measures
// task completion across them.
package planner

import (
	"math"
	"time"

	"cloud.google.com/go/civil"

	"github.com/arnold/weeklygoals-api/internal/models"
)

// WeekStart returns the Sunday on or before d.
func WeekStart(d civil.Date) civil.Date {
	return d.AddDays(-int(d.In(time.UTC).Weekday()))
}

// Weeks partitions [start, end] into Sunday-aligned weeks keyed week_0,
// week_1, ... in chronological order. The first week starts on the Sunday on
// or before start; the last week ends on end. A reversed range yields no
// weeks.
func Weeks(start, end civil.Date) models.Weeks {
	weeks := models.Weeks{}
	index := 0
	for cursor := start; !cursor.After(end); index++ {
		weekStart := WeekStart(cursor)
		weekEnd := weekStart.AddDays(6)
		if weekEnd.After(end) {
			weekEnd = end
		}

		weeks[models.WeekKey(index)] = models.Week{
			StartDate: weekStart,
			EndDate:   weekEnd,
			Tasks:     []models.Task{},
		}

		cursor = WeekStart(cursor.AddDays(7))
	}
	return weeks
}

// Progress is the share of completed tasks across all weeks, 0 when there are
// no tasks.
func Progress(weeks models.Weeks) float64 {
	total, done := 0, 0
	for _, w := range weeks {
		total += len(w.Tasks)
		for _, t := range w.Tasks {
			if t.Completed {
				done++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}

// Percent rounds a progress ratio to a whole percentage.
func Percent(progress float64) int {
	return int(math.Round(progress * 100))
}

// IsWeekComplete reports whether the week has tasks and all of them are done.
func IsWeekComplete(w models.Week) bool {
	if len(w.Tasks) == 0 {
		return false
	}
	for _, t := range w.Tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}

// CompletedWeeks returns the keys of complete weeks in chronological order.
func CompletedWeeks(weeks models.Weeks) []string {
	keys := []string{}
	for _, k := range weeks.Keys() {
		if IsWeekComplete(weeks[k]) {
			keys = append(keys, k)
		}
	}
	return keys
}

// Summarize builds the list view of a goal.
func Summarize(g models.Goal) models.GoalSummary {
	p := Progress(g.Weeks)
	return models.GoalSummary{
		ID:                 g.ID,
		Name:               g.Name,
		StartDate:          g.StartDate,
		EndDate:            g.EndDate,
		Progress:           p,
		Percent:            Percent(p),
		WeekCount:          len(g.Weeks),
		CompletedWeekCount: len(CompletedWeeks(g.Weeks)),
	}
}

// Detail attaches computed progress to a goal.
func Detail(g models.Goal) models.GoalDetail {
	p := Progress(g.Weeks)
	return models.GoalDetail{
		Goal:           g,
		Progress:       p,
		Percent:        Percent(p),
		CompletedWeeks: CompletedWeeks(g.Weeks),
	}
}
