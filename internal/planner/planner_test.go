package planner

import (
	"encoding/json"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnold/weeklygoals-api/internal/models"
)

func date(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestWeekStart(t *testing.T) {
	assert.Equal(t, date(t, "2023-12-31"), WeekStart(date(t, "2024-01-03")))
	assert.Equal(t, date(t, "2023-12-31"), WeekStart(date(t, "2023-12-31")))
	assert.Equal(t, date(t, "2024-01-14"), WeekStart(date(t, "2024-01-20")))
}

func TestWeeksThreeWeekRange(t *testing.T) {
	weeks := Weeks(date(t, "2024-01-03"), date(t, "2024-01-20"))

	require.Len(t, weeks, 3)
	want := [][2]string{
		{"2023-12-31", "2024-01-06"},
		{"2024-01-07", "2024-01-13"},
		{"2024-01-14", "2024-01-20"},
	}
	for i, w := range want {
		week := weeks[models.WeekKey(i)]
		assert.Equal(t, date(t, w[0]), week.StartDate, "week %d start", i)
		assert.Equal(t, date(t, w[1]), week.EndDate, "week %d end", i)
		assert.NotNil(t, week.Tasks)
		assert.Empty(t, week.Tasks)
	}
}

func TestWeeksClipsLastWeek(t *testing.T) {
	weeks := Weeks(date(t, "2024-01-03"), date(t, "2024-01-10"))

	require.Len(t, weeks, 2)
	assert.Equal(t, date(t, "2023-12-31"), weeks["week_0"].StartDate)
	assert.Equal(t, date(t, "2024-01-06"), weeks["week_0"].EndDate)
	assert.Equal(t, date(t, "2024-01-07"), weeks["week_1"].StartDate)
	assert.Equal(t, date(t, "2024-01-10"), weeks["week_1"].EndDate)
}

func TestWeeksSingleDay(t *testing.T) {
	weeks := Weeks(date(t, "2024-06-05"), date(t, "2024-06-05"))

	require.Len(t, weeks, 1)
	assert.Equal(t, date(t, "2024-06-02"), weeks["week_0"].StartDate)
	assert.Equal(t, date(t, "2024-06-05"), weeks["week_0"].EndDate)
}

func TestWeeksReversedRange(t *testing.T) {
	assert.Empty(t, Weeks(date(t, "2024-06-05"), date(t, "2024-06-01")))
}

func TestWeeksCoverRangeWithoutGaps(t *testing.T) {
	base := date(t, "2024-02-20")
	for offset := 0; offset < 7; offset++ {
		for length := 0; length < 60; length++ {
			start := base.AddDays(offset)
			end := start.AddDays(length)
			weeks := Weeks(start, end)
			keys := weeks.Keys()
			require.NotEmpty(t, keys)

			first := weeks[keys[0]]
			assert.False(t, first.StartDate.After(start))
			assert.Equal(t, time.Sunday, first.StartDate.In(time.UTC).Weekday())

			for i, k := range keys {
				w := weeks[k]
				assert.Equal(t, models.WeekKey(i), k)
				assert.False(t, w.EndDate.Before(w.StartDate))
				if i+1 < len(keys) {
					next := weeks[keys[i+1]]
					assert.Equal(t, w.EndDate.AddDays(1), next.StartDate, "gap after %s for %s..%s", k, start, end)
				}
			}
			assert.Equal(t, end, weeks[keys[len(keys)-1]].EndDate)
		}
	}
}

func TestWeeksDeterministic(t *testing.T) {
	a, err := json.Marshal(Weeks(date(t, "2024-03-01"), date(t, "2024-05-31")))
	require.NoError(t, err)
	b, err := json.Marshal(Weeks(date(t, "2024-03-01"), date(t, "2024-05-31")))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0.0, Progress(nil))
	assert.Equal(t, 0.0, Progress(models.Weeks{"week_0": {Tasks: []models.Task{}}}))

	weeks := models.Weeks{
		"week_0": {Tasks: []models.Task{{ID: "a", Completed: true}, {ID: "b"}}},
		"week_1": {Tasks: []models.Task{{ID: "c", Completed: true}, {ID: "d", Completed: true}}},
	}
	assert.Equal(t, 0.75, Progress(weeks))
	assert.Equal(t, 75, Percent(Progress(weeks)))
}

func TestProgressBounds(t *testing.T) {
	for done := 0; done <= 5; done++ {
		tasks := make([]models.Task, 5)
		for i := 0; i < done; i++ {
			tasks[i].Completed = true
		}
		p := Progress(models.Weeks{"week_0": {Tasks: tasks}})
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestIsWeekComplete(t *testing.T) {
	assert.False(t, IsWeekComplete(models.Week{}))
	assert.False(t, IsWeekComplete(models.Week{Tasks: []models.Task{}}))
	assert.False(t, IsWeekComplete(models.Week{Tasks: []models.Task{{Completed: true}, {}}}))
	assert.True(t, IsWeekComplete(models.Week{Tasks: []models.Task{{Completed: true}}}))
}

func TestSummarize(t *testing.T) {
	g := models.Goal{
		ID:        "1",
		Name:      "Ship it",
		StartDate: date(t, "2024-01-03"),
		EndDate:   date(t, "2024-01-10"),
		Weeks: models.Weeks{
			"week_0": {Tasks: []models.Task{{Completed: true}}},
			"week_1": {Tasks: []models.Task{{}, {}}},
		},
	}

	s := Summarize(g)
	assert.Equal(t, 33, s.Percent)
	assert.Equal(t, 2, s.WeekCount)
	assert.Equal(t, 1, s.CompletedWeekCount)
	assert.Equal(t, []string{"week_0"}, Detail(g).CompletedWeeks)
}
