package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/arnold/weeklygoals-api/internal/models"
	"github.com/arnold/weeklygoals-api/internal/planner"
	"github.com/arnold/weeklygoals-api/internal/store"
)

// GoalService reads the goals document, applies one change and writes the
// whole document back.
type GoalService struct {
	store    store.Store
	activity *ActivityService
	now      func() time.Time
}

func NewGoalService(st store.Store, activity *ActivityService, now func() time.Time) *GoalService {
	if now == nil {
		now = time.Now
	}
	return &GoalService{store: st, activity: activity, now: now}
}

type CreateGoalInput struct {
	Name      string
	StartDate civil.Date
	EndDate   civil.Date
}

func (s *GoalService) load(ctx context.Context) ([]models.Goal, error) {
	goals := []models.Goal{}
	if _, err := store.GetJSON(ctx, s.store, store.GoalsKey, &goals); err != nil {
		return nil, err
	}
	if goals == nil {
		goals = []models.Goal{}
	}
	return goals, nil
}

func (s *GoalService) save(ctx context.Context, goals []models.Goal) error {
	return store.SetJSON(ctx, s.store, store.GoalsKey, goals)
}

func findGoal(goals []models.Goal, id string) int {
	for i := range goals {
		if goals[i].ID == id {
			return i
		}
	}
	return -1
}

// List returns every goal with its progress.
func (s *GoalService) List(ctx context.Context) ([]models.GoalSummary, error) {
	goals, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.GoalSummary, 0, len(goals))
	for _, g := range goals {
		summaries = append(summaries, planner.Summarize(g))
	}
	return summaries, nil
}

// Create appends a new goal. Its weeks are computed on first detail load.
func (s *GoalService) Create(ctx context.Context, in CreateGoalInput) (models.Goal, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Goal{}, invalid("name", "Please enter a goal name")
	}
	if in.EndDate.Before(in.StartDate) {
		return models.Goal{}, invalid("endDate", "End date cannot be earlier than start date")
	}

	goals, err := s.load(ctx)
	if err != nil {
		return models.Goal{}, err
	}

	goal := models.Goal{
		ID:        s.nextID(goals),
		Name:      name,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Weeks:     models.Weeks{},
	}
	goals = append(goals, goal)

	if err := s.save(ctx, goals); err != nil {
		return models.Goal{}, err
	}

	s.activity.Log(ctx, models.ActionGoalCreated, &goal.ID, map[string]interface{}{
		"goalName":  goal.Name,
		"startDate": goal.StartDate.String(),
		"endDate":   goal.EndDate.String(),
	})
	return goal, nil
}

// nextID derives an id from the creation time in milliseconds, moving
// forward past ids already taken.
func (s *GoalService) nextID(goals []models.Goal) string {
	taken := make(map[string]bool, len(goals))
	for _, g := range goals {
		taken[g.ID] = true
	}
	ms := s.now().UnixMilli()
	for taken[strconv.FormatInt(ms, 10)] {
		ms++
	}
	return strconv.FormatInt(ms, 10)
}

// ensureWeeks partitions the goal when it has no weeks yet and reports
// whether it did. Weeks without a task list get an empty one.
func ensureWeeks(g *models.Goal) bool {
	if len(g.Weeks) == 0 {
		g.Weeks = planner.Weeks(g.StartDate, g.EndDate)
		return true
	}
	for k, w := range g.Weeks {
		if w.Tasks == nil {
			w.Tasks = []models.Task{}
			g.Weeks[k] = w
		}
	}
	return false
}

// Get loads one goal. The first load partitions the goal into weeks and
// saves the result.
func (s *GoalService) Get(ctx context.Context, id string) (models.GoalDetail, error) {
	goals, err := s.load(ctx)
	if err != nil {
		return models.GoalDetail{}, err
	}

	i := findGoal(goals, id)
	if i < 0 {
		return models.GoalDetail{}, ErrGoalNotFound
	}

	if ensureWeeks(&goals[i]) {
		if err := s.save(ctx, goals); err != nil {
			return models.GoalDetail{}, err
		}
	}
	return planner.Detail(goals[i]), nil
}

// AddTask appends a task to one week of a goal.
func (s *GoalService) AddTask(ctx context.Context, goalID, weekKey, text string) (models.GoalDetail, models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.GoalDetail{}, models.Task{}, invalid("text", "Please enter a task description")
	}

	goals, err := s.load(ctx)
	if err != nil {
		return models.GoalDetail{}, models.Task{}, err
	}

	i := findGoal(goals, goalID)
	if i < 0 {
		return models.GoalDetail{}, models.Task{}, ErrGoalNotFound
	}
	goal := &goals[i]
	ensureWeeks(goal)

	week, ok := goal.Weeks[weekKey]
	if !ok {
		return models.GoalDetail{}, models.Task{}, ErrWeekNotFound
	}

	task := models.Task{
		ID:   uuid.New().String(),
		Text: text,
	}
	week.Tasks = append(week.Tasks, task)
	goal.Weeks[weekKey] = week

	if err := s.save(ctx, goals); err != nil {
		return models.GoalDetail{}, models.Task{}, err
	}

	s.activity.Log(ctx, models.ActionTaskAdded, &goal.ID, map[string]interface{}{
		"goalName": goal.Name,
		"week":     weekKey,
		"task":     task.Text,
	})
	return planner.Detail(*goal), task, nil
}

// ToggleTask flips the completed flag of a task.
func (s *GoalService) ToggleTask(ctx context.Context, goalID, weekKey, taskID string) (models.GoalDetail, error) {
	goals, err := s.load(ctx)
	if err != nil {
		return models.GoalDetail{}, err
	}

	i := findGoal(goals, goalID)
	if i < 0 {
		return models.GoalDetail{}, ErrGoalNotFound
	}
	goal := &goals[i]
	ensureWeeks(goal)

	week, ok := goal.Weeks[weekKey]
	if !ok {
		return models.GoalDetail{}, ErrWeekNotFound
	}

	t := -1
	for j := range week.Tasks {
		if week.Tasks[j].ID == taskID {
			t = j
			break
		}
	}
	if t < 0 {
		return models.GoalDetail{}, ErrTaskNotFound
	}

	task := &week.Tasks[t]
	task.Completed = !task.Completed

	if err := s.save(ctx, goals); err != nil {
		return models.GoalDetail{}, err
	}

	s.activity.Log(ctx, models.ActionTaskToggled, &goal.ID, map[string]interface{}{
		"week":      weekKey,
		"task":      task.Text,
		"completed": task.Completed,
	})
	if task.Completed && planner.IsWeekComplete(week) {
		s.activity.Log(ctx, models.ActionWeekCompleted, &goal.ID, map[string]interface{}{
			"goalName":  goal.Name,
			"week":      weekKey,
			"startDate": week.StartDate.String(),
			"endDate":   week.EndDate.String(),
		})
	}
	return planner.Detail(*goal), nil
}

// Clear removes every goal.
func (s *GoalService) Clear(ctx context.Context) error {
	if err := s.store.Remove(ctx, store.GoalsKey); err != nil {
		return err
	}
	s.activity.Log(ctx, models.ActionDataCleared, nil, map[string]interface{}{
		"scope": "goals",
	})
	return nil
}
