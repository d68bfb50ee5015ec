package models

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
)

const weekKeyPrefix = "week_"

type Goal struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	StartDate civil.Date `json:"startDate"`
	EndDate   civil.Date `json:"endDate"`
	Weeks     Weeks      `json:"weeks"`
}

type Week struct {
	StartDate civil.Date `json:"startDate"`
	EndDate   civil.Date `json:"endDate"`
	Tasks     []Task     `json:"tasks"`
}

type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Weeks maps week keys (week_0, week_1, ...) to the weeks of a goal.
type Weeks map[string]Week

// WeekKey returns the key of the i-th chronological week.
func WeekKey(i int) string {
	return weekKeyPrefix + strconv.Itoa(i)
}

// WeekIndex parses a week key. ok is false for keys not shaped like week_<n>.
func WeekIndex(key string) (int, bool) {
	rest, found := strings.CutPrefix(key, weekKeyPrefix)
	if !found {
		return 0, false
	}
	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}

// Keys returns the week keys in chronological order. Malformed keys sort last.
func (w Weeks) Keys() []string {
	keys := make([]string, 0, len(w))
	for k := range w {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aok := WeekIndex(keys[i])
		b, bok := WeekIndex(keys[j])
		switch {
		case aok && bok:
			return a < b
		case aok != bok:
			return aok
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

// MarshalJSON writes weeks in chronological key order so week_10 follows week_9.
func (w Weeks) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range w.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(w[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// GoalSummary is the list view of a goal.
type GoalSummary struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	StartDate          civil.Date `json:"startDate"`
	EndDate            civil.Date `json:"endDate"`
	Progress           float64    `json:"progress"`
	Percent            int        `json:"percent"`
	WeekCount          int        `json:"weekCount"`
	CompletedWeekCount int        `json:"completedWeekCount"`
}

// GoalDetail is a goal with its computed progress.
type GoalDetail struct {
	Goal
	Progress       float64  `json:"progress"`
	Percent        int      `json:"percent"`
	CompletedWeeks []string `json:"completedWeeks"`
}

// Goal DTOs
type CreateGoalRequest struct {
	Name      string `json:"name" validate:"required"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

type AddTaskRequest struct {
	Text string `json:"text" validate:"required"`
}
