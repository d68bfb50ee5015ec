package models

import (
	"encoding/json"
	"sort"

	"cloud.google.com/go/civil"
)

type CheckinType string

const (
	CheckinPartial CheckinType = "partial"
	CheckinFull    CheckinType = "full"
)

func (t CheckinType) Valid() bool {
	return t == CheckinPartial || t == CheckinFull
}

// Intensity is the heatmap count recorded for a check-in of this type.
func (t CheckinType) Intensity() int {
	if t == CheckinFull {
		return 2
	}
	return 1
}

type StreakState struct {
	CurrentStreak   int          `json:"currentStreak"`
	LongestStreak   int          `json:"longestStreak"`
	LastCheckinDate *civil.Date  `json:"lastCheckinDate"`
	LastCheckinType *CheckinType `json:"lastCheckinType"`
	HeatmapData     Heatmap      `json:"heatmapData"`
}

type DayEntry struct {
	Date  civil.Date `json:"date"`
	Count int        `json:"count"`
}

// Heatmap holds one entry per date. It is stored as a JSON array of
// DayEntry sorted by date.
type Heatmap map[civil.Date]int

// Entries returns the heatmap as DayEntry values sorted by date.
func (h Heatmap) Entries() []DayEntry {
	entries := make([]DayEntry, 0, len(h))
	for d, c := range h {
		entries = append(entries, DayEntry{Date: d, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}

// Clone returns a copy that can be modified independently.
func (h Heatmap) Clone() Heatmap {
	out := make(Heatmap, len(h))
	for d, c := range h {
		out[d] = c
	}
	return out
}

func (h Heatmap) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Entries())
}

// UnmarshalJSON accepts the array form. A later entry for the same date wins.
func (h *Heatmap) UnmarshalJSON(data []byte) error {
	var entries []DayEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	out := make(Heatmap, len(entries))
	for _, e := range entries {
		out[e.Date] = e.Count
	}
	*h = out
	return nil
}

// StreakStatus is what the streak screen shows after loading.
type StreakStatus struct {
	CurrentStreak   int          `json:"currentStreak"`
	LongestStreak   int          `json:"longestStreak"`
	LastCheckinDate *civil.Date  `json:"lastCheckinDate"`
	LastCheckinType *CheckinType `json:"lastCheckinType"`
	HeatmapData     []DayEntry   `json:"heatmapData"`
	CanCheckInToday bool         `json:"canCheckInToday"`
	Today           civil.Date   `json:"today"`
}

// Streak DTOs
type CheckinRequest struct {
	Type string `json:"type" validate:"required,oneof=partial full"`
}
