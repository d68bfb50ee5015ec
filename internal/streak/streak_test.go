package streak

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnold/weeklygoals-api/internal/models"
)

func day(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func priorState(t *testing.T) models.StreakState {
	last := day(t, "2024-06-01")
	typ := models.CheckinFull
	return models.StreakState{
		CurrentStreak:   3,
		LongestStreak:   5,
		LastCheckinDate: &last,
		LastCheckinType: &typ,
		HeatmapData:     models.Heatmap{last: 2},
	}
}

func TestCheckInConsecutiveFull(t *testing.T) {
	next, out, err := CheckIn(priorState(t), day(t, "2024-06-02"), models.CheckinFull)
	require.NoError(t, err)

	assert.Equal(t, 4, next.CurrentStreak)
	assert.Equal(t, 5, next.LongestStreak)
	assert.Equal(t, Advanced, out.Result)
	assert.Equal(t, day(t, "2024-06-02"), *next.LastCheckinDate)
	assert.Equal(t, models.CheckinFull, *next.LastCheckinType)
	assert.Equal(t, 2, next.HeatmapData[day(t, "2024-06-02")])
	assert.Len(t, next.HeatmapData, 2)
}

func TestCheckInConsecutivePartialMaintains(t *testing.T) {
	next, out, err := CheckIn(priorState(t), day(t, "2024-06-02"), models.CheckinPartial)
	require.NoError(t, err)

	assert.Equal(t, 3, next.CurrentStreak)
	assert.Equal(t, Maintained, out.Result)
	assert.Equal(t, 1, next.HeatmapData[day(t, "2024-06-02")])
	assert.Equal(t, models.CheckinPartial, *next.LastCheckinType)
}

func TestCheckInAfterGap(t *testing.T) {
	next, out, err := CheckIn(priorState(t), day(t, "2024-06-05"), models.CheckinPartial)
	require.NoError(t, err)
	assert.Equal(t, 0, next.CurrentStreak)
	assert.Equal(t, 5, next.LongestStreak)
	assert.Equal(t, Lapsed, out.Result)

	next, out, err = CheckIn(priorState(t), day(t, "2024-06-05"), models.CheckinFull)
	require.NoError(t, err)
	assert.Equal(t, 1, next.CurrentStreak)
	assert.Equal(t, Restarted, out.Result)
}

func TestCheckInSameDay(t *testing.T) {
	prior := priorState(t)

	next, _, err := CheckIn(prior, day(t, "2024-06-01"), models.CheckinFull)

	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
	assert.Equal(t, prior, next)
	assert.Len(t, prior.HeatmapData, 1)
}

func TestCheckInFirstEver(t *testing.T) {
	today := day(t, "2024-06-10")

	next, out, err := CheckIn(models.StreakState{}, today, models.CheckinFull)
	require.NoError(t, err)
	assert.Equal(t, 1, next.CurrentStreak)
	assert.Equal(t, 1, next.LongestStreak)
	assert.True(t, out.NewRecord)

	next, _, err = CheckIn(models.StreakState{}, today, models.CheckinPartial)
	require.NoError(t, err)
	assert.Equal(t, 0, next.CurrentStreak)
	assert.Equal(t, 0, next.LongestStreak)
	assert.Equal(t, []models.DayEntry{{Date: today, Count: 1}}, next.HeatmapData.Entries())
}

func TestCheckInNewRecord(t *testing.T) {
	state := priorState(t)
	state.CurrentStreak = 5

	next, out, err := CheckIn(state, day(t, "2024-06-02"), models.CheckinFull)
	require.NoError(t, err)
	assert.Equal(t, 6, next.LongestStreak)
	assert.True(t, out.NewRecord)
}

func TestCheckInDoesNotMutateInput(t *testing.T) {
	prior := priorState(t)

	_, _, err := CheckIn(prior, day(t, "2024-06-02"), models.CheckinFull)
	require.NoError(t, err)

	assert.Equal(t, 3, prior.CurrentStreak)
	assert.Len(t, prior.HeatmapData, 1)
	assert.Equal(t, day(t, "2024-06-01"), *prior.LastCheckinDate)
}

func TestCheckInLastDateInFutureKeepsStreak(t *testing.T) {
	today := day(t, "2024-05-30")

	for _, typ := range []models.CheckinType{models.CheckinFull, models.CheckinPartial} {
		t.Run(string(typ), func(t *testing.T) {
			next, out, err := CheckIn(priorState(t), today, typ)
			require.NoError(t, err)

			assert.Equal(t, 3, next.CurrentStreak)
			assert.Equal(t, 5, next.LongestStreak)
			assert.Equal(t, Maintained, out.Result)
			assert.False(t, out.NewRecord)
			assert.Equal(t, today, *next.LastCheckinDate)
			assert.Equal(t, typ, *next.LastCheckinType)
			assert.Equal(t, typ.Intensity(), next.HeatmapData[today])
		})
	}
}

func TestCheckInInvalidType(t *testing.T) {
	_, _, err := CheckIn(priorState(t), day(t, "2024-06-02"), models.CheckinType("meh"))
	assert.ErrorIs(t, err, ErrInvalidCheckinType)
}

func TestLongestNeverBelowCurrent(t *testing.T) {
	state := models.StreakState{}
	today := day(t, "2024-01-01")
	types := []models.CheckinType{
		models.CheckinFull, models.CheckinFull, models.CheckinPartial, models.CheckinFull,
	}
	gaps := []int{1, 1, 1, 3, 1, 1, 2, 1}

	for i, gap := range gaps {
		var err error
		state, _, err = CheckIn(state, today, types[i%len(types)])
		require.NoError(t, err)
		assert.LessOrEqual(t, state.CurrentStreak, state.LongestStreak)
		today = today.AddDays(gap)
	}
}

func TestStatus(t *testing.T) {
	prior := priorState(t)

	s := Status(prior, day(t, "2024-06-01"))
	assert.False(t, s.CanCheckInToday)
	assert.Equal(t, 3, s.CurrentStreak)

	s = Status(prior, day(t, "2024-06-02"))
	assert.True(t, s.CanCheckInToday)
	assert.Equal(t, 3, s.CurrentStreak)

	s = Status(prior, day(t, "2024-06-04"))
	assert.True(t, s.CanCheckInToday)
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 5, s.LongestStreak)
	assert.Len(t, s.HeatmapData, 1)

	empty := Status(models.StreakState{}, day(t, "2024-06-04"))
	assert.True(t, empty.CanCheckInToday)
	assert.NotNil(t, empty.HeatmapData)
}
