package scheduling

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zyppr/models"
)

func scheduleIntervals(t *testing.T, entries []models.ScheduleEntry, duration int) []busyInterval {
	t.Helper()
	var out []busyInterval
	for _, e := range entries {
		start, err := entryWeekMinute(e)
		require.NoError(t, err)
		out = append(out, busyInterval{Start: start, End: start + duration})
	}
	return out
}

func TestGenerateWeeklySchedule_SlotCountAndWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		entries := GenerateWeeklySchedule(nil, 60, rng)
		assert.GreaterOrEqual(t, len(entries), 2)
		assert.LessOrEqual(t, len(entries), 3)

		for _, e := range entries {
			assert.Contains(t, []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, e.Day)
			mins, err := clockMinutes(e.Time)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, mins, openingMinute)
			assert.LessOrEqual(t, mins+60, closingHour*60)
			assert.Contains(t, []int{0, 30}, mins%60)
		}
	}
}

func TestGenerateWeeklySchedule_NoSlotRunsPastClosing(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		for _, dur := range []int{45, 60, 90} {
			entries := GenerateWeeklySchedule(nil, dur, rng)
			for _, e := range entries {
				mins, err := clockMinutes(e.Time)
				require.NoError(t, err)
				assert.LessOrEqual(t, mins+dur, closingHour*60,
					"slot %s %s runs past closing for %d minute service", e.Day, e.Time, dur)
			}
		}
	}
}

func TestGenerateWeeklySchedule_NoOverlapWithExisting(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	existing := []models.Service{
		{Name: "Vinyasa Flow", DurationMinutes: 60, WeeklySchedule: []models.ScheduleEntry{
			{Day: "Monday", Time: "09:00"},
			{Day: "Monday", Time: "10:00"},
			{Day: "Wednesday", Time: "14:00"},
		}},
	}

	for i := 0; i < 50; i++ {
		entries := GenerateWeeklySchedule(existing, 45, rng)
		busy := scheduleIntervals(t, existing[0].WeeklySchedule, 60)
		for _, e := range entries {
			start, err := entryWeekMinute(e)
			require.NoError(t, err)
			for _, b := range busy {
				assert.False(t, b.overlaps(start, start+45),
					"slot %s %s overlaps existing schedule", e.Day, e.Time)
			}
		}
	}
}

func TestGenerateWeeklySchedule_OwnSlotsDoNotOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		entries := GenerateWeeklySchedule(nil, 90, rng)
		intervals := scheduleIntervals(t, entries, 90)
		for a := 0; a < len(intervals); a++ {
			for b := a + 1; b < len(intervals); b++ {
				assert.False(t, intervals[a].overlaps(intervals[b].Start, intervals[b].End))
			}
		}
	}
}

func TestGenerateWeeklySchedule_SortedByWeekMinute(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	entries := GenerateWeeklySchedule(nil, 30, rng)
	for i := 1; i < len(entries); i++ {
		prev, err := entryWeekMinute(entries[i-1])
		require.NoError(t, err)
		cur, err := entryWeekMinute(entries[i])
		require.NoError(t, err)
		assert.Less(t, prev, cur)
	}
}

func TestGenerateWeeklySchedule_DurationLongerThanWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	entries := GenerateWeeklySchedule(nil, 9*60, rng)
	assert.Empty(t, entries)
}

func TestGenerateWeeklySchedule_SkipsMalformedExistingEntries(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	existing := []models.Service{
		{Name: "Broken", DurationMinutes: 60, WeeklySchedule: []models.ScheduleEntry{
			{Day: "Someday", Time: "nope"},
		}},
	}
	entries := GenerateWeeklySchedule(existing, 60, rng)
	assert.NotEmpty(t, entries)
}
