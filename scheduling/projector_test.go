package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zyppr/models"
)

func yogaService() models.Service {
	return models.Service{
		Name:            "Vinyasa Flow",
		DurationMinutes: 60,
		WeeklySchedule: []models.ScheduleEntry{
			{Day: "Monday", Time: "09:00"},
			{Day: "Wednesday", Time: "15:00"},
		},
	}
}

func TestProjectUpcomingSlots_StrictlyFutureWithinHorizon(t *testing.T) {
	// Wednesday 10:00: today's 15:00 slot qualifies, Monday 09:00 does not
	// recur until next week.
	now := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	slots := ProjectUpcomingSlots([]models.Service{yogaService()}, now, 14)

	require.NotEmpty(t, slots)
	assert.Equal(t, time.Date(2026, 1, 7, 15, 0, 0, 0, time.UTC), slots[0].StartTime)
	for _, s := range slots {
		assert.True(t, s.StartTime.After(now))
		assert.True(t, s.StartTime.Before(now.AddDate(0, 0, 14)))
		assert.Equal(t, s.StartTime.Add(time.Hour), s.EndTime)
		assert.Equal(t, "Vinyasa Flow", s.ServiceName)
	}
	// Two entries per week across a 14-day horizon.
	assert.Len(t, slots, 4)
}

func TestProjectUpcomingSlots_SortedAscending(t *testing.T) {
	now := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	services := []models.Service{
		yogaService(),
		{
			Name:            "Strength Training",
			DurationMinutes: 45,
			WeeklySchedule: []models.ScheduleEntry{
				{Day: "Tuesday", Time: "11:00"},
				{Day: "Friday", Time: "08:30"},
			},
		},
	}
	slots := ProjectUpcomingSlots(services, now, 14)
	for i := 1; i < len(slots); i++ {
		assert.False(t, slots[i].StartTime.Before(slots[i-1].StartTime))
	}
}

func TestProjectUpcomingSlots_CoincidingSlotsNotDeduplicated(t *testing.T) {
	now := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	a := yogaService()
	b := yogaService()
	b.Name = "Meditation Circle"
	slots := ProjectUpcomingSlots([]models.Service{a, b}, now, 7)
	assert.Len(t, slots, 4)
}

func TestProjectUpcomingSlots_NoSchedulesMeansNoSlots(t *testing.T) {
	now := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	slots := ProjectUpcomingSlots([]models.Service{{Name: "Unscheduled", DurationMinutes: 30}}, now, 14)
	assert.Empty(t, slots)
}

func TestProjectUpcomingSlots_DefaultHorizon(t *testing.T) {
	now := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	slots := ProjectUpcomingSlots([]models.Service{yogaService()}, now, 0)
	assert.Len(t, slots, 4)
}
