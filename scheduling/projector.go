package scheduling

import (
	"sort"
	"time"

	"zyppr/models"
)

// DefaultHorizonDays is the lookahead window for slot projection.
const DefaultHorizonDays = 14

// ProjectUpcomingSlots expands the recurring weekly schedules of the given
// services into concrete dated slots for the next horizonDays days, keeping
// only starts strictly after now. Slots from different services are not
// deduplicated even when they coincide. The result is sorted by start time
// ascending; an empty result means "no upcoming slots", which callers must
// treat as a valid answer rather than an error.
func ProjectUpcomingSlots(services []models.Service, now time.Time, horizonDays int) []models.ProjectedSlot {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	var slots []models.ProjectedSlot
	for offset := 0; offset < horizonDays; offset++ {
		date := now.AddDate(0, 0, offset)
		dayName := date.Weekday().String()

		for _, svc := range services {
			for _, entry := range svc.WeeklySchedule {
				if entry.Day != dayName {
					continue
				}
				mins, err := clockMinutes(entry.Time)
				if err != nil {
					continue
				}
				start := time.Date(date.Year(), date.Month(), date.Day(), mins/60, mins%60, 0, 0, now.Location())
				if !start.After(now) {
					continue
				}
				slots = append(slots, models.ProjectedSlot{
					ServiceName: svc.Name,
					StartTime:   start,
					EndTime:     start.Add(time.Duration(svc.DurationMinutes) * time.Minute),
				})
			}
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartTime.Before(slots[j].StartTime)
	})
	return slots
}
