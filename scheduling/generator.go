package scheduling

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"zyppr/models"
)

// Generation window: business weekdays, 09:00 to 17:00 local, starts rounded
// to :00 or :30.
const (
	openingMinute = 9 * 60
	closingHour   = 17
	slotAttempts  = 50
)

var generationWeekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
}

// busyInterval is a half-open [Start, End) window on the linear week axis.
type busyInterval struct {
	Start int
	End   int
}

func (b busyInterval) overlaps(start, end int) bool {
	return start < b.End && end > b.Start
}

// GenerateWeeklySchedule produces two or three weekly slots for a new service
// of the given duration that do not overlap any schedule occurrence of the
// existing services, nor each other. Placement is random within the business
// window; a slot whose attempts are exhausted is skipped rather than blocking,
// so the result may be shorter than the target. Output is sorted by weekday
// then time of day.
//
// This is best-effort seed placement, not user-directed scheduling: it keeps
// the no-double-booking invariant by construction.
func GenerateWeeklySchedule(existing []models.Service, durationMinutes int, rng *rand.Rand) []models.ScheduleEntry {
	var busy []busyInterval
	for _, svc := range existing {
		for _, entry := range svc.WeeklySchedule {
			start, err := entryWeekMinute(entry)
			if err != nil {
				// Malformed persisted entry: ignore it rather than refuse
				// to schedule anything at all.
				continue
			}
			busy = append(busy, busyInterval{Start: start, End: start + svc.DurationMinutes})
		}
	}

	maxStartHour := closingHour - (durationMinutes+59)/60
	if maxStartHour*60 < openingMinute {
		return nil
	}

	target := 2 + rng.Intn(2)
	var schedule []models.ScheduleEntry

	for i := 0; i < target; i++ {
		for attempt := 0; attempt < slotAttempts; attempt++ {
			day := generationWeekdays[rng.Intn(len(generationWeekdays))]
			hour := openingMinute/60 + rng.Intn(maxStartHour-openingMinute/60+1)
			minute := rng.Intn(2) * 30

			// A :30 start at the last allowed hour can spill past closing.
			if hour*60+minute+durationMinutes > closingHour*60 {
				continue
			}

			start := weekMinute(day, hour*60+minute)
			end := start + durationMinutes

			conflict := false
			for _, b := range busy {
				if b.overlaps(start, end) {
					conflict = true
					break
				}
			}
			if conflict {
				continue
			}

			schedule = append(schedule, models.ScheduleEntry{
				Day:  day.String(),
				Time: fmt.Sprintf("%02d:%02d", hour, minute),
			})
			busy = append(busy, busyInterval{Start: start, End: end})
			break
		}
	}

	sort.Slice(schedule, func(i, j int) bool {
		wi, _ := entryWeekMinute(schedule[i])
		wj, _ := entryWeekMinute(schedule[j])
		return wi < wj
	})
	return schedule
}
