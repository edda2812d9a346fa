// Package scheduling holds the pure weekly-schedule math: resolving the next
// occurrence of a weekday/time pair, generating collision-free weekly slots
// for new services, and projecting recurring schedules into concrete dated
// appointment slots.
package scheduling

import (
	"fmt"
	"time"

	"zyppr/models"
)

// minutesPerDay is the length of one weekday on the linear week axis.
const minutesPerDay = 24 * 60

var weekdayByName = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// clockMinutes parses a "HH:MM" time of day into minutes from midnight.
func clockMinutes(clock string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", clock, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time of day %q out of range", clock)
	}
	return h*60 + m, nil
}

// weekMinute places a schedule entry on the linear 7*24*60 minute week axis.
func weekMinute(day time.Weekday, minuteOfDay int) int {
	return int(day)*minutesPerDay + minuteOfDay
}

// entryWeekMinute resolves a ScheduleEntry onto the week axis. A malformed
// entry is an error, not a silent skip.
func entryWeekMinute(e models.ScheduleEntry) (int, error) {
	day, ok := weekdayByName[e.Day]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", e.Day)
	}
	mins, err := clockMinutes(e.Time)
	if err != nil {
		return 0, err
	}
	return weekMinute(day, mins), nil
}

// NextOccurrence returns the next instant strictly after now at which the
// given weekday occurs at the given "HH:MM" civil time, in now's location.
// If the weekday is today and the time of day has not yet passed, today
// qualifies; otherwise the result is exactly seven days later. An unknown
// weekday name or malformed time is an error: the historical behavior of
// returning now unchanged silently produced already-past bookings.
func NextOccurrence(day, clock string, now time.Time) (time.Time, error) {
	target, ok := weekdayByName[day]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday %q", day)
	}
	mins, err := clockMinutes(clock)
	if err != nil {
		return time.Time{}, err
	}

	candidate := time.Date(now.Year(), now.Month(), now.Day(), mins/60, mins%60, 0, 0, now.Location())
	diff := (int(target) - int(now.Weekday()) + 7) % 7
	candidate = candidate.AddDate(0, 0, diff)
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 0, 7)
	}
	return candidate, nil
}
