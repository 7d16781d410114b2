package pkg

import (
	"time"
)

func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from a to b in UTC. Same day is 0,
// yesterday to today is 1.
func DaysBetween(a, b time.Time) int {
	return int(StartOfDay(b).Sub(StartOfDay(a)).Hours() / 24)
}

// IsEarlyInWeek marks the default weekly early-bird window, Monday through
// Wednesday UTC. Callers may override the flag per request.
func IsEarlyInWeek(t time.Time) bool {
	switch t.UTC().Weekday() {
	case time.Monday, time.Tuesday, time.Wednesday:
		return true
	}
	return false
}

func GetFirstTimeOfCurrentWeek() time.Time {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return today.Truncate(time.Hour * 168)
}
