package services

import (
	"time"

	"poolup/internal/pkg"
)

// NextStreak applies the day-difference rule to a membership streak. No prior
// contribution starts a fresh streak of 1; the same calendar day leaves the
// streak unchanged; the next day extends it; any gap resets to 1.
func NextStreak(previous int, lastContribution *time.Time, now time.Time) int {
	if lastContribution == nil {
		return 1
	}

	switch delta := pkg.DaysBetween(*lastContribution, now); {
	case delta == 0:
		return previous
	case delta == 1:
		return previous + 1
	default:
		return 1
	}
}
