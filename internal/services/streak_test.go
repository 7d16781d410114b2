package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextStreak(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
	}

	t.Run("first contribution starts at one", func(t *testing.T) {
		assert.Equal(t, 1, NextStreak(0, nil, day(1)))
	})

	t.Run("consecutive days extend", func(t *testing.T) {
		streak := 1
		last := day(1)
		for d := 2; d <= 4; d++ {
			streak = NextStreak(streak, &last, day(d))
			last = day(d)
		}
		assert.Equal(t, 4, streak)
	})

	t.Run("same day unchanged", func(t *testing.T) {
		last := day(5)
		assert.Equal(t, 7, NextStreak(7, &last, day(5).Add(6*time.Hour)))
	})

	t.Run("gap resets to one", func(t *testing.T) {
		last := day(5)
		assert.Equal(t, 1, NextStreak(7, &last, day(8)))
	})

	t.Run("calendar day boundary counts", func(t *testing.T) {
		last := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
		now := time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)
		assert.Equal(t, 3, NextStreak(2, &last, now))
	})
}
