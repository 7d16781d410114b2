package pkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			"same day",
			time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC),
			0,
		},
		{
			"adjacent days across midnight",
			time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC),
			time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC),
			1,
		},
		{
			"week apart",
			time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC),
			7,
		},
		{
			"month boundary",
			time.Date(2026, 2, 28, 10, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			1,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DaysBetween(c.a, c.b))
		})
	}
}

func TestIsEarlyInWeek(t *testing.T) {
	// 2026-03-02 is a Monday
	assert.True(t, IsEarlyInWeek(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)))
	assert.True(t, IsEarlyInWeek(time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)))
	assert.False(t, IsEarlyInWeek(time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)))
	assert.False(t, IsEarlyInWeek(time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)))
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(time.Date(2026, 3, 1, 17, 30, 45, 12, time.UTC))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), got)
}
