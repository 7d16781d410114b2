package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	cases := []struct {
		name        string
		amountCents int64
		hasStreak   bool
		isEarly     bool
		want        int
	}{
		{"base only", 2500, false, false, 25},
		{"streak bonus", 2500, true, false, 37},
		{"early bonus", 2500, false, true, 31},
		{"streak and early", 2500, true, true, 43},
		{"sub-unit amount", 99, false, false, 0},
		{"one unit", 100, true, true, 1},
		{"large amount", 100000, true, false, 1500},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Score(c.amountCents, c.hasStreak, c.isEarly))
		})
	}
}

func TestBoostBonus(t *testing.T) {
	assert.Equal(t, 2, BoostBonus(2500, 10))
	assert.Equal(t, 5, BoostBonus(2500, 5))

	// floor of one point even for tiny boosts
	assert.Equal(t, 1, BoostBonus(100, 10))
	assert.Equal(t, 1, BoostBonus(500, 10))

	// bad divisor falls back to the default
	assert.Equal(t, BoostBonus(2500, BOOST_BONUS_DEFAULT_DIVISOR), BoostBonus(2500, 0))
	assert.Equal(t, BoostBonus(2500, BOOST_BONUS_DEFAULT_DIVISOR), BoostBonus(2500, -3))
}
