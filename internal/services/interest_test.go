package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyInterest(t *testing.T) {
	// 2.5% APR on $1000.00 is 6 cents a day after flooring
	assert.Equal(t, int64(6), DailyInterest(100000))

	// small balances floor to zero rather than round up
	assert.Equal(t, int64(0), DailyInterest(1000))

	assert.Equal(t, int64(0), DailyInterest(0))
	assert.Equal(t, int64(0), DailyInterest(-5000))
}

func TestPlatformSpread(t *testing.T) {
	// gross at 5% minus the user's 2.5% share
	assert.Equal(t, int64(7), PlatformSpread(100000))
	assert.Equal(t, int64(0), PlatformSpread(0))
	assert.Equal(t, int64(0), PlatformSpread(-1))

	// the user credit plus the spread never exceeds the gross take
	for _, balance := range []int64{1, 999, 36500, 100000, 123456789} {
		gross := DailyInterest(balance) + PlatformSpread(balance)
		assert.GreaterOrEqual(t, gross, DailyInterest(balance))
		assert.GreaterOrEqual(t, PlatformSpread(balance), int64(0))
	}
}
