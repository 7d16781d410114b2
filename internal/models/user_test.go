package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLevel(t *testing.T) {
	assert.Equal(t, 1, (&User{TotalPoints: 0}).ComputeLevel())
	assert.Equal(t, 1, (&User{TotalPoints: 99}).ComputeLevel())
	assert.Equal(t, 2, (&User{TotalPoints: 100}).ComputeLevel())
	assert.Equal(t, 10, (&User{TotalPoints: 950}).ComputeLevel())
}

func TestPoolProgress(t *testing.T) {
	assert.Equal(t, 25, (&Pool{GoalCents: 500000, SavedCents: 125000}).Progress())
	assert.Equal(t, 100, (&Pool{GoalCents: 1000, SavedCents: 2500}).Progress())
	assert.Equal(t, 0, (&Pool{GoalCents: 0, SavedCents: 100}).Progress())
}
