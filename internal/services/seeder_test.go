package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poolup/internal/models"
)

func TestChallengeTemplates(t *testing.T) {
	pool := &models.Pool{ID: 7, Destination: "Tokyo", GoalCents: 500000}
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	challenges := ChallengeTemplates(pool, now)
	require.Len(t, challenges, 3)

	participation := challenges[0]
	assert.Equal(t, models.ChallengeTargetParticipation, participation.TargetType)
	assert.Equal(t, 100, participation.TargetPercent)
	assert.Equal(t, 50, participation.RewardPoints)
	assert.Equal(t, now.AddDate(0, 0, 7), participation.EndsAt)

	early := challenges[1]
	assert.Equal(t, models.ChallengeTargetEarly, early.TargetType)
	assert.Equal(t, 75, early.TargetPercent)
	assert.Equal(t, 30, early.RewardPoints)

	milestone := challenges[2]
	assert.Equal(t, models.ChallengeTargetGoalPercent, milestone.TargetType)
	assert.Equal(t, 25, milestone.TargetPercent)
	assert.Equal(t, 100, milestone.RewardPoints)
	assert.Equal(t, now.AddDate(0, 1, 0), milestone.EndsAt)

	for _, challenge := range challenges {
		assert.Equal(t, pool.ID, challenge.PoolID)
		assert.NotEmpty(t, challenge.Name)
		assert.Greater(t, challenge.RewardBonusCents, int64(0))
	}
}

func TestUnlockableTemplates(t *testing.T) {
	pool := &models.Pool{ID: 7, Destination: "Tokyo"}

	unlockables := UnlockableTemplates(pool)
	require.Len(t, unlockables, 4)

	percents := make([]int, 0, len(unlockables))
	for _, unlockable := range unlockables {
		assert.Equal(t, pool.ID, unlockable.PoolID)
		percents = append(percents, unlockable.UnlockPercent)
	}
	assert.Equal(t, []int{25, 50, 75, 100}, percents)
}
