package services

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"poolup/internal/datastore"
	"poolup/internal/models"
)

var unlockablePercents = []int{25, 50, 75, 100}

// ChallengeTemplates builds the fixed challenge set a new pool starts with.
func ChallengeTemplates(pool *models.Pool, now time.Time) []*models.Challenge {
	return []*models.Challenge{
		{
			PoolID:           pool.ID,
			Name:             "Weekly Warriors",
			Description:      fmt.Sprintf("Everyone saving for %s contributes this week", pool.Destination),
			TargetType:       models.ChallengeTargetParticipation,
			TargetPercent:    100,
			RewardPoints:     50,
			RewardBonusCents: 500,
			StartsAt:         now,
			EndsAt:           now.AddDate(0, 0, 7),
		},
		{
			PoolID:           pool.ID,
			Name:             "Early Birds",
			Description:      "Three quarters of the pool contributes early in the week",
			TargetType:       models.ChallengeTargetEarly,
			TargetPercent:    75,
			RewardPoints:     30,
			RewardBonusCents: 300,
			StartsAt:         now,
			EndsAt:           now.AddDate(0, 0, 7),
		},
		{
			PoolID:           pool.ID,
			Name:             "Milestone Celebration",
			Description:      fmt.Sprintf("Reach a quarter of the %s goal", pool.Destination),
			TargetType:       models.ChallengeTargetGoalPercent,
			TargetPercent:    25,
			RewardPoints:     100,
			RewardBonusCents: 1000,
			StartsAt:         now,
			EndsAt:           now.AddDate(0, 1, 0),
		},
	}
}

// UnlockableTemplates builds the percentage-gated content for a new pool.
func UnlockableTemplates(pool *models.Pool) []*models.Unlockable {
	unlockables := make([]*models.Unlockable, 0, len(unlockablePercents))
	for _, percent := range unlockablePercents {
		unlockables = append(unlockables, &models.Unlockable{
			PoolID:        pool.ID,
			Name:          fmt.Sprintf("%d%% of the way", percent),
			Description:   fmt.Sprintf("Unlocked at %d%% of the %s goal", percent, pool.Destination),
			UnlockPercent: percent,
		})
	}
	return unlockables
}

// SeedPoolContent runs once inside the pool-creation transaction. A pool that
// already has challenges is never re-seeded.
func SeedPoolContent(ctx context.Context, db bun.IDB, pool *models.Pool, now time.Time) error {
	count, err := datastore.CountChallengesByPool(ctx, db, pool.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := datastore.InsertChallenges(ctx, db, ChallengeTemplates(pool, now)); err != nil {
		return err
	}
	return datastore.InsertUnlockables(ctx, db, UnlockableTemplates(pool))
}
