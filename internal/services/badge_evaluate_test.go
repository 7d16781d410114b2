package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poolup/internal/datastore"
	"poolup/internal/models"
)

func TestEvaluateAwardsOnce(t *testing.T) {
	db := newTestDB(t)
	injector := newTestInjector(t, db)
	ctx := context.Background()

	service, err := NewServiceBadge(injector)
	require.NoError(t, err)

	user, err := datastore.CreateUser(ctx, db, &models.User{Username: "amara", TotalPoints: 25})
	require.NoError(t, err)

	milestone := &models.Badge{Name: "First Saver", Category: models.BadgeCategoryMilestone, Rarity: "common"}
	require.NoError(t, datastore.InsertBadge(ctx, db, milestone))
	streak := &models.Badge{Name: "Iron Streak", Category: models.BadgeCategoryStreak, Rarity: "rare"}
	require.NoError(t, datastore.InsertBadge(ctx, db, streak))

	_, err = datastore.InsertContribution(ctx, db, &models.Contribution{
		ID:          uuid.NewString(),
		PoolID:      1,
		UserID:      user.ID,
		AmountCents: 2000,
	})
	require.NoError(t, err)

	awarded, err := service.Evaluate(ctx, db, user.ID, nil)
	require.NoError(t, err)
	require.Len(t, awarded, 1)
	assert.Equal(t, milestone.ID, awarded[0].ID)

	// same stats, so nothing new to award
	again, err := service.Evaluate(ctx, db, user.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, again)

	count, err := db.NewSelect().Model((*models.UserBadge)(nil)).Where("user_id = ?", user.ID).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
