package datastore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poolup/internal/models"
)

func TestInsertUserBadgeUniquePerUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	badge := &models.Badge{Name: "First Contribution", Category: models.BadgeCategoryMilestone, PointsRequired: 10, Rarity: "common"}
	require.NoError(t, InsertBadge(ctx, db, badge))

	award := func() (bool, error) {
		return InsertUserBadge(ctx, db, &models.UserBadge{
			UserID:    1,
			BadgeID:   badge.ID,
			AwardedAt: time.Now(),
		})
	}

	inserted, err := award()
	require.NoError(t, err)
	assert.True(t, inserted)

	// the losing side of a concurrent award reads false, no error
	inserted, err = award()
	require.NoError(t, err)
	assert.False(t, inserted)

	count, err := db.NewSelect().Model((*models.UserBadge)(nil)).Where("user_id = ?", 1).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
