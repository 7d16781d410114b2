package datastore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poolup/internal/models"
)

func TestListPoolStandingsOrdering(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	pool := &models.Pool{Name: "trip", Destination: "Kyoto", PoolType: models.PoolTypeGroup, GoalCents: 100000}
	_, err := CreatePool(ctx, db, pool)
	require.NoError(t, err)

	now := time.Now()
	members := []struct {
		username    string
		points      int
		contributed int64
	}{
		{"alice", 50, 2000},
		{"bob", 90, 1000},
		{"carol", 50, 3000},
		{"dave", 50, 2000},
	}

	for _, m := range members {
		user, err := CreateUser(ctx, db, &models.User{Username: m.username, TotalPoints: m.points, CreatedAt: now, UpdatedAt: now})
		require.NoError(t, err)
		_, err = CreateMembership(ctx, db, &models.Membership{
			PoolID:                pool.ID,
			UserID:                user.ID,
			TotalContributedCents: m.contributed,
			CreatedAt:             now,
			UpdatedAt:             now,
		})
		require.NoError(t, err)
	}

	standings, err := ListPoolStandings(ctx, db, pool.ID)
	require.NoError(t, err)
	require.Len(t, standings, 4)

	// points first, contributed cents break ties, user id keeps it stable
	assert.Equal(t, 90, standings[0].TotalPoints)
	assert.Equal(t, int64(3000), standings[1].TotalContributedCents)
	assert.Equal(t, int64(2000), standings[2].TotalContributedCents)
	assert.Equal(t, int64(2000), standings[3].TotalContributedCents)
	assert.Less(t, standings[2].UserID, standings[3].UserID)

	rankStandings(standings)

	require.NoError(t, ReplacePoolEntries(ctx, db, pool.ID, standings))

	entries, err := ListEntriesByPool(ctx, db, pool.ID, 0)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Rank)
		assert.Equal(t, standings[i].UserID, entry.UserID)
	}
}

// rankStandings mirrors the service-side rank assignment so the store round
// trip can be checked without importing the services package.
func rankStandings(standings []*models.PoolStanding) {
	for i, standing := range standings {
		standing.Rank = i + 1
	}
}
