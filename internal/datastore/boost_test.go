package datastore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"poolup/internal/models"
)

func TestForfeitGrowsBonusPotOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	pool := &models.Pool{Name: "trip", Destination: "Lisbon", PoolType: models.PoolTypeGroup, GoalCents: 100000}
	_, err := CreatePool(ctx, db, pool)
	require.NoError(t, err)

	forfeit := &models.Forfeit{
		ID:          uuid.NewString(),
		PoolID:      pool.ID,
		UserID:      1,
		AmountCents: 500,
		Reason:      "missed week",
		CreatedAt:   time.Now(),
	}

	err = db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := InsertForfeit(ctx, tx, forfeit); err != nil {
			return err
		}
		return AddPoolBonusPot(ctx, tx, pool.ID, forfeit.AmountCents)
	})
	require.NoError(t, err)

	stored, err := FindPoolByID(ctx, db, pool.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), stored.BonusPotCents)
	assert.Equal(t, int64(0), stored.SavedCents)

	// replaying the same forfeit hits the primary key and the whole
	// transaction rolls back, pot included
	err = db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := InsertForfeit(ctx, tx, forfeit); err != nil {
			return err
		}
		return AddPoolBonusPot(ctx, tx, pool.ID, forfeit.AmountCents)
	})
	require.Error(t, err)

	stored, err = FindPoolByID(ctx, db, pool.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), stored.BonusPotCents)

	count, err := db.NewSelect().Model((*models.Forfeit)(nil)).Where("pool_id = ?", pool.ID).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSumPeerBoostsByPool(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	pool := &models.Pool{Name: "trip", Destination: "Lisbon", PoolType: models.PoolTypeGroup, GoalCents: 100000}
	_, err := CreatePool(ctx, db, pool)
	require.NoError(t, err)

	for _, amount := range []int64{1000, 2500} {
		_, err := InsertPeerBoost(ctx, db, &models.PeerBoost{
			PoolID:        pool.ID,
			BoosterUserID: 1,
			TargetUserID:  2,
			AmountCents:   amount,
			BonusPoints:   1,
			CreatedAt:     time.Now(),
		})
		require.NoError(t, err)
	}

	total, err := SumPeerBoostsByPool(ctx, db, pool.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3500), total)

	empty, err := SumPeerBoostsByPool(ctx, db, pool.ID+1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty)
}
