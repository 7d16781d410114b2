package datastore

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"poolup/internal/models"
)

func CreateTableLeaderboardEntry(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.LeaderboardEntry)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.LeaderboardEntry)(nil)).Index("index_leaderboard_pool_user").IfNotExists().Unique().Column("pool_id", "user_id").Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

// ListPoolStandings joins pool memberships with each user's point total,
// ordered the way ranks are assigned: points first, contributed total breaks
// ties, user id keeps the order stable.
func ListPoolStandings(ctx context.Context, db bun.IDB, poolID int64) ([]*models.PoolStanding, error) {
	var standings []*models.PoolStanding
	err := db.NewSelect().
		ColumnExpr("m.user_id AS user_id").
		ColumnExpr("u.total_points AS total_points").
		ColumnExpr("m.total_contributed_cents AS total_contributed_cents").
		TableExpr("membership AS m").
		Join(`JOIN "user" AS u ON u.id = m.user_id`).
		Where("m.pool_id = ?", poolID).
		OrderExpr("u.total_points DESC, m.total_contributed_cents DESC, m.user_id ASC").
		Scan(ctx, &standings)
	if err != nil {
		return nil, err
	}
	return standings, nil
}

// ReplacePoolEntries overwrites a pool's leaderboard rows with a freshly
// ranked set.
func ReplacePoolEntries(ctx context.Context, db bun.IDB, poolID int64, standings []*models.PoolStanding) error {
	_, err := db.NewDelete().Model((*models.LeaderboardEntry)(nil)).Where("pool_id = ?", poolID).Exec(ctx)
	if err != nil {
		return err
	}

	if len(standings) == 0 {
		return nil
	}

	now := time.Now()
	entries := make([]*models.LeaderboardEntry, 0, len(standings))
	for _, standing := range standings {
		entries = append(entries, &models.LeaderboardEntry{
			PoolID:    poolID,
			UserID:    standing.UserID,
			Points:    standing.TotalPoints,
			Rank:      standing.Rank,
			UpdatedAt: now,
		})
	}

	_, err = db.NewInsert().Model(&entries).Exec(ctx)
	return err
}

func ListEntriesByPool(ctx context.Context, db bun.IDB, poolID int64, limit int) ([]*models.LeaderboardEntry, error) {
	var entries []*models.LeaderboardEntry
	q := db.NewSelect().Model(&entries).Where("pool_id = ?", poolID).Order("rank ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Scan(ctx)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func FindEntry(ctx context.Context, db bun.IDB, poolID, userID int64) (*models.LeaderboardEntry, error) {
	var entry models.LeaderboardEntry
	err := db.NewSelect().Model(&entry).Where("pool_id = ? AND user_id = ?", poolID, userID).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
