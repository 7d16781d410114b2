package datastore

import (
	"context"

	"github.com/uptrace/bun"

	"poolup/internal/models"
)

func CreateTableChallenge(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Challenge)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Challenge)(nil)).Index("index_challenge_pool_id").IfNotExists().Column("pool_id").Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func CreateTableUnlockable(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Unlockable)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Unlockable)(nil)).Index("index_unlockable_pool_id").IfNotExists().Column("pool_id").Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func InsertChallenges(ctx context.Context, db bun.IDB, challenges []*models.Challenge) error {
	if len(challenges) == 0 {
		return nil
	}
	_, err := db.NewInsert().Model(&challenges).Exec(ctx)
	return err
}

func InsertUnlockables(ctx context.Context, db bun.IDB, unlockables []*models.Unlockable) error {
	if len(unlockables) == 0 {
		return nil
	}
	_, err := db.NewInsert().Model(&unlockables).Exec(ctx)
	return err
}

func CountChallengesByPool(ctx context.Context, db bun.IDB, poolID int64) (int, error) {
	return db.NewSelect().Model((*models.Challenge)(nil)).Where("pool_id = ?", poolID).Count(ctx)
}

func ListChallengesByPool(ctx context.Context, db bun.IDB, poolID int64) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := db.NewSelect().Model(&challenges).Where("pool_id = ?", poolID).Order("id ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return challenges, nil
}

func ListUnlockablesByPool(ctx context.Context, db bun.IDB, poolID int64) ([]models.Unlockable, error) {
	var unlockables []models.Unlockable
	err := db.NewSelect().Model(&unlockables).Where("pool_id = ?", poolID).Order("unlock_percent ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return unlockables, nil
}
