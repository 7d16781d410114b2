package datastore

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"poolup/internal/models"
)

func CreateTablePool(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Pool)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func CreatePool(ctx context.Context, db bun.IDB, pool *models.Pool) (*models.Pool, error) {
	_, err := db.NewInsert().Model(pool).Exec(ctx)
	if err != nil {
		return nil, err
	}
	return pool, nil
}

func FindPoolByID(ctx context.Context, db bun.IDB, poolID int64) (*models.Pool, error) {
	var pool models.Pool
	err := db.NewSelect().Model(&pool).Where("id = ?", poolID).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &pool, nil
}

func FindPoolByIDForUpdate(ctx context.Context, db bun.IDB, poolID int64) (*models.Pool, error) {
	var pool models.Pool
	err := db.NewSelect().Model(&pool).Where("id = ?", poolID).For("UPDATE").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &pool, nil
}

func AddPoolSaved(ctx context.Context, db bun.IDB, poolID int64, amountCents int64) error {
	_, err := db.NewUpdate().Model((*models.Pool)(nil)).
		Set("saved_cents = saved_cents + ?", amountCents).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", poolID).
		Exec(ctx)
	return err
}

func AddPoolBonusPot(ctx context.Context, db bun.IDB, poolID int64, amountCents int64) error {
	_, err := db.NewUpdate().Model((*models.Pool)(nil)).
		Set("bonus_pot_cents = bonus_pot_cents + ?", amountCents).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", poolID).
		Exec(ctx)
	return err
}

func ListPoolIDs(ctx context.Context, db bun.IDB) ([]int64, error) {
	var ids []int64
	err := db.NewSelect().Model((*models.Pool)(nil)).Column("id").Scan(ctx, &ids)
	if err != nil {
		return nil, err
	}
	return ids, nil
}
