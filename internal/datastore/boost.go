package datastore

import (
	"context"

	"github.com/uptrace/bun"

	"poolup/internal/models"
)

func CreateTablePeerBoost(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.PeerBoost)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.PeerBoost)(nil)).Index("index_peer_boost_pool_id").IfNotExists().Column("pool_id").Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func CreateTableForfeit(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Forfeit)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Forfeit)(nil)).Index("index_forfeit_pool_id").IfNotExists().Column("pool_id").Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func InsertPeerBoost(ctx context.Context, db bun.IDB, boost *models.PeerBoost) (*models.PeerBoost, error) {
	_, err := db.NewInsert().Model(boost).Exec(ctx)
	if err != nil {
		return nil, err
	}
	return boost, nil
}

func InsertForfeit(ctx context.Context, db bun.IDB, forfeit *models.Forfeit) (*models.Forfeit, error) {
	_, err := db.NewInsert().Model(forfeit).Exec(ctx)
	if err != nil {
		return nil, err
	}
	return forfeit, nil
}

// SumPeerBoostsByPool backs the reconciliation check; boost amounts count
// toward pool.saved_cents alongside contributions.
func SumPeerBoostsByPool(ctx context.Context, db bun.IDB, poolID int64) (int64, error) {
	var total int64
	err := db.NewSelect().Model((*models.PeerBoost)(nil)).
		ColumnExpr("COALESCE(SUM(amount_cents), 0)").
		Where("pool_id = ?", poolID).
		Scan(ctx, &total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
