package datastore

import (
	"context"

	"github.com/uptrace/bun"

	"poolup/internal/models"
)

func CreateTableInterestEarning(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.InterestEarning)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.InterestEarning)(nil)).Index("index_interest_earning_user_id").IfNotExists().Column("user_id").Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func InsertInterestEarning(ctx context.Context, db bun.IDB, earning *models.InterestEarning) error {
	_, err := db.NewInsert().Model(earning).Exec(ctx)
	return err
}
