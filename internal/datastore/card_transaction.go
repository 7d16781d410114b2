package datastore

import (
	"context"

	"github.com/uptrace/bun"

	"poolup/internal/models"
)

func CreateTableCardTransaction(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.CardTransaction)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.CardTransaction)(nil)).Index("index_card_transaction_user_id").IfNotExists().Column("user_id").Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func CountCardTransactionsByUser(ctx context.Context, db bun.IDB, userID int64) (int, error) {
	return db.NewSelect().Model((*models.CardTransaction)(nil)).Where("user_id = ?", userID).Count(ctx)
}
