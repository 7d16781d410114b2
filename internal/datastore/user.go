package datastore

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"poolup/internal/models"
)

func CreateTableUser(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.User)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.User)(nil)).Index("index_user_username").IfNotExists().Unique().Column("username").Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func CreateUser(ctx context.Context, db bun.IDB, user *models.User) (*models.User, error) {
	_, err := db.NewInsert().Model(user).Exec(ctx)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func FindUserByID(ctx context.Context, db bun.IDB, userID int64) (*models.User, error) {
	var user models.User
	err := db.NewSelect().Model(&user).Where("id = ?", userID).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByUsername(ctx context.Context, db bun.IDB, username string) (*models.User, error) {
	var user models.User
	err := db.NewSelect().Model(&user).Where("username = ?", username).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByIDForUpdate takes a row lock so concurrent pipelines touching the
// same user serialize inside their transactions.
func FindUserByIDForUpdate(ctx context.Context, db bun.IDB, userID int64) (*models.User, error) {
	var user models.User
	err := db.NewSelect().Model(&user).Where("id = ?", userID).For("UPDATE").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func AddUserPoints(ctx context.Context, db bun.IDB, userID int64, points int) error {
	_, err := db.NewUpdate().Model((*models.User)(nil)).
		Set("total_points = total_points + ?", points).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	return err
}

func UpdateUserStreaks(ctx context.Context, db bun.IDB, userID int64, current, longest int) error {
	_, err := db.NewUpdate().Model((*models.User)(nil)).
		Set("current_streak = ?", current).
		Set("longest_streak = ?", longest).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	return err
}

func AddUserBalance(ctx context.Context, db bun.IDB, userID int64, amountCents int64) error {
	_, err := db.NewUpdate().Model((*models.User)(nil)).
		Set("balance_cents = balance_cents + ?", amountCents).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	return err
}

// ListUserIDsWithBalance feeds the daily interest cron.
func ListUserIDsWithBalance(ctx context.Context, db bun.IDB) ([]int64, error) {
	var ids []int64
	err := db.NewSelect().Model((*models.User)(nil)).
		Column("id").
		Where("balance_cents > 0").
		Scan(ctx, &ids)
	if err != nil {
		return nil, err
	}
	return ids, nil
}
