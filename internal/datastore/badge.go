package datastore

import (
	"context"

	"github.com/uptrace/bun"

	"poolup/internal/models"
)

func CreateTableBadge(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Badge)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Badge)(nil)).Index("index_badge_name").IfNotExists().Unique().Column("name").Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func CreateTableUserBadge(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.UserBadge)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	// one award per (user, badge), enforced by the store itself
	_, err = db.NewCreateIndex().Model((*models.UserBadge)(nil)).Index("index_user_badge_user_badge").IfNotExists().Unique().Column("user_id", "badge_id").Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func InsertBadge(ctx context.Context, db bun.IDB, badge *models.Badge) error {
	_, err := db.NewInsert().Model(badge).On("CONFLICT (name) DO NOTHING").Exec(ctx)
	return err
}

func ListBadges(ctx context.Context, db bun.IDB) ([]models.Badge, error) {
	var badges []models.Badge
	err := db.NewSelect().Model(&badges).Order("id ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return badges, nil
}

func ListUserBadgeIDs(ctx context.Context, db bun.IDB, userID int64) (map[int64]bool, error) {
	var ids []int64
	err := db.NewSelect().Model((*models.UserBadge)(nil)).
		Column("badge_id").
		Where("user_id = ?", userID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, err
	}

	owned := make(map[int64]bool, len(ids))
	for _, id := range ids {
		owned[id] = true
	}
	return owned, nil
}

// InsertUserBadge reports whether the row was actually created. A concurrent
// award of the same (user, badge) loses the conflict and reads false.
func InsertUserBadge(ctx context.Context, db bun.IDB, userBadge *models.UserBadge) (bool, error) {
	res, err := db.NewInsert().Model(userBadge).On("CONFLICT (user_id, badge_id) DO NOTHING").Exec(ctx)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func ListBadgesByUser(ctx context.Context, db bun.IDB, userID int64) ([]models.Badge, error) {
	var badges []models.Badge
	err := db.NewSelect().Model(&badges).
		Join("JOIN user_badge AS ub ON ub.badge_id = badge.id").
		Where("ub.user_id = ?", userID).
		Order("ub.awarded_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return badges, nil
}
