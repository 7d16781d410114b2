package datastore

import (
	"context"

	"github.com/uptrace/bun"

	"poolup/internal/models"
)

func CreateTableContribution(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Contribution)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Contribution)(nil)).Index("index_contribution_pool_id").IfNotExists().Column("pool_id").Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Contribution)(nil)).Index("index_contribution_user_id").IfNotExists().Column("user_id").Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func InsertContribution(ctx context.Context, db bun.IDB, contribution *models.Contribution) (*models.Contribution, error) {
	_, err := db.NewInsert().Model(contribution).Exec(ctx)
	if err != nil {
		return nil, err
	}
	return contribution, nil
}

// SetContributionScore writes the final score back before the pipeline
// commits. This is the only update a contribution row ever sees.
func SetContributionScore(ctx context.Context, db bun.IDB, contributionID string, points int, streakBonus bool) error {
	_, err := db.NewUpdate().Model((*models.Contribution)(nil)).
		Set("points_earned = ?", points).
		Set("streak_bonus = ?", streakBonus).
		Where("id = ?", contributionID).
		Exec(ctx)
	return err
}

func CountContributionsByUser(ctx context.Context, db bun.IDB, userID int64) (int, error) {
	return db.NewSelect().Model((*models.Contribution)(nil)).Where("user_id = ?", userID).Count(ctx)
}

func CountStreakBonusContributions(ctx context.Context, db bun.IDB, userID int64) (int, error) {
	return db.NewSelect().Model((*models.Contribution)(nil)).
		Where("user_id = ? AND streak_bonus = TRUE", userID).
		Count(ctx)
}

// SumContributionsByPool backs the reconciliation check against
// pool.saved_cents.
func SumContributionsByPool(ctx context.Context, db bun.IDB, poolID int64) (int64, error) {
	var total int64
	err := db.NewSelect().Model((*models.Contribution)(nil)).
		ColumnExpr("COALESCE(SUM(amount_cents), 0)").
		Where("pool_id = ?", poolID).
		Scan(ctx, &total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
