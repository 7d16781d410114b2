package datastore

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"poolup/internal/models"
)

func CreateTableMembership(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*models.Membership)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.Membership)(nil)).Index("index_membership_pool_user").IfNotExists().Unique().Column("pool_id", "user_id").Exec(ctx)
	if err != nil {
		return err
	}
	return nil
}

func CreateMembership(ctx context.Context, db bun.IDB, membership *models.Membership) (*models.Membership, error) {
	_, err := db.NewInsert().Model(membership).Exec(ctx)
	if err != nil {
		return nil, err
	}
	return membership, nil
}

func FindMembership(ctx context.Context, db bun.IDB, poolID, userID int64) (*models.Membership, error) {
	var membership models.Membership
	err := db.NewSelect().Model(&membership).
		Where("pool_id = ? AND user_id = ?", poolID, userID).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func ListMembershipsByUser(ctx context.Context, db bun.IDB, userID int64) ([]*models.Membership, error) {
	var memberships []*models.Membership
	err := db.NewSelect().Model(&memberships).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// UpdateMembershipContribution writes the streak, last contribution date and
// running total produced by one contribution pipeline.
func UpdateMembershipContribution(ctx context.Context, db bun.IDB, membership *models.Membership) error {
	_, err := db.NewUpdate().Model(membership).
		Column("contribution_streak", "last_contribution_date", "total_contributed_cents", "updated_at").
		WherePK().
		Exec(ctx)
	return err
}

func AddMembershipContributed(ctx context.Context, db bun.IDB, membershipID int64, amountCents int64) error {
	_, err := db.NewUpdate().Model((*models.Membership)(nil)).
		Set("total_contributed_cents = total_contributed_cents + ?", amountCents).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", membershipID).
		Exec(ctx)
	return err
}

// MaxStreakByUser is the best active streak across all of the user's pools,
// not just the one that was touched last.
func MaxStreakByUser(ctx context.Context, db bun.IDB, userID int64) (int, error) {
	var max int
	err := db.NewSelect().Model((*models.Membership)(nil)).
		ColumnExpr("COALESCE(MAX(contribution_streak), 0)").
		Where("user_id = ?", userID).
		Scan(ctx, &max)
	if err != nil {
		return 0, err
	}
	return max, nil
}
