package services

import (
	"context"
	"time"

	"github.com/samber/do"
	"github.com/uptrace/bun"

	"poolup/internal/datastore"
	"poolup/internal/models"
	"poolup/internal/pkg/caching"
)

// BadgeStats is the snapshot a badge decision is made against.
type BadgeStats struct {
	TotalPoints          int
	ContributionCount    int
	StreakBonusCount     int
	LongestStreak        int
	Level                int
	CardTransactionCount int
}

// Qualifies is the eligibility policy: the category predicate OR the blanket
// points threshold. The OR is deliberate and kept as-is; a badge with a
// behavioral predicate can still be bought with points.
func Qualifies(badge models.Badge, stats BadgeStats) bool {
	return qualifiesByCategory(badge, stats) || qualifiesByPoints(badge, stats)
}

func qualifiesByCategory(badge models.Badge, stats BadgeStats) bool {
	switch badge.Category {
	case models.BadgeCategoryMilestone:
		return stats.ContributionCount >= 1
	case models.BadgeCategoryConsistency:
		return stats.StreakBonusCount >= 5
	case models.BadgeCategoryStreak:
		return stats.LongestStreak >= 30
	case models.BadgeCategoryLevel:
		return stats.Level >= 10
	case models.BadgeCategorySpending:
		return stats.CardTransactionCount >= 50
	default:
		// leadership, social, achievement, rewards are awarded elsewhere
		return false
	}
}

// A zero threshold means the badge has no points path at all.
func qualifiesByPoints(badge models.Badge, stats BadgeStats) bool {
	return badge.PointsRequired > 0 && stats.TotalPoints >= badge.PointsRequired
}

type ServiceBadge struct {
	container     *do.Injector
	postgresDB    *bun.DB
	cache         caching.Cache
	readonlyCache caching.ReadOnlyCache
}

func NewServiceBadge(container *do.Injector) (*ServiceBadge, error) {
	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	cache, err := do.Invoke[caching.Cache](container)
	if err != nil {
		return nil, err
	}

	readonlyCache, err := do.Invoke[caching.ReadOnlyCache](container)
	if err != nil {
		return nil, err
	}

	return &ServiceBadge{container, postgresDB, cache, readonlyCache}, nil
}

// Evaluate scans the catalog and awards every badge the user now qualifies
// for but does not own. Runs on the caller's db handle so the contribution
// pipeline can keep it inside its transaction. Repeat calls with no new
// activity return an empty list.
func (service *ServiceBadge) Evaluate(ctx context.Context, db bun.IDB, userID int64, poolID *int64) ([]models.Badge, error) {
	catalog, err := datastore.ListBadges(ctx, db)
	if err != nil {
		return nil, err
	}

	owned, err := datastore.ListUserBadgeIDs(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	stats, err := service.collectStats(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	var awarded []models.Badge
	for _, badge := range catalog {
		if owned[badge.ID] {
			continue
		}
		if !Qualifies(badge, stats) {
			continue
		}

		inserted, err := datastore.InsertUserBadge(ctx, db, &models.UserBadge{
			UserID:    userID,
			BadgeID:   badge.ID,
			PoolID:    poolID,
			AwardedAt: time.Now(),
		})
		if err != nil {
			return nil, err
		}
		if !inserted {
			// lost a concurrent award, treat as already owned
			continue
		}

		awarded = append(awarded, badge)
	}

	if len(awarded) > 0 {
		_ = service.cache.Delete(ctx, DBKeyUserBadges(userID))
	}

	return awarded, nil
}

func (service *ServiceBadge) collectStats(ctx context.Context, db bun.IDB, userID int64) (BadgeStats, error) {
	var stats BadgeStats

	user, err := datastore.FindUserByID(ctx, db, userID)
	if err != nil {
		return stats, err
	}

	contributions, err := datastore.CountContributionsByUser(ctx, db, userID)
	if err != nil {
		return stats, err
	}

	streakBonuses, err := datastore.CountStreakBonusContributions(ctx, db, userID)
	if err != nil {
		return stats, err
	}

	cardTransactions, err := datastore.CountCardTransactionsByUser(ctx, db, userID)
	if err != nil {
		return stats, err
	}

	stats.TotalPoints = user.TotalPoints
	stats.ContributionCount = contributions
	stats.StreakBonusCount = streakBonuses
	stats.LongestStreak = user.LongestStreak
	stats.Level = user.ComputeLevel()
	stats.CardTransactionCount = cardTransactions
	return stats, nil
}

func (service *ServiceBadge) ListBadgesByUser(ctx context.Context, userID int64) ([]models.Badge, error) {
	callback := func() ([]models.Badge, error) {
		return datastore.ListBadgesByUser(ctx, service.postgresDB, userID)
	}
	return caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyUserBadges(userID), CACHE_TTL_5_MINS, callback)
}
