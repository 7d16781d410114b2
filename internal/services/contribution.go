package services

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/go-redsync/redsync/v4"
	"github.com/google/uuid"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/limiter"
	"github.com/samber/do"
	"github.com/uptrace/bun"

	"poolup/internal/datastore"
	"poolup/internal/interfaces"
	"poolup/internal/models"
	"poolup/internal/pkg"
)

type ContributionResult struct {
	ContributionID string         `json:"contribution_id"`
	Points         int            `json:"points"`
	Streak         int            `json:"streak"`
	NewBadges      []models.Badge `json:"new_badges"`
}

type ContributionEvent struct {
	PoolID    int64          `json:"pool_id" msgpack:"pool_id"`
	NewBadges []models.Badge `json:"new_badges" msgpack:"new_badges"`
}

type ServiceContribution struct {
	container  *do.Injector
	rs         *redsync.Redsync
	postgresDB *bun.DB
	limiter    interfaces.Limiter
	payments   interfaces.PaymentProcessor
	events     interfaces.EventBroadcaster

	serviceUser        *ServiceUser
	servicePool        *ServicePool
	serviceBadge       *ServiceBadge
	serviceLeaderboard *ServiceLeaderboard
}

func NewServiceContribution(container *do.Injector) (*ServiceContribution, error) {
	rs, err := do.Invoke[*redsync.Redsync](container)
	if err != nil {
		return nil, err
	}

	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	rateLimiter, err := do.Invoke[interfaces.Limiter](container)
	if err != nil {
		return nil, err
	}

	payments, err := do.Invoke[interfaces.PaymentProcessor](container)
	if err != nil {
		return nil, err
	}

	events, err := do.Invoke[interfaces.EventBroadcaster](container)
	if err != nil {
		return nil, err
	}

	serviceUser, err := do.Invoke[*ServiceUser](container)
	if err != nil {
		return nil, err
	}

	servicePool, err := do.Invoke[*ServicePool](container)
	if err != nil {
		return nil, err
	}

	serviceBadge, err := do.Invoke[*ServiceBadge](container)
	if err != nil {
		return nil, err
	}

	serviceLeaderboard, err := do.Invoke[*ServiceLeaderboard](container)
	if err != nil {
		return nil, err
	}

	return &ServiceContribution{container, rs, postgresDB, rateLimiter, payments, events, serviceUser, servicePool, serviceBadge, serviceLeaderboard}, nil
}

// Record runs the whole contribution pipeline as one unit of work: ledger
// write, membership streak, scoring, badge scan and rank recompute commit or
// roll back together. Concurrent contributions to the same pool serialize on
// the pool lock.
func (service *ServiceContribution) Record(ctx context.Context, poolID, userID int64, amountCents int64, paymentMethod string, early *bool) (*ContributionResult, error) {
	if amountCents <= 0 {
		return nil, errorx.Wrap(ErrInvalidAmount, errorx.Invalid)
	}

	err := service.limiter.Allow(ctx, LimitKeyContribution(userID), redis_rate.PerMinute(CONTRIBUTION_RATE_LIMIT_PER_MINUTE))
	if err != nil {
		if err.Error() == limiter.ErrRateLimited.Error() {
			return nil, errorx.Wrap(err, errorx.RateLimiting)
		}
		return nil, err
	}

	// lock order is always pool then user
	poolMutex := service.rs.NewMutex(LockKeyPool(poolID))
	if err := poolMutex.TryLock(); err != nil {
		return nil, errorx.Wrap(ErrPoolLock, errorx.Invalid)
	}
	// nolint:errcheck
	defer poolMutex.Unlock()

	userMutex := service.rs.NewMutex(LockKeyUser(userID))
	if err := userMutex.TryLock(); err != nil {
		return nil, errorx.Wrap(ErrUserLock, errorx.Invalid)
	}
	// nolint:errcheck
	defer userMutex.Unlock()

	if err := service.payments.Collect(ctx, userID, amountCents, paymentMethod); err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	now := time.Now()
	isEarly := pkg.IsEarlyInWeek(now)
	if early != nil {
		isEarly = *early
	}

	result := &ContributionResult{}
	var standings []*models.PoolStanding
	err = service.postgresDB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := datastore.FindPoolByIDForUpdate(ctx, tx, poolID); err != nil {
			return storeError(err, ErrPoolNotFound)
		}

		membership, err := datastore.FindMembership(ctx, tx, poolID, userID)
		if err != nil {
			return storeError(err, ErrMembershipNotFound)
		}

		user, err := datastore.FindUserByIDForUpdate(ctx, tx, userID)
		if err != nil {
			return storeError(err, ErrUserNotFound)
		}

		contribution := &models.Contribution{
			ID:            uuid.NewString(),
			PoolID:        poolID,
			UserID:        userID,
			AmountCents:   amountCents,
			EarlyBird:     isEarly,
			PaymentMethod: paymentMethod,
			CreatedAt:     now,
		}
		if _, err := datastore.InsertContribution(ctx, tx, contribution); err != nil {
			return err
		}

		if err := datastore.AddPoolSaved(ctx, tx, poolID, amountCents); err != nil {
			return err
		}

		streak := NextStreak(membership.ContributionStreak, membership.LastContributionDate, now)
		membership.ContributionStreak = streak
		membership.LastContributionDate = &now
		membership.TotalContributedCents += amountCents
		membership.UpdatedAt = now
		if err := datastore.UpdateMembershipContribution(ctx, tx, membership); err != nil {
			return err
		}

		// the user's current streak is the best one across all pools
		maxStreak, err := datastore.MaxStreakByUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		longest := user.LongestStreak
		if maxStreak > longest {
			longest = maxStreak
		}
		if err := datastore.UpdateUserStreaks(ctx, tx, userID, maxStreak, longest); err != nil {
			return err
		}

		hasStreak := streak >= 2
		points := Score(amountCents, hasStreak, isEarly)
		if err := datastore.SetContributionScore(ctx, tx, contribution.ID, points, hasStreak); err != nil {
			return err
		}
		if err := datastore.AddUserPoints(ctx, tx, userID, points); err != nil {
			return err
		}

		newBadges, err := service.serviceBadge.Evaluate(ctx, tx, userID, &poolID)
		if err != nil {
			return err
		}

		standings, err = service.serviceLeaderboard.Recompute(ctx, tx, poolID)
		if err != nil {
			return err
		}

		result.ContributionID = contribution.ID
		result.Points = points
		result.Streak = streak
		result.NewBadges = newBadges
		return nil
	})
	if err != nil {
		return nil, err
	}

	service.afterCommit(ctx, poolID, userID, standings, result.NewBadges)
	return result, nil
}

func (service *ServiceContribution) afterCommit(ctx context.Context, poolID, userID int64, standings []*models.PoolStanding, newBadges []models.Badge) {
	service.serviceLeaderboard.Mirror(ctx, poolID, standings)

	if err := service.events.Broadcast(ctx, EVENT_CONTRIBUTION_NEW, ContributionEvent{
		PoolID:    poolID,
		NewBadges: newBadges,
	}); err != nil {
		log.Println("broadcast failed:", "event:", EVENT_CONTRIBUTION_NEW, "pool:", poolID, "err:", err)
	}

	_ = service.serviceUser.ClearUserCache(ctx, userID)
	_ = service.servicePool.ClearPoolCache(ctx, poolID)
}
