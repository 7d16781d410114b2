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
)

type BoostResult struct {
	Points int `json:"points"`
}

type BoostEvent struct {
	PoolID int64 `json:"pool_id" msgpack:"pool_id"`
}

type ServiceBoost struct {
	container  *do.Injector
	rs         *redsync.Redsync
	postgresDB *bun.DB
	limiter    interfaces.Limiter
	payments   interfaces.PaymentProcessor
	events     interfaces.EventBroadcaster

	serviceUser        *ServiceUser
	servicePool        *ServicePool
	serviceConfig      *ServiceConfig
	serviceLeaderboard *ServiceLeaderboard
}

func NewServiceBoost(container *do.Injector) (*ServiceBoost, error) {
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

	serviceConfig, err := do.Invoke[*ServiceConfig](container)
	if err != nil {
		return nil, err
	}

	serviceLeaderboard, err := do.Invoke[*ServiceLeaderboard](container)
	if err != nil {
		return nil, err
	}

	return &ServiceBoost{container, rs, postgresDB, rateLimiter, payments, events, serviceUser, servicePool, serviceConfig, serviceLeaderboard}, nil
}

// PeerBoost records one member assisting another. The amount counts toward
// the target's membership total and the booster earns a points-only bonus.
// Boosts never touch streaks.
func (service *ServiceBoost) PeerBoost(ctx context.Context, poolID, boosterUserID, targetUserID int64, amountCents int64) (*BoostResult, error) {
	if amountCents <= 0 {
		return nil, errorx.Wrap(ErrInvalidAmount, errorx.Invalid)
	}
	if boosterUserID == targetUserID {
		return nil, errorx.Wrap(ErrSelfBoost, errorx.Invalid)
	}

	err := service.limiter.Allow(ctx, LimitKeyBoost(boosterUserID), redis_rate.PerMinute(BOOST_RATE_LIMIT_PER_MINUTE))
	if err != nil {
		if err.Error() == limiter.ErrRateLimited.Error() {
			return nil, errorx.Wrap(err, errorx.RateLimiting)
		}
		return nil, err
	}

	poolMutex := service.rs.NewMutex(LockKeyPool(poolID))
	if err := poolMutex.TryLock(); err != nil {
		return nil, errorx.Wrap(ErrPoolLock, errorx.Invalid)
	}
	// nolint:errcheck
	defer poolMutex.Unlock()

	if err := service.payments.Collect(ctx, boosterUserID, amountCents, models.PaymentMethodManual); err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}

	divisor, _ := service.serviceConfig.GetIntConfig(ctx, CONFIG_BOOST_BONUS_DIVISOR, BOOST_BONUS_DEFAULT_DIVISOR)
	bonus := BoostBonus(amountCents, divisor)

	var standings []*models.PoolStanding
	err = service.postgresDB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := datastore.FindPoolByIDForUpdate(ctx, tx, poolID); err != nil {
			return storeError(err, ErrPoolNotFound)
		}

		target, err := datastore.FindMembership(ctx, tx, poolID, targetUserID)
		if err != nil {
			return storeError(err, ErrMembershipNotFound)
		}

		if _, err := datastore.FindMembership(ctx, tx, poolID, boosterUserID); err != nil {
			return storeError(err, ErrMembershipNotFound)
		}

		if _, err := datastore.InsertPeerBoost(ctx, tx, &models.PeerBoost{
			PoolID:        poolID,
			BoosterUserID: boosterUserID,
			TargetUserID:  targetUserID,
			AmountCents:   amountCents,
			BonusPoints:   bonus,
			CreatedAt:     time.Now(),
		}); err != nil {
			return err
		}

		if err := datastore.AddPoolSaved(ctx, tx, poolID, amountCents); err != nil {
			return err
		}

		if err := datastore.AddMembershipContributed(ctx, tx, target.ID, amountCents); err != nil {
			return err
		}

		if err := datastore.AddUserPoints(ctx, tx, boosterUserID, bonus); err != nil {
			return err
		}

		standings, err = service.serviceLeaderboard.Recompute(ctx, tx, poolID)
		return err
	})
	if err != nil {
		return nil, err
	}

	service.serviceLeaderboard.Mirror(ctx, poolID, standings)

	if err := service.events.Broadcast(ctx, EVENT_PEER_BOOST_NEW, BoostEvent{PoolID: poolID}); err != nil {
		log.Println("broadcast failed:", "event:", EVENT_PEER_BOOST_NEW, "pool:", poolID, "err:", err)
	}

	_ = service.serviceUser.ClearUserCache(ctx, boosterUserID)
	_ = service.servicePool.ClearPoolCache(ctx, poolID)

	return &BoostResult{Points: bonus}, nil
}

// Forfeit records a penalty and grows the pool's bonus pot. No balance is
// debited here; any real deduction is the payment processor's business.
func (service *ServiceBoost) Forfeit(ctx context.Context, poolID, userID int64, reason string, amountCents int64) (*models.Forfeit, error) {
	if amountCents == 0 {
		fallback, _ := service.serviceConfig.GetIntConfig(ctx, CONFIG_DEFAULT_FORFEIT, DEFAULT_FORFEIT_CENTS)
		amountCents = int64(fallback)
	}
	if amountCents < 0 {
		return nil, errorx.Wrap(ErrInvalidAmount, errorx.Invalid)
	}

	poolMutex := service.rs.NewMutex(LockKeyPool(poolID))
	if err := poolMutex.TryLock(); err != nil {
		return nil, errorx.Wrap(ErrPoolLock, errorx.Invalid)
	}
	// nolint:errcheck
	defer poolMutex.Unlock()

	forfeit := &models.Forfeit{
		ID:          uuid.NewString(),
		PoolID:      poolID,
		UserID:      userID,
		AmountCents: amountCents,
		Reason:      reason,
		CreatedAt:   time.Now(),
	}

	err := service.postgresDB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := datastore.FindPoolByIDForUpdate(ctx, tx, poolID); err != nil {
			return storeError(err, ErrPoolNotFound)
		}

		if _, err := datastore.InsertForfeit(ctx, tx, forfeit); err != nil {
			return err
		}

		return datastore.AddPoolBonusPot(ctx, tx, poolID, amountCents)
	})
	if err != nil {
		return nil, err
	}

	_ = service.servicePool.ClearPoolCache(ctx, poolID)
	return forfeit, nil
}
