package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/samber/do"
	"github.com/uptrace/bun"

	"poolup/internal/datastore"
	"poolup/internal/models"
	"poolup/internal/pkg/caching"
)

type ServicePool struct {
	container     *do.Injector
	postgresDB    *bun.DB
	cache         caching.Cache
	readonlyCache caching.ReadOnlyCache
}

func NewServicePool(container *do.Injector) (*ServicePool, error) {
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

	return &ServicePool{container, postgresDB, cache, readonlyCache}, nil
}

// CreatePool persists the pool, seeds its challenges and unlockables, and
// enrolls the creator, all in one transaction.
func (service *ServicePool) CreatePool(ctx context.Context, pool *models.Pool, creatorUserID int64) (*models.Pool, error) {
	if pool.GoalCents <= 0 {
		return nil, errorx.Wrap(ErrInvalidAmount, errorx.Invalid)
	}
	if pool.PoolType != models.PoolTypeGroup && pool.PoolType != models.PoolTypeSolo {
		pool.PoolType = models.PoolTypeGroup
	}

	now := time.Now()
	pool.CreatedAt = now
	pool.UpdatedAt = now

	err := service.postgresDB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := datastore.CreatePool(ctx, tx, pool); err != nil {
			return err
		}

		if _, err := datastore.CreateMembership(ctx, tx, &models.Membership{
			PoolID:    pool.ID,
			UserID:    creatorUserID,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return err
		}

		return SeedPoolContent(ctx, tx, pool, now)
	})
	if err != nil {
		return nil, err
	}

	return pool, nil
}

func (service *ServicePool) JoinPool(ctx context.Context, poolID, userID int64) (*models.Membership, error) {
	if _, err := datastore.FindPoolByID(ctx, service.postgresDB, poolID); err != nil {
		return nil, storeError(err, ErrPoolNotFound)
	}

	existing, err := datastore.FindMembership(ctx, service.postgresDB, poolID, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	now := time.Now()
	return datastore.CreateMembership(ctx, service.postgresDB, &models.Membership{
		PoolID:    poolID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// FindPool loads a pool with its challenges and unlockables, marking which
// unlockables the saved total has opened.
func (service *ServicePool) FindPool(ctx context.Context, poolID int64) (*models.Pool, error) {
	callback := func() (*models.Pool, error) {
		pool, err := datastore.FindPoolByID(ctx, service.postgresDB, poolID)
		if err != nil {
			return nil, storeError(err, ErrPoolNotFound)
		}

		challenges, err := datastore.ListChallengesByPool(ctx, service.postgresDB, poolID)
		if err != nil {
			return nil, err
		}
		pool.Challenges = challenges

		unlockables, err := datastore.ListUnlockablesByPool(ctx, service.postgresDB, poolID)
		if err != nil {
			return nil, err
		}
		progress := pool.Progress()
		for i := range unlockables {
			unlockables[i].Unlocked = unlockables[i].UnlockPercent <= progress
		}
		pool.Unlockables = unlockables

		return pool, nil
	}

	return caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyPool(poolID), CACHE_TTL_1_MIN, callback)
}

func (service *ServicePool) ClearPoolCache(ctx context.Context, poolID int64) error {
	return service.cache.Delete(ctx, DBKeyPool(poolID))
}

// Reconcile verifies the saved total against the contribution ledger. It
// reports the drift so the cron job can log it; a healthy pool reports 0.
func (service *ServicePool) Reconcile(ctx context.Context, poolID int64) (int64, error) {
	pool, err := datastore.FindPoolByID(ctx, service.postgresDB, poolID)
	if err != nil {
		return 0, storeError(err, ErrPoolNotFound)
	}

	contributed, err := datastore.SumContributionsByPool(ctx, service.postgresDB, poolID)
	if err != nil {
		return 0, err
	}

	boosted, err := datastore.SumPeerBoostsByPool(ctx, service.postgresDB, poolID)
	if err != nil {
		return 0, err
	}

	return pool.SavedCents - contributed - boosted, nil
}
