package services

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/samber/do"
	"github.com/uptrace/bun"

	"poolup/internal/datastore"
	"poolup/internal/models"
	"poolup/internal/pkg/caching"
)

// DailyInterest is the user's share for one day on an idle balance.
func DailyInterest(balanceCents int64) int64 {
	if balanceCents <= 0 {
		return 0
	}
	return int64(math.Floor(float64(balanceCents) * USER_ANNUAL_RATE / 365))
}

// PlatformSpread is what the platform keeps for one day: the investment rate
// minus the user rate. Analytics only; it must never touch a user balance.
func PlatformSpread(balanceCents int64) int64 {
	if balanceCents <= 0 {
		return 0
	}
	gross := int64(math.Floor(float64(balanceCents) * INVESTMENT_ANNUAL_RATE / 365))
	return gross - DailyInterest(balanceCents)
}

type ServiceInterest struct {
	container  *do.Injector
	rs         *redsync.Redsync
	postgresDB *bun.DB
	cache      caching.Cache
}

func NewServiceInterest(container *do.Injector) (*ServiceInterest, error) {
	rs, err := do.Invoke[*redsync.Redsync](container)
	if err != nil {
		return nil, err
	}

	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	cache, err := do.Invoke[caching.Cache](container)
	if err != nil {
		return nil, err
	}

	return &ServiceInterest{container, rs, postgresDB, cache}, nil
}

// Accrue applies one day of interest to the user's idle balance and appends
// the earning record covering the prior day. Returns the credited amount.
func (service *ServiceInterest) Accrue(ctx context.Context, userID int64) (int64, error) {
	mutex := service.rs.NewMutex(LockKeyUserInterest(userID))
	if err := mutex.TryLock(); err != nil {
		return 0, errorx.Wrap(ErrUserLock, errorx.Invalid)
	}

	// nolint:errcheck
	defer mutex.Unlock()

	var interest, spread int64
	err := service.postgresDB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		user, err := datastore.FindUserByIDForUpdate(ctx, tx, userID)
		if err != nil {
			return storeError(err, ErrUserNotFound)
		}

		interest = DailyInterest(user.BalanceCents)
		spread = PlatformSpread(user.BalanceCents)
		if interest <= 0 {
			return nil
		}

		if err := datastore.AddUserBalance(ctx, tx, userID, interest); err != nil {
			return err
		}

		now := time.Now().UTC()
		return datastore.InsertInterestEarning(ctx, tx, &models.InterestEarning{
			UserID:      userID,
			AmountCents: interest,
			Rate:        USER_ANNUAL_RATE,
			PeriodStart: now.AddDate(0, 0, -1),
			PeriodEnd:   now,
		})
	})
	if err != nil {
		return 0, err
	}

	if interest > 0 {
		// spread stays on the log channel only
		log.Println("interest accrued:", "user:", userID, "interest:", interest, "spread:", spread)
		_ = service.cache.Delete(ctx, DBKeyUser(userID))
	}

	return interest, nil
}
