package main

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/uptrace/bun"

	"poolup/internal/datastore"
	"poolup/internal/models"
	"poolup/internal/pkg/caching"
	"poolup/internal/services"
)

// AccrualJob applies one day of interest to every user holding an idle
// balance. Runs nightly; the schedule lives in the config table.
type AccrualJob struct {
	Db    *bun.DB
	Cache caching.Cache
}

func NewAccrualJob(db *bun.DB, cache caching.Cache) *AccrualJob {
	return &AccrualJob{Db: db, Cache: cache}
}

func (j *AccrualJob) Start(cronRunner *cron.Cron) {
	schedule := "5 0 * * *"
	timeline, err := datastore.GetConfigByKey(context.Background(), j.Db, services.CONFIG_CRONJOB_TIME_ACCRUAL)
	if err == nil && timeline != nil && timeline.Value != "" {
		schedule = timeline.Value
	}

	_, err = cronRunner.AddFunc(schedule, j.runScheduledTask)
	log.Println("Accrual cronjob start at:", time.Now().Format("2006-01-02 15:04:05"), "cron:", schedule, err)
}

func (j *AccrualJob) runScheduledTask() {
	ctx := context.Background()
	log.Println("Start interest accrual ...")

	userIDs, err := datastore.ListUserIDsWithBalance(ctx, j.Db)
	if err != nil {
		log.Println("accrual aborted:", err)
		return
	}

	var credited, spread int64
	for _, userID := range userIDs {
		interest, userSpread, err := j.accrueOne(ctx, userID)
		if err != nil {
			log.Println("accrual failed:", "user:", userID, "err:", err)
			continue
		}
		credited += interest
		spread += userSpread

		_ = j.Cache.Delete(ctx, services.DBKeyUser(userID))
	}

	// spread is reported for analytics and never credited anywhere
	log.Println("Interest accrual done:", "users:", len(userIDs), "credited:", credited, "spread:", spread)
}

func (j *AccrualJob) accrueOne(ctx context.Context, userID int64) (int64, int64, error) {
	var interest, spread int64
	err := j.Db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		user, err := datastore.FindUserByIDForUpdate(ctx, tx, userID)
		if err != nil {
			return err
		}

		interest = services.DailyInterest(user.BalanceCents)
		spread = services.PlatformSpread(user.BalanceCents)
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
			Rate:        services.USER_ANNUAL_RATE,
			PeriodStart: now.AddDate(0, 0, -1),
			PeriodEnd:   now,
		})
	})
	return interest, spread, err
}
