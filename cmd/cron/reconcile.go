package main

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/uptrace/bun"

	"poolup/internal/datastore"
)

// ReconcileJob cross-checks every pool's saved total against the sum of its
// contribution and boost rows. Drift means a pipeline partially applied and needs a
// human look; the job only reports, it never repairs.
type ReconcileJob struct {
	Db *bun.DB
}

func NewReconcileJob(db *bun.DB) *ReconcileJob {
	return &ReconcileJob{Db: db}
}

func (j *ReconcileJob) Start(cronRunner *cron.Cron) {
	_, err := cronRunner.AddFunc("35 0 * * *", j.runScheduledTask)
	log.Println("Reconcile cronjob start at:", time.Now().Format("2006-01-02 15:04:05"), err)
}

func (j *ReconcileJob) runScheduledTask() {
	ctx := context.Background()
	log.Println("Start ledger reconciliation ...")

	poolIDs, err := datastore.ListPoolIDs(ctx, j.Db)
	if err != nil {
		log.Println("reconciliation aborted:", err)
		return
	}

	drifted := 0
	for _, poolID := range poolIDs {
		pool, err := datastore.FindPoolByID(ctx, j.Db, poolID)
		if err != nil {
			log.Println("reconciliation skip:", "pool:", poolID, "err:", err)
			continue
		}

		contributed, err := datastore.SumContributionsByPool(ctx, j.Db, poolID)
		if err != nil {
			log.Println("reconciliation skip:", "pool:", poolID, "err:", err)
			continue
		}

		boosted, err := datastore.SumPeerBoostsByPool(ctx, j.Db, poolID)
		if err != nil {
			log.Println("reconciliation skip:", "pool:", poolID, "err:", err)
			continue
		}

		ledger := contributed + boosted
		if pool.SavedCents != ledger {
			drifted++
			log.Println("LEDGER DRIFT:", "pool:", poolID, "saved:", pool.SavedCents, "ledger:", ledger)
		}
	}

	log.Println("Ledger reconciliation done:", "pools:", len(poolIDs), "drifted:", drifted)
}
