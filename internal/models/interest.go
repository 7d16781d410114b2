package models

import (
	"time"

	"github.com/uptrace/bun"
)

// InterestEarning is appended once per accrual run per user. Only the user
// rate is persisted; the platform spread stays out of this record.
type InterestEarning struct {
	bun.BaseModel `bun:"table:interest_earning"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID        int64     `bun:"user_id" json:"user_id"`
	AmountCents   int64     `bun:"amount_cents" json:"amount_cents"`
	Rate          float64   `bun:"rate" json:"rate"`
	PeriodStart   time.Time `bun:"period_start" json:"period_start"`
	PeriodEnd     time.Time `bun:"period_end" json:"period_end"`
	CreatedAt     time.Time `bun:"created_at,default:current_timestamp" json:"created_at"`
}
