package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	PaymentMethodManual    = "manual"
	PaymentMethodDebitCard = "debit_card"
)

// Contribution is an append-only fact record. Rows are never updated after
// the pipeline that created them commits.
type Contribution struct {
	bun.BaseModel `bun:"table:contribution"`
	ID            string    `bun:"id,pk" json:"id"`
	PoolID        int64     `bun:"pool_id" json:"pool_id"`
	UserID        int64     `bun:"user_id" json:"user_id"`
	AmountCents   int64     `bun:"amount_cents" json:"amount_cents"`
	PointsEarned  int       `bun:"points_earned" json:"points_earned"`
	StreakBonus   bool      `bun:"streak_bonus" json:"streak_bonus"`
	EarlyBird     bool      `bun:"early_bird" json:"early_bird"`
	PaymentMethod string    `bun:"payment_method" json:"payment_method"`
	CreatedAt     time.Time `bun:"created_at,default:current_timestamp" json:"created_at"`
}
