package models

import (
	"time"

	"github.com/uptrace/bun"
)

// PeerBoost records one member contributing on behalf of another. The booster
// earns bonus points; the amount counts toward the target's membership.
type PeerBoost struct {
	bun.BaseModel `bun:"table:peer_boost"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	PoolID        int64     `bun:"pool_id" json:"pool_id"`
	BoosterUserID int64     `bun:"booster_user_id" json:"booster_user_id"`
	TargetUserID  int64     `bun:"target_user_id" json:"target_user_id"`
	AmountCents   int64     `bun:"amount_cents" json:"amount_cents"`
	BonusPoints   int       `bun:"bonus_points" json:"bonus_points"`
	CreatedAt     time.Time `bun:"created_at,default:current_timestamp" json:"created_at"`
}

// Forfeit grows the pool's bonus pot. It never debits a ledgered balance.
type Forfeit struct {
	bun.BaseModel `bun:"table:forfeit"`
	ID            string    `bun:"id,pk" json:"id"`
	PoolID        int64     `bun:"pool_id" json:"pool_id"`
	UserID        int64     `bun:"user_id" json:"user_id"`
	AmountCents   int64     `bun:"amount_cents" json:"amount_cents"`
	Reason        string    `bun:"reason" json:"reason"`
	CreatedAt     time.Time `bun:"created_at,default:current_timestamp" json:"created_at"`
}
