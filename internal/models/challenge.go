package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	ChallengeTargetParticipation = "participation"
	ChallengeTargetEarly         = "early_contribution"
	ChallengeTargetGoalPercent   = "goal_percent"
)

// Challenge templates are generated once when a pool is created and read-only
// afterwards.
type Challenge struct {
	bun.BaseModel    `bun:"table:challenge"`
	ID               int64     `bun:"id,pk,autoincrement" json:"id"`
	PoolID           int64     `bun:"pool_id" json:"pool_id"`
	Name             string    `bun:"name" json:"name"`
	Description      string    `bun:"description" json:"description"`
	TargetType       string    `bun:"target_type" json:"target_type"`
	TargetPercent    int       `bun:"target_percent" json:"target_percent"`
	RewardPoints     int       `bun:"reward_points" json:"reward_points"`
	RewardBonusCents int64     `bun:"reward_bonus_cents" json:"reward_bonus_cents"`
	StartsAt         time.Time `bun:"starts_at" json:"starts_at"`
	EndsAt           time.Time `bun:"ends_at" json:"ends_at"`
	CreatedAt        time.Time `bun:"created_at,default:current_timestamp" json:"created_at"`
}

// Unlockable is pool content gated behind a percentage of the savings goal.
type Unlockable struct {
	bun.BaseModel  `bun:"table:unlockable"`
	ID             int64     `bun:"id,pk,autoincrement" json:"id"`
	PoolID         int64     `bun:"pool_id" json:"pool_id"`
	Name           string    `bun:"name" json:"name"`
	Description    string    `bun:"description" json:"description"`
	UnlockPercent  int       `bun:"unlock_percent" json:"unlock_percent"`
	CreatedAt      time.Time `bun:"created_at,default:current_timestamp" json:"created_at"`

	Unlocked bool `bun:"-" json:"unlocked"`
}
