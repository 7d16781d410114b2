package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	PoolTypeGroup = "group"
	PoolTypeSolo  = "solo"
)

type Pool struct {
	bun.BaseModel `bun:"table:pool"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Name          string    `bun:"name" json:"name"`
	Destination   string    `bun:"destination" json:"destination"`
	PoolType      string    `bun:"pool_type" json:"pool_type"`
	GoalCents     int64     `bun:"goal_cents" json:"goal_cents"`
	SavedCents    int64     `bun:"saved_cents" json:"saved_cents"`
	BonusPotCents int64     `bun:"bonus_pot_cents" json:"bonus_pot_cents"`
	CreatedAt     time.Time `bun:"created_at,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at" json:"updated_at"`

	Challenges  []Challenge  `bun:"-" json:"challenges,omitempty"`
	Unlockables []Unlockable `bun:"-" json:"unlockables,omitempty"`
}

// Progress returns the saved share of the goal in percent, capped at 100.
func (pool *Pool) Progress() int {
	if pool.GoalCents <= 0 {
		return 0
	}
	p := int(pool.SavedCents * 100 / pool.GoalCents)
	if p > 100 {
		p = 100
	}
	return p
}

type Membership struct {
	bun.BaseModel          `bun:"table:membership"`
	ID                     int64      `bun:"id,pk,autoincrement" json:"id"`
	PoolID                 int64      `bun:"pool_id" json:"pool_id"`
	UserID                 int64      `bun:"user_id" json:"user_id"`
	ContributionStreak     int        `bun:"contribution_streak" json:"contribution_streak"`
	LastContributionDate   *time.Time `bun:"last_contribution_date" json:"last_contribution_date"`
	TotalContributedCents  int64      `bun:"total_contributed_cents" json:"total_contributed_cents"`
	CreatedAt              time.Time  `bun:"created_at,default:current_timestamp" json:"created_at"`
	UpdatedAt              time.Time  `bun:"updated_at" json:"updated_at"`
}
