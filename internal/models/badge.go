package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	BadgeCategoryMilestone   = "milestone"
	BadgeCategoryConsistency = "consistency"
	BadgeCategoryStreak      = "streak"
	BadgeCategoryLeadership  = "leadership"
	BadgeCategorySocial      = "social"
	BadgeCategoryAchievement = "achievement"
	BadgeCategoryLevel       = "level"
	BadgeCategorySpending    = "spending"
	BadgeCategoryRewards     = "rewards"
)

// Badge is static catalog data seeded once by cmd/migrate.
type Badge struct {
	bun.BaseModel  `bun:"table:badge"`
	ID             int64  `bun:"id,pk,autoincrement" json:"id"`
	Name           string `bun:"name" json:"name"`
	Category       string `bun:"category" json:"category"`
	PointsRequired int    `bun:"points_required" json:"points_required"`
	Rarity         string `bun:"rarity" json:"rarity"`
}

type UserBadge struct {
	bun.BaseModel `bun:"table:user_badge"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID        int64     `bun:"user_id" json:"user_id"`
	BadgeID       int64     `bun:"badge_id" json:"badge_id"`
	PoolID        *int64    `bun:"pool_id" json:"pool_id"`
	AwardedAt     time.Time `bun:"awarded_at,default:current_timestamp" json:"awarded_at"`
}
