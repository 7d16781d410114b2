package models

import (
	"time"

	"github.com/uptrace/bun"
)

// LeaderboardEntry rows are fully replaced by each recompute of a pool.
type LeaderboardEntry struct {
	bun.BaseModel `bun:"table:leaderboard_entry"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	PoolID        int64     `bun:"pool_id" json:"pool_id"`
	UserID        int64     `bun:"user_id" json:"user_id"`
	Points        int       `bun:"points" json:"points"`
	Rank          int       `bun:"rank" json:"rank"`
	UpdatedAt     time.Time `bun:"updated_at" json:"updated_at"`
}

type LeaderboardItem struct {
	Username string `json:"username"`
	UserID   int64  `json:"user_id"`
	Points   int    `json:"points"`
	Rank     int    `json:"rank,omitempty"`
}

type LeaderboardResponse struct {
	Leaderboard []*LeaderboardItem `json:"leaderboard"`
	Me          *LeaderboardItem   `json:"me"`
}

// PoolStanding joins a membership with the owning user's totals when ranks
// are recomputed.
type PoolStanding struct {
	UserID                int64 `bun:"user_id"`
	TotalPoints           int   `bun:"total_points"`
	TotalContributedCents int64 `bun:"total_contributed_cents"`
	Rank                  int   `bun:"-"`
}
