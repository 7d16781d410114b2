package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:user"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Username      string    `bun:"username" json:"username"`
	FirstName     string    `bun:"first_name" json:"first_name"`
	LastName      string    `bun:"last_name" json:"last_name"`
	TotalPoints   int       `bun:"total_points" json:"total_points"`
	CurrentStreak int       `bun:"current_streak" json:"current_streak"`
	LongestStreak int       `bun:"longest_streak" json:"longest_streak"`
	BalanceCents  int64     `bun:"balance_cents" json:"balance_cents"`
	CreatedAt     time.Time `bun:"created_at,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at" json:"updated_at"`

	Badges []Badge `bun:"-" json:"badges,omitempty"`
	Level  int     `bun:"-" json:"level"`
}

// Level is floor(points/100)+1: every 100 points is one level.
func (user *User) ComputeLevel() int {
	return user.TotalPoints/100 + 1
}
