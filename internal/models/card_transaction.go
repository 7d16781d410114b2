package models

import (
	"time"

	"github.com/uptrace/bun"
)

// CardTransaction rows are written by the card-issuing collaborator. The
// engine only counts them for the spending badge predicate.
type CardTransaction struct {
	bun.BaseModel `bun:"table:card_transaction"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID        int64     `bun:"user_id" json:"user_id"`
	AmountCents   int64     `bun:"amount_cents" json:"amount_cents"`
	Merchant      string    `bun:"merchant" json:"merchant"`
	CreatedAt     time.Time `bun:"created_at,default:current_timestamp" json:"created_at"`
}
