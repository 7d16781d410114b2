package interfaces

import (
	"context"

	"github.com/go-redis/redis_rate/v10"
)

type Limiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) error
}

// PaymentProcessor moves real money and handles identity checks. The engine
// only asks it to collect an amount; everything else is its business.
type PaymentProcessor interface {
	Collect(ctx context.Context, userID int64, amountCents int64, method string) error
}

// EventBroadcaster fans engine events out to connected clients. Delivery and
// ordering guarantees belong to the implementation.
type EventBroadcaster interface {
	Broadcast(ctx context.Context, event string, payload any) error
}
