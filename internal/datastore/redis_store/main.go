package redis_store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"poolup/internal/models"
)

func dbKeyPoolLeaderboard(poolID int64) string {
	return fmt.Sprintf("leaderboard:pool:%d", poolID)
}

func dbKeyEventChannel(name string) string {
	return fmt.Sprintf("events:%s", name)
}

// ReplacePoolLeaderboard rewrites the sorted-set mirror of a pool's standings
// after the transactional recompute commits.
func ReplacePoolLeaderboard(ctx context.Context, cmd redis.Cmdable, poolID int64, entries []*models.LeaderboardEntry) error {
	key := dbKeyPoolLeaderboard(poolID)

	err := cmd.Del(ctx, key).Err()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		return nil
	}

	zs := make([]redis.Z, 0, len(entries))
	for _, entry := range entries {
		zs = append(zs, redis.Z{
			Score:  float64(entry.Points),
			Member: entry.UserID,
		})
	}

	return cmd.ZAdd(ctx, key, zs...).Err()
}

func GetPoolLeaderboard(ctx context.Context, cmd redis.Cmdable, poolID int64, num int) ([]*models.LeaderboardItem, error) {
	items, err := cmd.ZRevRangeWithScores(ctx, dbKeyPoolLeaderboard(poolID), 0, int64(num-1)).Result()
	if err != nil {
		return nil, err
	}

	var results []*models.LeaderboardItem
	for i, item := range items {
		id, _ := strconv.ParseInt(item.Member.(string), 10, 64)
		results = append(results, &models.LeaderboardItem{
			UserID: id,
			Points: int(item.Score),
			Rank:   i + 1,
		})
	}

	return results, nil
}

func GetPoolRank(ctx context.Context, cmd redis.Cmdable, poolID, userID int64) (int64, error) {
	rank, err := cmd.ZRevRank(ctx, dbKeyPoolLeaderboard(poolID), strconv.FormatInt(userID, 10)).Result()
	if err != nil {
		return -1, err
	}
	return rank, nil
}

func GetPoolScore(ctx context.Context, cmd redis.Cmdable, poolID, userID int64) (float64, error) {
	score, err := cmd.ZScore(ctx, dbKeyPoolLeaderboard(poolID), strconv.FormatInt(userID, 10)).Result()
	if err != nil {
		return -1, err
	}
	return score, nil
}

func ClearPoolLeaderboard(ctx context.Context, cmd redis.Cmdable, poolID int64) error {
	return cmd.Del(ctx, dbKeyPoolLeaderboard(poolID)).Err()
}

// PublishEvent hands an event to connected clients over pub/sub. Delivery and
// ordering are the subscriber's concern.
func PublishEvent(ctx context.Context, cmd redis.Cmdable, name string, payload any) error {
	b, err := msgpack.Marshal(payload)
	if err != nil {
		return err
	}
	return cmd.Publish(ctx, dbKeyEventChannel(name), b).Err()
}

// Broadcaster satisfies interfaces.EventBroadcaster over redis pub/sub.
type Broadcaster struct {
	client redis.UniversalClient
}

func NewBroadcaster(client redis.UniversalClient) *Broadcaster {
	return &Broadcaster{client}
}

func (b *Broadcaster) Broadcast(ctx context.Context, event string, payload any) error {
	return PublishEvent(ctx, b.client, event, payload)
}
