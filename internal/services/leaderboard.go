package services

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/uptrace/bun"

	"poolup/internal/datastore"
	"poolup/internal/datastore/redis_store"
	"poolup/internal/models"
	"poolup/internal/pkg/caching"
)

// RankStandings assigns 1-based ranks to standings that are already sorted by
// points descending with contributed cents breaking ties. Ranks come out as a
// contiguous 1..N.
func RankStandings(standings []*models.PoolStanding) {
	for i, standing := range standings {
		standing.Rank = i + 1
	}
}

type ServiceLeaderboard struct {
	container     *do.Injector
	redisDB       redis.UniversalClient
	postgresDB    *bun.DB
	cache         caching.Cache
	readonlyCache caching.ReadOnlyCache

	serviceConfig *ServiceConfig
}

func NewServiceLeaderboard(container *do.Injector) (*ServiceLeaderboard, error) {
	redisDB, err := do.InvokeNamed[redis.UniversalClient](container, "redis-db")
	if err != nil {
		return nil, err
	}

	postgresDB, err := do.Invoke[*bun.DB](container)
	if err != nil {
		return nil, err
	}

	cache, err := do.Invoke[caching.Cache](container)
	if err != nil {
		return nil, err
	}

	readonlyCache, err := do.Invoke[caching.ReadOnlyCache](container)
	if err != nil {
		return nil, err
	}

	serviceConfig, err := do.Invoke[*ServiceConfig](container)
	if err != nil {
		return nil, err
	}

	return &ServiceLeaderboard{container, redisDB, postgresDB, cache, readonlyCache, serviceConfig}, nil
}

// Recompute replaces a pool's leaderboard rows from the current membership
// totals. Runs on the caller's handle so contribution and boost pipelines
// keep it inside their transaction. Idempotent for unchanged inputs.
func (service *ServiceLeaderboard) Recompute(ctx context.Context, db bun.IDB, poolID int64) ([]*models.PoolStanding, error) {
	standings, err := datastore.ListPoolStandings(ctx, db, poolID)
	if err != nil {
		return nil, err
	}

	RankStandings(standings)

	if err := datastore.ReplacePoolEntries(ctx, db, poolID, standings); err != nil {
		return nil, err
	}

	return standings, nil
}

// Mirror pushes committed standings into the redis sorted set and drops the
// cached read view. Called after the owning transaction commits.
func (service *ServiceLeaderboard) Mirror(ctx context.Context, poolID int64, standings []*models.PoolStanding) {
	entries := make([]*models.LeaderboardEntry, 0, len(standings))
	for _, standing := range standings {
		entries = append(entries, &models.LeaderboardEntry{
			PoolID: poolID,
			UserID: standing.UserID,
			Points: standing.TotalPoints,
			Rank:   standing.Rank,
		})
	}

	if err := redis_store.ReplacePoolLeaderboard(ctx, service.redisDB, poolID, entries); err != nil {
		log.Println("leaderboard mirror failed:", "pool:", poolID, "err:", err)
	}

	limit, _ := service.serviceConfig.GetIntConfig(ctx, CONFIG_LEADERBOARD_LIMIT, LEADERBOARD_DEFAULT_LIMIT)
	_ = service.cache.Delete(ctx, DBKeyPoolLeaderboard(poolID, limit))
}

// GetPoolLeaderboard reads standings for display, redis mirror first with a
// postgres fallback, and includes the caller's own row.
func (service *ServiceLeaderboard) GetPoolLeaderboard(ctx context.Context, poolID int64, user *models.User) (*models.LeaderboardResponse, error) {
	limit, _ := service.serviceConfig.GetIntConfig(ctx, CONFIG_LEADERBOARD_LIMIT, LEADERBOARD_DEFAULT_LIMIT)

	callback := func() (*models.LeaderboardResponse, error) {
		items, err := redis_store.GetPoolLeaderboard(ctx, service.redisDB, poolID, limit)
		if err != nil || len(items) == 0 {
			items, err = service.leaderboardFromStore(ctx, poolID, limit)
			if err != nil {
				return nil, err
			}
		}

		for _, item := range items {
			u, _ := datastore.FindUserByID(ctx, service.postgresDB, item.UserID)
			if u != nil {
				item.Username = u.Username
			}
		}

		response := &models.LeaderboardResponse{Leaderboard: items}
		if user != nil {
			response.Me = service.meItem(ctx, poolID, user)
		}

		return response, nil
	}

	return caching.UseCacheWithRO(ctx, service.readonlyCache, service.cache, DBKeyPoolLeaderboard(poolID, limit), CACHE_TTL_1_MIN, callback)
}

func (service *ServiceLeaderboard) leaderboardFromStore(ctx context.Context, poolID int64, limit int) ([]*models.LeaderboardItem, error) {
	entries, err := datastore.ListEntriesByPool(ctx, service.postgresDB, poolID, limit)
	if err != nil {
		return nil, err
	}

	var items []*models.LeaderboardItem
	for _, entry := range entries {
		items = append(items, &models.LeaderboardItem{
			UserID: entry.UserID,
			Points: entry.Points,
			Rank:   entry.Rank,
		})
	}
	return items, nil
}

func (service *ServiceLeaderboard) meItem(ctx context.Context, poolID int64, user *models.User) *models.LeaderboardItem {
	me := &models.LeaderboardItem{
		Username: user.Username,
		UserID:   user.ID,
	}

	rank, err := redis_store.GetPoolRank(ctx, service.redisDB, poolID, user.ID)
	if err == nil {
		score, _ := redis_store.GetPoolScore(ctx, service.redisDB, poolID, user.ID)
		me.Rank = int(rank + 1)
		me.Points = int(score)
		return me
	}

	entry, err := datastore.FindEntry(ctx, service.postgresDB, poolID, user.ID)
	if err == nil {
		me.Rank = entry.Rank
		me.Points = entry.Points
	}
	return me
}
