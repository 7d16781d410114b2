package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/cache/v9"
	"github.com/samber/do"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"poolup/internal/datastore"
	"poolup/internal/pkg/caching"
)

// newTestDB opens an in-memory store with the full schema, one database per
// test so connections from the pool share it.
func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	creates := []func(context.Context, *bun.DB) error{
		datastore.CreateTableUser,
		datastore.CreateTablePool,
		datastore.CreateTableMembership,
		datastore.CreateTableContribution,
		datastore.CreateTableBadge,
		datastore.CreateTableUserBadge,
		datastore.CreateTableLeaderboardEntry,
		datastore.CreateTablePeerBoost,
		datastore.CreateTableForfeit,
		datastore.CreateTableInterestEarning,
		datastore.CreateTableChallenge,
		datastore.CreateTableUnlockable,
		datastore.CreateTableCardTransaction,
		datastore.CreateTableConfig,
	}
	for _, create := range creates {
		require.NoError(t, create(ctx, db))
	}

	return db
}

// nopCache misses every read and swallows every write, so service paths under
// test always hit the store.
type nopCache struct{}

func (nopCache) Get(ctx context.Context, key string, target any) error {
	return cache.ErrCacheMiss
}

func (nopCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}

func (nopCache) Delete(ctx context.Context, key string) error {
	return nil
}

func newTestInjector(t *testing.T, db *bun.DB) *do.Injector {
	t.Helper()

	injector := do.New()
	t.Cleanup(func() { _ = injector.Shutdown() })

	do.ProvideValue(injector, db)
	do.ProvideValue[caching.Cache](injector, nopCache{})
	do.ProvideValue[caching.ReadOnlyCache](injector, nopCache{})
	return injector
}
