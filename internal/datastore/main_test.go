package datastore

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// newTestDB opens an in-memory store with the full schema. Each test gets its
// own database, named after the test so connections from the pool share it.
func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	creates := []func(context.Context, *bun.DB) error{
		CreateTableUser,
		CreateTablePool,
		CreateTableMembership,
		CreateTableContribution,
		CreateTableBadge,
		CreateTableUserBadge,
		CreateTableLeaderboardEntry,
		CreateTablePeerBoost,
		CreateTableForfeit,
		CreateTableInterestEarning,
		CreateTableChallenge,
		CreateTableUnlockable,
		CreateTableCardTransaction,
		CreateTableConfig,
	}
	for _, create := range creates {
		require.NoError(t, create(ctx, db))
	}

	return db
}
