package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/urfave/cli/v2"

	"poolup/internal/datastore"
	"poolup/internal/models"
	"poolup/internal/services"
)

func init() {
	// for development
	//nolint:errcheck
	godotenv.Load("../../.env")

	// for production
	//nolint:errcheck
	godotenv.Load("./.env")
}

func main() {
	app := &cli.App{
		Name: "migrate",
		Commands: []*cli.Command{
			commandMigration(),
			commandBadgeSeed(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandMigration() *cli.Command {
	return &cli.Command{
		Name: "migrate",
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				log.Fatal(err)
			}

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
				if err := create(ctx, db); err != nil {
					log.Fatal(err)
				}
			}

			configs := []models.Config{
				{Key: services.CONFIG_SERVER_MODE, Value: services.SERVER_MODE_DEVELOPMENT},
				{Key: services.CONFIG_LEADERBOARD_LIMIT, Value: "20"},
				{Key: services.CONFIG_BOOST_BONUS_DIVISOR, Value: "10"},
				{Key: services.CONFIG_DEFAULT_FORFEIT, Value: "500"},
			}
			for _, config := range configs {
				if err := datastore.InsertConfig(ctx, db, config); err != nil {
					log.Fatal(err)
				}
			}

			log.Println("migration done")
			return nil
		},
	}
}

// the badge catalog is static reference data, seeded once and only extended
// by re-running this command with new entries
func commandBadgeSeed() *cli.Command {
	return &cli.Command{
		Name: "seed-badges",
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			db, err := getDb()
			if err != nil {
				log.Fatal(err)
			}

			badges := []*models.Badge{
				{Name: "First Contribution", Category: models.BadgeCategoryMilestone, PointsRequired: 10, Rarity: "common"},
				{Name: "On-time All-Star", Category: models.BadgeCategoryConsistency, PointsRequired: 500, Rarity: "uncommon"},
				{Name: "Streak Legend", Category: models.BadgeCategoryStreak, PointsRequired: 2000, Rarity: "rare"},
				{Name: "Level 10 Saver", Category: models.BadgeCategoryLevel, PointsRequired: 900, Rarity: "uncommon"},
				{Name: "Card Master", Category: models.BadgeCategorySpending, PointsRequired: 5000, Rarity: "rare"},
				{Name: "Pool Captain", Category: models.BadgeCategoryLeadership, PointsRequired: 3000, Rarity: "rare"},
				{Name: "Community Builder", Category: models.BadgeCategorySocial, PointsRequired: 1500, Rarity: "uncommon"},
				{Name: "Goal Crusher", Category: models.BadgeCategoryAchievement, PointsRequired: 4000, Rarity: "epic"},
				{Name: "Reward Hunter", Category: models.BadgeCategoryRewards, PointsRequired: 2500, Rarity: "rare"},
			}

			for _, badge := range badges {
				if err := datastore.InsertBadge(ctx, db, badge); err != nil {
					log.Fatal(err)
				}
			}

			log.Println("badge catalog seeded:", len(badges))
			return nil
		},
	}
}

func getDb() (*bun.DB, error) {
	godotenv.Load()
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(os.Getenv("DB_DSN")),
		pgdriver.WithPassword(os.Getenv("DB_PASSWORD")),
	))

	return bun.NewDB(sqldb, pgdialect.New()), nil
}
