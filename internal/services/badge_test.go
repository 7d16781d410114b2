package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"poolup/internal/models"
)

func TestQualifiesByCategory(t *testing.T) {
	cases := []struct {
		name  string
		badge models.Badge
		stats BadgeStats
		want  bool
	}{
		{"milestone after first contribution", models.Badge{Category: models.BadgeCategoryMilestone}, BadgeStats{ContributionCount: 1}, true},
		{"milestone before any contribution", models.Badge{Category: models.BadgeCategoryMilestone}, BadgeStats{}, false},
		{"consistency at five streak bonuses", models.Badge{Category: models.BadgeCategoryConsistency}, BadgeStats{StreakBonusCount: 5}, true},
		{"consistency at four", models.Badge{Category: models.BadgeCategoryConsistency}, BadgeStats{StreakBonusCount: 4}, false},
		{"streak at thirty days", models.Badge{Category: models.BadgeCategoryStreak}, BadgeStats{LongestStreak: 30}, true},
		{"streak at twenty nine", models.Badge{Category: models.BadgeCategoryStreak}, BadgeStats{LongestStreak: 29}, false},
		{"level ten", models.Badge{Category: models.BadgeCategoryLevel}, BadgeStats{Level: 10}, true},
		{"spending at fifty transactions", models.Badge{Category: models.BadgeCategorySpending}, BadgeStats{CardTransactionCount: 50}, true},
		{"leadership has no automatic predicate", models.Badge{Category: models.BadgeCategoryLeadership}, BadgeStats{ContributionCount: 100, LongestStreak: 100}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Qualifies(c.badge, c.stats))
		})
	}
}

func TestQualifiesPointsPath(t *testing.T) {
	badge := models.Badge{Category: models.BadgeCategoryStreak, PointsRequired: 200}

	// points alone can earn a badge whose behavioral predicate fails
	assert.True(t, Qualifies(badge, BadgeStats{TotalPoints: 200, LongestStreak: 0}))
	assert.False(t, Qualifies(badge, BadgeStats{TotalPoints: 199, LongestStreak: 0}))

	// either path alone is enough
	assert.True(t, Qualifies(badge, BadgeStats{TotalPoints: 0, LongestStreak: 30}))
}

func TestQualifiesZeroThreshold(t *testing.T) {
	// a zero threshold disables the points path, it is not a free badge
	badge := models.Badge{Category: models.BadgeCategoryLeadership, PointsRequired: 0}
	assert.False(t, Qualifies(badge, BadgeStats{TotalPoints: 100000}))
}
