package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"poolup/internal/models"
)

func TestRankStandings(t *testing.T) {
	standings := []*models.PoolStanding{
		{UserID: 3, TotalPoints: 90},
		{UserID: 1, TotalPoints: 50},
		{UserID: 2, TotalPoints: 50},
		{UserID: 4, TotalPoints: 10},
	}

	RankStandings(standings)

	// ranks are a contiguous 1..N following the input order, ties included
	for i, standing := range standings {
		assert.Equal(t, i+1, standing.Rank)
	}
}

func TestRankStandingsEmpty(t *testing.T) {
	var standings []*models.PoolStanding
	RankStandings(standings)
	assert.Empty(t, standings)
}
