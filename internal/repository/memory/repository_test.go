package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omarshaarawi/bracketpool/internal/league"
	"github.com/omarshaarawi/bracketpool/internal/models"
)

func TestRepositoryRoundTrip(t *testing.T) {
	repo := NewRepository()
	assert.Nil(t, repo.GetLeague())
	assert.Nil(t, repo.GetLeaderboard())

	pool := league.New("pool", map[models.Round]int{models.FirstRound: 1})
	repo.SaveLeague(pool)
	assert.Same(t, pool, repo.GetLeague())

	standings := []models.Standing{{Rank: 1, Player: "Amy", Points: 5}}
	repo.SaveLeaderboard(standings)
	assert.Equal(t, standings, repo.GetLeaderboard())
}
