package memory

import (
	"sync"

	"github.com/omarshaarawi/bracketpool/internal/league"
	"github.com/omarshaarawi/bracketpool/internal/models"
)

type Repository struct {
	league      *league.League
	leaderboard []models.Standing
	mu          sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveLeague(l *league.League) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.league = l
}

func (r *Repository) GetLeague() *league.League {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.league
}

func (r *Repository) SaveLeaderboard(standings []models.Standing) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaderboard = standings
}

func (r *Repository) GetLeaderboard() []models.Standing {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.leaderboard
}
