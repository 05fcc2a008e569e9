// Package league aggregates player brackets against the actual outcome and
// scores them into a leaderboard.
package league

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/omarshaarawi/bracketpool/internal/bracket"
	"github.com/omarshaarawi/bracketpool/internal/models"
)

// League holds every player's predicted bracket, the single actual-outcome
// bracket, and the per-round point values.
type League struct {
	name     string
	rules    map[models.Round]int
	players  []string
	brackets map[string]*bracket.Bracket
	actual   *bracket.Bracket
}

func New(name string, rules map[models.Round]int) *League {
	return &League{
		name:     name,
		rules:    rules,
		brackets: make(map[string]*bracket.Bracket),
	}
}

func (l *League) Name() string { return l.name }

// Players returns player names in the order they were added.
func (l *League) Players() []string {
	return append([]string(nil), l.players...)
}

// AddPlayer registers a player's predicted bracket. Names are unique, and
// once the actual bracket exists every new bracket must match its shape.
func (l *League) AddPlayer(name string, b *bracket.Bracket) error {
	if _, ok := l.brackets[name]; ok {
		return fmt.Errorf("%s: %w", name, models.ErrDuplicatePlayer)
	}
	if l.actual != nil && b.Shape() != l.actual.Shape() {
		return fmt.Errorf("player %s: %w", name, models.ErrShapeMismatch)
	}
	l.players = append(l.players, name)
	l.brackets[name] = b
	return nil
}

// SetActualBracket records the real tournament outcome. It may be set once;
// every bracket already in the league must match its shape.
func (l *League) SetActualBracket(b *bracket.Bracket) error {
	if l.actual != nil {
		return models.ErrAlreadySet
	}
	for _, name := range l.players {
		if l.brackets[name].Shape() != b.Shape() {
			return fmt.Errorf("player %s: %w", name, models.ErrShapeMismatch)
		}
	}
	l.actual = b
	return nil
}

func (l *League) ActualBracket() *bracket.Bracket { return l.actual }

// PlayerBracket returns the named player's bracket.
func (l *League) PlayerBracket(name string) (*bracket.Bracket, error) {
	b, ok := l.brackets[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, models.ErrUnknownPlayer)
	}
	return b, nil
}

// RoundScores computes the player's points per round: each matchup whose
// predicted winner matches the actual winner earns the round's point value.
// Matchups still undecided in the actual bracket score nothing either way,
// and rounds missing from the rules are worth zero.
func (l *League) RoundScores(name string) (map[models.Round]int, error) {
	b, ok := l.brackets[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, models.ErrUnknownPlayer)
	}

	scores := make(map[models.Round]int)
	if l.actual == nil {
		return scores, nil
	}

	predicted := b.Nodes()
	for i, actual := range l.actual.Nodes() {
		actualWinner, err := actual.Winner()
		if err != nil {
			continue
		}
		predictedWinner, err := predicted[i].Winner()
		if err != nil {
			continue
		}
		if predictedWinner.Name == actualWinner.Name {
			scores[actual.Round()] += l.rules[actual.Round()]
		}
	}
	return scores, nil
}

// ScorePlayer totals the player's points across all rounds.
func (l *League) ScorePlayer(name string) (int, error) {
	scores, err := l.RoundScores(name)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, pts := range scores {
		total += pts
	}
	return total, nil
}

// WrongPicks reports, for every matchup where the player's pick disagrees
// with a decided actual outcome, which slot fed the wrong team into the
// node. Used to colour the offending connector on rendered brackets.
func (l *League) WrongPicks(name string) (map[uuid.UUID]models.Side, error) {
	b, ok := l.brackets[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, models.ErrUnknownPlayer)
	}

	wrong := make(map[uuid.UUID]models.Side)
	if l.actual == nil {
		return wrong, nil
	}

	predicted := b.Nodes()
	for i, actual := range l.actual.Nodes() {
		actualWinner, err := actual.Winner()
		if err != nil {
			continue
		}
		node := predicted[i]
		predictedWinner, err := node.Winner()
		if err != nil || predictedWinner.Name == actualWinner.Name {
			continue
		}
		if top, ok := node.Top().Contender(); ok && top.Name == predictedWinner.Name {
			wrong[node.ID()] = models.SideTop
		} else {
			wrong[node.ID()] = models.SideBottom
		}
	}
	return wrong, nil
}

// Leaderboard ranks players by total score, descending. Ties keep insertion
// order: the player added first ranks higher.
func (l *League) Leaderboard() []models.Standing {
	standings := make([]models.Standing, 0, len(l.players))
	for _, name := range l.players {
		total, _ := l.ScorePlayer(name)
		standings = append(standings, models.Standing{Player: name, Points: total})
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Points > standings[j].Points
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}
