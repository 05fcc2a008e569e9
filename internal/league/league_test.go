package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/bracketpool/internal/bracket"
	"github.com/omarshaarawi/bracketpool/internal/models"
)

func fourTeams(names ...string) []models.Team {
	if len(names) == 0 {
		names = []string{"A", "B", "C", "D"}
	}
	teams := make([]models.Team, len(names))
	for i, name := range names {
		teams[i] = models.Team{Name: name, Seed: i + 1, Conference: "East"}
	}
	return teams
}

// resolvedBracket builds a four-team bracket and decides it: winners of the
// two semifinals, then the final.
func resolvedBracket(t *testing.T, label, semi1, semi2, final string) *bracket.Bracket {
	t.Helper()
	b, err := bracket.New(fourTeams(), label)
	require.NoError(t, err)
	require.NoError(t, b.SetMatchupWinner(models.FirstRound, 0, models.Team{Name: semi1}))
	require.NoError(t, b.SetMatchupWinner(models.FirstRound, 1, models.Team{Name: semi2}))
	require.NoError(t, b.SetMatchupWinner(models.SecondRound, 0, models.Team{Name: final}))
	return b
}

func defaultRules() map[models.Round]int {
	return map[models.Round]int{models.FirstRound: 1, models.SecondRound: 3}
}

func TestAddPlayerDuplicate(t *testing.T) {
	l := New("pool", defaultRules())
	b, err := bracket.New(fourTeams(), "amy")
	require.NoError(t, err)

	require.NoError(t, l.AddPlayer("Amy", b))
	err = l.AddPlayer("Amy", b.Clone("again"))
	assert.ErrorIs(t, err, models.ErrDuplicatePlayer)
	assert.Equal(t, []string{"Amy"}, l.Players())
}

func TestAddPlayerShapeMismatch(t *testing.T) {
	l := New("pool", defaultRules())
	require.NoError(t, l.SetActualBracket(resolvedBracket(t, "actual", "A", "C", "A")))

	other, err := bracket.New(fourTeams("A", "B", "C", "E"), "ben")
	require.NoError(t, err)
	err = l.AddPlayer("Ben", other)
	assert.ErrorIs(t, err, models.ErrShapeMismatch)
	assert.Empty(t, l.Players())
}

func TestSetActualBracketAlreadySet(t *testing.T) {
	l := New("pool", defaultRules())
	require.NoError(t, l.SetActualBracket(resolvedBracket(t, "actual", "A", "C", "A")))

	err := l.SetActualBracket(resolvedBracket(t, "again", "B", "D", "B"))
	assert.ErrorIs(t, err, models.ErrAlreadySet)
}

func TestSetActualBracketChecksExistingPlayers(t *testing.T) {
	l := New("pool", defaultRules())
	other, err := bracket.New(fourTeams("A", "B", "C", "E"), "ben")
	require.NoError(t, err)
	require.NoError(t, l.AddPlayer("Ben", other))

	err = l.SetActualBracket(resolvedBracket(t, "actual", "A", "C", "A"))
	assert.ErrorIs(t, err, models.ErrShapeMismatch)
	assert.Nil(t, l.ActualBracket())
}

func TestScorePlayer(t *testing.T) {
	tests := []struct {
		name                string
		semi1, semi2, final string
		want                int
	}{
		{name: "all correct", semi1: "A", semi2: "C", final: "A", want: 5},
		{name: "semis right final wrong", semi1: "A", semi2: "C", final: "C", want: 2},
		{name: "one semi right", semi1: "A", semi2: "D", final: "A", want: 4},
		{name: "all wrong", semi1: "B", semi2: "D", final: "B", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New("pool", defaultRules())
			require.NoError(t, l.SetActualBracket(resolvedBracket(t, "actual", "A", "C", "A")))
			require.NoError(t, l.AddPlayer("Amy", resolvedBracket(t, "Amy", tt.semi1, tt.semi2, tt.final)))

			got, err := l.ScorePlayer("Amy")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Scoring is deterministic and side-effect free.
			again, err := l.ScorePlayer("Amy")
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestScoreSkipsUnresolvedActualNodes(t *testing.T) {
	l := New("pool", defaultRules())

	actual, err := bracket.New(fourTeams(), "actual")
	require.NoError(t, err)
	require.NoError(t, actual.SetMatchupWinner(models.FirstRound, 0, models.Team{Name: "A"}))
	require.NoError(t, actual.SetMatchupWinner(models.FirstRound, 1, models.Team{Name: "C"}))
	require.NoError(t, l.SetActualBracket(actual))

	require.NoError(t, l.AddPlayer("Amy", resolvedBracket(t, "Amy", "A", "C", "A")))

	got, err := l.ScorePlayer("Amy")
	require.NoError(t, err)
	assert.Equal(t, 2, got, "the undecided final neither rewards nor penalizes")
}

func TestScoreMissingRoundRuleWorthZero(t *testing.T) {
	l := New("pool", map[models.Round]int{models.SecondRound: 3})
	require.NoError(t, l.SetActualBracket(resolvedBracket(t, "actual", "A", "C", "A")))
	require.NoError(t, l.AddPlayer("Amy", resolvedBracket(t, "Amy", "A", "C", "A")))

	got, err := l.ScorePlayer("Amy")
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestRoundScores(t *testing.T) {
	l := New("pool", defaultRules())
	require.NoError(t, l.SetActualBracket(resolvedBracket(t, "actual", "A", "C", "A")))
	require.NoError(t, l.AddPlayer("Amy", resolvedBracket(t, "Amy", "A", "C", "C")))

	scores, err := l.RoundScores("Amy")
	require.NoError(t, err)
	assert.Equal(t, map[models.Round]int{models.FirstRound: 2}, scores)
}

func TestScoreUnknownPlayer(t *testing.T) {
	l := New("pool", defaultRules())
	_, err := l.ScorePlayer("Nobody")
	assert.ErrorIs(t, err, models.ErrUnknownPlayer)
	_, err = l.PlayerBracket("Nobody")
	assert.ErrorIs(t, err, models.ErrUnknownPlayer)
}

func TestLeaderboardOrderAndTieBreak(t *testing.T) {
	l := New("pool", defaultRules())
	require.NoError(t, l.SetActualBracket(resolvedBracket(t, "actual", "A", "C", "A")))

	// Amy and Cal tie on 2 points; Amy was added first and ranks higher.
	require.NoError(t, l.AddPlayer("Amy", resolvedBracket(t, "Amy", "A", "C", "C")))
	require.NoError(t, l.AddPlayer("Ben", resolvedBracket(t, "Ben", "A", "C", "A")))
	require.NoError(t, l.AddPlayer("Cal", resolvedBracket(t, "Cal", "A", "C", "C")))

	standings := l.Leaderboard()
	require.Len(t, standings, 3)
	assert.Equal(t, models.Standing{Rank: 1, Player: "Ben", Points: 5}, standings[0])
	assert.Equal(t, models.Standing{Rank: 2, Player: "Amy", Points: 2}, standings[1])
	assert.Equal(t, models.Standing{Rank: 3, Player: "Cal", Points: 2}, standings[2])
}

func TestWrongPicks(t *testing.T) {
	l := New("pool", defaultRules())
	require.NoError(t, l.SetActualBracket(resolvedBracket(t, "actual", "A", "C", "A")))

	// B over A in the first semifinal, then C winning it all: the first
	// semifinal's wrong pick came in from the bottom slot (B), the final's
	// from the bottom slot as well (C's side of the draw).
	predicted := resolvedBracket(t, "Amy", "B", "C", "C")
	require.NoError(t, l.AddPlayer("Amy", predicted))

	wrong, err := l.WrongPicks("Amy")
	require.NoError(t, err)
	require.Len(t, wrong, 2)

	nodes := predicted.Nodes()
	assert.Equal(t, models.SideBottom, wrong[nodes[0].ID()])
	assert.NotContains(t, wrong, nodes[1].ID())
	assert.Equal(t, models.SideBottom, wrong[nodes[2].ID()])
}
