package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/omarshaarawi/bracketpool/internal/bracket"
	"github.com/omarshaarawi/bracketpool/internal/league"
	"github.com/omarshaarawi/bracketpool/internal/prompt"
	"github.com/omarshaarawi/bracketpool/internal/render"
	"github.com/omarshaarawi/bracketpool/internal/repository/memory"
)

type PoolService struct {
	repo     *memory.Repository
	prompter *prompt.Prompter
	renderer *render.Renderer
}

func NewPoolService(repo *memory.Repository, prompter *prompt.Prompter, renderer *render.Renderer) *PoolService {
	return &PoolService{repo: repo, prompter: prompter, renderer: renderer}
}

// Run drives one full pool session: build the field, collect every player's
// picks and the actual results, score, render, and print the standings.
func (s *PoolService) Run() error {
	leagueName := s.prompter.LeagueName()

	validNames, err := s.renderer.AvailableTeams()
	if err != nil || len(validNames) == 0 {
		slog.Warn("No team logos found, validating against the default field", "error", err)
		for _, t := range prompt.DefaultPlayoffField() {
			validNames = append(validNames, t.Name)
		}
	}

	teams, err := s.prompter.TeamList(validNames)
	if err != nil {
		return fmt.Errorf("error building team list: %w", err)
	}

	empty, err := bracket.New(teams, "empty")
	if err != nil {
		return fmt.Errorf("error building bracket: %w", err)
	}

	if _, err := s.renderer.Render(empty, "Empty_Bracket.png"); err != nil {
		return err
	}
	s.prompter.Printf("\nGenerated the initial playoff bracket.\n\n")

	names := s.prompter.PlayerNames()
	playerBrackets := make(map[string]*bracket.Bracket, len(names))
	for _, name := range names {
		pb := empty.Clone(name)
		s.prompter.Printf("---- Picks for %s ----\n", name)
		if err := s.prompter.Picks(pb); err != nil {
			return fmt.Errorf("error collecting picks for %s: %w", name, err)
		}
		playerBrackets[name] = pb
	}

	s.prompter.Printf("---- Enter the results of the playoffs ----\n")
	actual := empty.Clone("actual")
	if err := s.prompter.Picks(actual); err != nil {
		return fmt.Errorf("error collecting playoff results: %w", err)
	}

	rules := s.prompter.Points(empty.NumRounds())

	pool := league.New(leagueName, rules)
	if err := pool.SetActualBracket(actual); err != nil {
		return fmt.Errorf("error setting playoff results: %w", err)
	}
	for _, name := range names {
		if err := pool.AddPlayer(name, playerBrackets[name]); err != nil {
			return fmt.Errorf("error adding player: %w", err)
		}
	}

	s.repo.SaveLeague(pool)
	s.repo.SaveLeaderboard(pool.Leaderboard())

	report, err := s.StandingsReport()
	if err != nil {
		return err
	}
	s.prompter.Printf("%s", report)

	if _, err := s.renderer.Render(actual, "Correct_Bracket.png"); err != nil {
		return err
	}
	for _, name := range names {
		wrong, err := pool.WrongPicks(name)
		if err != nil {
			return fmt.Errorf("error checking picks for %s: %w", name, err)
		}
		filename := strings.ReplaceAll(name, " ", "_") + "_Bracket.png"
		if _, err := s.renderer.RenderScored(playerBrackets[name], filename, wrong); err != nil {
			return err
		}
	}

	s.prompter.Printf("Bracket results available at %s\n", s.renderer.ResultsDir())
	return nil
}

// StandingsReport formats the most recently scored leaderboard.
func (s *PoolService) StandingsReport() (string, error) {
	pool := s.repo.GetLeague()
	if pool == nil {
		return "", errors.New("no league has been scored yet")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏆 --- %s Scoreboard ---\n", pool.Name()))
	for _, standing := range s.repo.GetLeaderboard() {
		sb.WriteString(fmt.Sprintf("%d. %s with %d points\n", standing.Rank, standing.Player, standing.Points))
	}
	return sb.String(), nil
}
