// Package prompt implements the interactive session flow: league setup,
// team entry, per-matchup picks and scoring rules, all over plain line
// prompts.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/omarshaarawi/bracketpool/internal/bracket"
	"github.com/omarshaarawi/bracketpool/internal/models"
)

// Suggestions further than this edit distance from any valid name are not
// offered.
const maxSuggestionDistance = 5

type Prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	title  cases.Caser
	closed bool
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    bufio.NewScanner(in),
		out:   out,
		title: cases.Title(language.English),
	}
}

func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Prompter) ask(question string) string {
	if p.closed {
		return ""
	}
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		p.closed = true
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

func (p *Prompter) askChoice(question string, choices ...string) string {
	prompt := fmt.Sprintf("%s (%s): ", question, strings.Join(choices, "/"))
	for !p.closed {
		answer := strings.ToLower(p.ask(prompt))
		for _, c := range choices {
			if answer == c {
				return answer
			}
		}
		p.Printf("Please choose one of %s.\n", strings.Join(choices, ", "))
	}
	return ""
}

func (p *Prompter) askInt(question string) int {
	for !p.closed {
		value, err := strconv.Atoi(p.ask(question))
		if err == nil {
			return value
		}
		p.Printf("Invalid input. Please enter a valid integer.\n")
	}
	return 0
}

// LeagueName prompts for the league name.
func (p *Prompter) LeagueName() string {
	return p.ask("Enter the league name: ")
}

// TeamList asks whether to use the default 2025 playoff field or enter a
// custom one, and returns the teams in bracket build order.
func (p *Prompter) TeamList(validNames []string) ([]models.Team, error) {
	choice := p.askChoice("Customize bracket or use default 2025 playoffs?", "custom", "default")
	if choice == "default" {
		return bracket.SeedOrder(DefaultPlayoffField())
	}
	return bracket.SeedOrder(p.customTeams(validNames))
}

// customTeams prompts for every seed of both conferences, validating each
// name against the teams with a logo on disk and suggesting the closest
// valid name on a miss.
func (p *Prompter) customTeams(validNames []string) []models.Team {
	remaining := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		remaining[name] = true
	}

	var teams []models.Team
	for _, conf := range []string{"East", "West"} {
		for seed := 1; seed <= 8; seed++ {
			for !p.closed {
				name := p.title.String(p.ask(fmt.Sprintf("Enter seed %d of the %sern Conference: ", seed, conf)))
				if remaining[name] {
					teams = append(teams, models.Team{Name: name, Seed: seed, Conference: conf})
					delete(remaining, name)
					break
				}
				if suggestion, ok := p.closest(name, remaining); ok {
					p.Printf("Invalid or duplicated name. Did you mean %s?\n", suggestion)
				} else {
					p.Printf("Invalid or duplicated name. Choose a team with a logo that is not already seeded.\n")
				}
			}
		}
	}
	return teams
}

// closest finds the remaining valid name nearest the input by edit
// distance.
func (p *Prompter) closest(input string, remaining map[string]bool) (string, bool) {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for name := range remaining {
		distance := fuzzy.LevenshteinDistance(strings.ToLower(input), strings.ToLower(name))
		if distance < bestDistance {
			best = name
			bestDistance = distance
		}
	}
	return best, best != ""
}

// PlayerNames prompts for the league size and then a unique, non-empty name
// per player, preserving entry order.
func (p *Prompter) PlayerNames() []string {
	var count int
	for !p.closed {
		count = p.askInt("Enter the number of players in the league: ")
		if count > 0 {
			break
		}
		p.Printf("The number of players must be a positive integer! Try again.\n")
	}

	seen := make(map[string]bool, count)
	names := make([]string, 0, count)
	for i := 0; i < count && !p.closed; i++ {
		for !p.closed {
			name := p.ask(fmt.Sprintf("Player %d Name: ", i+1))
			if name != "" && !seen[name] {
				seen[name] = true
				names = append(names, name)
				break
			}
			p.Printf("Player names must be non-empty and unique!\n")
		}
	}
	return names
}

// Picks walks the bracket round by round and asks for a winner per matchup.
// Earlier rounds resolve first, so both contenders always exist.
func (p *Prompter) Picks(b *bracket.Bracket) error {
	byRound := b.NodesByRound()
	for r := models.FirstRound; int(r) <= b.NumRounds(); r++ {
		for _, node := range byRound[r] {
			if err := p.pick(node); err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *Prompter) pick(node *bracket.Node) error {
	top, ok := node.Top().Contender()
	if !ok {
		return fmt.Errorf("top slot of %s matchup: %w", node.Round(), models.ErrUnresolvedNode)
	}
	bottom, ok := node.Bottom().Contender()
	if !ok {
		return fmt.Errorf("bottom slot of %s matchup: %w", node.Round(), models.ErrUnresolvedNode)
	}

	for !node.Decided() {
		if p.closed {
			return fmt.Errorf("input ended before the %s matchup was decided", node.Round())
		}
		choice := strings.ToUpper(p.ask(fmt.Sprintf("Winner of %s (A) vs %s (B)?: ", top.Name, bottom.Name)))
		switch choice {
		case "A":
			if err := node.SetWinner(top); err != nil {
				return err
			}
		case "B":
			if err := node.SetWinner(bottom); err != nil {
				return err
			}
		default:
			p.Printf("Error: enter 'A' for %s or 'B' for %s.\n", top.Name, bottom.Name)
		}
	}
	return nil
}

// Points asks for the point value of a correct pick in each round, first
// round up to the final.
func (p *Prompter) Points(numRounds int) map[models.Round]int {
	rules := make(map[models.Round]int, numRounds)
	for r := models.FirstRound; int(r) <= numRounds; r++ {
		rules[r] = p.askInt(fmt.Sprintf("Enter the number of points awarded for a correct guess in the %s: ", r))
	}
	return rules
}
