package models

import (
	"fmt"
	"strings"
)

// Team identifies one competing team. Immutable once created.
type Team struct {
	Name       string
	Seed       int
	Conference string
	Logo       string
}

// LogoRef returns the logo asset filename for the team. An explicit Logo
// value wins; otherwise the filename is derived from the team name.
func (t Team) LogoRef() string {
	if t.Logo != "" {
		return t.Logo
	}
	return strings.ReplaceAll(t.Name, " ", "_") + ".png"
}

func (t Team) String() string {
	return fmt.Sprintf("%s (%s%d)", t.Name, t.Conference, t.Seed)
}

// Round labels a depth level of the bracket tree. Round 1 holds the opening
// matchups; the highest round in a bracket is its final.
type Round int

const (
	FirstRound Round = iota + 1
	SecondRound
	ConferenceFinals
	StanleyCupFinal
)

func (r Round) String() string {
	switch r {
	case FirstRound:
		return "First Round"
	case SecondRound:
		return "Second Round"
	case ConferenceFinals:
		return "Conference Finals"
	case StanleyCupFinal:
		return "Stanley Cup Final"
	}
	return fmt.Sprintf("Round %d", int(r))
}

// Side names which slot of a matchup fed a pick into the node.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// Standing is one leaderboard row.
type Standing struct {
	Rank   int
	Player string
	Points int
}
