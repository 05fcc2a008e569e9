// Package bracket implements the single-elimination playoff tree: balanced
// construction from an ordered team list, round/position addressing, winner
// propagation and whole-tree queries.
package bracket

import (
	"fmt"
	"sort"
	"strings"

	"github.com/omarshaarawi/bracketpool/internal/models"
)

// Bracket owns a complete playoff tree for one party (a player, the actual
// outcome, or the empty template).
type Bracket struct {
	root  *Node
	label string
}

// New builds a balanced tree pairing teams left to right in input order:
// teams[0] meets teams[1], teams[2] meets teams[3], and the winners meet
// above. The team count must be a power of two and at least two.
func New(teams []models.Team, label string) (*Bracket, error) {
	n := len(teams)
	if n < 2 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%d teams: %w", n, models.ErrInvalidSize)
	}

	nodes := make([]*Node, 0, n/2)
	for i := 0; i < n; i += 2 {
		nodes = append(nodes, newNode(models.FirstRound, TeamSlot(teams[i]), TeamSlot(teams[i+1])))
	}

	round := models.FirstRound
	for len(nodes) > 1 {
		round++
		next := make([]*Node, 0, len(nodes)/2)
		for i := 0; i < len(nodes); i += 2 {
			next = append(next, newNode(round, NodeSlot(nodes[i]), NodeSlot(nodes[i+1])))
		}
		nodes = next
	}

	return &Bracket{root: nodes[0], label: label}, nil
}

// SeedOrder arranges a seeded field into the order New expects: teams are
// grouped by conference (in order of first appearance), sorted by seed, and
// paired highest against lowest within each group (1v8, 2v7, 3v6, 4v5). The
// first conference fills the left half of the tree.
func SeedOrder(teams []models.Team) ([]models.Team, error) {
	var confs []string
	groups := make(map[string][]models.Team)
	for _, t := range teams {
		if _, ok := groups[t.Conference]; !ok {
			confs = append(confs, t.Conference)
		}
		groups[t.Conference] = append(groups[t.Conference], t)
	}

	ordered := make([]models.Team, 0, len(teams))
	for _, conf := range confs {
		group := groups[conf]
		if len(group)%2 != 0 {
			return nil, fmt.Errorf("conference %s has %d teams: %w", conf, len(group), models.ErrInvalidSize)
		}
		sort.SliceStable(group, func(i, j int) bool { return group[i].Seed < group[j].Seed })
		for i := 0; i < len(group)/2; i++ {
			ordered = append(ordered, group[i], group[len(group)-1-i])
		}
	}
	return ordered, nil
}

func (b *Bracket) Label() string { return b.label }
func (b *Bracket) Root() *Node   { return b.root }

// NumRounds is the depth of the tree; the round of the final.
func (b *Bracket) NumRounds() int { return int(b.root.round) }

// NodesByRound groups matchups by round, ordered left to right within each
// round. Positions index into these slices.
func (b *Bracket) NodesByRound() map[models.Round][]*Node {
	rounds := make(map[models.Round][]*Node)
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.top.Node != nil {
			walk(n.top.Node)
		}
		if n.bottom.Node != nil {
			walk(n.bottom.Node)
		}
		rounds[n.round] = append(rounds[n.round], n)
	}
	walk(b.root)
	return rounds
}

// Nodes flattens the tree in round order, first round first, left to right
// within a round. Two brackets of identical shape flatten to corresponding
// positions.
func (b *Bracket) Nodes() []*Node {
	byRound := b.NodesByRound()
	var nodes []*Node
	for r := models.FirstRound; int(r) <= b.NumRounds(); r++ {
		nodes = append(nodes, byRound[r]...)
	}
	return nodes
}

// SetMatchupWinner records the winner of the matchup at the given
// coordinates.
func (b *Bracket) SetMatchupWinner(round models.Round, position int, team models.Team) error {
	nodes := b.NodesByRound()[round]
	if position < 0 || position >= len(nodes) {
		return fmt.Errorf("%s position %d: %w", round, position, models.ErrNodeNotFound)
	}
	return nodes[position].SetWinner(team)
}

// IsComplete reports whether every matchup in the tree has a winner.
func (b *Bracket) IsComplete() bool {
	for _, n := range b.Nodes() {
		if !n.Decided() {
			return false
		}
	}
	return true
}

// Champion returns the winner of the final.
func (b *Bracket) Champion() (models.Team, error) {
	return b.root.Winner()
}

// Clone deep-copies the tree under a new label. Winners copy over; the
// clones mutate independently afterwards.
func (b *Bracket) Clone(label string) *Bracket {
	var cloneNode func(n *Node) *Node
	cloneNode = func(n *Node) *Node {
		top, bottom := n.top, n.bottom
		if n.top.Node != nil {
			top = NodeSlot(cloneNode(n.top.Node))
		}
		if n.bottom.Node != nil {
			bottom = NodeSlot(cloneNode(n.bottom.Node))
		}
		c := newNode(n.round, top, bottom)
		if n.winner != nil {
			w := *n.winner
			c.winner = &w
		}
		return c
	}
	return &Bracket{root: cloneNode(b.root), label: label}
}

// Shape is a structural signature: tree layout, rounds and leaf teams, but
// not winners. Brackets that may be scored against each other share a shape.
func (b *Bracket) Shape() string {
	var sb strings.Builder
	var walk func(s Slot)
	walk = func(s Slot) {
		if s.Team != nil {
			sb.WriteString(s.Team.Name)
			return
		}
		fmt.Fprintf(&sb, "(%d ", int(s.Node.round))
		walk(s.Node.top)
		sb.WriteByte(' ')
		walk(s.Node.bottom)
		sb.WriteByte(')')
	}
	walk(NodeSlot(b.root))
	return sb.String()
}
