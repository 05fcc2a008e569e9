package bracket

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/omarshaarawi/bracketpool/internal/models"
)

// Slot is one side of a matchup: either a leaf team or the winner of an
// earlier matchup. Exactly one of the two fields is set.
type Slot struct {
	Team *models.Team
	Node *Node
}

func TeamSlot(t models.Team) Slot {
	return Slot{Team: &t}
}

func NodeSlot(n *Node) Slot {
	return Slot{Node: n}
}

func (s Slot) IsLeaf() bool {
	return s.Team != nil
}

// Contender resolves the team currently occupying the slot. For an interior
// slot that is the child matchup's winner, which may not exist yet.
func (s Slot) Contender() (models.Team, bool) {
	if s.Team != nil {
		return *s.Team, true
	}
	if s.Node != nil && s.Node.winner != nil {
		return *s.Node.winner, true
	}
	return models.Team{}, false
}

// Node is one matchup in the bracket tree.
type Node struct {
	id     uuid.UUID
	round  models.Round
	top    Slot
	bottom Slot
	winner *models.Team
}

func newNode(round models.Round, top, bottom Slot) *Node {
	return &Node{
		id:     uuid.New(),
		round:  round,
		top:    top,
		bottom: bottom,
	}
}

func (n *Node) ID() uuid.UUID       { return n.id }
func (n *Node) Round() models.Round { return n.round }
func (n *Node) Top() Slot           { return n.top }
func (n *Node) Bottom() Slot        { return n.bottom }

// SetWinner records the matchup result. The team must be one of the two
// slots' contenders; a slot whose own matchup is undecided offers none, so a
// node below two undecided matchups rejects every team. Failed calls leave
// the node untouched.
func (n *Node) SetWinner(team models.Team) error {
	if top, ok := n.top.Contender(); ok && top.Name == team.Name {
		n.winner = &top
		return nil
	}
	if bottom, ok := n.bottom.Contender(); ok && bottom.Name == team.Name {
		n.winner = &bottom
		return nil
	}
	return fmt.Errorf("%s: %w", team.Name, models.ErrInvalidSelection)
}

// Winner returns the recorded result.
func (n *Node) Winner() (models.Team, error) {
	if n.winner == nil {
		return models.Team{}, fmt.Errorf("%s matchup: %w", n.round, models.ErrUnresolvedNode)
	}
	return *n.winner, nil
}

func (n *Node) Decided() bool {
	return n.winner != nil
}
