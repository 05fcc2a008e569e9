package models

import "errors"

var (
	ErrInvalidSize      = errors.New("team count must be a power of two")
	ErrInvalidSelection = errors.New("team is not a possible winner of this matchup")
	ErrUnresolvedNode   = errors.New("matchup winner not yet decided")
	ErrNodeNotFound     = errors.New("no matchup at that round and position")
	ErrDuplicatePlayer  = errors.New("player already in the league")
	ErrShapeMismatch    = errors.New("bracket shape differs from the actual bracket")
	ErrAlreadySet       = errors.New("actual bracket already set")
	ErrUnknownPlayer    = errors.New("player not in the league")
)
