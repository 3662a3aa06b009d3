package game

import "errors"

// Player identifies a side. Blue aims to connect the top and bottom edges,
// Pink the left and right edges.
type Player int8

const (
	None Player = 0
	Blue Player = 1
	Pink Player = -1
)

func (p Player) Opponent() Player {
	return -p
}

func (p Player) String() string {
	switch p {
	case Blue:
		return "blue"
	case Pink:
		return "pink"
	default:
		return "none"
	}
}

// Layer addresses one of the two slots a cell holds. Secondary is the
// bridging slot: it may only be written by a bridge move.
type Layer int8

const (
	Primary Layer = iota
	Secondary
)

var (
	// ErrIllegalMove covers wrong turn, bad move structure, illegal
	// placement and exhausted inventory. The state is left untouched.
	ErrIllegalMove = errors.New("illegal move")
	// ErrNothingToUndo is returned when the move history is empty.
	ErrNothingToUndo = errors.New("nothing to undo")
)

// State is the clone-and-apply contract the searcher plays against.
// Play and NullMove must return independently owned copies; the receiver
// is never mutated.
type State interface {
	Player() Player
	LegalMoves() []Move
	Play(Move) State
	// NullMove returns a copy with the turn handed to the opponent without
	// a placement. Used for threat probing, never during normal play.
	NullMove() State
	Winner() Player
}
