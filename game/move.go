package game

import (
	"fmt"
	"time"
)

// Position is one cell of a move path, tagged with the layer it targets.
type Position struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Layer Layer `json:"layer"`
}

// Move places a straight run of 3 to 5 stones for one player. The timestamp
// orders history entries and has no bearing on game logic.
type Move struct {
	Player    Player     `json:"player"`
	Path      []Position `json:"path"`
	Timestamp time.Time  `json:"timestamp"`
}

const (
	MinBlockSize = 3
	MaxBlockSize = 5
)

func NewMove(p Player, path []Position) Move {
	return Move{Player: p, Path: path, Timestamp: time.Now()}
}

func (m Move) BlockSize() int {
	return len(m.Path)
}

// IsBridge reports whether the move writes to secondary layers, i.e. its
// start cell targets the bridging slot.
func (m Move) IsBridge() bool {
	return len(m.Path) > 0 && m.Path[0].Layer == Secondary
}

func (m Move) Start() Position {
	return m.Path[0]
}

func (m Move) End() Position {
	return m.Path[len(m.Path)-1]
}

func (m Move) String() string {
	if len(m.Path) == 0 {
		return fmt.Sprintf("Move(%s, empty)", m.Player)
	}
	mode := "primary"
	if m.IsBridge() {
		mode = "bridge"
	}
	s, e := m.Start(), m.End()
	return fmt.Sprintf("Move(%s, %s, len=%d, (%d,%d)->(%d,%d))",
		m.Player, mode, m.BlockSize(), s.Row, s.Col, e.Row, e.Col)
}

// ValidatePath checks the structural invariants of the path: length 3..5,
// all same row or all same column, a single target layer throughout, and a
// constant unit step between consecutive cells, which rules out both gaps
// and revisited cells.
func (m Move) ValidatePath() error {
	n := len(m.Path)
	if n < MinBlockSize || n > MaxBlockSize {
		return fmt.Errorf("%w: path length %d outside [%d,%d]",
			ErrIllegalMove, n, MinBlockSize, MaxBlockSize)
	}

	first := m.Path[0]
	sameRow, sameCol := true, true
	for _, pos := range m.Path[1:] {
		if pos.Row != first.Row {
			sameRow = false
		}
		if pos.Col != first.Col {
			sameCol = false
		}
		if pos.Layer != first.Layer {
			return fmt.Errorf("%w: mixed target layers in path", ErrIllegalMove)
		}
	}
	if !sameRow && !sameCol {
		return fmt.Errorf("%w: path is not a straight line", ErrIllegalMove)
	}

	// Every step must repeat the first unit step; a path that doubles back
	// would revisit a cell.
	dr := m.Path[1].Row - m.Path[0].Row
	dc := m.Path[1].Col - m.Path[0].Col
	if dr*dr+dc*dc != 1 {
		return fmt.Errorf("%w: path cells (%d,%d) and (%d,%d) are not adjacent",
			ErrIllegalMove, m.Path[0].Row, m.Path[0].Col, m.Path[1].Row, m.Path[1].Col)
	}
	for i := 2; i < n; i++ {
		if m.Path[i].Row-m.Path[i-1].Row != dr || m.Path[i].Col-m.Path[i-1].Col != dc {
			return fmt.Errorf("%w: path is not contiguous at (%d,%d)",
				ErrIllegalMove, m.Path[i].Row, m.Path[i].Col)
		}
	}
	return nil
}

// validatePlacement checks the move against a board and the mover's block
// inventory. This is the defense against callers that bypass the legal-move
// generator; moves produced by the generator always pass.
func (m Move) validatePlacement(b *Board, blocks BlockInventory) error {
	if err := m.ValidatePath(); err != nil {
		return err
	}
	if !blocks.Has(m.BlockSize()) {
		return fmt.Errorf("%w: no length-%d blocks left", ErrIllegalMove, m.BlockSize())
	}

	bridge := m.IsBridge()
	for i, pos := range m.Path {
		if !b.InBounds(pos.Row, pos.Col) {
			return fmt.Errorf("%w: position (%d,%d) out of bounds", ErrIllegalMove, pos.Row, pos.Col)
		}
		c := b.Cell(pos.Row, pos.Col)
		if c.Secondary != None {
			return fmt.Errorf("%w: secondary layer occupied at (%d,%d)", ErrIllegalMove, pos.Row, pos.Col)
		}

		if !bridge {
			if c.Primary != None {
				return fmt.Errorf("%w: primary layer occupied at (%d,%d)", ErrIllegalMove, pos.Row, pos.Col)
			}
			continue
		}

		// Bridge mode. The start cell must sit on the mover's own anchor;
		// interior cells may cross empty or own primary layers, never the
		// opponent's.
		if i == 0 {
			if c.Primary != m.Player {
				return fmt.Errorf("%w: bridge must start on own stone at (%d,%d)", ErrIllegalMove, pos.Row, pos.Col)
			}
		} else if c.Primary != None && c.Primary != m.Player {
			return fmt.Errorf("%w: bridge crosses opponent stone at (%d,%d)", ErrIllegalMove, pos.Row, pos.Col)
		}
	}

	if bridge {
		end := m.End()
		if b.Cell(end.Row, end.Col).Primary != m.Player {
			return fmt.Errorf("%w: bridge must end on own stone at (%d,%d)", ErrIllegalMove, end.Row, end.Col)
		}
	}
	return nil
}
