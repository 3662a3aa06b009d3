package game

import (
	"fmt"
	"strings"
)

// Cell holds the two layer slots of one grid position.
type Cell struct {
	Primary   Player `json:"primary"`
	Secondary Player `json:"secondary"`
}

// Board is a square grid of dual-layer cells.
type Board struct {
	size  int
	cells [][]Cell
}

const DefaultBoardSize = 18

func NewBoard(size int) *Board {
	cells := make([][]Cell, size)
	for r := range cells {
		cells[r] = make([]Cell, size)
	}
	return &Board{size: size, cells: cells}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}

func (b *Board) Cell(row, col int) Cell {
	return b.cells[row][col]
}

func (b *Board) SetCell(row, col int, layer Layer, p Player) {
	if layer == Primary {
		b.cells[row][col].Primary = p
	} else {
		b.cells[row][col].Secondary = p
	}
}

// Belongs reports whether either layer of the cell holds the player's color.
func (b *Board) Belongs(row, col int, p Player) bool {
	c := b.cells[row][col]
	return c.Primary == p || c.Secondary == p
}

// CanStartPrimary reports whether a primary-mode move may place on the cell:
// both layers must be empty.
func (b *Board) CanStartPrimary(row, col int) bool {
	c := b.cells[row][col]
	return c.Primary == None && c.Secondary == None
}

// CanPlaceSecondary reports whether a bridge-mode move may place on the
// cell's secondary layer: the secondary layer must be empty and the primary
// layer empty or the mover's own color.
func (b *Board) CanPlaceSecondary(row, col int, p Player) bool {
	c := b.cells[row][col]
	if c.Secondary != None {
		return false
	}
	return c.Primary == None || c.Primary == p
}

// Copy returns a deep value copy sharing no sub-structure with the receiver.
// The searcher clones boards at rollout volume, so this stays allocation-lean.
func (b *Board) Copy() *Board {
	cells := make([][]Cell, b.size)
	for r := range cells {
		cells[r] = make([]Cell, b.size)
		copy(cells[r], b.cells[r])
	}
	return &Board{size: b.size, cells: cells}
}

var directions = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// HasBridge reports whether the player connects their two edges: Blue from
// row 0 to row size-1, Pink from column 0 to column size-1. A cell counts
// for the player if either of its layers holds their color.
func (b *Board) HasBridge(p Player) bool {
	visited := make([]bool, b.size*b.size)
	stack := make([][2]int, 0, b.size)

	// Seed the frontier with every belonging cell on the starting edge.
	if p == Blue {
		for col := 0; col < b.size; col++ {
			if b.Belongs(0, col, p) {
				stack = append(stack, [2]int{0, col})
				visited[col] = true
			}
		}
	} else {
		for row := 0; row < b.size; row++ {
			if b.Belongs(row, 0, p) {
				stack = append(stack, [2]int{row, 0})
				visited[row*b.size] = true
			}
		}
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		row, col := cur[0], cur[1]

		if p == Blue && row == b.size-1 {
			return true
		}
		if p == Pink && col == b.size-1 {
			return true
		}

		for _, d := range directions {
			nr, nc := row+d[0], col+d[1]
			if !b.InBounds(nr, nc) || visited[nr*b.size+nc] {
				continue
			}
			if b.Belongs(nr, nc, p) {
				visited[nr*b.size+nc] = true
				stack = append(stack, [2]int{nr, nc})
			}
		}
	}
	return false
}

// String renders the grid for debug logs. One cell prints as "p/s" using
// b, p or . per layer.
func (b *Board) String() string {
	glyph := func(p Player) byte {
		switch p {
		case Blue:
			return 'b'
		case Pink:
			return 'p'
		default:
			return '.'
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Board(%dx%d)\n", b.size, b.size)
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			c := b.cells[row][col]
			sb.WriteByte(glyph(c.Primary))
			sb.WriteByte('/')
			sb.WriteByte(glyph(c.Secondary))
			if col < b.size-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
