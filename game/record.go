package game

import (
	"encoding/json"
	"fmt"
)

// Record is the serialized form of a game: the initial configuration plus
// the ordered move list. The board is derived, not stored; replaying the
// moves reproduces it exactly.
type Record struct {
	BoardSize int    `json:"board_size"`
	Moves     []Move `json:"moves"`
	Winner    Player `json:"winner"`
}

// Snapshot is the wire shape of a full game state for the transport layer:
// the board as nested arrays of dual-layer cells plus turn, inventories and
// winner.
type Snapshot struct {
	Size          int                       `json:"size"`
	Board         [][]Cell                  `json:"board"`
	CurrentPlayer Player                    `json:"currentPlayer"`
	Blocks        map[string]BlockInventory `json:"blocks"`
	Winner        Player                    `json:"winner"`
}

func (gs *GameState) Snapshot() Snapshot {
	size := gs.Board.Size()
	board := make([][]Cell, size)
	for row := 0; row < size; row++ {
		board[row] = make([]Cell, size)
		for col := 0; col < size; col++ {
			board[row][col] = gs.Board.Cell(row, col)
		}
	}
	return Snapshot{
		Size:          size,
		Board:         board,
		CurrentPlayer: gs.CurrentPlayer,
		Blocks: map[string]BlockInventory{
			Blue.String(): *gs.Blocks[Blue],
			Pink.String(): *gs.Blocks[Pink],
		},
		Winner: gs.Won,
	}
}

// ExportRecord serializes the game to JSON.
func (gs *GameState) ExportRecord() ([]byte, error) {
	record := Record{
		BoardSize: gs.Board.Size(),
		Moves:     gs.History,
		Winner:    gs.Won,
	}
	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to export record: %w", err)
	}
	return data, nil
}

// ImportRecord rebuilds a game by replaying a record's moves from the
// initial configuration. A move that does not replay cleanly invalidates
// the whole record.
func ImportRecord(data []byte) (*GameState, error) {
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse record: %w", err)
	}
	if record.BoardSize < MinBlockSize {
		return nil, fmt.Errorf("invalid record: board size %d", record.BoardSize)
	}

	gs := NewGame(record.BoardSize)
	for i, m := range record.Moves {
		if err := gs.Apply(m); err != nil {
			return nil, fmt.Errorf("invalid record: move %d does not replay: %w", i, err)
		}
	}
	return gs, nil
}
