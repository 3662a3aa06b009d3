package game

import "fmt"

// BlockInventory tracks a player's remaining length-4 and length-5 blocks.
// Length-3 blocks are unlimited and untracked.
type BlockInventory struct {
	Size4 int `json:"size4"`
	Size5 int `json:"size5"`
}

func NewBlockInventory() BlockInventory {
	return BlockInventory{Size4: 1, Size5: 1}
}

func (bi BlockInventory) Has(size int) bool {
	switch size {
	case 3:
		return true
	case 4:
		return bi.Size4 > 0
	case 5:
		return bi.Size5 > 0
	default:
		return false
	}
}

func (bi *BlockInventory) use(size int) {
	switch size {
	case 4:
		bi.Size4--
	case 5:
		bi.Size5--
	}
}

func (bi *BlockInventory) restore(size int) {
	switch size {
	case 4:
		bi.Size4++
	case 5:
		bi.Size5++
	}
}

// GameState is the canonical game position: board, turn, inventories, move
// history and resolved winner. It is exclusively owned by its caller; no
// internal locking.
type GameState struct {
	Board         *Board
	CurrentPlayer Player
	Blocks        map[Player]*BlockInventory
	History       []Move
	Won           Player

	// Legal moves for the current position, rebuilt lazily and dropped on
	// every mutation.
	legalCache []Move
}

// NewGame returns a fresh state on an empty size x size board, Blue to move.
func NewGame(size int) *GameState {
	return &GameState{
		Board:         NewBoard(size),
		CurrentPlayer: Blue,
		Blocks: map[Player]*BlockInventory{
			Blue: {Size4: 1, Size5: 1},
			Pink: {Size4: 1, Size5: 1},
		},
	}
}

func (gs *GameState) Player() Player {
	return gs.CurrentPlayer
}

func (gs *GameState) Winner() Player {
	return gs.Won
}

func (gs *GameState) GameOver() bool {
	return gs.Won != None
}

// Clone returns a deep copy sharing no mutable sub-structure with the
// receiver. Rollouts depend on this being a true value copy.
func (gs *GameState) Clone() *GameState {
	history := make([]Move, len(gs.History))
	copy(history, gs.History)

	return &GameState{
		Board:         gs.Board.Copy(),
		CurrentPlayer: gs.CurrentPlayer,
		Blocks: map[Player]*BlockInventory{
			Blue: {Size4: gs.Blocks[Blue].Size4, Size5: gs.Blocks[Blue].Size5},
			Pink: {Size4: gs.Blocks[Pink].Size4, Size5: gs.Blocks[Pink].Size5},
		},
		History: history,
		Won:     gs.Won,
	}
}

// Play implements the State contract: clone, apply, return. The move must
// be legal; the searcher only plays generator output.
func (gs *GameState) Play(m Move) State {
	next := gs.Clone()
	if err := next.Apply(m); err != nil {
		panic(fmt.Sprintf("Play on illegal move %v: %v", m, err))
	}
	return next
}

// NullMove returns a clone with the turn passed to the opponent and no
// stone placed. The searcher probes opponent threats with it.
func (gs *GameState) NullMove() State {
	next := gs.Clone()
	next.CurrentPlayer = next.CurrentPlayer.Opponent()
	return next
}

// LegalMoves enumerates every move the current player may make: for each
// start cell and forward direction, primary-mode and bridge-mode paths of
// length 3 to 5. Scanning forward directions only (right, down) keeps the
// enumeration free of reversed duplicates. Returns nil once the game is over.
func (gs *GameState) LegalMoves() []Move {
	if gs.legalCache != nil {
		return gs.legalCache
	}
	if gs.Won != None {
		return nil
	}

	player := gs.CurrentPlayer
	board := gs.Board
	size := board.Size()
	blocks := gs.Blocks[player]
	var moves []Move

	forward := [2][2]int{{0, 1}, {1, 0}}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := board.Cell(row, col)
			if c.Secondary != None {
				continue
			}

			// A start cell opens primary mode on an empty primary layer and
			// bridge mode on the mover's own anchor.
			var startLayers []Layer
			if c.Primary == None {
				startLayers = append(startLayers, Primary)
			}
			if c.Primary == player {
				startLayers = append(startLayers, Secondary)
			}

			for _, startLayer := range startLayers {
				for _, d := range forward {
					path := make([]Position, 1, MaxBlockSize)
					path[0] = Position{Row: row, Col: col, Layer: startLayer}
					r, cl := row, col

					for len(path) < MaxBlockSize {
						r += d[0]
						cl += d[1]
						if !board.InBounds(r, cl) {
							break
						}
						next := board.Cell(r, cl)
						if next.Secondary != None {
							break
						}

						if startLayer == Primary {
							if next.Primary != None {
								break
							}
							path = append(path, Position{Row: r, Col: cl, Layer: Primary})
						} else {
							if next.Primary != None && next.Primary != player {
								break
							}
							path = append(path, Position{Row: r, Col: cl, Layer: Secondary})
						}

						if len(path) < MinBlockSize {
							continue
						}
						// A bridge must terminate on a pre-existing own
						// anchor; it cannot create one.
						if startLayer == Secondary && next.Primary != player {
							continue
						}
						if !blocks.Has(len(path)) {
							continue
						}

						cells := make([]Position, len(path))
						copy(cells, path)
						moves = append(moves, NewMove(player, cells))
					}
				}
			}
		}
	}

	gs.legalCache = moves
	return moves
}

// Apply validates and plays the move for the current player. On failure the
// state is unchanged. On success the path cells are written, inventory is
// decremented for lengths 4 and 5, the move is appended to history and the
// mover's connectivity is checked: a completed bridge ends the game without
// advancing the turn.
func (gs *GameState) Apply(m Move) error {
	if gs.Won != None {
		return fmt.Errorf("%w: game is already over", ErrIllegalMove)
	}
	if m.Player != gs.CurrentPlayer {
		return fmt.Errorf("%w: not %s's turn", ErrIllegalMove, m.Player)
	}
	if err := m.validatePlacement(gs.Board, *gs.Blocks[m.Player]); err != nil {
		return err
	}

	for _, pos := range m.Path {
		gs.Board.SetCell(pos.Row, pos.Col, pos.Layer, m.Player)
	}
	gs.Blocks[m.Player].use(m.BlockSize())
	gs.History = append(gs.History, m)

	if gs.Board.HasBridge(m.Player) {
		gs.Won = m.Player
	} else {
		gs.CurrentPlayer = gs.CurrentPlayer.Opponent()
	}

	gs.legalCache = nil
	return nil
}

// Undo reverts the last applied move: path cells are cleared, consumed
// inventory is restored, the turn returns to the mover and any winner set
// by that move is cleared. One level per call.
func (gs *GameState) Undo() error {
	if len(gs.History) == 0 {
		return ErrNothingToUndo
	}

	last := gs.History[len(gs.History)-1]
	gs.History = gs.History[:len(gs.History)-1]

	for _, pos := range last.Path {
		gs.Board.SetCell(pos.Row, pos.Col, pos.Layer, None)
	}
	gs.Blocks[last.Player].restore(last.BlockSize())
	gs.CurrentPlayer = last.Player
	gs.Won = None

	gs.legalCache = nil
	return nil
}

// Stats is a summary of the game for logs and the session layer.
type Stats struct {
	CurrentPlayer Player
	MoveCount     int
	Blocks        map[Player]BlockInventory
	Winner        Player
	LegalMoves    int
	BoardSize     int
}

func (gs *GameState) Stats() Stats {
	return Stats{
		CurrentPlayer: gs.CurrentPlayer,
		MoveCount:     len(gs.History),
		Blocks: map[Player]BlockInventory{
			Blue: *gs.Blocks[Blue],
			Pink: *gs.Blocks[Pink],
		},
		Winner:     gs.Won,
		LegalMoves: len(gs.LegalMoves()),
		BoardSize:  gs.Board.Size(),
	}
}
