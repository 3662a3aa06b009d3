package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	gs := NewGame(5)

	require.Equal(t, Blue, gs.Player(), "Blue moves first")
	require.Equal(t, None, gs.Winner())
	require.Equal(t, BlockInventory{Size4: 1, Size5: 1}, *gs.Blocks[Blue])
	require.Equal(t, BlockInventory{Size4: 1, Size5: 1}, *gs.Blocks[Pink])
	require.Empty(t, gs.History)
}

func TestLegalMovesRespectLayers(t *testing.T) {
	gs := NewGame(6)
	gs.Board.SetCell(2, 2, Primary, Blue)
	gs.Board.SetCell(2, 3, Primary, Pink)
	gs.Board.SetCell(4, 4, Secondary, Pink)

	for _, m := range gs.LegalMoves() {
		if m.IsBridge() {
			for _, pos := range m.Path {
				primary := gs.Board.Cell(pos.Row, pos.Col).Primary
				require.NotEqual(t, Pink, primary,
					"Bridge move %v crosses an opponent stone", m)
				require.Equal(t, Secondary, pos.Layer)
			}
			start, end := m.Start(), m.End()
			require.Equal(t, Blue, gs.Board.Cell(start.Row, start.Col).Primary,
				"Bridge move %v must start on an anchor", m)
			require.Equal(t, Blue, gs.Board.Cell(end.Row, end.Col).Primary,
				"Bridge move %v must end on an anchor", m)
		} else {
			for _, pos := range m.Path {
				require.Equal(t, Cell{}, gs.Board.Cell(pos.Row, pos.Col),
					"Primary move %v writes to a non-empty cell", m)
				require.Equal(t, Primary, pos.Layer)
			}
		}
		require.GreaterOrEqual(t, m.BlockSize(), MinBlockSize)
		require.LessOrEqual(t, m.BlockSize(), MaxBlockSize)
	}
}

func TestLegalMovesInventoryFilter(t *testing.T) {
	gs := NewGame(6)
	gs.Blocks[Blue].Size4 = 0
	gs.Blocks[Blue].Size5 = 0

	for _, m := range gs.LegalMoves() {
		require.Equal(t, 3, m.BlockSize(),
			"With no long blocks left only length-3 moves are legal")
	}
}

func TestApplyInventoryAndTurn(t *testing.T) {
	gs := NewGame(8)

	require.NoError(t, gs.Apply(vertical(Blue, Primary, 0, 0, 4)))
	require.Equal(t, 0, gs.Blocks[Blue].Size4, "Length-4 move consumes the size-4 block")
	require.Equal(t, 1, gs.Blocks[Blue].Size5)
	require.Equal(t, Pink, gs.Player(), "Turn advances after a non-winning move")

	require.NoError(t, gs.Apply(horizontal(Pink, Primary, 7, 0, 3)))
	require.Equal(t, BlockInventory{Size4: 1, Size5: 1}, *gs.Blocks[Pink],
		"Length-3 moves never change inventory")
	require.Len(t, gs.History, 2)
}

func TestApplyRejections(t *testing.T) {
	gs := NewGame(8)

	t.Run("wrong turn", func(t *testing.T) {
		err := gs.Apply(horizontal(Pink, Primary, 0, 0, 3))
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("exhausted inventory", func(t *testing.T) {
		gs.Blocks[Blue].Size5 = 0
		defer func() { gs.Blocks[Blue].Size5 = 1 }()

		err := gs.Apply(vertical(Blue, Primary, 0, 0, 5))
		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("path revisiting cells", func(t *testing.T) {
		zigzag := NewMove(Blue, []Position{
			{0, 0, Primary}, {1, 0, Primary}, {0, 0, Primary}, {1, 0, Primary}, {2, 0, Primary},
		})

		err := gs.Apply(zigzag)
		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, 1, gs.Blocks[Blue].Size5, "A fake length-5 move must not consume the block")
		require.Equal(t, None, gs.Board.Cell(0, 0).Primary)
	})

	t.Run("state unchanged after refusal", func(t *testing.T) {
		before := gs.Clone()
		require.Error(t, gs.Apply(NewMove(Blue, []Position{{0, 0, Primary}, {1, 1, Primary}, {2, 2, Primary}})))

		require.Equal(t, before.Board, gs.Board)
		require.Equal(t, before.CurrentPlayer, gs.CurrentPlayer)
		require.Equal(t, *before.Blocks[Blue], *gs.Blocks[Blue])
		require.Len(t, gs.History, len(before.History))
	})
}

func TestLengthFiveColumnWinsImmediately(t *testing.T) {
	gs := NewGame(5)

	require.NoError(t, gs.Apply(vertical(Blue, Primary, 0, 0, 5)))

	require.Equal(t, Blue, gs.Winner(), "Full column connects Blue's edges")
	require.Equal(t, Blue, gs.CurrentPlayer, "Turn does not advance on a winning move")
	require.Equal(t, 0, gs.Blocks[Blue].Size5, "The sole length-5 block is consumed")
	require.Nil(t, gs.LegalMoves(), "No legal moves once the game is over")
}

func TestBridgeMoveCompletesColumn(t *testing.T) {
	gs := NewGame(5)
	gs.Board.SetCell(0, 2, Primary, Blue)
	gs.Board.SetCell(4, 2, Primary, Blue)

	want := vertical(Blue, Secondary, 2, 0, 5)
	var bridge *Move
	for _, m := range gs.LegalMoves() {
		m := m
		if m.IsBridge() && m.BlockSize() == 5 && m.Start().Col == 2 && m.Start().Row == 0 {
			bridge = &m
			break
		}
	}
	require.NotNil(t, bridge, "Generator should yield the five-cell bridge")
	require.Equal(t, want.Path, bridge.Path)

	require.NoError(t, gs.Apply(*bridge))
	require.Equal(t, Blue, gs.Winner(), "The bridge connects top to bottom")
}

func TestUndoRestoresEverything(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		gs := NewGame(5)
		require.ErrorIs(t, gs.Undo(), ErrNothingToUndo)
	})

	t.Run("single move", func(t *testing.T) {
		gs := NewGame(8)
		before := gs.Clone()

		require.NoError(t, gs.Apply(vertical(Blue, Primary, 3, 0, 4)))
		require.NoError(t, gs.Undo())

		require.Equal(t, before.Board, gs.Board)
		require.Equal(t, Blue, gs.Player())
		require.Equal(t, *before.Blocks[Blue], *gs.Blocks[Blue])
		require.Empty(t, gs.History)
	})

	t.Run("winning move clears the winner", func(t *testing.T) {
		gs := NewGame(5)
		require.NoError(t, gs.Apply(vertical(Blue, Primary, 0, 0, 5)))
		require.Equal(t, Blue, gs.Winner())

		require.NoError(t, gs.Undo())

		require.Equal(t, None, gs.Winner())
		require.Equal(t, Blue, gs.Player())
		require.Equal(t, 1, gs.Blocks[Blue].Size5, "Consumed inventory is restored")
		require.NotEmpty(t, gs.LegalMoves(), "The game is playable again")
	})

	t.Run("repeated undo walks the stack", func(t *testing.T) {
		gs := NewGame(8)
		initial := gs.Clone()

		require.NoError(t, gs.Apply(vertical(Blue, Primary, 0, 0, 3)))
		require.NoError(t, gs.Apply(horizontal(Pink, Primary, 7, 0, 3)))
		require.NoError(t, gs.Apply(vertical(Blue, Primary, 1, 0, 3)))

		require.NoError(t, gs.Undo())
		require.NoError(t, gs.Undo())
		require.NoError(t, gs.Undo())

		require.Equal(t, initial.Board, gs.Board)
		require.Equal(t, Blue, gs.Player())
		require.ErrorIs(t, gs.Undo(), ErrNothingToUndo)
	})
}

func TestCloneAndPlayAreIndependent(t *testing.T) {
	gs := NewGame(5)

	next := gs.Play(vertical(Blue, Primary, 0, 0, 3)).(*GameState)

	require.Equal(t, Cell{}, gs.Board.Cell(0, 0), "Play must not mutate the receiver")
	require.Equal(t, Blue, next.Board.Cell(0, 0).Primary)
	require.Equal(t, Pink, next.Player())
	require.Empty(t, gs.History)
}

func TestNullMovePassesTurn(t *testing.T) {
	gs := NewGame(5)

	probe := gs.NullMove().(*GameState)

	require.Equal(t, Pink, probe.Player())
	require.Equal(t, Blue, gs.Player(), "NullMove must not mutate the receiver")
	require.Equal(t, gs.Board, probe.Board)
}

func TestStalemateReportsNoWinner(t *testing.T) {
	gs := NewGame(3)
	// Saturate every secondary slot, alternating colors so neither side
	// connects its edges.
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			p := Blue
			if (row+col)%2 == 1 {
				p = Pink
			}
			gs.Board.SetCell(row, col, Secondary, p)
		}
	}

	require.Empty(t, gs.LegalMoves(), "A saturated board has no legal moves")
	require.Equal(t, None, gs.Winner(), "The engine makes no stalemate ruling")
}

func TestStats(t *testing.T) {
	gs := NewGame(6)
	require.NoError(t, gs.Apply(vertical(Blue, Primary, 0, 0, 4)))

	stats := gs.Stats()

	require.Equal(t, Pink, stats.CurrentPlayer)
	require.Equal(t, 1, stats.MoveCount)
	require.Equal(t, 0, stats.Blocks[Blue].Size4)
	require.Equal(t, 6, stats.BoardSize)
	require.Positive(t, stats.LegalMoves)
}
