package agent

import (
	"golang.org/x/exp/rand"

	"wataruto/game"
	"wataruto/searcher"
)

// Agent is the player capability: given a state, produce a move and search
// statistics. Alternative implementations (e.g. a trained network player)
// substitute behind this interface.
type Agent interface {
	FindMove(state game.State) (game.Move, searcher.Result, error)
}

// MCTSAgent plays with the tactical searcher.
type MCTSAgent struct {
	mcts *searcher.MCTS
}

func NewMCTSAgent(mcts *searcher.MCTS) *MCTSAgent {
	return &MCTSAgent{mcts: mcts}
}

func (a *MCTSAgent) FindMove(state game.State) (game.Move, searcher.Result, error) {
	result, err := a.mcts.Search(state)
	if err != nil {
		return game.Move{}, searcher.Result{}, err
	}
	return result.Move, result, nil
}

// RandomAgent is the uniform-random baseline player.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(state game.State) (game.Move, searcher.Result, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, searcher.Result{}, searcher.ErrNoLegalMoves
	}
	move := moves[a.rng.Intn(len(moves))]
	return move, searcher.Result{Move: move}, nil
}
