package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"wataruto/agent"
	"wataruto/game"
	"wataruto/searcher"
)

// MaxTurns caps runaway games between weak agents.
const MaxTurns = 300

// MoveMetric records one move of a finished game.
type MoveMetric struct {
	Step   int
	Player game.Player
	searcher.Result
}

// Engine drives a full local game between two agents. It owns the canonical
// state; agents only ever see clones through the State contract.
type Engine struct {
	State  *game.GameState
	Agents map[game.Player]agent.Agent
}

func LocalEngine(boardSize int, blue, pink agent.Agent) *Engine {
	return &Engine{
		State: game.NewGame(boardSize),
		Agents: map[game.Player]agent.Agent{
			game.Blue: blue,
			game.Pink: pink,
		},
	}
}

// Run plays until a bridge is completed, the agents stall, or the turn cap
// is hit. It returns the winner (None on a stall or cap) and per-move
// search metrics.
func (e *Engine) Run() (game.Player, []MoveMetric, error) {
	log.Info().Str("player", e.State.Player().String()).Msg("game starting")

	var metrics []MoveMetric
	for turn := 1; e.State.Winner() == game.None && turn <= MaxTurns; turn++ {
		player := e.State.Player()

		move, result, err := e.Agents[player].FindMove(e.State)
		if err != nil {
			if errors.Is(err, searcher.ErrNoLegalMoves) {
				// Congested board with no ruling from the rules engine:
				// surface it and stop.
				log.Warn().Str("player", player.String()).Int("turn", turn).
					Msg("no legal moves, game stalled")
				return game.None, metrics, nil
			}
			return game.None, metrics, fmt.Errorf("agent %s failed: %w", player, err)
		}

		if err := e.State.Apply(move); err != nil {
			return game.None, metrics, fmt.Errorf("agent %s produced an illegal move: %w", player, err)
		}

		metrics = append(metrics, MoveMetric{Step: turn, Player: player, Result: result})
		log.Debug().Int("turn", turn).Str("player", player.String()).
			Int("simulations", result.Simulations).Stringer("move", move).Msg("move played")
	}

	winner := e.State.Winner()
	log.Info().Str("winner", winner.String()).Int("moves", len(metrics)).Msg("game over")
	return winner, metrics, nil
}
