package metrics

import (
	"time"

	"wataruto/game"
)

// AgentConfig identifies one search configuration under test.
type AgentConfig struct {
	ID              int
	TimeLimit       time.Duration
	MaxSimulations  int
	TacticalRollout bool
}

// GameRecord summarizes one finished matchup game.
type GameRecord struct {
	ID         int
	Agent1     int // AgentConfig.ID playing Blue
	Agent2     int // AgentConfig.ID playing Pink
	Winner     game.Player
	TotalMoves int
	Duration   time.Duration
}

// MoveRecord summarizes one move of a game.
type MoveRecord struct {
	Game           int // GameRecord.ID
	Step           int
	Player         game.Player
	Simulations    int
	Nodes          int
	ElapsedSeconds float64
}
