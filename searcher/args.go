package searcher

import "math"

// Hyperparameters for the tactical MCTS

// DefaultExploration is the UCB1 exploration constant C.
var DefaultExploration = math.Sqrt2

// Rewards backed up from a rollout, from the acting player's perspective.
const (
	Win  = 1.0
	Draw = 0.5
	Loss = 0.0
)

// Root-level tactical caps and the rollout ply cap. Empirically chosen
// speed/accuracy trade-offs, exposed through Config rather than hidden.
const (
	DefaultWinCheckLimit    = 30
	DefaultThreatCheckLimit = 10
	DefaultMaxRolloutPlies  = 100
	DefaultTopCandidates    = 5
)
