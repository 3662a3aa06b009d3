package searcher

import (
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"wataruto/game"
)

// ErrNoLegalMoves is returned when Search is called on a position with no
// legal moves. The engine makes no stalemate ruling; the caller decides.
var ErrNoLegalMoves = errors.New("no legal moves")

type Option func(m *MCTS)

// MCTS is a time-bounded best-first searcher with root-level short-circuits
// for immediate wins and immediate threats. Search runs single-threaded;
// every simulation plays over its own deep clone of the caller's state.
type MCTS struct {
	duration         time.Duration
	maxSimulations   int
	exploration      float64
	tactical         bool
	winCheckLimit    int
	threatCheckLimit int
	maxRolloutPlies  int
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration >= 0 {
			m.duration = duration
		}
	}
}

func WithMaxSimulations(simulations int) Option {
	return func(m *MCTS) {
		if simulations > 0 {
			m.maxSimulations = simulations
		}
	}
}

func WithExploration(weight float64) Option {
	return func(m *MCTS) {
		if weight > 0 {
			m.exploration = weight
		}
	}
}

// WithTacticalRollout enables the immediate-win scan at every rollout ply.
// Defensive blocking checks are never run during rollout; they happen once,
// at the root.
func WithTacticalRollout(enabled bool) Option {
	return func(m *MCTS) {
		m.tactical = enabled
	}
}

// WithTacticalCaps bounds the root win scan and threat scan.
func WithTacticalCaps(winCheckLimit, threatCheckLimit int) Option {
	return func(m *MCTS) {
		if winCheckLimit > 0 {
			m.winCheckLimit = winCheckLimit
		}
		if threatCheckLimit > 0 {
			m.threatCheckLimit = threatCheckLimit
		}
	}
}

func WithMaxRolloutPlies(plies int) Option {
	return func(m *MCTS) {
		if plies > 0 {
			m.maxRolloutPlies = plies
		}
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		duration:         10 * time.Second,
		exploration:      DefaultExploration,
		tactical:         true,
		winCheckLimit:    DefaultWinCheckLimit,
		threatCheckLimit: DefaultThreatCheckLimit,
		maxRolloutPlies:  DefaultMaxRolloutPlies,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// NewMCTSFromConfig builds a searcher from a wire-shape configuration.
func NewMCTSFromConfig(cfg Config) *MCTS {
	cfg.applyDefaults()
	return NewMCTS(
		WithDuration(time.Duration(cfg.TimeLimitSeconds*float64(time.Second))),
		WithMaxSimulations(cfg.MaxSimulations),
		WithExploration(cfg.ExplorationWeight),
		WithTacticalRollout(cfg.TacticalRollout),
		WithTacticalCaps(cfg.WinCheckLimit, cfg.ThreatCheckLimit),
		WithMaxRolloutPlies(cfg.MaxRolloutPlies),
	)
}

// Candidate is one ranked root move.
type Candidate struct {
	Move    game.Move `json:"move"`
	Visits  int       `json:"visits"`
	WinRate float64   `json:"winRate"`
}

// Result reports the chosen move and search statistics.
type Result struct {
	Move           game.Move   `json:"move"`
	Simulations    int         `json:"simulations"`
	NodesCreated   int         `json:"nodesCreated"`
	ElapsedSeconds float64     `json:"elapsedSeconds"`
	TopCandidates  []Candidate `json:"topCandidates"`
}

// Search returns the best move found within the time and simulation budget.
// An immediate winning move short-circuits the tree search entirely; an
// immediate opponent threat biases the root move ordering toward a blocking
// move. Interruption by deadline returns the best result accumulated so
// far, and a zero budget still yields a legal move.
func (m *MCTS) Search(state game.State) (Result, error) {
	start := time.Now()

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return Result{}, ErrNoLegalMoves
	}

	// Immediate win: scan a capped prefix of the root moves.
	if win, ok := findImmediateWin(state, moves, m.winCheckLimit); ok {
		return Result{
			Move:           win,
			ElapsedSeconds: time.Since(start).Seconds(),
			NodesCreated:   1,
			TopCandidates: []Candidate{
				{Move: win, Visits: 1, WinRate: 1.0},
			},
		}, nil
	}

	// Immediate threat: bias the root ordering toward a blocking move.
	ordered := make([]game.Move, len(moves))
	copy(ordered, moves)
	if threats := m.findThreats(state); len(threats) > 0 {
		if i, ok := m.findBlockingMove(state, ordered, threats); ok {
			ordered[0], ordered[i] = ordered[i], ordered[0]
		} else {
			log.Debug().Int("threats", len(threats)).
				Msg("opponent threat detected but no blocking move found")
		}
	}

	root := &node{player: state.Player(), moves: ordered}
	nodesCreated := 1
	deadline := start.Add(m.duration)

	simulations := 0
	for {
		if m.maxSimulations > 0 && simulations >= m.maxSimulations {
			break
		}
		if !time.Now().Before(deadline) {
			break
		}
		nodesCreated += m.simulate(root, state)
		simulations++
	}

	result := Result{
		Simulations:   simulations,
		NodesCreated:  nodesCreated,
		TopCandidates: topCandidates(root, DefaultTopCandidates),
	}

	if best := root.mostVisited(); best >= 0 {
		result.Move = root.moves[best]
	} else {
		// Zero budget and no short-circuit: fall back to the first move in
		// root order, which is the blocking move when a threat was found.
		result.Move = ordered[0]
	}
	result.ElapsedSeconds = time.Since(start).Seconds()
	return result, nil
}

// simulate runs one selection-expansion-rollout-backup pass and returns the
// number of nodes created.
func (m *MCTS) simulate(root *node, rootState game.State) int {
	node := root
	state := rootState

	for node.fullyExpanded() && !node.terminal && len(node.children) > 0 {
		i := node.selectChild(m.exploration)
		state = state.Play(node.moves[i])
		node = node.children[i]
	}

	created := 0
	if !node.terminal && !node.fullyExpanded() {
		node, state = node.expand(state)
		created = 1
	}

	winner := m.rollout(state)
	node.backup(winner)
	return created
}

// rollout plays the state to a terminal connectivity result with the
// rollout policy: uniform random, or in tactical mode an immediate-win scan
// at every ply before falling back to random. Rollouts that exhaust the ply
// cap count as draws.
func (m *MCTS) rollout(state game.State) game.Player {
	for ply := 0; ply < m.maxRolloutPlies; ply++ {
		if winner := state.Winner(); winner != game.None {
			return winner
		}
		moves := state.LegalMoves()
		if len(moves) == 0 {
			return game.None
		}

		move, found := game.Move{}, false
		if m.tactical {
			move, found = findImmediateWin(state, moves, m.winCheckLimit)
		}
		if !found {
			move = moves[frand.Intn(len(moves))]
		}
		state = state.Play(move)
	}
	return game.None
}

// findImmediateWin scans up to limit of the given moves for one that makes
// the side to move an instant winner.
func findImmediateWin(state game.State, moves []game.Move, limit int) (game.Move, bool) {
	player := state.Player()
	for i, move := range moves {
		if limit > 0 && i >= limit {
			break
		}
		if state.Play(move).Winner() == player {
			return move, true
		}
	}
	return game.Move{}, false
}

// findThreats returns opponent moves that would win immediately if the
// mover passed, probing up to the configured cap of replies.
func (m *MCTS) findThreats(state game.State) []game.Move {
	opponent := state.Player().Opponent()
	probe := state.NullMove()

	var threats []game.Move
	for i, move := range probe.LegalMoves() {
		if m.threatCheckLimit > 0 && i >= m.threatCheckLimit {
			break
		}
		if probe.Play(move).Winner() == opponent {
			threats = append(threats, move)
		}
	}
	return threats
}

// findBlockingMove returns the index of a mover move whose application
// leaves none of the detected threats winning on recheck.
func (m *MCTS) findBlockingMove(state game.State, moves []game.Move, threats []game.Move) (int, bool) {
	opponent := state.Player().Opponent()

	for i, move := range moves {
		next := state.Play(move)
		if next.Winner() != game.None {
			continue // Already covered by the win scan
		}

		blocked := true
		replies := next.LegalMoves()
		for _, threat := range threats {
			if containsMove(replies, threat) && next.Play(threat).Winner() == opponent {
				blocked = false
				break
			}
		}
		if blocked {
			return i, true
		}
	}
	return 0, false
}

func containsMove(moves []game.Move, target game.Move) bool {
	for _, move := range moves {
		if sameMove(move, target) {
			return true
		}
	}
	return false
}

// sameMove compares player and path, ignoring timestamps.
func sameMove(a, b game.Move) bool {
	if a.Player != b.Player || len(a.Path) != len(b.Path) {
		return false
	}
	for i := range a.Path {
		if a.Path[i] != b.Path[i] {
			return false
		}
	}
	return true
}

func topCandidates(root *node, limit int) []Candidate {
	candidates := make([]Candidate, 0, len(root.children))
	for i, child := range root.children {
		winRate := 0.0
		if child.visits > 0 {
			winRate = child.wins / float64(child.visits)
		}
		candidates = append(candidates, Candidate{
			Move:    root.moves[i],
			Visits:  child.visits,
			WinRate: winRate,
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Visits > candidates[j].Visits
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}
