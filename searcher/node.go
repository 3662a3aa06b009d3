package searcher

import (
	"math"

	"wataruto/game"
)

// node is one search tree position. The tree owns children strictly
// downward; parent is a non-owning back-reference used for statistics
// updates only. A node holds the move delta that produced it, never a
// board snapshot: the state is replayed along the selection path.
type node struct {
	parent   *node
	move     game.Move   // move that produced this node (zero at root)
	actor    game.Player // player who made move (None at root)
	player   game.Player // player to move at this node
	terminal bool

	moves    []game.Move // legal moves at this node, expanded in order
	children []*node     // children[i] was reached by moves[i]

	visits int
	wins   float64
}

func newNode(parent *node, state game.State, move game.Move, actor game.Player) *node {
	n := &node{
		parent: parent,
		move:   move,
		actor:  actor,
		player: state.Player(),
	}
	if state.Winner() != game.None {
		n.terminal = true
	} else {
		n.moves = state.LegalMoves()
	}
	return n
}

// fullyExpanded reports whether every legal move has a child. Untried moves
// always take priority over descending further.
func (n *node) fullyExpanded() bool {
	return len(n.children) == len(n.moves)
}

// selectChild returns the index of the child maximizing UCB1.
func (n *node) selectChild(exploration float64) int {
	normalizer := exploration * exploration * math.Log(float64(n.visits))

	best := 0
	bestScore := math.Inf(-1)
	for i, child := range n.children {
		score := ucb1(child.wins, child.visits, normalizer)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

// expand instantiates the next untried move as a child and returns it with
// the child's state.
func (n *node) expand(state game.State) (*node, game.State) {
	move := n.moves[len(n.children)]
	childState := state.Play(move)
	child := newNode(n, childState, move, n.player)
	n.children = append(n.children, child)
	return child, childState
}

// backup propagates a rollout result to the root: every node on the path
// gains a visit, and a win is credited where the node's acting player
// matches the rollout winner. A drawn rollout is worth half a win to both
// perspectives.
func (n *node) backup(winner game.Player) {
	for node := n; node != nil; node = node.parent {
		node.visits++
		switch {
		case winner == game.None:
			node.wins += Draw
		case winner == node.actor:
			node.wins += Win
		}
	}
}

// mostVisited returns the index of the child with the highest visit count
// (robust-child rule), or -1 if the node has no children.
func (n *node) mostVisited() int {
	best := -1
	bestVisits := -1
	for i, child := range n.children {
		if child.visits > bestVisits {
			bestVisits = child.visits
			best = i
		}
	}
	return best
}

func ucb1(wins float64, visits int, normalizer float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}

	return wins/float64(visits) + math.Sqrt(normalizer/float64(visits))
}
