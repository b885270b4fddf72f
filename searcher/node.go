package searcher

import (
	"errors"

	"klondike/game"
)

var ErrDegenerateWinRate = errors.New("win rate of a node with no visits")

// Node holds the statistics of the root or of one root move. Nodes are only
// mutated by the goroutine reducing rollout outcomes.
type Node struct {
	ID   game.StateHash
	Move *game.Move // nil for the root

	visits  int
	wins    int
	pending int // virtual losses of rollouts in flight
}

func newNode(id game.StateHash, move *game.Move) *Node {
	return &Node{ID: id, Move: move}
}

func (n *Node) Visits() int {
	return n.visits
}

func (n *Node) Wins() int {
	return n.wins
}

// WinRate is the percentage of won rollouts, in [0, 100]. A node without
// visits has no defined rate; it reports 0 with ErrDegenerateWinRate.
func (n *Node) WinRate() (float64, error) {
	if n.visits == 0 {
		return 0, ErrDegenerateWinRate
	}
	return 100 * float64(n.wins) / float64(n.visits), nil
}

// rate is WinRate with the degenerate case folded into the sentinel 0.
func (n *Node) rate() float64 {
	r, _ := n.WinRate()
	return r
}

func (n *Node) backup(won bool) {
	n.visits++
	if won {
		n.wins++
	}
}

// applyLoss counts an in-flight rollout as a lost visit until it is backed up.
func (n *Node) applyLoss() {
	n.pending++
}

func (n *Node) reverseLoss() {
	n.pending--
}

func (n *Node) score(policy ucb1) float64 {
	return policy.evaluate(float64(n.wins), float64(n.visits+n.pending))
}

func (n *Node) String() string {
	if n.Move == nil {
		return "root"
	}
	return n.Move.Name
}
