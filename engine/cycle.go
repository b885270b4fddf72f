package engine

import (
	"context"
	"errors"
	"fmt"

	"klondike/agent"
	"klondike/game"
	"klondike/searcher"
)

type Phase int

const (
	AwaitingSnapshot Phase = iota
	Searching
	AwaitingExecution
	Won
	Lost
	Resigned // Search found no winning rollout
	Stalled  // Search found no candidate on a board that is not lost
)

var phaseNames = []string{"awaiting-snapshot", "searching", "awaiting-execution", "won", "lost", "resigned", "stalled"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

func (p Phase) Terminal() bool {
	return p >= Won
}

var ErrWrongPhase = errors.New("operation not allowed in current phase")

type ControllerOption func(c *Controller)

// WithResign sets whether the game ends as Resigned once a search reports
// that none of its rollouts was won. Controllers resign by default.
func WithResign(resign bool) ControllerOption {
	return func(c *Controller) {
		c.resign = resign
	}
}

// Controller is the decision cycle: it turns each board snapshot into one
// move and waits for the move to be executed before accepting the next
// snapshot. Once a search finds every candidate winning all its rollouts,
// later decisions skip search and use the shortcut agent until the game ends.
// A Controller is driven by a single goroutine.
type Controller struct {
	search   agent.Agent
	shortcut agent.Agent
	resign   bool

	phase    Phase
	pending  *game.Move
	last     *searcher.Result
	winnable bool
	earlyWin bool
}

func NewController(search, shortcut agent.Agent, options ...ControllerOption) *Controller {
	if search == nil || shortcut == nil {
		panic("controller needs a search and a shortcut agent")
	}
	c := &Controller{search: search, shortcut: shortcut, resign: true}
	for _, option := range options {
		option(c)
	}
	return c
}

// Observe decides the move for a new snapshot. Invalid boards are rejected
// before any search and leave the phase unchanged, as does a failed or
// cancelled search.
func (c *Controller) Observe(ctx context.Context, board *game.Board) (agent.Decision, error) {
	if c.phase != AwaitingSnapshot {
		return agent.Decision{}, fmt.Errorf("%w: observe while %s", ErrWrongPhase, c.phase)
	}
	if err := game.Validate(board); err != nil {
		return agent.Decision{}, err
	}

	// Won takes precedence over lost
	c.earlyWin = game.IsEarlyWin(board)
	if game.IsWon(board) {
		c.phase = Won
		return agent.Decision{}, nil
	}
	if game.IsLost(board) {
		c.phase = Lost
		return agent.Decision{}, nil
	}

	c.phase = Searching
	var decision agent.Decision
	var err error
	if c.winnable {
		decision, err = c.shortcut.FindMove(ctx, board)
	} else {
		decision, err = c.search.FindMove(ctx, board)
	}
	if err != nil {
		c.phase = AwaitingSnapshot
		return agent.Decision{}, err
	}
	if decision.Result != nil {
		c.last = decision.Result
		c.winnable = decision.Result.Winnable()
	}

	switch {
	case decision.Move == nil:
		c.phase = Stalled
	case c.resign && decision.Result != nil && decision.Result.Wins == 0:
		c.phase = Resigned
	default:
		c.pending = decision.Move
		c.phase = AwaitingExecution
	}
	return decision, nil
}

// Confirm reports that the pending move was executed.
func (c *Controller) Confirm() error {
	if c.phase != AwaitingExecution {
		return fmt.Errorf("%w: confirm while %s", ErrWrongPhase, c.phase)
	}
	c.pending = nil
	c.phase = AwaitingSnapshot
	return nil
}

func (c *Controller) Phase() Phase {
	return c.phase
}

// Pending is the move awaiting execution, nil outside AwaitingExecution.
func (c *Controller) Pending() *game.Move {
	return c.pending
}

// Last is the most recent search result; shortcut decisions do not replace it.
func (c *Controller) Last() *searcher.Result {
	return c.last
}

// Winnable reports whether searches are being skipped.
func (c *Controller) Winnable() bool {
	return c.winnable
}

// EarlyWin reports whether the last observed board had every tableau card
// face-up.
func (c *Controller) EarlyWin() bool {
	return c.earlyWin
}
