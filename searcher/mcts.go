package searcher

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"klondike/experiments/metrics"
	"klondike/game"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

// Selector ranks the legal moves of a board by estimated chance of winning.
// A selector runs one search at a time.
type Selector interface {
	Search(ctx context.Context, board *game.Board) (*Result, error)
}

const (
	FlatName = "flat"
	UCB1Name = "ucb1"
)

var ErrUnknownSelector = errors.New("unknown selector")

// New returns the selector registered under name.
func New(name string, options ...Option) (Selector, error) {
	switch name {
	case FlatName:
		return NewFlat(options...), nil
	case UCB1Name:
		return NewUCB1(options...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSelector, name)
}

type Option func(s *settings)

type settings struct {
	goroutines  int
	samples     int // Per root move
	exploration float64
	cutoff      int
	seed        uint64
	seeded      bool
	metrics     metrics.Collector
}

func WithGoroutines(goroutines int) Option {
	return func(s *settings) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithSamplesPerMove(samples int) Option {
	return func(s *settings) {
		if samples > 0 {
			s.samples = samples
		}
	}
}

func WithExploration(c float64) Option {
	return func(s *settings) {
		if c > 0 {
			s.exploration = c
		}
	}
}

func WithCutoff(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.cutoff = depth
		}
	}
}

// WithSeed makes every search reproducible: the same seed and board always
// give the same Result. Flat results do not depend on the number of
// goroutines either; UCB1 batches do.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
		s.seeded = true
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}

func newSettings(samples int, options []Option) settings {
	s := settings{ // Default values
		goroutines:  1,
		samples:     samples,
		exploration: Exploration,
		cutoff:      MaxCutoff,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

func (s *settings) newRand() *rand.Rand {
	seed := s.seed
	if !s.seeded {
		seed = frand.Uint64n(math.MaxUint64)
	}
	return rand.New(rand.NewSource(seed))
}

// expand creates the root, one child per move, and the board each child's
// rollouts start from.
func expand(board *game.Board, moves []game.Move) (*Node, []*Node, []*game.Board) {
	root := newNode(board.Hash(), nil)
	children := make([]*Node, len(moves))
	boards := make([]*game.Board, len(moves))
	for i := range moves {
		boards[i] = game.ApplyAndReveal(board, moves[i])
		children[i] = newNode(boards[i].HashWith(moves[i].Name), &moves[i])
	}
	return root, children, boards
}

type sample struct {
	arm  int
	seed uint64
}

type outcome struct {
	arm int
	won bool
	cut bool
}

// playout rolls out every sample and hands each outcome to reduce on the
// calling goroutine, which is the only place node counters change. Each
// rollout is seeded by its sample, so outcomes do not depend on scheduling.
func (s *settings) playout(ctx context.Context, boards []*game.Board, samples []sample, reduce func(outcome)) error {
	if s.goroutines <= 1 || len(samples) == 1 {
		rng := rand.New(rand.NewSource(0))
		for _, smp := range samples {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng.Seed(smp.seed)
			won, cut := rollout(boards[smp.arm], rng, s.cutoff)
			s.reduce(reduce, outcome{arm: smp.arm, won: won, cut: cut})
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan sample)
	results := make(chan outcome)

	g.Go(func() error {
		defer close(jobs)
		for _, smp := range samples {
			select {
			case jobs <- smp:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var workers sync.WaitGroup
	for i := 0; i < min(s.goroutines, len(samples)); i++ {
		workers.Add(1)
		g.Go(func() error {
			defer workers.Done()
			rng := rand.New(rand.NewSource(0))
			for smp := range jobs {
				rng.Seed(smp.seed)
				won, cut := rollout(boards[smp.arm], rng, s.cutoff)
				select {
				case results <- outcome{arm: smp.arm, won: won, cut: cut}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		workers.Wait()
		close(results)
	}()

	for out := range results {
		s.reduce(reduce, out)
	}
	return g.Wait()
}

func (s *settings) reduce(reduce func(outcome), out outcome) {
	reduce(out)
	s.metrics.AddEpisode()
	if out.won {
		s.metrics.AddWin()
	}
	if out.cut {
		s.metrics.AddCutoff()
	} else {
		s.metrics.AddFullPlayout()
	}
}
