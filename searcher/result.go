package searcher

import (
	"cmp"
	"errors"
	"slices"
	"time"

	"klondike/experiments/metrics"
	"klondike/game"

	"github.com/rs/zerolog/log"
)

var ErrEmptyCandidateSet = errors.New("no candidate moves")

// Result is the outcome of one search. Win rates are percentages; a child
// without visits counts as 0.
type Result struct {
	Root     *Node
	Children []*Node // In legal move order
	Moves    []game.Move

	Best  *Node
	Worst *Node

	Wins         int // Over all rollouts
	Visits       int
	WinRate      float64
	BestWinRate  float64
	WorstWinRate float64
	BestMove     *game.Move

	Metric metrics.SearchMetric
}

// aggregate picks the best and worst children; ties go to the latest move.
func aggregate(root *Node, children []*Node, moves []game.Move, metric metrics.SearchMetric) *Result {
	result := &Result{
		Root:     root,
		Children: children,
		Moves:    moves,
		Wins:     root.wins,
		Visits:   root.visits,
		WinRate:  root.rate(),
		Metric:   metric,
	}
	if len(children) == 0 {
		return result
	}

	best, worst := children[0], children[0]
	for _, child := range children[1:] {
		if child.rate() >= best.rate() {
			best = child
		}
		if child.rate() <= worst.rate() {
			worst = child
		}
	}
	result.Best, result.Worst = best, worst
	result.BestWinRate, result.WorstWinRate = best.rate(), worst.rate()
	result.BestMove = best.Move
	return result
}

func (r *Result) HasBestMove() bool {
	return r != nil && r.BestMove != nil
}

// Winnable reports whether every candidate won all its rollouts, in which
// case any move keeps the game won.
func (r *Result) Winnable() bool {
	return r.HasBestMove() && r.WorstWinRate == 100
}

// Ranked returns the children by decreasing win rate, stable in move order.
func (r *Result) Ranked() []*Node {
	ranked := slices.Clone(r.Children)
	slices.SortStableFunc(ranked, func(a, b *Node) int {
		return cmp.Compare(b.rate(), a.rate())
	})
	return ranked
}

func (r *Result) log(selector string, elapsed time.Duration) {
	event := log.Debug().
		Str("selector", selector).
		Int("candidates", len(r.Children)).
		Int("visits", r.Visits).
		Float64("win_rate", r.WinRate).
		Dur("elapsed", elapsed)
	if r.HasBestMove() {
		event = event.Str("best", r.BestMove.Name).
			Float64("best_rate", r.BestWinRate).
			Float64("worst_rate", r.WorstWinRate)
	}
	event.Msg("search complete")
}
