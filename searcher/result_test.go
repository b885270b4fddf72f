package searcher

import (
	"testing"

	"klondike/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func nodeWith(wins, visits int) *Node {
	n := newNode(0, nil)
	for i := 0; i < visits; i++ {
		n.backup(i < wins)
	}
	return n
}

func TestAggregate(t *testing.T) {
	root := newNode(0, nil)
	children := []*Node{
		nodeWith(1, 4), // 25%
		nodeWith(3, 4), // 75%
		nodeWith(0, 0), // degenerate, reads as 0
		nodeWith(3, 4), // 75%, tied with the second
		nodeWith(0, 2), // 0%, tied with the third
	}
	for iter := 0; iter < 12; iter++ {
		root.backup(false)
	}

	result := aggregate(root, children, nil, metrics.SearchMetric{})
	require.Same(t, children[3], result.Best, "Last of the tied best nodes")
	require.Same(t, children[4], result.Worst, "Last of the tied worst nodes")
	require.Equal(t, 75.0, result.BestWinRate)
	require.Equal(t, 0.0, result.WorstWinRate)

	ranked := result.Ranked()
	require.Len(t, ranked, 5)
	for i, want := range []*Node{children[1], children[3], children[0], children[2], children[4]} {
		require.Same(t, want, ranked[i], "Rank %d", i)
	}
	require.Same(t, children[0], result.Children[0], "Ranking leaves the children in move order")
}

func TestResultWithoutMoves(t *testing.T) {
	var missing *Result
	require.False(t, missing.HasBestMove())
	require.False(t, missing.Winnable())

	result := aggregate(newNode(0, nil), nil, nil, metrics.SearchMetric{})
	require.False(t, result.HasBestMove())
	require.Nil(t, result.Best)
	require.Empty(t, result.Ranked())
}
