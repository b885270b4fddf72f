package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCB1Evaluate(t *testing.T) {
	t.Run("computing UCB1 value", func(t *testing.T) {
		policy := newUCB1(1.41, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + 1.41*math.Sqrt(math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + c*sqrt(ln(N)/n)")
	})

	t.Run("unvisited arm", func(t *testing.T) {
		policy := newUCB1(1.41, 100)
		require.True(t, math.IsInf(policy.evaluate(0, 0), 1), "Unvisited arm should score +Inf")
	})

	t.Run("no iterations yet", func(t *testing.T) {
		policy := newUCB1(1.41, 0)
		require.InDelta(t, 0.5, policy.evaluate(1, 2), 0.0001, "ln(N) is taken as 0 when N is 0")
	})

	t.Run("exploration term increases with iterations", func(t *testing.T) {
		score1 := newUCB1(1.41, 100).evaluate(5, 10)
		score2 := newUCB1(1.41, 1000).evaluate(5, 10)

		require.Greater(t, score2, score1,
			"More iterations should increase exploration term")
	})

	t.Run("exploration term decreases with arm visits", func(t *testing.T) {
		policy := newUCB1(1.41, 100)

		require.Greater(t, policy.evaluate(5, 10), policy.evaluate(5, 20),
			"More arm visits should decrease exploration term")
	})

	t.Run("exploitation term increases with wins", func(t *testing.T) {
		policy := newUCB1(1.41, 100)

		require.Greater(t, policy.evaluate(10, 10), policy.evaluate(5, 10),
			"More wins should increase exploitation term")
	})
}
