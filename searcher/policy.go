package searcher

import "math"

// ucb1 scores bandit arms: q/n + c*sqrt(ln(N)/n), with N the iterations so
// far and q the wins of an arm visited n times.
type ucb1 struct {
	c   float64
	lnN float64
}

func newUCB1(c float64, N int) ucb1 {
	lnN := 0.0
	if N > 0 {
		lnN = math.Log(float64(N))
	}
	return ucb1{c: c, lnN: lnN}
}

func (u ucb1) evaluate(q float64, n float64) float64 {
	// Unvisited arms are always tried first
	if n == 0 {
		return math.Inf(1)
	}
	return q/n + u.c*math.Sqrt(u.lnN/n)
}
