package afkmc2

import "math/rand"

// chainState is the transient Metropolis-Hastings position: the current
// point index with its target weight and proposal probability. It lives
// only for the duration of one runChain call.
type chainState struct {
	idx int     // current point index
	p   float64 // target weight: squared distance to the nearest chosen center
	q   float64 // proposal probability of idx
}

// acceptance returns the Metropolis-Hastings acceptance ratio
//
//	a = (p(y)·q(x)) / (p(x)·q(y))
//
// with the zero-weight conventions:
//   - p(x)==0 ⇒ a=1: always move away from an already-covered point,
//     including the degenerate case where p(y)==0 as well;
//   - p(y)==0 and p(x)>0 ⇒ a=0: never move onto a covered point.
//
// Proposal probabilities are strictly positive (uniform floor), so the
// division is safe whenever p(x) > 0.
func acceptance(px, qx, py, qy float64) float64 {
	switch {
	case px == 0:
		return 1
	case py == 0:
		return 0
	default:
		return (py * qx) / (px * qy)
	}
}

// runChain selects one new center index via a fixed-length
// Metropolis-Hastings chain whose stationary distribution is the true
// k-means++ weighting (proportional to minDist), while only ever drawing
// candidates from the cheap proposal q.
//
// The initial position is drawn from q, followed by exactly m candidate
// steps; a candidate is accepted when u < a for u uniform in [0, 1), so
// a=0 never moves and a≥1 always does. Fully deterministic given rng.
//
// Errors: ErrInvalidChainLength when m <= 0.
//
// Complexity: O(m·log n) time, O(1) extra space.
func runChain(q *proposal, minDist []float64, m int, rng *rand.Rand) (int, error) {
	if m <= 0 {
		return 0, ErrInvalidChainLength
	}

	x := q.sample(rng)
	cur := chainState{idx: x, p: targetWeight(minDist[x]), q: q.prob[x]}

	for step := 0; step < m; step++ {
		y := q.sample(rng)
		cand := chainState{idx: y, p: targetWeight(minDist[y]), q: q.prob[y]}

		if rng.Float64() < acceptance(cur.p, cur.q, cand.p, cand.q) {
			cur = cand
		}
	}

	return cur.idx, nil
}
