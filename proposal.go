package afkmc2

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// proposal is the fixed candidate distribution of the Markov chain, built
// once per seeding run from the distances to the first center:
//
//	q[i] = mixture·d0[i]/Σd0 + (1−mixture)/n
//
// The uniform floor keeps every q[i] strictly positive regardless of
// d0[i], which makes the chain irreducible on any dataset. A cumulative
// index supports O(log n) weighted draws.
type proposal struct {
	prob []float64 // normalized per-point probability, all > 0
	cum  []float64 // cumulative sums; cum[n-1] is pinned to 1
}

// buildProposal derives the proposal from d0, the squared distances of all
// points to the first center. mixture must lie in [0, 1); d0 must be
// non-empty with non-negative entries (both enforced by the orchestrator).
//
// When Σd0 == 0 every point coincides with the first center; the distance
// mass is empty and the whole budget falls to the uniform floor, so the
// positivity and sum-to-one invariants still hold.
//
// Complexity: O(n) time and space.
func buildProposal(d0 []float64, mixture float64) *proposal {
	n := len(d0)
	prob := make([]float64, n)

	total := floats.Sum(d0)
	uniform := (1 - mixture) / float64(n)
	if total > 0 {
		scale := mixture / total
		for i, d2 := range d0 {
			prob[i] = d2*scale + uniform
		}
	} else {
		for i := range prob {
			prob[i] = 1 / float64(n)
		}
	}

	// Renormalize against the realized sum so the cumulative index ends at
	// exactly 1 despite rounding in the per-point terms.
	floats.Scale(1/floats.Sum(prob), prob)

	cum := make([]float64, n)
	floats.CumSum(cum, prob)
	cum[n-1] = 1

	return &proposal{prob: prob, cum: cum}
}

// sample draws one point index with probability prob[i].
//
// Complexity: O(log n) per draw.
func (q *proposal) sample(rng *rand.Rand) int {
	// rng.Float64() < 1 == cum[n-1], so the search never runs off the end.
	return sort.SearchFloat64s(q.cum, rng.Float64())
}
