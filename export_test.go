package afkmc2

// Test-only bridges exposing private kernels to the external afkmc2_test
// package, so white-box properties (proposal invariants, acceptance
// conventions, chain behavior) stay verifiable without widening the
// production API.

// TargetWeightForTest exposes targetWeight.
var TargetWeightForTest = targetWeight

// AcceptanceForTest exposes acceptance.
var AcceptanceForTest = acceptance

// BuildProposalForTest builds the proposal from d0 and returns its
// probability vector and cumulative index.
func BuildProposalForTest(d0 []float64, mixture float64) (prob, cum []float64) {
	q := buildProposal(d0, mixture)

	return q.prob, q.cum
}

// SampleProposalForTest draws count indices from the proposal built over
// d0 using a deterministic stream.
func SampleProposalForTest(d0 []float64, mixture float64, seed int64, count int) []int {
	q := buildProposal(d0, mixture)
	rng := rngFromSeed(seed)
	out := make([]int, count)
	for i := range out {
		out[i] = q.sample(rng)
	}

	return out
}

// RunChainForTest runs one Metropolis-Hastings chain with a proposal built
// over d0 and the given target weights.
func RunChainForTest(d0, minDist []float64, mixture float64, m int, seed int64) (int, error) {
	q := buildProposal(d0, mixture)

	return runChain(q, minDist, m, rngFromSeed(seed))
}
