// Package afkmc2 defines options, the result type, and sentinel errors
// for AFK-MC² seeding.
package afkmc2

import (
	"errors"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for seeding operations. All public entry points return
// these sentinels; tests match them via errors.Is.
var (
	// ErrEmptyDataset indicates the input dataset has no points.
	ErrEmptyDataset = errors.New("afkmc2: dataset must contain at least one point")
	// ErrDimensionMismatch indicates points of differing or zero dimensionality.
	ErrDimensionMismatch = errors.New("afkmc2: all points must share one positive dimension")
	// ErrInvalidSeedCount indicates a requested seed count outside 1..n.
	ErrInvalidSeedCount = errors.New("afkmc2: seed count k must satisfy 1 <= k <= n")
	// ErrInvalidChainLength indicates a non-positive Markov chain length.
	ErrInvalidChainLength = errors.New("afkmc2: chain length must be positive")
	// ErrInvalidMixture indicates a proposal mixture outside [0, 1).
	ErrInvalidMixture = errors.New("afkmc2: proposal mixture must lie in [0, 1)")
)

// Defaults for Options, matching the published algorithm.
const (
	// DefaultChainLength is the number of Metropolis-Hastings candidate
	// steps per emitted center. Larger values trade runtime for closeness
	// to the exact k-means++ distribution.
	DefaultChainLength = 200

	// DefaultMixture is the fraction of proposal mass assigned to the
	// distance-weighted term; the remainder is a uniform floor. The floor
	// bounds the chain's worst-case rejection rate independently of the
	// dataset size, so Mixture must stay strictly below 1.
	DefaultMixture = 0.5
)

// Options contains tunable parameters for one seeding run.
type Options struct {
	// ChainLength is the Metropolis-Hastings chain length m (must be > 0).
	ChainLength int

	// Mixture is the distance-weighted fraction of the proposal in [0, 1).
	// Mixture=0 yields a uniform proposal (the MC² variant without the
	// assumption-free correction); the acceptance q-terms then cancel.
	Mixture float64

	// Seed selects the deterministic random stream when Rand is nil.
	// Seed==0 maps to a fixed default seed, so the zero value is still
	// reproducible.
	Seed int64

	// Rand, when non-nil, is used as the randomness source and overrides
	// Seed. Not goroutine-safe: do not share one *rand.Rand across
	// concurrent seeding runs.
	Rand *rand.Rand
}

// DefaultOptions returns Options with ChainLength=DefaultChainLength,
// Mixture=DefaultMixture, and the default deterministic random stream.
func DefaultOptions() Options {
	return Options{
		ChainLength: DefaultChainLength,
		Mixture:     DefaultMixture,
	}
}

// validate checks option values shared by all entry points.
func (o Options) validate() error {
	if o.ChainLength <= 0 {
		return ErrInvalidChainLength
	}
	if o.Mixture < 0 || o.Mixture >= 1 {
		return ErrInvalidMixture
	}

	return nil
}

// Result holds the outcome of one seeding run.
type Result struct {
	// Centers are the k chosen seed coordinates in selection order:
	// Centers[0] is the uniformly drawn first center, the rest follow in
	// chain-selection order. Rows are copies; mutating them does not
	// touch the caller's dataset.
	Centers [][]float64

	// Indices are the dataset row indices of the chosen centers, aligned
	// with Centers. An index may repeat only when its point coincides
	// with an already-chosen center (its target weight is zero).
	Indices []int
}

// Dense returns the seeds as a k×d gonum matrix, suitable as the
// initial-centers argument of a K-Means implementation.
func (r Result) Dense() *mat.Dense {
	k := len(r.Centers)
	if k == 0 {
		return &mat.Dense{}
	}
	d := len(r.Centers[0])
	out := mat.NewDense(k, d, nil)
	for i, row := range r.Centers {
		out.SetRow(i, row)
	}

	return out
}
