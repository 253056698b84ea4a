package afkmc2

import "gonum.org/v1/gonum/mat"

// Seed - AFK-MC² seeding for K-Means.
//
// Description:
//
//	Seed picks k initial cluster centers from points. The first center is
//	drawn uniformly at random; every later center is selected by a
//	Metropolis-Hastings chain of opts.ChainLength steps over a proposal
//	distribution built once from the first center. The chain's target is
//	the exact k-means++ weighting: each point's squared distance to its
//	nearest already-chosen center.
//
// Algorithm outline:
//  1. Validate dataset, k, and options.
//  2. Draw the first center uniformly among the n points.
//  3. Build the proposal q[i] = Mixture·d0[i]/Σd0 + (1−Mixture)/n once.
//  4. Initialize minDist[i] = d0[i].
//  5. For each remaining center: run the chain against minDist, append
//     the returned index, then fold the new center's distances into
//     minDist (elementwise minimum - never recomputed from scratch).
//  6. Return the chosen coordinates (copies) in selection order.
//
// The run is fully deterministic for a fixed Options.Seed or Options.Rand
// and consumes no entropy beyond that source. k==1 returns the uniform
// pick with no proposal build and no chain execution.
//
// Errors:
//   - ErrEmptyDataset       - points is empty.
//   - ErrDimensionMismatch  - rows of differing or zero length.
//   - ErrInvalidSeedCount   - k < 1 or k > n.
//   - ErrInvalidChainLength - opts.ChainLength <= 0.
//   - ErrInvalidMixture     - opts.Mixture outside [0, 1).
//
// Complexity: O(n·d) setup + O(k·(m·log n + n·d)) selection.
func Seed(points [][]float64, k int, opts Options) (Result, error) {
	ds, err := newDataset(points)
	if err != nil {
		return Result{}, err
	}

	return ds.seed(k, opts)
}

// SeedMatrix is Seed for a gonum matrix: rows are points, columns are
// features. The matrix is read once and never mutated. Errors and
// semantics match Seed.
func SeedMatrix(data mat.Matrix, k int, opts Options) (Result, error) {
	if data == nil {
		return Result{}, ErrEmptyDataset
	}
	n, d := data.Dims()
	if n == 0 {
		return Result{}, ErrEmptyDataset
	}
	if d == 0 {
		return Result{}, ErrDimensionMismatch
	}

	ds := &dataset{
		n:     n,
		d:     d,
		data:  make([]float64, n*d),
		norms: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		var norm float64
		base := i * d
		for j := 0; j < d; j++ {
			v := data.At(i, j)
			ds.data[base+j] = v
			norm += v * v
		}
		ds.norms[i] = norm
	}

	return ds.seed(k, opts)
}

// seed drives the seeding run over a validated dataset.
func (ds *dataset) seed(k int, opts Options) (Result, error) {
	if k < 1 || k > ds.n {
		return Result{}, ErrInvalidSeedCount
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	rng := opts.rng()

	// k is known upfront: fill a fixed-capacity sequence by index.
	indices := make([]int, k)
	indices[0] = rng.Intn(ds.n)

	if k > 1 {
		// minDist[i] holds the squared distance to the nearest chosen
		// center; it starts as the distances to the first center, which
		// are also the raw material of the proposal.
		minDist := make([]float64, ds.n)
		ds.squaredDistancesTo(indices[0], minDist)
		q := buildProposal(minDist, opts.Mixture)

		scratch := make([]float64, ds.n)
		for i := 1; i < k; i++ {
			idx, err := runChain(q, minDist, opts.ChainLength, rng)
			if err != nil {
				return Result{}, err
			}
			indices[i] = idx

			ds.squaredDistancesTo(idx, scratch)
			for j, d2 := range scratch {
				if d2 < minDist[j] {
					minDist[j] = d2
				}
			}
		}
	}

	centers := make([][]float64, k)
	for i, idx := range indices {
		row := make([]float64, ds.d)
		copy(row, ds.row(idx))
		centers[i] = row
	}

	return Result{Centers: centers, Indices: indices}, nil
}
