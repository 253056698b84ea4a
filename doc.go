// Package afkmc2 selects initial cluster centers ("seeds") for K-Means
// using assumption-free Markov chain Monte Carlo seeding (AFK-MC²),
// as introduced by Bachem, Lucic, Hassani and Krause (NIPS 2016).
//
// 🚀 What is AFK-MC²?
//
//	Exact k-means++ seeding draws every new center from a weighted
//	distribution over the full dataset, which costs O(n·d) per center.
//	AFK-MC² replaces each exact draw with a short Metropolis-Hastings
//	chain over a proposal distribution that is precomputed once, with
//	seeding quality provably close to exact k-means++.
//
// ✨ Key features:
//   - one O(n·d) pass builds the proposal; every later draw is O(log n)
//   - uniform floor term keeps the chain irreducible on any dataset
//   - explicit randomness: pass a Seed or your own *rand.Rand, never
//     ambient process state - identical inputs reproduce identical seeds
//   - vectorized distance kernels via gonum BLAS
//   - Mixture=0 degenerates to the uniform-proposal MC² variant
//
// ⚙️ Usage:
//
//	import "github.com/BigRLab/afkmc2"
//
//	opts := afkmc2.DefaultOptions() // ChainLength=200, Mixture=0.5
//	opts.Seed = 42                  // reproducible run
//
//	res, err := afkmc2.Seed(points, 8, opts)
//	if err != nil {
//	  // handle ErrEmptyDataset, ErrDimensionMismatch,
//	  // ErrInvalidSeedCount, ErrInvalidChainLength, ErrInvalidMixture
//	}
//	centers := res.Centers  // 8 rows, selection order
//	init := res.Dense()     // *mat.Dense, ready as a K-Means initializer
//
// The package only picks seeds; it does not run Lloyd's iterations.
// Hand Result.Dense() (or Result.Centers) to the clustering routine of
// your choice as its initial centers.
//
// Performance:
//
//   - Time:   O(n·d) setup + O(m·k) chain steps + O(k·n·d) distance updates
//   - Memory: O(n) beyond the flattened dataset copy
//
// See example_test.go for runnable examples.
package afkmc2
