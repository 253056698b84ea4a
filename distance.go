package afkmc2

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// SquaredDistances returns the squared Euclidean distance from every point
// to ref. Distances are clamped at zero so a point coincident with ref
// reports exactly 0.0, never a small negative value from floating-point
// cancellation.
//
// Errors: ErrDimensionMismatch when ref is empty or any point's length
// differs from len(ref).
//
// Complexity: O(n·d) time, O(n) space for the returned slice.
func SquaredDistances(points [][]float64, ref []float64) ([]float64, error) {
	d := len(ref)
	if d == 0 {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, len(points))
	for i, p := range points {
		if len(p) != d {
			return nil, ErrDimensionMismatch
		}
		var sum float64
		for j, v := range p {
			diff := v - ref[j]
			sum += diff * diff
		}
		out[i] = targetWeight(sum)
	}

	return out, nil
}

// targetWeight is the unnormalized k-means++ target weight of a point:
// its squared distance to the nearest already-chosen center, clamped at
// zero. Points coincident with a center must weigh exactly 0.0.
func targetWeight(d2 float64) float64 {
	if d2 <= 0 {
		return 0
	}

	return d2
}

// dataset is the immutable row-major view of the caller's points, flattened
// for BLAS compatibility, with per-row squared norms precomputed once.
type dataset struct {
	n, d  int
	data  []float64 // n×d, row-major
	norms []float64 // ‖x_i‖² per row
}

// newDataset validates points and flattens them into a dataset.
//
// Errors: ErrEmptyDataset when n==0; ErrDimensionMismatch when rows have
// differing lengths or zero dimension.
//
// Complexity: O(n·d).
func newDataset(points [][]float64) (*dataset, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrEmptyDataset
	}
	d := len(points[0])
	if d == 0 {
		return nil, ErrDimensionMismatch
	}

	ds := &dataset{
		n:     n,
		d:     d,
		data:  make([]float64, n*d),
		norms: make([]float64, n),
	}
	for i, p := range points {
		if len(p) != d {
			return nil, ErrDimensionMismatch
		}
		var norm float64
		base := i * d
		for j, v := range p {
			ds.data[base+j] = v
			norm += v * v
		}
		ds.norms[i] = norm
	}

	return ds, nil
}

// row returns the i-th point as a view into the flattened data.
func (ds *dataset) row(i int) []float64 {
	return ds.data[i*ds.d : (i+1)*ds.d]
}

// squaredDistancesTo writes into dst the squared Euclidean distance from
// every point to the point at index center, using one BLAS GEMV:
//
//	dist[i] = ‖x_i‖² + ‖c‖² − 2·(x_i·c)
//
// Negative results from cancellation are clamped to exactly zero.
// len(dst) must equal ds.n.
//
// Complexity: O(n·d).
func (ds *dataset) squaredDistancesTo(center int, dst []float64) {
	// dst = X · c via GEMV; the norms turn dot products into distances.
	blas64.Gemv(
		blas.NoTrans,
		1,
		blas64.General{Rows: ds.n, Cols: ds.d, Stride: ds.d, Data: ds.data},
		blas64.Vector{N: ds.d, Inc: 1, Data: ds.row(center)},
		0,
		blas64.Vector{N: ds.n, Inc: 1, Data: dst},
	)

	cn := ds.norms[center]
	for i, dot := range dst {
		dst[i] = targetWeight(ds.norms[i] + cn - 2*dot)
	}
}
