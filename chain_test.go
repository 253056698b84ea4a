package afkmc2_test

import (
	"testing"

	"github.com/BigRLab/afkmc2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAcceptance_Conventions pins down the Metropolis-Hastings acceptance
// ratio, including both zero-weight conventions.
func TestAcceptance_Conventions(t *testing.T) {
	cases := []struct {
		name           string
		px, qx, py, qy float64
		want           float64
	}{
		{"move off covered point", 0, 0.3, 2, 0.1, 1},
		{"both states covered", 0, 0.3, 0, 0.1, 1},
		{"never onto covered point", 2, 0.3, 0, 0.1, 0},
		{"plain ratio", 1, 0.5, 2, 0.25, 4},
		{"downhill ratio", 4, 0.25, 1, 0.5, 0.125},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := afkmc2.AcceptanceForTest(tc.px, tc.qx, tc.py, tc.qy)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestRunChain_InvalidLength ensures m<=0 is rejected before any draw.
func TestRunChain_InvalidLength(t *testing.T) {
	for _, m := range []int{0, -1, -100} {
		_, err := afkmc2.RunChainForTest([]float64{1, 2}, []float64{1, 2}, 0.5, m, 1)
		assert.ErrorIs(t, err, afkmc2.ErrInvalidChainLength, "m=%d must error", m)
	}
}

// TestRunChain_LeavesCoveredPoint runs many chains on a two-point state
// where point 0 is already a center (weight zero): the chain must settle
// on point 1 - once reached, moving back has acceptance zero.
func TestRunChain_LeavesCoveredPoint(t *testing.T) {
	d0 := []float64{0, 4}      // proposal raw material
	minDist := []float64{0, 4} // point 0 coincides with a chosen center

	for seed := int64(1); seed <= 200; seed++ {
		idx, err := afkmc2.RunChainForTest(d0, minDist, 0.5, 100, seed)
		require.NoError(t, err)
		assert.Equal(t, 1, idx, "seed %d: chain must leave the covered point", seed)
	}
}

// TestRunChain_Deterministic verifies that a fixed stream reproduces the
// same selection.
func TestRunChain_Deterministic(t *testing.T) {
	d0 := []float64{1, 3, 2, 5}
	minDist := []float64{1, 3, 2, 5}

	a, err := afkmc2.RunChainForTest(d0, minDist, 0.5, 50, 7)
	require.NoError(t, err)
	b, err := afkmc2.RunChainForTest(d0, minDist, 0.5, 50, 7)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestRunChain_TracksTargetWeights checks that the chain's empirical
// selection frequency approaches the target distribution: with weights
// [1,1,4] index 2 holds 2/3 of the target mass.
func TestRunChain_TracksTargetWeights(t *testing.T) {
	d0 := []float64{1, 1, 4}
	minDist := []float64{1, 1, 4}

	const trials = 2000
	var hits int
	for seed := int64(1); seed <= trials; seed++ {
		idx, err := afkmc2.RunChainForTest(d0, minDist, 0.5, 100, seed)
		require.NoError(t, err)
		if idx == 2 {
			hits++
		}
	}

	freq := float64(hits) / trials
	assert.Greater(t, freq, 0.55, "heavy point must dominate (target mass 2/3, got %.3f)", freq)
	assert.Less(t, freq, 0.80, "light points must keep positive mass (got %.3f)", freq)
}
