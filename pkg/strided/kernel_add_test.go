package strided

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1: transposing a 2x2 matrix via Add with indCinA=[1,0].
func TestAddTransposeScenarioS1(t *testing.T) {
	a := rowMajor([]int{2, 2}, []float64{1, 2, 3, 4})
	c := zeros[float64]([]int{2, 2})

	err := Add(One[float64](), a, Normal, Zero[float64](), c, []int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 2, 4}, c.Data)
}

// Permutation round trip: transposing twice with the same index map
// recovers the original tensor (spec.md's quantified invariants).
func TestAddPermutationRoundTrip(t *testing.T) {
	a := rowMajor([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	transposed := zeros[float64]([]int{3, 2})
	require.NoError(t, Add(One[float64](), a, Normal, Zero[float64](), transposed, []int{1, 0}))

	back := zeros[float64]([]int{2, 3})
	require.NoError(t, Add(One[float64](), transposed, Normal, Zero[float64](), back, []int{1, 0}))

	assert.Equal(t, a.Data, back.Data)
}

// Scaling law: Add(alpha, a, Normal, beta, c, ...) == beta*c + alpha*a
// elementwise, for a representative non-trivial (alpha, beta) pair.
func TestAddScalingLaw(t *testing.T) {
	a := rowMajor([]int{3}, []float64{1, 2, 3})
	c := rowMajor([]int{3}, []float64{10, 20, 30})

	require.NoError(t, Add(Val(2.0), a, Normal, Val(0.5), c, IdentityIndexMap(1)))
	assert.Equal(t, []float64{7, 14, 21}, c.Data)
}

// S4: alpha=0 must not read A at all, and beta scales C in place.
func TestAddAlphaZeroDoesNotReadA(t *testing.T) {
	// a has no backing data at all; reading it would panic on an
	// out-of-range slice access.
	a := StridedView[float64]{Data: nil, Shape: []int{2}, Strides: []int{1}}
	c := rowMajor([]int{2}, []float64{3, 4})

	require.NoError(t, Add(Zero[float64](), a, Normal, Val(2.0), c, IdentityIndexMap(1)))
	assert.Equal(t, []float64{6, 8}, c.Data)
}

// alpha=0, beta=1 is a true no-op: C must be untouched.
func TestAddNoOp(t *testing.T) {
	a := StridedView[float64]{Data: nil, Shape: []int{2}, Strides: []int{1}}
	c := rowMajor([]int{2}, []float64{3, 4})

	require.NoError(t, Add(Zero[float64](), a, Normal, One[float64](), c, IdentityIndexMap(1)))
	assert.Equal(t, []float64{3, 4}, c.Data)
}

func TestAddZeroExtentAxisIsNoOp(t *testing.T) {
	a := rowMajor([]int{0, 3}, nil)
	c := zeros[float64]([]int{0, 3})
	require.NoError(t, Add(One[float64](), a, Normal, Zero[float64](), c, IdentityIndexMap(2)))
	assert.Empty(t, c.Data)
}

func TestAddRankZero(t *testing.T) {
	a := rowMajor[float64](nil, []float64{7})
	c := rowMajor[float64](nil, []float64{1})

	require.NoError(t, Add(One[float64](), a, Normal, Zero[float64](), c, nil))
	assert.Equal(t, []float64{7}, c.Data)
}

func TestAddConjugation(t *testing.T) {
	a := rowMajor([]int{2}, []complex128{complex(1, 2), complex(3, -4)})
	c := zeros[complex128]([]int{2})

	require.NoError(t, Add(One[complex128](), a, Conjugated, Zero[complex128](), c, IdentityIndexMap(1)))
	assert.Equal(t, []complex128{complex(1, -2), complex(3, 4)}, c.Data)
}

func TestAddShapeMismatchLeavesDestinationUntouched(t *testing.T) {
	a := rowMajor([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	c := rowMajor([]int{2, 2}, []float64{9, 9, 9, 9})

	err := Add(One[float64](), a, Normal, Zero[float64](), c, []int{0, 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, []float64{9, 9, 9, 9}, c.Data)
}

// Forces the recursive split path by exceeding the base-case threshold, and
// checks the result matches a direct elementwise computation.
func TestAddRecursiveSplitMatchesDirect(t *testing.T) {
	const n = 80
	data := make([]float64, n*n)
	for i := range data {
		data[i] = float64(i)
	}
	a := rowMajor([]int{n, n}, data)
	c := zeros[float64]([]int{n, n})

	require.NoError(t, Add(One[float64](), a, Normal, Zero[float64](), c, []int{1, 0}))

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, a.Data[i*n+j], c.Data[j*n+i])
		}
	}
}
