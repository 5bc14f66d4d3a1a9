package strided

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S2: rank-3 tensor A[i,j,k] = i + 2j + 4k, partial trace over axes (0,2)
// leaving axis 1 open: C[j] = A[0,j,0] + A[1,j,1].
func TestTracePartialScenarioS2(t *testing.T) {
	data := make([]float64, 8)
	shape := []int{2, 2, 2}
	strides := []int{4, 2, 1}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				data[i*4+j*2+k] = float64(i + 2*j + 4*k)
			}
		}
	}
	a := NewView(append([]float64(nil), data...), shape, strides, 0, Normal)
	c := zeros[float64]([]int{2})

	err := Trace(One[float64](), a, Normal, Zero[float64](), c, []int{1}, []int{0}, []int{2})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 9}, c.Data)
}

// Full trace of a 3x3 identity-like tensor over its only axis pair
// collapses to a rank-0 scalar equal to the sum of the diagonal.
func TestTraceFullToScalar(t *testing.T) {
	a := rowMajor([]int{3, 3}, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	c := rowMajor[float64](nil, []float64{0})

	err := Trace(One[float64](), a, Normal, Zero[float64](), c, nil, []int{0}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, c.Data)
}

func TestTraceRejectsUnequalDiagonalExtents(t *testing.T) {
	a := rowMajor([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	c := rowMajor[float64](nil, []float64{0})

	err := Trace(One[float64](), a, Normal, Zero[float64](), c, nil, []int{0}, []int{1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestTraceAlphaZeroDoesNotReadA(t *testing.T) {
	a := StridedView[float64]{Data: nil, Shape: []int{2, 2}, Strides: []int{2, 1}}
	c := rowMajor[float64](nil, []float64{10})

	err := Trace(Zero[float64](), a, Normal, Val(2.0), c, nil, []int{0}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []float64{20}, c.Data)
}
