package strided

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityAndReverseIndexMap(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, IdentityIndexMap(3))
	assert.Equal(t, []int{2, 1, 0}, ReverseIndexMap(3))
	assert.Equal(t, []int{}, IdentityIndexMap(0))
}

func TestTransposedSwapsLastTwo(t *testing.T) {
	assert.Equal(t, []int{0, 2, 1}, Transposed([]int{0, 1, 2}))
	// original untouched
	orig := []int{0, 1, 2}
	got := Transposed(orig)
	assert.Equal(t, []int{0, 1, 2}, orig)
	assert.Equal(t, []int{0, 2, 1}, got)
}

func TestTransposedRankOneIsUnchanged(t *testing.T) {
	assert.Equal(t, []int{0}, Transposed([]int{0}))
}

func TestValidateAddRejectsNonPermutation(t *testing.T) {
	err := ValidateAdd([]int{2, 2}, []int{2, 2}, []int{0, 0})
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestValidateContractRejectsBadPartition(t *testing.T) {
	err := ValidateContract([]int{2, 3}, []int{3, 2}, []int{2, 2},
		[]int{0}, []int{0}, []int{1}, []int{0}, []int{0, 1})
	assert.Error(t, err)
}

func TestValidateContractAcceptsMatMulShapes(t *testing.T) {
	err := ValidateContract([]int{2, 3}, []int{3, 2}, []int{2, 2},
		[]int{0}, []int{1}, []int{1}, []int{0}, []int{0, 1})
	assert.NoError(t, err)
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "Auto", Auto.String())
	assert.Equal(t, "ForceNative", ForceNative.String())
	assert.Equal(t, "ForceLibraryGemm", ForceLibraryGemm.String())
}
