package strided

import "github.com/itohio/straxis/pkg/strided/internal/strideutil"

// IdentityIndexMap returns the identity permutation [0, 1, ..., n-1], the
// indCinA that leaves axis order unchanged.
func IdentityIndexMap(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}
	return m
}

// ReverseIndexMap returns [n-1, ..., 1, 0], reversing every axis.
func ReverseIndexMap(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = n - 1 - i
	}
	return m
}

// Transposed returns a copy of indCinA with its last two entries swapped
// — the common "transpose the last two axes" permutation, e.g. the
// matrix-transpose indCinA used in spec.md §8's (S1).
func Transposed(indCinA []int) []int {
	m := append([]int(nil), indCinA...)
	n := len(m)
	if n >= 2 {
		m[n-1], m[n-2] = m[n-2], m[n-1]
	}
	return m
}

func concatInts(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// ValidateAdd checks the Add IndexMap against the operand shapes per
// spec.md §3: ndim(C) == ndim(A), indCinA a permutation of 0..ndim(A),
// and the permuted shape of A equals C's declared shape.
func ValidateAdd(aShape, cShape, indCinA []int) error {
	if len(aShape) != len(cShape) {
		return newShapeMismatch("Add", "ndim(C)=%d != ndim(A)=%d", len(cShape), len(aShape))
	}
	if !strideutil.IsPermutation(indCinA, len(aShape)) {
		return newShapeMismatch("Add", "indCinA is not a permutation of 0..%d", len(aShape)-1)
	}
	for j, ax := range indCinA {
		if aShape[ax] != cShape[j] {
			return newShapeMismatch("Add", "axis %d: dest extent %d != source extent %d (source axis %d)", j, cShape[j], aShape[ax], ax)
		}
	}
	return nil
}

// ValidateTrace checks the Trace IndexMap against the operand shapes per
// spec.md §3.
func ValidateTrace(aShape, cShape, indCinA, cindA1, cindA2 []int) error {
	k := len(cindA1)
	if len(cindA2) != k {
		return newShapeMismatch("Trace", "cindA1 length %d != cindA2 length %d", k, len(cindA2))
	}
	if len(indCinA) != len(cShape) {
		return newShapeMismatch("Trace", "len(indCinA)=%d != ndim(C)=%d", len(indCinA), len(cShape))
	}
	if len(aShape) != len(cShape)+2*k {
		return newShapeMismatch("Trace", "ndim(A)=%d != ndim(C)+2K=%d", len(aShape), len(cShape)+2*k)
	}
	union := concatInts(concatInts(indCinA, cindA1), cindA2)
	if !strideutil.IsPermutation(union, len(aShape)) {
		return newShapeMismatch("Trace", "indCinA+cindA1+cindA2 is not a permutation of 0..%d", len(aShape)-1)
	}
	for j, ax := range indCinA {
		if aShape[ax] != cShape[j] {
			return newShapeMismatch("Trace", "axis %d: dest extent %d != source extent %d (source axis %d)", j, cShape[j], aShape[ax], ax)
		}
	}
	for i := 0; i < k; i++ {
		if aShape[cindA1[i]] != aShape[cindA2[i]] {
			return newShapeMismatch("Trace", "diagonal pair %d: extents %d and %d differ", i, aShape[cindA1[i]], aShape[cindA2[i]])
		}
	}
	return nil
}

// ValidateContract checks the Contract IndexMap against the operand
// shapes per spec.md §3.
func ValidateContract(aShape, bShape, cShape, oindA, cindA, oindB, cindB, indCinoAB []int) error {
	if !strideutil.IsPermutation(concatInts(oindA, cindA), len(aShape)) {
		return newShapeMismatch("Contract", "oindA+cindA is not a partition of 0..%d", len(aShape)-1)
	}
	if !strideutil.IsPermutation(concatInts(oindB, cindB), len(bShape)) {
		return newShapeMismatch("Contract", "oindB+cindB is not a partition of 0..%d", len(bShape)-1)
	}
	if len(cindA) != len(cindB) {
		return newShapeMismatch("Contract", "len(cindA)=%d != len(cindB)=%d", len(cindA), len(cindB))
	}
	for i := range cindA {
		if aShape[cindA[i]] != bShape[cindB[i]] {
			return newShapeMismatch("Contract", "contracted pair %d: extents %d and %d differ", i, aShape[cindA[i]], bShape[cindB[i]])
		}
	}

	lenA, lenB := len(oindA), len(oindB)
	nOpen := lenA + lenB
	if len(indCinoAB) != nOpen {
		return newShapeMismatch("Contract", "len(indCinoAB)=%d != len(oindA)+len(oindB)=%d", len(indCinoAB), nOpen)
	}
	if len(cShape) != nOpen {
		return newShapeMismatch("Contract", "ndim(C)=%d != len(oindA)+len(oindB)=%d", len(cShape), nOpen)
	}
	if !strideutil.IsPermutation(indCinoAB, nOpen) {
		return newShapeMismatch("Contract", "indCinoAB is not a permutation of 0..%d", nOpen-1)
	}
	for j, openPos := range indCinoAB {
		var expected int
		if openPos < lenA {
			expected = aShape[oindA[openPos]]
		} else {
			expected = bShape[oindB[openPos-lenA]]
		}
		if cShape[j] != expected {
			return newShapeMismatch("Contract", "axis %d: dest extent %d != open extent %d", j, cShape[j], expected)
		}
	}
	return nil
}

func productAxes(shape []int, axes []int) int {
	p := 1
	for _, ax := range axes {
		p *= shape[ax]
	}
	return p
}
