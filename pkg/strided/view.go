package strided

import "math/cmplx"

// Conj tags whether a StridedView's reads apply elementwise complex
// conjugation. A no-op on real element types.
type Conj int

const (
	Normal Conj = iota
	Conjugated
)

func (c Conj) String() string {
	if c == Conjugated {
		return "Conjugated"
	}
	return "Normal"
}

// View is the minimal external-collaborator contract spec.md §1 requires
// of a tensor: element type, strides, a base offset and a conjugation
// flag over a flat backing slice. It owns nothing and is built fresh for
// one kernel call.
//
// StridedView is the concrete implementation used throughout this
// package; View is its exported name in the public signatures.
type View[T Numeric] = StridedView[T]

// StridedView is a non-owning, read/write descriptor over a flat backing
// slice: the slice itself, a shape tuple, per-axis strides in elements, a
// base offset and a conjugation flag. It never reshapes or copies the
// backing data; Sub only moves the offset. This is the full contract
// spec.md §1 asks an external collaborator to supply: "element type,
// shape tuple, stride tuple, raw base pointer, and a conjugation flag."
type StridedView[T Numeric] struct {
	Data    []T
	Shape   []int
	Strides []int
	Offset  int
	Conj    Conj
}

// NewView builds a StridedView over data with the given shape, per-axis
// strides (in elements) and base offset. shape and strides must have
// equal length.
func NewView[T Numeric](data []T, shape, strides []int, offset int, conj Conj) StridedView[T] {
	return StridedView[T]{Data: data, Shape: shape, Strides: strides, Offset: offset, Conj: conj}
}

// Rank reports the number of axes described by the view.
func (v StridedView[T]) Rank() int { return len(v.Shape) }

// At reads the element at base-relative linear offset off, applying
// conjugation when the view is tagged Conjugated.
func (v StridedView[T]) At(off int) T {
	return applyConj(v.Data[v.Offset+off], v.Conj)
}

// Set writes value at base-relative linear offset off. Conjugation is
// never applied on write; the public API never tags a destination view
// Conjugated.
func (v StridedView[T]) Set(off int, value T) {
	v.Data[v.Offset+off] = value
}

// Sub returns a copy of v whose offset has been advanced by delta
// elements — used by the recursive splitter to address the second half
// of a split axis without touching Data or Strides.
func (v StridedView[T]) Sub(delta int) StridedView[T] {
	v.Offset += delta
	return v
}

// alignToIndexMap returns a view over src's backing data whose axis j is
// src's axis indCinA[j] — the permutation every IndexMap in spec.md §3
// describes. Used by Add's public entry point and by the contraction
// planner's scratch-fold step, which share the same "align source to
// destination axis order" operation.
func alignToIndexMap[T Numeric](src StridedView[T], indCinA []int) StridedView[T] {
	n := len(indCinA)
	aligned := src
	aligned.Shape = make([]int, n)
	aligned.Strides = make([]int, n)
	for j, ax := range indCinA {
		aligned.Shape[j] = src.Shape[ax]
		aligned.Strides[j] = src.Strides[ax]
	}
	return aligned
}

// applyConj conjugates v when c is Conjugated. Real element kinds take
// the no-op path; complex64/complex128 route through math/cmplx (which
// operates on complex128, so complex64 round-trips through it).
func applyConj[T Numeric](v T, c Conj) T {
	if c == Normal {
		return v
	}
	switch x := any(v).(type) {
	case complex64:
		return any(complex64(cmplx.Conj(complex128(x)))).(T)
	case complex128:
		return any(cmplx.Conj(x)).(T)
	default:
		return v
	}
}
