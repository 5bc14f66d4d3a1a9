// Package ulp provides float32 ULP-distance comparison for the
// method-equivalence property tests: the native triple-loop kernel and
// the BLAS-backed path accumulate the same sums in different orders, so
// their outputs are only guaranteed equal within a handful of ULPs, not
// bit-for-bit.
package ulp

import (
	"math"

	"github.com/chewxy/math32"
)

// Distance returns the number of representable float32 steps between a
// and b. NaN and differently-signed infinities report math.MaxUint32.
func Distance(a, b float32) uint32 {
	if math32.IsNaN(a) || math32.IsNaN(b) {
		return math.MaxUint32
	}
	if math.IsInf(float64(a), 0) && math.IsInf(float64(b), 0) && (a > 0) != (b > 0) {
		return math.MaxUint32
	}
	ai, bi := int32(math.Float32bits(a)), int32(math.Float32bits(b))
	if ai < 0 {
		ai = math.MinInt32 - ai
	}
	if bi < 0 {
		bi = math.MinInt32 - bi
	}
	d := int64(ai) - int64(bi)
	if d < 0 {
		d = -d
	}
	return uint32(d)
}

// Within reports whether a and b differ by at most maxULP representable
// float32 steps.
func Within(a, b float32, maxULP uint32) bool {
	return Distance(a, b) <= maxULP
}

// WithinFloat64 compares two float64 values by first narrowing to
// float32 — used where a BLAS kernel and the native kernel are compared
// at the precision of the element type under test, not at float64
// scratch precision.
func WithinFloat64(a, b float64, maxULP uint32) bool {
	return Within(float32(a), float32(b), maxULP)
}
