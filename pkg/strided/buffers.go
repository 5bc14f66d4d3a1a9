package strided

import "github.com/itohio/straxis/pkg/strided/internal/bufpool"

// Scratch for the contraction planner's permuted-operand and accumulator
// buffers is drawn from one tiered pool per concrete element kind
// (teacher pattern: pkg/core/math/primitive/generics/helpers.Pool). Go
// generics do not allow a package-level variable parameterized by a type
// parameter, so the four BLAS-eligible kinds get their own pool and the
// generic entry points dispatch via the same type-switch-on-any idiom
// already used in blas.go's gemm.
var (
	poolFloat32    bufpool.Pool[float32]
	poolFloat64    bufpool.Pool[float64]
	poolComplex64  bufpool.Pool[complex64]
	poolComplex128 bufpool.Pool[complex128]
)

func getScratch[T Numeric](n int) []T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(poolFloat32.Get(n)).([]T)
	case float64:
		return any(poolFloat64.Get(n)).([]T)
	case complex64:
		return any(poolComplex64.Get(n)).([]T)
	case complex128:
		return any(poolComplex128.Get(n)).([]T)
	default:
		return make([]T, n)
	}
}

func putScratch[T Numeric](buf []T) {
	switch b := any(buf).(type) {
	case []float32:
		poolFloat32.Put(b)
	case []float64:
		poolFloat64.Put(b)
	case []complex64:
		poolComplex64.Put(b)
	case []complex128:
		poolComplex128.Put(b)
	}
}
