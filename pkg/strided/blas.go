package strided

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/blas/cblas64"
)

// blasTranspose converts the planner's opA/opB byte code ('N', 'T', 'C')
// into a gonum blas.Transpose.
func blasTranspose(op byte) blas.Transpose {
	switch op {
	case 'T':
		return blas.Trans
	case 'C':
		return blas.ConjTrans
	default:
		return blas.NoTrans
	}
}

// blasMatrix is the planner's row-major matrix-view handle: either an
// alias into an operand's own backing slice, or a freshly permuted
// scratch buffer. Rows/Cols describe the *logical* pre-op(·) shape as
// stored; Op carries which gonum transpose flag presents it in the
// orientation gemm needs.
type blasMatrix[T Numeric] struct {
	rows, cols, stride int
	data               []T
	op                 byte
}

// isBLASNumeric reports whether T is one of the four kinds gonum's BLAS
// bindings accelerate. Types defined over these kinds (which Numeric
// admits through its ~ terms) report false, so they take the native
// kernel instead of reaching gemm's type switch, which matches only the
// four predeclared kinds (spec.md §4.5: "If the
// element type is not BLAS-supported, the planner ... delegates to the
// native ... kernel directly").
func isBLASNumeric[T Numeric]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64, complex64, complex128:
		return true
	default:
		return false
	}
}

// gemm issues the library matrix multiply C = alpha*op(A)*op(B) +
// beta*C, dispatching to the gonum BLAS binding matching T's concrete
// kind (spec.md §4.5 step 5).
func gemm[T Numeric](a, b blasMatrix[T], alpha, beta T, c blasMatrix[T]) {
	switch any(a.data).(type) {
	case []float32:
		blas32.Gemm(blasTranspose(a.op), blasTranspose(b.op),
			any(alpha).(float32),
			blas32.General{Rows: a.rows, Cols: a.cols, Stride: a.stride, Data: any(a.data).([]float32)},
			blas32.General{Rows: b.rows, Cols: b.cols, Stride: b.stride, Data: any(b.data).([]float32)},
			any(beta).(float32),
			blas32.General{Rows: c.rows, Cols: c.cols, Stride: c.stride, Data: any(c.data).([]float32)},
		)
	case []float64:
		blas64.Gemm(blasTranspose(a.op), blasTranspose(b.op),
			any(alpha).(float64),
			blas64.General{Rows: a.rows, Cols: a.cols, Stride: a.stride, Data: any(a.data).([]float64)},
			blas64.General{Rows: b.rows, Cols: b.cols, Stride: b.stride, Data: any(b.data).([]float64)},
			any(beta).(float64),
			blas64.General{Rows: c.rows, Cols: c.cols, Stride: c.stride, Data: any(c.data).([]float64)},
		)
	case []complex64:
		cblas64.Gemm(blasTranspose(a.op), blasTranspose(b.op),
			any(alpha).(complex64),
			cblas64.General{Rows: a.rows, Cols: a.cols, Stride: a.stride, Data: any(a.data).([]complex64)},
			cblas64.General{Rows: b.rows, Cols: b.cols, Stride: b.stride, Data: any(b.data).([]complex64)},
			any(beta).(complex64),
			cblas64.General{Rows: c.rows, Cols: c.cols, Stride: c.stride, Data: any(c.data).([]complex64)},
		)
	case []complex128:
		cblas128.Gemm(blasTranspose(a.op), blasTranspose(b.op),
			any(alpha).(complex128),
			cblas128.General{Rows: a.rows, Cols: a.cols, Stride: a.stride, Data: any(a.data).([]complex128)},
			cblas128.General{Rows: b.rows, Cols: b.cols, Stride: b.stride, Data: any(b.data).([]complex128)},
			any(beta).(complex128),
			cblas128.General{Rows: c.rows, Cols: c.cols, Stride: c.stride, Data: any(c.data).([]complex128)},
		)
	}
}
