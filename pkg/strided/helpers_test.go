package strided

import "github.com/itohio/straxis/pkg/strided/internal/strideutil"

// rowMajor builds a StridedView over a freshly copied backing slice with
// canonical row-major strides for shape — the common construction every
// test in this package needs.
func rowMajor[T Numeric](shape []int, data []T) StridedView[T] {
	buf := append([]T(nil), data...)
	return NewView(buf, append([]int(nil), shape...), strideutil.ComputeStrides(shape), 0, Normal)
}

func zeros[T Numeric](shape []int) StridedView[T] {
	n := strideutil.Size(shape)
	return NewView(make([]T, n), append([]int(nil), shape...), strideutil.ComputeStrides(shape), 0, Normal)
}
