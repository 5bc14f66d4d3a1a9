// Package gorgoniaview adapts gorgonia.org/tensor's *tensor.Dense — the
// plain dense-array sibling of the gorgonia.org/gorgonia autodiff
// package — into strided.StridedView, so a *tensor.Dense can act as the
// external "container type" collaborator spec.md §1 keeps out of the
// core: shape + data-buffer ownership, with the actual kernel work
// delegated to package strided.
//
// Only float32 and float64 Dense tensors are supported: gorgonia's own
// arithmetic never materializes complex-backed Dense tensors, so there
// is nothing in the teacher's or pack's usage to ground a complex path
// on here.
package gorgoniaview

import (
	"fmt"

	"gorgonia.org/tensor"

	"github.com/itohio/straxis/pkg/strided"
)

// View builds a strided.StridedView[T] over d's backing array without
// copying. The returned view aliases d: mutating it through strided.Add,
// strided.Trace or strided.Contract mutates d in place.
func View[T strided.Numeric](d *tensor.Dense) (strided.StridedView[T], error) {
	var zero T
	data, ok := any(d.Data()).([]T)
	if !ok {
		return strided.StridedView[T]{}, fmt.Errorf("gorgoniaview: dense tensor holds %T, not %T", d.Data(), zero)
	}

	shape := d.Shape()
	dims := make([]int, len(shape))
	copy(dims, shape)

	return strided.NewView(data, dims, append([]int(nil), d.Strides()...), 0, strided.Normal), nil
}

// Float32 is a convenience wrapper around View for the common case.
func Float32(d *tensor.Dense) (strided.StridedView[float32], error) {
	return View[float32](d)
}

// Float64 is a convenience wrapper around View for the common case.
func Float64(d *tensor.Dense) (strided.StridedView[float64], error) {
	return View[float64](d)
}

// Dense allocates a new zeroed *tensor.Dense with the given shape and
// element kind, for callers that want a destination tensor owned by
// gorgonia.org/tensor rather than a bare slice.
func Dense[T strided.Numeric](shape ...int) *tensor.Dense {
	var zero T
	var dt tensor.Dtype
	switch any(zero).(type) {
	case float32:
		dt = tensor.Float32
	case float64:
		dt = tensor.Float64
	default:
		panic(fmt.Sprintf("gorgoniaview: unsupported element kind %T", zero))
	}
	return tensor.New(tensor.WithShape(shape...), tensor.Of(dt))
}
