// Package strided implements the strided-iteration engine and its three
// public kernels — Add, Trace and Contract — for dense tensors stored
// over arbitrary (including negative) element strides.
//
// The package has no notion of a tensor container: callers supply a
// StridedView (base slice, per-axis strides, offset, conjugation flag)
// built from whatever shape/data type they already own. Validation
// happens before any write; a ShapeMismatchError means nothing was
// touched.
package strided
