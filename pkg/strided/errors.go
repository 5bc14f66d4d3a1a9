package strided

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is the sentinel every validation failure wraps. A
// ShapeMismatchError always means the call returned before touching the
// destination.
var ErrShapeMismatch = errors.New("strided: shape mismatch")

// ShapeMismatchError carries the offending operation and a human-readable
// description of the mismatch, following the teacher's "tensor: <message>"
// prefix convention (pkg/core/math/tensor/shape.go).
type ShapeMismatchError struct {
	Op      string
	Message string
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("strided: %s: %s", e.Op, e.Message)
}

func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

func newShapeMismatch(op, format string, args ...any) error {
	return &ShapeMismatchError{Op: op, Message: fmt.Sprintf(format, args...)}
}
