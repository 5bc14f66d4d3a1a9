package strided

// Numeric is the element-type closure the kernels operate over: the real
// and complex floating kinds spec.md §3 allows, generalizing the teacher's
// real-only generics.Numeric constraint to include the complex kinds a
// conjugating read requires.
type Numeric interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Method selects how Contract picks between the BLAS and native paths.
type Method int

const (
	// Auto lets the ContractionPlanner choose based on problem size and
	// element-type eligibility. The default.
	Auto Method = iota
	// ForceNative always uses the triple-nested-loop RecursiveKernel,
	// regardless of size or BLAS eligibility.
	ForceNative
	// ForceLibraryGemm always routes through the BLAS path. Used by
	// callers (and this package's own tests) to check method-equivalence.
	ForceLibraryGemm
)

func (m Method) String() string {
	switch m {
	case Auto:
		return "Auto"
	case ForceNative:
		return "ForceNative"
	case ForceLibraryGemm:
		return "ForceLibraryGemm"
	default:
		return "Method(?)"
	}
}
