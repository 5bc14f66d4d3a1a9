// Package tuning holds the thresholds the strided kernels use to decide
// when to stop recursing and when the ContractionPlanner prefers the BLAS
// path, per spec.md §4.3's "a tuning threshold (e.g. a few thousand
// scalar ops)".
//
// There is no environment-variable or CLI surface. Package strided reads
// Default on every call; Load parses a YAML document into a Config, but
// the kernels have no way to accept that Config, so loaded values do not
// change their behavior. The kernels themselves never read the filesystem.
package tuning

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable thresholds. Zero-value fields are invalid;
// always start from Default() and override individual fields.
type Config struct {
	// BaseCaseOps is the recursion cutoff: once prod(dims) for the
	// current recursive call falls to or below this, the kernel executes
	// its base-case nested loop instead of splitting further.
	BaseCaseOps int `yaml:"base_case_ops"`

	// BLASCrossoverOps is the minimum olenA*olenB*clen problem size at
	// which Method Auto prefers the library gemm path over the native
	// triple loop. Below this, BLAS call overhead and scratch allocation
	// outweigh its throughput advantage.
	BLASCrossoverOps int `yaml:"blas_crossover_ops"`
}

// Default returns the compiled-in tunable set.
func Default() Config {
	return Config{
		BaseCaseOps:      4096,
		BLASCrossoverOps: 8192,
	}
}

// Load reads a YAML document from r, overlaying it onto Default(). Fields
// absent from the document keep their default value.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, err
	}
	return cfg, nil
}
