package strided

import (
	"github.com/itohio/straxis/pkg/logger"
	"github.com/itohio/straxis/pkg/strided/tuning"
)

// Add implements C <- beta*C + alpha*op(permute(A, indCinA)), spec.md
// §6's first entry point. Validation happens before any write; a
// ShapeMismatchError means C was not touched.
func Add[T Numeric](alpha Coefficient[T], a View[T], conjA Conj, beta Coefficient[T], c View[T], indCinA []int) error {
	if err := ValidateAdd(a.Shape, c.Shape, indCinA); err != nil {
		logger.Log.Debug().Str("op", "Add").Err(err).Msg("validation failed")
		return err
	}

	a.Conj = conjA
	aligned := alignToIndexMap(a, indCinA)
	runAdd(alpha, beta, aligned, c, append([]int(nil), c.Shape...), tuning.Default().BaseCaseOps)
	return nil
}

// Trace implements C <- beta*C + alpha*partial_trace(op(A)) over the K
// axis pairs (cindA1[i], cindA2[i]), spec.md §6's second entry point.
func Trace[T Numeric](alpha Coefficient[T], a View[T], conjA Conj, beta Coefficient[T], c View[T], indCinA, cindA1, cindA2 []int) error {
	if err := ValidateTrace(a.Shape, c.Shape, indCinA, cindA1, cindA2); err != nil {
		logger.Log.Debug().Str("op", "Trace").Err(err).Msg("validation failed")
		return err
	}

	a.Conj = conjA
	runTrace(alpha, beta, a, c, indCinA, cindA1, cindA2, tuning.Default().BaseCaseOps)
	return nil
}

// Contract implements C <- beta*C + alpha*Sum(op(A)*op(B)) over the
// paired contracted axes, spec.md §6's third entry point. method selects
// between the BLAS-backed and native paths per the ContractionPlanner of
// spec.md §4.5.
func Contract[T Numeric](alpha Coefficient[T], a View[T], conjA Conj, b View[T], conjB Conj, beta Coefficient[T], c View[T], oindA, cindA, oindB, cindB, indCinoAB []int, method Method) error {
	if err := ValidateContract(a.Shape, b.Shape, c.Shape, oindA, cindA, oindB, cindB, indCinoAB); err != nil {
		logger.Log.Debug().Str("op", "Contract").Err(err).Msg("validation failed")
		return err
	}

	cfg := tuning.Default()
	a.Conj = conjA
	b.Conj = conjB

	useBLAS := chooseMethod[T](method, a.Shape, b.Shape, oindA, cindA, oindB, cfg)

	if useBLAS {
		logger.Log.Debug().Str("op", "Contract").Str("path", "blas").Msg("dispatch")
		runContractBLAS(alpha, beta, a, b, c, oindA, cindA, oindB, cindB, indCinoAB, cfg.BaseCaseOps)
	} else {
		logger.Log.Debug().Str("op", "Contract").Str("path", "native").Msg("dispatch")
		runContractNative(alpha, beta, a, b, c, oindA, cindA, oindB, cindB, indCinoAB, cfg.BaseCaseOps)
	}
	return nil
}

// chooseMethod implements the Method/Auto decision of spec.md §4.5's
// final paragraph: ForceNative and BLAS-ineligible element types always
// take the native path; ForceLibraryGemm always takes BLAS; Auto takes
// BLAS once the problem size clears tuning.BLASCrossoverOps.
func chooseMethod[T Numeric](method Method, aShape, bShape, oindA, cindA, oindB []int, cfg tuning.Config) bool {
	if !isBLASNumeric[T]() || method == ForceNative {
		return false
	}
	if method == ForceLibraryGemm {
		return true
	}
	olenA := productAxes(aShape, oindA)
	olenB := productAxes(bShape, oindB)
	clen := productAxes(aShape, cindA)
	return olenA*olenB*clen >= cfg.BLASCrossoverOps
}
