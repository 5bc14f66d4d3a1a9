package strided

import "github.com/itohio/straxis/pkg/strided/internal/strideutil"

// isCanonicalOrder reports whether v's memory, when its axes are visited
// in the given order, forms exactly the canonical row-major strides for
// that axis order — i.e. whether order is a pure reshape of v, not
// merely a relabeling with arbitrary strides. This is the alias-vs-
// permute test of spec.md §4.5: misclassifying a permutation as an
// alias silently produces wrong results.
func isCanonicalOrder(order []int, strides, shape []int) bool {
	expected := 1
	for i := len(order) - 1; i >= 0; i-- {
		ax := order[i]
		if strides[ax] != expected {
			return false
		}
		expected *= shape[ax]
	}
	return true
}

// planOperandA implements spec.md §4.5 step 2: decide between aliasing A
// as a matrix and permuting it through the add kernel into a fresh
// buffer, producing an (olenA x clen) logical operand for gemm.
func planOperandA[T Numeric](a StridedView[T], oindA, cindA []int, olenA, clen, baseCaseOps int) (blasMatrix[T], []T) {
	if a.Conj == Conjugated {
		orderC := concatInts(cindA, oindA)
		if isCanonicalOrder(orderC, a.Strides, a.Shape) {
			return blasMatrix[T]{rows: clen, cols: olenA, stride: olenA, data: a.Data[a.Offset:], op: 'C'}, nil
		}
		return permuteIntoScratch(a, concatInts(oindA, cindA), olenA, clen, Conjugated, baseCaseOps)
	}

	orderN := concatInts(oindA, cindA)
	if isCanonicalOrder(orderN, a.Strides, a.Shape) {
		return blasMatrix[T]{rows: olenA, cols: clen, stride: clen, data: a.Data[a.Offset:], op: 'N'}, nil
	}
	orderT := concatInts(cindA, oindA)
	if isCanonicalOrder(orderT, a.Strides, a.Shape) {
		return blasMatrix[T]{rows: clen, cols: olenA, stride: olenA, data: a.Data[a.Offset:], op: 'T'}, nil
	}
	return permuteIntoScratch(a, orderN, olenA, clen, Normal, baseCaseOps)
}

// planOperandB mirrors planOperandA with the target layout chosen so
// gemm's second operand presents as (clen x olenB) (spec.md §4.5 step 3).
func planOperandB[T Numeric](b StridedView[T], oindB, cindB []int, olenB, clen, baseCaseOps int) (blasMatrix[T], []T) {
	if b.Conj == Conjugated {
		orderC := concatInts(oindB, cindB)
		if isCanonicalOrder(orderC, b.Strides, b.Shape) {
			return blasMatrix[T]{rows: olenB, cols: clen, stride: clen, data: b.Data[b.Offset:], op: 'C'}, nil
		}
		return permuteIntoScratch(b, concatInts(cindB, oindB), clen, olenB, Conjugated, baseCaseOps)
	}

	orderN := concatInts(cindB, oindB)
	if isCanonicalOrder(orderN, b.Strides, b.Shape) {
		return blasMatrix[T]{rows: clen, cols: olenB, stride: olenB, data: b.Data[b.Offset:], op: 'N'}, nil
	}
	orderT := concatInts(oindB, cindB)
	if isCanonicalOrder(orderT, b.Strides, b.Shape) {
		return blasMatrix[T]{rows: olenB, cols: clen, stride: clen, data: b.Data[b.Offset:], op: 'T'}, nil
	}
	return permuteIntoScratch(b, orderN, clen, olenB, Normal, baseCaseOps)
}

// permuteIntoScratch copies v, reordered by order and conjugated if
// requested, into a pooled (rows x cols) row-major buffer via the add
// kernel, reusing it rather than hand-rolling a second copy loop (spec.md
// §4.5: "permute operands into matrix-compatible layouts, reusing the add
// kernel").
func permuteIntoScratch[T Numeric](v StridedView[T], order []int, rows, cols int, conj Conj, baseCaseOps int) (blasMatrix[T], []T) {
	dimsOrdered := make([]int, len(order))
	for j, ax := range order {
		dimsOrdered[j] = v.Shape[ax]
	}

	buf := getScratch[T](rows * cols)
	dst := StridedView[T]{Data: buf, Shape: dimsOrdered, Strides: strideutil.ComputeStrides(dimsOrdered)}
	src := alignToIndexMap(StridedView[T]{Data: v.Data, Shape: v.Shape, Strides: v.Strides, Offset: v.Offset, Conj: conj}, order)

	runAdd(One[T](), Zero[T](), src, dst, append([]int(nil), dimsOrdered...), baseCaseOps)

	return blasMatrix[T]{rows: rows, cols: cols, stride: cols, data: buf, op: 'N'}, buf
}

// runContractBLAS implements spec.md §4.5 in full: plan both operands,
// decide whether gemm can write C directly, and fold through the add
// kernel otherwise.
func runContractBLAS[T Numeric](alpha, beta Coefficient[T], a, b, c StridedView[T], oindA, cindA, oindB, cindB, indCinoAB []int, baseCaseOps int) {
	if isNoOp(alpha, beta) {
		return
	}
	if strideutil.Size(c.Shape) == 0 {
		return
	}
	if alpha.Kind == KindZero {
		scaleRec(beta, c, append([]int(nil), c.Shape...), baseCaseOps)
		return
	}

	olenA := productAxes(a.Shape, oindA)
	olenB := productAxes(b.Shape, oindB)
	clen := productAxes(a.Shape, cindA)

	aMat, aBuf := planOperandA(a, oindA, cindA, olenA, clen, baseCaseOps)
	bMat, bBuf := planOperandB(b, oindB, cindB, olenB, clen, baseCaseOps)
	defer func() {
		if aBuf != nil {
			putScratch(aBuf)
		}
		if bBuf != nil {
			putScratch(bBuf)
		}
	}()

	if indexMapIsIdentity(indCinoAB) && isCanonicalOrder(IdentityIndexMap(len(c.Shape)), c.Strides, c.Shape) {
		cMat := blasMatrix[T]{rows: olenA, cols: olenB, stride: olenB, data: c.Data[c.Offset:], op: 'N'}
		gemm(aMat, bMat, alpha.scalar(), beta.scalar(), cMat)
		return
	}

	scratch := getScratch[T](olenA * olenB)
	defer putScratch(scratch)
	cMat := blasMatrix[T]{rows: olenA, cols: olenB, stride: olenB, data: scratch, op: 'N'}
	gemm(aMat, bMat, One[T]().scalar(), Zero[T]().scalar(), cMat)

	lenA := len(oindA)
	openShape := make([]int, lenA+len(oindB))
	for p, ax := range oindA {
		openShape[p] = a.Shape[ax]
	}
	for q, ax := range oindB {
		openShape[lenA+q] = b.Shape[ax]
	}
	scratchView := StridedView[T]{Data: scratch, Shape: openShape, Strides: strideutil.ComputeStrides(openShape)}
	aligned := alignToIndexMap(scratchView, indCinoAB)
	runAdd(alpha, beta, aligned, c, append([]int(nil), c.Shape...), baseCaseOps)
}

func indexMapIsIdentity(m []int) bool {
	for i, v := range m {
		if v != i {
			return false
		}
	}
	return true
}
