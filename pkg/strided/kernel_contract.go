package strided

import (
	"sort"

	"github.com/itohio/straxis/pkg/strided/internal/strideutil"
)

// runContractNative implements the binary RecursiveKernel of spec.md
// §4.3: a triple-nested loop over (open_A, open_B, contracted), with the
// open_A and open_B groups recursively split for locality (exactly like
// addRec) and the K contracted axes always walked in full as the
// innermost reduction, since a partial reduction cannot be handed back
// to a caller between recursive halves.
func runContractNative[T Numeric](alpha, beta Coefficient[T], a, b, c StridedView[T], oindA, cindA, oindB, cindB, indCinoAB []int, baseCaseOps int) {
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

	lenA, lenB, k := len(oindA), len(oindB), len(cindA)
	nOpen := lenA + lenB

	invMap := make([]int, nOpen)
	for j, p := range indCinoAB {
		invMap[p] = j
	}

	openDims := make([]int, nOpen)
	strideA := make([]int, nOpen)
	strideB := make([]int, nOpen)
	strideC := make([]int, nOpen)
	for p := 0; p < lenA; p++ {
		openDims[p] = a.Shape[oindA[p]]
		strideA[p] = a.Strides[oindA[p]]
		strideC[p] = c.Strides[invMap[p]]
	}
	for q := 0; q < lenB; q++ {
		p := lenA + q
		openDims[p] = b.Shape[oindB[q]]
		strideB[p] = b.Strides[oindB[q]]
		strideC[p] = c.Strides[invMap[p]]
	}

	oDims, oStrideA, oStrideB, oStrideC, minStrides := orderContractOpenAxes(openDims, strideA, strideB, strideC, lenA)

	contractedDims := make([]int, k)
	strideAC := make([]int, k)
	strideBC := make([]int, k)
	for i := 0; i < k; i++ {
		contractedDims[i] = a.Shape[cindA[i]]
		strideAC[i] = a.Strides[cindA[i]]
		strideBC[i] = b.Strides[cindB[i]]
	}

	contractRec(alpha, beta, a, b, c, oDims, oStrideA, oStrideB, oStrideC, minStrides, lenA, contractedDims, strideAC, strideBC, baseCaseOps)
}

// orderContractOpenAxes reorders the combined open_A++open_B axis list so
// the axis with the smallest destination stride becomes innermost, ties
// broken by whichever source stride is relevant to that axis's group
// (open_A axes don't move B's pointer and vice versa, so B's forced-zero
// stride on an open_A axis must not count toward its minStrides).
func orderContractOpenAxes(dims, strideA, strideB, strideC []int, lenA int) (oDims, oStrideA, oStrideB, oStrideC, minStrides []int) {
	n := len(dims)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	abs := func(x int) int {
		if x < 0 {
			return -x
		}
		return x
	}
	relevantSrc := func(axis int) int {
		if axis < lenA {
			return abs(strideA[axis])
		}
		return abs(strideB[axis])
	}

	sort.SliceStable(order, func(i, j int) bool {
		x, y := order[i], order[j]
		cx, cy := abs(strideC[x]), abs(strideC[y])
		if cx != cy {
			return cx > cy
		}
		rx, ry := relevantSrc(x), relevantSrc(y)
		if rx != ry {
			return rx > ry
		}
		return x < y
	})

	oDims = make([]int, n)
	oStrideA = make([]int, n)
	oStrideB = make([]int, n)
	oStrideC = make([]int, n)
	minStrides = make([]int, n)
	for i, axis := range order {
		oDims[i] = dims[axis]
		oStrideA[i] = strideA[axis]
		oStrideB[i] = strideB[axis]
		oStrideC[i] = strideC[axis]
		cs := abs(strideC[axis])
		rs := relevantSrc(axis)
		if cs < rs {
			minStrides[i] = cs
		} else {
			minStrides[i] = rs
		}
	}
	return oDims, oStrideA, oStrideB, oStrideC, minStrides
}

func contractRec[T Numeric](alpha, beta Coefficient[T], a, b, c StridedView[T], openDims, strideAOpen, strideBOpen, strideCOpen, minStrides []int, lenA int, contractedDims, strideAC, strideBC []int, baseCaseOps int) {
	if productInts(openDims) == 0 {
		return
	}
	total := productInts(openDims) * productInts(contractedDims)
	if total <= baseCaseOps || maxInt(openDims) <= 1 {
		contractBase(alpha, beta, a, b, c, openDims, strideAOpen, strideBOpen, strideCOpen, contractedDims, strideAC, strideBC)
		return
	}

	k := splitAxis(openDims, minStrides)
	orig := openDims[k]
	d1 := orig / 2

	openDims[k] = d1
	contractRec(alpha, beta, a, b, c, openDims, strideAOpen, strideBOpen, strideCOpen, minStrides, lenA, contractedDims, strideAC, strideBC, baseCaseOps)

	a2 := a.Sub(d1 * strideAOpen[k])
	b2 := b.Sub(d1 * strideBOpen[k])
	c2 := c.Sub(d1 * strideCOpen[k])
	openDims[k] = orig - d1
	contractRec(alpha, beta, a2, b2, c2, openDims, strideAOpen, strideBOpen, strideCOpen, minStrides, lenA, contractedDims, strideAC, strideBC, baseCaseOps)

	openDims[k] = orig
}

// contractBase executes the open-axis nested loop with the accumulator
// pattern c = beta*c + alpha*Sum(op(a)*op(b)) per spec.md §4.3, walking
// the K contracted axes in full for every open cell.
func contractBase[T Numeric](alpha, beta Coefficient[T], a, b, c StridedView[T], openDims, strideAOpen, strideBOpen, strideCOpen []int, contractedDims, strideAC, strideBC []int) {
	n := len(openDims)
	k := len(contractedDims)

	accumulate := func(aOff, bOff int) T {
		for _, e := range contractedDims {
			if e == 0 {
				var zero T
				return zero
			}
		}
		if k == 0 {
			return a.At(aOff) * b.At(bOff)
		}
		var idxBuf [strideutil.MaxDims]int
		idx := idxBuf[:k]
		for i := range idx {
			idx[i] = 0
		}
		var sum T
		ao, bo := aOff, bOff
		for {
			sum += a.At(ao) * b.At(bo)
			axis := k - 1
			for axis >= 0 {
				idx[axis]++
				ao += strideAC[axis]
				bo += strideBC[axis]
				if idx[axis] < contractedDims[axis] {
					break
				}
				ao -= strideAC[axis] * contractedDims[axis]
				bo -= strideBC[axis] * contractedDims[axis]
				idx[axis] = 0
				axis--
			}
			if axis < 0 {
				break
			}
		}
		return sum
	}

	if n == 0 {
		c.Set(0, combine(alpha, beta, accumulate(0, 0), c.At(0)))
		return
	}

	var idxBuf [strideutil.MaxDims]int
	idx := idxBuf[:n]
	for i := range idx {
		idx[i] = 0
	}

	aOff, bOff, cOff := 0, 0, 0
	for {
		term := accumulate(aOff, bOff)
		c.Set(cOff, combine(alpha, beta, term, c.At(cOff)))

		axis := n - 1
		for axis >= 0 {
			idx[axis]++
			aOff += strideAOpen[axis]
			bOff += strideBOpen[axis]
			cOff += strideCOpen[axis]
			if idx[axis] < openDims[axis] {
				break
			}
			aOff -= strideAOpen[axis] * openDims[axis]
			bOff -= strideBOpen[axis] * openDims[axis]
			cOff -= strideCOpen[axis] * openDims[axis]
			idx[axis] = 0
			axis--
		}
		if axis < 0 {
			break
		}
	}
}
