package strided

import "github.com/itohio/straxis/pkg/strided/internal/strideutil"

// runTrace implements C <- beta*C + alpha*partial_trace(op(A)) over the
// K axis pairs (cindA1[i], cindA2[i]), with indCinA mapping each
// destination axis to the A axis supplying it (spec.md §3/§4.3).
func runTrace[T Numeric](alpha, beta Coefficient[T], a, c StridedView[T], indCinA, cindA1, cindA2 []int, baseCaseOps int) {
	if strideutil.Size(c.Shape) == 0 {
		return
	}
	if isNoOp(alpha, beta) {
		return
	}
	if alpha.Kind == KindZero {
		scaleRec(beta, c, append([]int(nil), c.Shape...), baseCaseOps)
		return
	}

	nc := len(indCinA)
	k := len(cindA1)

	openDims := append([]int(nil), c.Shape...)
	aOpenStrides := make([]int, nc)
	for j := 0; j < nc; j++ {
		aOpenStrides[j] = a.Strides[indCinA[j]]
	}

	oDims, strides, minStrides := optimizeAxes(openDims, c.Strides, aOpenStrides)

	diagStrideSum := make([]int, k)
	diagExtent := make([]int, k)
	for i := 0; i < k; i++ {
		diagStrideSum[i] = a.Strides[cindA1[i]] + a.Strides[cindA2[i]]
		diagExtent[i] = a.Shape[cindA1[i]]
	}

	aView := a
	aView.Strides = strides[1]
	cView := c
	cView.Strides = strides[0]

	traceRec(alpha, beta, aView, cView, oDims, minStrides, diagStrideSum, diagExtent, baseCaseOps)
}

func traceRec[T Numeric](alpha, beta Coefficient[T], a, c StridedView[T], dims, minStrides, diagStrideSum, diagExtent []int, baseCaseOps int) {
	if productInts(dims) == 0 {
		return
	}
	if productInts(dims) <= baseCaseOps || maxInt(dims) <= 1 {
		traceBase(alpha, beta, a, c, dims, diagStrideSum, diagExtent)
		return
	}

	k := splitAxis(dims, minStrides)
	orig := dims[k]
	d1 := orig / 2

	dims[k] = d1
	traceRec(alpha, beta, a, c, dims, minStrides, diagStrideSum, diagExtent, baseCaseOps)

	a2 := a.Sub(d1 * a.Strides[k])
	c2 := c.Sub(d1 * c.Strides[k])
	dims[k] = orig - d1
	traceRec(alpha, beta, a2, c2, dims, minStrides, diagStrideSum, diagExtent, baseCaseOps)

	dims[k] = orig
}

// traceBase executes the open-axis nested loop, accumulating the K
// diagonal pairs into one term per destination cell before folding
// through combine (spec.md §4.3: "the loop iterates the K diagonal axes
// and accumulates op(A[...]) into one destination cell").
func traceBase[T Numeric](alpha, beta Coefficient[T], a, c StridedView[T], dims []int, diagStrideSum, diagExtent []int) {
	n := len(dims)
	k := len(diagStrideSum)

	accumulate := func(aBase int) T {
		if k == 0 {
			return a.At(aBase)
		}
		for _, e := range diagExtent {
			if e == 0 {
				var zero T
				return zero
			}
		}
		var dIdxBuf [strideutil.MaxDims]int
		dIdx := dIdxBuf[:k]
		for i := range dIdx {
			dIdx[i] = 0
		}
		var sum T
		off := aBase
		for {
			sum += a.At(off)
			axis := k - 1
			for axis >= 0 {
				dIdx[axis]++
				off += diagStrideSum[axis]
				if dIdx[axis] < diagExtent[axis] {
					break
				}
				off -= diagStrideSum[axis] * diagExtent[axis]
				dIdx[axis] = 0
				axis--
			}
			if axis < 0 {
				break
			}
		}
		return sum
	}

	if n == 0 {
		c.Set(0, combine(alpha, beta, accumulate(0), c.At(0)))
		return
	}

	var idxBuf [strideutil.MaxDims]int
	idx := idxBuf[:n]
	for i := range idx {
		idx[i] = 0
	}

	aOff, cOff := 0, 0
	for {
		term := accumulate(aOff)
		c.Set(cOff, combine(alpha, beta, term, c.At(cOff)))

		axis := n - 1
		for axis >= 0 {
			idx[axis]++
			aOff += a.Strides[axis]
			cOff += c.Strides[axis]
			if idx[axis] < dims[axis] {
				break
			}
			aOff -= a.Strides[axis] * dims[axis]
			cOff -= c.Strides[axis] * dims[axis]
			idx[axis] = 0
			axis--
		}
		if axis < 0 {
			break
		}
	}
}
