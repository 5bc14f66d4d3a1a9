package strided

import "github.com/itohio/straxis/pkg/strided/internal/strideutil"

// runAdd implements the add effect C <- beta*C + alpha*op(permute(A)).
// a and c are already permuted so their axes align 1:1 (a's axis i
// supplies c's axis i); dims is c's shape in that aligned order.
//
// alpha=0 is handled before any recursion: per spec.md's boundary
// scenario S4, that path must not read A at all.
func runAdd[T Numeric](alpha, beta Coefficient[T], a, c StridedView[T], dims []int, baseCaseOps int) {
	if strideutil.Size(dims) == 0 {
		return
	}
	if isNoOp(alpha, beta) {
		return
	}
	if alpha.Kind == KindZero {
		scaleRec(beta, c, dims, baseCaseOps)
		return
	}

	oDims, strides, minStrides := optimizeAxes(dims, c.Strides, a.Strides)
	aOpt := a
	aOpt.Strides = strides[1]
	cOpt := c
	cOpt.Strides = strides[0]
	addRec(alpha, beta, aOpt, cOpt, oDims, minStrides, baseCaseOps)
}

// addRec is the divide-and-conquer traversal of spec.md §4.3. dims is
// mutated in place across the two recursive calls (and restored before
// returning) to avoid allocating a fresh slice per split.
func addRec[T Numeric](alpha, beta Coefficient[T], a, c StridedView[T], dims, minStrides []int, baseCaseOps int) {
	total := productInts(dims)
	if total == 0 {
		return
	}
	if total <= baseCaseOps || maxInt(dims) <= 1 {
		addBase(alpha, beta, a, c, dims)
		return
	}

	k := splitAxis(dims, minStrides)
	orig := dims[k]
	d1 := orig / 2

	dims[k] = d1
	addRec(alpha, beta, a, c, dims, minStrides, baseCaseOps)

	a2 := a.Sub(d1 * a.Strides[k])
	c2 := c.Sub(d1 * c.Strides[k])
	dims[k] = orig - d1
	addRec(alpha, beta, a2, c2, dims, minStrides, baseCaseOps)

	dims[k] = orig
}

// addBase executes the tight nested loop of spec.md §4.3's base case. The
// (alpha, beta) combination has already excluded alpha=Zero by the time
// this is reached, leaving the six ScalarDispatcher specializations
// folded into the single combine() call per element.
func addBase[T Numeric](alpha, beta Coefficient[T], a, c StridedView[T], dims []int) {
	n := len(dims)
	if n == 0 {
		c.Set(0, combine(alpha, beta, a.At(0), c.At(0)))
		return
	}

	var idxBuf [strideutil.MaxDims]int
	idx := idxBuf[:n]
	for i := range idx {
		idx[i] = 0
	}

	aOff, cOff := 0, 0
	for {
		c.Set(cOff, combine(alpha, beta, a.At(aOff), c.At(cOff)))

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

// scaleRec and scaleBase implement the alpha=0 path: C <- beta*C with no
// read of A whatsoever. scaleRecImpl splits dims the same way addRec
// does, using C's own stride magnitudes as minStrides since C is the only
// array touched.
func scaleRec[T Numeric](beta Coefficient[T], c StridedView[T], dims []int, baseCaseOps int) {
	minStrides := make([]int, len(dims))
	for i, s := range c.Strides {
		if s < 0 {
			s = -s
		}
		minStrides[i] = s
	}
	scaleRecImpl(beta, c, dims, minStrides, baseCaseOps)
}

func scaleRecImpl[T Numeric](beta Coefficient[T], c StridedView[T], dims, minStrides []int, baseCaseOps int) {
	if productInts(dims) <= baseCaseOps || maxInt(dims) <= 1 {
		scaleBase(beta, c, dims)
		return
	}
	k := splitAxis(dims, minStrides)
	orig := dims[k]
	d1 := orig / 2

	dims[k] = d1
	scaleRecImpl(beta, c, dims, minStrides, baseCaseOps)

	c2 := c.Sub(d1 * c.Strides[k])
	dims[k] = orig - d1
	scaleRecImpl(beta, c2, dims, minStrides, baseCaseOps)

	dims[k] = orig
}

func scaleBase[T Numeric](beta Coefficient[T], c StridedView[T], dims []int) {
	n := len(dims)
	if n == 0 {
		c.Set(0, scaleBeta(beta, c.At(0)))
		return
	}

	var idxBuf [strideutil.MaxDims]int
	idx := idxBuf[:n]
	for i := range idx {
		idx[i] = 0
	}

	cOff := 0
	for {
		c.Set(cOff, scaleBeta(beta, c.At(cOff)))

		axis := n - 1
		for axis >= 0 {
			idx[axis]++
			cOff += c.Strides[axis]
			if idx[axis] < dims[axis] {
				break
			}
			cOff -= c.Strides[axis] * dims[axis]
			idx[axis] = 0
			axis--
		}
		if axis < 0 {
			break
		}
	}
}
