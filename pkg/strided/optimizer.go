package strided

import "sort"

// optimizeAxes implements the StrideOptimizer of spec.md §4.2, generalized
// to an arbitrary number of stride tuples (2 for add, 2 for trace's open
// axes, handled separately for contract — see kernel_contract.go).
//
// It reorders the shared axis set described by dims so the axis whose
// stride in strideSets[0] (the destination, by convention) has the
// smallest magnitude becomes innermost (last), ties broken by the
// following tuples in order. It returns the permuted dims, freshly
// allocated permuted copies of every stride tuple (same order as
// strideSets), and minStrides[k] = min over all tuples of |stride[k]| —
// the quantity the recursive splitter maximizes (times extent) when
// picking a split axis.
func optimizeAxes(dims []int, strideSets ...[]int) (outDims []int, outStrides [][]int, minStrides []int) {
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

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		for t := range strideSets {
			ka, kb := abs(strideSets[t][a]), abs(strideSets[t][b])
			if ka != kb {
				return ka > kb // largest stride first -> outermost
			}
		}
		return a < b
	})

	outDims = make([]int, n)
	outStrides = make([][]int, len(strideSets))
	for t := range strideSets {
		outStrides[t] = make([]int, n)
	}
	minStrides = make([]int, n)

	for i, axis := range order {
		outDims[i] = dims[axis]
		m := -1
		for t := range strideSets {
			s := abs(strideSets[t][axis])
			outStrides[t][i] = strideSets[t][axis]
			if m == -1 || s < m {
				m = s
			}
		}
		minStrides[i] = m
	}
	return outDims, outStrides, minStrides
}

// splitAxis picks the axis maximizing dims[k]*minStrides[k], the one
// whose subdivision shrinks the touched footprint the most.
func splitAxis(dims, minStrides []int) int {
	best := 0
	bestScore := dims[0] * minStrides[0]
	for i := 1; i < len(dims); i++ {
		score := dims[i] * minStrides[i]
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

func productInts(xs []int) int {
	p := 1
	for _, x := range xs {
		p *= x
	}
	return p
}

func maxInt(xs []int) int {
	m := 0
	for _, x := range xs {
		if x > m {
			m = x
		}
	}
	return m
}
