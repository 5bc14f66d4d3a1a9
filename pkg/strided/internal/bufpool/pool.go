// Package bufpool provides tiered buffer reuse for the contraction
// planner's scratch allocations (permuted operand matrices, the
// olenA x olenB accumulator). The BLAS path of a Contract call acquires
// them and returns them with defer once each one has been handed back to
// it; a panic before that point (while an operand is still being planned
// or permuted) leaves the buffers acquired so far to the garbage
// collector instead of returning them to the pool.
package bufpool

import "sync"

const (
	defaultTierCount  = 8
	defaultTierStart  = 64
	defaultTierFactor = 4
)

// Pool reuses []T buffers across a handful of capacity tiers so repeated
// contractions of similar shape do not churn the allocator.
type Pool[T any] struct {
	once      sync.Once
	bounds    []int
	tierPools []sync.Pool
}

func (p *Pool[T]) ensure() {
	p.once.Do(func() {
		bounds := make([]int, defaultTierCount)
		v := defaultTierStart
		for i := range bounds {
			bounds[i] = v
			v *= defaultTierFactor
		}
		p.bounds = bounds
		p.tierPools = make([]sync.Pool, len(bounds)+1)
		for i := range p.tierPools {
			if i < len(bounds) {
				maxLen := bounds[i]
				p.tierPools[i].New = func() any { return make([]T, 0, maxLen) }
			}
		}
	})
}

func (p *Pool[T]) tierIndex(n int) int {
	for i, bound := range p.bounds {
		if n <= bound {
			return i
		}
	}
	return len(p.bounds)
}

// Get returns a buffer of length n. Contents are not guaranteed zeroed.
func (p *Pool[T]) Get(n int) []T {
	p.ensure()
	idx := p.tierIndex(n)
	raw := p.tierPools[idx].Get()
	var buf []T
	if raw != nil {
		buf = raw.([]T)
	}
	if cap(buf) < n {
		newCap := n
		if idx < len(p.bounds) && p.bounds[idx] > newCap {
			newCap = p.bounds[idx]
		}
		buf = make([]T, 0, newCap)
	}
	return buf[:n]
}

// Put returns buf to its tier for reuse.
func (p *Pool[T]) Put(buf []T) {
	if buf == nil {
		return
	}
	p.ensure()
	idx := p.tierIndex(cap(buf))
	p.tierPools[idx].Put(buf[:0]) //nolint:staticcheck // reused below its original cap
}
