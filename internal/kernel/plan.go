package kernel

import (
	"sync"

	"github.com/born-ml/strided/internal/ndarray"
)

// maxOperands bounds the number of views in one call (two inputs, one output).
const maxOperands = 3

// Plans are pooled by rank (0-maxPooledRank). Ranks beyond maxPooledRank
// fall back to regular allocation.
const maxPooledRank = 8

var planPools [maxPooledRank + 1]sync.Pool

// plan is the per-call loop nest: levels are ordered innermost first.
type plan struct {
	rank     int // logical rank
	ndim     int // loop levels after coalescing
	operands int

	extents []int // per level
	perm    []int // level -> logical dimension
	counter []int // carry counters for the generic kernels
	index   []int // logical index tuple for map kernels

	offsets [maxOperands]int
	strides [maxOperands][]int // per level, after reordering
	deltas  [maxOperands][]int // per level
}

func newPlanBuffers(rank int) *plan {
	p := &plan{
		extents: make([]int, rank),
		perm:    make([]int, rank),
		counter: make([]int, rank),
		index:   make([]int, rank),
	}
	for a := range maxOperands {
		p.strides[a] = make([]int, rank)
		p.deltas[a] = make([]int, rank)
	}
	return p
}

// getPlan gets a plan from the pool or allocates a new one.
// The caller must call putPlan when done.
func getPlan(rank int) *plan {
	var p *plan
	if rank <= maxPooledRank {
		if v := planPools[rank].Get(); v != nil {
			p = v.(*plan)
		}
	}
	if p == nil {
		p = newPlanBuffers(rank)
	}
	p.rank, p.ndim, p.operands = rank, rank, 0
	return p
}

// putPlan returns a plan to the pool.
func putPlan(p *plan) {
	if p.rank <= maxPooledRank {
		planPools[p.rank].Put(p)
	}
}

// order assigns logical dimensions to levels and records the extents.
func (p *plan) order(shape ndarray.Shape, t Traversal, order ndarray.Order, strides []int) {
	selectOrder(p.perm, t, order, strides)
	for level, dim := range p.perm {
		p.extents[level] = shape[dim]
	}
}

// operand adds a view's strides (reordered into levels) and offset.
func (p *plan) operand(strides []int, offset int) {
	a := p.operands
	for level, dim := range p.perm {
		p.strides[a][level] = strides[dim]
	}
	p.offsets[a] = offset
	p.operands++
}

// coalesce drops extent-1 levels and folds a level into the one inside it
// when stride(k) == extent(k-1)*stride(k-1) holds for every operand. The
// logical permutation is meaningless afterwards.
func (p *plan) coalesce() {
	w := 0
	for k := 0; k < p.ndim; k++ {
		if p.extents[k] == 1 {
			continue
		}
		if w > 0 && p.mergeable(w-1, k) {
			p.extents[w-1] *= p.extents[k]
			continue
		}
		p.extents[w] = p.extents[k]
		for a := range p.operands {
			p.strides[a][w] = p.strides[a][k]
		}
		w++
	}
	p.ndim = w
}

func (p *plan) mergeable(inner, outer int) bool {
	for a := range p.operands {
		if p.strides[a][outer] != p.extents[inner]*p.strides[a][inner] {
			return false
		}
	}
	return true
}

// computeDeltas fills the per-level increments:
//
//	delta[0] = stride[0]
//	delta[k] = stride[k] - extent[k-1]*stride[k-1]
//
// Adding delta[k] after level k-1 wraps rewinds the inner traversal and
// advances one step along level k.
func (p *plan) computeDeltas() {
	for a := range p.operands {
		s, d := p.strides[a], p.deltas[a]
		if p.ndim == 0 {
			continue
		}
		d[0] = s[0]
		for k := 1; k < p.ndim; k++ {
			d[k] = s[k] - p.extents[k-1]*s[k-1]
		}
	}
}

// finish coalesces when requested and computes the deltas.
func (p *plan) finish(coalesce bool) {
	if coalesce {
		p.coalesce()
	}
	p.computeDeltas()
}
