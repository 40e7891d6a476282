package kernel

import "github.com/born-ml/strided/internal/ndarray"

// MapFunc receives an element, its logical index tuple and the input's
// back-reference. The tuple is owned by the kernel and is only valid for the
// duration of the call: don't modify or retain it.
type MapFunc[A, B any] func(v A, idx []int, ref any) B

// mapDirect walks all levels keeping p.index in logical dimension order.
func mapDirect[A, B any](p *plan, x []A, y []B, fn MapFunc[A, B], ref any) {
	idx := p.index[:p.rank]
	clear(idx)
	if p.ndim == 0 {
		y[p.offsets[1]] = fn(x[p.offsets[0]], idx, ref)
		return
	}

	ext := p.extents[:p.ndim]
	perm := p.perm
	dx, dy := p.deltas[0], p.deltas[1]
	cnt := p.counter[:p.ndim]
	clear(cnt)

	inner := perm[0]
	s0, dx0, dy0 := ext[0], dx[0], dy[0]
	ix, iy := p.offsets[0], p.offsets[1]
	for {
		for i0 := 0; i0 < s0; i0++ {
			idx[inner] = i0
			y[iy] = fn(x[ix], idx, ref)
			ix += dx0
			iy += dy0
		}
		k := 1
		for ; k < len(ext); k++ {
			ix += dx[k]
			iy += dy[k]
			cnt[k]++
			if cnt[k] < ext[k] {
				idx[perm[k]] = cnt[k]
				break
			}
			cnt[k] = 0
			idx[perm[k]] = 0
		}
		if k == len(ext) {
			return
		}
	}
}

func mapAccessor[SA, A, SB, B any](
	p *plan, x []SA, gx ndarray.Accessor[SA, A], y []SB, gy ndarray.Accessor[SB, B], fn MapFunc[A, B], ref any,
) {
	idx := p.index[:p.rank]
	clear(idx)
	if p.ndim == 0 {
		gy.Set(y, p.offsets[1], fn(gx.Get(x, p.offsets[0]), idx, ref))
		return
	}

	ext := p.extents[:p.ndim]
	perm := p.perm
	dx, dy := p.deltas[0], p.deltas[1]
	cnt := p.counter[:p.ndim]
	clear(cnt)

	inner := perm[0]
	s0, dx0, dy0 := ext[0], dx[0], dy[0]
	ix, iy := p.offsets[0], p.offsets[1]
	for {
		for i0 := 0; i0 < s0; i0++ {
			idx[inner] = i0
			gy.Set(y, iy, fn(gx.Get(x, ix), idx, ref))
			ix += dx0
			iy += dy0
		}
		k := 1
		for ; k < len(ext); k++ {
			ix += dx[k]
			iy += dy[k]
			cnt[k]++
			if cnt[k] < ext[k] {
				idx[perm[k]] = cnt[k]
				break
			}
			cnt[k] = 0
			idx[perm[k]] = 0
		}
		if k == len(ext) {
			return
		}
	}
}
