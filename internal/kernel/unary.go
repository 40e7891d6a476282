package kernel

import "github.com/born-ml/strided/internal/ndarray"

// unaryDirect selects the loop nest for direct buffers.
func unaryDirect[A, B any](p *plan, x []A, y []B, fn func(A) B) {
	switch p.ndim {
	case 0:
		y[p.offsets[1]] = fn(x[p.offsets[0]])
	case 1:
		unary1d(p, x, y, fn)
	case 2:
		unary2d(p, x, y, fn)
	case 3:
		unary3d(p, x, y, fn)
	default:
		unaryNd(p, x, y, fn)
	}
}

func unary1d[A, B any](p *plan, x []A, y []B, fn func(A) B) {
	ix, iy := p.offsets[0], p.offsets[1]
	dx0, dy0 := p.deltas[0][0], p.deltas[1][0]
	for i0 := p.extents[0]; i0 > 0; i0-- {
		y[iy] = fn(x[ix])
		ix += dx0
		iy += dy0
	}
}

func unary2d[A, B any](p *plan, x []A, y []B, fn func(A) B) {
	s0, s1 := p.extents[0], p.extents[1]
	dx0, dx1 := p.deltas[0][0], p.deltas[0][1]
	dy0, dy1 := p.deltas[1][0], p.deltas[1][1]
	ix, iy := p.offsets[0], p.offsets[1]
	for i1 := 0; i1 < s1; i1++ {
		for i0 := 0; i0 < s0; i0++ {
			y[iy] = fn(x[ix])
			ix += dx0
			iy += dy0
		}
		ix += dx1
		iy += dy1
	}
}

func unary3d[A, B any](p *plan, x []A, y []B, fn func(A) B) {
	s0, s1, s2 := p.extents[0], p.extents[1], p.extents[2]
	dx0, dx1, dx2 := p.deltas[0][0], p.deltas[0][1], p.deltas[0][2]
	dy0, dy1, dy2 := p.deltas[1][0], p.deltas[1][1], p.deltas[1][2]
	ix, iy := p.offsets[0], p.offsets[1]
	for i2 := 0; i2 < s2; i2++ {
		for i1 := 0; i1 < s1; i1++ {
			for i0 := 0; i0 < s0; i0++ {
				y[iy] = fn(x[ix])
				ix += dx0
				iy += dy0
			}
			ix += dx1
			iy += dy1
		}
		ix += dx2
		iy += dy2
	}
}

// unaryNd walks any number of levels with carry propagation over p.counter.
func unaryNd[A, B any](p *plan, x []A, y []B, fn func(A) B) {
	ext := p.extents[:p.ndim]
	dx, dy := p.deltas[0], p.deltas[1]
	cnt := p.counter[:p.ndim]
	clear(cnt)

	s0, dx0, dy0 := ext[0], dx[0], dy[0]
	ix, iy := p.offsets[0], p.offsets[1]
	for {
		for i0 := 0; i0 < s0; i0++ {
			y[iy] = fn(x[ix])
			ix += dx0
			iy += dy0
		}
		k := 1
		for ; k < len(ext); k++ {
			ix += dx[k]
			iy += dy[k]
			cnt[k]++
			if cnt[k] < ext[k] {
				break
			}
			cnt[k] = 0
		}
		if k == len(ext) {
			return
		}
	}
}

// unaryAccessor selects the loop nest when elements go through accessors.
func unaryAccessor[SA, A, SB, B any](
	p *plan, x []SA, gx ndarray.Accessor[SA, A], y []SB, gy ndarray.Accessor[SB, B], fn func(A) B,
) {
	switch p.ndim {
	case 0:
		gy.Set(y, p.offsets[1], fn(gx.Get(x, p.offsets[0])))
	case 1:
		ix, iy := p.offsets[0], p.offsets[1]
		dx0, dy0 := p.deltas[0][0], p.deltas[1][0]
		for i0 := p.extents[0]; i0 > 0; i0-- {
			gy.Set(y, iy, fn(gx.Get(x, ix)))
			ix += dx0
			iy += dy0
		}
	case 2:
		s0, s1 := p.extents[0], p.extents[1]
		dx0, dx1 := p.deltas[0][0], p.deltas[0][1]
		dy0, dy1 := p.deltas[1][0], p.deltas[1][1]
		ix, iy := p.offsets[0], p.offsets[1]
		for i1 := 0; i1 < s1; i1++ {
			for i0 := 0; i0 < s0; i0++ {
				gy.Set(y, iy, fn(gx.Get(x, ix)))
				ix += dx0
				iy += dy0
			}
			ix += dx1
			iy += dy1
		}
	default:
		unaryAccessorNd(p, x, gx, y, gy, fn)
	}
}

func unaryAccessorNd[SA, A, SB, B any](
	p *plan, x []SA, gx ndarray.Accessor[SA, A], y []SB, gy ndarray.Accessor[SB, B], fn func(A) B,
) {
	ext := p.extents[:p.ndim]
	dx, dy := p.deltas[0], p.deltas[1]
	cnt := p.counter[:p.ndim]
	clear(cnt)

	s0, dx0, dy0 := ext[0], dx[0], dy[0]
	ix, iy := p.offsets[0], p.offsets[1]
	for {
		for i0 := 0; i0 < s0; i0++ {
			gy.Set(y, iy, fn(gx.Get(x, ix)))
			ix += dx0
			iy += dy0
		}
		k := 1
		for ; k < len(ext); k++ {
			ix += dx[k]
			iy += dy[k]
			cnt[k]++
			if cnt[k] < ext[k] {
				break
			}
			cnt[k] = 0
		}
		if k == len(ext) {
			return
		}
	}
}
