package kernel

import "github.com/born-ml/strided/internal/ndarray"

// binaryDirect selects the loop nest for direct buffers.
func binaryDirect[A, B, C any](p *plan, x []A, y []B, z []C, fn func(A, B) C) {
	switch p.ndim {
	case 0:
		z[p.offsets[2]] = fn(x[p.offsets[0]], y[p.offsets[1]])
	case 1:
		binary1d(p, x, y, z, fn)
	case 2:
		binary2d(p, x, y, z, fn)
	case 3:
		binary3d(p, x, y, z, fn)
	default:
		binaryNd(p, x, y, z, fn)
	}
}

func binary1d[A, B, C any](p *plan, x []A, y []B, z []C, fn func(A, B) C) {
	ix, iy, iz := p.offsets[0], p.offsets[1], p.offsets[2]
	dx0, dy0, dz0 := p.deltas[0][0], p.deltas[1][0], p.deltas[2][0]
	for i0 := p.extents[0]; i0 > 0; i0-- {
		z[iz] = fn(x[ix], y[iy])
		ix += dx0
		iy += dy0
		iz += dz0
	}
}

func binary2d[A, B, C any](p *plan, x []A, y []B, z []C, fn func(A, B) C) {
	s0, s1 := p.extents[0], p.extents[1]
	dx0, dx1 := p.deltas[0][0], p.deltas[0][1]
	dy0, dy1 := p.deltas[1][0], p.deltas[1][1]
	dz0, dz1 := p.deltas[2][0], p.deltas[2][1]
	ix, iy, iz := p.offsets[0], p.offsets[1], p.offsets[2]
	for i1 := 0; i1 < s1; i1++ {
		for i0 := 0; i0 < s0; i0++ {
			z[iz] = fn(x[ix], y[iy])
			ix += dx0
			iy += dy0
			iz += dz0
		}
		ix += dx1
		iy += dy1
		iz += dz1
	}
}

func binary3d[A, B, C any](p *plan, x []A, y []B, z []C, fn func(A, B) C) {
	s0, s1, s2 := p.extents[0], p.extents[1], p.extents[2]
	dx0, dx1, dx2 := p.deltas[0][0], p.deltas[0][1], p.deltas[0][2]
	dy0, dy1, dy2 := p.deltas[1][0], p.deltas[1][1], p.deltas[1][2]
	dz0, dz1, dz2 := p.deltas[2][0], p.deltas[2][1], p.deltas[2][2]
	ix, iy, iz := p.offsets[0], p.offsets[1], p.offsets[2]
	for i2 := 0; i2 < s2; i2++ {
		for i1 := 0; i1 < s1; i1++ {
			for i0 := 0; i0 < s0; i0++ {
				z[iz] = fn(x[ix], y[iy])
				ix += dx0
				iy += dy0
				iz += dz0
			}
			ix += dx1
			iy += dy1
			iz += dz1
		}
		ix += dx2
		iy += dy2
		iz += dz2
	}
}

func binaryNd[A, B, C any](p *plan, x []A, y []B, z []C, fn func(A, B) C) {
	ext := p.extents[:p.ndim]
	dx, dy, dz := p.deltas[0], p.deltas[1], p.deltas[2]
	cnt := p.counter[:p.ndim]
	clear(cnt)

	s0, dx0, dy0, dz0 := ext[0], dx[0], dy[0], dz[0]
	ix, iy, iz := p.offsets[0], p.offsets[1], p.offsets[2]
	for {
		for i0 := 0; i0 < s0; i0++ {
			z[iz] = fn(x[ix], y[iy])
			ix += dx0
			iy += dy0
			iz += dz0
		}
		k := 1
		for ; k < len(ext); k++ {
			ix += dx[k]
			iy += dy[k]
			iz += dz[k]
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

// binaryAccessor runs the accessor loop nests. Only the single-level case
// is specialized; the rest share the carry-propagation walk.
func binaryAccessor[SA, A, SB, B, SC, C any](
	p *plan,
	x []SA, gx ndarray.Accessor[SA, A],
	y []SB, gy ndarray.Accessor[SB, B],
	z []SC, gz ndarray.Accessor[SC, C],
	fn func(A, B) C,
) {
	ix, iy, iz := p.offsets[0], p.offsets[1], p.offsets[2]
	if p.ndim == 0 {
		gz.Set(z, iz, fn(gx.Get(x, ix), gy.Get(y, iy)))
		return
	}

	ext := p.extents[:p.ndim]
	dx, dy, dz := p.deltas[0], p.deltas[1], p.deltas[2]
	s0, dx0, dy0, dz0 := ext[0], dx[0], dy[0], dz[0]
	if p.ndim == 1 {
		for i0 := 0; i0 < s0; i0++ {
			gz.Set(z, iz, fn(gx.Get(x, ix), gy.Get(y, iy)))
			ix += dx0
			iy += dy0
			iz += dz0
		}
		return
	}

	cnt := p.counter[:p.ndim]
	clear(cnt)
	for {
		for i0 := 0; i0 < s0; i0++ {
			gz.Set(z, iz, fn(gx.Get(x, ix), gy.Get(y, iy)))
			ix += dx0
			iy += dy0
			iz += dz0
		}
		k := 1
		for ; k < len(ext); k++ {
			ix += dx[k]
			iy += dy[k]
			iz += dz[k]
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
