package ops

import "github.com/born-ml/strided/internal/ndarray"

// broadcastPair presents a and b in their common broadcast shape. Views whose
// shape already matches are returned unchanged.
func broadcastPair[SA, A, SB, B any](
	a *ndarray.View[SA, A], b *ndarray.View[SB, B],
) (ndarray.Shape, *ndarray.View[SA, A], *ndarray.View[SB, B], error) {
	outShape, needsBroadcast, err := ndarray.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, nil, nil, err
	}
	if !needsBroadcast {
		return outShape, a, b, nil
	}

	av, err := broadcastTo(a, outShape)
	if err != nil {
		return nil, nil, nil, err
	}
	bv, err := broadcastTo(b, outShape)
	if err != nil {
		return nil, nil, nil, err
	}
	return outShape, av, bv, nil
}

func broadcastTo[S, E any](v *ndarray.View[S, E], shape ndarray.Shape) (*ndarray.View[S, E], error) {
	if v.Shape().Equal(shape) {
		return v, nil
	}
	return v.BroadcastTo(shape)
}
