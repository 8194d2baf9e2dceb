package vecalg

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseNormalizeBools maps every non-zero value of src to 1 in dst.
//
// min(v, 1) is 0 for zero and 1 for anything else, so no compare is needed.
// A tail shorter than a vector is covered by one extra window that ends at
// the last element; the overlap is rewritten with the same values. Inputs
// shorter than one vector take the scalar path.
func BaseNormalizeBools[T hwy.UnsignedInts](dst, src []T) {
	n := min(len(dst), len(src))
	lanes := hwy.MaxLanes[T]()
	if n < lanes {
		normalizeScalar(dst[:n], src[:n])
		return
	}

	vOne := hwy.Set(T(1))
	i := 0
	for ; i+lanes <= n; i += lanes {
		hwy.Store(hwy.Min(hwy.Load(src[i:]), vOne), dst[i:])
	}
	if i < n {
		i = n - lanes
		hwy.Store(hwy.Min(hwy.Load(src[i:]), vOne), dst[i:])
	}
}
