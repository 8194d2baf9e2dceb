package vecalg

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseIndexOf returns the index of the first element of s equal to v, or -1.
//
// Each window is compared against the broadcast needle and the answer is
// the first true lane of the equality mask. The final window is backed up
// to end at the last element; its overlapping lanes already failed, so its
// first true lane is still the first match.
func BaseIndexOf[T hwy.UnsignedInts](s []T, v T) int {
	lanes := hwy.MaxLanes[T]()
	if len(s) < lanes {
		return indexOfScalar(s, v)
	}

	vNeedle := hwy.Set(v)
	i := 0
	for ; i+lanes <= len(s); i += lanes {
		if k := hwy.FindFirstTrue(hwy.Equal(hwy.Load(s[i:]), vNeedle)); k >= 0 {
			return i + k
		}
	}
	if i < len(s) {
		i = len(s) - lanes
		if k := hwy.FindFirstTrue(hwy.Equal(hwy.Load(s[i:]), vNeedle)); k >= 0 {
			return i + k
		}
	}
	return -1
}
