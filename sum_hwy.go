package nearseg

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseSum computes the sum of a slice.
func BaseSum[T hwy.Floats](data []T) T {
	vSum := hwy.Zero[T]()

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			vSum = hwy.Add(vSum, hwy.Load(data[offset:]))
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vSum = hwy.Add(vSum, hwy.MaskLoad(mask, data[offset:]))
		},
	)

	return hwy.ReduceSum(vSum)
}
