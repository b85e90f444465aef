package container

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/coregx/fixedloc/internal/conv"
)

// naMask records the raw positions of missing elements. Missing values are
// usually rare, so a compressed bitmap keeps the mask small for large inputs.
type naMask struct {
	bm *roaring.Bitmap
}

func newNAMask(strs []Str) naMask {
	bm := roaring.New()
	for i, s := range strs {
		if s.IsNA() {
			bm.Add(conv.IntToUint32(i))
		}
	}
	bm.RunOptimize()
	return naMask{bm: bm}
}

func (m naMask) contains(raw int) bool {
	return m.bm.Contains(conv.IntToUint32(raw))
}

func (m naMask) count() int {
	return int(m.bm.GetCardinality())
}
