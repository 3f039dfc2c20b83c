package bitarray

import (
	"github.com/RoaringBitmap/roaring/v2"

	"bounded/pkg/errs"
	"bounded/pkg/storage"
)

// ToBitmap returns the indices of the set logical bits as a roaring bitmap.
func (b *BitArray[S, H]) ToBitmap() *roaring.Bitmap {
	bm := roaring.New()
	for i, set := range b.All() {
		if set {
			bm.Add(uint32(i))
		}
	}
	return bm
}

// FromBitmap returns a zeroed BitArray with the bits listed in bm set.
// Every index in bm must be below bitLen.
func FromBitmap[S any, H storage.Holder[[]byte, S]](bm *roaring.Bitmap, bitLen, byteCap int) (*BitArray[S, H], error) {
	b, err := NewZeroed[S, H](bitLen, byteCap)
	if err != nil {
		return nil, err
	}
	if !bm.IsEmpty() && int64(bm.Maximum()) >= int64(bitLen) {
		return nil, errs.IndexOutOfBounds(int(bm.Maximum()))
	}

	it := bm.Iterator()
	for it.HasNext() {
		b.SetBitUnchecked(int(it.Next()), true)
	}
	return b, nil
}
