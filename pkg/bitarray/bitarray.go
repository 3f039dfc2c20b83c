// Package bitarray implements a fixed-length bit vector packed into a byte
// Array.
//
// Bit i lives in byte i/8 under mask 1<<(i%8), so bit 0 is the least
// significant bit of byte 0. The byte capacity may exceed what the bit
// length needs; bits at or past BitLen are padding and never affect
// comparisons, counts or formatting.
package bitarray

import (
	"iter"
	"math/bits"

	"bounded/pkg/array"
	"bounded/pkg/assert"
	"bounded/pkg/errs"
	"bounded/pkg/storage"
)

type BitArray[S any, H storage.Holder[[]byte, S]] struct {
	arr    array.Array[byte, S, H]
	bitLen int
}

// New returns a BitArray of bitLen logical bits backed by byteCap bytes,
// with every physical bit set to bit.
func New[S any, H storage.Holder[[]byte, S]](bitLen, byteCap int, bit bool) (*BitArray[S, H], error) {
	if bitLen < 0 || byteCap < 0 || bitLen > byteCap*8 {
		return nil, errs.DimensionMismatch(bitLen, byteCap)
	}
	return NewUnchecked[S, H](bitLen, byteCap, bit), nil
}

func NewZeroed[S any, H storage.Holder[[]byte, S]](bitLen, byteCap int) (*BitArray[S, H], error) {
	return New[S, H](bitLen, byteCap, false)
}

func NewOned[S any, H storage.Holder[[]byte, S]](bitLen, byteCap int) (*BitArray[S, H], error) {
	return New[S, H](bitLen, byteCap, true)
}

// NewUnchecked is New without the dimension check.
func NewUnchecked[S any, H storage.Holder[[]byte, S]](bitLen, byteCap int, bit bool) *BitArray[S, H] {
	assert.That(bitLen >= 0 && bitLen <= byteCap*8, "%d bits do not fit %d bytes", bitLen, byteCap)
	return &BitArray[S, H]{
		arr:    array.New[byte, S, H](byteCap, fillByte(bit)),
		bitLen: bitLen,
	}
}

// FromBytes takes ownership of buf and views its first bitLen bits.
func FromBytes[S any, H storage.Holder[[]byte, S]](bitLen int, buf []byte) (*BitArray[S, H], error) {
	if bitLen < 0 || bitLen > len(buf)*8 {
		return nil, errs.DimensionMismatch(bitLen, len(buf))
	}
	return &BitArray[S, H]{arr: array.From[byte, S, H](buf), bitLen: bitLen}, nil
}

func (b *BitArray[S, H]) BitLen() int {
	return b.bitLen
}

func (b *BitArray[S, H]) ByteCap() int {
	return b.arr.Len()
}

func (b *BitArray[S, H]) GetBit(i int) (bool, error) {
	if err := b.check(i); err != nil {
		return false, err
	}
	return b.GetBitUnchecked(i), nil
}

func (b *BitArray[S, H]) GetBitUnchecked(i int) bool {
	assert.That(i >= 0 && i < b.bitLen, "bit %d of %d", i, b.bitLen)
	return b.arr.Get(i/8)&mask(i) != 0
}

func (b *BitArray[S, H]) SetBit(i int, v bool) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.SetBitUnchecked(i, v)
	return nil
}

func (b *BitArray[S, H]) SetBitUnchecked(i int, v bool) {
	assert.That(i >= 0 && i < b.bitLen, "bit %d of %d", i, b.bitLen)
	p := b.arr.Ref(i / 8)
	if v {
		*p |= mask(i)
	} else {
		*p &^= mask(i)
	}
}

// Toggle flips bit i.
func (b *BitArray[S, H]) Toggle(i int) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.ToggleUnchecked(i)
	return nil
}

func (b *BitArray[S, H]) ToggleUnchecked(i int) {
	assert.That(i >= 0 && i < b.bitLen, "bit %d of %d", i, b.bitLen)
	*b.arr.Ref(i / 8) ^= mask(i)
}

// Fill sets every physical bit, padding included, to bit.
func (b *BitArray[S, H]) Fill(bit bool) {
	b.arr.Fill(fillByte(bit))
}

// IsZeroed reports whether every logical bit is clear.
func (b *BitArray[S, H]) IsZeroed() bool {
	return b.allBytes(0x00)
}

// IsOned reports whether every logical bit is set.
func (b *BitArray[S, H]) IsOned() bool {
	return b.allBytes(0xff)
}

// Count returns the number of set logical bits.
func (b *BitArray[S, H]) Count() int {
	full, rem := b.bitLen/8, b.bitLen%8
	buf := b.arr.Backing()
	n := 0
	for _, v := range buf[:full] {
		n += bits.OnesCount8(v)
	}
	if rem > 0 {
		n += bits.OnesCount8(buf[full] & tailMask(rem))
	}
	return n
}

// Equal reports whether both arrays have the same bit length and the same
// logical bits. Padding and byte capacity are ignored.
func (b *BitArray[S, H]) Equal(other *BitArray[S, H]) bool {
	if b.bitLen != other.bitLen {
		return false
	}
	full, rem := b.bitLen/8, b.bitLen%8
	x, y := b.arr.Backing(), other.arr.Backing()
	for i := range full {
		if x[i] != y[i] {
			return false
		}
	}
	return rem == 0 || (x[full]^y[full])&tailMask(rem) == 0
}

// Bytes returns a copy of the bytes holding logical bits, with padding
// bits cleared.
func (b *BitArray[S, H]) Bytes() []byte {
	n := (b.bitLen + 7) / 8
	out := make([]byte, n)
	copy(out, b.arr.Backing()[:n])
	if rem := b.bitLen % 8; rem > 0 {
		out[n-1] &= tailMask(rem)
	}
	return out
}

// All yields every logical bit from index 0 upwards.
func (b *BitArray[S, H]) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < b.bitLen; i++ {
			if !yield(i, b.GetBitUnchecked(i)) {
				return
			}
		}
	}
}

func (b *BitArray[S, H]) check(i int) error {
	if i < 0 || i >= b.bitLen {
		return errs.IndexOutOfBounds(i)
	}
	return nil
}

// allBytes compares the logical bits against the repeated byte pattern.
func (b *BitArray[S, H]) allBytes(pattern byte) bool {
	full, rem := b.bitLen/8, b.bitLen%8
	buf := b.arr.Backing()
	for _, v := range buf[:full] {
		if v != pattern {
			return false
		}
	}
	if rem == 0 {
		return true
	}
	m := tailMask(rem)
	return buf[full]&m == pattern&m
}

func mask(i int) byte {
	return 1 << (i % 8)
}

// tailMask keeps the low rem bits of the last partial byte.
func tailMask(rem int) byte {
	return byte(1)<<rem - 1
}

func fillByte(bit bool) byte {
	if bit {
		return 0xff
	}
	return 0x00
}
