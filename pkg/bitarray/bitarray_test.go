package bitarray

import (
	"fmt"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bounded/pkg/errs"
	"bounded/pkg/storage"
)

type direct = storage.Direct[[]byte]
type boxed = storage.Boxed[[]byte]

func TestScenarioThreeBits(t *testing.T) {
	b, err := NewZeroed[direct](3, 1)
	require.NoError(t, err)

	v, err := b.GetBit(2)
	require.NoError(t, err)
	assert.False(t, v)

	require.NoError(t, b.SetBit(2, true))
	v, err = b.GetBit(2)
	require.NoError(t, err)
	assert.True(t, v)

	_, err = b.GetBit(3)
	assert.Equal(t, errs.IndexOutOfBounds(3), err)
}

func TestDimensionMismatch(t *testing.T) {
	tests := []struct {
		bitLen, byteCap int
		ok              bool
	}{
		{0, 0, true},
		{8, 1, true},
		{9, 1, false},
		{9, 2, true},
		{3, 4, true},
		{-1, 1, false},
		{1, -1, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.bitLen, tt.byteCap), func(t *testing.T) {
			_, err := NewOned[boxed](tt.bitLen, tt.byteCap)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, errs.DimensionMismatch(tt.bitLen, tt.byteCap), err)
			}
		})
	}
}

func TestRoundTripLeavesOtherBits(t *testing.T) {
	for _, bitLen := range []int{1, 7, 8, 13, 24} {
		byteCap := (bitLen+7)/8 + 1
		for i := range bitLen {
			b, err := NewZeroed[direct](bitLen, byteCap)
			require.NoError(t, err)
			require.NoError(t, b.SetBit(i, true))

			for j := range bitLen {
				got, err := b.GetBit(j)
				require.NoError(t, err)
				assert.Equal(t, i == j, got, "bitLen %d set %d read %d", bitLen, i, j)
			}

			require.NoError(t, b.SetBit(i, false))
			assert.True(t, b.IsZeroed())
		}
	}
}

func TestFillingEveryBit(t *testing.T) {
	for _, bitLen := range []int{1, 5, 8, 11, 16} {
		z, err := NewZeroed[direct](bitLen, 3)
		require.NoError(t, err)
		o, err := NewOned[boxed](bitLen, 3)
		require.NoError(t, err)

		for i := range bitLen {
			assert.False(t, z.IsOned())
			assert.False(t, o.IsZeroed())
			require.NoError(t, z.SetBit(i, true))
			require.NoError(t, o.SetBit(i, false))
		}
		assert.True(t, z.IsOned(), "bitLen %d", bitLen)
		assert.True(t, o.IsZeroed(), "bitLen %d", bitLen)
		assert.Equal(t, bitLen, z.Count())
		assert.Equal(t, 0, o.Count())
	}
}

func TestPaddingIgnored(t *testing.T) {
	b, err := FromBytes[direct](3, []byte{0b1111_1000, 0xff})
	require.NoError(t, err)
	assert.True(t, b.IsZeroed())
	assert.Equal(t, 0, b.Count())
	assert.Equal(t, []byte{0x00}, b.Bytes())

	o, err := FromBytes[direct](3, []byte{0b0000_0111})
	require.NoError(t, err)
	assert.True(t, o.IsOned())

	z, err := NewZeroed[direct](3, 1)
	require.NoError(t, err)
	assert.True(t, b.Equal(z))

	_, err = FromBytes[direct](17, []byte{0, 0})
	assert.Equal(t, errs.DimensionMismatch(17, 2), err)
}

func TestToggle(t *testing.T) {
	b, err := NewZeroed[direct](10, 2)
	require.NoError(t, err)

	require.NoError(t, b.Toggle(9))
	v, _ := b.GetBit(9)
	assert.True(t, v)
	require.NoError(t, b.Toggle(9))
	assert.True(t, b.IsZeroed())

	assert.Equal(t, errs.IndexOutOfBounds(10), b.Toggle(10))
	assert.Equal(t, errs.IndexOutOfBounds(-1), b.SetBit(-1, true))

	b.ToggleUnchecked(0)
	assert.True(t, b.GetBitUnchecked(0))
}

func TestLayoutLSBFirst(t *testing.T) {
	b, err := NewZeroed[direct](16, 2)
	require.NoError(t, err)
	require.NoError(t, b.SetBit(0, true))
	require.NoError(t, b.SetBit(9, true))
	assert.Equal(t, []byte{0x01, 0x02}, b.Bytes())
}

func TestFormat(t *testing.T) {
	b, err := FromBytes[direct](11, []byte{0b1010_0101, 0b1111_1110})
	require.NoError(t, err)

	assert.Equal(t, "11010100101", fmt.Sprintf("%b", b))
	assert.Equal(t, "11010100101", b.String())
	assert.Equal(t, "11010100101", fmt.Sprintf("%v", b))
	assert.Equal(t, "0b11010100101", fmt.Sprintf("%#b", b))
	assert.Equal(t, "6a5", fmt.Sprintf("%x", b))
	assert.Equal(t, "6A5", fmt.Sprintf("%X", b))
	assert.Equal(t, "0x6a5", fmt.Sprintf("%#x", b))
	assert.Equal(t, "3245", fmt.Sprintf("%o", b))
	assert.Equal(t, "0o3245", fmt.Sprintf("%#o", b))
	assert.Equal(t, "%!d(bitarray=11010100101)", fmt.Sprintf("%d", b))

	empty, err := NewZeroed[direct](0, 0)
	require.NoError(t, err)
	assert.Equal(t, "", empty.String())
}

func TestFormatWidth(t *testing.T) {
	b, err := FromBytes[direct](3, []byte{0b101})
	require.NoError(t, err)

	tests := []struct {
		format string
		want   string
	}{
		{"%8b", "     101"},
		{"%-8b|", "101     |"},
		{"%08b", "00000101"},
		{"%#8b", "   0b101"},
		{"%#08b", "0b000101"},
		{"%#-7x|", "0x5    |"},
		{"%2b", "101"},
		{"%4X", "   5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fmt.Sprintf(tt.format, b), tt.format)
	}
}

func TestEqual(t *testing.T) {
	a, _ := FromBytes[direct](12, []byte{0xab, 0x0c})
	b, _ := FromBytes[direct](12, []byte{0xab, 0xfc, 0x77})
	c, _ := FromBytes[direct](11, []byte{0xab, 0x0c})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	require.NoError(t, b.Toggle(11))
	assert.False(t, a.Equal(b))
}

func TestBitmapInterop(t *testing.T) {
	b, err := NewZeroed[boxed](20, 3)
	require.NoError(t, err)
	for _, i := range []int{0, 3, 8, 19} {
		require.NoError(t, b.SetBit(i, true))
	}

	bm := b.ToBitmap()
	assert.Equal(t, []uint32{0, 3, 8, 19}, bm.ToArray())

	back, err := FromBitmap[direct](bm, 20, 3)
	require.NoError(t, err)
	assert.Equal(t, b.Bytes(), back.Bytes())

	_, err = FromBitmap[direct](roaring.BitmapOf(25), 20, 3)
	assert.Equal(t, errs.IndexOutOfBounds(25), err)

	_, err = FromBitmap[direct](roaring.New(), 30, 3)
	assert.Equal(t, errs.DimensionMismatch(30, 3), err)
}

func TestAllOrder(t *testing.T) {
	b, _ := FromBytes[direct](4, []byte{0b0000_1001})
	var got []bool
	for _, v := range b.All() {
		got = append(got, v)
	}
	assert.Equal(t, []bool{true, false, false, true}, got)
}
