package stack

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bounded/pkg/errs"
	"bounded/pkg/storage"
)

type u8Direct = storage.Direct[[]uint8]
type intDirect = storage.Direct[[]int]
type intBoxed = storage.Boxed[[]int]

func TestScenarioPushPop(t *testing.T) {
	s := New[uint8, u8Direct](2)

	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	assert.Equal(t, errs.NotEnoughSpace(1), s.Push(3))

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, uint8(2), v)

	v, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v)

	_, err = s.Pop()
	assert.Equal(t, errs.NotEnoughElements(1), err)
}

func TestFullAfterCapPushes(t *testing.T) {
	for _, capacity := range []int{0, 1, 2, 7, 64} {
		s := New[int, intBoxed](capacity)
		for i := range capacity {
			require.NoError(t, s.Push(i))
		}
		assert.True(t, s.IsFull())
		assert.Equal(t, errs.NotEnoughSpace(1), s.Push(-1))
		assert.Equal(t, capacity, s.Len())
	}
}

func TestPeek(t *testing.T) {
	s := FromSlice[int, intDirect]([]int{10, 20, 30})
	assert.True(t, s.IsFull())

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 30, top)

	v, err := s.PeekNth(2)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	_, err = s.PeekNth(3)
	assert.Equal(t, errs.NotEnoughElements(3), err)
	_, err = s.PeekNth(5)
	assert.Equal(t, errs.NotEnoughElements(5), err)
	_, err = s.PeekNthMut(4)
	assert.Equal(t, errs.NotEnoughElements(4), err)
	_, err = s.PeekNth(-1)
	assert.Equal(t, errs.IndexOutOfBounds(-1), err)

	p, err := s.PeekMut()
	require.NoError(t, err)
	*p = 33
	assert.Equal(t, 33, s.PeekNthUnchecked(0))

	empty := New[int, intDirect](1)
	_, err = empty.Peek()
	assert.Equal(t, errs.NotEnoughElements(1), err)
	_, err = empty.PeekMut()
	assert.Equal(t, errs.NotEnoughElements(1), err)
	_, err = empty.PeekNth(0)
	assert.Equal(t, errs.NotEnoughElements(0), err)
}

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		init []int
		word func(s *Stack[int, intDirect, *intDirect]) error
		want []int
	}{
		{"swap", []int{1, 2}, (*Stack[int, intDirect, *intDirect]).Swap, []int{2, 1}},
		{"swap2", []int{1, 2, 3, 4}, (*Stack[int, intDirect, *intDirect]).Swap2, []int{3, 4, 1, 2}},
		{"rotate", []int{0, 1, 2, 3}, (*Stack[int, intDirect, *intDirect]).Rotate, []int{0, 2, 3, 1}},
		{"rotate cc", []int{1, 2, 3}, (*Stack[int, intDirect, *intDirect]).RotateCC, []int{3, 1, 2}},
		{"rotate2", []int{1, 2, 3, 4, 5, 6}, (*Stack[int, intDirect, *intDirect]).Rotate2, []int{3, 4, 5, 6, 1, 2}},
		{"rotate2 cc", []int{1, 2, 3, 4, 5, 6}, (*Stack[int, intDirect, *intDirect]).Rotate2CC, []int{5, 6, 1, 2, 3, 4}},
		{"duplicate", []int{1}, (*Stack[int, intDirect, *intDirect]).Duplicate, []int{1, 1}},
		{"duplicate2", []int{1, 2}, (*Stack[int, intDirect, *intDirect]).Duplicate2, []int{1, 2, 1, 2}},
		{"over", []int{1, 2}, (*Stack[int, intDirect, *intDirect]).Over, []int{1, 2, 1}},
		{"over2", []int{1, 2, 3, 4}, (*Stack[int, intDirect, *intDirect]).Over2, []int{1, 2, 3, 4, 1, 2}},
		{"tuck", []int{1, 2}, (*Stack[int, intDirect, *intDirect]).Tuck, []int{2, 1, 2}},
		{"tuck2", []int{1, 2, 3, 4}, (*Stack[int, intDirect, *intDirect]).Tuck2, []int{3, 4, 1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New[int, intDirect](8)
			for _, v := range tt.init {
				require.NoError(t, s.Push(v))
			}
			require.NoError(t, tt.word(s))
			assert.Equal(t, tt.want, s.ToSlice())
		})
	}
}

func TestWordPreconditions(t *testing.T) {
	type word = func(s *Stack[int, intDirect, *intDirect]) error

	tests := []struct {
		name     string
		capacity int
		init     []int
		word     word
		want     error
	}{
		{"swap shallow", 4, []int{1}, (*Stack[int, intDirect, *intDirect]).Swap, errs.NotEnoughElements(1)},
		{"swap2 shallow", 4, []int{1, 2}, (*Stack[int, intDirect, *intDirect]).Swap2, errs.NotEnoughElements(2)},
		{"rotate shallow", 4, nil, (*Stack[int, intDirect, *intDirect]).Rotate, errs.NotEnoughElements(3)},
		{"rotate2 shallow", 8, []int{1, 2, 3, 4, 5}, (*Stack[int, intDirect, *intDirect]).Rotate2, errs.NotEnoughElements(1)},
		{"duplicate empty", 4, nil, (*Stack[int, intDirect, *intDirect]).Duplicate, errs.NotEnoughElements(1)},
		{"duplicate full", 1, []int{1}, (*Stack[int, intDirect, *intDirect]).Duplicate, errs.NotEnoughSpace(1)},
		{"duplicate2 one free", 3, []int{1, 2}, (*Stack[int, intDirect, *intDirect]).Duplicate2, errs.NotEnoughSpace(1)},
		{"over2 full", 4, []int{1, 2, 3, 4}, (*Stack[int, intDirect, *intDirect]).Over2, errs.NotEnoughSpace(2)},
		{"tuck shallow and full", 1, []int{1}, (*Stack[int, intDirect, *intDirect]).Tuck, errs.NotEnoughElements(1)},
		{"tuck2 full", 5, []int{1, 2, 3, 4}, (*Stack[int, intDirect, *intDirect]).Tuck2, errs.NotEnoughSpace(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New[int, intDirect](tt.capacity)
			for _, v := range tt.init {
				require.NoError(t, s.Push(v))
			}
			assert.Equal(t, tt.want, tt.word(s))
			assert.Equal(t, len(tt.init), s.Len())
			if len(tt.init) > 0 {
				assert.Equal(t, tt.init, s.ToSlice())
			}
		})
	}
}

func TestLIFOAgainstArrayStack(t *testing.T) {
	const capacity = 16
	rnd := rand.New(rand.NewSource(1))
	s := New[int, intBoxed](capacity)
	ref := arraystack.New()

	for i := range 5000 {
		if rnd.Intn(2) == 0 {
			err := s.Push(i)
			if ref.Size() == capacity {
				assert.Equal(t, errs.NotEnoughSpace(1), err)
				continue
			}
			require.NoError(t, err)
			ref.Push(i)
		} else {
			got, err := s.Pop()
			want, ok := ref.Pop()
			if !ok {
				assert.Equal(t, errs.NotEnoughElements(1), err)
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
		require.Equal(t, ref.Size(), s.Size())
		require.Equal(t, ref.Values(), s.Values())
	}
}

func TestDropClearAndIteration(t *testing.T) {
	s := FromSlice[int, intDirect]([]int{1, 2, 3, 4})

	var depths []int
	var values []int
	for k, v := range s.All() {
		depths = append(depths, k)
		values = append(values, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, depths)
	assert.Equal(t, []int{4, 3, 2, 1}, values)

	require.NoError(t, s.Drop(2))
	assert.Equal(t, []int{1, 2}, s.ToSlice())
	assert.Equal(t, errs.NotEnoughElements(1), s.Drop(3))
	require.NoError(t, s.Drop(0))
	assert.Equal(t, []int{1, 2}, s.ToSlice())

	s.Clear()
	assert.True(t, s.Empty())
	assert.Empty(t, s.ToSlice())
	assert.Equal(t, 4, s.Cap())
}

func TestDropRejectsBadCounts(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want error
	}{
		{"negative", -1, errs.IndexOutOfBounds(-1)},
		{"far negative", -5, errs.IndexOutOfBounds(-5)},
		{"one too many", 3, errs.NotEnoughElements(1)},
		{"past capacity", 4, errs.NotEnoughElements(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New[int, intDirect](2)
			require.NoError(t, s.Push(1))
			require.NoError(t, s.Push(2))

			assert.Equal(t, tt.want, s.Drop(tt.n))
			assert.Equal(t, 2, s.Len())
			assert.Equal(t, []int{1, 2}, s.ToSlice())
			assert.Equal(t, errs.NotEnoughSpace(1), s.Push(3))

			top, err := s.Peek()
			require.NoError(t, err)
			assert.Equal(t, 2, top)
		})
	}
}

func TestUncheckedValidUse(t *testing.T) {
	s := New[int, intDirect](2)
	s.PushUnchecked(7)
	s.PushUnchecked(8)
	assert.Equal(t, 7, s.PeekNthUnchecked(1))
	assert.Equal(t, 8, s.PopUnchecked())
	assert.Equal(t, 7, s.PopUnchecked())
	assert.True(t, s.IsEmpty())
}

func TestString(t *testing.T) {
	s := FromSlice[int, intDirect]([]int{1, 2})
	assert.Equal(t, "Stack[2/2]\n2, 1", s.String())
}
