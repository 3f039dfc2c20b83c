package array

import (
	"fmt"
	"iter"

	"bounded/pkg/storage"
)

// Array is a fixed-length buffer of T whose placement is decided by the
// storage cell S. Its length is set at construction and never changes.
type Array[T any, S any, H storage.Holder[[]T, S]] struct {
	cell   S
	length int
}

// New returns an Array of length elements, each a copy of fill.
func New[T any, S any, H storage.Holder[[]T, S]](length int, fill T) Array[T, S, H] {
	if length < 0 {
		panic(fmt.Errorf("negative array length: %d", length))
	}

	buf := make([]T, length)
	for i := range buf {
		buf[i] = fill
	}
	return From[T, S, H](buf)
}

// From moves elems into a new Array. The caller must not use elems
// afterwards.
func From[T any, S any, H storage.Holder[[]T, S]](elems []T) Array[T, S, H] {
	return Array[T, S, H]{
		cell:   storage.Hold[[]T, S, H](elems),
		length: len(elems),
	}
}

func (a *Array[T, S, H]) Get(index int) T {
	return *a.Ref(index)
}

// Ref returns a pointer to the element at index. It stays valid for the
// lifetime of the Array.
func (a *Array[T, S, H]) Ref(index int) *T {
	a.checkBounds(index)
	return &a.buf()[index]
}

func (a *Array[T, S, H]) Set(index int, val T) {
	a.checkBounds(index)
	a.buf()[index] = val
}

// Replace stores val at index and returns the previous element.
func (a *Array[T, S, H]) Replace(index int, val T) T {
	a.checkBounds(index)
	buf := a.buf()
	old := buf[index]
	buf[index] = val
	return old
}

func (a *Array[T, S, H]) Swap(i, j int) {
	a.checkBounds(i)
	a.checkBounds(j)
	buf := a.buf()
	buf[i], buf[j] = buf[j], buf[i]
}

func (a *Array[T, S, H]) Fill(val T) {
	buf := a.buf()
	for i := range buf {
		buf[i] = val
	}
}

func (a *Array[T, S, H]) Len() int {
	return a.length
}

// Backing exposes the whole buffer. Writes through it are visible to the
// Array.
func (a *Array[T, S, H]) Backing() []T {
	return a.buf()
}

// Clone returns a deep copy of the buffer placed in the same kind of cell.
func (a *Array[T, S, H]) Clone() Array[T, S, H] {
	buf := make([]T, a.length)
	copy(buf, a.buf())
	return From[T, S, H](buf)
}

func (a *Array[T, S, H]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.buf() {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (a *Array[T, S, H]) buf() []T {
	if a.length == 0 {
		return nil
	}
	return *H(&a.cell).Deref()
}

func (a *Array[T, S, H]) checkBounds(index int) {
	if index < 0 || index >= a.length {
		panic(fmt.Errorf("out of bounds: %d, len:%d", index, a.length))
	}
}
