package queue

import (
	"github.com/emirpasic/gods/containers"

	"bounded/pkg/array"
	"bounded/pkg/assert"
	"bounded/pkg/errs"
	"bounded/pkg/storage"
)

// Deque is a Queue that also grows and shrinks at the other end.
type Deque[T any, S any, H storage.Holder[[]T, S]] struct {
	Queue[T, S, H]
}

var _ containers.Container = (*Deque[int, storage.Direct[[]int], *storage.Direct[[]int]])(nil)

func NewDeque[T any, S any, H storage.Holder[[]T, S]](capacity int) *Deque[T, S, H] {
	var zero T
	return NewDequeWith[T, S, H](capacity, zero)
}

func NewDequeWith[T any, S any, H storage.Holder[[]T, S]](capacity int, fill T) *Deque[T, S, H] {
	return &Deque[T, S, H]{Queue[T, S, H]{arr: array.New[T, S, H](capacity, fill)}}
}

// DequeFromSlice returns a full deque with elems[0] at the front.
func DequeFromSlice[T any, S any, H storage.Holder[[]T, S]](elems []T) *Deque[T, S, H] {
	return &Deque[T, S, H]{*FromSlice[T, S, H](elems)}
}

func (d *Deque[T, S, H]) PushBack(v T) error {
	return d.Enqueue(v)
}

func (d *Deque[T, S, H]) PopFront() (T, error) {
	return d.Dequeue()
}

// PushFront inserts v before the current front.
func (d *Deque[T, S, H]) PushFront(v T) error {
	if d.IsFull() {
		return errs.NotEnoughSpace(1)
	}
	d.PushFrontUnchecked(v)
	return nil
}

func (d *Deque[T, S, H]) PushFrontUnchecked(v T) {
	assert.That(d.len < d.arr.Len(), "push front on full deque (cap %d)", d.arr.Len())
	d.front = d.prev(d.front)
	d.arr.Set(d.front, v)
	d.len++
}

// PopBack removes and returns the back element.
func (d *Deque[T, S, H]) PopBack() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, errs.NotEnoughElements(1)
	}
	return d.PopBackUnchecked(), nil
}

func (d *Deque[T, S, H]) PopBackUnchecked() T {
	assert.That(d.len > 0, "pop back on empty deque")
	d.back = d.prev(d.back)
	d.len--
	return d.arr.Get(d.back)
}

func (d *Deque[T, S, H]) PeekBack() (T, error) {
	if d.IsEmpty() {
		var zero T
		return zero, errs.NotEnoughElements(1)
	}
	return d.arr.Get(d.prev(d.back)), nil
}
