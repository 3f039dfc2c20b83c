// Package queue implements bounded circular-buffer queues over a fixed
// Array. Logical position i lives in physical slot (front+i) mod Cap.
package queue

import (
	"fmt"
	"iter"
	"strings"

	"github.com/emirpasic/gods/containers"

	"bounded/pkg/array"
	"bounded/pkg/assert"
	"bounded/pkg/errs"
	"bounded/pkg/storage"
)

// Queue is a FIFO of at most Cap elements.
type Queue[T any, S any, H storage.Holder[[]T, S]] struct {
	arr   array.Array[T, S, H]
	front int
	back  int
	len   int
}

var _ containers.Container = (*Queue[int, storage.Direct[[]int], *storage.Direct[[]int]])(nil)

// New returns an empty queue with room for capacity elements.
func New[T any, S any, H storage.Holder[[]T, S]](capacity int) *Queue[T, S, H] {
	var zero T
	return NewWith[T, S, H](capacity, zero)
}

// NewWith returns an empty queue whose unused slots are filled with fill.
func NewWith[T any, S any, H storage.Holder[[]T, S]](capacity int, fill T) *Queue[T, S, H] {
	return &Queue[T, S, H]{arr: array.New[T, S, H](capacity, fill)}
}

// FromSlice returns a full queue with elems[0] at the front. The queue
// takes ownership of elems.
func FromSlice[T any, S any, H storage.Holder[[]T, S]](elems []T) *Queue[T, S, H] {
	return &Queue[T, S, H]{arr: array.From[T, S, H](elems), len: len(elems)}
}

func (q *Queue[T, S, H]) Len() int {
	return q.len
}

func (q *Queue[T, S, H]) Cap() int {
	return q.arr.Len()
}

func (q *Queue[T, S, H]) IsEmpty() bool {
	return q.len == 0
}

func (q *Queue[T, S, H]) IsFull() bool {
	return q.len == q.arr.Len()
}

// Enqueue appends v at the back.
func (q *Queue[T, S, H]) Enqueue(v T) error {
	if q.IsFull() {
		return errs.NotEnoughSpace(1)
	}
	q.EnqueueUnchecked(v)
	return nil
}

// EnqueueUnchecked is Enqueue without the capacity check.
func (q *Queue[T, S, H]) EnqueueUnchecked(v T) {
	assert.That(q.len < q.arr.Len(), "enqueue on full queue (cap %d)", q.arr.Len())
	q.arr.Set(q.back, v)
	q.back = q.next(q.back)
	q.len++
}

// Dequeue removes and returns the front element.
func (q *Queue[T, S, H]) Dequeue() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, errs.NotEnoughElements(1)
	}
	return q.DequeueUnchecked(), nil
}

// DequeueUnchecked is Dequeue without the emptiness check.
func (q *Queue[T, S, H]) DequeueUnchecked() T {
	assert.That(q.len > 0, "dequeue on empty queue")
	v := q.arr.Get(q.front)
	q.front = q.next(q.front)
	q.len--
	return v
}

// Peek returns the front element.
func (q *Queue[T, S, H]) Peek() (T, error) {
	return q.PeekNth(0)
}

// PeekNth returns the element k positions behind the front.
func (q *Queue[T, S, H]) PeekNth(k int) (T, error) {
	p, err := q.PeekNthMut(k)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

func (q *Queue[T, S, H]) PeekNthMut(k int) (*T, error) {
	if k < 0 {
		return nil, errs.IndexOutOfBounds(k)
	}
	if k >= q.len {
		return nil, errs.NotEnoughElements(k + 1 - q.len)
	}
	return q.arr.Ref(q.physical(k)), nil
}

// PeekNthUnchecked is PeekNth without the length check.
func (q *Queue[T, S, H]) PeekNthUnchecked(k int) T {
	assert.That(k >= 0 && k < q.len, "peek %d on queue of len %d", k, q.len)
	return q.arr.Get(q.physical(k))
}

// Extend enqueues from seq until it is exhausted or the queue is full.
// Elements accepted before the queue filled up stay enqueued; the error
// only reports that seq had more to give.
func (q *Queue[T, S, H]) Extend(seq iter.Seq[T]) error {
	var err error
	for v := range seq {
		if q.IsFull() {
			err = errs.NotEnoughSpace(1)
			break
		}
		q.EnqueueUnchecked(v)
	}
	return err
}

// Clear empties the queue and rewinds the cursors.
func (q *Queue[T, S, H]) Clear() {
	q.front, q.back, q.len = 0, 0, 0
}

// ToSlice copies the elements front to back.
func (q *Queue[T, S, H]) ToSlice() []T {
	out := make([]T, 0, q.len)
	for _, v := range q.All() {
		out = append(out, v)
	}
	return out
}

// ToArray copies the first n elements into a new Array placed like the
// queue's own buffer.
func (q *Queue[T, S, H]) ToArray(n int) (array.Array[T, S, H], error) {
	if n < 0 {
		return array.Array[T, S, H]{}, errs.IndexOutOfBounds(n)
	}
	if n > q.len {
		return array.Array[T, S, H]{}, errs.NotEnoughElements(n - q.len)
	}
	buf := make([]T, n)
	for i := range buf {
		buf[i] = q.arr.Get(q.physical(i))
	}
	return array.From[T, S, H](buf), nil
}

// All yields elements front to back with their logical position.
func (q *Queue[T, S, H]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < q.len; i++ {
			if !yield(i, q.arr.Get(q.physical(i))) {
				return
			}
		}
	}
}

func (q *Queue[T, S, H]) Empty() bool {
	return q.IsEmpty()
}

func (q *Queue[T, S, H]) Size() int {
	return q.len
}

// Values returns the elements front to back.
func (q *Queue[T, S, H]) Values() []interface{} {
	out := make([]interface{}, 0, q.len)
	for _, v := range q.All() {
		out = append(out, v)
	}
	return out
}

func (q *Queue[T, S, H]) String() string {
	parts := make([]string, 0, q.len)
	for _, v := range q.All() {
		parts = append(parts, fmt.Sprint(v))
	}
	return fmt.Sprintf("Queue[%d/%d]\n%s", q.len, q.arr.Len(), strings.Join(parts, ", "))
}

func (q *Queue[T, S, H]) physical(i int) int {
	return (q.front + i) % q.arr.Len()
}

func (q *Queue[T, S, H]) next(i int) int {
	i++
	if i == q.arr.Len() {
		return 0
	}
	return i
}

func (q *Queue[T, S, H]) prev(i int) int {
	if i == 0 {
		return q.arr.Len() - 1
	}
	return i - 1
}
