// Package linkedlist implements a doubly-linked list whose nodes live in a
// fixed-capacity arena and link to each other by index.
//
// The index type I bounds the arena: an arena indexed by uint8 holds at
// most 255 nodes, since the value 255 encodes "no node". Indices stay
// valid until the node they name is removed; removed slots are recycled
// through a free list before untouched slots are handed out.
package linkedlist

import (
	"fmt"
	"iter"
	"strings"

	"github.com/emirpasic/gods/containers"

	"bounded/pkg/array"
	"bounded/pkg/bitarray"
	"bounded/pkg/errs"
	"bounded/pkg/nonmax"
	"bounded/pkg/storage"
	"bounded/pkg/util"
)

type occupancy = bitarray.BitArray[storage.Direct[[]byte], *storage.Direct[[]byte]]

type List[T any, I nonmax.Unsigned, S any, H storage.Holder[[]Node[T, I], S]] struct {
	nodes array.Array[Node[T, I], S, H]
	live  *occupancy
	head  nonmax.Index[I]
	tail  nonmax.Index[I]
	free  nonmax.Index[I]
	bump  int
	len   int
}

var _ containers.Container = (*List[int, uint8, DirectNodes[int, uint8], *DirectNodes[int, uint8]])(nil)

// New returns an empty list with an arena of capacity nodes. The capacity
// must leave the sentinel value of I unused.
func New[T any, I nonmax.Unsigned, S any, H storage.Holder[[]Node[T, I], S]](capacity int) (*List[T, I, S, H], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("negative capacity %d: %w", capacity, errs.ErrUnderflow)
	}
	if uint64(capacity) > uint64(nonmax.Max[I]()) {
		return nil, fmt.Errorf("capacity %d exceeds index limit %d: %w", capacity, uint64(nonmax.Max[I]()), errs.ErrOverflow)
	}

	live := util.Must(bitarray.NewZeroed[storage.Direct[[]byte]](capacity, (capacity+7)/8))

	return &List[T, I, S, H]{
		nodes: array.New[Node[T, I], S, H](capacity, emptyNode[T, I]()),
		live:  live,
		head:  nonmax.None[I](),
		tail:  nonmax.None[I](),
		free:  nonmax.None[I](),
	}, nil
}

func (l *List[T, I, S, H]) Len() int {
	return l.len
}

func (l *List[T, I, S, H]) Cap() int {
	return l.nodes.Len()
}

func (l *List[T, I, S, H]) IsEmpty() bool {
	return l.len == 0
}

func (l *List[T, I, S, H]) IsFull() bool {
	return l.len == l.nodes.Len()
}

// First returns the index of the head node.
func (l *List[T, I, S, H]) First() (I, error) {
	i, ok := l.head.Get()
	if !ok {
		return 0, errs.NotEnoughElements(1)
	}
	return i, nil
}

// Last returns the index of the tail node.
func (l *List[T, I, S, H]) Last() (I, error) {
	i, ok := l.tail.Get()
	if !ok {
		return 0, errs.NotEnoughElements(1)
	}
	return i, nil
}

// Next returns the successor of idx, none at the tail.
func (l *List[T, I, S, H]) Next(idx I) (nonmax.Index[I], error) {
	if err := l.check(idx); err != nil {
		return nonmax.None[I](), err
	}
	return l.node(idx).next, nil
}

// Prev returns the predecessor of idx, none at the head.
func (l *List[T, I, S, H]) Prev(idx I) (nonmax.Index[I], error) {
	if err := l.check(idx); err != nil {
		return nonmax.None[I](), err
	}
	return l.node(idx).prev, nil
}

func (l *List[T, I, S, H]) Get(idx I) (T, error) {
	p, err := l.GetMut(idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

func (l *List[T, I, S, H]) GetMut(idx I) (*T, error) {
	if err := l.check(idx); err != nil {
		return nil, err
	}
	return &l.node(idx).Data, nil
}

func (l *List[T, I, S, H]) PushFront(v T) (I, error) {
	i, err := l.alloc(v)
	if err != nil {
		return 0, err
	}
	l.link(nonmax.None[I](), i, l.head)
	return i, nil
}

func (l *List[T, I, S, H]) PushBack(v T) (I, error) {
	i, err := l.alloc(v)
	if err != nil {
		return 0, err
	}
	l.link(l.tail, i, nonmax.None[I]())
	return i, nil
}

// InsertAfter places v right after the node at idx and returns the new
// node's index.
func (l *List[T, I, S, H]) InsertAfter(idx I, v T) (I, error) {
	if err := l.check(idx); err != nil {
		return 0, err
	}
	i, err := l.alloc(v)
	if err != nil {
		return 0, err
	}
	l.link(nonmax.New(idx), i, l.node(idx).next)
	return i, nil
}

// InsertBefore places v right before the node at idx.
func (l *List[T, I, S, H]) InsertBefore(idx I, v T) (I, error) {
	if err := l.check(idx); err != nil {
		return 0, err
	}
	i, err := l.alloc(v)
	if err != nil {
		return 0, err
	}
	l.link(l.node(idx).prev, i, nonmax.New(idx))
	return i, nil
}

// RemoveAfter unlinks the successor of idx and returns its data.
func (l *List[T, I, S, H]) RemoveAfter(idx I) (T, error) {
	if err := l.check(idx); err != nil {
		var zero T
		return zero, err
	}
	succ, ok := l.node(idx).next.Get()
	if !ok {
		var zero T
		return zero, errs.NotEnoughElements(1)
	}
	return l.unlink(succ), nil
}

// Remove unlinks the node at idx and returns its data. The slot is reused
// by the next insertion.
func (l *List[T, I, S, H]) Remove(idx I) (T, error) {
	if err := l.check(idx); err != nil {
		var zero T
		return zero, err
	}
	return l.unlink(idx), nil
}

func (l *List[T, I, S, H]) PopFront() (T, error) {
	i, err := l.First()
	if err != nil {
		var zero T
		return zero, err
	}
	return l.unlink(i), nil
}

func (l *List[T, I, S, H]) PopBack() (T, error) {
	i, err := l.Last()
	if err != nil {
		var zero T
		return zero, err
	}
	return l.unlink(i), nil
}

// Clear drops every node and forgets all slot history.
func (l *List[T, I, S, H]) Clear() {
	l.nodes.Fill(emptyNode[T, I]())
	l.live.Fill(false)
	l.head, l.tail, l.free = nonmax.None[I](), nonmax.None[I](), nonmax.None[I]()
	l.bump, l.len = 0, 0
}

// All yields nodes head to tail with their indices.
func (l *List[T, I, S, H]) All() iter.Seq2[I, T] {
	return func(yield func(I, T) bool) {
		for cur := l.head; cur.IsSome(); {
			i := cur.MustGet()
			n := l.node(i)
			if !yield(i, n.Data) {
				return
			}
			cur = n.next
		}
	}
}

// Backward yields nodes tail to head with their indices.
func (l *List[T, I, S, H]) Backward() iter.Seq2[I, T] {
	return func(yield func(I, T) bool) {
		for cur := l.tail; cur.IsSome(); {
			i := cur.MustGet()
			n := l.node(i)
			if !yield(i, n.Data) {
				return
			}
			cur = n.prev
		}
	}
}

func (l *List[T, I, S, H]) ToSlice() []T {
	out := make([]T, 0, l.len)
	for _, v := range l.All() {
		out = append(out, v)
	}
	return out
}

func (l *List[T, I, S, H]) Empty() bool {
	return l.IsEmpty()
}

func (l *List[T, I, S, H]) Size() int {
	return l.len
}

func (l *List[T, I, S, H]) Values() []interface{} {
	out := make([]interface{}, 0, l.len)
	for _, v := range l.All() {
		out = append(out, v)
	}
	return out
}

func (l *List[T, I, S, H]) String() string {
	parts := make([]string, 0, l.len)
	for _, v := range l.All() {
		parts = append(parts, fmt.Sprint(v))
	}
	return fmt.Sprintf("List[%d/%d]\n%s", l.len, l.nodes.Len(), strings.Join(parts, ", "))
}

func (l *List[T, I, S, H]) node(i I) *Node[T, I] {
	return l.nodes.Ref(int(i))
}

// check accepts only indices of currently linked nodes.
func (l *List[T, I, S, H]) check(idx I) error {
	i := int(idx)
	if i < 0 || i >= l.bump || !l.live.GetBitUnchecked(i) {
		return errs.IndexOutOfBounds(i)
	}
	return nil
}

// alloc takes a slot from the free list, then from the untouched tail of
// the arena, and stores v in it.
func (l *List[T, I, S, H]) alloc(v T) (I, error) {
	var i I
	if f, ok := l.free.Get(); ok {
		i = f
		l.free = l.node(i).next
	} else if l.bump < l.nodes.Len() {
		i = I(l.bump)
		l.bump++
	} else {
		return 0, errs.NotEnoughSpace(1)
	}

	n := l.node(i)
	n.Data = v
	n.next, n.prev = nonmax.None[I](), nonmax.None[I]()
	l.live.SetBitUnchecked(int(i), true)
	l.len++
	return i, nil
}

// link places the allocated node i between prev and next, either of which
// may be none.
func (l *List[T, I, S, H]) link(prev nonmax.Index[I], i I, next nonmax.Index[I]) {
	self := nonmax.New(i)
	n := l.node(i)
	n.prev, n.next = prev, next

	if p, ok := prev.Get(); ok {
		l.node(p).next = self
	} else {
		l.head = self
	}
	if nx, ok := next.Get(); ok {
		l.node(nx).prev = self
	} else {
		l.tail = self
	}
}

// unlink detaches node i, returns its slot to the free list and hands back
// its data.
func (l *List[T, I, S, H]) unlink(i I) T {
	n := l.node(i)
	prev, next := n.prev, n.next

	if p, ok := prev.Get(); ok {
		l.node(p).next = next
	} else {
		l.head = next
	}
	if nx, ok := next.Get(); ok {
		l.node(nx).prev = prev
	} else {
		l.tail = prev
	}

	data := n.Data
	*n = emptyNode[T, I]()
	n.next = l.free
	l.free = nonmax.New(i)
	l.live.SetBitUnchecked(int(i), false)
	l.len--
	return data
}
