// Package stack implements a bounded LIFO stack over a fixed Array,
// including the Forth-style rearrangement and duplication words.
//
// Stack diagrams in comments list elements bottom to top, so in
// ( a b -- b a ) b is the top before the call.
package stack

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

// Stack is a LIFO of at most Cap elements. Slots at and above Len hold
// filler values and are never handed out.
type Stack[T any, S any, H storage.Holder[[]T, S]] struct {
	arr array.Array[T, S, H]
	len int
}

var _ containers.Container = (*Stack[int, storage.Direct[[]int], *storage.Direct[[]int]])(nil)

// New returns an empty stack with room for capacity elements.
func New[T any, S any, H storage.Holder[[]T, S]](capacity int) *Stack[T, S, H] {
	var zero T
	return NewWith[T, S, H](capacity, zero)
}

// NewWith returns an empty stack whose unused slots are filled with fill.
func NewWith[T any, S any, H storage.Holder[[]T, S]](capacity int, fill T) *Stack[T, S, H] {
	return &Stack[T, S, H]{arr: array.New[T, S, H](capacity, fill)}
}

// FromSlice returns a full stack holding elems, the last element on top.
// The stack takes ownership of elems.
func FromSlice[T any, S any, H storage.Holder[[]T, S]](elems []T) *Stack[T, S, H] {
	return &Stack[T, S, H]{arr: array.From[T, S, H](elems), len: len(elems)}
}

func (s *Stack[T, S, H]) Len() int {
	return s.len
}

func (s *Stack[T, S, H]) Cap() int {
	return s.arr.Len()
}

func (s *Stack[T, S, H]) IsEmpty() bool {
	return s.len == 0
}

func (s *Stack[T, S, H]) IsFull() bool {
	return s.len == s.arr.Len()
}

// Push places v on top.
func (s *Stack[T, S, H]) Push(v T) error {
	if err := s.room(1); err != nil {
		return err
	}
	s.PushUnchecked(v)
	return nil
}

// PushUnchecked is Push without the capacity check.
func (s *Stack[T, S, H]) PushUnchecked(v T) {
	assert.That(s.len < s.arr.Len(), "push on full stack (cap %d)", s.arr.Len())
	s.arr.Set(s.len, v)
	s.len++
}

// Pop removes and returns the top element.
func (s *Stack[T, S, H]) Pop() (T, error) {
	if err := s.need(1); err != nil {
		var zero T
		return zero, err
	}
	return s.PopUnchecked(), nil
}

// PopUnchecked is Pop without the emptiness check.
func (s *Stack[T, S, H]) PopUnchecked() T {
	assert.That(s.len > 0, "pop on empty stack")
	s.len--
	return s.arr.Get(s.len)
}

// Drop discards the top n elements.
func (s *Stack[T, S, H]) Drop(n int) error {
	if n < 0 {
		return errs.IndexOutOfBounds(n)
	}
	if err := s.need(n); err != nil {
		return err
	}
	s.len -= n
	return nil
}

// Peek returns the top element, or NotEnoughElements(1) when empty.
func (s *Stack[T, S, H]) Peek() (T, error) {
	p, err := s.PeekMut()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

func (s *Stack[T, S, H]) PeekMut() (*T, error) {
	if err := s.need(1); err != nil {
		return nil, err
	}
	return s.arr.Ref(s.at(0)), nil
}

// PeekNth returns the element k positions below the top.
func (s *Stack[T, S, H]) PeekNth(k int) (T, error) {
	p, err := s.PeekNthMut(k)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// PeekNthMut returns a pointer to the element k positions below the top.
// A stack holding k or fewer elements yields NotEnoughElements(k).
func (s *Stack[T, S, H]) PeekNthMut(k int) (*T, error) {
	if k < 0 {
		return nil, errs.IndexOutOfBounds(k)
	}
	if s.len <= k {
		return nil, errs.NotEnoughElements(k)
	}
	return s.arr.Ref(s.at(k)), nil
}

// PeekNthUnchecked is PeekNth without the length check.
func (s *Stack[T, S, H]) PeekNthUnchecked(k int) T {
	assert.That(k >= 0 && k < s.len, "peek %d on stack of len %d", k, s.len)
	return s.arr.Get(s.at(k))
}

// Clear empties the stack. Filler slots keep their old values.
func (s *Stack[T, S, H]) Clear() {
	s.len = 0
}

// ToSlice copies the elements bottom to top.
func (s *Stack[T, S, H]) ToSlice() []T {
	out := make([]T, s.len)
	copy(out, s.arr.Backing()[:s.len])
	return out
}

// All yields elements from the top down, with their depth below the top.
func (s *Stack[T, S, H]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for k := 0; k < s.len; k++ {
			if !yield(k, s.arr.Get(s.at(k))) {
				return
			}
		}
	}
}

func (s *Stack[T, S, H]) Empty() bool {
	return s.IsEmpty()
}

func (s *Stack[T, S, H]) Size() int {
	return s.len
}

// Values returns the elements in pop order.
func (s *Stack[T, S, H]) Values() []interface{} {
	out := make([]interface{}, 0, s.len)
	for _, v := range s.All() {
		out = append(out, v)
	}
	return out
}

func (s *Stack[T, S, H]) String() string {
	parts := make([]string, 0, s.len)
	for _, v := range s.All() {
		parts = append(parts, fmt.Sprint(v))
	}
	return fmt.Sprintf("Stack[%d/%d]\n%s", s.len, s.arr.Len(), strings.Join(parts, ", "))
}

// at maps depth k below the top to a physical slot.
func (s *Stack[T, S, H]) at(k int) int {
	return s.len - 1 - k
}

func (s *Stack[T, S, H]) need(n int) error {
	if s.len < n {
		return errs.NotEnoughElements(n - s.len)
	}
	return nil
}

func (s *Stack[T, S, H]) room(n int) error {
	if free := s.arr.Len() - s.len; free < n {
		return errs.NotEnoughSpace(n - free)
	}
	return nil
}
