// Package nonmax provides an unsigned index type that reserves its maximum
// value as "no index". An optional Index[N] therefore costs exactly the
// size of N.
package nonmax

import (
	"fmt"

	"bounded/pkg/errs"
)

// Unsigned lists the index widths an Index can be built on.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Index is either a value in [0, Max) or none, encoded as Max.
// The zero Index is 0, not none.
type Index[N Unsigned] struct {
	v N
}

// Max returns the sentinel value of N.
func Max[N Unsigned]() N {
	return ^N(0)
}

// New returns i as an Index, or none when i is the sentinel.
func New[N Unsigned](i N) Index[N] {
	return Index[N]{v: i}
}

// None returns the empty Index.
func None[N Unsigned]() Index[N] {
	return Index[N]{v: Max[N]()}
}

// FromInt converts a non-negative int, failing when it does not fit below
// the sentinel.
func FromInt[N Unsigned](i int) (Index[N], error) {
	if i < 0 {
		return None[N](), errs.ErrUnderflow
	}
	if uint64(i) >= uint64(Max[N]()) {
		return None[N](), errs.ErrOverflow
	}
	return Index[N]{v: N(i)}, nil
}

func (x Index[N]) IsNone() bool {
	return x.v == Max[N]()
}

func (x Index[N]) IsSome() bool {
	return !x.IsNone()
}

// Get returns the index and whether it is present.
func (x Index[N]) Get() (N, bool) {
	return x.v, !x.IsNone()
}

// Int returns the index as an int and whether it is present.
func (x Index[N]) Int() (int, bool) {
	return int(x.v), !x.IsNone()
}

// MustGet returns the index and panics on none.
func (x Index[N]) MustGet() N {
	if x.IsNone() {
		panic(fmt.Errorf("nonmax: none index"))
	}
	return x.v
}

// Raw returns the stored representation, which is Max for none.
func (x Index[N]) Raw() N {
	return x.v
}

// Increment returns x+1. It fails with ErrOverflow when the result would be
// the sentinel, including when x is none.
func (x Index[N]) Increment() (Index[N], error) {
	if x.IsNone() || x.v+1 == Max[N]() {
		return x, errs.ErrOverflow
	}
	return Index[N]{v: x.v + 1}, nil
}

// Decrement returns x-1. It fails with ErrUnderflow at 0 and on none.
func (x Index[N]) Decrement() (Index[N], error) {
	if x.IsNone() || x.v == 0 {
		return x, errs.ErrUnderflow
	}
	return Index[N]{v: x.v - 1}, nil
}

func (x Index[N]) String() string {
	if x.IsNone() {
		return "none"
	}
	return fmt.Sprint(uint64(x.v))
}
