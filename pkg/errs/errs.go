// Package errs holds the failure kinds shared by every bounded container.
//
// Capacity and element shortfalls carry the number of missing slots so the
// caller can decide how much to drain or refill before retrying.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when index or counter arithmetic would leave
	// its valid range upwards.
	ErrOverflow = errors.New("overflow")
	// ErrUnderflow is returned when index or counter arithmetic would go
	// below zero.
	ErrUnderflow = errors.New("underflow")
)

// ErrNotEnoughSpace indicates that a write needs Needed more free slots
// than the container has left.
type ErrNotEnoughSpace struct {
	Needed int
}

func (e *ErrNotEnoughSpace) Error() string {
	return fmt.Sprintf("not enough space: need %d more", e.Needed)
}

// Is matches any *ErrNotEnoughSpace, regardless of Needed.
func (e *ErrNotEnoughSpace) Is(target error) bool {
	_, ok := target.(*ErrNotEnoughSpace)
	return ok
}

// ErrNotEnoughElements indicates that a read or removal needs Needed more
// elements than are present.
type ErrNotEnoughElements struct {
	Needed int
}

func (e *ErrNotEnoughElements) Error() string {
	return fmt.Sprintf("not enough elements: need %d more", e.Needed)
}

func (e *ErrNotEnoughElements) Is(target error) bool {
	_, ok := target.(*ErrNotEnoughElements)
	return ok
}

// ErrIndexOutOfBounds indicates that Index exceeds a runtime bound.
type ErrIndexOutOfBounds struct {
	Index int
}

func (e *ErrIndexOutOfBounds) Error() string {
	return fmt.Sprintf("index out of bounds: %d", e.Index)
}

func (e *ErrIndexOutOfBounds) Is(target error) bool {
	_, ok := target.(*ErrIndexOutOfBounds)
	return ok
}

// ErrDimensionMismatch indicates a bit length that does not fit the byte
// capacity backing it.
type ErrDimensionMismatch struct {
	BitLen  int
	ByteCap int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: %d bits do not fit %d bytes", e.BitLen, e.ByteCap)
}

func (e *ErrDimensionMismatch) Is(target error) bool {
	_, ok := target.(*ErrDimensionMismatch)
	return ok
}

// NotEnoughSpace returns an *ErrNotEnoughSpace for n slots.
func NotEnoughSpace(n int) error {
	return &ErrNotEnoughSpace{Needed: n}
}

// NotEnoughElements returns an *ErrNotEnoughElements for n elements.
func NotEnoughElements(n int) error {
	return &ErrNotEnoughElements{Needed: n}
}

// IndexOutOfBounds returns an *ErrIndexOutOfBounds for i.
func IndexOutOfBounds(i int) error {
	return &ErrIndexOutOfBounds{Index: i}
}

// DimensionMismatch returns an *ErrDimensionMismatch for the given sizes.
func DimensionMismatch(bitLen, byteCap int) error {
	return &ErrDimensionMismatch{BitLen: bitLen, ByteCap: byteCap}
}
