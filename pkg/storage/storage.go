// Package storage decides where a container's fixed-size buffer lives.
//
// Containers are generic over a storage cell type S together with its
// pointer H, which must implement Holder. Two cells exist:
//
//	Direct[V]  V is kept inline in the owning struct
//	Boxed[V]   V is kept behind exactly one heap pointer
//
// Both give the same access to the held value, so container logic is
// written once and the placement is chosen by the caller:
//
//	s := stack.New[int, storage.Direct[[]int]](8)
//	b := stack.New[int, storage.Boxed[[]int]](8)
package storage

// Holder is satisfied by *S when S is a storage cell for values of type V.
// Hold stores v into the cell (the From conversion) and Deref returns the
// held value for both reading and writing.
type Holder[V, S any] interface {
	*S
	Hold(v V)
	Deref() *V
}

// Hold builds a storage cell S holding v.
func Hold[V, S any, H Holder[V, S]](v V) S {
	var s S
	H(&s).Hold(v)
	return s
}

// Deref returns the value held by cell s.
func Deref[V, S any, H Holder[V, S]](s *S) *V {
	return H(s).Deref()
}

// Direct holds its value inline.
type Direct[V any] struct {
	v V
}

func (d *Direct[V]) Hold(v V) {
	d.v = v
}

func (d *Direct[V]) Deref() *V {
	return &d.v
}

// Boxed holds its value behind a single pointer. Moving a Boxed cell copies
// one word regardless of the size of V.
type Boxed[V any] struct {
	p *V
}

func (b *Boxed[V]) Hold(v V) {
	p := new(V)
	*p = v
	b.p = p
}

// Deref returns nil for a cell that never held a value.
func (b *Boxed[V]) Deref() *V {
	return b.p
}
