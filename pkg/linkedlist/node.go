package linkedlist

import (
	"unsafe"

	"bounded/pkg/nonmax"
	"bounded/pkg/storage"
)

// Node is one arena slot. Links are indices into the same arena; a none
// index marks the end of the chain. Free slots reuse next as the
// free-list link.
type Node[T any, I nonmax.Unsigned] struct {
	Data T
	next nonmax.Index[I]
	prev nonmax.Index[I]
}

// DirectNodes keeps the node arena inline in the List.
type DirectNodes[T any, I nonmax.Unsigned] = storage.Direct[[]Node[T, I]]

// BoxedNodes keeps the node arena behind one pointer.
type BoxedNodes[T any, I nonmax.Unsigned] = storage.Boxed[[]Node[T, I]]

// NodeSize returns the in-memory size of a node. Narrower index types
// shrink every node by the width saved on the link pair.
func NodeSize[T any, I nonmax.Unsigned]() int {
	var n Node[T, I]
	return n.size()
}

func (n Node[T, I]) size() int {
	return int(unsafe.Sizeof(n))
}

func emptyNode[T any, I nonmax.Unsigned]() Node[T, I] {
	return Node[T, I]{
		next: nonmax.None[I](),
		prev: nonmax.None[I](),
	}
}
