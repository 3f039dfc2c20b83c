package components

import (
	"fmt"

	"bounded/pkg/errs"
	"bounded/pkg/linkedlist"
	"bounded/pkg/nonmax"
	"bounded/pkg/storage"
)

type listMachine[I nonmax.Unsigned, S any, H storage.Holder[[]linkedlist.Node[int, I], S]] struct {
	l *linkedlist.List[int, I, S, H]
}

func newListMachineFor(sc Scenario, boxed bool) (machine, error) {
	switch {
	case sc.IndexWidth == 8 && boxed:
		return newListMachine[uint8, linkedlist.BoxedNodes[int, uint8]](sc)
	case sc.IndexWidth == 8:
		return newListMachine[uint8, linkedlist.DirectNodes[int, uint8]](sc)
	case sc.IndexWidth == 16 && boxed:
		return newListMachine[uint16, linkedlist.BoxedNodes[int, uint16]](sc)
	case sc.IndexWidth == 16:
		return newListMachine[uint16, linkedlist.DirectNodes[int, uint16]](sc)
	case sc.IndexWidth == 32 && boxed:
		return newListMachine[uint32, linkedlist.BoxedNodes[int, uint32]](sc)
	case sc.IndexWidth == 32:
		return newListMachine[uint32, linkedlist.DirectNodes[int, uint32]](sc)
	default:
		return nil, fmt.Errorf("unsupported index width %d", sc.IndexWidth)
	}
}

func newListMachine[I nonmax.Unsigned, S any, H storage.Holder[[]linkedlist.Node[int, I], S]](sc Scenario) (machine, error) {
	elems, capacity := initial(sc)
	l, err := linkedlist.New[int, I, S, H](capacity)
	if err != nil {
		return nil, err
	}
	for _, v := range elems {
		if _, err := l.PushBack(v); err != nil {
			return nil, err
		}
	}
	return &listMachine[I, S, H]{l: l}, nil
}

func (m *listMachine[I, S, H]) apply(step Step) ([]int, error) {
	l := m.l
	switch step.Op {
	case "push_back":
		return index(l.PushBack(step.Arg))
	case "push_front":
		return index(l.PushFront(step.Arg))
	case "pop_front":
		return one(l.PopFront())
	case "pop_back":
		return one(l.PopBack())
	case "first":
		return index(l.First())
	case "last":
		return index(l.Last())
	case "len":
		return []int{l.Len()}, nil
	case "clear":
		l.Clear()
		return nil, nil
	case "snapshot":
		return l.ToSlice(), nil
	}

	idx, err := nodeIndex[I](step.Arg)
	if err != nil {
		return nil, err
	}
	switch step.Op {
	case "insert_after":
		return index(l.InsertAfter(idx, step.Value))
	case "insert_before":
		return index(l.InsertBefore(idx, step.Value))
	case "remove_after":
		return one(l.RemoveAfter(idx))
	case "remove":
		return one(l.Remove(idx))
	case "get":
		return one(l.Get(idx))
	case "next":
		return link(l.Next(idx))
	case "prev":
		return link(l.Prev(idx))
	default:
		return nil, unknownOp(step.Op)
	}
}

func nodeIndex[I nonmax.Unsigned](arg int) (I, error) {
	x, err := nonmax.FromInt[I](arg)
	if err != nil {
		return 0, errs.IndexOutOfBounds(arg)
	}
	return x.MustGet(), nil
}

func index[I nonmax.Unsigned](i I, err error) ([]int, error) {
	if err != nil {
		return nil, err
	}
	return []int{int(i)}, nil
}

// link reports a missing neighbour as -1.
func link[I nonmax.Unsigned](x nonmax.Index[I], err error) ([]int, error) {
	if err != nil {
		return nil, err
	}
	if i, ok := x.Int(); ok {
		return []int{i}, nil
	}
	return []int{-1}, nil
}
