package components

import (
	"bounded/pkg/stack"
	"bounded/pkg/storage"
)

type stackMachine[S any, H storage.Holder[[]int, S]] struct {
	s     *stack.Stack[int, S, H]
	words map[string]func() error
}

func newStackMachine[S any, H storage.Holder[[]int, S]](sc Scenario) *stackMachine[S, H] {
	elems, capacity := initial(sc)
	var s *stack.Stack[int, S, H]
	if capacity == len(elems) {
		s = stack.FromSlice[int, S, H](elems)
	} else {
		s = stack.New[int, S, H](capacity)
		for _, v := range elems {
			s.PushUnchecked(v)
		}
	}

	return &stackMachine[S, H]{
		s: s,
		words: map[string]func() error{
			"swap":  s.Swap,
			"2swap": s.Swap2,
			"rot":   s.Rotate,
			"-rot":  s.RotateCC,
			"2rot":  s.Rotate2,
			"-2rot": s.Rotate2CC,
			"dup":   s.Duplicate,
			"2dup":  s.Duplicate2,
			"over":  s.Over,
			"2over": s.Over2,
			"tuck":  s.Tuck,
			"2tuck": s.Tuck2,
		},
	}
}

func (m *stackMachine[S, H]) apply(step Step) ([]int, error) {
	if word, ok := m.words[step.Op]; ok {
		return nil, word()
	}

	switch step.Op {
	case "push":
		return nil, m.s.Push(step.Arg)
	case "pop":
		return one(m.s.Pop())
	case "peek":
		return one(m.s.PeekNth(step.Arg))
	case "drop":
		return nil, m.s.Drop(step.Arg)
	case "clear":
		m.s.Clear()
		return nil, nil
	case "len":
		return []int{m.s.Len()}, nil
	case "snapshot":
		return m.s.ToSlice(), nil
	default:
		return nil, unknownOp(step.Op)
	}
}
