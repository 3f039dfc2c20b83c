package components

import (
	"slices"

	"bounded/pkg/queue"
	"bounded/pkg/storage"
)

type queueMachine[S any, H storage.Holder[[]int, S]] struct {
	q *queue.Queue[int, S, H]
}

func newQueueMachine[S any, H storage.Holder[[]int, S]](sc Scenario) *queueMachine[S, H] {
	elems, capacity := initial(sc)
	if capacity == len(elems) {
		return &queueMachine[S, H]{q: queue.FromSlice[int, S, H](elems)}
	}
	q := queue.New[int, S, H](capacity)
	for _, v := range elems {
		q.EnqueueUnchecked(v)
	}
	return &queueMachine[S, H]{q: q}
}

func (m *queueMachine[S, H]) apply(step Step) ([]int, error) {
	q := m.q
	switch step.Op {
	case "enqueue", "push_back":
		return nil, q.Enqueue(step.Arg)
	case "dequeue", "pop_front":
		return one(q.Dequeue())
	case "peek":
		return one(q.PeekNth(step.Arg))
	case "extend":
		return nil, q.Extend(slices.Values(step.Values))
	case "to_array":
		arr, err := q.ToArray(step.Arg)
		if err != nil {
			return nil, err
		}
		return slices.Clone(arr.Backing()), nil
	case "clear":
		q.Clear()
		return nil, nil
	case "len":
		return []int{q.Len()}, nil
	case "snapshot":
		return q.ToSlice(), nil
	default:
		return nil, unknownOp(step.Op)
	}
}

type dequeMachine[S any, H storage.Holder[[]int, S]] struct {
	d *queue.Deque[int, S, H]
	queueMachine[S, H]
}

func newDequeMachine[S any, H storage.Holder[[]int, S]](sc Scenario) *dequeMachine[S, H] {
	elems, capacity := initial(sc)
	var d *queue.Deque[int, S, H]
	if capacity == len(elems) {
		d = queue.DequeFromSlice[int, S, H](elems)
	} else {
		d = queue.NewDeque[int, S, H](capacity)
		for _, v := range elems {
			d.EnqueueUnchecked(v)
		}
	}
	return &dequeMachine[S, H]{d: d, queueMachine: queueMachine[S, H]{q: &d.Queue}}
}

func (m *dequeMachine[S, H]) apply(step Step) ([]int, error) {
	switch step.Op {
	case "push_front":
		return nil, m.d.PushFront(step.Arg)
	case "pop_back":
		return one(m.d.PopBack())
	case "peek_back":
		return one(m.d.PeekBack())
	default:
		return m.queueMachine.apply(step)
	}
}
