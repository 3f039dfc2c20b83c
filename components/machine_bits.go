package components

import (
	"bounded/pkg/bitarray"
	"bounded/pkg/storage"
)

type bitsMachine[S any, H storage.Holder[[]byte, S]] struct {
	b *bitarray.BitArray[S, H]
}

func newBitsMachine[S any, H storage.Holder[[]byte, S]](sc Scenario) (*bitsMachine[S, H], error) {
	b, err := bitarray.NewZeroed[S, H](sc.BitLen, sc.Capacity)
	if err != nil {
		return nil, err
	}
	for _, i := range sc.Init {
		if err := b.SetBit(i, true); err != nil {
			return nil, err
		}
	}
	return &bitsMachine[S, H]{b: b}, nil
}

func (m *bitsMachine[S, H]) apply(step Step) ([]int, error) {
	b := m.b
	switch step.Op {
	case "set":
		return nil, b.SetBit(step.Arg, true)
	case "unset":
		return nil, b.SetBit(step.Arg, false)
	case "toggle":
		return nil, b.Toggle(step.Arg)
	case "get":
		v, err := b.GetBit(step.Arg)
		if err != nil {
			return nil, err
		}
		return flag(v), nil
	case "fill":
		b.Fill(step.Arg != 0)
		return nil, nil
	case "count":
		return []int{b.Count()}, nil
	case "is_zeroed":
		return flag(b.IsZeroed()), nil
	case "is_oned":
		return flag(b.IsOned()), nil
	case "bytes":
		raw := b.Bytes()
		out := make([]int, len(raw))
		for i, v := range raw {
			out[i] = int(v)
		}
		return out, nil
	case "snapshot":
		set := b.ToBitmap().ToArray()
		out := make([]int, len(set))
		for i, v := range set {
			out[i] = int(v)
		}
		return out, nil
	default:
		return nil, unknownOp(step.Op)
	}
}
