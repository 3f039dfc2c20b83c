package components

import (
	"errors"
	"fmt"
	"slices"

	"bounded/pkg/errs"
	"bounded/pkg/storage"
)

// machine replays scenario steps against one container. Every op returns
// the values it produced, if any.
type machine interface {
	apply(step Step) ([]int, error)
}

type intDirect = storage.Direct[[]int]
type intBoxed = storage.Boxed[[]int]
type byteDirect = storage.Direct[[]byte]
type byteBoxed = storage.Boxed[[]byte]

func newMachine(sc Scenario) (machine, error) {
	if sc.Storage != Direct && sc.Storage != Boxed {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, sc.Storage)
	}
	boxed := sc.Storage == Boxed

	switch sc.Kind {
	case KindStack:
		if boxed {
			return newStackMachine[intBoxed](sc), nil
		}
		return newStackMachine[intDirect](sc), nil
	case KindQueue:
		if boxed {
			return newQueueMachine[intBoxed](sc), nil
		}
		return newQueueMachine[intDirect](sc), nil
	case KindDeque:
		if boxed {
			return newDequeMachine[intBoxed](sc), nil
		}
		return newDequeMachine[intDirect](sc), nil
	case KindBitArray:
		if boxed {
			return newBitsMachine[byteBoxed](sc)
		}
		return newBitsMachine[byteDirect](sc)
	case KindList:
		return newListMachineFor(sc, boxed)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, sc.Kind)
	}
}

// initial returns the starting contents and the capacity to allocate.
// ParseConfig has already checked that Init fits.
func initial(sc Scenario) ([]int, int) {
	return slices.Clone(sc.Init), sc.Capacity
}

func one(v int, err error) ([]int, error) {
	if err != nil {
		return nil, err
	}
	return []int{v}, nil
}

func flag(b bool) []int {
	if b {
		return []int{1}
	}
	return []int{0}
}

func unknownOp(op string) error {
	return fmt.Errorf("%w: %q", ErrUnknownOp, op)
}

// errKind maps container failures onto the names used in scenario files.
func errKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, &errs.ErrNotEnoughSpace{}):
		return "not_enough_space"
	case errors.Is(err, &errs.ErrNotEnoughElements{}):
		return "not_enough_elements"
	case errors.Is(err, &errs.ErrIndexOutOfBounds{}):
		return "index_out_of_bounds"
	case errors.Is(err, &errs.ErrDimensionMismatch{}):
		return "dimension_mismatch"
	case errors.Is(err, errs.ErrOverflow):
		return "overflow"
	case errors.Is(err, errs.ErrUnderflow):
		return "underflow"
	default:
		return "other"
	}
}
