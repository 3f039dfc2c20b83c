package stack

// Each word checks its minimum depth before its free-space requirement, so
// a stack that is both too shallow and too full reports missing elements.

// Swap exchanges the top two elements: ( a b -- b a ).
func (s *Stack[T, S, H]) Swap() error {
	if err := s.need(2); err != nil {
		return err
	}
	s.arr.Swap(s.at(0), s.at(1))
	return nil
}

// Swap2 exchanges the top two pairs: ( a b c d -- c d a b ).
func (s *Stack[T, S, H]) Swap2() error {
	if err := s.need(4); err != nil {
		return err
	}
	s.arr.Swap(s.at(3), s.at(1))
	s.arr.Swap(s.at(2), s.at(0))
	return nil
}

// Rotate brings the third element to the top: ( a b c -- b c a ).
func (s *Stack[T, S, H]) Rotate() error {
	if err := s.need(3); err != nil {
		return err
	}
	s.rotateWindow(3, 1)
	return nil
}

// RotateCC buries the top element under the next two: ( a b c -- c a b ).
func (s *Stack[T, S, H]) RotateCC() error {
	if err := s.need(3); err != nil {
		return err
	}
	s.rotateWindow(3, 2)
	return nil
}

// Rotate2 brings the third pair to the top: ( a b c d e f -- c d e f a b ).
func (s *Stack[T, S, H]) Rotate2() error {
	if err := s.need(6); err != nil {
		return err
	}
	s.rotateWindow(6, 2)
	return nil
}

// Rotate2CC buries the top pair under the next two:
// ( a b c d e f -- e f a b c d ).
func (s *Stack[T, S, H]) Rotate2CC() error {
	if err := s.need(6); err != nil {
		return err
	}
	s.rotateWindow(6, 4)
	return nil
}

// Duplicate copies the top element: ( a -- a a ).
func (s *Stack[T, S, H]) Duplicate() error {
	return s.copyUp(1, 1)
}

// Duplicate2 copies the top pair: ( a b -- a b a b ).
func (s *Stack[T, S, H]) Duplicate2() error {
	return s.copyUp(2, 2)
}

// Over copies the second element to the top: ( a b -- a b a ).
func (s *Stack[T, S, H]) Over() error {
	return s.copyUp(2, 1)
}

// Over2 copies the second pair to the top: ( a b c d -- a b c d a b ).
func (s *Stack[T, S, H]) Over2() error {
	return s.copyUp(4, 2)
}

// Tuck copies the top element below the second: ( a b -- b a b ).
func (s *Stack[T, S, H]) Tuck() error {
	if err := s.need(2); err != nil {
		return err
	}
	if err := s.room(1); err != nil {
		return err
	}
	a, b := s.arr.Get(s.at(1)), s.arr.Get(s.at(0))
	base := s.len - 2
	s.arr.Set(base, b)
	s.arr.Set(base+1, a)
	s.arr.Set(base+2, b)
	s.len++
	return nil
}

// Tuck2 copies the top pair below the second pair:
// ( a b c d -- c d a b c d ).
func (s *Stack[T, S, H]) Tuck2() error {
	if err := s.need(4); err != nil {
		return err
	}
	if err := s.room(2); err != nil {
		return err
	}
	base := s.len - 4
	a, b := s.arr.Get(base), s.arr.Get(base+1)
	c, d := s.arr.Get(base+2), s.arr.Get(base+3)
	s.arr.Set(base, c)
	s.arr.Set(base+1, d)
	s.arr.Set(base+2, a)
	s.arr.Set(base+3, b)
	s.arr.Set(base+4, c)
	s.arr.Set(base+5, d)
	s.len += 2
	return nil
}

// copyUp pushes copies of n elements starting depth-1 below the top.
func (s *Stack[T, S, H]) copyUp(depth, n int) error {
	if err := s.need(depth); err != nil {
		return err
	}
	if err := s.room(n); err != nil {
		return err
	}
	from := s.len - depth
	for i := range n {
		s.arr.Set(s.len+i, s.arr.Get(from+i))
	}
	s.len += n
	return nil
}

// rotateWindow rotates the top w elements left by k positions in place.
func (s *Stack[T, S, H]) rotateWindow(w, k int) {
	win := s.arr.Backing()[s.len-w : s.len]
	reverse(win[:k])
	reverse(win[k:])
	reverse(win)
}

func reverse[T any](v []T) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
