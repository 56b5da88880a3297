package baum

// slots is a growable array of child slots.
//
// len(buf) is the capacity, used is the number of occupied slots. Slots
// buf[used:] are always zero. Capacity starts at 0, becomes 1 with the first
// append and doubles whenever it is exceeded. It never shrinks.
type slots[N comparable] struct {
	buf  []N
	used int
}

// makeSlots creates slots holding exactly the given elements, with capacity
// equal to their number.
func makeSlots[N comparable](elems []N) slots[N] {
	s := slots[N]{buf: make([]N, len(elems)), used: len(elems)}
	copy(s.buf, elems)
	return s
}

func (s *slots[N]) len() int {
	return s.used
}

func (s *slots[N]) capacity() int {
	return len(s.buf)
}

func (s *slots[N]) at(i int) N {
	assert(i >= 0 && i < s.used, "slot index out of range")
	return s.buf[i]
}

func (s *slots[N]) set(i int, n N) {
	assert(i >= 0 && i < s.used, "slot index out of range")
	s.buf[i] = n
}

// push appends n, growing the backing array if necessary.
func (s *slots[N]) push(n N) {
	if s.used == len(s.buf) {
		s.grow()
	}
	s.buf[s.used] = n
	s.used++
}

func (s *slots[N]) grow() {
	newcap := 1
	if len(s.buf) > 0 {
		newcap = 2 * len(s.buf)
	}
	buf := make([]N, newcap)
	copy(buf, s.buf[:s.used])
	s.buf = buf
}

// removeAt deletes slot i and shifts all following slots one position to the
// left. It returns the removed element. shifted is called for every element
// which moved, with its new position.
func (s *slots[N]) removeAt(i int, shifted func(N, int)) N {
	assert(i >= 0 && i < s.used, "slot index out of range")
	var zero N
	removed := s.buf[i]
	copy(s.buf[i:], s.buf[i+1:s.used])
	s.used--
	s.buf[s.used] = zero
	if shifted != nil {
		for j := i; j < s.used; j++ {
			shifted(s.buf[j], j)
		}
	}
	return removed
}

// elems returns a copy of the occupied slots.
func (s *slots[N]) elems() []N {
	c := make([]N, s.used)
	copy(c, s.buf[:s.used])
	return c
}

// view returns the occupied slots without copying. Clients must not modify it.
func (s *slots[N]) view() []N {
	return s.buf[:s.used]
}
