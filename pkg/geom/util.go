package geom

// Clamp limits v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Move shifts the element at index from to index to, sliding the elements in
// between by one slot. The slice is modified in place and returned. Out of
// range indices leave the slice untouched.
func Move[T any](s []T, from, to int) []T {
	if from == to || from < 0 || to < 0 || from >= len(s) || to >= len(s) {
		return s
	}
	v := s[from]
	if from < to {
		copy(s[from:], s[from+1:to+1])
	} else {
		copy(s[to+1:], s[to:from])
	}
	s[to] = v
	return s
}
