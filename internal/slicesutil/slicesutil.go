package slicesutil

// EqualUnsorted reports whether two slices contain the same elements,
// regardless of order. Duplicates are accounted for: [1, 1, 2] is not
// equal to [1, 2, 2]. Returns true if both slices are empty.
//
// Runs in O(n²) time, but the matched slice should be stack-allocated in
// most cases. For the handful of parameters a route captures, this beats
// populating a map.
func EqualUnsorted[S ~[]E, E comparable](s1, s2 S) bool {
	if len(s1) != len(s2) {
		return false
	}

	matched := make([]bool, len(s2))

outer:
	for _, a := range s1 {
		for i, b := range s2 {
			if !matched[i] && a == b {
				matched[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}
