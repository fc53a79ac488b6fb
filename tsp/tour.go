package tsp

// ValidateTour checks that order is a permutation of {0..n-1}, i.e. a
// complete closed tour visiting every city exactly once.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(order []int, n int) error {
	if n <= 0 || len(order) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = order[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}
