package sequence

import "iter"

// Pairs yields every unordered index pair (i, j) with 0 <= i < j < n exactly
// once, in ascending order: (0,1), (0,2), ..., (1,2), ...
func Pairs(n int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !yield(i, j) {
					return
				}
			}
		}
	}
}

// PairCount returns n(n-1)/2.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}
