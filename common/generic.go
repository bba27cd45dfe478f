package common

// Contains returns whether `v` is in `slice`.
func Contains[T comparable](slice []T, v T) bool {
	for i := range slice {
		if slice[i] == v {
			return true
		}
	}
	return false
}

// Sample returns up to n pseudo-randomly chosen elements of slice,
// using pick as the source of indices (0 <= pick(max) < max).
// The input slice is not modified.
func Sample[T any](slice []T, n int, pick func(max int) int) []T {
	if n >= len(slice) {
		out := make([]T, len(slice))
		copy(out, slice)
		return out
	}

	idx := make([]int, len(slice))
	for i := range idx {
		idx[i] = i
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		j := pick(len(idx))
		out = append(out, slice[idx[j]])
		idx = append(idx[:j], idx[j+1:]...)
	}
	return out
}
