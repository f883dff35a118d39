package amplifier

// Permutations returns every ordering of values in lexicographic order of
// positions: the first element varies slowest. Duplicate values are treated
// as distinct positions.
func Permutations(values []int64) [][]int64 {
	n := len(values)
	if n == 0 {
		return nil
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	var out [][]int64
	for {
		perm := make([]int64, n)
		for i, j := range idx {
			perm[i] = values[j]
		}
		out = append(out, perm)

		if !nextPermutation(idx) {
			return out
		}
	}
}

// nextPermutation advances idx to its lexicographic successor and reports
// false once idx was the last ordering.
func nextPermutation(idx []int) bool {
	i := len(idx) - 2
	for i >= 0 && idx[i] >= idx[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(idx) - 1
	for idx[j] <= idx[i] {
		j--
	}
	idx[i], idx[j] = idx[j], idx[i]
	for l, r := i+1, len(idx)-1; l < r; l, r = l+1, r-1 {
		idx[l], idx[r] = idx[r], idx[l]
	}
	return true
}
