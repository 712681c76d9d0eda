package poker

// Binomial returns C(n, k), or 0 when k is out of range.
func Binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}

// Combinations returns every k-sized subset of items, lexicographic by
// original index. Each subset keeps the relative order of items and owns
// its backing array; items is never modified.
func Combinations[T any](items []T, k int) [][]T {
	n := len(items)
	if k < 0 || k > n {
		return nil
	}

	result := make([][]T, 0, Binomial(n, k))
	idx := make([]int, k)
	var generate func(start, depth int)
	generate = func(start, depth int) {
		if depth == k {
			subset := make([]T, k)
			for i, j := range idx {
				subset[i] = items[j]
			}
			result = append(result, subset)
			return
		}
		for i := start; i <= n-(k-depth); i++ {
			idx[depth] = i
			generate(i+1, depth+1)
		}
	}
	generate(0, 0)
	return result
}
