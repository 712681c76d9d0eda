package poker

import "testing"

func TestBinomial(t *testing.T) {
	cases := []struct{ n, k, want int }{
		{5, 5, 1}, {6, 5, 6}, {7, 5, 21}, {10, 5, 252}, {4, 5, 0}, {3, 0, 1}, {3, -1, 0},
	}
	for _, c := range cases {
		if got := Binomial(c.n, c.k); got != c.want {
			t.Errorf("C(%d,%d): expected %d, got %d", c.n, c.k, c.want, got)
		}
	}
}

func TestCombinationsCountAndOrder(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6}
	combos := Combinations(items, 5)
	if len(combos) != 21 {
		t.Fatalf("expected 21 combinations, got %d", len(combos))
	}

	seen := make(map[[5]int]bool)
	var prev [5]int
	for i, combo := range combos {
		var key [5]int
		copy(key[:], combo)
		if seen[key] {
			t.Fatalf("combination %v repeated", combo)
		}
		seen[key] = true
		for j := 1; j < len(combo); j++ {
			if combo[j] <= combo[j-1] {
				t.Fatalf("combination %v does not keep input order", combo)
			}
		}
		if i > 0 && !lexLess(prev[:], key[:]) {
			t.Fatalf("combination %v is not after %v", key, prev)
		}
		prev = key
	}
	if combos[0][0] != 0 || combos[20][0] != 2 {
		t.Fatalf("unexpected first/last combinations %v %v", combos[0], combos[20])
	}
}

func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func TestCombinationsDoesNotMutateOrAlias(t *testing.T) {
	items := []string{"a", "b", "c"}
	combos := Combinations(items, 2)
	combos[0][0] = "z"
	if items[0] != "a" {
		t.Fatal("input was modified through a combination")
	}
	if combos[1][0] != "a" {
		t.Fatal("combinations share a backing array")
	}
}

func TestCombinationsEdgeCases(t *testing.T) {
	if got := Combinations([]int{1, 2}, 3); len(got) != 0 {
		t.Fatalf("expected no combinations when k > n, got %v", got)
	}
	if got := Combinations([]int{1, 2}, 0); len(got) != 1 || len(got[0]) != 0 {
		t.Fatalf("expected one empty combination, got %v", got)
	}
	if got := Combinations([]int{1, 2}, -1); got != nil {
		t.Fatalf("expected nil for negative k, got %v", got)
	}
}
