package shlemiel

import (
	"cmp"
	"slices"
)

// AccumulateShlemiel returns the prefix sums of a, summing each prefix from
// scratch.
func AccumulateShlemiel(a []int) []int {
	out := make([]int, len(a))
	for i := range a {
		for j := 0; j <= i; j++ {
			out[i] += a[j]
		}
	}

	return out
}

// Accumulate returns the prefix sums of a: out[i] = a[0] + ... + a[i].
func Accumulate(a []int) []int {
	out := make([]int, len(a))
	sum := 0
	for i, v := range a {
		sum += v
		out[i] = sum
	}

	return out
}

// LongestAscendingSubarrayShlemiel returns the length of the longest run of
// consecutive strictly ascending elements, re-scanning from every start.
func LongestAscendingSubarrayShlemiel[E cmp.Ordered](a []E) int {
	best := 0
	for i := range a {
		j := i + 1
		for j < len(a) && a[j-1] < a[j] {
			j++
		}
		best = max(best, j-i)
	}

	return best
}

// LongestAscendingSubarray returns the length of the longest run of
// consecutive strictly ascending elements in one pass. Empty input yields 0.
func LongestAscendingSubarray[E cmp.Ordered](a []E) int {
	if len(a) == 0 {
		return 0
	}
	best, run := 1, 1
	for i := 1; i < len(a); i++ {
		if a[i-1] < a[i] {
			run++
		} else {
			run = 1
		}
		best = max(best, run)
	}

	return best
}

// TwoSummingElementsShlemiel reports whether two elements at distinct
// positions of a sum to goal, trying every pair.
func TwoSummingElementsShlemiel(a []int, goal int) bool {
	for i := range a {
		for j := i + 1; j < len(a); j++ {
			if a[i]+a[j] == goal {
				return true
			}
		}
	}

	return false
}

// TwoSummingElements is TwoSummingElementsShlemiel for sorted a, closing in
// from both ends.
func TwoSummingElements(a []int, goal int) bool {
	i, j := 0, len(a)-1
	for i < j {
		switch sum := a[i] + a[j]; {
		case sum == goal:
			return true
		case sum < goal:
			i++
		default:
			j--
		}
	}

	return false
}

// ContainsAllNumbersShlemiel reports whether every integer 1..n occurs in a,
// searching a once per integer.
func ContainsAllNumbersShlemiel(a []int, n int) bool {
	for v := 1; v <= n; v++ {
		if !slices.Contains(a, v) {
			return false
		}
	}

	return true
}

// ContainsAllNumbersSorting is ContainsAllNumbersShlemiel on a sorted copy of a.
func ContainsAllNumbersSorting(a []int, n int) bool {
	sorted := slices.Clone(a)
	slices.Sort(sorted)
	want := 1
	for _, v := range sorted {
		if want > n || v > want {
			break
		}
		if v == want {
			want++
		}
	}

	return want > n
}

// ContainsAllNumbersLinear is ContainsAllNumbersShlemiel with a seen-table.
func ContainsAllNumbersLinear(a []int, n int) bool {
	if n <= 0 {
		return true
	}
	seen := make([]bool, n+1)
	missing := n
	for _, v := range a {
		if v >= 1 && v <= n && !seen[v] {
			seen[v] = true
			missing--
		}
	}

	return missing == 0
}

// HasMajorityShlemiel reports whether some value fills more than half of a,
// counting every value over the whole slice.
func HasMajorityShlemiel[E comparable](a []E) bool {
	for _, candidate := range a {
		count := 0
		for _, v := range a {
			if v == candidate {
				count++
			}
		}
		if 2*count > len(a) {
			return true
		}
	}

	return false
}

// HasMajorityHashMap is HasMajorityShlemiel with one counting pass.
func HasMajorityHashMap[E comparable](a []E) bool {
	counts := make(map[E]int, len(a))
	for _, v := range a {
		counts[v]++
		if 2*counts[v] > len(a) {
			return true
		}
	}

	return false
}

// HasMajorityLinear is HasMajorityShlemiel in O(1) extra space: a
// Boyer-Moore voting pass picks the only possible candidate, a second pass
// counts it.
func HasMajorityLinear[E comparable](a []E) bool {
	var candidate E
	votes := 0
	for _, v := range a {
		switch {
		case votes == 0:
			candidate, votes = v, 1
		case v == candidate:
			votes++
		default:
			votes--
		}
	}
	if votes == 0 {
		return false
	}
	count := 0
	for _, v := range a {
		if v == candidate {
			count++
		}
	}

	return 2*count > len(a)
}
