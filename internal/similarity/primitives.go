// Package similarity implements four comparison primitives: compareCounts,
// compareSets, compareMatchableSets, and compareLists. Every classifier in
// internal/classifier is built out of these.
package similarity

import (
	"github.com/vantines/obfmatch/internal/model"
)

// CompareCounts scores two non-negative counts: 1 - |a-b|/max(a,b), or 1 if
// both are zero.
func CompareCounts(a, b int) float64 {
	if a == 0 && b == 0 {
		return 1.0
	}
	max := a
	if b > max {
		max = b
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return 1.0 - float64(diff)/float64(max)
}

// CompareSets treats a and b as multisets of equal (comparable) elements and
// scores matched/(|A|-matched+|B|) where matched = |A ∩ B|.
func CompareSets[T comparable](a, b []T) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	counts := make(map[T]int, len(b))
	for _, x := range b {
		counts[x]++
	}
	matched := 0
	for _, x := range a {
		if counts[x] > 0 {
			counts[x]--
			matched++
		}
	}
	denom := len(a) - matched + len(b)
	if denom == 0 {
		return 1.0
	}
	return float64(matched) / float64(denom)
}

// CompareLists computes instruction-edit-distance similarity:
// 1.0 if equal length and elementwise eq; otherwise 1 - levenshtein/maxlen,
// using the classic two-row rolling algorithm.
func CompareLists[T any](xs, ys []T, eq func(T, T) bool) float64 {
	n, m := len(xs), len(ys)
	if n == 0 && m == 0 {
		return 1.0
	}
	if n == m {
		allEqual := true
		for i := range xs {
			if !eq(xs[i], ys[i]) {
				allEqual = false
				break
			}
		}
		if allEqual {
			return 1.0
		}
	}

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}
	for i := 1; i <= n; i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			cost := 1
			if eq(xs[i-1], ys[j-1]) {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	dist := prev[m]

	max := n
	if m > max {
		max = m
	}
	if max == 0 {
		return 1.0
	}
	return 1.0 - float64(dist)/float64(max)
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// removeFirst removes the first element of s equal (by identity) to x,
// reporting whether one was found.
func removeFirst[T comparable](s []T, x T) ([]T, bool) {
	for i, v := range s {
		if v == x {
			return append(s[:i:i], s[i+1:]...), true
		}
	}
	return s, false
}

// CompareMatchableSets scores two sets of matchable entities order
// sensitively. obfuscated reports whether an element's underlying name is
// obfuscated; potentialEqual is the caller's potential-equality
// predicate P.
func CompareMatchableSets[T model.MatchableEntity[T]](
	a, b []T,
	obfuscated func(T) bool,
	potentialEqual func(x, y T) bool,
) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	workA := append([]T(nil), a...)
	workB := append([]T(nil), b...)
	unmatched := 0
	var zero T

	// Step 2: destructive pass over A.
	for _, x := range a {
		var ok bool
		if workA, ok = removeFirst(workA, x); !ok {
			continue // already consumed by an earlier iteration's removal
		}
		if nb, found := removeFirst(workB, x); found {
			workB = nb
			continue
		}
		if m := x.MatchOf(); m != zero {
			if nb, found := removeFirst(workB, m); found {
				workB = nb
			} else {
				unmatched++
			}
			continue
		}
		if !obfuscated(x) {
			unmatched++
			continue
		}
		// Obfuscated-named and unmatched: restore for step 4.
		workA = append(workA, x)
	}

	// Step 3: symmetric pass removing non-obfuscated-named remainders of B.
	remainingB := workB[:0:0]
	for _, y := range workB {
		if obfuscated(y) {
			remainingB = append(remainingB, y)
			continue
		}
		unmatched++
	}
	workB = remainingB

	// Step 4: remaining A against P.
	remainingA := workA[:0:0]
	for _, x := range workA {
		found := false
		for i, y := range workB {
			if potentialEqual(x, y) {
				workB = append(workB[:i:i], workB[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			unmatched++
			continue
		}
		remainingA = append(remainingA, x)
	}
	workA = remainingA
	_ = workA

	// Step 5: symmetric pass for remaining B — anything left here found no
	// partner in step 4 (those that did were already removed there).
	unmatched += len(workB)

	return float64(total-unmatched) / float64(total)
}
