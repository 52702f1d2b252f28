package classifier

import (
	"math"
	"sort"
)

// Trace records one classifier's contribution to a candidate's score, kept
// for diagnostics/logging.
type Trace struct {
	Name  string
	Score float64
}

// Result is one candidate's rank: its aggregate score and the
// per-classifier trace that produced it.
type Result[T any] struct {
	Subject T
	Score   float64
	Traces  []Trace
}

// Rank scores every candidate in d that passes potentialEqual against
// source, running the classifiers active at level in registration order
// and pruning a candidate as soon as its accumulated mismatch reaches
// maxMismatch. Results are sorted by score descending.
func Rank[T any](r *Registry[T], level Level, source T, candidates []T, potentialEqual func(a, b T) bool, maxMismatch float64) []Result[T] {
	active := r.Active(level)
	out := make([]Result[T], 0, len(candidates))
	for _, cand := range candidates {
		if !potentialEqual(source, cand) {
			continue
		}
		var score, mismatch float64
		traces := make([]Trace, 0, len(active))
		pruned := false
		for _, c := range active {
			s := c.Score(source, cand)
			score += c.Weight * s
			mismatch += c.Weight * (1 - s)
			traces = append(traces, Trace{Name: c.Name, Score: s})
			if mismatch >= maxMismatch {
				pruned = true
				break
			}
		}
		if pruned {
			continue
		}
		out = append(out, Result[T]{Subject: cand, Score: score, Traces: traces})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// MaxMismatch computes the caller-supplied prune threshold derived from
// the acceptance thresholds: maxScore * (1 - sqrt(absolute*(1-relative))).
func MaxMismatch(maxScore, absolute, relative float64) float64 {
	return maxScore * (1 - math.Sqrt(absolute*(1-relative)))
}

// FoundMatch applies the match-acceptance rule: the top candidate's
// squared, max-normalized score must clear absolute, and — when more than
// one candidate exists — the runner-up's squared normalized score must
// trail the winner's by at least relative.
func FoundMatch[T any](ranked []Result[T], maxScore, absolute, relative float64) (Result[T], bool) {
	var zero Result[T]
	if len(ranked) == 0 || maxScore == 0 {
		return zero, false
	}
	r1 := ranked[0].Score / maxScore
	s1 := r1 * r1
	if s1 < absolute {
		return zero, false
	}
	if len(ranked) == 1 {
		return ranked[0], true
	}
	r2 := ranked[1].Score / maxScore
	s2 := r2 * r2
	if s2 < s1*(1-relative) {
		return ranked[0], true
	}
	return zero, false
}
