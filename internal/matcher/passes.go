package matcher

import (
	"context"

	"github.com/vantines/obfmatch/internal/classifier"
	"github.com/vantines/obfmatch/internal/model"
	"github.com/vantines/obfmatch/internal/similarity"
)

// resolveConflicts drops every (source, dest) pair whose dest is claimed by
// more than one source.
func resolveConflicts[K comparable, V comparable](pairs map[K]V) map[K]V {
	count := make(map[V]int, len(pairs))
	for _, v := range pairs {
		count[v]++
	}
	out := make(map[K]V, len(pairs))
	for k, v := range pairs {
		if count[v] == 1 {
			out[k] = v
		}
	}
	return out
}

// matchClasses implements matchClasses(level): rank every
// unmatched real class in A against every unmatched real class in B,
// accept via foundMatch, resolve conflicts, commit.
func (e *Engine) matchClasses(ctx context.Context, level classifier.Level) (int, error) {
	sources := e.groupA.UnmatchedRealClasses()
	candidates := e.groupB.UnmatchedRealClasses()
	if len(sources) == 0 || len(candidates) == 0 {
		return 0, nil
	}
	reg := classifier.ClassRegistry()
	maxScore := reg.MaxScore(level)
	maxMismatch := e.cfg.Thresholds.MaxMismatchFor(maxScore)

	best := make([]*model.Class, len(sources))
	err := runBounded(ctx, e.cfg.workerCount(), len(sources), func(_ context.Context, i int) error {
		src := sources[i]
		ranked := classifier.Rank(reg, level, src, candidates, similarity.PotentialEqualClass, maxMismatch)
		if r, ok := classifier.FoundMatch(ranked, maxScore, e.cfg.Thresholds.Absolute, e.cfg.Thresholds.Relative); ok {
			best[i] = r.Subject
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	pairs := make(map[*model.Class]*model.Class)
	for i, src := range sources {
		if best[i] != nil {
			pairs[src] = best[i]
		}
	}
	survivors := resolveConflicts(pairs)
	for src, dst := range survivors {
		e.commitClass(src, dst)
	}
	return len(survivors), nil
}

func unmatchedMethods(g *model.Group, staticOnly bool) []*model.Method {
	var out []*model.Method
	for _, c := range g.RealClasses() {
		for _, m := range c.SortedMethods() {
			if m.Match == nil && m.IsStatic() == staticOnly {
				out = append(out, m)
			}
		}
	}
	return out
}

func unmatchedFields(g *model.Group, staticOnly bool) []*model.Field {
	var out []*model.Field
	for _, c := range g.RealClasses() {
		for _, f := range c.SortedFields() {
			if f.Match == nil && f.IsStatic() == staticOnly {
				out = append(out, f)
			}
		}
	}
	return out
}

// matchMethods implements matchMethods(level, staticOnly): the
// candidate pool is every unmatched same-static-category method across all
// real classes in B. At Extra level only, ranking also consults the
// execution walker's lockstep-agreement score as one more classifier, since it is the most expensive
// signal and Extra is already the last, slowest tier.
func (e *Engine) matchMethods(ctx context.Context, level classifier.Level, staticOnly bool) (int, error) {
	sources := unmatchedMethods(e.groupA, staticOnly)
	candidates := unmatchedMethods(e.groupB, staticOnly)
	if len(sources) == 0 || len(candidates) == 0 {
		return 0, nil
	}
	reg := e.methodRegistry(level)
	maxScore := reg.MaxScore(level)
	maxMismatch := e.cfg.Thresholds.MaxMismatchFor(maxScore)

	best := make([]*model.Method, len(sources))
	err := runBounded(ctx, e.cfg.workerCount(), len(sources), func(_ context.Context, i int) error {
		src := sources[i]
		ranked := classifier.Rank(reg, level, src, candidates, similarity.PotentialEqualMethod, maxMismatch)
		if r, ok := classifier.FoundMatch(ranked, maxScore, e.cfg.Thresholds.Absolute, e.cfg.Thresholds.Relative); ok {
			best[i] = r.Subject
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	pairs := make(map[*model.Method]*model.Method)
	for i, src := range sources {
		if best[i] != nil {
			pairs[src] = best[i]
		}
	}
	survivors := resolveConflicts(pairs)
	for src, dst := range survivors {
		e.commitMethod(src, dst, true)
	}
	return len(survivors), nil
}

// matchFields implements matchFields(level, staticOnly).
func (e *Engine) matchFields(ctx context.Context, level classifier.Level, staticOnly bool) (int, error) {
	sources := unmatchedFields(e.groupA, staticOnly)
	candidates := unmatchedFields(e.groupB, staticOnly)
	if len(sources) == 0 || len(candidates) == 0 {
		return 0, nil
	}
	reg := classifier.FieldRegistry()
	maxScore := reg.MaxScore(level)
	maxMismatch := e.cfg.Thresholds.MaxMismatchFor(maxScore)

	best := make([]*model.Field, len(sources))
	err := runBounded(ctx, e.cfg.workerCount(), len(sources), func(_ context.Context, i int) error {
		src := sources[i]
		ranked := classifier.Rank(reg, level, src, candidates, similarity.PotentialEqualField, maxMismatch)
		if r, ok := classifier.FoundMatch(ranked, maxScore, e.cfg.Thresholds.Absolute, e.cfg.Thresholds.Relative); ok {
			best[i] = r.Subject
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	pairs := make(map[*model.Field]*model.Field)
	for i, src := range sources {
		if best[i] != nil {
			pairs[src] = best[i]
		}
	}
	survivors := resolveConflicts(pairs)
	for src, dst := range survivors {
		e.commitField(src, dst)
	}
	return len(survivors), nil
}
