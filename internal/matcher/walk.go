package matcher

import (
	"github.com/vantines/obfmatch/internal/bytecode"
	"github.com/vantines/obfmatch/internal/classifier"
	"github.com/vantines/obfmatch/internal/model"
	"github.com/vantines/obfmatch/internal/walker"
)

// executionWalkScore walks both methods' basic-block graphs in lockstep,
// pausing at comparable
// instruction kinds, and score the fraction of paused pairs the
// comparator accepted before the first disagreement ended the walk.
// Methods with no body, or whose bodies don't partition into any blocks,
// compare vacuously equal, matching the bytecode comparator's own
// no-body rule.
func (e *Engine) executionWalkScore(a, b *model.Method) float64 {
	if !a.Real() || !b.Real() || len(a.Instructions) == 0 || len(b.Instructions) == 0 {
		return 1.0
	}
	blocksA := walker.Partition(a.Instructions)
	blocksB := walker.Partition(b.Instructions)
	if len(blocksA) == 0 || len(blocksB) == 0 {
		return 1.0
	}
	execA := walker.NewExecution(blocksA, e.cfg.Walker)
	execB := walker.NewExecution(blocksB, e.cfg.Walker)
	pe := walker.NewParallelExecutor(execA, execB, walker.DefaultPausePredicate)

	var agreements, total int
	pe.ExecuteParallel(func(ia, ib bytecode.Instruction) bool {
		total++
		if e.cmp.Equal(ia, ib) {
			agreements++
			return true
		}
		return false
	})
	if total == 0 {
		return 1.0
	}
	return float64(agreements) / float64(total)
}

// methodRegistry returns the shared method classifier registry, plus (at
// Extra level only, since it's by far the most expensive signal and Extra
// is already the slowest tier) one additional classifier scoring the
// execution walker's lockstep agreement.
func (e *Engine) methodRegistry(level classifier.Level) *classifier.Registry[*model.Method] {
	r := classifier.MethodRegistry().WithThresholds(e.cfg.Thresholds)
	if level != classifier.Extra {
		return r
	}
	r.Register(classifier.Classifier[*model.Method]{
		Name:     "execution-walk-agreement",
		Weight:   10,
		MinLevel: classifier.Extra,
		Score:    e.executionWalkScore,
	})
	return r
}
