package walker

import "github.com/vantines/obfmatch/internal/bytecode"

// PausePredicate decides whether an execution should stop advancing once it
// lands on an instruction worth comparing.
type PausePredicate func(in bytecode.Instruction) bool

// Consumer receives the two paused instructions and reports whether the
// walk should keep going. It is expected to compare a and b (typically via
// internal/compare.Comparator.Equal) and record the outcome.
type Consumer func(a, b bytecode.Instruction) (cont bool)

// ParallelExecutor steps two executions in lockstep, driving two
// independent call frames side by side for comparison.
type ParallelExecutor struct {
	A, B        *Execution
	ShouldPause PausePredicate
}

// NewParallelExecutor pairs two executions under one pause predicate.
func NewParallelExecutor(a, b *Execution, shouldPause PausePredicate) *ParallelExecutor {
	return &ParallelExecutor{A: a, B: b, ShouldPause: shouldPause}
}

// ExecuteParallel steps both executions forward until either terminates or
// consumer returns false. Each iteration: test the pause predicate against
// whichever execution isn't paused yet against its current instruction
// first, before advancing it — so an execution can pause on the very
// instruction it is already sitting on instead of always needing to step
// past it first. Once both are paused, invoke consumer on the pair, unpause
// both, step both past the agreed-on point, and continue.
func (p *ParallelExecutor) ExecuteParallel(consumer Consumer) {
	for {
		if !p.A.Paused && !p.A.Terminated {
			if ia, ok := p.A.CurrentInstruction(); ok && p.ShouldPause(ia) {
				p.A.Paused = true
			}
		}
		if !p.B.Paused && !p.B.Terminated {
			if ib, ok := p.B.CurrentInstruction(); ok && p.ShouldPause(ib) {
				p.B.Paused = true
			}
		}
		if p.A.Terminated || p.B.Terminated {
			return
		}
		if p.A.Paused && p.B.Paused {
			ia, _ := p.A.CurrentInstruction()
			ib, _ := p.B.CurrentInstruction()
			if !consumer(ia, ib) {
				return
			}
			p.A.Paused = false
			p.B.Paused = false
			p.A.Step()
			p.B.Step()
			continue
		}
		if !p.A.Paused {
			p.A.Step()
		}
		if !p.B.Paused {
			p.B.Step()
		}
	}
}
