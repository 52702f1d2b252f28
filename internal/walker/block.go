// Package walker implements an execution walker: it linearizes a method's
// control-flow graph into basic blocks and steps two executions of
// (possibly different) methods in lockstep, pausing them at instructions
// the caller considers worth comparing.
//
// This generalizes a call-frame fetch-decode-execute loop from "execute a
// stack machine to completion" to "walk a control-flow graph for
// comparison, optionally pausing at each step" — the frame-local program
// counter becomes a Block+InstrIndex pair, and the frame-stack push/pop on
// CALL/RETURN becomes the step-out ReturnStack.
package walker

import (
	"sort"

	"github.com/vantines/obfmatch/internal/bytecode"
)

// Block is a maximal straight-line run of instructions: no instruction
// except the last branches or returns, and no instruction except the first
// is a branch target.
type Block struct {
	Start, End   int // instruction index range [Start, End)
	Instructions []bytecode.Instruction

	Next     *Block   // fallthrough successor, nil if none
	Branches []*Block // non-fallthrough successors, in declared order
	Prev     []*Block // every predecessor that can reach this block directly

	// Trunk is set the first time this block is entered as a branch
	// target; used by nextBlock
	// step 4 to resume the block that branched into an already-drained
	// region.
	Trunk *Block
}

// Partition splits a method's instruction stream into basic blocks.
// Boundaries fall at index 0, at every branch target, and immediately
// after every branching or returning instruction.
func Partition(instrs []bytecode.Instruction) []*Block {
	n := len(instrs)
	if n == 0 {
		return nil
	}
	boundary := map[int]bool{0: true}
	for i, in := range instrs {
		isBranch := len(in.BranchTargets) > 0
		isReturn := in.Op == bytecode.OpReturn
		if (isBranch || isReturn) && i+1 < n {
			boundary[i+1] = true
		}
		for _, t := range in.BranchTargets {
			if t >= 0 && t < n {
				boundary[t] = true
			}
		}
	}
	starts := make([]int, 0, len(boundary))
	for s := range boundary {
		starts = append(starts, s)
	}
	sort.Ints(starts)

	blocks := make([]*Block, len(starts))
	byStart := make(map[int]*Block, len(starts))
	for i, s := range starts {
		end := n
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		b := &Block{Start: s, End: end, Instructions: instrs[s:end]}
		blocks[i] = b
		byStart[s] = b
	}

	for i, b := range blocks {
		last := b.Instructions[len(b.Instructions)-1]
		isReturn := last.Op == bytecode.OpReturn
		isBranch := len(last.BranchTargets) > 0
		fallsThrough := !isReturn && (!isBranch || last.IsConditional)
		if fallsThrough && i+1 < len(blocks) {
			b.Next = blocks[i+1]
			blocks[i+1].Prev = append(blocks[i+1].Prev, b)
		}
		for _, t := range last.BranchTargets {
			if tb, ok := byStart[t]; ok {
				b.Branches = append(b.Branches, tb)
				tb.Prev = append(tb.Prev, b)
			}
		}
	}
	return blocks
}

// Origin walks b's predecessor chain (always taking the first recorded
// predecessor) until it reaches a block with none, which is the earliest
// ancestor reachable this way. A visited set guards against loop back-edges
// turning this into an infinite walk; on a cycle the walk simply stops at
// the first repeat.
func (b *Block) Origin() *Block {
	seen := map[*Block]bool{}
	cur := b
	for len(cur.Prev) > 0 {
		if seen[cur] {
			break
		}
		seen[cur] = true
		cur = cur.Prev[0]
	}
	return cur
}
