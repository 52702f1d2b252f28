package walker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantines/obfmatch/internal/bytecode"
	"github.com/vantines/obfmatch/internal/walker"
)

// straightLine has no branches: one basic block.
func straightLine() []bytecode.Instruction {
	return []bytecode.Instruction{
		{Op: bytecode.OpIntPush, Pos: 0, IntOperand: 1},
		{Op: bytecode.OpIntPush, Pos: 1, IntOperand: 2},
		{Op: bytecode.OpReturn, Pos: 2},
	}
}

func TestPartitionStraightLine(t *testing.T) {
	blocks := walker.Partition(straightLine())
	require.Len(t, blocks, 1)
	assert.Equal(t, 0, blocks[0].Start)
	assert.Equal(t, 3, blocks[0].End)
	assert.Nil(t, blocks[0].Next)
	assert.Empty(t, blocks[0].Branches)
}

// ifThenElse: IFEQ@0 jumps to 3 (forward), falls through to 1,2; 3 is the
// join with a trailing RETURN.
func ifThenElse() []bytecode.Instruction {
	return []bytecode.Instruction{
		{Op: bytecode.OpJump, Pos: 0, JumpTarget: 3, IsConditional: true, BranchTargets: []int{3}},
		{Op: bytecode.OpIntPush, Pos: 1, IntOperand: 1},
		{Op: bytecode.OpIntPush, Pos: 2, IntOperand: 2},
		{Op: bytecode.OpReturn, Pos: 3},
	}
}

func TestPartitionConditionalHasFallthroughAndBranch(t *testing.T) {
	blocks := walker.Partition(ifThenElse())
	require.Len(t, blocks, 3)
	first := blocks[0]
	assert.Equal(t, 0, first.Start)
	assert.Equal(t, 1, first.End)
	require.NotNil(t, first.Next)
	assert.Equal(t, 1, first.Next.Start)
	require.Len(t, first.Branches, 1)
	assert.Equal(t, 3, first.Branches[0].Start)
}

func TestExecutionWalksToTermination(t *testing.T) {
	blocks := walker.Partition(straightLine())
	exec := walker.NewExecution(blocks, walker.Config{})
	steps := 0
	for !exec.Terminated && steps < 10 {
		exec.Step()
		steps++
	}
	assert.True(t, exec.Terminated)
	assert.Equal(t, 3, steps)
}

func TestExecutionVisitsBothBranchAndFallthrough(t *testing.T) {
	blocks := walker.Partition(ifThenElse())
	exec := walker.NewExecution(blocks, walker.Config{})
	var visited []int
	for !exec.Terminated {
		if in, ok := exec.CurrentInstruction(); ok {
			visited = append(visited, in.Pos)
		}
		exec.Step()
	}
	// Both the fallthrough arm (1,2) and the branch target (3) must appear.
	assert.Contains(t, visited, 1)
	assert.Contains(t, visited, 2)
	assert.Contains(t, visited, 3)
}

func TestParallelExecutorPausesAndCompares(t *testing.T) {
	a := []bytecode.Instruction{
		{Op: bytecode.OpIntPush, Pos: 0, IntOperand: 5},
		{Op: bytecode.OpReturn, Pos: 1},
	}
	b := []bytecode.Instruction{
		{Op: bytecode.OpIntPush, Pos: 0, IntOperand: 5},
		{Op: bytecode.OpReturn, Pos: 1},
	}
	execA := walker.NewExecution(walker.Partition(a), walker.Config{})
	execB := walker.NewExecution(walker.Partition(b), walker.Config{})
	pe := walker.NewParallelExecutor(execA, execB, walker.DefaultPausePredicate)

	var comparisons int
	pe.ExecuteParallel(func(ia, ib bytecode.Instruction) bool {
		comparisons++
		return ia.IntOperand == ib.IntOperand
	})
	assert.Equal(t, 1, comparisons)
}

func TestReturnStackStepOut(t *testing.T) {
	blocks := walker.Partition(straightLine())
	exec := walker.NewExecution(blocks, walker.Config{EnableStaticInlining: true})
	exec.PushReturn(2)

	calleeBlocks := walker.Partition([]bytecode.Instruction{
		{Op: bytecode.OpIntPush, Pos: 0, IntOperand: 99},
	})
	exec.EnterBlocks(calleeBlocks)

	assert.Equal(t, 0, exec.InstrIndex)
	exec.Step() // exhausts the single-instruction callee block, pops the return stack
	assert.False(t, exec.Terminated)
	assert.Equal(t, 2, exec.InstrIndex)
}
