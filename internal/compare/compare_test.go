package compare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vantines/obfmatch/internal/bytecode"
	"github.com/vantines/obfmatch/internal/compare"
	"github.com/vantines/obfmatch/internal/model"
)

func newComparator() (*compare.Comparator, *model.Group, *model.Group) {
	ga := model.NewGroup()
	gb := model.NewGroup()
	return compare.New(ga, gb), ga, gb
}

func TestEqualIntPush(t *testing.T) {
	cmp, _, _ := newComparator()
	a := bytecode.Instruction{Op: bytecode.OpIntPush, IntOperand: 7}
	b := bytecode.Instruction{Op: bytecode.OpIntPush, IntOperand: 7}
	assert.True(t, cmp.Equal(a, b))
	b.IntOperand = 8
	assert.False(t, cmp.Equal(a, b))
}

func TestEqualJumpDirection(t *testing.T) {
	cmp, _, _ := newComparator()
	forward := bytecode.Instruction{Op: bytecode.OpJump, Pos: 10, JumpTarget: 20}
	backward := bytecode.Instruction{Op: bytecode.OpJump, Pos: 10, JumpTarget: 2}
	assert.False(t, cmp.Equal(forward, backward), "forward vs backward jump must mismatch")

	forward2 := bytecode.Instruction{Op: bytecode.OpJump, Pos: 0, JumpTarget: 50}
	assert.True(t, cmp.Equal(forward, forward2), "two forward jumps agree regardless of distance")
}

func TestEqualTableSwitchMaxMismatch(t *testing.T) {
	cmp, _, _ := newComparator()
	a := bytecode.Instruction{Op: bytecode.OpTableSwitch, SwitchMin: 0, SwitchMax: 9}
	b := bytecode.Instruction{Op: bytecode.OpTableSwitch, SwitchMin: 0, SwitchMax: 10}
	assert.False(t, cmp.Equal(a, b))
}

func TestEqualLocalVarIgnoresIndex(t *testing.T) {
	cmp, _, _ := newComparator()
	a := bytecode.Instruction{Op: bytecode.OpVarLoad, VarIndex: 1}
	b := bytecode.Instruction{Op: bytecode.OpVarLoad, VarIndex: 9}
	assert.True(t, cmp.Equal(a, b))
}

func TestEqualFieldBothUnresolved(t *testing.T) {
	cmp, _, _ := newComparator()
	a := bytecode.Instruction{Op: bytecode.OpGetField, Owner: "Missing", MemberName: "x", MemberDesc: "I"}
	b := bytecode.Instruction{Op: bytecode.OpGetField, Owner: "AlsoMissing", MemberName: "y", MemberDesc: "I"}
	assert.True(t, cmp.Equal(a, b), "both unresolved fields compare equal")
}

func TestInstructionStreamSimilarityVacuousForAbstract(t *testing.T) {
	cmp, _, _ := newComparator()
	owner := model.NewClass("I", model.FlagInterface, true)
	abstractM := model.NewMethod(owner, "go", "()V", model.FlagAbstract|model.FlagInterface)
	other := model.NewMethod(owner, "go2", "()V", model.FlagAbstract|model.FlagInterface)
	assert.Equal(t, 1.0, cmp.InstructionStreamSimilarity(abstractM, other))
}

func TestInstructionStreamSimilarityIdentical(t *testing.T) {
	cmp, _, _ := newComparator()
	owner := model.NewClass("C", 0, true)
	a := model.NewMethod(owner, "f", "()V", 0)
	b := model.NewMethod(owner, "g", "()V", 0)
	a.Instructions = []bytecode.Instruction{{Op: bytecode.OpIntPush, IntOperand: 1}}
	b.Instructions = []bytecode.Instruction{{Op: bytecode.OpIntPush, IntOperand: 1}}
	assert.Equal(t, 1.0, cmp.InstructionStreamSimilarity(a, b))
}
