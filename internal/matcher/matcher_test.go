package matcher_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantines/obfmatch/internal/bytecode"
	"github.com/vantines/obfmatch/internal/matcher"
	"github.com/vantines/obfmatch/internal/model"
	"github.com/vantines/obfmatch/internal/model/fixture"
)

func run(t *testing.T, ga, gb *model.Group) *matcher.Result {
	t.Helper()
	eng := matcher.New(matcher.DefaultConfig())
	res, err := eng.Run(context.Background(), ga, gb)
	require.NoError(t, err)
	return res
}

// A class renamed end to end ("A" -> "X") with one method kept under its
// original name. "A", "X" and "f" are all short enough to count as
// obfuscated, so there is no name anchor: the class pass finds the pair on
// member similarity alone, and the method follows in a later member pass.
func TestRenameOnlyClassAndMethod(t *testing.T) {
	a := fixture.Class("A", model.FlagPublic)
	af := fixture.Method(a, "f", "()V", model.FlagPublic)
	ga := fixture.Group(a)

	x := fixture.Class("X", model.FlagPublic)
	xf := fixture.Method(x, "f", "()V", model.FlagPublic)
	gb := fixture.Group(x)

	run(t, ga, gb)

	assert.Same(t, x, a.Match)
	assert.Same(t, xf, af.Match)
}

// Obfuscated class and method names on both sides, one candidate each,
// with both methods loading the same string constant: every classifier,
// including the method-level string-constant one, agrees, so each sole
// candidate is accepted.
func TestObfuscatedNamesMatchOnStringConstant(t *testing.T) {
	aa := fixture.Class("aa", model.FlagPublic)
	am := fixture.Method(aa, "m", "()V", model.FlagPublic)
	am.Instructions = []bytecode.Instruction{
		{Op: bytecode.OpLdc, ConstKind: bytecode.ConstString, Constant: "hello"},
	}
	ga := fixture.Group(aa)

	bb := fixture.Class("bb", model.FlagPublic)
	bm := fixture.Method(bb, "m", "()V", model.FlagPublic)
	bm.Instructions = []bytecode.Instruction{
		{Op: bytecode.OpLdc, ConstKind: bytecode.ConstString, Constant: "hello"},
	}
	gb := fixture.Group(bb)

	run(t, ga, gb)

	assert.Same(t, bb, aa.Match)
	assert.Same(t, bm, am.Match)
}

// A non-obfuscated parent anchors by name; its obfuscated subclass, which
// overrides one method on each side, should then be matched by hierarchy
// and member similarity, and the override propagates the method match.
func TestHierarchyPropagatesOverrideMatch(t *testing.T) {
	marker := []bytecode.Instruction{
		{Op: bytecode.OpLdc, ConstKind: bytecode.ConstString, Constant: "basemarker"},
	}

	parentA := fixture.Class("Parent", model.FlagPublic)
	baseG := fixture.Method(parentA, "g", "()V", model.FlagPublic)
	baseG.Instructions = marker
	childA := fixture.Class("aa", model.FlagPublic)
	fixture.Extend(childA, parentA)
	overrideA := fixture.Method(childA, "g", "()V", model.FlagPublic)
	fixture.Override(overrideA, baseG)
	ga := fixture.Group(parentA, childA)

	parentB := fixture.Class("Parent", model.FlagPublic)
	baseGB := fixture.Method(parentB, "g", "()V", model.FlagPublic)
	baseGB.Instructions = marker
	childB := fixture.Class("bb", model.FlagPublic)
	fixture.Extend(childB, parentB)
	overrideB := fixture.Method(childB, "g", "()V", model.FlagPublic)
	fixture.Override(overrideB, baseGB)
	gb := fixture.Group(parentB, childB)

	run(t, ga, gb)

	assert.Same(t, parentB, parentA.Match)
	assert.Same(t, childB, childA.Match)
	assert.Same(t, overrideB, overrideA.Match)
}

// Three sources chasing two destinations; two of the sources are
// indistinguishable and rank the same destination top: that destination
// and both contending sources are left unmatched, while the unambiguous
// pair still matches.
func TestConflictLeavesContendedPairUnmatched(t *testing.T) {
	a1 := fixture.Class("a1", model.FlagPublic)
	fixture.Method(a1, "foo", "()V", model.FlagPublic)
	a2 := fixture.Class("a2", model.FlagPublic)
	fixture.Method(a2, "foo", "()V", model.FlagPublic)
	a3 := fixture.Class("a3", model.FlagPublic)
	fixture.Method(a3, "bar", "()V", model.FlagPublic)
	ga := fixture.Group(a1, a2, a3)

	b1 := fixture.Class("b1", model.FlagPublic)
	fixture.Method(b1, "foo", "()V", model.FlagPublic)
	b2 := fixture.Class("b2", model.FlagPublic)
	fixture.Method(b2, "bar", "()V", model.FlagPublic)
	gb := fixture.Group(b1, b2)

	run(t, ga, gb)

	assert.Same(t, b2, a3.Match)
	assert.Nil(t, a1.Match)
	assert.Nil(t, a2.Match)
	assert.Nil(t, b1.Match)
}

// Two static methods tie on every ordinary classifier; only the execution
// walker's lockstep agreement (an Extra-level-only signal) tells a forward
// jump from a backward one, breaking the tie in favor of the candidate
// whose jump direction actually agrees.
func TestJumpDirectionBreaksExtraLevelTie(t *testing.T) {
	jumpBody := func(forward bool) []bytecode.Instruction {
		target, pos := int64(0), int64(0)
		if forward {
			pos, target = 0, 20
		} else {
			pos, target = 10, 2
		}
		return []bytecode.Instruction{
			{Op: bytecode.OpJump, Pos: int(pos), JumpTarget: int(target), IsConditional: true, BranchTargets: []int{2}},
			{Op: bytecode.OpIntPush, IntOperand: 1},
			{Op: bytecode.OpReturn},
		}
	}

	src := fixture.Class("Src", model.FlagPublic)
	srcM := fixture.Method(src, "target", "()V", model.FlagPublic|model.FlagStatic)
	srcM.Instructions = jumpBody(true)
	ga := fixture.Group(src)

	dst1 := fixture.Class("aa", model.FlagPublic)
	okM := fixture.Method(dst1, "target", "()V", model.FlagPublic|model.FlagStatic)
	okM.Instructions = jumpBody(true)

	dst2 := fixture.Class("bb", model.FlagPublic)
	badM := fixture.Method(dst2, "target", "()V", model.FlagPublic|model.FlagStatic)
	badM.Instructions = jumpBody(false)

	gb := fixture.Group(dst1, dst2)

	run(t, ga, gb)

	assert.Same(t, okM, srcM.Match)
	assert.Nil(t, badM.Match)
}

// Same tie-breaking shape as the jump-direction case, but the disagreement
// is a TABLESWITCH whose range differs only in its upper bound.
func TestTableSwitchMaxBreaksExtraLevelTie(t *testing.T) {
	switchBody := func(max int32) []bytecode.Instruction {
		return []bytecode.Instruction{
			{Op: bytecode.OpTableSwitch, SwitchMin: 0, SwitchMax: max},
			{Op: bytecode.OpReturn},
		}
	}

	src := fixture.Class("Src", model.FlagPublic)
	srcM := fixture.Method(src, "target", "()V", model.FlagPublic|model.FlagStatic)
	srcM.Instructions = switchBody(9)
	ga := fixture.Group(src)

	dst1 := fixture.Class("aa", model.FlagPublic)
	okM := fixture.Method(dst1, "target", "()V", model.FlagPublic|model.FlagStatic)
	okM.Instructions = switchBody(9)

	dst2 := fixture.Class("bb", model.FlagPublic)
	badM := fixture.Method(dst2, "target", "()V", model.FlagPublic|model.FlagStatic)
	badM.Instructions = switchBody(10)

	gb := fixture.Group(dst1, dst2)

	run(t, ga, gb)

	assert.Same(t, okM, srcM.Match)
	assert.Nil(t, badM.Match)
}
