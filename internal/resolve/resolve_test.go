package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vantines/obfmatch/internal/model"
	"github.com/vantines/obfmatch/internal/resolve"
)

func TestFieldResolvesUpHierarchy(t *testing.T) {
	base := model.NewClass("Base", 0, true)
	f := model.NewField(base, "count", "I", model.FlagPrivate)
	child := model.NewClass("Child", 0, true)
	child.AddParent(base)

	assert.Same(t, f, resolve.Field(child, "count", "I"))
	assert.Nil(t, resolve.Field(child, "missing", "I"))
}

func TestMethodVirtualResolution(t *testing.T) {
	base := model.NewClass("Base", 0, true)
	m := model.NewMethod(base, "run", "()V", model.FlagPublic)
	child := model.NewClass("Child", 0, true)
	child.AddParent(base)

	got := resolve.Method(child, "run", "()V", false)
	assert.Same(t, m, got)
}

func TestMethodOverrideWins(t *testing.T) {
	base := model.NewClass("Base", 0, true)
	model.NewMethod(base, "run", "()V", model.FlagPublic)
	child := model.NewClass("Child", 0, true)
	child.AddParent(base)
	override := model.NewMethod(child, "run", "()V", model.FlagPublic)

	got := resolve.Method(child, "run", "()V", false)
	assert.Same(t, override, got)
}

func TestInterfaceMethodMaximallySpecific(t *testing.T) {
	top := model.NewClass("Top", model.FlagInterface, true)
	topM := model.NewMethod(top, "go", "()V", model.FlagPublic|model.FlagAbstract)
	_ = topM
	mid := model.NewClass("Mid", model.FlagInterface, true)
	mid.AddInterface(top)
	midM := model.NewMethod(mid, "go", "()V", model.FlagPublic)
	impl := model.NewClass("Impl", 0, true)
	impl.AddInterface(mid)

	got := resolve.Method(impl, "go", "()V", true)
	assert.Same(t, midM, got)
}

func TestInterfaceMethodAmbiguousReturnsNil(t *testing.T) {
	a := model.NewClass("A", model.FlagInterface, true)
	model.NewMethod(a, "go", "()V", model.FlagPublic)
	b := model.NewClass("B", model.FlagInterface, true)
	model.NewMethod(b, "go", "()V", model.FlagPublic)
	impl := model.NewClass("Impl", 0, true)
	impl.AddInterface(a)
	impl.AddInterface(b)

	assert.Nil(t, resolve.Method(impl, "go", "()V", true))
}
