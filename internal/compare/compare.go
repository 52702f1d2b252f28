// Package compare implements the bytecode instruction comparator: given
// two instructions (each scoped to one of the two class groups being
// matched), decide whether they are equal at design level by opcode
// family.
package compare

import (
	"github.com/vantines/obfmatch/internal/bytecode"
	"github.com/vantines/obfmatch/internal/model"
	"github.com/vantines/obfmatch/internal/resolve"
	"github.com/vantines/obfmatch/internal/similarity"
)

// Comparator resolves field/method instruction operands within each side's
// class group before applying the potential-equality predicates.
type Comparator struct {
	GroupA *model.Group
	GroupB *model.Group
}

func New(a, b *model.Group) *Comparator {
	return &Comparator{GroupA: a, GroupB: b}
}

func (c *Comparator) lookupA(name string) *model.Class {
	cls, _ := c.GroupA.Lookup(name)
	return cls
}

func (c *Comparator) lookupB(name string) *model.Class {
	cls, _ := c.GroupB.Lookup(name)
	return cls
}

// Equal dispatches on opcode family and applies its per-family rule. a is
// an instruction from a method in GroupA, b from a method in GroupB.
func (c *Comparator) Equal(a, b bytecode.Instruction) bool {
	if a.Op != b.Op {
		return false
	}
	switch {
	case a.Op == bytecode.OpIntPush:
		return a.IntOperand == b.IntOperand
	case a.Op == bytecode.OpVarLoad, a.Op == bytecode.OpVarStore:
		return true // local-variable matching is deliberately omitted
	case a.Op == bytecode.OpTypeInstr:
		return similarity.PotentialEqualClass(c.lookupA(a.Owner), c.lookupB(b.Owner))
	case a.Op.IsFieldOp():
		return c.fieldsEqual(a, b)
	case a.Op.IsMethodOp():
		return c.methodsEqual(a, b)
	case a.Op == bytecode.OpInvokeDynamic:
		return c.invokeDynamicEqual(a, b)
	case a.Op == bytecode.OpJump:
		return a.JumpSign() == b.JumpSign()
	case a.Op == bytecode.OpLdc:
		return c.ldcEqual(a, b)
	case a.Op == bytecode.OpIinc:
		return a.IntOperand == b.IntOperand
	case a.Op == bytecode.OpTableSwitch:
		return a.SwitchMin == b.SwitchMin && a.SwitchMax == b.SwitchMax
	case a.Op == bytecode.OpLookupSwitch:
		return int32SliceEqual(a.SwitchKeys, b.SwitchKeys)
	case a.Op == bytecode.OpMultiANewArray:
		return a.Dims == b.Dims && similarity.PotentialEqualClass(c.lookupA(a.Owner), c.lookupB(b.Owner))
	default:
		return a.Op == b.Op
	}
}

func (c *Comparator) fieldsEqual(a, b bytecode.Instruction) bool {
	fa := resolveField(c.GroupA, a)
	fb := resolveField(c.GroupB, b)
	if fa == nil && fb == nil {
		return true
	}
	if fa == nil || fb == nil {
		return false
	}
	return similarity.PotentialEqualField(fa, fb)
}

func resolveField(g *model.Group, in bytecode.Instruction) *model.Field {
	owner, ok := g.Lookup(in.Owner)
	if !ok {
		return nil
	}
	return resolve.Field(owner, in.MemberName, in.MemberDesc)
}

func (c *Comparator) methodsEqual(a, b bytecode.Instruction) bool {
	ma := resolveMethod(c.GroupA, a)
	mb := resolveMethod(c.GroupB, b)
	if ma == nil && mb == nil {
		return true
	}
	if ma == nil || mb == nil {
		return false
	}
	return similarity.PotentialEqualMethod(ma, mb)
}

func resolveMethod(g *model.Group, in bytecode.Instruction) *model.Method {
	owner, ok := g.Lookup(in.Owner)
	if !ok {
		return nil
	}
	return resolve.Method(owner, in.MemberName, in.MemberDesc, in.InterfaceCall)
}

// invokeDynamicEqual requires equal bootstrap handles; if the bootstrap is
// the JDK lambda metafactory, arg[1] is unwrapped as the implementation
// handle and its target methods compared per the handle's tag.
func (c *Comparator) invokeDynamicEqual(a, b bytecode.Instruction) bool {
	if !a.Bootstrap.Equal(b.Bootstrap) {
		return false
	}
	if !a.Bootstrap.IsLambdaMetafactory() {
		return true
	}
	implA, okA := lambdaImpl(a.BootstrapArgs)
	implB, okB := lambdaImpl(b.BootstrapArgs)
	if !okA || !okB {
		return okA == okB
	}
	ownerA := c.lookupA(implA.Owner)
	ownerB := c.lookupB(implB.Owner)
	if implA.IsInterface || implB.IsInterface {
		ma := resolve.Method(ownerA, implA.Name, implA.Desc, true)
		mb := resolve.Method(ownerB, implB.Name, implB.Desc, true)
		return methodPairEqual(ma, mb)
	}
	ma := resolve.Method(ownerA, implA.Name, implA.Desc, false)
	mb := resolve.Method(ownerB, implB.Name, implB.Desc, false)
	return methodPairEqual(ma, mb)
}

func methodPairEqual(a, b *model.Method) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return similarity.PotentialEqualMethod(a, b)
}

func lambdaImpl(args []interface{}) (bytecode.Handle, bool) {
	if len(args) < 2 {
		return bytecode.Handle{}, false
	}
	h, ok := args[1].(bytecode.Handle)
	return h, ok
}

func (c *Comparator) ldcEqual(a, b bytecode.Instruction) bool {
	if a.ConstKind != b.ConstKind {
		return false
	}
	if a.ConstKind == bytecode.ConstClassType {
		return similarity.PotentialEqualClass(c.lookupA(a.ConstClass), c.lookupB(b.ConstClass))
	}
	return a.Constant == b.Constant
}

// InstructionStreamSimilarity is compareLists applied over two
// methods' instruction streams using Equal as the element predicate.
// Methods without a body (no real instructions available) compare
// vacuously equal.
func (c *Comparator) InstructionStreamSimilarity(ma, mb *model.Method) float64 {
	if !ma.Real() || !mb.Real() {
		return 1.0
	}
	return similarity.CompareLists(ma.Instructions, mb.Instructions, c.Equal)
}

func int32SliceEqual(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
