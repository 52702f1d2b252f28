// Package fixture builds minimal synthetic class graphs for tests,
// avoiding a real class-file reader while still exercising the matching
// engine end to end against concrete scenarios.
package fixture

import "github.com/vantines/obfmatch/internal/model"

// Class builds a real class with no hierarchy yet.
func Class(name string, access model.AccessFlags) *model.Class {
	return model.NewClass(name, access, true)
}

// Synthetic builds a synthetic (unloaded/platform) class.
func Synthetic(name string) *model.Class {
	return model.NewClass(name, 0, false)
}

// Extend links child under parent, keeping both sides' edges consistent.
func Extend(child, parent *model.Class) *model.Class {
	child.AddParent(parent)
	return child
}

// Implement links child as an implementer of iface.
func Implement(child, iface *model.Class) *model.Class {
	child.AddInterface(iface)
	return child
}

// Method adds a method declaration to owner.
func Method(owner *model.Class, name, desc string, access model.AccessFlags) *model.Method {
	return model.NewMethod(owner, name, desc, access)
}

// Field adds a field declaration to owner.
func Field(owner *model.Class, name, desc string, access model.AccessFlags) *model.Field {
	return model.NewField(owner, name, desc, access)
}

// Override records that m overrides base (ancestor/interface method with
// equal signature), symmetrically, the way a real parser's override-set
// computation would.
func Override(m, base *model.Method) {
	m.Overrides[base] = struct{}{}
	base.Overrides[m] = struct{}{}
}

// CallEdge records that caller invokes callee.
func CallEdge(caller, callee *model.Method) {
	caller.CallOut[callee] = struct{}{}
	callee.CallIn[caller] = struct{}{}
}

// FieldRead records that m reads f.
func FieldRead(m *model.Method, f *model.Field) {
	m.FieldReads[f] = struct{}{}
	f.Reads[m] = struct{}{}
}

// FieldWrite records that m writes f.
func FieldWrite(m *model.Method, f *model.Field) {
	m.FieldWrites[f] = struct{}{}
	f.Writes[m] = struct{}{}
}

// String adds a string constant to a class's constant pool.
func String(c *model.Class, s string) { c.Strings[s] = struct{}{} }

// Group collects classes into a Group.
func Group(classes ...*model.Class) *model.Group {
	g := model.NewGroup()
	for _, c := range classes {
		g.Add(c)
	}
	return g
}
