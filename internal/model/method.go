package model

import "github.com/vantines/obfmatch/internal/bytecode"

// Method is a declared method or constructor. CallIn/CallOut/FieldReads/
// FieldWrites/ClassRefs/Overrides are the cross-reference edges the parser
// collaborator is required to have computed.
type Method struct {
	Owner  *Class
	Name   string
	Desc   string
	Access AccessFlags

	Instructions []bytecode.Instruction

	Return *Class
	Args   []*Class

	CallIn      map[*Method]struct{}
	CallOut     map[*Method]struct{}
	FieldReads  map[*Field]struct{}
	FieldWrites map[*Field]struct{}
	ClassRefs   map[*Class]struct{}
	Overrides   map[*Method]struct{}

	Match *Method
}

// NewMethod returns an empty method attached to owner.
func NewMethod(owner *Class, name, desc string, access AccessFlags) *Method {
	m := &Method{
		Owner:       owner,
		Name:        name,
		Desc:        desc,
		Access:      access,
		CallIn:      make(map[*Method]struct{}),
		CallOut:     make(map[*Method]struct{}),
		FieldReads:  make(map[*Field]struct{}),
		FieldWrites: make(map[*Field]struct{}),
		ClassRefs:   make(map[*Class]struct{}),
		Overrides:   make(map[*Method]struct{}),
	}
	if owner != nil {
		owner.Methods[MemberKey(name, desc)] = m
	}
	return m
}

func (m *Method) memberKey() string { return MemberKey(m.Name, m.Desc) }

// DisplayName satisfies Entity[*Method]. It is distinct from the Name field
// (the bare member name) so owner+signature show up in logs and traces.
func (m *Method) DisplayName() string {
	if m.Owner == nil {
		return m.memberKey()
	}
	return m.Owner.InternalName + "." + m.memberKey()
}

func (m *Method) MatchOf() *Method { return m.Match }

func (m *Method) SetMatch(other *Method) {
	m.Match = other
	if other != nil {
		other.Match = m
	}
}

func (m *Method) IsStatic() bool      { return m.Access.Has(FlagStatic) }
func (m *Method) IsPrivate() bool     { return m.Access.Has(FlagPrivate) }
func (m *Method) IsAbstract() bool    { return m.Access.Has(FlagAbstract) }
func (m *Method) IsConstructor() bool { return m.Name == "<init>" }
func (m *Method) IsClassInit() bool   { return m.Name == "<clinit>" }

// Real reports whether the method has a body to compare instructions over.
// Methods without one (abstract, native, or declared on a synthetic class)
// compare vacuously equal.
func (m *Method) Real() bool {
	return m.Owner != nil && m.Owner.Real && !m.IsAbstract() && !m.Access.Has(FlagNative)
}
