package model

// Field is a declared field. Initializer is the constant value of a
// single-write field as resolved by the parser; nil if the field
// has no single-writer constant.
type Field struct {
	Owner  *Class
	Name   string
	Desc   string
	Access AccessFlags

	Type        *Class
	Initializer interface{}

	Reads     map[*Method]struct{}
	Writes    map[*Method]struct{}
	Overrides map[*Field]struct{}

	Match *Field
}

func NewField(owner *Class, name, desc string, access AccessFlags) *Field {
	f := &Field{
		Owner:     owner,
		Name:      name,
		Desc:      desc,
		Access:    access,
		Reads:     make(map[*Method]struct{}),
		Writes:    make(map[*Method]struct{}),
		Overrides: make(map[*Field]struct{}),
	}
	if owner != nil {
		owner.Fields[MemberKey(name, desc)] = f
	}
	return f
}

func (f *Field) memberKey() string { return MemberKey(f.Name, f.Desc) }

func (f *Field) DisplayName() string {
	if f.Owner == nil {
		return f.memberKey()
	}
	return f.Owner.InternalName + "." + f.memberKey()
}

func (f *Field) MatchOf() *Field { return f.Match }

func (f *Field) SetMatch(other *Field) {
	f.Match = other
	if other != nil {
		other.Match = f
	}
}

func (f *Field) IsStatic() bool { return f.Access.Has(FlagStatic) }
