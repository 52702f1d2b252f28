package model

import "sort"

// Class is one type in a class group: its hierarchy edges, its declared
// members, and the constant/cross-reference sets the classifier framework
// scores against. Everything here is populated by the parser collaborator;
// the engine only ever reads it, except for Match, which is the single
// field it ever writes.
type Class struct {
	InternalName string
	Access       AccessFlags
	Real         bool // false => synthetic stand-in for an unloaded (e.g. platform) type

	Parent     *Class
	Interfaces []*Class
	Children   map[*Class]struct{}
	Implementers map[*Class]struct{}

	Methods map[string]*Method // keyed by name+desc, see MemberKey
	Fields  map[string]*Field

	Strings map[string]struct{}
	Ints    map[int32]struct{}
	Longs   map[int64]struct{}
	Floats  map[float32]struct{}
	Doubles map[float64]struct{}

	InRefs  map[*Class]struct{} // classes that reference this one as a type
	OutRefs map[*Class]struct{} // classes this one references

	Match *Class
}

// NewClass returns an empty class, real or synthetic as real says, ready
// for the parser to populate.
func NewClass(name string, access AccessFlags, real bool) *Class {
	return &Class{
		InternalName: name,
		Access:       access,
		Real:         real,
		Children:     make(map[*Class]struct{}),
		Implementers: make(map[*Class]struct{}),
		Methods:      make(map[string]*Method),
		Fields:       make(map[string]*Field),
		Strings:      make(map[string]struct{}),
		Ints:         make(map[int32]struct{}),
		Longs:        make(map[int64]struct{}),
		Floats:       make(map[float32]struct{}),
		Doubles:      make(map[float64]struct{}),
		InRefs:       make(map[*Class]struct{}),
		OutRefs:      make(map[*Class]struct{}),
	}
}

// DisplayName satisfies Entity[*Class].
func (c *Class) DisplayName() string { return c.InternalName }

// MatchOf satisfies Entity[*Class].
func (c *Class) MatchOf() *Class { return c.Match }

// SetMatch sets the match pointer symmetrically, preserving the matchable
// invariant (a.match == b and b.match == a) in one call. Passing nil is
// never used by this engine (it never retracts a match once committed) but
// is supported for test fixtures.
func (c *Class) SetMatch(other *Class) {
	c.Match = other
	if other != nil {
		other.Match = c
	}
}

// AddParent links c to its parent class, keeping Children consistent on the
// parent side. AddInterface does the same for an interface and its
// Implementers.
func (c *Class) AddParent(parent *Class) {
	c.Parent = parent
	if parent != nil {
		parent.Children[c] = struct{}{}
	}
}

func (c *Class) AddInterface(iface *Class) {
	c.Interfaces = append(c.Interfaces, iface)
	if iface != nil {
		iface.Implementers[c] = struct{}{}
	}
}

// HierarchyClosure returns the class itself plus every ancestor reachable
// via Parent and Interfaces, via DFS.
func (c *Class) HierarchyClosure() []*Class {
	seen := map[*Class]struct{}{}
	var out []*Class
	var dfs func(*Class)
	dfs = func(cur *Class) {
		if cur == nil {
			return
		}
		if _, ok := seen[cur]; ok {
			return
		}
		seen[cur] = struct{}{}
		out = append(out, cur)
		dfs(cur.Parent)
		for _, i := range cur.Interfaces {
			dfs(i)
		}
	}
	dfs(c)
	return out
}

// SuperInterfaces returns every interface directly or transitively
// implemented by c, in BFS declaration order, used by method/field
// resolution.
func (c *Class) SuperInterfaces() []*Class {
	seen := map[*Class]struct{}{}
	var order []*Class
	queue := append([]*Class{}, c.Interfaces...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == nil {
			continue
		}
		if _, ok := seen[cur]; ok {
			continue
		}
		seen[cur] = struct{}{}
		order = append(order, cur)
		queue = append(queue, cur.Interfaces...)
	}
	return order
}

// SortedMethods returns the class's declared methods in deterministic
// (name+desc) order, needed wherever iteration order could otherwise affect
// the matched set.
func (c *Class) SortedMethods() []*Method {
	out := make([]*Method, 0, len(c.Methods))
	for _, m := range c.Methods {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].memberKey() < out[j].memberKey() })
	return out
}

// SortedFields returns the class's declared fields in deterministic order.
func (c *Class) SortedFields() []*Field {
	out := make([]*Field, 0, len(c.Fields))
	for _, f := range c.Fields {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].memberKey() < out[j].memberKey() })
	return out
}

// MemberKey is the Methods/Fields map key: name+descriptor, which is unique
// within one class the way the JVM constant pool guarantees.
func MemberKey(name, desc string) string { return name + "\x00" + desc }
