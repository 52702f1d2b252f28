// Package resolve implements field and method resolution across a class
// hierarchy, used by the bytecode instruction comparator to
// turn a raw owner/name/desc triple from an instruction into the concrete
// *model.Field/*model.Method it addresses within one class group.
package resolve

import "github.com/vantines/obfmatch/internal/model"

// Field resolves a field by name+descriptor starting at class c: direct
// field on C; else BFS over C's interfaces in declaration order; else walk
// the ancestor chain repeating the interface search at each level.
func Field(c *model.Class, name, desc string) *model.Field {
	for cur := c; cur != nil; cur = cur.Parent {
		if f, ok := cur.Fields[model.MemberKey(name, desc)]; ok {
			return f
		}
		if f := fieldOnInterfaces(cur, name, desc); f != nil {
			return f
		}
	}
	return nil
}

func fieldOnInterfaces(c *model.Class, name, desc string) *model.Field {
	for _, iface := range c.SuperInterfaces() {
		if f, ok := iface.Fields[model.MemberKey(name, desc)]; ok {
			return f
		}
	}
	return nil
}

// Method resolves a method by name+descriptor starting at class c,
// honoring the interface-call bit.
func Method(c *model.Class, name, desc string, toInterface bool) *model.Method {
	if toInterface {
		return resolveInterfaceCall(c, name, desc)
	}
	return resolveVirtualCall(c, name, desc)
}

func resolveVirtualCall(c *model.Class, name, desc string) *model.Method {
	for cur := c; cur != nil; cur = cur.Parent {
		if m, ok := cur.Methods[model.MemberKey(name, desc)]; ok {
			return m
		}
	}
	return resolveInterfaceMethod(c, name, desc)
}

func resolveInterfaceCall(c *model.Class, name, desc string) *model.Method {
	if m, ok := c.Methods[model.MemberKey(name, desc)]; ok {
		return m
	}
	if c.Parent != nil {
		if m, ok := c.Parent.Methods[model.MemberKey(name, desc)]; ok {
			if m.Access.Has(model.FlagPublic) && !m.Access.Has(model.FlagStatic) {
				return m
			}
		}
	}
	return resolveInterfaceMethod(c, name, desc)
}

// resolveInterfaceMethod applies the maximally-specific interface
// resolution rule: BFS all super-interfaces transitively, collect
// candidates (non-private, non-static, matching name+desc), prefer
// non-abstract if any exist, then eliminate candidates whose owner is a
// super-interface of another candidate's owner. Returns the unique
// survivor, or nil if zero or more than one remain.
func resolveInterfaceMethod(c *model.Class, name, desc string) *model.Method {
	var candidates []*model.Method
	for _, iface := range c.SuperInterfaces() {
		m, ok := iface.Methods[model.MemberKey(name, desc)]
		if !ok {
			continue
		}
		if m.Access.Has(model.FlagPrivate) || m.Access.Has(model.FlagStatic) {
			continue
		}
		candidates = append(candidates, m)
	}
	if len(candidates) == 0 {
		return nil
	}
	var nonAbstract []*model.Method
	for _, m := range candidates {
		if !m.Access.Has(model.FlagAbstract) {
			nonAbstract = append(nonAbstract, m)
		}
	}
	if len(nonAbstract) > 0 {
		candidates = nonAbstract
	}
	if len(candidates) == 1 {
		return candidates[0]
	}
	survivors := make([]*model.Method, 0, len(candidates))
	for _, m := range candidates {
		dominated := false
		for _, other := range candidates {
			if other == m {
				continue
			}
			if isSuperInterfaceOf(m.Owner, other.Owner) {
				dominated = true
				break
			}
		}
		if !dominated {
			survivors = append(survivors, m)
		}
	}
	if len(survivors) == 1 {
		return survivors[0]
	}
	return nil
}

func isSuperInterfaceOf(candidate, of *model.Class) bool {
	for _, iface := range of.SuperInterfaces() {
		if iface == candidate {
			return true
		}
	}
	return false
}
