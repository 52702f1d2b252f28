package model

import "sort"

// Group is a class group: every class loaded from one JAR plus
// the synthetic stand-ins it references. Two groups are matched against
// each other; synthetic classes are typically shared between them by the
// parser (e.g. both groups point at the same *Class for "java/lang/Object").
type Group struct {
	classes map[string]*Class
}

func NewGroup() *Group {
	return &Group{classes: make(map[string]*Class)}
}

// Add registers a class under its internal name. Re-adding the same name
// replaces the entry; callers populating synthetic stand-ins shared across
// groups should add the same *Class pointer to both groups instead.
func (g *Group) Add(c *Class) {
	g.classes[c.InternalName] = c
}

func (g *Group) Lookup(name string) (*Class, bool) {
	c, ok := g.classes[name]
	return c, ok
}

// Classes returns every class in the group, sorted by internal name so
// iteration is deterministic.
func (g *Group) Classes() []*Class {
	out := make([]*Class, 0, len(g.classes))
	for _, c := range g.classes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InternalName < out[j].InternalName })
	return out
}

// RealClasses returns the Real-flagged classes, sorted by internal name.
func (g *Group) RealClasses() []*Class {
	all := g.Classes()
	out := all[:0:0]
	for _, c := range all {
		if c.Real {
			out = append(out, c)
		}
	}
	return out
}

// UnmatchedRealClasses returns real classes with Match == nil, sorted.
func (g *Group) UnmatchedRealClasses() []*Class {
	var out []*Class
	for _, c := range g.RealClasses() {
		if c.Match == nil {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of classes registered in the group.
func (g *Group) Len() int { return len(g.classes) }
