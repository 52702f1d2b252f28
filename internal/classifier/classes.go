package classifier

import (
	"github.com/vantines/obfmatch/internal/model"
	"github.com/vantines/obfmatch/internal/similarity"
)

func classObfuscated(c *model.Class) bool { return model.IsObfuscatedName(c.InternalName) }
func methodObfuscated(m *model.Method) bool { return model.IsObfuscatedName(m.Name) }
func fieldObfuscated(f *model.Field) bool { return model.IsObfuscatedName(f.Name) }

func classSet(m map[*model.Class]struct{}) []*model.Class {
	out := make([]*model.Class, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	return out
}

func methodSetKeys(m map[*model.Method]struct{}) []*model.Method {
	out := make([]*model.Method, 0, len(m))
	for x := range m {
		out = append(out, x)
	}
	return out
}

func fieldSetKeys(m map[*model.Field]struct{}) []*model.Field {
	out := make([]*model.Field, 0, len(m))
	for x := range m {
		out = append(out, x)
	}
	return out
}

func classDepth(c *model.Class) int {
	d := 0
	for p := c.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

func siblingCount(c *model.Class) int {
	if c.Parent == nil {
		return 0
	}
	n := len(c.Parent.Children)
	if _, ok := c.Parent.Children[c]; ok {
		n--
	}
	return n
}

// similarMethodScore is the lightweight per-pair metric the class-level
// "similar methods" classifier uses: return/argument-type compatibility
// plus, for methods with bodies, instruction-count similarity.
func similarMethodScore(a, b *model.Method) float64 {
	retScore := 0.0
	if similarity.PotentialEqualReturn(a.Return, b.Return) {
		retScore = 1.0
	}
	argScore := 0.0
	if similarity.PotentialEqualArgs(a.Args, b.Args) {
		argScore = 1.0
	}
	instrScore := 1.0
	if a.Real() && b.Real() {
		instrScore = similarity.CompareCounts(len(a.Instructions), len(b.Instructions))
	}
	return (retScore + argScore + instrScore) / 3.0
}

func similarMethods(a, b *model.Class) float64 {
	methodsA := a.SortedMethods()
	if len(methodsA) == 0 {
		return 1.0
	}
	methodsB := b.SortedMethods()
	sum := 0.0
	for _, ma := range methodsA {
		best := 0.0
		for _, mb := range methodsB {
			if !similarity.PotentialEqualMethod(ma, mb) {
				continue
			}
			if s := similarMethodScore(ma, mb); s > best {
				best = s
			}
		}
		sum += best
	}
	return sum / float64(len(methodsA))
}

func numericConstantSimilarity(a, b *model.Class) float64 {
	ints := similarity.CompareSets(setKeysInt32(a.Ints), setKeysInt32(b.Ints))
	longs := similarity.CompareSets(setKeysInt64(a.Longs), setKeysInt64(b.Longs))
	floats := similarity.CompareSets(setKeysFloat32(a.Floats), setKeysFloat32(b.Floats))
	doubles := similarity.CompareSets(setKeysFloat64(a.Doubles), setKeysFloat64(b.Doubles))
	return (ints + longs + floats + doubles) / 4.0
}

func setKeysInt32(m map[int32]struct{}) []int32 {
	out := make([]int32, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
func setKeysInt64(m map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
func setKeysFloat32(m map[float32]struct{}) []float32 {
	out := make([]float32, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
func setKeysFloat64(m map[float64]struct{}) []float64 {
	out := make([]float64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
func setKeysString(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// membersFull recursively runs the method registry on every non-static
// real method of a against b's methods, averaging the accepted scores.
// Unaccepted methods contribute zero so a class can't inflate its score
// by having few corroborated members.
func membersFull(level Level) ScoreFunc[*model.Class] {
	return func(a, b *model.Class) float64 {
		methodsA := a.SortedMethods()
		var eligible []*model.Method
		for _, m := range methodsA {
			if !m.IsStatic() && m.Real() {
				eligible = append(eligible, m)
			}
		}
		if len(eligible) == 0 {
			return 1.0
		}
		reg := MethodRegistry()
		maxScore := reg.MaxScore(level)
		candidates := b.SortedMethods()
		sum := 0.0
		for _, ma := range eligible {
			ranked := Rank(reg, level, ma, candidates, similarity.PotentialEqualMethod, reg.Thresholds().MaxMismatchFor(maxScore))
			if best, ok := FoundMatch(ranked, maxScore, reg.Thresholds().Absolute, reg.Thresholds().Relative); ok {
				sum += best.Score / maxScore
			}
		}
		return sum / float64(len(eligible))
	}
}

// ClassRegistry builds the class classifier registry.
func ClassRegistry() *Registry[*model.Class] {
	r := NewRegistry[*model.Class]()
	r.Register(Classifier[*model.Class]{
		Name: "access-flag-bits", Weight: 20, MinLevel: Initial,
		Score: func(a, b *model.Class) float64 { return model.BitSimilarity(a.Access, b.Access, model.ClassKindMask) },
	})
	r.Register(Classifier[*model.Class]{
		Name: "hierarchy-depth", Weight: 1, MinLevel: Initial,
		Score: func(a, b *model.Class) float64 { return similarity.CompareCounts(classDepth(a), classDepth(b)) },
	})
	r.Register(Classifier[*model.Class]{
		Name: "sibling-count", Weight: 2, MinLevel: Initial,
		Score: func(a, b *model.Class) float64 { return similarity.CompareCounts(siblingCount(a), siblingCount(b)) },
	})
	r.Register(Classifier[*model.Class]{
		Name: "parent-potential-equality", Weight: 4, MinLevel: Initial,
		Score: func(a, b *model.Class) float64 {
			if a.Parent == nil && b.Parent == nil {
				return 1.0
			}
			if a.Parent == nil || b.Parent == nil {
				return 0.0
			}
			if similarity.PotentialEqualClass(a.Parent, b.Parent) {
				return 1.0
			}
			return 0.0
		},
	})
	r.Register(Classifier[*model.Class]{
		Name: "children-set", Weight: 3, MinLevel: Initial,
		Score: func(a, b *model.Class) float64 {
			return similarity.CompareMatchableSets(classSet(a.Children), classSet(b.Children), classObfuscated, similarity.PotentialEqualClass)
		},
	})
	r.Register(Classifier[*model.Class]{
		Name: "interfaces-set", Weight: 3, MinLevel: Initial,
		Score: func(a, b *model.Class) float64 {
			return similarity.CompareMatchableSets(a.Interfaces, b.Interfaces, classObfuscated, similarity.PotentialEqualClass)
		},
	})
	r.Register(Classifier[*model.Class]{
		Name: "implementers-set", Weight: 2, MinLevel: Initial,
		Score: func(a, b *model.Class) float64 {
			return similarity.CompareMatchableSets(classSet(a.Implementers), classSet(b.Implementers), classObfuscated, similarity.PotentialEqualClass)
		},
	})
	r.Register(Classifier[*model.Class]{
		Name: "method-count", Weight: 3, MinLevel: Initial,
		Score: func(a, b *model.Class) float64 { return similarity.CompareCounts(len(a.Methods), len(b.Methods)) },
	})
	r.Register(Classifier[*model.Class]{
		Name: "field-count", Weight: 3, MinLevel: Initial,
		Score: func(a, b *model.Class) float64 { return similarity.CompareCounts(len(a.Fields), len(b.Fields)) },
	})
	r.Register(Classifier[*model.Class]{
		Name: "similar-methods", Weight: 10, MinLevel: Initial,
		Score: similarMethods,
	})
	r.Register(Classifier[*model.Class]{
		Name: "string-constant-set", Weight: 8, MinLevel: Initial,
		Score: func(a, b *model.Class) float64 { return similarity.CompareSets(setKeysString(a.Strings), setKeysString(b.Strings)) },
	})
	r.Register(Classifier[*model.Class]{
		Name: "numeric-constant-set", Weight: 6, MinLevel: Initial,
		Score: numericConstantSimilarity,
	})
	r.Register(Classifier[*model.Class]{
		Name: "out-class-refs", Weight: 6, MinLevel: Initial,
		Score: func(a, b *model.Class) float64 {
			return similarity.CompareMatchableSets(classSet(a.OutRefs), classSet(b.OutRefs), classObfuscated, similarity.PotentialEqualClass)
		},
	})
	r.Register(Classifier[*model.Class]{
		Name: "in-class-refs", Weight: 6, MinLevel: Initial,
		Score: func(a, b *model.Class) float64 {
			return similarity.CompareMatchableSets(classSet(a.InRefs), classSet(b.InRefs), classObfuscated, similarity.PotentialEqualClass)
		},
	})
	r.Register(Classifier[*model.Class]{
		Name: "method-out-refs", Weight: 5, MinLevel: Secondary,
		Score: func(a, b *model.Class) float64 {
			return similarity.CompareMatchableSets(classMethodCallOuts(a), classMethodCallOuts(b), methodObfuscated, similarity.PotentialEqualMethod)
		},
	})
	r.Register(Classifier[*model.Class]{
		Name: "method-in-refs", Weight: 5, MinLevel: Secondary,
		Score: func(a, b *model.Class) float64 {
			return similarity.CompareMatchableSets(classMethodCallIns(a), classMethodCallIns(b), methodObfuscated, similarity.PotentialEqualMethod)
		},
	})
	r.Register(Classifier[*model.Class]{
		Name: "field-read-refs", Weight: 6, MinLevel: Secondary,
		Score: func(a, b *model.Class) float64 {
			return similarity.CompareMatchableSets(classFieldReaders(a), classFieldReaders(b), methodObfuscated, similarity.PotentialEqualMethod)
		},
	})
	r.Register(Classifier[*model.Class]{
		Name: "field-write-refs", Weight: 6, MinLevel: Secondary,
		Score: func(a, b *model.Class) float64 {
			return similarity.CompareMatchableSets(classFieldWriters(a), classFieldWriters(b), methodObfuscated, similarity.PotentialEqualMethod)
		},
	})
	r.Register(Classifier[*model.Class]{
		Name: "members-full", Weight: 10, MinLevel: Tertiary,
		Score: membersFull(Tertiary),
	})
	return r
}

// classMethodCallOuts/classMethodCallIns/classFieldReaders/classFieldWriters
// aggregate the class's declared members' cross-reference edges — the
// class-level counterpart of the per-method/per-field classifiers of the
// same name.
func classMethodCallOuts(c *model.Class) []*model.Method {
	seen := map[*model.Method]struct{}{}
	for _, m := range c.Methods {
		for o := range m.CallOut {
			seen[o] = struct{}{}
		}
	}
	return methodSetKeys(seen)
}

func classMethodCallIns(c *model.Class) []*model.Method {
	seen := map[*model.Method]struct{}{}
	for _, m := range c.Methods {
		for o := range m.CallIn {
			seen[o] = struct{}{}
		}
	}
	return methodSetKeys(seen)
}

func classFieldReaders(c *model.Class) []*model.Method {
	seen := map[*model.Method]struct{}{}
	for _, f := range c.Fields {
		for m := range f.Reads {
			seen[m] = struct{}{}
		}
	}
	return methodSetKeys(seen)
}

func classFieldWriters(c *model.Class) []*model.Method {
	seen := map[*model.Method]struct{}{}
	for _, f := range c.Fields {
		for m := range f.Writes {
			seen[m] = struct{}{}
		}
	}
	return methodSetKeys(seen)
}
