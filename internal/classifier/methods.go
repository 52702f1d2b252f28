package classifier

import (
	"github.com/vantines/obfmatch/internal/bytecode"
	"github.com/vantines/obfmatch/internal/model"
	"github.com/vantines/obfmatch/internal/similarity"
)

func classTypeSet(c map[*model.Class]struct{}) []*model.Class { return classSet(c) }

// MethodRegistry builds the method classifier registry. All method
// classifiers participate from Initial — unlike the class registry, none
// of these are gated behind a higher minimum level.
func MethodRegistry() *Registry[*model.Method] {
	r := NewRegistry[*model.Method]()
	r.Register(Classifier[*model.Method]{
		Name: "method-type-bits", Weight: 10, MinLevel: Initial,
		Score: func(a, b *model.Method) float64 { return model.BitSimilarity(a.Access, b.Access, model.MethodKindMask) },
	})
	r.Register(Classifier[*model.Method]{
		Name: "access-bits", Weight: 4, MinLevel: Initial,
		Score: func(a, b *model.Method) float64 { return model.BitSimilarity(a.Access, b.Access, model.MethodAccessMask) },
	})
	r.Register(Classifier[*model.Method]{
		Name: "argument-type-set", Weight: 10, MinLevel: Initial,
		Score: func(a, b *model.Method) float64 {
			return similarity.CompareMatchableSets(a.Args, b.Args, classObfuscated, similarity.PotentialEqualClass)
		},
	})
	r.Register(Classifier[*model.Method]{
		Name: "return-type", Weight: 5, MinLevel: Initial,
		Score: func(a, b *model.Method) float64 {
			if similarity.PotentialEqualReturn(a.Return, b.Return) {
				return 1.0
			}
			return 0.0
		},
	})
	r.Register(Classifier[*model.Method]{
		Name: "class-refs", Weight: 3, MinLevel: Initial,
		Score: func(a, b *model.Method) float64 {
			return similarity.CompareMatchableSets(classTypeSet(a.ClassRefs), classTypeSet(b.ClassRefs), classObfuscated, similarity.PotentialEqualClass)
		},
	})
	r.Register(Classifier[*model.Method]{
		Name: "string-constants", Weight: 5, MinLevel: Initial,
		Score: func(a, b *model.Method) float64 {
			return similarity.CompareSets(methodStringConstants(a), methodStringConstants(b))
		},
	})
	r.Register(Classifier[*model.Method]{
		Name: "numeric-constants", Weight: 5, MinLevel: Initial,
		Score: methodNumericConstantSimilarity,
	})
	r.Register(Classifier[*model.Method]{
		Name: "override-set", Weight: 10, MinLevel: Initial,
		Score: func(a, b *model.Method) float64 {
			return similarity.CompareMatchableSets(methodSetKeys(a.Overrides), methodSetKeys(b.Overrides), methodObfuscated, similarity.PotentialEqualMethod)
		},
	})
	r.Register(Classifier[*model.Method]{
		Name: "call-in-refs", Weight: 6, MinLevel: Initial,
		Score: func(a, b *model.Method) float64 {
			return similarity.CompareMatchableSets(methodSetKeys(a.CallIn), methodSetKeys(b.CallIn), methodObfuscated, similarity.PotentialEqualMethod)
		},
	})
	r.Register(Classifier[*model.Method]{
		Name: "call-out-refs", Weight: 6, MinLevel: Initial,
		Score: func(a, b *model.Method) float64 {
			return similarity.CompareMatchableSets(methodSetKeys(a.CallOut), methodSetKeys(b.CallOut), methodObfuscated, similarity.PotentialEqualMethod)
		},
	})
	r.Register(Classifier[*model.Method]{
		Name: "field-read-refs", Weight: 5, MinLevel: Initial,
		Score: func(a, b *model.Method) float64 {
			return similarity.CompareMatchableSets(fieldSetKeys(a.FieldReads), fieldSetKeys(b.FieldReads), fieldObfuscated, similarity.PotentialEqualField)
		},
	})
	r.Register(Classifier[*model.Method]{
		Name: "field-write-refs", Weight: 5, MinLevel: Initial,
		Score: func(a, b *model.Method) float64 {
			return similarity.CompareMatchableSets(fieldSetKeys(a.FieldWrites), fieldSetKeys(b.FieldWrites), fieldObfuscated, similarity.PotentialEqualField)
		},
	})
	return r
}

// methodStringConstants/methodNumericConstants scan a method's own LDC
// instructions (plus, for numeric constants, its int-push operands) for
// its constant footprint, distinct from (and finer
// grained than) the class-level constant sets on Class — string/numeric
// constants are scored at both the class and the method level, so each
// needs its own extraction.
func methodStringConstants(m *model.Method) []string {
	var out []string
	for _, in := range m.Instructions {
		if in.Op == bytecode.OpLdc && in.ConstKind == bytecode.ConstString {
			if s, ok := in.Constant.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

func methodNumericConstants(m *model.Method) (ints []int32, longs []int64, floats []float32, doubles []float64) {
	for _, in := range m.Instructions {
		if in.Op == bytecode.OpIntPush {
			ints = append(ints, int32(in.IntOperand))
			continue
		}
		if in.Op != bytecode.OpLdc {
			continue
		}
		switch in.ConstKind {
		case bytecode.ConstInt:
			if v, ok := in.Constant.(int32); ok {
				ints = append(ints, v)
			}
		case bytecode.ConstLong:
			if v, ok := in.Constant.(int64); ok {
				longs = append(longs, v)
			}
		case bytecode.ConstFloat:
			if v, ok := in.Constant.(float32); ok {
				floats = append(floats, v)
			}
		case bytecode.ConstDouble:
			if v, ok := in.Constant.(float64); ok {
				doubles = append(doubles, v)
			}
		}
	}
	return
}

func methodNumericConstantSimilarity(a, b *model.Method) float64 {
	aInts, aLongs, aFloats, aDoubles := methodNumericConstants(a)
	bInts, bLongs, bFloats, bDoubles := methodNumericConstants(b)
	return (similarity.CompareSets(aInts, bInts) +
		similarity.CompareSets(aLongs, bLongs) +
		similarity.CompareSets(aFloats, bFloats) +
		similarity.CompareSets(aDoubles, bDoubles)) / 4.0
}
