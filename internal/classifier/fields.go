package classifier

import (
	"github.com/vantines/obfmatch/internal/model"
	"github.com/vantines/obfmatch/internal/similarity"
)

// FieldRegistry builds the field classifier registry.
func FieldRegistry() *Registry[*model.Field] {
	r := NewRegistry[*model.Field]()
	r.Register(Classifier[*model.Field]{
		Name: "static-bit", Weight: 10, MinLevel: Initial,
		Score: func(a, b *model.Field) float64 { return model.BitSimilarity(a.Access, b.Access, model.FlagStatic) },
	})
	r.Register(Classifier[*model.Field]{
		Name: "access-bits", Weight: 4, MinLevel: Initial,
		Score: func(a, b *model.Field) float64 { return model.BitSimilarity(a.Access, b.Access, model.FieldAccessMask) },
	})
	r.Register(Classifier[*model.Field]{
		Name: "type-potential-equality", Weight: 10, MinLevel: Initial,
		Score: func(a, b *model.Field) float64 {
			if similarity.PotentialEqualClass(a.Type, b.Type) {
				return 1.0
			}
			return 0.0
		},
	})
	r.Register(Classifier[*model.Field]{
		Name: "read-ref-set", Weight: 6, MinLevel: Initial,
		Score: func(a, b *model.Field) float64 {
			return similarity.CompareMatchableSets(methodSetKeys(a.Reads), methodSetKeys(b.Reads), methodObfuscated, similarity.PotentialEqualMethod)
		},
	})
	r.Register(Classifier[*model.Field]{
		Name: "write-ref-set", Weight: 6, MinLevel: Initial,
		Score: func(a, b *model.Field) float64 {
			return similarity.CompareMatchableSets(methodSetKeys(a.Writes), methodSetKeys(b.Writes), methodObfuscated, similarity.PotentialEqualMethod)
		},
	})
	r.Register(Classifier[*model.Field]{
		Name: "initializer-equality", Weight: 7, MinLevel: Initial,
		Score: func(a, b *model.Field) float64 {
			if a.Initializer == nil && b.Initializer == nil {
				return 1.0
			}
			if a.Initializer == nil || b.Initializer == nil {
				return 0.0
			}
			if a.Initializer == b.Initializer {
				return 1.0
			}
			return 0.0
		},
	})
	r.Register(Classifier[*model.Field]{
		Name: "override-set", Weight: 10, MinLevel: Initial,
		Score: func(a, b *model.Field) float64 {
			return similarity.CompareMatchableSets(fieldSetKeys(a.Overrides), fieldSetKeys(b.Overrides), fieldObfuscated, similarity.PotentialEqualField)
		},
	})
	return r
}
