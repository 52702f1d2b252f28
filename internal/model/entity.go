package model

// Entity is the common capability Class/Method/Field share. It is
// self-bounded so generic code over it (internal/similarity's matchable-set
// comparator, via MatchableEntity) can be written once and instantiated for
// *Class, *Method, and *Field.
type Entity[T any] interface {
	DisplayName() string
	MatchOf() T
	SetMatch(T)
}

// MatchableEntity adds comparable (identity equality) on top of Entity, the
// combination internal/similarity's set comparators need: they must both
// read/write match pointers and test membership by identity.
type MatchableEntity[T any] interface {
	comparable
	Entity[T]
}

// assertMatchable only exists to be instantiated below: MatchableEntity
// embeds comparable, so it can only appear as a type constraint.
func assertMatchable[T MatchableEntity[T]]() {}

var (
	_ Entity[*Class]  = (*Class)(nil)
	_ Entity[*Method] = (*Method)(nil)
	_ Entity[*Field]  = (*Field)(nil)

	_ = assertMatchable[*Class]
	_ = assertMatchable[*Method]
	_ = assertMatchable[*Field]
)
