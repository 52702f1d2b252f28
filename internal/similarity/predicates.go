package similarity

import "github.com/vantines/obfmatch/internal/model"

// namesMatch applies the obfuscation-name rule: if either name is
// obfuscated it carries no anchoring signal and any name is compatible; if
// both are non-obfuscated they must be equal.
func namesMatch(a, b string) bool {
	if model.IsObfuscatedName(a) || model.IsObfuscatedName(b) {
		return true
	}
	return a == b
}

// PotentialEqualClass is the class potential-equality predicate: equal, or
// one already matches the other, or both share the same real/synthetic
// status and their names are compatible.
func PotentialEqualClass(a, b *model.Class) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if a.Match == b || b.Match == a {
		return true
	}
	if a.Real != b.Real {
		return false
	}
	return namesMatch(a.InternalName, b.InternalName)
}

// PotentialEqualMethod additionally requires, when both methods are
// non-static, that their owners be potentially equal.
func PotentialEqualMethod(a, b *model.Method) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if a.Match == b || b.Match == a {
		return true
	}
	if !namesMatch(a.Name, b.Name) {
		return false
	}
	if !a.IsStatic() && !b.IsStatic() {
		if !PotentialEqualClass(a.Owner, b.Owner) {
			return false
		}
	}
	return true
}

// PotentialEqualField follows the same rule as methods.
func PotentialEqualField(a, b *model.Field) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if a.Match == b || b.Match == a {
		return true
	}
	if !namesMatch(a.Name, b.Name) {
		return false
	}
	if !a.IsStatic() && !b.IsStatic() {
		if !PotentialEqualClass(a.Owner, b.Owner) {
			return false
		}
	}
	return true
}

// PotentialEqualReturn compares two return types, treating nil (void) as
// equal only to nil.
func PotentialEqualReturn(a, b *model.Class) bool {
	if a == nil || b == nil {
		return a == b
	}
	return PotentialEqualClass(a, b)
}

// PotentialEqualArgs compares two argument-type lists elementwise.
func PotentialEqualArgs(a, b []*model.Class) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !PotentialEqualClass(a[i], b[i]) {
			return false
		}
	}
	return true
}
