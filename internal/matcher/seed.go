package matcher

import "github.com/vantines/obfmatch/internal/model"

// seedSynthetic self-matches every synthetic class. Synthetic stand-ins are typically the same
// *Class pointer shared by both groups (model.Group's doc comment), so
// matching such a class to itself via SetMatch also closes the loop for
// whichever group's slot didn't trigger first.
func (e *Engine) seedSynthetic() {
	for _, c := range e.groupA.Classes() {
		if !c.Real && c.Match == nil {
			c.SetMatch(c)
		}
	}
	for _, c := range e.groupB.Classes() {
		if !c.Real && c.Match == nil {
			c.SetMatch(c)
		}
	}
}

// seedNames is the seed pass: every non-obfuscated real class in A with a
// same-named real class in B is matched outright, with the usual
// transitive member side effects.
func (e *Engine) seedNames() {
	for _, a := range e.groupA.RealClasses() {
		if a.Match != nil || model.IsObfuscatedName(a.InternalName) {
			continue
		}
		b, ok := e.groupB.Lookup(a.InternalName)
		if !ok || !b.Real || b.Match != nil {
			continue
		}
		e.commitClass(a, b)
	}
}
