package matcher

import (
	"github.com/vantines/obfmatch/internal/model"
	"go.uber.org/zap"
)

// commitClass applies a class match and its side effects: any
// non-obfuscated-named member with a same-named+desc counterpart in the
// matched class is transitively matched too.
func (e *Engine) commitClass(src, dst *model.Class) {
	if src.Match != nil || dst.Match != nil {
		return
	}
	src.SetMatch(dst)
	e.log.Debug("class matched", zap.String("src", src.InternalName), zap.String("dst", dst.InternalName))

	for _, m := range src.SortedMethods() {
		if m.Match != nil || model.IsObfuscatedName(m.Name) {
			continue
		}
		if cm, ok := dst.Methods[model.MemberKey(m.Name, m.Desc)]; ok && cm.Match == nil {
			e.commitMethod(m, cm, true)
		}
	}
	for _, f := range src.SortedFields() {
		if f.Match != nil || model.IsObfuscatedName(f.Name) {
			continue
		}
		if cf, ok := dst.Fields[model.MemberKey(f.Name, f.Desc)]; ok && cf.Match == nil {
			e.commitField(f, cf)
		}
	}
}

// commitMethod applies a method match. When matchHierarchy is true it also
// walks the override set to match hierarchy counterparts, recursing with
// matchHierarchy=false to avoid walking back down the same override edges.
func (e *Engine) commitMethod(src, dst *model.Method, matchHierarchy bool) {
	if src.Match != nil || dst.Match != nil {
		return
	}
	src.SetMatch(dst)
	if !matchHierarchy {
		return
	}
	for ov := range src.Overrides {
		if ov.Match != nil {
			continue
		}
		for bov := range dst.Overrides {
			if bov.Match != nil {
				continue
			}
			if ov.Name == bov.Name && ov.Desc == bov.Desc {
				e.commitMethod(ov, bov, false)
				break
			}
		}
	}
}

// commitField applies a field match. Fields carry an override set, but
// hierarchy propagation on commit only applies to methods, so a field
// match does not recurse.
func (e *Engine) commitField(src, dst *model.Field) {
	if src.Match != nil || dst.Match != nil {
		return
	}
	src.SetMatch(dst)
}
