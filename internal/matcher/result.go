package matcher

import "github.com/vantines/obfmatch/internal/model"

// Stat is a matched/total pair for one symbol kind.
type Stat struct {
	Matched int
	Total   int
}

// Result is the final statistics report for one engine run.
type Result struct {
	Classes Stat
	Methods Stat
	Fields  Stat
}

func buildResult(a *model.Group) *Result {
	var r Result
	for _, c := range a.RealClasses() {
		r.Classes.Total++
		if c.Match != nil {
			r.Classes.Matched++
		}
		for _, m := range c.Methods {
			r.Methods.Total++
			if m.Match != nil {
				r.Methods.Matched++
			}
		}
		for _, f := range c.Fields {
			r.Fields.Total++
			if f.Match != nil {
				r.Fields.Matched++
			}
		}
	}
	return &r
}
