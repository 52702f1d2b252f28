package classifier

// Thresholds holds the acceptance tunables for FoundMatch. Rather than fix
// a single "true" value, callers get these as configuration, defaulting to
// the strictest pair: (0.25, 0.025). At looser settings (lower Absolute,
// lower Relative) the engine accepts lower-confidence top candidates and
// smaller margins over the runner-up, trading precision for recall;
// callers tuning for a heavily-obfuscated target may want to loosen these,
// at the cost of more false matches surviving into the committed set.
type Thresholds struct {
	Absolute float64
	Relative float64
}

// DefaultThresholds is the strict default configuration.
var DefaultThresholds = Thresholds{Absolute: 0.25, Relative: 0.025}

// MaxMismatchFor returns the prune threshold for a registry's maxScore at
// these thresholds.
func (t Thresholds) MaxMismatchFor(maxScore float64) float64 {
	return MaxMismatch(maxScore, t.Absolute, t.Relative)
}
