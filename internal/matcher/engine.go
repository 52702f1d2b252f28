// Package matcher implements the matcher orchestration: the top-level
// entry point that drives the seed pass and the iterative
// Secondary/Tertiary/Extra refinement to fixpoint over two class groups.
//
// This is a narrower, pass-shaped concurrency model than a generic
// Job/JobResult dispatch queue: each pass is its own bounded fan-out over
// an independent task set, joined at a barrier before the next pass's
// reads, built on golang.org/x/sync/errgroup rather than a long-lived
// worker pool.
package matcher

import (
	"context"

	"github.com/vantines/obfmatch/internal/classifier"
	"github.com/vantines/obfmatch/internal/compare"
	"github.com/vantines/obfmatch/internal/model"
	"go.uber.org/zap"
)

// Engine runs one matching session between two class groups.
type Engine struct {
	cfg Config
	log *zap.Logger

	groupA, groupB *model.Group
	cmp            *compare.Comparator
}

// New builds an engine from cfg, filling in defaults for a zero Config.
func New(cfg Config) *Engine {
	if cfg.Thresholds == (classifier.Thresholds{}) {
		cfg.Thresholds = classifier.DefaultThresholds
	}
	return &Engine{cfg: cfg, log: cfg.logger()}
}

// Run executes the full orchestration against groupA (the obfuscated
// target) and groupB (the previously-named reference), and returns the
// resulting match statistics.
func (e *Engine) Run(ctx context.Context, groupA, groupB *model.Group) (*Result, error) {
	e.groupA = groupA
	e.groupB = groupB
	e.cmp = compare.New(groupA, groupB)

	e.seedSynthetic()
	e.seedNames()

	added, err := e.matchClasses(ctx, classifier.Initial)
	if err != nil {
		return nil, err
	}
	if added > 0 {
		if _, err := e.matchClasses(ctx, classifier.Initial); err != nil {
			return nil, err
		}
	}

	for _, level := range []classifier.Level{classifier.Secondary, classifier.Tertiary, classifier.Extra} {
		if err := e.refine(ctx, level); err != nil {
			return nil, err
		}
	}

	r := buildResult(e.groupA)
	e.log.Info("match run complete",
		zap.Int("classes_matched", r.Classes.Matched), zap.Int("classes_total", r.Classes.Total),
		zap.Int("methods_matched", r.Methods.Matched), zap.Int("methods_total", r.Methods.Total),
		zap.Int("fields_matched", r.Fields.Matched), zap.Int("fields_total", r.Fields.Total),
	)
	return r, nil
}

// refine runs the per-level loop to fixpoint: the four member passes,
// then matchClasses(level), repeating until one full iteration of the
// five passes adds no new matches.
func (e *Engine) refine(ctx context.Context, level classifier.Level) error {
	for {
		nm1, err := e.matchMethods(ctx, level, true)
		if err != nil {
			return err
		}
		nf1, err := e.matchFields(ctx, level, true)
		if err != nil {
			return err
		}
		nm2, err := e.matchMethods(ctx, level, false)
		if err != nil {
			return err
		}
		nf2, err := e.matchFields(ctx, level, false)
		if err != nil {
			return err
		}
		nc, err := e.matchClasses(ctx, level)
		if err != nil {
			return err
		}
		if nm1+nf1+nm2+nf2+nc == 0 {
			return nil
		}
	}
}
