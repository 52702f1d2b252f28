package matcher

import (
	"runtime"

	"github.com/vantines/obfmatch/internal/classifier"
	"github.com/vantines/obfmatch/internal/walker"
	"go.uber.org/zap"
)

// Config tunes one orchestration run. DefaultConfig returns the defaults;
// New also accepts a zero Config, substituting the default thresholds and a
// no-op logger for unset fields.
type Config struct {
	Thresholds classifier.Thresholds
	Walker     walker.Config

	// Workers bounds the pass-level worker pool. Zero means "compute from
	// runtime.GOMAXPROCS at Run time".
	Workers int

	Logger *zap.Logger
}

// DefaultConfig returns the strict-threshold, inlining-disabled,
// GOMAXPROCS-sized default configuration.
func DefaultConfig() Config {
	return Config{
		Thresholds: classifier.DefaultThresholds,
		Walker:     walker.Config{EnableStaticInlining: false},
		Logger:     zap.NewNop(),
	}
}

func (c Config) workerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	n := runtime.GOMAXPROCS(0) - 1
	if n < 1 {
		n = 1
	}
	return n
}

func (c Config) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}
