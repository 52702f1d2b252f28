package classifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vantines/obfmatch/internal/classifier"
)

func TestClassRegistryMaxScorePerLevel(t *testing.T) {
	reg := classifier.ClassRegistry()

	assert.Equal(t, 77.0, reg.MaxScore(classifier.Initial))
	assert.Equal(t, 99.0, reg.MaxScore(classifier.Secondary))
	assert.Equal(t, 109.0, reg.MaxScore(classifier.Tertiary))
	assert.Equal(t, 109.0, reg.MaxScore(classifier.Extra))
}

func TestMethodRegistryMaxScoreIsFlatAcrossLevels(t *testing.T) {
	reg := classifier.MethodRegistry()

	for _, level := range []classifier.Level{classifier.Initial, classifier.Secondary, classifier.Tertiary, classifier.Extra} {
		assert.Equal(t, 74.0, reg.MaxScore(level))
	}
}

func TestFieldRegistryMaxScoreIsFlatAcrossLevels(t *testing.T) {
	reg := classifier.FieldRegistry()

	for _, level := range []classifier.Level{classifier.Initial, classifier.Secondary, classifier.Tertiary, classifier.Extra} {
		assert.Equal(t, 53.0, reg.MaxScore(level))
	}
}

func TestRegistryWithThresholdsOverridesDefault(t *testing.T) {
	reg := classifier.NewRegistry[int]()
	assert.Equal(t, classifier.DefaultThresholds, reg.Thresholds())

	custom := classifier.Thresholds{Absolute: 0.5, Relative: 0.1}
	reg.WithThresholds(custom)
	assert.Equal(t, custom, reg.Thresholds())
}

func TestLevelStringNames(t *testing.T) {
	assert.Equal(t, "initial", classifier.Initial.String())
	assert.Equal(t, "secondary", classifier.Secondary.String())
	assert.Equal(t, "tertiary", classifier.Tertiary.String())
	assert.Equal(t, "extra", classifier.Extra.String())
}
