package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareCounts(t *testing.T) {
	assert.Equal(t, 1.0, CompareCounts(3, 3))
	assert.Equal(t, 1.0, CompareCounts(0, 0))
	assert.InDelta(t, 0.8, CompareCounts(4, 5), 1e-9)
	assert.InDelta(t, 0.0, CompareCounts(0, 5), 1e-9)
}

func TestCompareSets(t *testing.T) {
	assert.Equal(t, 1.0, CompareSets([]string{"a", "b"}, []string{"b", "a"}))
	assert.Equal(t, 1.0, CompareSets([]int{}, []int{}))
	assert.InDelta(t, 2.0/3.0, CompareSets([]string{"a", "b", "c"}, []string{"a", "b"}), 1e-9)
}

func TestCompareListsIdentical(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	assert.Equal(t, 1.0, CompareLists([]int{1, 2, 3}, []int{1, 2, 3}, eq))
}

func TestCompareListsEditDistance(t *testing.T) {
	eq := func(a, b rune) bool { return a == b }
	// "kitten" -> "sitting" has edit distance 3.
	got := CompareLists([]rune("kitten"), []rune("sitting"), eq)
	assert.InDelta(t, 1.0-3.0/7.0, got, 1e-9)
}

func TestCompareListsEmpty(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	assert.Equal(t, 1.0, CompareLists([]int{}, []int{}, eq))
}
