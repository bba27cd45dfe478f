package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b", "c"}, "b"))
	assert.False(t, Contains([]string{"a", "b", "c"}, "d"))
	assert.False(t, Contains(nil, "a"))
}

func TestSample(t *testing.T) {
	src := []int{1, 2, 3, 4, 5}

	// n >= len returns a copy of the whole slice
	out := Sample(src, 10, func(max int) int { return 0 })
	assert.Equal(t, src, out)
	out[0] = 99
	assert.Equal(t, 1, src[0])

	// always picking index 0 walks the slice in order
	out = Sample(src, 3, func(max int) int { return 0 })
	assert.Equal(t, []int{1, 2, 3}, out)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, src)

	// no duplicates even when pick always returns the last index
	out = Sample(src, 3, func(max int) int { return max - 1 })
	assert.ElementsMatch(t, []int{5, 4, 3}, out)
}

func TestSet(t *testing.T) {
	s := NewSet("a", "b")

	assert.True(t, s.Exists("a"))
	assert.False(t, s.Exists("c"))
	assert.Equal(t, 2, s.Length())

	assert.True(t, s.Add("c"))
	assert.False(t, s.Add("c"))
	assert.Equal(t, 3, s.Length())

	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"))
	assert.ElementsMatch(t, []string{"b", "c"}, s.Values())
}

func TestRPSearchRoleName(t *testing.T) {
	assert.Equal(t, "RP: Any", RPSearchRoleName("Any"))
	assert.Equal(t, "RP: GameMaster", RPSearchRoleName("GameMaster"))
}
