package slicekit_test

import (
	"testing"

	"go.llib.dev/dsa/pkg/slicekit"
	"go.llib.dev/testcase/assert"
)

func TestMerge(t *testing.T) {
	assert.Empty(t, slicekit.Merge[int]())
	assert.Empty(t, slicekit.Merge[int](nil, []int{}))
	assert.Equal(t, []int{1, 2, 3, 4}, slicekit.Merge([]int{1}, nil, []int{2, 3}, []int{4}))

	og := []int{1, 2}
	got := slicekit.Merge(og, []int{3})
	got[0] = 42
	assert.Equal(t, []int{1, 2}, og, "input slices are not mutated")
}

func TestFirst(t *testing.T) {
	_, ok := slicekit.First[string](nil)
	assert.False(t, ok)

	v, ok := slicekit.First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestLast(t *testing.T) {
	_, ok := slicekit.Last([]string{})
	assert.False(t, ok)

	v, ok := slicekit.Last([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestIterReverse(t *testing.T) {
	var (
		indexes []int
		values  []string
	)
	for i, v := range slicekit.IterReverse([]string{"a", "b", "c"}) {
		indexes = append(indexes, i)
		values = append(values, v)
	}
	assert.Equal(t, []int{2, 1, 0}, indexes)
	assert.Equal(t, []string{"c", "b", "a"}, values)

	t.Run("break", func(t *testing.T) {
		var n int
		for range slicekit.IterReverse([]int{1, 2, 3}) {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})
}
