package Trees

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBSTree_Seq(t *testing.T) {
	tree := FromSeq(slices.Values([]int{5, 2, 8, 2, 1, 9, 5}))
	assert.Equal(t, uint(5), tree.Size())
	assert.Equal(t, []int{1, 2, 5, 8, 9}, slices.Collect(tree.All()))
	assert.Equal(t, []int{9, 8, 5, 2, 1}, slices.Collect(tree.Backward()))
	assert.Equal(t, uint(2), tree.ExtendSeq(slices.Values([]int{0, 1, 10})))

	for p := range tree.Mutable() {
		*p *= 2
	}
	assert.Equal(t, []int{0, 2, 4, 10, 16, 18, 20}, slices.Collect(tree.All()))

	var firstThree []int
	for v := range tree.Drain() {
		if len(firstThree) == 3 {
			break
		}
		firstThree = append(firstThree, v)
	}
	assert.Equal(t, []int{0, 2, 4}, firstThree)
	assert.True(t, tree.IsEmpty())
	assert.Empty(t, slices.Collect(tree.All()))
}

func TestBSTree_SeqEarlyExit(t *testing.T) {
	tree := From([]int{3, 1, 2, 5, 4})
	for v := range tree.All() {
		if v == 3 {
			break
		}
	}
	for v := range tree.Backward() {
		if v == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(tree.All()))
}
