package Trees

import (
	"bytes"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Tree[int] = (*BSTree[int])(nil)

var rg = rand.New(rand.NewSource(0))

const (
	tAddN        = 40000
	tAddValRange = 20000
)

// averageDepth of the leaves, root at depth 1.
func (u *BSTree[T]) averageDepth() float32 {
	type frame struct {
		n *Node[T]
		d uint
	}
	var leaves, sum uint
	if u.root == nil {
		return 0
	}
	for st := []frame{{u.root, 1}}; len(st) > 0; {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if f.n.l == nil && f.n.r == nil {
			leaves++
			sum += f.d
		}
		if f.n.l != nil {
			st = append(st, frame{f.n.l, f.d + 1})
		}
		if f.n.r != nil {
			st = append(st, frame{f.n.r, f.d + 1})
		}
	}
	return float32(sum) / float32(leaves)
}

func randomTree(t *testing.T, n, valRange int) (*BSTree[int], map[int]struct{}) {
	t.Helper()
	tree := Empty[int]()
	content := make(map[int]struct{})
	for range n {
		b := rg.Intn(valRange)
		_, in := content[b]
		require.Equal(t, !in, tree.Insert(b), "insert %v", b)
		content[b] = struct{}{}
	}
	return tree, content
}

func sortedKeys(content map[int]struct{}) []int {
	all := make([]int, 0, len(content))
	for k := range content {
		all = append(all, k)
	}
	slices.Sort(all)
	return all
}

func TestBSTree_Insert(t *testing.T) {
	tree, content := randomTree(t, tAddN, tAddValRange)
	assert.Equal(t, uint(len(content)), tree.Size())
	assert.Equal(t, uint(len(content)), tree.Len())
	assert.Equal(t, uint(len(content)), tree.ParLen())
	assert.False(t, tree.Corrupt())
	t.Logf("depth: %f, size: %d.\n", tree.averageDepth(), tree.Size())
	for k := range content {
		n := tree.Contains(k)
		if assert.NotNil(t, n, "tree does not have key %v", k) {
			assert.Equal(t, k, n.Value())
		}
	}
	for k := -100; k < 0; k++ {
		assert.Nil(t, tree.Contains(k))
		assert.False(t, tree.Has(k+tAddValRange*2))
	}
}

func TestBSTree_Duplicates(t *testing.T) {
	tree := From([]int{5, 3, 8})
	before := tree.String()
	assert.False(t, tree.Insert(3))
	assert.False(t, tree.Insert(5))
	assert.Equal(t, uint(0), tree.Extend([]int{8, 8, 3}))
	assert.Equal(t, uint(3), tree.Size())
	assert.Equal(t, uint(3), tree.Len())
	assert.Equal(t, before, tree.String())
	assert.Equal(t, uint(2), tree.Extend([]int{1, 8, 9}))
	assert.Equal(t, "[1 3 5 8 9]", tree.String())
}

func TestBSTree_Empty(t *testing.T) {
	tree := Empty[int]()
	assert.True(t, tree.IsEmpty())
	assert.Zero(t, tree.Len())
	assert.Zero(t, tree.ParLen())
	assert.Zero(t, tree.Size())
	assert.Nil(t, tree.Contains(0))
	assert.Equal(t, 7, Fold[int](tree, 7, func(acc int, v *int) int { return acc + *v }))
	_, ok := tree.Minimum()
	assert.False(t, ok)
	_, ok = tree.Maximum()
	assert.False(t, ok)
	_, ok = tree.Iter().Next()
	assert.False(t, ok)
	_, ok = tree.IntoIter().Next()
	assert.False(t, ok)
	_, ok = tree.IterMut().NextBack()
	assert.False(t, ok)
	assert.False(t, tree.Corrupt())
	assert.Equal(t, "[]", tree.String())

	one := New(42)
	assert.False(t, one.IsEmpty())
	assert.Equal(t, uint(1), one.Size())
	assert.Equal(t, uint(1), one.ParLen())
	assert.True(t, one.Has(42))
}

func TestBSTree_FoldSum(t *testing.T) {
	tree := New(1)
	for _, v := range []int{2, 3, 4, 5, 6, 7, 8, -18, -10, -1, -2} {
		tree.Insert(v)
	}
	assert.Equal(t, uint(12), tree.Len())
	assert.Equal(t, 5, Fold[int](tree, 0, func(acc int, v *int) int { return acc + *v }))
}

func TestBSTree_FoldPreOrder(t *testing.T) {
	tree := From([]int{4, 2, 6, 1, 3, 5, 7})
	got := Fold[int](tree, []int(nil), func(acc []int, v *int) []int { return append(acc, *v) })
	assert.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, got)
}

func TestBSTree_FoldTotal(t *testing.T) {
	tree, content := randomTree(t, 5000, 1<<20)
	want := 0
	for _, v := range sortedKeys(content) {
		want += v
	}
	assert.Equal(t, want, Fold[int](tree, 0, func(acc int, v *int) int { return acc + *v }))
	assert.Equal(t, len(content), Fold[int](tree, 0, func(acc int, _ *int) int { return acc + 1 }))
}

func TestBSTree_IntoIterRange(t *testing.T) {
	vs := make([]int, 10)
	for i := range vs {
		vs[i] = i
	}
	tree := From(vs)
	it := tree.IntoIter()
	assert.True(t, tree.IsEmpty())
	for _, want := range vs {
		got, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestBSTree_IntoIterRandom(t *testing.T) {
	tree, content := randomTree(t, tAddN, tAddValRange)
	var got []int
	it := tree.IntoIter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	assert.Equal(t, sortedKeys(content), got)
	assert.Zero(t, tree.Size())
	assert.Zero(t, tree.Len())
}

// detached nodes must not keep references to the rest of the tree.
func TestBSTree_IntoIterReleases(t *testing.T) {
	tree := From([]int{4, 2, 6, 1, 3, 5, 7})
	var nodes []*Node[int]
	for v := range 7 {
		nodes = append(nodes, tree.Contains(v+1))
	}
	it := tree.IntoIter()
	for range 7 {
		_, ok := it.Next()
		require.True(t, ok)
	}
	for _, n := range nodes {
		assert.Nil(t, n.Left())
		assert.Nil(t, n.Right())
		assert.Zero(t, n.Value())
	}
}

func TestBSTree_Iter(t *testing.T) {
	tree, content := randomTree(t, tAddN, tAddValRange)
	want := sortedKeys(content)
	for range 2 { //the tree is intact after a full pass.
		var got []int
		it := tree.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			got = append(got, v)
		}
		assert.Equal(t, want, got)
	}
	f := tree.InOrder()
	for _, w := range want {
		v, ok := f()
		require.True(t, ok)
		require.Equal(t, w, v)
	}
	_, ok := f()
	assert.False(t, ok)
}

func TestBSTree_IterMut(t *testing.T) {
	tree := From([]int{0, 1, 2, 3, 4, 5})
	it := tree.IterMut()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p++
	}
	sum := 0
	owned := tree.IntoIter()
	for v, ok := owned.Next(); ok; v, ok = owned.Next() {
		sum += v
	}
	assert.Equal(t, 21, sum)
}

func TestBSTree_IterMutEquivalence(t *testing.T) {
	tree, content := randomTree(t, 10000, 1<<20)
	want := sortedKeys(content)
	var visited []int
	it := tree.IterMut()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		visited = append(visited, *p)
		*p = *p*3 + 1
	}
	assert.Equal(t, want, visited)
	for i := range want {
		want[i] = want[i]*3 + 1
	}
	assert.Equal(t, want, slices.Collect(tree.All()))
	assert.False(t, tree.Corrupt())
}

func TestBSTree_IterMutBack(t *testing.T) {
	tree, content := randomTree(t, 10000, 1<<20)
	want := sortedKeys(content)
	slices.Reverse(want)
	var got []int
	it := tree.IterMut()
	for p, ok := it.NextBack(); ok; p, ok = it.NextBack() {
		got = append(got, *p)
	}
	assert.Equal(t, want, got)
}

// Next and NextBack on the same iterator meet in the middle without giving a
// value twice or skipping one.
func TestBSTree_IterMutMeet(t *testing.T) {
	for round := range 50 {
		tree, content := randomTree(t, rg.Intn(300), 500)
		var front, back []int
		seen := make(map[*int]struct{})
		it := tree.IterMut()
		for {
			var p *int
			var ok bool
			if rg.Intn(2) == 0 {
				if p, ok = it.Next(); ok {
					front = append(front, *p)
				}
			} else if p, ok = it.NextBack(); ok {
				back = append(back, *p)
			}
			if !ok {
				break
			}
			_, dup := seen[p]
			require.False(t, dup, "round %d: %d given twice", round, *p)
			seen[p] = struct{}{}
		}
		_, ok := it.Next()
		assert.False(t, ok)
		_, ok = it.NextBack()
		assert.False(t, ok)
		slices.Reverse(back)
		assert.Equal(t, sortedKeys(content), append(front, back...), "round %d", round)
	}
}

func TestBSTree_Equal(t *testing.T) {
	a := From([]int{2, 1, 3})
	b := From([]int{2, 3, 1})
	c := From([]int{1, 2, 3})
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(c))
	assert.Equal(t, slices.Collect(a.All()), slices.Collect(c.All()))
	assert.False(t, a.Equal(From([]int{2, 1, 4})))
	assert.False(t, a.Equal(From([]int{2, 1})))
	assert.True(t, Empty[int]().Equal(Empty[int]()))
	assert.False(t, Empty[int]().Equal(New(1)))
	assert.False(t, a.Equal(nil))
}

// sorted insertion gives a list; nothing may recurse on its height.
func TestBSTree_Degenerate(t *testing.T) {
	const n = 10000
	vs := make([]int, n)
	for i := range vs {
		vs[i] = n - i
	}
	tree := From(vs)
	assert.Equal(t, float32(n), tree.averageDepth())
	assert.Equal(t, uint(n), tree.Len())
	assert.Equal(t, uint(n), tree.ParLen())
	assert.Equal(t, n*(n+1)/2, Fold[int](tree, 0, func(acc int, v *int) int { return acc + *v }))
	assert.True(t, tree.Equal(From(vs)))
	assert.False(t, tree.Corrupt())
	got := slices.Collect(tree.Backward())
	assert.Equal(t, vs, got)
	slices.Reverse(vs)
	assert.Equal(t, vs, slices.Collect(tree.Drain()))
}

func TestBSTree_Corrupt(t *testing.T) {
	tree := From([]int{4, 2, 6, 1, 3, 5, 7})
	assert.False(t, tree.Corrupt())
	for p := range tree.Mutable() {
		if *p == 5 {
			*p = 10
		}
	}
	assert.True(t, tree.Corrupt())
}

func TestBSTree_Neighbors(t *testing.T) {
	tree := From([]int{50, 30, 70, 20, 40, 60, 80})
	v, ok := tree.Minimum()
	assert.True(t, ok)
	assert.Equal(t, 20, v)
	v, ok = tree.Maximum()
	assert.True(t, ok)
	assert.Equal(t, 80, v)
	v, ok = tree.Predecessor(50)
	assert.True(t, ok)
	assert.Equal(t, 40, v)
	v, ok = tree.Predecessor(45)
	assert.True(t, ok)
	assert.Equal(t, 40, v)
	_, ok = tree.Predecessor(20)
	assert.False(t, ok)
	v, ok = tree.Successor(50)
	assert.True(t, ok)
	assert.Equal(t, 60, v)
	v, ok = tree.Successor(0)
	assert.True(t, ok)
	assert.Equal(t, 20, v)
	_, ok = tree.Successor(80)
	assert.False(t, ok)
}

type person struct {
	name string
	age  int
}

func TestBSTree_Func(t *testing.T) {
	byAgeDesc := func(a, b person) int { return b.age - a.age }
	tree := FromFunc([]person{{"a", 30}, {"b", 20}, {"c", 40}}, byAgeDesc)
	assert.False(t, tree.Insert(person{"d", 30}))
	assert.True(t, tree.Has(person{age: 20}))
	assert.Equal(t, "a", tree.Contains(person{age: 30}).Value().name)
	var names []string
	for p := range tree.All() {
		names = append(names, p.name)
	}
	assert.Equal(t, []string{"c", "a", "b"}, names)
	assert.True(t, NewFunc(person{"x", 1}, byAgeDesc).Equal(NewFunc(person{"y", 1}, byAgeDesc)))
}

func TestBSTree_Dump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, From([]int{2, 1, 3, 4}).Dump(&buf))
	assert.Equal(t, "node 2 depth 0\nnode 1 depth 1\nnode 3 depth 1\nnode 4 depth 2\n", buf.String())
	buf.Reset()
	require.NoError(t, Empty[int]().Dump(&buf))
	assert.Empty(t, buf.String())
}

func TestNode_Links(t *testing.T) {
	tree := From([]int{2, 1, 3})
	root := tree.Contains(2)
	require.NotNil(t, root)
	assert.Equal(t, 1, root.Left().Value())
	assert.Equal(t, 3, root.Right().Value())
	assert.Nil(t, root.Left().Left())
	var empty *Node[int]
	assert.Nil(t, empty.Left())
	assert.Nil(t, empty.Right())
}
