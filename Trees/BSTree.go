package Trees

import (
	"cmp"

	"golang.org/x/sync/errgroup"
)

// BSTree is a binary search tree with no repeated values and no balancing.
// T is the type of values it will hold; the order of values is given by a
// comparison function returning a negative number, zero or a positive number
// for less, equal and greater. The function must be a strict total order,
// otherwise the shape of the tree and the results of lookups are undefined.
// BSTree shouldn't be created directly using struct literal, use one of Empty,
// New, From or their Func equivalents.
type BSTree[T any] struct {
	root *Node[T]
	cmp  func(T, T) int
	sz   uint //incremented only when a node is actually added.
}

// Empty returns an empty BSTree ordered by cmp.Compare.
func Empty[T cmp.Ordered]() *BSTree[T] {
	return EmptyFunc(cmp.Compare[T])
}

// New returns a BSTree holding v.
func New[T cmp.Ordered](v T) *BSTree[T] {
	return NewFunc(v, cmp.Compare[T])
}

// From builds a BSTree by inserting the values of vs one by one, in order.
// The tree isn't balanced: a sorted vs gives a tree of height len(vs).
func From[T cmp.Ordered](vs []T) *BSTree[T] {
	return FromFunc(vs, cmp.Compare[T])
}

// EmptyFunc is the equivalence of Empty with a custom order.
func EmptyFunc[T any](compare func(T, T) int) *BSTree[T] {
	return &BSTree[T]{cmp: compare}
}

// NewFunc is the equivalence of New with a custom order.
func NewFunc[T any](v T, compare func(T, T) int) *BSTree[T] {
	return &BSTree[T]{root: leaf(v), cmp: compare, sz: 1}
}

// FromFunc is the equivalence of From with a custom order.
func FromFunc[T any](vs []T, compare func(T, T) int) *BSTree[T] {
	u := EmptyFunc(compare)
	u.Extend(vs)
	return u
}

// Insert [Tree.Insert]. Walks down from the root to the empty link where v
// belongs and puts a new node there; this is the only place nodes are
// allocated.
// Time: O(D)
func (u *BSTree[T]) Insert(v T) bool {
	curPtr := &u.root
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if c := u.cmp(v, cur.v); c < 0 {
			curPtr = &cur.l
		} else if c > 0 {
			curPtr = &cur.r
		} else {
			return false
		}
	}
	*curPtr = leaf(v)
	u.sz++
	return true
}

// Extend inserts every value of vs in order. Returns the number of values
// actually added.
func (u *BSTree[T]) Extend(vs []T) (added uint) {
	for _, v := range vs {
		if u.Insert(v) {
			added++
		}
	}
	return
}

// Size [Tree.Size]
// Time: O(1)
func (u *BSTree[T]) Size() uint {
	return u.sz
}

// Len [Tree.Len]
// Time: O(n); Space: O(D)
func (u *BSTree[T]) Len() uint {
	return u.root.count()
}

// ParLen [Tree.ParLen]. The two subtrees are disjoint, so counting them in
// separate goroutines needs nothing more than waiting for both. The tree
// mustn't be modified until it returns.
func (u *BSTree[T]) ParLen() uint {
	if u.root == nil {
		return 0
	}
	var l, r uint
	var g errgroup.Group
	g.Go(func() error {
		l = u.root.l.count()
		return nil
	})
	g.Go(func() error {
		r = u.root.r.count()
		return nil
	})
	_ = g.Wait()
	return 1 + l + r
}

func (u *BSTree[T]) IsEmpty() bool {
	return u.root == nil
}

// Contains returns the node holding a value equal to v, nil if there isn't
// one. The returned node still belongs to u. Only the side of each node where
// v can be is searched.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Contains(v T) *Node[T] {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Has(v T) bool {
	return u.Contains(v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Minimum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Maximum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
}

// Predecessor returns the greatest element less than v.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Predecessor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor returns the smallest element greater than v.
// Time: O(D); Space: O(1)
func (u *BSTree[T]) Successor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// PreOrder [Tree.PreOrder]
func (u *BSTree[T]) PreOrder(f func(*T) bool) {
	u.root.preOrder(f)
}

// Corrupt [Tree.Corrupt]. The tree is a valid BST iff its in-order sequence
// is strictly increasing.
// Time: O(n)
func (u *BSTree[T]) Corrupt() bool {
	it := u.Iter()
	prev, ok := it.Next()
	if !ok {
		return false
	}
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if u.cmp(prev, v) >= 0 {
			return true
		}
		prev = v
	}
	return false
}

// Equal reports whether u and o have the same shape with equal values at
// every corresponding position. Trees holding the same values in different
// shapes aren't equal. Values are compared with the order of u.
func (u *BSTree[T]) Equal(o *BSTree[T]) bool {
	if u == o {
		return true
	}
	if u == nil || o == nil {
		return false
	}
	st := [][2]*Node[T]{{u.root, o.root}}
	for len(st) > 0 {
		p := st[len(st)-1]
		st = st[:len(st)-1]
		if p[0] == nil || p[1] == nil {
			if p[0] != p[1] {
				return false
			}
			continue
		}
		if u.cmp(p[0].v, p[1].v) != 0 {
			return false
		}
		st = append(st, [2]*Node[T]{p[0].r, p[1].r}, [2]*Node[T]{p[0].l, p[1].l})
	}
	return true
}
