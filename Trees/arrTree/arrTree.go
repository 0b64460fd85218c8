// Package arrTree keeps an unbalanced binary search tree in an arena: the
// values in one slice, the links as indexes of type S in another. A node is
// never freed, so the arena only grows, by exactly one slot per value added.
package arrTree

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// ArrTree is the arena version of Trees.BSTree. S should be a wide upper
// bound for the number of values; Insert panics with *CapacityError rather
// than wrap around.
type ArrTree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[S]
	vs []T //vs[i] corresponds to ifs[i+1].
}

// CapacityError is the panic value of an insertion that needs more nodes than
// S can index.
type CapacityError struct {
	Len int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("arrTree: %d nodes overflow the index type", e.Len)
}

// New empty tree with room for hint values before growing.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *ArrTree[T, S] {
	return &ArrTree[T, S]{base[S]{ifs: make([]info[S], 1, int(hint)+1)}, make([]T, 0, hint)}
}

// From builds a tree by inserting the values of vs one by one, in order.
func From[T cmp.Ordered, S constraints.Unsigned](vs []T) *ArrTree[T, S] {
	u := New[T](S(len(vs)))
	u.Extend(vs)
	return u
}

func (u *ArrTree[T, S]) getV(i S) *T {
	return &u.vs[i-1]
}

// Insert [Trees.Tree.Insert]. The new node is appended to the arena, so the
// link to it is set after the append, by index rather than by pointer.
// Time: O(D), amortized.
func (u *ArrTree[T, S]) Insert(v T) bool {
	var parent S
	var right bool
	for curI := u.root; curI != 0; {
		c := cmp.Compare(v, *u.getV(curI))
		if c == 0 {
			return false
		}
		parent, right = curI, c > 0
		if right {
			curI = u.ifs[curI].r
		} else {
			curI = u.ifs[curI].l
		}
	}
	i := S(len(u.ifs))
	if int(i) != len(u.ifs) || i == 0 {
		panic(&CapacityError{len(u.ifs)})
	}
	u.ifs = append(u.ifs, info[S]{})
	u.vs = append(u.vs, v)
	if parent == 0 {
		u.root = i
	} else if right {
		u.ifs[parent].r = i
	} else {
		u.ifs[parent].l = i
	}
	return true
}

// Extend inserts the values of vs in order and returns how many were added.
func (u *ArrTree[T, S]) Extend(vs []T) (added uint) {
	for _, v := range vs {
		if u.Insert(v) {
			added++
		}
	}
	return
}

// Contains returns a pointer to the value equal to v in the arena, nil if
// there's none. The pointer is invalidated by the next Insert.
func (u *ArrTree[T, S]) Contains(v T) *T {
	for curI := u.root; curI != 0; {
		if c := cmp.Compare(v, *u.getV(curI)); c < 0 {
			curI = u.ifs[curI].l
		} else if c > 0 {
			curI = u.ifs[curI].r
		} else {
			return u.getV(curI)
		}
	}
	return nil
}

// Has [Trees.Tree.Has]
func (u *ArrTree[T, S]) Has(v T) bool {
	return u.Contains(v) != nil
}

// Size [Trees.Tree.Size], the number of used arena slots.
// Time: O(1)
func (u *ArrTree[T, S]) Size() uint {
	return uint(len(u.vs))
}

// Len [Trees.Tree.Len]
// Time: O(n)
func (u *ArrTree[T, S]) Len() uint {
	return u.count(u.root)
}

// ParLen [Trees.Tree.ParLen]
func (u *ArrTree[T, S]) ParLen() uint {
	if u.root == 0 {
		return 0
	}
	var l, r uint
	var g errgroup.Group
	g.Go(func() error {
		l = u.count(u.ifs[u.root].l)
		return nil
	})
	g.Go(func() error {
		r = u.count(u.ifs[u.root].r)
		return nil
	})
	_ = g.Wait()
	return 1 + l + r
}

func (u *ArrTree[T, S]) IsEmpty() bool {
	return u.root == 0
}

// Minimum [Trees.Tree.Minimum]
func (u *ArrTree[T, S]) Minimum() (T, bool) {
	if curI := u.root; curI == 0 {
		return *new(T), false
	} else {
		for u.ifs[curI].l != 0 {
			curI = u.ifs[curI].l
		}
		return *u.getV(curI), true
	}
}

// Maximum [Trees.Tree.Maximum]
func (u *ArrTree[T, S]) Maximum() (T, bool) {
	if curI := u.root; curI == 0 {
		return *new(T), false
	} else {
		for u.ifs[curI].r != 0 {
			curI = u.ifs[curI].r
		}
		return *u.getV(curI), true
	}
}

// PreOrder [Trees.Tree.PreOrder]
func (u *ArrTree[T, S]) PreOrder(f func(*T) bool) {
	u.preOrder(u.root, func(i S) bool {
		return f(u.getV(i))
	})
}

// Walk calls f on the values in ascending order until f returns false. f may
// change the values as long as their relative order stays the same. When
// st==nil, Walk uses morris traversal and needs no extra memory, but the tree
// is temporarily modified, so it mustn't be read concurrently. Otherwise st
// is used as the stack and returned so that it can be reused.
func (u *ArrTree[T, S]) Walk(f func(*T) bool, st []S) []S {
	return u.inOrder(func(i S) bool {
		return f(u.getV(i))
	}, st)
}

// InOrder [Trees.Tree.InOrder]
func (u *ArrTree[T, S]) InOrder() func() (T, bool) {
	var st []S
	for curI := u.root; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	return func() (r T, has bool) {
		if len(st) == 0 {
			return
		}
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		for next := u.ifs[curI].r; next != 0; next = u.ifs[next].l {
			st = append(st, next)
		}
		return *u.getV(curI), true
	}
}

// Corrupt [Trees.Tree.Corrupt]
func (u *ArrTree[T, S]) Corrupt() bool {
	var prev *T
	corrupt := false
	u.inOrder(func(i S) bool {
		if v := u.getV(i); prev != nil && cmp.Compare(*prev, *v) >= 0 {
			corrupt = true
		} else {
			prev = v
		}
		return !corrupt
	}, make([]S, 0, 8))
	return corrupt
}

// Equal reports whether both trees have the same shape and equal values at
// every position. Arena positions don't matter.
func (u *ArrTree[T, S]) Equal(o *ArrTree[T, S]) bool {
	return u.sameShape(&o.base, func(i, j S) bool {
		return cmp.Compare(*u.getV(i), *o.getV(j)) == 0
	})
}

// Clear the tree, also resets memory of underlying value array if reset is
// true. O(1) if reset==false. O(size) if reset==true. Doesn't allocate new
// arrays.
func (u *ArrTree[T, S]) Clear(reset bool) {
	if reset {
		clear(u.vs)
	}
	u.vs, u.ifs, u.root = u.vs[:0], u.ifs[:1], 0
}
