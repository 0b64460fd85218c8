package arrTree

import (
	"golang.org/x/exp/constraints"
)

// The links of a node in the arena. The zero value is a leaf.
type info[S constraints.Unsigned] struct {
	l, r S
}

// base is the shape of the tree: ifs[0] is the empty link, which is never
// written, and ifs[i] holds the links of the i-th node.
type base[S constraints.Unsigned] struct {
	root S
	ifs  []info[S]
}

// preOrder from curI with an explicit stack. Returns false if f stopped it.
func (u *base[S]) preOrder(curI S, f func(S) bool) bool {
	if curI == 0 {
		return true
	}
	st := []S{curI}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(curI) {
			return false
		}
		if cur := u.ifs[curI]; cur.r != 0 {
			st = append(st, cur.r)
		}
		if cur := u.ifs[curI]; cur.l != 0 {
			st = append(st, cur.l)
		}
	}
	return true
}

func (u *base[S]) count(curI S) uint {
	var c uint
	u.preOrder(curI, func(S) bool {
		c++
		return true
	})
	return c
}

// inOrder traversal of the tree. When st==nil, uses morris traversal, which
// threads the right links of predecessors while walking and restores them
// before returning; otherwise, use normal stack based iterative traversal and
// return st for reuse.
func (u *base[S]) inOrder(f func(S) bool, st []S) []S {
	if curI := u.root; st == nil { //use morris traversal
	iter1:
		for curI != 0 {
			if u.ifs[curI].l == 0 {
				i := curI
				curI = u.ifs[curI].r
				if !f(i) {
					break
				}
			} else {
				for next := &u.ifs[u.ifs[curI].l]; ; next = &u.ifs[next.r] {
					if next.r == 0 {
						next.r = curI
						curI = u.ifs[curI].l
						break
					} else if next.r == curI {
						next.r = 0
						i := curI
						curI = u.ifs[curI].r
						if !f(i) {
							break iter1
						}
						break
					}
				}
			}
		}
		for curI != 0 { //deplete the remaining traversal to remove the threads.
			if u.ifs[curI].l == 0 {
				curI = u.ifs[curI].r
			} else {
				for next := &u.ifs[u.ifs[curI].l]; ; next = &u.ifs[next.r] {
					if next.r == 0 {
						next.r = curI
						curI = u.ifs[curI].l
						break
					} else if next.r == curI {
						next.r = 0
						curI = u.ifs[curI].r
						break
					}
				}
			}
		}
	} else { //use normal traversal
		for st = st[:0]; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
		for len(st) > 0 {
			curI, st = st[len(st)-1], st[:len(st)-1]
			if !f(curI) {
				break
			}
			for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
				st = append(st, curI)
			}
		}
	}
	return st
}

// sameShape walks both trees together and calls eq on each pair of
// corresponding nodes.
func (u *base[S]) sameShape(o *base[S], eq func(i, j S) bool) bool {
	st := [][2]S{{u.root, o.root}}
	for len(st) > 0 {
		p := st[len(st)-1]
		st = st[:len(st)-1]
		if p[0] == 0 || p[1] == 0 {
			if p[0] != p[1] {
				return false
			}
			continue
		}
		if !eq(p[0], p[1]) {
			return false
		}
		a, b := u.ifs[p[0]], o.ifs[p[1]]
		st = append(st, [2]S{a.r, b.r}, [2]S{a.l, b.l})
	}
	return true
}
