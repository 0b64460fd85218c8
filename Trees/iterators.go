package Trees

import "github.com/g-m-twostay/go-bst/Queues"

// OwnedIter gives the values of a tree it took apart, in ascending order.
type OwnedIter[T any] struct {
	pending []detached[T] //nodes whose left subtree is being drained, innermost last.
}

// detached is what is left of a node once taken out of the tree: its value
// and its right subtree, which is visited after the value.
type detached[T any] struct {
	v T
	r *Node[T]
}

// IntoIter consumes u: the nodes are moved into the returned iterator and u
// becomes empty. Every node is unlinked as soon as its value is taken so that
// nothing keeps the yielded part of the tree alive.
func (u *BSTree[T]) IntoIter() *OwnedIter[T] {
	it := &OwnedIter[T]{}
	root := u.root
	u.root, u.sz = nil, 0
	it.addLeft(root)
	return it
}

// addLeft detaches n and then its left descendants, down to the minimum.
func (it *OwnedIter[T]) addLeft(n *Node[T]) {
	for n != nil {
		l := n.l
		it.pending = append(it.pending, detached[T]{n.v, n.r})
		*n = Node[T]{}
		n = l
	}
}

// Next returns the smallest value not given yet. ok is false once all values
// were given, and stays false.
func (it *OwnedIter[T]) Next() (v T, ok bool) {
	if len(it.pending) == 0 {
		return
	}
	d := it.pending[len(it.pending)-1]
	it.pending[len(it.pending)-1] = detached[T]{}
	it.pending = it.pending[:len(it.pending)-1]
	it.addLeft(d.r)
	return d.v, true
}

// Iter gives the values of a tree in ascending order, leaving it intact. Any
// number of Iter can run over the same tree as long as it isn't modified.
type Iter[T any] struct {
	st []*Node[T]
}

// Iter returns a borrowing iterator over u.
func (u *BSTree[T]) Iter() *Iter[T] {
	it := &Iter[T]{}
	it.pushLeft(u.root)
	return it
}

func (it *Iter[T]) pushLeft(n *Node[T]) {
	for ; n != nil; n = n.l {
		it.st = append(it.st, n)
	}
}

// Next returns the smallest value not given yet; ok is false when there's no
// more values.
func (it *Iter[T]) Next() (v T, ok bool) {
	if len(it.st) == 0 {
		return
	}
	n := it.st[len(it.st)-1]
	it.st = it.st[:len(it.st)-1]
	it.pushLeft(n.r)
	return n.v, true
}

// InOrder [Tree.InOrder]
func (u *BSTree[T]) InOrder() func() (T, bool) {
	return u.Iter().Next
}

// the three parts of a node, in ascending order.
const (
	leftPart byte = iota
	selfPart
	rightPart
	numParts
)

// cursor hands out the parts of one node, each exactly once, from either
// end. The parts in [front, back) are still to be handed out.
type cursor[T any] struct {
	n           *Node[T]
	front, back byte
}

func newCursor[T any](n *Node[T]) *cursor[T] {
	return &cursor[T]{n, leftPart, numParts}
}

// MutIter gives a pointer to every value of a tree exactly once, in
// ascending order from the front and descending order from the back. A value
// is only reached through the cursor of its own node, and a subtree only
// through the cursor created for it, so no two pointers given out lead into
// the same part of the tree.
type MutIter[T any] struct {
	q Queues.Deque[*cursor[T]] //cursors in ascending order of the parts they still hold.
}

// IterMut returns an iterator giving pointers to the values of u. The values
// may be changed through the pointers as long as their relative order stays
// the same, otherwise u becomes corrupt. u mustn't be modified in other ways
// during the iteration.
func (u *BSTree[T]) IterMut() *MutIter[T] {
	it := &MutIter[T]{Queues.MakeDeque[*cursor[T]](8)}
	if u.root != nil {
		it.q.Push(newCursor(u.root))
	}
	return it
}

// Next returns the smallest value not given yet from either end.
func (it *MutIter[T]) Next() (*T, bool) {
	for !it.q.Empty() {
		c := it.q.Peek()
		part := c.front
		if c.front++; c.front >= c.back {
			it.q.Pop()
		}
		switch part {
		case leftPart:
			if c.n.l != nil {
				it.q.PushFront(newCursor(c.n.l))
			}
		case selfPart:
			return &c.n.v, true
		case rightPart:
			if c.n.r != nil {
				it.q.PushFront(newCursor(c.n.r))
			}
		}
	}
	return nil, false
}

// NextBack returns the greatest value not given yet from either end.
func (it *MutIter[T]) NextBack() (*T, bool) {
	for !it.q.Empty() {
		c := it.q.PeekBack()
		c.back--
		part := c.back
		if c.front >= c.back {
			it.q.PopBack()
		}
		switch part {
		case rightPart:
			if c.n.r != nil {
				it.q.Push(newCursor(c.n.r))
			}
		case selfPart:
			return &c.n.v, true
		case leftPart:
			if c.n.l != nil {
				it.q.Push(newCursor(c.n.l))
			}
		}
	}
	return nil, false
}
