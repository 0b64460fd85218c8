package Trees

// Node is a value with its two subtrees. A nil *Node is an empty subtree.
// Every Node is owned by exactly one parent, or by the tree as its root.
type Node[T any] struct {
	v    T
	l, r *Node[T]
}

func leaf[T any](v T) *Node[T] {
	return &Node[T]{v: v}
}

// Value held by n. n must not be nil.
func (n *Node[T]) Value() T {
	return n.v
}

// Left subtree of n, nil if n or the subtree is empty.
func (n *Node[T]) Left() *Node[T] {
	if n == nil {
		return nil
	}
	return n.l
}

// Right subtree of n, nil if n or the subtree is empty.
func (n *Node[T]) Right() *Node[T] {
	if n == nil {
		return nil
	}
	return n.r
}

// preOrder walks the subtree rooting at n with an explicit stack. The right
// child is pushed before the left one so that the left one is popped first.
// Returns false if f stopped the walk.
func (n *Node[T]) preOrder(f func(*T) bool) bool {
	if n == nil {
		return true
	}
	st := []*Node[T]{n}
	for len(st) > 0 {
		n, st = st[len(st)-1], st[:len(st)-1]
		if !f(&n.v) {
			return false
		}
		if n.r != nil {
			st = append(st, n.r)
		}
		if n.l != nil {
			st = append(st, n.l)
		}
	}
	return true
}

// count the nodes of the subtree rooting at n.
func (n *Node[T]) count() uint {
	var c uint
	n.preOrder(func(*T) bool {
		c++
		return true
	})
	return c
}
