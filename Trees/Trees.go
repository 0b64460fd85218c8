// Package Trees holds an unbalanced binary search tree over ordered values.
//
// BSTree links its nodes with pointers; the arrTree sub package keeps the same
// structure in an arena indexed by unsigned integers. Neither rebalances, so
// sorted insertion degenerates the tree into a list. All traversals keep their
// state in an explicit stack or queue, never on the call stack, so deep trees
// are fine.
//
// The trees aren't synchronized. Any number of readers may share a tree when
// nobody is modifying it.
package Trees

// Tree is the behavior shared by the tree representations. Receivers that has
// a bool as a second return value indicates whether the first return value is
// defined. For example, calling Minimum on an empty tree gives (x T, false),
// in which case x shouldn't be used.
type Tree[T any] interface {
	//Insert v to the Tree. Returns true if a node is added, false if an
	//equal value is already present, in which case v is dropped.
	Insert(v T) bool
	//Has element v.
	Has(v T) bool
	//Size of the tree, maintained on insertion.
	Size() uint
	//Len counts the nodes of the tree by traversing it. Always equals Size.
	Len() uint
	//ParLen is Len with both subtrees of the root counted concurrently.
	ParLen() uint
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//InOrder returns a closure function f acting like an iterator. f
	//gives the values in ascending order.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//PreOrder calls f on every value, parents before children and left
	//before right, until f returns false. f must not change the order of
	//the value it's given.
	PreOrder(f func(*T) bool)
	//Corrupt returns whether the order invariant is broken somewhere, which
	//can only happen if the ordering of T isn't a strict total order or
	//values were modified through a pointer.
	Corrupt() bool
}

// Fold reduces all the values of t into init using f. The values are given
// in pre-order, not in sorted order; each one is visited exactly once.
func Fold[T, B any](t Tree[T], init B, f func(B, *T) B) B {
	acc := init
	t.PreOrder(func(v *T) bool {
		acc = f(acc, v)
		return true
	})
	return acc
}
