package Trees

import (
	"cmp"
	"iter"
)

// FromSeq is From for a sequence of values.
func FromSeq[T cmp.Ordered](seq iter.Seq[T]) *BSTree[T] {
	u := Empty[T]()
	u.ExtendSeq(seq)
	return u
}

// ExtendSeq is Extend for a sequence of values.
func (u *BSTree[T]) ExtendSeq(seq iter.Seq[T]) (added uint) {
	for v := range seq {
		if u.Insert(v) {
			added++
		}
	}
	return
}

// All values of u in ascending order, see Iter.
func (u *BSTree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := u.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward gives all values of u in descending order.
func (u *BSTree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := u.IterMut()
		for p, ok := it.NextBack(); ok; p, ok = it.NextBack() {
			if !yield(*p) {
				return
			}
		}
	}
}

// Mutable gives a pointer to each value of u in ascending order, see IterMut.
func (u *BSTree[T]) Mutable() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := u.IterMut()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// Drain consumes u and gives its values in ascending order, see IntoIter. u
// is emptied when the sequence starts; values not pulled are dropped.
func (u *BSTree[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := u.IntoIter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
