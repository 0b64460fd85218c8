package Trees

import (
	"fmt"
	"io"
	"slices"
)

// Dump writes every node with its depth to w, in pre-order. The root has
// depth 0.
func (u *BSTree[T]) Dump(w io.Writer) error {
	type frame struct {
		n *Node[T]
		d uint
	}
	if u.root == nil {
		return nil
	}
	st := []frame{{u.root, 0}}
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		if _, err := fmt.Fprintf(w, "node %v depth %d\n", f.n.v, f.d); err != nil {
			return err
		}
		if f.n.r != nil {
			st = append(st, frame{f.n.r, f.d + 1})
		}
		if f.n.l != nil {
			st = append(st, frame{f.n.l, f.d + 1})
		}
	}
	return nil
}

// String of the values in ascending order.
func (u *BSTree[T]) String() string {
	return fmt.Sprint(slices.Collect(u.All()))
}
