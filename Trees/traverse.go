package Trees

import (
	"iter"

	"github.com/g-m-twostay/go-bst/Queues"
)

// Order of a push style traversal.
type Order byte

const (
	// OrderIn visits left subtree, node, right subtree; values come out ascending.
	OrderIn Order = iota
	// OrderPre visits node, left subtree, right subtree.
	OrderPre
	// OrderPost visits left subtree, right subtree, node.
	OrderPost
)

func (o Order) String() string {
	switch o {
	case OrderIn:
		return "in-order"
	case OrderPre:
		return "pre-order"
	case OrderPost:
		return "post-order"
	}
	return "unknown order"
}

// Traverse the whole tree in order o, calling f once on every value.
// All traversals are iterative, so degenerate trees can't overflow the call stack.
// Time: O(n); Space: O(D)
func (u *BSTree[T, S]) Traverse(o Order, f func(T)) {
	u.BufferedTraverse(o, f, nil)
}

// BufferedTraverse is Traverse using st as the stack. The stack is returned for reuse.
func (u *BSTree[T, S]) BufferedTraverse(o Order, f func(T), st []S) []S {
	switch o {
	case OrderPre:
		return u.preOrder(f, st[:0])
	case OrderPost:
		return u.postOrder(f, st[:0])
	default:
		return u.inOrder(f, st[:0])
	}
}

// InOrder traversal, ascending.
func (u *BSTree[T, S]) InOrder(f func(T)) {
	u.inOrder(f, nil)
}

// PreOrder traversal.
func (u *BSTree[T, S]) PreOrder(f func(T)) {
	u.preOrder(f, nil)
}

// PostOrder traversal.
func (u *BSTree[T, S]) PostOrder(f func(T)) {
	u.postOrder(f, nil)
}

func (u *BSTree[T, S]) inOrder(f func(T), st []S) []S {
	for curI := u.root; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		f(u.vs[curI-1])
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
	return st
}

func (u *BSTree[T, S]) preOrder(f func(T), st []S) []S {
	if u.root != 0 {
		st = append(st, u.root)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		f(u.vs[curI-1])
		if r := u.ifs[curI].r; r != 0 {
			st = append(st, r)
		}
		if l := u.ifs[curI].l; l != 0 {
			st = append(st, l)
		}
	}
	return st
}

func (u *BSTree[T, S]) postOrder(f func(T), st []S) []S {
	var last S // last visited
	for curI := u.root; curI != 0 || len(st) > 0; {
		if curI != 0 {
			st = append(st, curI)
			curI = u.ifs[curI].l
			continue
		}
		top := st[len(st)-1]
		if r := u.ifs[top].r; r != 0 && r != last {
			curI = r
			continue
		}
		f(u.vs[top-1])
		last = top
		st = st[:len(st)-1]
	}
	return st
}

// LevelOrder calls f on every value, level by level from the root, left to right.
// Time: O(n); Space: O(width)
func (u *BSTree[T, S]) LevelOrder(f func(T)) {
	u.levels(func(i S, _ uint) {
		f(u.vs[i-1])
	})
}

// levels calls f on every slot with its depth in breadth first order. The root has depth 0.
func (u *BSTree[T, S]) levels(f func(i S, depth uint)) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[S](16)
	q.Push(u.root)
	for depth := uint(0); !q.Empty(); depth++ {
		for n := q.Size(); n > 0; n-- {
			curI, _ := q.Pop()
			f(curI, depth)
			if l := u.ifs[curI].l; l != 0 {
				q.Push(l)
			}
			if r := u.ifs[curI].r; r != 0 {
				q.Push(r)
			}
		}
	}
}

// depthStats of the leaves. All 0 when the tree is empty.
func (u *BSTree[T, S]) depthStats() (minD, maxD uint, avg float32) {
	var leaves, sum uint
	minD = ^uint(0)
	u.levels(func(i S, d uint) {
		if cur := u.ifs[i]; cur.l == 0 && cur.r == 0 {
			leaves++
			sum += d
			minD = min(minD, d)
			maxD = max(maxD, d)
		}
	})
	if leaves == 0 {
		return 0, 0, 0
	}
	return minD, maxD, float32(sum) / float32(leaves)
}

// MinDepth of a leaf, the root being at depth 0.
// Time: O(n)
func (u *BSTree[T, S]) MinDepth() uint {
	a, _, _ := u.depthStats()
	return a
}

// MaxDepth of a leaf, which is the height of the tree minus 1. For a tree built from sorted
// input it's Size()-1.
// Time: O(n)
func (u *BSTree[T, S]) MaxDepth() uint {
	_, b, _ := u.depthStats()
	return b
}

// AverageDepth of the leaves.
// Time: O(n)
func (u *BSTree[T, S]) AverageDepth() float32 {
	_, _, c := u.depthStats()
	return c
}

// Range [Sets.Set.Range] in ascending order.
// Time: O(k) for k values visited; Space: O(1)
func (u *BSTree[T, S]) Range(f func(T) bool) {
	for i := u.minOf(u.root); i != 0 && f(u.vs[i-1]); i = u.next(i) {
	}
}

// All values in ascending order.
func (u *BSTree[T, S]) All() iter.Seq[T] {
	return u.Range
}

// Backward yields all values in descending order.
func (u *BSTree[T, S]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := u.maxOf(u.root); i != 0 && yield(u.vs[i-1]); i = u.prev(i) {
		}
	}
}

// Values in ascending order.
func (u *BSTree[T, S]) Values() []T {
	vs := make([]T, 0, u.Size())
	u.inOrder(func(v T) {
		vs = append(vs, v)
	}, nil)
	return vs
}
