package Trees

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// FromPreIn rebuilds the tree whose pre-order traversal is pre and in-order traversal is in.
// Both empty gives an empty tree. An error wrapping ErrInvalidInput is returned if the
// lengths differ, in isn't strictly ascending, or pre isn't the pre-order of a tree over in.
// Time: O(n); Space: O(n)
func FromPreIn[T cmp.Ordered, S constraints.Unsigned](pre, in []T) (*BSTree[T, S], error) {
	return FromPreInC[T, S](pre, in, cmp.Compare[T])
}

// FromPreInC is the equivalence of FromPreIn for T ordered by c. Values are matched between
// the 2 traversals with ==, which must agree with c.
func FromPreInC[T comparable, S constraints.Unsigned](pre, in []T, c func(T, T) int) (*BSTree[T, S], error) {
	u, err := rebuild[T, S](pre, in, c, false)
	if err != nil {
		tracer().Debugf("rebuild from pre-order and in-order: %v", err)
	}
	return u, err
}

// FromInPost rebuilds the tree whose in-order traversal is in and post-order traversal is post.
// Errors are the same as FromPreIn.
// Time: O(n); Space: O(n)
func FromInPost[T cmp.Ordered, S constraints.Unsigned](in, post []T) (*BSTree[T, S], error) {
	return FromInPostC[T, S](in, post, cmp.Compare[T])
}

// FromInPostC is the equivalence of FromInPost for T ordered by c.
func FromInPostC[T comparable, S constraints.Unsigned](in, post []T, c func(T, T) int) (*BSTree[T, S], error) {
	u, err := rebuild[T, S](post, in, c, true)
	if err != nil {
		tracer().Debugf("rebuild from in-order and post-order: %v", err)
	}
	return u, err
}

// a pending subtree: the in-order range [lo,hi] hanging under parent p.
type frame[S constraints.Unsigned] struct {
	lo, hi int
	p      S
	right  bool
}

// rebuild from seq and in-order in. seq is pre-order and consumed from the front when post is
// false, and post-order consumed from the back otherwise.
// Each taken value splits its in-order range into the ranges of its 2 subtrees. Frames are
// kept on an explicit stack; the subtree consumed next from seq is pushed last.
func rebuild[T comparable, S constraints.Unsigned](seq, in []T, c func(T, T) int, post bool) (*BSTree[T, S], error) {
	n := len(in)
	if len(seq) != n {
		return nil, fmt.Errorf("%w: lengths differ (%d != %d)", ErrInvalidInput, len(seq), n)
	}
	if uint64(n) > uint64(^S(0)) {
		return nil, fmt.Errorf("%w: %d values don't fit the index type", ErrInvalidInput, n)
	}
	index := make(map[T]int, n)
	for i, v := range in {
		if i > 0 && c(in[i-1], v) >= 0 {
			return nil, fmt.Errorf("%w: in-order isn't strictly ascending at %d", ErrInvalidInput, i)
		}
		index[v] = i
	}
	u := NewC[T, S](S(n), c)
	if n == 0 {
		return u, nil
	}
	cur, step := 0, 1
	if post {
		cur, step = n-1, -1
	}
	st := []frame[S]{{0, n - 1, 0, false}}
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		v := seq[cur]
		cur += step
		j, ok := index[v]
		if !ok {
			return nil, fmt.Errorf("%w: %v isn't in the in-order", ErrInvalidInput, v)
		} else if j < f.lo || j > f.hi {
			return nil, fmt.Errorf("%w: %v is out of place", ErrInvalidInput, v)
		}
		i := u.alloc(v, f.p)
		u.ifs[i].sz = S(f.hi - f.lo + 1)
		if f.p == 0 {
			u.root = i
		} else if f.right {
			u.ifs[f.p].r = i
		} else {
			u.ifs[f.p].l = i
		}
		first, second := frame[S]{f.lo, j - 1, i, false}, frame[S]{j + 1, f.hi, i, true}
		if post {
			first, second = second, first
		}
		if second.lo <= second.hi {
			st = append(st, second)
		}
		if first.lo <= first.hi {
			st = append(st, first)
		}
	}
	return u, nil
}
