package Trees

import (
	"golang.org/x/exp/constraints"
)

// A slot in the arena. l, r, p are the indexes of the left child, right child and
// parent; 0 means none. sz is the size of the subtree rooted here.
// The zero value is the nil sentinel.
type info[S constraints.Unsigned] struct {
	l, r, p, sz S
}

// base is the arena of a tree. ifs[0] is the nil sentinel and is never written, so
// ifs[0].sz==0 and following any link from it stays at 0. vs[i-1] is the value held by ifs[i].
type base[T any, S constraints.Unsigned] struct {
	root, free S // free is the beginning of the linked list that contains all the released indexes; info[S]::l represents next.
	ifs        []info[S]
	vs         []T
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	return base[T, S]{ifs: make([]info[S], 1, int(hint)+1), vs: make([]T, 0, hint)}
}

// addFree index once. The value held is zeroed so it doesn't keep memory alive.
func (u *base[T, S]) addFree(a S) {
	u.vs[a-1] = *new(T)
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a slot holding v whose parent is p. Released slots are filled first before
// appending to the underlying arrays. Panics if S can't index the new slot.
func (u *base[T, S]) alloc(v T, p S) S {
	if a := u.popFree(); a != 0 {
		u.ifs[a] = info[S]{p: p, sz: 1}
		u.vs[a-1] = v
		return a
	}
	a := S(len(u.ifs))
	if int(a) != len(u.ifs) {
		panic("Trees: index type is too narrow for the tree size")
	}
	u.ifs = append(u.ifs, info[S]{p: p, sz: 1})
	u.vs = append(u.vs, v)
	return a
}

// link returns the link owning slot i: the root field, or l or r of its parent.
func (u *base[T, S]) link(i S) *S {
	p := u.ifs[i].p
	if p == 0 {
		return &u.root
	} else if u.ifs[p].l == i {
		return &u.ifs[p].l
	}
	return &u.ifs[p].r
}

// minOf the subtree rooted at i. 0 if i is 0.
// Time: O(D); Space: O(1)
func (u *base[T, S]) minOf(i S) S {
	for i != 0 && u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

// maxOf the subtree rooted at i. 0 if i is 0.
// Time: O(D); Space: O(1)
func (u *base[T, S]) maxOf(i S) S {
	for i != 0 && u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// next slot of i in in-order, 0 if i is the last one. next(0)==0.
// Time: amortized O(1), O(D) worst; Space: O(1)
func (u *base[T, S]) next(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.minOf(r)
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].r == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// prev slot of i in in-order, 0 if i is the first one. prev(0)==0.
// Time: amortized O(1), O(D) worst; Space: O(1)
func (u *base[T, S]) prev(i S) S {
	if l := u.ifs[i].l; l != 0 {
		return u.maxOf(l)
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].l == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// splice out slot i, which has at most one child, promoting that child to i's place.
// Sizes of i's ancestors are decreased and i is released.
func (u *base[T, S]) splice(i S) {
	n := u.ifs[i]
	c := n.l
	if c == 0 {
		c = n.r
	}
	if c != 0 {
		u.ifs[c].p = n.p
	}
	*u.link(i) = c
	for a := n.p; a != 0; a = u.ifs[a].p {
		u.ifs[a].sz--
	}
	u.addFree(i)
}

// Clear the tree. Values are zeroed, the underlying arrays keep their capacity.
// Time: O(size)
func (u *base[T, S]) Clear() {
	clear(u.vs)
	u.vs = u.vs[:0]
	u.ifs = u.ifs[:1]
	u.root, u.free = 0, 0
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *base[T, S]) Size() uint {
	return uint(u.ifs[u.root].sz)
}

// Empty reports whether Size()==0.
func (u *base[T, S]) Empty() bool {
	return u.root == 0
}
