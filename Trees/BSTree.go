package Trees

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// BSTree is an unbalanced binary search tree with no repeated values. Nodes live in an
// arena addressed by indexes of type S, and every node keeps the index of its parent, so
// iterators can step in both directions without a stack.
// T is the type of values it will hold, S is the type of the indexes. S must be wide
// enough to index every node the tree will ever hold at once; inserting beyond that panics.
// No balancing is done: the height D is O(n) in the worst case, e.g. when values are
// inserted in sorted order.
// BSTree shouldn't be created directly using struct literal, use New, NewC or the builders.
// A BSTree is not safe for concurrent use.
type BSTree[T any, S constraints.Unsigned] struct {
	base[T, S]
	//returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
	Cmp func(T, T) int
}

// New empty tree for ordered values. hint is the expected number of elements.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *BSTree[T, S] {
	return &BSTree[T, S]{makeBase[T, S](hint), cmp.Compare[T]}
}

// NewC is the equivalence of New for any T ordered by c.
func NewC[T any, S constraints.Unsigned](hint S, c func(T, T) int) *BSTree[T, S] {
	return &BSTree[T, S]{makeBase[T, S](hint), c}
}

// Of builds a tree by inserting vs in order. Repeated values are ignored, the first one wins.
func Of[T cmp.Ordered, S constraints.Unsigned](vs ...T) *BSTree[T, S] {
	return OfC[T, S](cmp.Compare[T], vs...)
}

// OfC is the equivalence of Of for any T ordered by c.
func OfC[T any, S constraints.Unsigned](c func(T, T) int, vs ...T) *BSTree[T, S] {
	u := NewC[T, S](S(len(vs)), c)
	for _, v := range vs {
		u.insert(v)
	}
	return u
}

// find the slot holding v, 0 if there's none.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) find(v T) S {
	for curI := u.root; curI != 0; {
		if order := u.Cmp(v, u.vs[curI-1]); order < 0 {
			curI = u.ifs[curI].l
		} else if order > 0 {
			curI = u.ifs[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// insert v unless an equal value exists. Returns the slot holding the value equal to v and
// whether it is new.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) insert(v T) (S, bool) {
	var parI S
	order := 0
	for curI := u.root; curI != 0; {
		parI = curI
		if order = u.Cmp(v, u.vs[curI-1]); order < 0 {
			curI = u.ifs[curI].l
		} else if order > 0 {
			curI = u.ifs[curI].r
		} else {
			return curI, false
		}
	}
	n := u.alloc(v, parI)
	if parI == 0 {
		u.root = n
		return n, true
	} else if order < 0 {
		u.ifs[parI].l = n
	} else {
		u.ifs[parI].r = n
	}
	for a := parI; a != 0; a = u.ifs[a].p {
		u.ifs[a].sz++
	}
	return n, true
}

// Insert v. Returns an Iterator at the element equal to v, which is v itself when the
// second return value is true, or the element already in the tree when it's false.
// Time: O(D)
func (u *BSTree[T, S]) Insert(v T) (Iterator[T, S], bool) {
	i, ok := u.insert(v)
	return Iterator[T, S]{u, i}, ok
}

// Emplace constructs a value with mk and inserts it. mk is always called, even if an equal
// value already exists, in which case the constructed value is dropped. Use EmplaceKey when
// constructing is expensive.
// Time: O(D)
func (u *BSTree[T, S]) Emplace(mk func() T) (Iterator[T, S], bool) {
	return u.Insert(mk())
}

// EmplaceKey inserts key only if no equal value exists, then calls init on the newly
// stored value to finish it. init mustn't change how the value compares. init isn't
// called when key already exists.
// Time: O(D)
func (u *BSTree[T, S]) EmplaceKey(key T, init func(*T)) (Iterator[T, S], bool) {
	i, ok := u.insert(key)
	if ok && init != nil {
		init(&u.vs[i-1])
	}
	return Iterator[T, S]{u, i}, ok
}

// Erase the element equal to key. Returns an Iterator at the element that followed key in
// in-order, or End() if key was the last element or isn't found.
// When the erased node has 2 children, the value of its successor is moved into it and the
// successor's node is removed instead; iterators pointing at the erased node then point at
// the successor's value, and the returned Iterator is that node.
// Time: O(D)
func (u *BSTree[T, S]) Erase(key T) Iterator[T, S] {
	return u.eraseAt(u.find(key))
}

// EraseAt erases the element at it, which must be an Iterator of u. Returns the same as Erase.
// Time: O(D)
func (u *BSTree[T, S]) EraseAt(it Iterator[T, S]) Iterator[T, S] {
	return u.eraseAt(it.i)
}

func (u *BSTree[T, S]) eraseAt(curI S) Iterator[T, S] {
	if curI == 0 {
		return u.End()
	}
	if cur := u.ifs[curI]; cur.l != 0 && cur.r != 0 {
		si := u.minOf(cur.r)
		u.vs[curI-1] = u.vs[si-1]
		u.splice(si)
		return Iterator[T, S]{u, curI}
	}
	nextI := u.next(curI)
	u.splice(curI)
	return Iterator[T, S]{u, nextI}
}

// Put [Sets.Set.Put]
func (u *BSTree[T, S]) Put(v T) bool {
	_, ok := u.insert(v)
	return ok
}

// Remove [Sets.Set.Remove]
func (u *BSTree[T, S]) Remove(v T) bool {
	if i := u.find(v); i != 0 {
		u.eraseAt(i)
		return true
	}
	return false
}

// Take removes the smallest element and returns it.
// Time: O(D)
func (u *BSTree[T, S]) Take() (T, bool) {
	i := u.minOf(u.root)
	if i == 0 {
		return *new(T), false
	}
	v := u.vs[i-1]
	u.eraseAt(i)
	return v, true
}

// Has element equal to v.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Has(v T) bool {
	return u.find(v) != 0
}

// Find the element equal to key. Returns End() if there's none.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Find(key T) Iterator[T, S] {
	return Iterator[T, S]{u, u.find(key)}
}

// Clone returns a tree with the same shape and values using its own storage.
// Values are copied by assignment.
// Time: O(n)
func (u *BSTree[T, S]) Clone() *BSTree[T, S] {
	return &BSTree[T, S]{base[T, S]{u.root, u.free, slices.Clone(u.ifs), slices.Clone(u.vs)}, u.Cmp}
}

// Move the content of u to a new tree and leave u empty.
// Time: O(1)
func (u *BSTree[T, S]) Move() *BSTree[T, S] {
	m := &BSTree[T, S]{u.base, u.Cmp}
	u.base = makeBase[T, S](0)
	return m
}

// Swap the contents of u and o, comparators included.
// Time: O(1)
func (u *BSTree[T, S]) Swap(o *BSTree[T, S]) {
	u.base, o.base = o.base, u.base
	u.Cmp, o.Cmp = o.Cmp, u.Cmp
}

func (u *BSTree[T, S]) val(i S) (T, bool) {
	if i == 0 {
		return *new(T), false
	}
	return u.vs[i-1], true
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Minimum() (T, bool) {
	return u.val(u.minOf(u.root))
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Maximum() (T, bool) {
	return u.val(u.maxOf(u.root))
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Predecessor(v T) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if u.Cmp(v, u.vs[curI-1]) <= 0 {
			curI = u.ifs[curI].l
		} else {
			p = curI
			curI = u.ifs[curI].r
		}
	}
	return u.val(p)
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Successor(v T) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if u.Cmp(v, u.vs[curI-1]) < 0 {
			p = curI
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return u.val(p)
}

// RankK [Tree.RankK]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) RankK(k uint) (T, bool) {
	for curI := u.root; curI != 0; {
		if lsz := uint(u.ifs[u.ifs[curI].l].sz); k < lsz {
			curI = u.ifs[curI].l
		} else if k > lsz {
			k -= lsz + 1
			curI = u.ifs[curI].r
		} else {
			return u.vs[curI-1], true
		}
	}
	return *new(T), false
}

// RankOf [Tree.RankOf]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) RankOf(v T) (uint, bool) {
	var ra uint
	for curI := u.root; curI != 0; {
		cur := u.ifs[curI]
		if order := u.Cmp(v, u.vs[curI-1]); order < 0 {
			curI = cur.l
		} else if order > 0 {
			ra += uint(u.ifs[cur.l].sz) + 1
			curI = cur.r
		} else {
			return ra + uint(u.ifs[cur.l].sz), true
		}
	}
	return ra, false
}
