package Trees

import (
	"golang.org/x/exp/constraints"
)

// Iterator is a position in a BSTree: either an element or the end, which is one past the
// last element. Iterators are values; stepping returns a new Iterator and two Iterators
// are at the same position iff they are ==.
// Inserting or erasing may invalidate Iterators, except the one returned by Erase.
type Iterator[T any, S constraints.Unsigned] struct {
	u *BSTree[T, S]
	i S
}

// ConstIterator is the read only form of Iterator. There's no way to convert it back.
type ConstIterator[T any, S constraints.Unsigned] struct {
	u *BSTree[T, S]
	i S
}

// Begin is at the smallest element, or End() if the tree is empty.
// Time: O(D)
func (u *BSTree[T, S]) Begin() Iterator[T, S] {
	return Iterator[T, S]{u, u.minOf(u.root)}
}

// End is one past the last element. It can't be dereferenced.
func (u *BSTree[T, S]) End() Iterator[T, S] {
	return Iterator[T, S]{u, 0}
}

// CBegin is the ConstIterator form of Begin.
func (u *BSTree[T, S]) CBegin() ConstIterator[T, S] {
	return u.Begin().Const()
}

// CEnd is the ConstIterator form of End.
func (u *BSTree[T, S]) CEnd() ConstIterator[T, S] {
	return ConstIterator[T, S]{u, 0}
}

// Next element in order. Next of the last element is End(), and End() stays End().
// Time: amortized O(1), O(D) worst
func (it Iterator[T, S]) Next() Iterator[T, S] {
	it.i = it.u.next(it.i)
	return it
}

// Prev element in order. Prev of End() is the largest element; Prev of the smallest is End().
// Time: amortized O(1), O(D) worst
func (it Iterator[T, S]) Prev() Iterator[T, S] {
	it.i = it.u.stepBack(it.i)
	return it
}

// Valid reports whether it is at an element, i.e. it isn't End().
func (it Iterator[T, S]) Valid() bool {
	return it.i != 0
}

// Ptr to the element. The element may be modified as long as its order stays the same.
// Panics on End().
func (it Iterator[T, S]) Ptr() *T {
	return &it.u.vs[int(it.i)-1]
}

// Value of the element. Panics on End().
func (it Iterator[T, S]) Value() T {
	return *it.Ptr()
}

// Const converts it to a ConstIterator at the same position.
func (it Iterator[T, S]) Const() ConstIterator[T, S] {
	return ConstIterator[T, S]{it.u, it.i}
}

// Next [Iterator.Next]
func (it ConstIterator[T, S]) Next() ConstIterator[T, S] {
	it.i = it.u.next(it.i)
	return it
}

// Prev [Iterator.Prev]
func (it ConstIterator[T, S]) Prev() ConstIterator[T, S] {
	it.i = it.u.stepBack(it.i)
	return it
}

// Valid [Iterator.Valid]
func (it ConstIterator[T, S]) Valid() bool {
	return it.i != 0
}

// Value [Iterator.Value]
func (it ConstIterator[T, S]) Value() T {
	return it.u.vs[int(it.i)-1]
}

// stepBack from i; from the end it goes to the largest element since there's no node to climb from.
func (u *BSTree[T, S]) stepBack(i S) S {
	if i == 0 {
		return u.maxOf(u.root)
	}
	return u.prev(i)
}
