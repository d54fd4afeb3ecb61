package Trees

import (
	"github.com/g-m-twostay/go-bst/Sets"
)

// Tree represents an ordered set implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value and shouldn't be used.
// Methods are implemented iteratively.
type Tree[T any] interface {
	Sets.Set[T]
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v. v needn't be in the tree.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v. v needn't be in the tree.
	Successor(v T) (T, bool)
	//RankK element in tree in in-order, starting from 0.
	//0<=k<Size().
	RankK(k uint) (T, bool)
	//RankOf v in the tree according to in-order, starting from 0. If v isn't found,
	//returns the rank as if v is added to the tree.
	RankOf(v T) (uint, bool)
	//InOrder calls f on every element in ascending order.
	InOrder(f func(T))
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}

var _ Tree[int] = (*BSTree[int, uint])(nil)
