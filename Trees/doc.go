/*
Package Trees provides BSTree, an unbalanced binary search tree kept in an arena.

Values are ordered either by cmp.Compare (New, Of, FromPreIn, FromInPost) or by a
user supplied comparison function (NewC, OfC, FromPreInC, FromInPostC). A tree holds no
two values that compare equal.

Elements are reached through Iterators, which step forward and backward in order:

	for it := t.Begin(); it != t.End(); it = it.Next() {
		fmt.Println(it.Value())
	}

Push style traversals (InOrder, PreOrder, PostOrder, LevelOrder) visit the whole tree.
A tree can be rebuilt from its pre-order and in-order, or in-order and post-order,
value sequences.

Package Trees writes traces to the tracer selected by key "bst".
*/
package Trees

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bst'
func tracer() tracing.Trace {
	return tracing.Select("bst")
}
