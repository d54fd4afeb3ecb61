package Trees

import "errors"

var (
	// ErrInvalidInput signals traversal sequences that can't be rebuilt into a tree.
	ErrInvalidInput = errors.New("Trees: invalid input")
	// ErrCorrupt signals a broken tree invariant found by Check.
	ErrCorrupt = errors.New("Trees: corrupt tree")
)
