package Sets

// Set of unique elements. Put and Remove report whether the set changed.
type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	// Take removes some element and returns it; false if the set is empty.
	Take() (E, bool)
	// Range calls f on elements until f returns false.
	Range(func(E) bool)
}
