package collections

import "iter"

// Enumerable is the interface satisfied by [Collection][T].
//
// Accept Enumerable in your own functions so that callers can substitute
// another implementation without depending on *Collection.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Count returns the number of items.
	Count() int

	// Each calls fn(item, index) for every item.
	Each(fn func(T, int))

	// Seq returns a restartable iterator over the items.
	Seq() iter.Seq[T]

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool

	// FindLastIndex returns the highest index <= fromIndex whose item
	// satisfies fn.
	FindLastIndex(fn func(T) bool, fromIndex int) (int, bool, error)

	// Last returns the last item, optionally matching fns[0].
	Last(fns ...func(T) bool) (T, bool)

	// Filter returns a new collection containing only items for which
	// fn returns true.
	Filter(fn func(T, int) bool) *Collection[T]

	// DropRightWhile returns a new collection without the trailing items
	// for which fn returns true.
	DropRightWhile(fn func(T) bool) *Collection[T]
}

var _ Enumerable[int] = (*Collection[int])(nil)
