package collections

import (
	"iter"

	"github.com/hasbyte1/go-lodash-utils/arr"
	"github.com/hasbyte1/go-lodash-utils/seq"
)

// This file contains package-level generic functions for operations that
// change the element type or need a comparable one. They compose with
// method chains:
//
//	groups, _ := collections.Chunk(
//	    collections.New(1, 2, 3, 4, 5).Reject(func(n, _ int) bool { return n == 3 }),
//	    2,
//	)

// Collect builds a Collection from a sequence, such as one produced by the
// seq package.
func Collect[T any](s iter.Seq[T]) *Collection[T] {
	c := Empty[T]()
	for v := range s {
		c.items = append(c.items, v)
	}
	return c
}

// Chunk splits the collection into consecutive groups of size.
// The last group may contain fewer than size items. Returns
// [ErrInvalidChunkSize] when size <= 0.
//
//	groups, _ := collections.Chunk(collections.New(1, 2, 3, 4, 5), 2)
//	// → [[1 2] [3 4] [5]]
func Chunk[T any](c *Collection[T], size int) (*Collection[[]T], error) {
	groups, err := arr.Chunk(c.items, size)
	if err != nil {
		return nil, err
	}
	return &Collection[[]T]{items: groups}, nil
}

// Difference returns the items of c found in none of others, keeping order
// and duplicates.
func Difference[T comparable](c *Collection[T], others ...*Collection[T]) *Collection[T] {
	return Collect(seq.Difference(c.items, itemsOf(others)...))
}

// Intersection returns the items of c present in every one of others.
func Intersection[T comparable](c *Collection[T], others ...*Collection[T]) *Collection[T] {
	return Collect(seq.Intersection(c.items, itemsOf(others)...))
}

// Map applies fn to every item and returns a new Collection[U].
//
//	lengths := collections.Map(names, func(s string, _ int) int { return len(s) })
func Map[T, U any](c *Collection[T], fn func(T, int) U) *Collection[U] {
	return &Collection[U]{items: arr.Map(c.items, fn)}
}
