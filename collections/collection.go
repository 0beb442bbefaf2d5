package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"github.com/hasbyte1/go-lodash-utils/arr"
	"github.com/hasbyte1/go-lodash-utils/seq"
)

// Collection is a generic, immutable wrapper around a slice of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged, so a Collection can be read from several
// goroutines without locking.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.Collect(seq.Difference(a, b))
//
// # Method chaining
//
//	names := collections.New("bYr", "abc", "BbAcd").
//	    Concat("x").
//	    DropRightWhile(func(s string) bool { return s == "x" })
//
// # Package-level operations
//
// Go methods cannot add type parameters, so operations that change the
// element type ([Chunk], [Map]) or need a comparable element type
// ([Difference], [Intersection]) are package-level functions.
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	return slices.Clone(c.items)
}

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// Seq returns a restartable iterator over the items.
func (c *Collection[T]) Seq() iter.Seq[T] { return slices.Values(c.items) }

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the item at index together with a presence flag.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection, falling back to
// %v for items that cannot be marshalled.
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// Each calls fn(item, index) for every item.
func (c *Collection[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// FindLastIndex returns the highest index <= fromIndex whose item
// satisfies fn. An empty collection reports no match; a fromIndex outside
// the collection returns [ErrIndexOutOfRange].
func (c *Collection[T]) FindLastIndex(fn func(T) bool, fromIndex int) (int, bool, error) {
	return seq.FindLastIndex(c.items, fn, fromIndex)
}

// Last returns the last item, optionally the last one matching fns[0].
// Returns the zero value and false when nothing qualifies.
func (c *Collection[T]) Last(fns ...func(T) bool) (T, bool) {
	match := func(T) bool { return true }
	if len(fns) > 0 {
		match = fns[0]
	}
	i, ok := seq.FindLast(c.items, match)
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which
// fn(item, index) returns true.
func (c *Collection[T]) Filter(fn func(T, int) bool) *Collection[T] {
	return &Collection[T]{items: arr.Filter(c.items, fn)}
}

// Reject returns a new collection with items for which fn returns true
// removed.
func (c *Collection[T]) Reject(fn func(T, int) bool) *Collection[T] {
	return &Collection[T]{items: arr.Reject(c.items, fn)}
}

// Reverse returns a new collection with items in reversed order.
func (c *Collection[T]) Reverse() *Collection[T] {
	return &Collection[T]{items: arr.Reverse(c.items)}
}

// Concat returns a new collection with values appended. Values are
// appended as-is: a slice value in a Collection[any] stays one item.
func (c *Collection[T]) Concat(values ...T) *Collection[T] {
	return &Collection[T]{items: arr.Concat(c.items, values...)}
}

// Merge returns a new collection with every item of others appended.
func (c *Collection[T]) Merge(others ...*Collection[T]) *Collection[T] {
	seqs := []iter.Seq[T]{c.Seq()}
	for _, o := range others {
		seqs = append(seqs, o.Seq())
	}
	return Collect(seq.ConcatSeq(seqs...))
}

// Diff returns the items whose key, as extracted by fn, appears in none of
// others. Keys that cannot be hashed, such as slices, are compared with
// reflect.DeepEqual.
//
// For comparable item types use the package-level [Difference].
func (c *Collection[T]) Diff(fn func(T) any, others ...*Collection[T]) *Collection[T] {
	return &Collection[T]{items: arr.DifferenceBy(c.items, fn, itemsOf(others)...)}
}

// Intersect returns the items whose key, as extracted by fn, appears in
// every one of others. Unhashable keys are handled as in [Collection.Diff].
//
// For comparable item types use the package-level [Intersection].
func (c *Collection[T]) Intersect(fn func(T) any, others ...*Collection[T]) *Collection[T] {
	return &Collection[T]{items: arr.IntersectionBy(c.items, fn, itemsOf(others)...)}
}

// DropRightWhile returns a new collection without the trailing items for
// which fn returns true.
func (c *Collection[T]) DropRightWhile(fn func(T) bool) *Collection[T] {
	return &Collection[T]{items: arr.DropRightWhile(c.items, fn)}
}

// TakeRightWhile returns a new collection of the trailing items for which
// fn returns true.
func (c *Collection[T]) TakeRightWhile(fn func(T) bool) *Collection[T] {
	return &Collection[T]{items: arr.TakeRightWhile(c.items, fn)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}

func itemsOf[T any](cs []*Collection[T]) [][]T {
	out := make([][]T, len(cs))
	for i, c := range cs {
		out[i] = c.items
	}
	return out
}
