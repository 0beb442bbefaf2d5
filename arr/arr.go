package arr

import (
	"iter"
	"slices"

	"github.com/hasbyte1/go-lodash-utils/seq"
)

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & joining
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
// Returns seq.ErrInvalidChunkSize when size <= 0.
func Chunk[T any](items []T, size int) ([][]T, error) {
	groups, err := seq.Chunk(items, size)
	if err != nil {
		return nil, err
	}
	return collect(groups, seq.ChunkCount(len(items), size)), nil
}

// Concat returns items followed by values. Values that are themselves
// slices are appended as single elements, not flattened.
func Concat[T any](items []T, values ...T) []T {
	return collect(seq.Concat(items, values...), len(items)+len(values))
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Difference returns the elements of items found in none of lists,
// keeping their order and duplicates (requires comparable T).
func Difference[T comparable](items []T, lists ...[]T) []T {
	return collect(seq.Difference(items, lists...), len(items))
}

// DifferenceBy is like [Difference] but compares keys extracted by fn.
func DifferenceBy[T any, K comparable](items []T, fn func(T) K, lists ...[]T) []T {
	return collect(seq.DifferenceBy(items, fn, lists...), len(items))
}

// Intersection returns the elements of items present in every one of
// lists (requires comparable T).
func Intersection[T comparable](items []T, lists ...[]T) []T {
	return collect(seq.Intersection(items, lists...), len(items))
}

// IntersectionBy is like [Intersection] but compares keys extracted by fn.
func IntersectionBy[T any, K comparable](items []T, fn func(T) K, lists ...[]T) []T {
	return collect(seq.IntersectionBy(items, fn, lists...), len(items))
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// FindLastIndex returns the highest index <= fromIndex whose element
// satisfies fn. See seq.FindLastIndex for the exact contract.
func FindLastIndex[T any](items []T, fn func(T) bool, fromIndex int) (int, bool, error) {
	return seq.FindLastIndex(items, fn, fromIndex)
}

// FindLast returns the index of the last element satisfying fn.
func FindLast[T any](items []T, fn func(T) bool) (int, bool) {
	return seq.FindLast(items, fn)
}

// ContainsValue reports whether items contains value (requires comparable T).
func ContainsValue[T comparable](items []T, value T) bool {
	return slices.Contains(items, value)
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	return slices.Index(items, value)
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & transformation
// ─────────────────────────────────────────────────────────────────────────────

// DropRightWhile returns items without the trailing run of elements that
// satisfy fn.
func DropRightWhile[T any](items []T, fn func(T) bool) []T {
	return collect(seq.DropRightWhile(items, fn), len(items))
}

// TakeRightWhile returns the trailing run of elements that satisfy fn.
func TakeRightWhile[T any](items []T, fn func(T) bool) []T {
	return collect(seq.TakeRightWhile(items, fn), 0)
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Reject returns elements for which fn returns false.
func Reject[T any](items []T, fn func(T, int) bool) []T {
	return Filter(items, func(item T, i int) bool { return !fn(item, i) })
}

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	out := slices.Clone(items)
	if out == nil {
		out = []T{}
	}
	slices.Reverse(out)
	return out
}

// collect drains s into a new non-nil slice with room for capHint elements.
func collect[T any](s iter.Seq[T], capHint int) []T {
	out := make([]T, 0, capHint)
	for v := range s {
		out = append(out, v)
	}
	return out
}
