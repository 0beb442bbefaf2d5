// Package arr provides eager, slice-in/slice-out versions of the seq
// operations, for callers who want a plain []T rather than an iterator.
//
// # Slice helpers
//
// All helpers are generic and operate on plain []T values with no wrapper
// type required:
//
//	chunks, _ := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)         // → [[1 2] [3 4] [5]]
//	rest      := arr.Difference([]int{2, 1}, []int{2, 3})   // → [1]
//	kept      := arr.DropRightWhile(names, hasA)
//
// Results are always freshly allocated and never nil for a successful call;
// inputs are never modified.
//
// # Errors
//
// The errors returned by [Chunk] and [FindLastIndex] are the seq package's
// sentinels, so errors.Is(err, seq.ErrInvalidChunkSize) works unchanged.
package arr
