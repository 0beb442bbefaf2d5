// Package seq provides generic, pure operations over ordered slices that
// produce lazy [iter.Seq] results, modelled on lodash's array helpers.
//
// # Overview
//
//	groups, _ := seq.Chunk([]string{"a", "b", "c", "d"}, 3)  // [a b c] [d]
//	all      := seq.Concat[any]([]any{1}, 2, []any{3})      // 1 2 [3]
//	rest     := seq.Difference([]int{2, 1}, []int{2, 3})     // 1
//	common   := seq.Intersection([]int{2, 1}, []int{2, 3})   // 2
//	i, ok, _ := seq.FindLastIndex(names, hasA, 1)
//	kept     := seq.DropRightWhile(names, hasA)
//
// # Laziness
//
// Every returned sequence closes over the input slice and does its work when
// ranged over. Sequences are restartable: ranging twice yields the same
// elements, provided the caller has not modified the input in between and
// the predicates are pure. Use [slices.Collect] (or the arr package) to
// materialize a result.
//
// Inputs are never modified. Chunk groups are fresh copies.
//
// # Equality
//
// [Difference] and [Intersection] require a comparable element type and use
// Go's == operator. That is value equality for strings, numbers and structs
// and identity equality for pointers, so reference semantics are available
// by passing pointers:
//
//	a, b := &User{ID: 1}, &User{ID: 1}
//	seq.Difference([]*User{a, b}, []*User{a}) // yields only b
//
// The By variants compare keys extracted by a function and the Func variants
// accept an arbitrary equality function for element types that are not
// comparable.
//
// # Errors
//
// Caller errors are returned, never panicked or logged: [Chunk] returns
// [ErrInvalidChunkSize] and [FindLastIndex] returns [ErrIndexOutOfRange].
// Empty inputs are always valid.
package seq
