package seq

import (
	"fmt"
	"iter"
	"slices"
)

// Chunk splits list into consecutive groups of size elements.
// The last group holds the remainder when len(list) is not a multiple of
// size. An empty list yields no groups; a size larger than the list yields a
// single group with every element.
//
// Each yielded group is a fresh copy, so callers may modify it freely.
// Returns [ErrInvalidChunkSize] when size <= 0.
//
//	groups, _ := seq.Chunk([]string{"a", "b", "c", "d"}, 3)
//	slices.Collect(groups) // [[a b c] [d]]
func Chunk[T any](list []T, size int) (iter.Seq[[]T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, size)
	}
	return func(yield func([]T) bool) {
		n := len(list)
		for i := range ChunkCount(n, size) {
			start := i * size
			end := min(start+size, n)
			if !yield(slices.Clone(list[start:end])) {
				return
			}
		}
	}, nil
}
