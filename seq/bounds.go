package seq

import "fmt"

// ChunkCount returns the number of groups [Chunk] yields for a list of
// length n, that is ceil(n / size). It returns 0 when n <= 0 or size <= 0.
func ChunkCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	count := n / size
	if n%size != 0 {
		count++
	}
	return count
}

// checkIndex reports whether index addresses an element of a list of the
// given length.
func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
	}
	return nil
}

// lastMatch scans indices from down to 0 and returns the first one for
// which match is true, or -1.
func lastMatch(from int, match func(int) bool) int {
	for i := from; i >= 0; i-- {
		if match(i) {
			return i
		}
	}
	return -1
}
