package seq

import "errors"

// Sentinel errors returned by seq operations.
//
// Returned errors wrap these values with details about the offending
// argument, so compare with [errors.Is]:
//
//	if _, err := seq.Chunk(items, 0); errors.Is(err, seq.ErrInvalidChunkSize) {
//	    // ...
//	}
var (
	// ErrInvalidChunkSize is returned by [Chunk] when size <= 0.
	ErrInvalidChunkSize = errors.New("seq: chunk size must be greater than 0")

	// ErrIndexOutOfRange is returned by [FindLastIndex] when fromIndex is
	// outside [0, len(list)-1] for a non-empty list.
	ErrIndexOutOfRange = errors.New("seq: index out of range")
)
