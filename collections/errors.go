package collections

import (
	"errors"

	"github.com/hasbyte1/go-lodash-utils/seq"
)

// Sentinel errors returned by Collection operations.
var (
	// ErrIndexOutOfRange is returned by [Collection.FindLastIndex] when the
	// start index is outside [0, Count()-1]. It is the seq package's error.
	ErrIndexOutOfRange = seq.ErrIndexOutOfRange

	// ErrInvalidChunkSize is returned by [Chunk] when size <= 0.
	// It is the seq package's error.
	ErrInvalidChunkSize = seq.ErrInvalidChunkSize

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")

	// ErrMacroTypeMismatch is returned when a [Typed] macro is called on a
	// collection of another element type.
	ErrMacroTypeMismatch = errors.New("collections: macro called on wrong collection type")

	// ErrMacroArgument is returned by [MacroArg] for a missing or mistyped
	// macro argument.
	ErrMacroArgument = errors.New("collections: invalid macro argument")
)
