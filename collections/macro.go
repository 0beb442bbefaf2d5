package collections

import (
	"fmt"
	"sort"
	"sync"
)

// MacroFunc is the function signature for a registered macro.
//
// The collection arrives as an any so that one registry can serve every
// Collection[T] instantiation. Wrap a typed function with [Typed] rather
// than asserting inside the macro.
type MacroFunc func(collection any, args ...any) (any, error)

type macroTable struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}

var registry = &macroTable{macros: make(map[string]MacroFunc)}

// RegisterMacro adds a named macro to the global registry, replacing any
// macro already registered under name. Safe for concurrent use.
//
//	collections.RegisterMacro("trimBlank", collections.Typed(
//	    func(c *collections.Collection[string], _ ...any) (any, error) {
//	        return c.DropRightWhile(func(s string) bool { return s == "" }), nil
//	    }))
//
//	res, _ := collections.New("a", "", "").Macro("trimBlank") // ["a"]
func RegisterMacro(name string, fn MacroFunc) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.macros[name] = fn
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	_, ok := registry.macros[name]
	return ok
}

// Macros returns the registered macro names in sorted order.
func Macros() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.macros))
	for name := range registry.macros {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FlushMacros removes all registered macros.
// Intended for use in tests.
func FlushMacros() {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.macros = make(map[string]MacroFunc)
}

// CallMacro calls the named macro with the supplied collection and args.
// Returns [ErrMacroNotFound] if no macro is registered under name; errors
// from the macro itself are wrapped with its name.
func CallMacro(name string, collection any, args ...any) (any, error) {
	registry.mu.RLock()
	fn, ok := registry.macros[name]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	res, err := fn(collection, args...)
	if err != nil {
		return nil, fmt.Errorf("macro %q: %w", name, err)
	}
	return res, nil
}

// Macro calls the named registered macro on c, forwarding args.
func (c *Collection[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, c, args...)
}

// Typed adapts fn to a [MacroFunc]. Calling the macro on anything other
// than a *Collection[T] returns [ErrMacroTypeMismatch].
func Typed[T any](fn func(c *Collection[T], args ...any) (any, error)) MacroFunc {
	return func(collection any, args ...any) (any, error) {
		c, ok := collection.(*Collection[T])
		if !ok {
			return nil, fmt.Errorf("%w: got %T, want %T", ErrMacroTypeMismatch, collection, c)
		}
		return fn(c, args...)
	}
}

// MacroArg returns args[i] as an A. A missing or mistyped argument
// returns [ErrMacroArgument].
func MacroArg[A any](args []any, i int) (A, error) {
	var zero A
	if i < 0 || i >= len(args) {
		return zero, fmt.Errorf("%w: want at least %d, got %d", ErrMacroArgument, i+1, len(args))
	}
	v, ok := args[i].(A)
	if !ok {
		return zero, fmt.Errorf("%w: argument %d is %T, want %T", ErrMacroArgument, i, args[i], zero)
	}
	return v, nil
}

// RegisterSequenceMacros registers the sequence operations for
// Collection[T] under their lowercase names:
//
//	chunk(size int)                     *Collection[[]T]
//	dropRightWhile(pred func(T) bool)   *Collection[T]
//	takeRightWhile(pred func(T) bool)   *Collection[T]
//	findLastIndex(pred func(T) bool, fromIndex int) int, -1 when absent
//
// The registry is shared, so registering for a second T replaces the
// first.
func RegisterSequenceMacros[T any]() {
	RegisterMacro("chunk", Typed(func(c *Collection[T], args ...any) (any, error) {
		size, err := MacroArg[int](args, 0)
		if err != nil {
			return nil, err
		}
		return Chunk(c, size)
	}))
	RegisterMacro("dropRightWhile", Typed(func(c *Collection[T], args ...any) (any, error) {
		pred, err := MacroArg[func(T) bool](args, 0)
		if err != nil {
			return nil, err
		}
		return c.DropRightWhile(pred), nil
	}))
	RegisterMacro("takeRightWhile", Typed(func(c *Collection[T], args ...any) (any, error) {
		pred, err := MacroArg[func(T) bool](args, 0)
		if err != nil {
			return nil, err
		}
		return c.TakeRightWhile(pred), nil
	}))
	RegisterMacro("findLastIndex", Typed(func(c *Collection[T], args ...any) (any, error) {
		pred, err := MacroArg[func(T) bool](args, 0)
		if err != nil {
			return nil, err
		}
		from, err := MacroArg[int](args, 1)
		if err != nil {
			return nil, err
		}
		i, found, err := c.FindLastIndex(pred, from)
		if err != nil {
			return nil, err
		}
		if !found {
			return -1, nil
		}
		return i, nil
	}))
}
