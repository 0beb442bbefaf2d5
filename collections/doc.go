// Package collections provides a fluent, generic Collection type over the
// operations of the seq package: chunk, concat, difference, intersection,
// findLastIndex and dropRightWhile.
//
// # Overview
//
//	kept := collections.New("bYr", "abc", "BbAcd").
//	    DropRightWhile(func(s string) bool { return strings.ContainsAny(s, "aA") }).
//	    All() // → [bYr]
//
//	groups, _ := collections.Chunk(collections.New(1, 2, 3, 4, 5), 2)
//	rest := collections.Difference(collections.New(2, 1), collections.New(2, 3))
//
// # Immutability
//
// All transformation methods return a *new* Collection and constructors copy
// their input, so a Collection never aliases a caller's slice.
//
// # Equality
//
// The package-level [Difference] and [Intersection] compare comparable
// items with ==. The [Collection.Diff] and [Collection.Intersect] methods
// work for any item type by comparing keys returned by a function.
//
// # Macros
//
// Named functions can be registered at runtime with [RegisterMacro] and
// invoked through [Collection.Macro]. [Typed] checks the collection type
// and [MacroArg] the arguments:
//
//	collections.RegisterMacro("tail", collections.Typed(
//	    func(c *collections.Collection[int], args ...any) (any, error) {
//	        pred, err := collections.MacroArg[func(int) bool](args, 0)
//	        if err != nil {
//	            return nil, err
//	        }
//	        return c.TakeRightWhile(pred), nil
//	    }))
//
// [RegisterSequenceMacros] registers chunk, dropRightWhile, takeRightWhile
// and findLastIndex for one element type.
package collections
