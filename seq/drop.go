package seq

import "iter"

// DropRightWhile yields the prefix of list left after dropping elements
// from the end while pred returns true for them. The result ends at the
// last element for which pred is false: it is empty when pred holds for
// every element and the whole list when pred is false for the last one.
//
//	names := []string{"bYr", "abc", "BbAcd"}
//	slices.Collect(seq.DropRightWhile(names, hasA)) // [bYr]
func DropRightWhile[T any](list []T, pred func(T) bool) iter.Seq[T] {
	return DropRightWhileFunc(list, ignoreIndex(pred))
}

// DropRightWhileFunc is like [DropRightWhile] but pred also receives the
// index and the list.
func DropRightWhileFunc[T any](list []T, pred IndexedPredicate[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range list[:keepRight(list, pred)] {
			if !yield(v) {
				return
			}
		}
	}
}

// TakeRightWhile yields the tail that [DropRightWhile] drops: the
// elements after the last one for which pred is false.
func TakeRightWhile[T any](list []T, pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range list[keepRight(list, ignoreIndex(pred)):] {
			if !yield(v) {
				return
			}
		}
	}
}

// keepRight returns the length of the prefix that survives dropping
// matching elements from the end of list.
func keepRight[T any](list []T, pred IndexedPredicate[T]) int {
	k := lastMatch(len(list)-1, func(i int) bool { return !pred(list[i], i, list) })
	logger().Debug("dropRightWhile: cut", "length", len(list), "keep", k+1)
	return k + 1
}
