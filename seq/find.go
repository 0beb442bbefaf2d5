package seq

// IndexedPredicate is a predicate that also receives the position of item
// and the list being scanned, like lodash's (value, index, array)
// callbacks. It must not modify list.
type IndexedPredicate[T any] func(item T, index int, list []T) bool

// FindLastIndex returns the largest index i with 0 <= i <= fromIndex for
// which pred(list[i]) is true. The scan runs from fromIndex down to 0 and
// stops at the first match.
//
// When no element in range matches, or list is empty, it returns -1 and
// false with a nil error. For a non-empty list, a fromIndex outside
// [0, len(list)-1] returns [ErrIndexOutOfRange] without calling pred.
//
//	names := []string{"abc", "BbAcd", "bYr"}
//	i, ok, _ := seq.FindLastIndex(names, hasA, 1) // 1, true
func FindLastIndex[T any](list []T, pred func(T) bool, fromIndex int) (int, bool, error) {
	return FindLastIndexFunc(list, ignoreIndex(pred), fromIndex)
}

// FindLastIndexFunc is like [FindLastIndex] but pred also receives the
// index and the list.
func FindLastIndexFunc[T any](list []T, pred IndexedPredicate[T], fromIndex int) (int, bool, error) {
	if len(list) == 0 {
		return -1, false, nil
	}
	if err := checkIndex(fromIndex, len(list)); err != nil {
		return -1, false, err
	}
	i := lastMatch(fromIndex, func(i int) bool { return pred(list[i], i, list) })
	logger().Debug("findLastIndex: scan finished", "from", fromIndex, "index", i)
	return i, i >= 0, nil
}

// FindLast is [FindLastIndex] searching from the last element.
func FindLast[T any](list []T, pred func(T) bool) (int, bool) {
	i, ok, _ := FindLastIndex(list, pred, len(list)-1)
	return i, ok
}

func ignoreIndex[T any](pred func(T) bool) IndexedPredicate[T] {
	return func(item T, _ int, _ []T) bool { return pred(item) }
}
