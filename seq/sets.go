package seq

import (
	"iter"
	"reflect"
	"slices"
)

// Difference yields the elements of original that appear in none of lists.
// Order and duplicates of original are preserved.
//
// The union of lists is built into a set once, when Difference is called,
// so each element of original costs a single lookup. Later changes to lists
// do not affect the result.
//
// With T = any, dynamic values that Go cannot hash (slices, maps, funcs)
// are compared with [reflect.DeepEqual] instead of ==, so sequences built
// by [Concat] over nested slices are accepted. Use [DifferenceFunc] for any
// other notion of equality.
//
//	slices.Collect(seq.Difference([]int{2, 1}, []int{2, 3})) // [1]
func Difference[T comparable](original []T, lists ...[]T) iter.Seq[T] {
	return DifferenceBy(original, identity[T], lists...)
}

// DifferenceBy is like [Difference] but compares the keys extracted by key.
// Pass a function returning a pointer to get identity semantics for
// elements that are otherwise compared by value.
func DifferenceBy[T any, K comparable](original []T, key func(T) K, lists ...[]T) iter.Seq[T] {
	excluded := keySet(key, lists...)
	logger().Debug("difference: exclusion set built", "lists", len(lists), "keys", excluded.len())
	return filter(original, func(v T) bool {
		return !excluded.has(key(v))
	})
}

// DifferenceFunc is like [Difference] but uses eq to compare elements.
// Without hashing every element is checked against the whole union, which
// is flattened once up front.
func DifferenceFunc[T any](original []T, eq func(a, b T) bool, lists ...[]T) iter.Seq[T] {
	excluded := slices.Concat(lists...)
	return filter(original, func(v T) bool {
		return !slices.ContainsFunc(excluded, func(e T) bool { return eq(v, e) })
	})
}

// Intersection yields the elements of source that are present in every one
// of lists. Order is preserved and duplicates in source are tested
// independently, not removed. With no lists every element is yielded.
//
// One membership set per list is built when Intersection is called.
// Unhashable dynamic values are handled as described on [Difference].
//
//	slices.Collect(seq.Intersection([]int{2, 1}, []int{2, 3})) // [2]
func Intersection[T comparable](source []T, lists ...[]T) iter.Seq[T] {
	return IntersectionBy(source, identity[T], lists...)
}

// IntersectionBy is like [Intersection] but compares the keys extracted by
// key.
func IntersectionBy[T any, K comparable](source []T, key func(T) K, lists ...[]T) iter.Seq[T] {
	sets := make([]*keyIndex[K], len(lists))
	for i, list := range lists {
		sets[i] = keySet(key, list)
	}
	return filter(source, func(v T) bool {
		k := key(v)
		for _, set := range sets {
			if !set.has(k) {
				return false
			}
		}
		return true
	})
}

// IntersectionFunc is like [Intersection] but uses eq to compare elements.
func IntersectionFunc[T any](source []T, eq func(a, b T) bool, lists ...[]T) iter.Seq[T] {
	members := make([][]T, len(lists))
	for i, list := range lists {
		members[i] = slices.Clone(list)
	}
	return filter(source, func(v T) bool {
		for _, list := range members {
			if !slices.ContainsFunc(list, func(e T) bool { return eq(v, e) }) {
				return false
			}
		}
		return true
	})
}

func identity[T any](v T) T { return v }

// keySet collects the keys of every element of lists.
func keySet[T any, K comparable](key func(T) K, lists ...[]T) *keyIndex[K] {
	size := 0
	for _, list := range lists {
		size += len(list)
	}
	set := newKeyIndex[K](size)
	for _, list := range lists {
		for _, v := range list {
			set.add(key(v))
		}
	}
	return set
}

// keyIndex is a set of keys. When K can carry interface values, keys whose
// dynamic value is not hashable go to loose and are matched with
// reflect.DeepEqual; everything else lives in the map.
type keyIndex[K comparable] struct {
	set     map[K]struct{}
	loose   []K
	dynamic bool
}

func newKeyIndex[K comparable](size int) *keyIndex[K] {
	return &keyIndex[K]{
		set:     make(map[K]struct{}, size),
		dynamic: holdsInterface(reflect.TypeFor[K]()),
	}
}

func (ix *keyIndex[K]) add(k K) {
	if ix.dynamic && !hashable(reflect.ValueOf(&k).Elem()) {
		ix.loose = append(ix.loose, k)
		return
	}
	ix.set[k] = struct{}{}
}

func (ix *keyIndex[K]) has(k K) bool {
	if ix.dynamic && !hashable(reflect.ValueOf(&k).Elem()) {
		return slices.ContainsFunc(ix.loose, func(e K) bool { return reflect.DeepEqual(e, k) })
	}
	_, found := ix.set[k]
	return found
}

func (ix *keyIndex[K]) len() int { return len(ix.set) + len(ix.loose) }

// holdsInterface reports whether values of t may contain an interface,
// and so a dynamic value that == cannot hash.
func holdsInterface(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface:
		return true
	case reflect.Array:
		return holdsInterface(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if holdsInterface(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}

// hashable reports whether v can be used as a map key without panicking.
func hashable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		return false
	case reflect.Interface:
		return v.IsNil() || hashable(v.Elem())
	case reflect.Array:
		for i := range v.Len() {
			if !hashable(v.Index(i)) {
				return false
			}
		}
	case reflect.Struct:
		for i := range v.NumField() {
			if !hashable(v.Field(i)) {
				return false
			}
		}
	}
	return true
}

// filter yields the elements of list for which keep returns true.
func filter[T any](list []T, keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range list {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}
