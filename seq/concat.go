package seq

import (
	"iter"
	"slices"
)

// Concat yields every element of list followed by each of args, in order.
//
// Nothing is flattened: with T = any, a slice passed as one argument is
// yielded as a single element. Mixing element and slice arguments needs an
// explicit instantiation, since T is otherwise inferred from each argument:
//
//	slices.Collect(seq.Concat[any]([]any{1}, 2, []any{3}, []any{[]any{4}}))
//	// [1 2 [3] [[4]]]
func Concat[T any](list []T, args ...T) iter.Seq[T] {
	return ConcatSeq(slices.Values(list), slices.Values(args))
}

// ConcatSeq joins sequences end to end.
func ConcatSeq[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range seqs {
			for v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}
