package seq_test

import (
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-lodash-utils/seq"
)

type user struct {
	id   int
	name string
}

func TestDifference(t *testing.T) {
	tests := []struct {
		name     string
		original []int
		lists    [][]int
		want     []int
	}{
		{"basic", []int{2, 1}, [][]int{{2, 3}}, []int{1}},
		{"duplicates_removed_by_value", []int{1, 1, 2}, [][]int{{1}}, []int{2}},
		{"order_and_multiplicity_kept", []int{3, 1, 3, 2, 1}, [][]int{{2}}, []int{3, 1, 3, 1}},
		{"union_of_lists", []int{1, 2, 3, 4}, [][]int{{1}, {3}, {}}, []int{2, 4}},
		{"no_lists", []int{1, 2}, nil, []int{1, 2}},
		{"empty_original", nil, [][]int{{1}}, nil},
		{"everything_excluded", []int{1, 2}, [][]int{{2, 1}}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slices.Collect(seq.Difference(tc.original, tc.lists...)))
		})
	}
}

func TestDifferenceIdentity(t *testing.T) {
	a, b := &user{1, "a"}, &user{1, "a"}
	got := slices.Collect(seq.Difference([]*user{a, b, a}, []*user{a}))
	assert.Len(t, got, 1)
	assert.Same(t, b, got[0])
}

func TestDifferenceMemoizesExclusions(t *testing.T) {
	exclude := []int{2}
	var calls int
	s := seq.DifferenceBy([]int{1, 2, 3}, func(n int) int { calls++; return n }, exclude)
	assert.Equal(t, 1, calls, "exclusion keys must be computed once, at call time")

	exclude[0] = 3
	assert.Equal(t, []int{1, 3}, slices.Collect(s))
	assert.Equal(t, []int{1, 3}, slices.Collect(s))
	assert.Equal(t, 1+3+3, calls)
}

func TestDifferenceBy(t *testing.T) {
	users := []user{{1, "ann"}, {2, "bob"}, {3, "cid"}}
	got := slices.Collect(seq.DifferenceBy(users, func(u user) int { return u.id }, []user{{2, "other"}}))
	assert.Equal(t, []user{{1, "ann"}, {3, "cid"}}, got)
}

func TestDifferenceFunc(t *testing.T) {
	eq := func(a, b []int) bool { return slices.Equal(a, b) }
	got := slices.Collect(seq.DifferenceFunc([][]int{{1}, {2, 3}, {4}}, eq, [][]int{{2, 3}}, [][]int{{4}}))
	assert.Equal(t, [][]int{{1}}, got)
}

func TestDifferenceUnhashableValues(t *testing.T) {
	mixed := slices.Collect(seq.Concat[any]([]any{1}, 2, []any{3}, map[string]int{"k": 1}))

	assert.NotPanics(t, func() {
		got := slices.Collect(seq.Difference(mixed, []any{2}))
		assert.Equal(t, []any{1, []any{3}, map[string]int{"k": 1}}, got)
	})
	assert.Equal(t, []any{1, 2}, slices.Collect(seq.Difference(mixed, []any{[]any{3}, map[string]int{"k": 1}})))
	assert.Equal(t, mixed, slices.Collect(seq.Difference(mixed, []any{[]any{4}, []int{3}})), "slices of another type never match")
}

func TestDifferenceFuncNestedSlices(t *testing.T) {
	eq := func(a, b any) bool { return reflect.DeepEqual(a, b) }
	got := slices.Collect(seq.DifferenceFunc([]any{[]any{1, []any{2}}, "x", []any{3}}, eq, []any{[]any{1, []any{2}}}))
	assert.Equal(t, []any{"x", []any{3}}, got)
}

func TestDifferenceByStructKeyHoldingSlice(t *testing.T) {
	type tagged struct {
		tag   string
		value any
	}
	key := func(v tagged) tagged { return v }
	items := []tagged{{"a", []int{1}}, {"b", 2}, {"a", []int{2}}}
	got := slices.Collect(seq.DifferenceBy(items, key, []tagged{{"a", []int{1}}, {"b", 2}}))
	assert.Equal(t, []tagged{{"a", []int{2}}}, got)
}

func TestIntersectionUnhashableValues(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, []any{1}, slices.Collect(seq.Intersection([]any{1, []int{2}}, []any{1})))
	})
	got := slices.Collect(seq.Intersection([]any{1, []int{2}, []int{3}}, []any{[]int{2}, 1}, []any{[]int{2}}))
	assert.Equal(t, []any{[]int{2}}, got)
}

func TestIntersection(t *testing.T) {
	tests := []struct {
		name   string
		source []int
		lists  [][]int
		want   []int
	}{
		{"basic", []int{2, 1}, [][]int{{2, 3}}, []int{2}},
		{"disjoint", []int{1, 2}, [][]int{{3, 4}}, nil},
		{"no_lists", []int{1, 2, 3}, nil, []int{1, 2, 3}},
		{"must_be_in_every_list", []int{1, 2, 3}, [][]int{{1, 2}, {2, 3}}, []int{2}},
		{"duplicates_kept", []int{2, 1, 2}, [][]int{{2}}, []int{2, 2}},
		{"empty_list_excludes_all", []int{1, 2}, [][]int{{1, 2}, {}}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slices.Collect(seq.Intersection(tc.source, tc.lists...)))
		})
	}
}

func TestIntersectionBy(t *testing.T) {
	users := []user{{1, "ann"}, {2, "bob"}, {3, "cid"}}
	byName := func(u user) string { return u.name }
	got := slices.Collect(seq.IntersectionBy(users, byName, []user{{9, "cid"}, {8, "ann"}}))
	assert.Equal(t, []user{{1, "ann"}, {3, "cid"}}, got)
}

func TestIntersectionFunc(t *testing.T) {
	eq := func(a, b []string) bool { return slices.Equal(a, b) }
	source := [][]string{{"a"}, {"b"}, {"c"}}
	got := slices.Collect(seq.IntersectionFunc(source, eq, [][]string{{"c"}, {"a"}}, [][]string{{"a"}}))
	assert.Equal(t, [][]string{{"a"}}, got)
}

func TestSetOperationsIdempotent(t *testing.T) {
	original, other := []int{5, 4, 3, 2, 1}, []int{4, 2}

	d := seq.Difference(original, other)
	assert.Equal(t, slices.Collect(d), slices.Collect(d))
	assert.Equal(t, slices.Collect(d), slices.Collect(seq.Difference(original, other)))

	i := seq.Intersection(original, other)
	assert.Equal(t, slices.Collect(i), slices.Collect(i))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, original)
}
