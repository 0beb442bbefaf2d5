package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-lodash-utils/arr"
)

func ExampleChunk() {
	chunks, _ := arr.Chunk([]int{1, 2, 3, 4, 5}, 2)
	for _, c := range chunks {
		fmt.Println(c)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleConcat() {
	fmt.Println(arr.Concat[any]([]any{1}, 2, []any{3}, []any{[]any{4}}))
	// Output: [1 2 [3] [[4]]]
}

func ExampleDifference() {
	fmt.Println(arr.Difference([]int{2, 1}, []int{2, 3}))
	// Output: [1]
}

func ExampleIntersection() {
	fmt.Println(arr.Intersection([]int{2, 1}, []int{2, 3}))
	// Output: [2]
}

func ExampleDropRightWhile() {
	fmt.Println(arr.DropRightWhile([]int{1, 2, 3, 4}, func(n int) bool { return n > 2 }))
	// Output: [1 2]
}
