package array_test

import (
	"fmt"

	"github.com/katalvlaran/ndarray/array"
)

// ExampleArray_indexing writes a 2×2 array through the indexing operator and
// prints it row by row (y outer, x inner).
func ExampleArray_indexing() {
	a, err := array.NewWith([]int{2, 2}, 0)
	if err != nil {
		panic(err)
	}
	a.MustSet(1, 0, 0)
	a.MustSet(2, 1, 0)
	a.MustSet(3, 0, 1)
	a.MustSet(4, 1, 1)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			fmt.Print(a.MustAt(x, y))
		}
		fmt.Println()
	}
	// Output:
	// 12
	// 34
}

// ExampleArray_AllMut adds the y coordinate to every cell of column x == 1.
func ExampleArray_AllMut() {
	a, _ := array.NewWith([]int{5, 4}, 0)
	for c, p := range a.AllMut() {
		if c[0] == 1 {
			*p += c[1]
		}
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			fmt.Print(a.MustAt(x, y))
		}
		fmt.Println()
	}
	fmt.Println(a.AsFlattened())
	// Output:
	// 00000
	// 01000
	// 02000
	// 03000
	// [0 0 0 0 0 0 1 0 0 0 0 2 0 0 0 0 3 0 0 0]
}

// ExampleArray_Iter walks a 3×2 array with the explicit cursor.
func ExampleArray_Iter() {
	a, _ := array.NewByEnumeration([]int{3, 2}, func(i int) string { return string(rune('a' + i)) })
	it := a.Iter()
	for {
		coord, v, ok := it.Next()
		if !ok {
			break
		}
		fmt.Println(coord, v)
	}
	// Output:
	// [0 0] a
	// [1 0] b
	// [2 0] c
	// [0 1] d
	// [1 1] e
	// [2 1] f
}

// ExampleArray_At shows the recoverable failure path.
func ExampleArray_At() {
	a, _ := array.New[float64]([]int{5, 4})
	_, err := a.At(0, 7)
	fmt.Println(err)
	// Output:
	// Array.At([0 7]): array: index of dimension 2 is out of bounds: 0..4 does not contain 7
}

// ExampleFromFlat reinterprets a flat buffer and hands it back.
func ExampleFromFlat() {
	a, err := array.FromFlat([]int{1, 2, 3, 4, 5, 6}, []int{3, 2})
	if err != nil {
		panic(err)
	}
	fmt.Println(a.MustAt(2, 0), a.MustAt(0, 1))
	fmt.Println(a.IntoFlattened())

	_, err = array.FromFlat([]int{1, 2, 3}, []int{2, 2})
	fmt.Println(err != nil)
	// Output:
	// 3 4
	// [1 2 3 4 5 6]
	// true
}
