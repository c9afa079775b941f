package vector_test

import (
	"fmt"

	"github.com/momentics/hiovec/api"
	"github.com/momentics/hiovec/vector"
)

func Example() {
	v, _ := vector.New(vector.WithDestructor(func(x int) { fmt.Println("destroy", x) }))
	for _, x := range []int{10, 20, 30, 40, 50} {
		_ = v.Push(x)
	}

	v.Rotate(2)
	fmt.Println(v.Data())

	window, _ := v.Slice(1, 4)
	fmt.Println(window.Data(), window.Cap())

	_ = v.Shift(1, -1)
	fmt.Println(v.Data())
	// Output:
	// [40 50 10 20 30]
	// [50 10 20] 3
	// destroy 50
	// [40 10 20 30]
}

func ExampleOverlay() {
	buf := make([]string, 3)
	ov := vector.Overlay(buf, 0, vector.WithComparator(api.Ordered[string]()))
	for _, s := range []string{"c", "a", "b", "d"} {
		if err := ov.Push(s); err != nil {
			fmt.Println("full")
		}
	}
	ov.Sort()
	fmt.Println(buf, ov.Len(), ov.Cap())
	// Output:
	// full
	// [a b c] 3 3
}

func ExampleVector_Partition() {
	v, _ := vector.New[int]()
	for i := 1; i <= 6; i++ {
		_ = v.Push(i)
	}
	odd, _ := v.Partition(func(x int) bool { return x%2 == 0 })
	fmt.Println(v.Data(), odd.Data())
	// Output:
	// [2 4 6] [1 3 5]
}
