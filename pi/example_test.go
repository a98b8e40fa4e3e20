package pi_test

import (
	"fmt"
	"math"

	"rivulet"
	"rivulet/pi"
)

func ExampleLeibniz() {
	s := pi.Leibniz()

	fmt.Println(rivulet.Collect(rivulet.Take(s.Partials(), 3)))
	fmt.Println(pi.Truncate(s.Sum(1_000_000), 5))
	// Output:
	// [4 2.666666666666667 3.466666666666667]
	// 3.14159
}

func ExampleNilakantha() {
	p, ok := rivulet.Detect(pi.Nilakantha().Partials(), pi.Until(math.Pi, 5))

	fmt.Println(ok, p.Index, pi.Truncate(p.Value, 5))
	// Output: true 33 3.14159
}

func ExampleTruncate() {
	fmt.Println(pi.Truncate(3.14159265, 5))
	fmt.Println(pi.Truncate(3.1415999, 4))
	// Output:
	// 3.14159
	// 3.1415
}
