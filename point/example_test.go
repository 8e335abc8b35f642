package point_test

import (
	"fmt"

	"github.com/cortinico/polyclip2d/options"
	"github.com/cortinico/polyclip2d/point"
)

func ExamplePoint_Eq() {
	p := point.New(1, 1)
	q := point.New(1.0000001, 1.0000001)
	epsilon := 1e-6

	fmt.Printf("%s == %s without epsilon: %t\n", p, q, p.Eq(q))
	fmt.Printf("%s == %s with epsilon of %.0e: %t\n", p, q, epsilon, p.Eq(q, options.WithEpsilon(epsilon)))

	// Output:
	// (1,1) == (1.0000001,1.0000001) without epsilon: false
	// (1,1) == (1.0000001,1.0000001) with epsilon of 1e-06: true
}

func ExamplePoint_CrossProduct() {
	a := point.New(1, 0)
	b := point.New(0, 1)
	fmt.Println(a.CrossProduct(b))

	// Output:
	// 1
}

func ExampleOrientation() {
	p := point.New(0, 0)
	q := point.New(1, 0)
	r := point.New(1, 1)
	fmt.Println(point.Orientation(p, q, r))

	// Output:
	// Counterclockwise
}
