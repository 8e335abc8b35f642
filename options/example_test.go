package options_test

import (
	"fmt"

	"github.com/cortinico/polyclip2d/options"
	"github.com/cortinico/polyclip2d/point"
)

func ExampleWithEpsilon() {
	p := point.New(1, 1)
	q := point.New(1.0000001, 1.0000001)
	epsilon := 1e-6

	fmt.Printf(
		"Is point p %s equal to point q %s without epsilon: %t\n",
		p,
		q,
		p.Eq(q),
	)

	fmt.Printf(
		"Is point p %s equal to point q %s with an epsilon of %.0e: %t\n",
		p,
		q,
		epsilon,
		p.Eq(q, options.WithEpsilon(epsilon)),
	)

	// Output:
	// Is point p (1,1) equal to point q (1.0000001,1.0000001) without epsilon: false
	// Is point p (1,1) equal to point q (1.0000001,1.0000001) with an epsilon of 1e-06: true
}
