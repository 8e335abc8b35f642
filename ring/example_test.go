package ring_test

import (
	"fmt"

	"github.com/cortinico/polyclip2d/point"
	"github.com/cortinico/polyclip2d/ring"
)

func ExamplePointInRing() {
	square := ring.MustNewRing([]point.Point{
		point.New(0, 0), point.New(4, 0), point.New(4, 4), point.New(0, 4),
	})

	fmt.Println(ring.PointInRing(point.New(2, 2), square))
	fmt.Println(ring.PointInRing(point.New(10, 10), square))
	fmt.Println(ring.PointInRing(point.New(0, 2), square))

	// Output:
	// In
	// Out
	// On
}

func ExampleRing_Area() {
	square := ring.MustNewRing([]point.Point{
		point.New(0, 0), point.New(4, 0), point.New(4, 4), point.New(0, 4),
	})
	fmt.Println(square.Area())

	// Output:
	// 16
}
