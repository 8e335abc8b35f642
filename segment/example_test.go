package segment_test

import (
	"fmt"

	"github.com/cortinico/polyclip2d/point"
	"github.com/cortinico/polyclip2d/segment"
)

func ExampleLineSegment_Intersection() {
	a := segment.New(0, 0, 4, 4)
	b := segment.New(0, 4, 4, 0)

	result := a.Intersection(b)
	fmt.Println(result.Type)
	fmt.Println(result.Point)

	// Output:
	// IntersectionPoint
	// (2,2)
}

func ExampleIntersect() {
	// The primitive reports where the infinite lines meet without clipping to either
	// segment, so alpha can land outside [0,1].
	crossing := segment.Intersect(
		point.New(0, 0), point.New(1, 0),
		point.New(2, -1), point.New(2, 1),
	)
	fmt.Println(crossing.HasPoint, crossing.Alpha)

	// Output:
	// true 2
}
