package clip_test

import (
	"fmt"

	"github.com/cortinico/polyclip2d/clip"
	"github.com/cortinico/polyclip2d/point"
	"github.com/cortinico/polyclip2d/ring"
)

func ExampleIntersection() {
	p := clip.Wrap(ring.NewPolygon(ring.MustNewRing([]point.Point{
		point.New(0, 0), point.New(5, 5), point.New(10, 0), point.New(5, -5),
	})))
	q := clip.Wrap(ring.NewPolygon(ring.MustNewRing([]point.Point{
		point.New(3, 0), point.New(8, 5), point.New(13, 0), point.New(8, -5),
	})))

	result, err := clip.Intersection(p, q)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(result))
	fmt.Printf("%.1f\n", result[0].Exterior().Area())

	// Output:
	// 1
	// 24.5
}
