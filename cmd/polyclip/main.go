// Command polyclip runs a Boolean set operation (intersection, union, or difference)
// between two polygons read as JSON and writes the result, also as JSON, to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cortinico/polyclip2d/clip"
	"github.com/cortinico/polyclip2d/options"
	"github.com/cortinico/polyclip2d/point"
	"github.com/cortinico/polyclip2d/ring"
)

func main() {
	cmd := &cli.Command{
		Name:      "polyclip",
		Usage:     "Computes the intersection, union, or difference of two polygons",
		UsageText: "polyclip --op <intersection|union|difference> --a <file|-> --b <file|->",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "op",
				Usage:    "Operation to perform: intersection, union, or difference",
				OnlyOnce: true,
				Required: true,
			},
			&cli.StringFlag{
				Name:     "a",
				Usage:    "Path to the first polygon's JSON, or - for stdin",
				OnlyOnce: true,
				Required: true,
			},
			&cli.StringFlag{
				Name:     "b",
				Usage:    "Path to the second polygon's JSON, or - for stdin",
				OnlyOnce: true,
				Required: true,
			},
			&cli.FloatFlag{
				Name:     "epsilon",
				Usage:    "Tolerance for floating-point coordinate comparisons",
				OnlyOnce: true,
				Value:    0,
			},
		},
		HideVersion: true,
		Action:      run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// jsonPolygon is the on-disk representation of a polygon: one exterior ring and zero or
// more hole rings, each a list of points in order (the closing point is implicit).
type jsonPolygon struct {
	Exterior []point.Point   `json:"exterior"`
	Holes    [][]point.Point `json:"holes,omitempty"`
}

func readPolygon(path string) (ring.Polygon, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return ring.Polygon{}, fmt.Errorf("polyclip: opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var jp jsonPolygon
	if err := json.NewDecoder(r).Decode(&jp); err != nil {
		return ring.Polygon{}, fmt.Errorf("polyclip: decoding %s: %w", path, err)
	}

	exterior, err := ring.NewRing(jp.Exterior)
	if err != nil {
		return ring.Polygon{}, fmt.Errorf("polyclip: %s exterior: %w", path, err)
	}

	holes := make([]ring.Ring, len(jp.Holes))
	for i, h := range jp.Holes {
		hr, err := ring.NewRing(h)
		if err != nil {
			return ring.Polygon{}, fmt.Errorf("polyclip: %s hole %d: %w", path, i, err)
		}
		holes[i] = hr
	}

	return ring.NewPolygon(exterior, holes...), nil
}

func writeResult(w io.Writer, polygons []ring.Polygon) error {
	out := make([]jsonPolygon, len(polygons))
	for i, p := range polygons {
		holes := make([][]point.Point, len(p.Holes()))
		for j, h := range p.Holes() {
			holes[j] = h.Vertices()
		}
		out[i] = jsonPolygon{Exterior: p.Exterior().Vertices(), Holes: holes}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func run(_ context.Context, cmd *cli.Command) error {
	a, err := readPolygon(cmd.String("a"))
	if err != nil {
		return err
	}
	b, err := readPolygon(cmd.String("b"))
	if err != nil {
		return err
	}

	var opts []options.GeometryOptionsFunc
	if epsilon := cmd.Float("epsilon"); epsilon > 0 {
		opts = append(opts, options.WithEpsilon(epsilon))
	}

	var result []ring.Polygon
	switch cmd.String("op") {
	case "intersection":
		result, err = clip.Intersection(clip.Wrap(a), clip.Wrap(b), opts...)
	case "union":
		result, err = clip.Union(clip.Wrap(a), clip.Wrap(b), opts...)
	case "difference":
		result, err = clip.Difference(clip.Wrap(a), clip.Wrap(b), opts...)
	default:
		return fmt.Errorf("polyclip: unknown operation %q (want intersection, union, or difference)", cmd.String("op"))
	}
	if err != nil {
		return fmt.Errorf("polyclip: %w", err)
	}

	return writeResult(os.Stdout, result)
}
