// Command gridview demonstrates the grid containers by rendering an
// occupancy snapshot to a PNG image.
//
// It fills a Map2D with colored cells (neighbor rings around the center
// and the integer cells of a triangle), then rasterizes one pixel per
// cell and scales the result up with nearest-neighbor filtering.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/grid"
)

func main() {
	var (
		size    = flag.Int("size", 32, "grid size in cells per axis")
		scale   = flag.Int("scale", 16, "pixels per cell in the output image")
		radius  = flag.Float64("radius", 4, "neighbor ring radius around the center")
		output  = flag.String("output", "grid.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		grid.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cells := buildCells(*size, *radius)

	img := image.NewNRGBA(image.Rect(0, 0, *size, *size))
	for p, c := range cells.All() {
		img.SetNRGBA(int(p.X), int(p.Y), c)
	}

	px := *size * *scale
	out := image.NewNRGBA(image.Rect(0, 0, px, px))
	draw.NearestNeighbor.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, out); err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}

	log.Printf("Snapshot saved to %s (%d cells)", *output, cells.Len())
}

// buildCells returns a cell-to-color map for a size x size grid: blue
// neighbor rings around the center and a red triangle in the lower-left
// region, triangle cells drawn last so they win overlaps.
func buildCells(size int, radius float64) *grid.Map2D[color.NRGBA] {
	var (
		ringColor     = color.NRGBA{R: 0x33, G: 0x66, B: 0xcc, A: 0xff}
		triangleColor = color.NRGBA{R: 0xcc, G: 0x44, B: 0x33, A: 0xff}
	)

	cells := grid.NewMap2D[color.NRGBA]()

	center := grid.V(float64(size)/2, float64(size)/2)
	rings := grid.NewSet2D()
	for _, p := range grid.NearSet(grid.Rounded(0, center.X, center.Y), radius) {
		rings.Add(p)
	}
	for p := range rings.Keys() {
		cells.SetAt(p, ringColor)
	}

	n := float64(size)
	p0 := grid.V(1, n-2)
	p1 := grid.V(n/2, n/2)
	p2 := grid.V(n-2, n-2)
	for y := 0.0; y < n; y++ {
		for x := 0.0; x < n; x++ {
			if grid.InTriangle(x, y, p0, p1, p2) {
				cells.Set(x, y, triangleColor)
			}
		}
	}

	return cells
}
