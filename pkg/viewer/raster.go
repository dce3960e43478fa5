package viewer

import (
	"image"
	"image/color"
	"math"
)

// point is a projected vertex: pixel position plus view depth
type point struct {
	x, y, z float64
}

// raster is an image with a depth buffer; smaller depth is closer
type raster struct {
	img    *image.RGBA
	zbuf   []float64
	width  int
	height int
}

func newRaster(width, height int, background color.RGBA) *raster {
	r := &raster{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		zbuf:   make([]float64, width*height),
		width:  width,
		height: height,
	}
	for i := range r.zbuf {
		r.zbuf[i] = math.Inf(1)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.img.SetRGBA(x, y, background)
		}
	}
	return r
}

// fill draws a triangle with depth testing. Pixel centers inside the
// triangle are covered regardless of winding.
func (r *raster) fill(a, b, c point, col color.RGBA) int {
	area := edge(a, b, c.x, c.y)
	if area == 0 {
		return 0
	}

	minX := clamp(int(math.Floor(math.Min(a.x, math.Min(b.x, c.x)))), 0, r.width-1)
	maxX := clamp(int(math.Ceil(math.Max(a.x, math.Max(b.x, c.x)))), 0, r.width-1)
	minY := clamp(int(math.Floor(math.Min(a.y, math.Min(b.y, c.y)))), 0, r.height-1)
	maxY := clamp(int(math.Ceil(math.Max(a.y, math.Max(b.y, c.y)))), 0, r.height-1)

	drawn := 0
	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w0 := edge(b, c, px, py) / area
			w1 := edge(c, a, px, py) / area
			w2 := edge(a, b, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*a.z + w1*b.z + w2*c.z
			idx := y*r.width + x
			if z < r.zbuf[idx] {
				r.zbuf[idx] = z
				r.img.SetRGBA(x, y, col)
				drawn++
			}
		}
	}
	return drawn
}

// line draws a line using Bresenham's algorithm, ignoring depth
func (r *raster) line(a, b point, col color.RGBA) {
	x1, y1 := int(a.x), int(a.y)
	x2, y2 := int(b.x), int(b.y)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		if x1 >= 0 && x1 < r.width && y1 >= 0 && y1 < r.height {
			r.img.SetRGBA(x1, y1, col)
		}
		if x1 == x2 && y1 == y2 {
			return
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// edge is twice the signed area of (a, b, p)
func edge(a, b point, px, py float64) float64 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
