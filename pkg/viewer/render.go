package viewer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/philipparndt/goslice/pkg/geometry"
	"github.com/philipparndt/goslice/pkg/mesh"
)

// ErrNothingToRender is returned when no layer has a triangle
var ErrNothingToRender = errors.New("nothing to render")

// Palette used by the CLI previews
var (
	Background = color.RGBA{40, 40, 40, 255}
	KeptColor  = color.RGBA{200, 170, 120, 255}
	OtherColor = color.RGBA{110, 150, 200, 255}
	EdgeColor  = color.RGBA{20, 20, 20, 255}
)

// Layer is one mesh drawn in a single base color
type Layer struct {
	Mesh  *mesh.Mesh
	Color color.RGBA
}

// Options controls the output image
type Options struct {
	Width      int
	Height     int
	Background color.RGBA
	// Wireframe draws triangle edges on top of the shaded faces.
	Wireframe bool
	// Supersample renders at this multiple of the size and scales down,
	// smoothing the edges. Values below 2 render directly.
	Supersample int
}

// DefaultOptions returns a 800x600 shaded preview
func DefaultOptions() Options {
	return Options{Width: 800, Height: 600, Background: Background, Supersample: 2}
}

// Frame returns a camera that sees every layer
func Frame(layers ...Layer) *Camera {
	bbox := geometry.NewBoundingBox()
	for _, l := range layers {
		if l.Mesh == nil {
			continue
		}
		for _, v := range l.Mesh.Vertices {
			bbox.Extend(v)
		}
	}
	if bbox.Empty() {
		bbox.Extend(geometry.Vector3{})
	}
	return NewCamera(bbox)
}

// Render draws the layers with a headlight from the camera. A nil camera
// frames all layers.
func Render(cam *Camera, opts Options, layers ...Layer) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}

	total := 0
	for _, l := range layers {
		if l.Mesh != nil {
			total += l.Mesh.TriangleCount()
		}
	}
	if total == 0 {
		return nil, ErrNothingToRender
	}
	if cam == nil {
		cam = Frame(layers...)
	}

	scale := max(opts.Supersample, 1)
	width, height := opts.Width*scale, opts.Height*scale

	vp := cam.Viewport(width, height)
	light := cam.Position().Sub(cam.Target).Normalize()
	r := newRaster(width, height, opts.Background)

	drawn, clipped := 0, 0
	for _, l := range layers {
		if l.Mesh == nil {
			continue
		}
		for i := range l.Mesh.Triangles {
			tri := l.Mesh.Triangle(i)

			var pts [3]point
			visible := true
			for k, v := range tri.Vertices() {
				x, y, z, ok := vp.Project(v)
				if !ok {
					visible = false
					break
				}
				pts[k] = point{x, y, z}
			}
			if !visible {
				clipped++
				continue
			}

			col := shade(l.Color, math.Abs(tri.Normal.Dot(light)))
			if r.fill(pts[0], pts[1], pts[2], col) > 0 {
				drawn++
			}
			if opts.Wireframe {
				r.line(pts[0], pts[1], EdgeColor)
				r.line(pts[1], pts[2], EdgeColor)
				r.line(pts[2], pts[0], EdgeColor)
			}
		}
	}

	slog.Debug("rendered preview",
		"triangles", total, "visible", drawn, "behind_camera", clipped,
		"width", width, "height", height)

	if scale == 1 {
		return r.img, nil
	}
	return transform.Resize(r.img, opts.Width, opts.Height, transform.Linear), nil
}

// shade scales a base color by 0.3 ambient plus 0.7 diffuse
func shade(c color.RGBA, diffuse float64) color.RGBA {
	f := 0.3 + 0.7*math.Min(1, diffuse)
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// WritePNG saves img to filename
func WritePNG(filename string, img image.Image) error {
	if err := imgio.Save(filename, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
