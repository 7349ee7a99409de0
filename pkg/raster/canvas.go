// Package raster paints neon display lists into images.
//
// Canvas implements graphics.Canvas on an *image.RGBA. Paths are flattened
// and scan converted with golang.org/x/image/vector; strokes are expanded
// into polygons first. Everything is drawn with source-over compositing.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/go-drift/neon/pkg/graphics"
)

// discSegments is the polygon resolution of stroke joins and round caps.
const discSegments = 16

type canvasState struct {
	transform affine
	clip      *image.Alpha
}

// Canvas is a software graphics.Canvas. Logical units map one to one onto
// pixels before any transform.
type Canvas struct {
	img   *image.RGBA
	state canvasState
	stack []canvasState
	z     *vector.Rasterizer
}

// NewCanvas allocates a transparent canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		state: canvasState{transform: identity()},
		z:     vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image. It is shared, not copied.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(dx, dy float64) {
	c.state.transform = c.state.transform.then(affine{a: 1, c: dx, e: 1, f: dy})
}

func (c *Canvas) Scale(sx, sy float64) {
	c.state.transform = c.state.transform.then(affine{a: sx, e: sy})
}

// ClipRRect intersects the clip with rrect. The clip is an alpha mask so
// curved edges stay antialiased.
func (c *Canvas) ClipRRect(rrect graphics.RRect) {
	polys := c.devicePolylines(graphics.NewRRectPath(rrect))
	full := c.img.Bounds()
	mask := image.NewAlpha(full)
	cov, r := c.coverage(polys)
	if cov != nil {
		draw.Draw(mask, r, cov, image.Point{}, draw.Src)
	}
	if prev := c.state.clip; prev != nil {
		for i := range mask.Pix {
			mask.Pix[i] = uint8(uint32(mask.Pix[i]) * uint32(prev.Pix[i]) / 0xFF)
		}
	}
	c.state.clip = mask
}

// Clear replaces every pixel with color, ignoring transform and clip.
func (c *Canvas) Clear(col graphics.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	p := graphics.NewPath()
	p.MoveTo(rect.Left, rect.Top)
	p.LineTo(rect.Right, rect.Top)
	p.LineTo(rect.Right, rect.Bottom)
	p.LineTo(rect.Left, rect.Bottom)
	p.Close()
	c.DrawPath(p, paint)
}

func (c *Canvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	c.DrawPath(graphics.NewRRectPath(rrect), paint)
}

func (c *Canvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	if radius <= 0 {
		return
	}
	c.DrawPath(graphics.NewCirclePath(center, radius), paint)
}

// DrawPath fills or strokes path. Open contours are closed implicitly when
// filled.
func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	if path == nil || path.IsEmpty() {
		return
	}
	if paint.Gradient == nil && paint.Color.Alpha() == 0 {
		return
	}

	var polys [][]graphics.Offset
	if paint.Style == graphics.PaintStyleStroke {
		polys = c.strokePolygons(path, paint)
	} else {
		polys = c.devicePolylines(path)
	}
	cov, r := c.coverage(polys)
	if cov == nil {
		return
	}
	if clip := c.state.clip; clip != nil {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				i := cov.PixOffset(x-r.Min.X, y-r.Min.Y)
				cov.Pix[i] = uint8(uint32(cov.Pix[i]) * uint32(clip.AlphaAt(x, y).A) / 0xFF)
			}
		}
	}
	draw.DrawMask(c.img, r, c.source(paint), r.Min, cov, image.Point{}, draw.Over)
}

func (c *Canvas) Size() graphics.Size {
	b := c.img.Bounds()
	return graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

func (c *Canvas) source(paint graphics.Paint) image.Image {
	if paint.Gradient != nil {
		return &gradientImage{gradient: paint.Gradient, inverse: c.state.transform.invert()}
	}
	return image.NewUniform(paint.Color.NRGBA())
}

// devicePolylines flattens path and maps every point to device space.
func (c *Canvas) devicePolylines(path *graphics.Path) [][]graphics.Offset {
	var out [][]graphics.Offset
	for _, pl := range path.Flatten() {
		if len(pl.Points) < 2 {
			continue
		}
		pts := make([]graphics.Offset, len(pl.Points))
		for i, p := range pl.Points {
			pts[i] = c.state.transform.apply(p)
		}
		out = append(out, pts)
	}
	return out
}

// strokePolygons expands each contour into one quad per segment plus a
// disc at every joint. Round caps add discs at open ends. Geometry is built
// in local space so the stroke width follows the transform.
func (c *Canvas) strokePolygons(path *graphics.Path, paint graphics.Paint) [][]graphics.Offset {
	half := paint.StrokeWidth / 2
	if half <= 0 {
		return nil
	}
	m := c.state.transform
	var out [][]graphics.Offset
	for _, pl := range path.Flatten() {
		pts := pl.Points
		for i := 1; i < len(pts); i++ {
			p0, p1 := pts[i-1], pts[i]
			d := p1.Sub(p0)
			length := d.Distance()
			if length == 0 {
				continue
			}
			n := graphics.Offset{X: -d.Y / length * half, Y: d.X / length * half}
			out = append(out, []graphics.Offset{
				m.apply(p0.Add(n)),
				m.apply(p1.Add(n)),
				m.apply(p1.Sub(n)),
				m.apply(p0.Sub(n)),
			})
		}
		for i, p := range pts {
			end := i == 0 || i == len(pts)-1
			if end && !pl.Closed && paint.StrokeCap != graphics.CapRound {
				continue
			}
			out = append(out, disc(m, p, half))
		}
	}
	return out
}

func disc(m affine, center graphics.Offset, radius float64) []graphics.Offset {
	pts := make([]graphics.Offset, discSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / discSegments
		pts[i] = m.apply(graphics.Offset{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	return pts
}

// coverage scan converts polys into an alpha mask covering their clamped
// bounding box. It returns nil when nothing lands on the canvas.
func (c *Canvas) coverage(polys [][]graphics.Offset) (*image.Alpha, image.Rectangle) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	r := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return nil, r
	}

	c.z.Reset(r.Dx(), r.Dy())
	c.z.DrawOp = draw.Src
	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		// Overlapping pieces must share a winding or they cancel out.
		if signedArea(poly) < 0 {
			poly = reversed(poly)
		}
		c.z.MoveTo(float32(poly[0].X-ox), float32(poly[0].Y-oy))
		for _, p := range poly[1:] {
			c.z.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		c.z.ClosePath()
	}
	mask := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	c.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask, r
}

func signedArea(poly []graphics.Offset) float64 {
	var sum float64
	for i := range poly {
		j := (i + 1) % len(poly)
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return sum / 2
}

func reversed(poly []graphics.Offset) []graphics.Offset {
	out := make([]graphics.Offset, len(poly))
	for i, p := range poly {
		out[len(poly)-1-i] = p
	}
	return out
}

// gradientImage samples a linear gradient at device pixel centers by
// mapping them back into the space the gradient was defined in.
type gradientImage struct {
	gradient *graphics.Gradient
	inverse  affine
}

func (g *gradientImage) ColorModel() color.Model { return color.NRGBAModel }

func (g *gradientImage) Bounds() image.Rectangle {
	return image.Rect(-1<<20, -1<<20, 1<<20, 1<<20)
}

func (g *gradientImage) At(x, y int) color.Color {
	local := g.inverse.apply(graphics.Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5})
	return g.gradient.ColorAt(g.gradient.Project(local)).NRGBA()
}
