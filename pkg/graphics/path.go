package graphics

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing arbitrary shapes.
//
// Build paths using MoveTo, LineTo, CubicTo, and Close methods.
// Use with Canvas.DrawPath to stroke or fill.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{x, y}})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Args: []float64{x, y}})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpCubicTo, Args: []float64{x1, y1, x2, y2, x3, y3}})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	out := &Path{Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: append([]float64(nil), cmd.Args...)}
	}
	return out
}

// kappa is the cubic control distance that approximates a quarter circle.
const kappa = 0.5522847498

// NewRRectPath builds the outline of rrect as a single closed contour.
//
// The contour starts at the midpoint of the left edge and runs clockwise
// (top edge first, in y-down coordinates). Trimming relies on this origin.
func NewRRectPath(rrect RRect) *Path {
	rect := rrect.Rect
	r := math.Min(math.Min(rrect.Radius.X, rect.Width()/2), rect.Height()/2)
	l, t, rt, b := rect.Left, rect.Top, rect.Right, rect.Bottom
	cy := rect.Center().Y
	k := kappa * r

	p := NewPath()
	p.MoveTo(l, cy)
	p.LineTo(l, t+r)
	p.CubicTo(l, t+r-k, l+r-k, t, l+r, t)
	p.LineTo(rt-r, t)
	p.CubicTo(rt-r+k, t, rt, t+r-k, rt, t+r)
	p.LineTo(rt, b-r)
	p.CubicTo(rt, b-r+k, rt-r+k, b, rt-r, b)
	p.LineTo(l+r, b)
	p.CubicTo(l+r-k, b, l, b-r+k, l, b-r)
	p.Close()
	return p
}

// NewCapsulePath builds the stadium outline inscribed in rect.
func NewCapsulePath(rect Rect) *Path {
	return NewRRectPath(Capsule(rect))
}

// NewCirclePath builds a closed circle contour starting at its leftmost point.
func NewCirclePath(center Offset, radius float64) *Path {
	return NewCapsulePath(RectFromCenter(center, Size{Width: radius * 2, Height: radius * 2}))
}
