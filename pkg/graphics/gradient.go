package graphics

import "math"

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// Gradient is a linear gradient between two points in the coordinate space
// of the shape it paints.
type Gradient struct {
	Start Offset
	End   Offset
	Stops []GradientStop
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(start, end Offset, stops []GradientStop) *Gradient {
	return &Gradient{
		Start: start,
		End:   end,
		Stops: cloneGradientStops(stops),
	}
}

// HorizontalGradient spans rect from its leading (left) edge to its
// trailing (right) edge through the vertical center.
func HorizontalGradient(rect Rect, stops []GradientStop) *Gradient {
	cy := rect.Center().Y
	return NewLinearGradient(Offset{X: rect.Left, Y: cy}, Offset{X: rect.Right, Y: cy}, stops)
}

// IsValid reports whether the gradient has usable stops.
func (g *Gradient) IsValid() bool {
	if g == nil || len(g.Stops) < 2 {
		return false
	}
	for _, stop := range g.Stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return true
}

// Project returns the gradient parameter for point p: 0 at Start, 1 at End,
// clamped to [0, 1].
func (g *Gradient) Project(p Offset) float64 {
	d := g.End.Sub(g.Start)
	lengthSq := d.X*d.X + d.Y*d.Y
	if lengthSq == 0 {
		return 0
	}
	t := ((p.X-g.Start.X)*d.X + (p.Y-g.Start.Y)*d.Y) / lengthSq
	return math.Max(0, math.Min(1, t))
}

// ColorAt samples the gradient at parameter t in [0, 1].
func (g *Gradient) ColorAt(t float64) Color {
	if !g.IsValid() {
		if g != nil && len(g.Stops) == 1 {
			return g.Stops[0].Color
		}
		return ColorTransparent
	}
	stops := g.Stops
	if t <= stops[0].Position {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		prev, next := stops[i-1], stops[i]
		if t <= next.Position {
			span := next.Position - prev.Position
			if span <= 0 {
				return next.Color
			}
			return LerpColor(prev.Color, next.Color, (t-prev.Position)/span)
		}
	}
	return stops[len(stops)-1].Color
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}
