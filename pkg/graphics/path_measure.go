package graphics

// cubicSegments is the number of line segments used per cubic curve.
const cubicSegments = 16

// Polyline is a flattened path contour.
// For closed contours the last point repeats the first.
type Polyline struct {
	Points []Offset
	Closed bool
}

// Length returns the summed segment length of the polyline.
func (pl Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(pl.Points); i++ {
		total += pl.Points[i].Sub(pl.Points[i-1]).Distance()
	}
	return total
}

// Flatten converts the path into polylines, approximating curves with
// line segments.
func (p *Path) Flatten() []Polyline {
	if p.IsEmpty() {
		return nil
	}
	var (
		out     []Polyline
		current *Polyline
		pen     Offset
		start   Offset
	)
	flush := func() {
		if current != nil && len(current.Points) > 1 {
			out = append(out, *current)
		}
		current = nil
	}
	appendPoint := func(pt Offset) {
		if current == nil {
			current = &Polyline{Points: []Offset{pen}}
		}
		last := current.Points[len(current.Points)-1]
		if floatEqual(last.X, pt.X) && floatEqual(last.Y, pt.Y) {
			return
		}
		current.Points = append(current.Points, pt)
	}

	for _, cmd := range p.Commands {
		switch cmd.Op {
		case PathOpMoveTo:
			flush()
			pen = Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			start = pen
			current = &Polyline{Points: []Offset{pen}}
		case PathOpLineTo:
			pt := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			appendPoint(pt)
			pen = pt
		case PathOpCubicTo:
			c1 := Offset{X: cmd.Args[0], Y: cmd.Args[1]}
			c2 := Offset{X: cmd.Args[2], Y: cmd.Args[3]}
			end := Offset{X: cmd.Args[4], Y: cmd.Args[5]}
			from := pen
			for i := 1; i <= cubicSegments; i++ {
				appendPoint(cubicPoint(from, c1, c2, end, float64(i)/cubicSegments))
			}
			pen = end
		case PathOpClose:
			appendPoint(start)
			if current != nil {
				current.Closed = true
			}
			flush()
			pen = start
		}
	}
	flush()
	return out
}

// Length returns the total arc length of all contours.
func (p *Path) Length() float64 {
	var total float64
	for _, pl := range p.Flatten() {
		total += pl.Length()
	}
	return total
}

// Trim returns the part of the path between fractions from and to of its
// total arc length, as open line contours. Fractions are clamped to [0, 1].
// A full-range trim of a closed contour stays closed.
func (p *Path) Trim(from, to float64) *Path {
	from, to = clamp01(from), clamp01(to)
	out := NewPath()
	if to <= from {
		return out
	}
	lines := p.Flatten()
	var total float64
	for _, pl := range lines {
		total += pl.Length()
	}
	if total == 0 {
		return out
	}
	startLen, endLen := from*total, to*total

	var walked float64
	for _, pl := range lines {
		full := from == 0 && to == 1
		started := false
		for i := 1; i < len(pl.Points); i++ {
			a, b := pl.Points[i-1], pl.Points[i]
			seg := b.Sub(a).Distance()
			segStart, segEnd := walked, walked+seg
			walked = segEnd
			if seg == 0 || segEnd < startLen || segStart > endLen {
				continue
			}
			t0 := max(0, (startLen-segStart)/seg)
			t1 := min(1, (endLen-segStart)/seg)
			p0 := lerpOffset(a, b, t0)
			p1 := lerpOffset(a, b, t1)
			if !started {
				out.MoveTo(p0.X, p0.Y)
				started = true
			}
			out.LineTo(p1.X, p1.Y)
		}
		if started && full && pl.Closed {
			out.Close()
		}
	}
	return out
}

func cubicPoint(p0, p1, p2, p3 Offset, t float64) Offset {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Offset{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

func lerpOffset(a, b Offset, t float64) Offset {
	return Offset{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
