package raster

import "github.com/go-drift/neon/pkg/graphics"

// affine is a 2x3 transform:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type affine struct {
	a, b, c float64
	d, e, f float64
}

func identity() affine {
	return affine{a: 1, e: 1}
}

// then returns m followed by other applied in m's local space.
func (m affine) then(other affine) affine {
	return affine{
		a: m.a*other.a + m.b*other.d,
		b: m.a*other.b + m.b*other.e,
		c: m.a*other.c + m.b*other.f + m.c,
		d: m.d*other.a + m.e*other.d,
		e: m.d*other.b + m.e*other.e,
		f: m.d*other.c + m.e*other.f + m.f,
	}
}

func (m affine) apply(p graphics.Offset) graphics.Offset {
	return graphics.Offset{
		X: m.a*p.X + m.b*p.Y + m.c,
		Y: m.d*p.X + m.e*p.Y + m.f,
	}
}

// invert returns the inverse transform. A singular transform inverts to
// the identity.
func (m affine) invert() affine {
	det := m.a*m.e - m.b*m.d
	if det == 0 {
		return identity()
	}
	inv := 1 / det
	return affine{
		a: m.e * inv,
		b: -m.b * inv,
		c: (m.b*m.f - m.e*m.c) * inv,
		d: -m.d * inv,
		e: m.a * inv,
		f: (m.d*m.c - m.a*m.f) * inv,
	}
}
