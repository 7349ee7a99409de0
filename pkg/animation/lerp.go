package animation

import "github.com/go-drift/neon/pkg/graphics"

// LerpFloat64 linearly interpolates between a and b. t may leave [0, 1]
// for overshooting curves.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpSize linearly interpolates between two Size values.
func LerpSize(a, b graphics.Size, t float64) graphics.Size {
	return graphics.Size{
		Width:  LerpFloat64(a.Width, b.Width, t),
		Height: LerpFloat64(a.Height, b.Height, t),
	}
}
