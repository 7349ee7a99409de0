package animation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// springSamples is the resolution of the precomputed spring response table.
const springSamples = 240

// SpringDescription describes a damped spring by its perceptual response
// (the period of the undamped oscillation) and its bounce.
//
// Bounce 0 is critically damped; values toward 1 oscillate longer.
type SpringDescription struct {
	Response time.Duration
	Bounce   float64
}

// Bouncy is a spring with a brief, visible overshoot before it settles.
var Bouncy = SpringDescription{Response: 500 * time.Millisecond, Bounce: 0.3}

// DampingRatio returns the spring's damping ratio derived from Bounce.
func (s SpringDescription) DampingRatio() float64 {
	return 1 - clampUnit(s.Bounce)
}

// AngularFrequency returns the undamped angular frequency in radians per second.
func (s SpringDescription) AngularFrequency() float64 {
	seconds := s.Response.Seconds()
	if seconds <= 0 {
		return 0
	}
	return 2 * math.Pi / seconds
}

// SettleDuration is the time after which the spring is treated as at rest.
// The controller snaps to the target at the end of this window.
func (s SpringDescription) SettleDuration() time.Duration {
	return s.Response * 3 / 2
}

// Curve returns an easing function tracing the spring's step response from
// 0 to 1 over SettleDuration. Intermediate values may exceed 1.
func (s SpringDescription) Curve() func(float64) float64 {
	omega := s.AngularFrequency()
	if omega == 0 {
		return LinearCurve
	}
	dt := s.SettleDuration().Seconds() / springSamples
	spring := harmonica.NewSpring(dt, omega, s.DampingRatio())

	table := make([]float64, springSamples+1)
	var pos, vel float64
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		table[i] = pos
	}
	table[springSamples] = 1

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		f := t * springSamples
		i := int(f)
		frac := f - float64(i)
		return table[i] + (table[i+1]-table[i])*frac
	}
}
