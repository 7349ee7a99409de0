// Package animation provides the frame-stepped animation primitives used by
// the neon toggle.
//
// # Core Components
//
//   - [AnimationController]: Drives transitions over time, managing progress
//     from 0.0 to 1.0 with a per-transition duration and easing curve.
//
//   - [LerpFloat64], [LerpSize]: Interpolate between two values using the
//     controller's current progress.
//
//   - Curves: Easing functions that transform linear progress into natural-feeling
//     motion. Includes [EaseInOut] and the spring-based [Bouncy] curve, which
//     overshoots its target before settling.
//
// # Basic Usage
//
//	c := animation.NewAnimationController()
//	c.AddListener(func() { repaint() })
//	c.Play(animation.Bouncy.SettleDuration(), animation.Bouncy.Curve())
//
//	// Once per frame, from the frame loop:
//	animation.StepTickers()
//
//	// When done:
//	c.Dispose()
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController].
// Most code should use AnimationController directly rather than Ticker.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by the host frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// StepTickers advances all active tickers.
// This should be called once per frame from the frame loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Make a copy to avoid holding lock during callbacks
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			elapsed := Now().Sub(ticker.start)
			ticker.callback(elapsed)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
