package neon

import "github.com/go-drift/neon/pkg/graphics"

// glowPasses are the colored halos drawn behind each neon border stroke.
var glowPasses = []struct {
	dx    float64
	color graphics.Color
}{
	{dx: -1, color: NeonGreen.WithAlpha(0.4)},
	{dx: 1, color: NeonCyan.WithAlpha(0.4)},
}

// neonLayers are the two mirrored halves of each neon element: the first
// flipped on both axes and nudged down, the second flipped horizontally
// and nudged up.
var neonLayers = []struct {
	dy    float64
	flipY bool
}{
	{dy: NeonSplit, flipY: true},
	{dy: -NeonSplit, flipY: false},
}

// PaintAppearance draws the control for appearance a. The canvas origin is
// the top-left corner of the control's frame (NeonBorderSize).
func PaintAppearance(canvas graphics.Canvas, a Appearance) {
	frame := graphics.RectFromLTWH(0, 0, NeonBorderSize.Width, NeonBorderSize.Height)
	center := frame.Center()
	knob := a.KnobRect(NeonBorderSize)
	track := graphics.Capsule(graphics.RectFromCenter(center, TrackSize))

	canvas.Save()
	canvas.ClipRRect(track)
	canvas.DrawRRect(track, graphics.FillPaint(TrackColor))
	paintKnobBase(canvas, knob)
	if a.Trim > 0 {
		paintKnobNeon(canvas, knob, a.Trim)
	}
	canvas.Restore()

	paintBorder(canvas, graphics.Capsule(graphics.RectFromCenter(center, BorderSize)))
	paintKnobUpper(canvas, knob)
	if a.Trim > 0 {
		paintNeonBorder(canvas, frame, a.Trim)
	}
	paintLamp(canvas, a.Lamp)
}

func paintKnobBase(canvas graphics.Canvas, knob graphics.Rect) {
	base := knob.Translate(KnobBaseNudge, 0)
	canvas.DrawRRect(graphics.Capsule(base.Translate(KnobShadowOffset.X, KnobShadowOffset.Y)), graphics.FillPaint(ShadowColor))
	canvas.DrawRRect(graphics.Capsule(base), graphics.FillPaint(KnobColor))
}

func paintKnobNeon(canvas graphics.Canvas, knob graphics.Rect, trim float64) {
	center := knob.Center()
	for i, layer := range neonLayers {
		rect := knob.Translate(0, layer.dy)
		path := graphics.NewCapsulePath(rect).Trim(0, trim)
		if path.IsEmpty() {
			continue
		}
		// Only the upper half casts a shadow.
		if i == 1 {
			canvas.Save()
			canvas.Translate(KnobShadowOffset.X, KnobShadowOffset.Y)
			graphics.MirrorAbout(canvas, center, true, layer.flipY)
			canvas.DrawPath(path, graphics.FillPaint(ShadowColor))
			canvas.Restore()
		}
		fill := graphics.FillPaint(graphics.ColorWhite)
		fill.Gradient = NeonGradient(rect)
		canvas.Save()
		graphics.MirrorAbout(canvas, center, true, layer.flipY)
		canvas.DrawPath(path, fill)
		canvas.Restore()
	}
}

func paintBorder(canvas graphics.Canvas, border graphics.RRect) {
	for _, pass := range []struct {
		dx, dy float64
		color  graphics.Color
	}{
		{dx: 2, dy: 2, color: graphics.ColorBlack.WithAlpha(0.6)},
		{dx: -1, dy: -1, color: graphics.ColorWhite.WithAlpha(0.2)},
	} {
		canvas.Save()
		canvas.Translate(pass.dx, pass.dy)
		canvas.DrawRRect(border, graphics.StrokePaint(pass.color, BorderStrokeWidth))
		canvas.Restore()
	}
	canvas.DrawRRect(border, graphics.StrokePaint(TrackColor, BorderStrokeWidth))
}

func paintKnobUpper(canvas graphics.Canvas, knob graphics.Rect) {
	upper := graphics.Capsule(knob.Translate(KnobBaseNudge, 0))
	canvas.DrawRRect(upper, graphics.FillPaint(KnobColor))

	// Inner bevel: light from the top-left, shade toward the bottom-right.
	canvas.Save()
	canvas.ClipRRect(upper)
	canvas.DrawRRect(graphics.RRect{Rect: upper.Rect.Translate(0.7, 0.7), Radius: upper.Radius},
		graphics.StrokePaint(graphics.ColorWhite.WithAlpha(0.5), 1))
	canvas.DrawRRect(graphics.RRect{Rect: upper.Rect.Translate(-0.7, -0.7), Radius: upper.Radius},
		graphics.StrokePaint(graphics.ColorBlack.WithAlpha(0.8), 1))
	canvas.Restore()
}

func paintNeonBorder(canvas graphics.Canvas, frame graphics.Rect, trim float64) {
	center := frame.Center()
	path := graphics.NewCapsulePath(frame).Trim(0, trim)
	if path.IsEmpty() {
		return
	}
	stroke := graphics.StrokePaint(graphics.ColorWhite, NeonBorderStrokeWidth)
	stroke.Gradient = NeonGradient(frame)

	for _, layer := range neonLayers {
		for _, glow := range glowPasses {
			canvas.Save()
			canvas.Translate(glow.dx, layer.dy)
			graphics.MirrorAbout(canvas, center, true, layer.flipY)
			canvas.DrawPath(path, graphics.StrokePaint(glow.color, NeonBorderStrokeWidth))
			canvas.Restore()
		}
		canvas.Save()
		canvas.Translate(0, layer.dy)
		graphics.MirrorAbout(canvas, center, true, layer.flipY)
		canvas.DrawPath(path, stroke)
		canvas.Restore()
	}
}

func paintLamp(canvas graphics.Canvas, color graphics.Color) {
	r := LampDiameter / 2
	center := graphics.Offset{X: r, Y: r}
	canvas.DrawCircle(center, r+1, graphics.FillPaint(color.WithAlpha(0.35)))
	canvas.DrawCircle(center, r, graphics.FillPaint(color))
	canvas.DrawCircle(graphics.Offset{X: r, Y: r - 0.5}, r/2, graphics.FillPaint(graphics.ColorWhite.WithAlpha(0.3)))
}
