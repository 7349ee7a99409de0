package graphics

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Scale scales the coordinate system by the given factors.
	// Negative factors mirror the axis.
	Scale(sx, sy float64)

	// ClipRRect restricts future drawing to the given rounded rectangle.
	ClipRRect(rrect RRect)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// Size returns the canvas size in logical units.
	Size() Size
}

// MirrorAbout mirrors subsequent drawing around center. Pass flipX and
// flipY to choose the axes. Callers must balance it with Save/Restore.
func MirrorAbout(canvas Canvas, center Offset, flipX, flipY bool) {
	sx, sy := 1.0, 1.0
	if flipX {
		sx = -1
	}
	if flipY {
		sy = -1
	}
	canvas.Translate(center.X, center.Y)
	canvas.Scale(sx, sy)
	canvas.Translate(-center.X, -center.Y)
}
