package testing

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-drift/neon/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) Scale(sx, sy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "scale",
		Params: sortedMap("sx", round2(sx), "sy", round2(sy)),
	})
}

func (c *serializingCanvas) ClipRRect(rrect graphics.RRect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRRect",
		Params: sortedMap("rect", serializeRect(rrect.Rect), "radius", round2(rrect.Radius.X)),
	})
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: withPaint(sortedMap("rect", serializeRect(rect)), paint),
	})
}

func (c *serializingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRect",
		Params: withPaint(sortedMap(
			"rect", serializeRect(rrect.Rect),
			"radius", round2(rrect.Radius.X),
		), paint),
	})
}

func (c *serializingCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawCircle",
		Params: withPaint(sortedMap(
			"cx", round2(center.X),
			"cy", round2(center.Y),
			"radius", round2(radius),
		), paint),
	})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawPath",
		Params: withPaint(sortedMap("length", round2(path.Length())), paint),
	})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// SerializeDisplayList replays a DisplayList through the serializing canvas.
func SerializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func withPaint(params map[string]any, paint graphics.Paint) map[string]any {
	params["color"] = serializeColor(paint.Color)
	if paint.Style == graphics.PaintStyleStroke {
		params["stroke"] = round2(paint.StrokeWidth)
	}
	if paint.Gradient != nil {
		stops := make([]string, len(paint.Gradient.Stops))
		for i, s := range paint.Gradient.Stops {
			stops[i] = serializeColor(s.Color)
		}
		params["gradient"] = stops
	}
	return params
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
// encoding/json writes map keys in sorted order, so snapshots are stable.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CountOps returns how many ops have the given name.
func CountOps(ops []DisplayOp, name string) int {
	n := 0
	for _, op := range ops {
		if op.Op == name {
			n++
		}
	}
	return n
}

// Describe renders one op as "name key=value ..." with sorted keys.
func (op DisplayOp) Describe() string {
	s := op.Op
	for _, k := range sortedKeys(op.Params) {
		s += fmt.Sprintf(" %s=%v", k, op.Params[k])
	}
	return s
}
