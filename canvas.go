package fab

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas is the rasterization capability a Button draws through. It only has
// to fill and stroke circles, clip to a circle and place an image; everything
// else (which layers, in what order, when to redraw) is decided by the
// Button.
type Canvas interface {
	// DrawCircle draws a circle with the given paint, including the paint's
	// shadow layer when one is attached.
	DrawCircle(cx, cy, radius float64, p *Paint)
	// DrawImage draws img scaled into bounds.
	DrawImage(img *ebiten.Image, bounds Rect)
	// Save pushes the current clip.
	Save()
	// ClipCircle intersects the current clip with a circle.
	ClipCircle(cx, cy, radius float64)
	// Restore pops the clip pushed by the matching Save.
	Restore()
}

// OpKind identifies a recorded canvas operation.
type OpKind uint8

const (
	OpSave OpKind = iota
	OpRestore
	OpClipCircle
	OpCircle
	OpImage
)

func (k OpKind) String() string {
	switch k {
	case OpSave:
		return "save"
	case OpRestore:
		return "restore"
	case OpClipCircle:
		return "clipCircle"
	case OpCircle:
		return "circle"
	case OpImage:
		return "image"
	default:
		return "unknown"
	}
}

// DisplayOp is one recorded canvas operation. Paint is a copy taken at the
// time of the call.
type DisplayOp struct {
	Kind   OpKind
	X, Y   float64
	Radius float64
	Paint  Paint
	Image  *ebiten.Image
	Bounds Rect
}

// RecordingCanvas records operations instead of rasterizing them. Used by
// tests and by the debug dump of a frame.
type RecordingCanvas struct {
	Ops []DisplayOp
}

// NewRecordingCanvas returns an empty RecordingCanvas.
func NewRecordingCanvas() *RecordingCanvas {
	return &RecordingCanvas{}
}

func (c *RecordingCanvas) DrawCircle(cx, cy, radius float64, p *Paint) {
	c.Ops = append(c.Ops, DisplayOp{Kind: OpCircle, X: cx, Y: cy, Radius: radius, Paint: *p})
}

func (c *RecordingCanvas) DrawImage(img *ebiten.Image, bounds Rect) {
	c.Ops = append(c.Ops, DisplayOp{Kind: OpImage, Image: img, Bounds: bounds})
}

func (c *RecordingCanvas) Save() {
	c.Ops = append(c.Ops, DisplayOp{Kind: OpSave})
}

func (c *RecordingCanvas) ClipCircle(cx, cy, radius float64) {
	c.Ops = append(c.Ops, DisplayOp{Kind: OpClipCircle, X: cx, Y: cy, Radius: radius})
}

func (c *RecordingCanvas) Restore() {
	c.Ops = append(c.Ops, DisplayOp{Kind: OpRestore})
}

// Reset drops every recorded operation.
func (c *RecordingCanvas) Reset() {
	c.Ops = c.Ops[:0]
}

// Kinds returns the kinds of the recorded operations in order.
func (c *RecordingCanvas) Kinds() []OpKind {
	kinds := make([]OpKind, len(c.Ops))
	for i, op := range c.Ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Circles returns the recorded circle operations in order.
func (c *RecordingCanvas) Circles() []DisplayOp {
	var out []DisplayOp
	for _, op := range c.Ops {
		if op.Kind == OpCircle {
			out = append(out, op)
		}
	}
	return out
}

// String renders the display list one operation per line.
func (c *RecordingCanvas) String() string {
	var b strings.Builder
	for _, op := range c.Ops {
		switch op.Kind {
		case OpCircle:
			style := "fill"
			if op.Paint.Style == PaintStroke {
				style = fmt.Sprintf("stroke(%.2f)", op.Paint.StrokeWidth)
			}
			fmt.Fprintf(&b, "circle %.2f,%.2f r=%.2f %s #%08X", op.X, op.Y, op.Radius, style, op.Paint.Color.ARGB())
			if op.Paint.HasShadowLayer() {
				fmt.Fprintf(&b, " shadow=%.2f", op.Paint.Shadow.Radius)
			}
		case OpClipCircle:
			fmt.Fprintf(&b, "clipCircle %.2f,%.2f r=%.2f", op.X, op.Y, op.Radius)
		case OpImage:
			fmt.Fprintf(&b, "image %.0f,%.0f %.0fx%.0f", op.Bounds.X, op.Bounds.Y, op.Bounds.Width, op.Bounds.Height)
		default:
			b.WriteString(op.Kind.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
