package fab

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func assertKinds(t *testing.T, c *RecordingCanvas, want ...OpKind) {
	t.Helper()
	got := c.Kinds()
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v\n%s", got, want, c)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op %d = %v, want %v\n%s", i, got[i], want[i], c)
		}
	}
}

func TestDrawDefaultButton(t *testing.T) {
	b := NewButton("fab", DefaultMetrics)
	c := NewRecordingCanvas()
	b.Draw(c)

	assertKinds(t, c, OpCircle)
	op := c.Ops[0]
	if op.X != 32 || op.Y != 33 || op.Radius != 28 {
		t.Errorf("circle = (%v, %v, %v), want (32, 33, 28)", op.X, op.Y, op.Radius)
	}
	if op.Paint.Style != PaintFill {
		t.Errorf("style = %v, want fill", op.Paint.Style)
	}
	if op.Paint.Color.ARGB() != 0xFF9B9B9B {
		t.Errorf("color = %v, want #FF9B9B9B", op.Paint.Color)
	}
	want := ShadowLayer{Radius: 2, DX: 1, DY: 1.5, Color: ColorFromARGB(0xFF757575)}
	if op.Paint.Shadow != want {
		t.Errorf("shadow = %+v, want %+v", op.Paint.Shadow, want)
	}
}

func TestDrawOrder(t *testing.T) {
	b := newFlatButton("fab")
	b.SetRippleEffectEnabled(true)
	b.SetStrokeWidth(2)
	b.SetImage(ebiten.NewImage(8, 8))

	c := NewRecordingCanvas()
	b.Draw(c)
	assertKinds(t, c, OpCircle, OpSave, OpClipCircle, OpCircle, OpRestore, OpCircle, OpImage)

	stroke := c.Ops[5]
	if stroke.Paint.Style != PaintStroke || stroke.Paint.StrokeWidth != 2 {
		t.Errorf("stroke paint = %+v, want stroke of width 2", stroke.Paint)
	}
	if stroke.Paint.Color != ColorBlack {
		t.Errorf("stroke color = %v, want black", stroke.Paint.Color)
	}
	if stroke.Paint.HasShadowLayer() {
		t.Error("stroke should not carry the shadow layer")
	}
}

func TestDrawImageBounds(t *testing.T) {
	b := NewButton("fab", DefaultMetrics) // center (32, 33)
	img := ebiten.NewImage(8, 8)
	b.SetImage(img)

	c := NewRecordingCanvas()
	b.Draw(c)
	op := c.Ops[len(c.Ops)-1]
	if op.Kind != OpImage || op.Image != img {
		t.Fatalf("last op = %v, want the image", op.Kind)
	}
	want := Rect{X: 20, Y: 21, Width: 24, Height: 24}
	if op.Bounds != want {
		t.Errorf("bounds = %+v, want %+v", op.Bounds, want)
	}
}

func TestDrawPressedUsesPressedColor(t *testing.T) {
	b := newFlatButton("fab")
	b.OnTouchEvent(ActionDown, 28, 28)
	c := NewRecordingCanvas()
	b.Draw(c)
	if got := c.Ops[0].Paint.Color.ARGB(); got != 0xFF696969 {
		t.Errorf("color = #%08X, want #FF696969", got)
	}
}

func TestDrawRippleKeepsPressedColorUntilDone(t *testing.T) {
	b := newFlatButton("fab") // ripple end 56
	b.SetRippleEffectEnabled(true)
	b.OnTouchEvent(ActionDown, 20, 30)
	c := NewRecordingCanvas()
	for i := 0; i < 3; i++ {
		c.Reset()
		b.Draw(c)
	}
	b.OnTouchEvent(ActionUp, 20, 30)

	// Released but still growing: pressed color, ripple snaps to the end.
	c.Reset()
	b.Draw(c)
	if got := c.Ops[0].Paint.Color.ARGB(); got != 0xFF696969 {
		t.Errorf("base color while ripple runs = #%08X, want #FF696969", got)
	}
	ripple := c.Circles()[1]
	if ripple.Radius != 56 || ripple.X != 20 || ripple.Y != 30 {
		t.Errorf("ripple = (%v, %v, %v), want (20, 30, 56)", ripple.X, ripple.Y, ripple.Radius)
	}

	// Finished: base color back to normal, ripple retired.
	c.Reset()
	b.Draw(c)
	if got := c.Ops[0].Paint.Color.ARGB(); got != 0xFF9B9B9B {
		t.Errorf("base color after ripple = #%08X, want #FF9B9B9B", got)
	}
	if b.Ripple().Radius() != 0 {
		t.Errorf("ripple radius = %d, want 0", b.Ripple().Radius())
	}
}

func TestDrawRippleUsesRippleColor(t *testing.T) {
	b := newFlatButton("fab")
	b.SetRippleEffectEnabled(true)
	b.SetButtonColorRipple(MustParseColor("#123456"))
	b.OnTouchEvent(ActionDown, 28, 28)
	c := NewRecordingCanvas()
	b.Draw(c)
	ripple := c.Circles()[1]
	if ripple.Paint.Color.ARGB() != 0xFF123456 {
		t.Errorf("ripple color = %v, want #FF123456", ripple.Paint.Color)
	}
	if ripple.Paint.HasShadowLayer() {
		t.Error("ripple should not carry the shadow layer")
	}
}

func TestDrawStaticShadow(t *testing.T) {
	b := NewButton("fab", DefaultMetrics)
	b.SetShadowResponsiveEffectEnabled(false)
	b.OnTouchEvent(ActionDown, b.CenterX(), b.CenterY())
	c := NewRecordingCanvas()
	b.Draw(c)
	if r := c.Ops[0].Paint.Shadow.Radius; r != 2 {
		t.Errorf("shadow radius while pressed = %v, want 2", r)
	}
}

func TestDrawResponsiveShadowGrowsWhilePressed(t *testing.T) {
	b := NewButton("fab", DefaultMetrics)
	b.OnTouchEvent(ActionDown, b.CenterX(), b.CenterY())
	c := NewRecordingCanvas()
	var radii []float64
	for i := 0; i < 5; i++ {
		c.Reset()
		b.Draw(c)
		radii = append(radii, c.Ops[0].Paint.Shadow.Radius)
	}
	want := []float64{2.5, 3, 3.5, 3.5, 3.5}
	for i := range want {
		if radii[i] != want[i] {
			t.Errorf("frame %d shadow radius = %v, want %v", i, radii[i], want[i])
		}
	}
}

func TestDrawNoShadow(t *testing.T) {
	b := newFlatButton("fab")
	c := NewRecordingCanvas()
	b.Draw(c)
	if c.Ops[0].Paint.HasShadowLayer() {
		t.Errorf("shadow = %+v, want none", c.Ops[0].Paint.Shadow)
	}
}

func TestDrawElevationOutline(t *testing.T) {
	b := NewButton("fab", DefaultMetrics)
	b.SetElevation(4)
	b.SetStrokeWidth(3) // measured 62x62, corrective int(3/1.5) = 2
	c := NewRecordingCanvas()
	b.Draw(c)

	want := Rect{Width: 60, Height: 60}
	if b.Outline() != want {
		t.Errorf("Outline = %+v, want %+v", b.Outline(), want)
	}
	if c.Ops[0].Paint.HasShadowLayer() {
		t.Error("an elevated button should not draw its own shadow")
	}

	b.SetElevation(0)
	if b.Outline() != (Rect{}) {
		t.Errorf("Outline after removing elevation = %+v, want empty", b.Outline())
	}
}

func TestDrawIssuesInvalidationOnce(t *testing.T) {
	b := NewButton("fab", DefaultMetrics)
	b.SetRippleEffectEnabled(true)
	b.OnTouchEvent(ActionDown, b.CenterX(), b.CenterY())
	v := &fakeView{}
	b.setView(v)

	b.Draw(NewRecordingCanvas())
	// Ripple and shadow both want the next frame; one request is issued.
	if v.posted != 1 {
		t.Errorf("posted = %d, want 1", v.posted)
	}
	if b.Invalidator().InvalidationRequired() {
		t.Error("invalidator should be reset after Draw")
	}
}

func TestDrawRippleCompletionIsDelayed(t *testing.T) {
	b := newFlatButton("fab")
	b.SetRippleEffectEnabled(true)
	b.OnTouchEvent(ActionDown, 28, 28)
	b.Draw(NewRecordingCanvas())
	b.OnTouchEvent(ActionUp, 28, 28)

	v := &fakeView{}
	b.setView(v)
	b.Draw(NewRecordingCanvas())
	if len(v.delays) != 1 || v.delays[0] != 100*time.Millisecond {
		t.Errorf("delays = %v, want [100ms]", v.delays)
	}
}

func TestRecordingCanvasString(t *testing.T) {
	b := newFlatButton("fab")
	b.SetStrokeWidth(1) // measured 58x58
	c := NewRecordingCanvas()
	b.Draw(c)
	want := "circle 29.00,29.00 r=28.00 fill #FF9B9B9B\n" +
		"circle 29.00,29.00 r=28.00 stroke(1.00) #FF000000\n"
	if got := c.String(); got != want {
		t.Errorf("String =\n%s\nwant\n%s", got, want)
	}
}
