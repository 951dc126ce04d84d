package fab

import log "github.com/sirupsen/logrus"

// Draw renders one frame of the button onto c in local pixels, in order:
// base circle with its shadow, ripple, elevation outline, stroke, image.
// Redraw requests collected from the effects are issued once at the end.
func (b *Button) Draw(c Canvas) {
	ctx := DrawContext{
		Canvas:      c,
		Paint:       &b.paint,
		Invalidator: b.invalidator,
		Snapshot:    b.snapshot(),
	}
	b.drawCircle(&ctx)
	if b.HasRipple() {
		b.ripple.Draw(&ctx)
	}
	if b.HasElevation() {
		b.drawElevation()
	}
	if b.HasStroke() {
		b.drawStroke(c)
	}
	if b.HasImage() {
		b.drawImage(c)
	}
	b.invalidator.Invalidate()
}

func (b *Button) resetPaint() {
	b.paint.Reset()
}

func (b *Button) drawCircle(ctx *DrawContext) {
	b.resetPaint()
	if b.HasShadow() {
		b.drawShadow(ctx)
	}
	b.paint.Style = PaintFill
	rippleInProgress := b.HasRipple() && b.ripple.InProgress()
	if b.state == StatePressed || rippleInProgress {
		b.paint.Color = b.buttonColorPressed
	} else {
		b.paint.Color = b.buttonColor
	}
	ctx.Canvas.DrawCircle(b.CenterX(), b.CenterY(), b.CircleRadius(), &b.paint)
}

func (b *Button) drawShadow(ctx *DrawContext) {
	if b.shadowResponsiveEnabled {
		b.shadow.Draw(ctx)
		return
	}
	b.paint.SetShadowLayer(b.shadowRadius, b.shadowXOffset, b.shadowYOffset, b.shadowColor)
}

// drawElevation records the oval the host casts the elevation shadow from.
// The stroke is kept out of the oval so the shadow hugs the fill.
func (b *Button) drawElevation() {
	corrective := int(b.strokeWidth / 1.5)
	b.outline = Rect{
		Width:  float64(b.measuredW - corrective),
		Height: float64(b.measuredH - corrective),
	}
}

func (b *Button) drawStroke(c Canvas) {
	b.resetPaint()
	b.paint.Style = PaintStroke
	b.paint.StrokeWidth = b.strokeWidth
	b.paint.Color = b.strokeColor
	c.DrawCircle(b.CenterX(), b.CenterY(), b.CircleRadius(), &b.paint)
}

func (b *Button) drawImage(c Canvas) {
	size := b.ImageSize()
	startX := int(b.CenterX() - size/2)
	startY := int(b.CenterY() - size/2)
	endX := int(float64(startX) + size)
	endY := int(float64(startY) + size)
	bounds := Rect{
		X:      float64(startX),
		Y:      float64(startY),
		Width:  float64(endX - startX),
		Height: float64(endY - startY),
	}
	c.DrawImage(b.image, bounds)
	if tracing() {
		b.log().WithFields(log.Fields{
			"x0": startX, "y0": startY, "x1": endX, "y1": endY,
		}).Trace("image drawn")
	}
}
