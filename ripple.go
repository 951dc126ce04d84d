package fab

import (
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// rippleRadiusStep is added to the ripple radius on every pressed frame.
	rippleRadiusStep = 5
	// rippleCompletionDelay postpones the final redraw after the ripple
	// finishes so the base circle returns to its normal color.
	rippleCompletionDelay = 100 * time.Millisecond
)

// RippleEffect grows a filled circle from the last touch point while the
// button is pressed. The circle is clipped to the button outline.
//
// States are implicit in the radius: idle (0), growing (0 < r < end) and
// finished (r >= end), where end is twice the circle radius.
type RippleEffect struct {
	currentRadius int
	endRadius     int
}

// NewRippleEffect creates an idle ripple for a button whose circle has the
// given radius.
func NewRippleEffect(circleRadius float64) *RippleEffect {
	r := &RippleEffect{}
	r.SetCircleRadius(circleRadius)
	return r
}

func (*RippleEffect) effect() {}

// Kind returns EffectRipple.
func (*RippleEffect) Kind() EffectKind { return EffectRipple }

// SetCircleRadius updates the end radius after the button was resized.
func (r *RippleEffect) SetCircleRadius(circleRadius float64) {
	r.endRadius = endRippleRadius(circleRadius)
}

func endRippleRadius(circleRadius float64) int {
	return int(circleRadius * 2)
}

// Radius returns the current ripple radius.
func (r *RippleEffect) Radius() int { return r.currentRadius }

// EndRadius returns the radius at which the ripple is finished.
func (r *RippleEffect) EndRadius() int { return r.endRadius }

// InProgress reports whether the ripple is growing.
func (r *RippleEffect) InProgress() bool {
	return r.currentRadius > 0 && !r.Finished()
}

// Finished reports whether the ripple has reached its end radius.
func (r *RippleEffect) Finished() bool {
	return r.currentRadius >= r.endRadius
}

// UpdateRadius advances the ripple by one frame. While pressed the radius
// grows by a fixed step and may pass the end radius by less than one step.
// On release a growing ripple jumps to the end radius so the sweep completes
// visibly, and a finished ripple retires to zero.
func (r *RippleEffect) UpdateRadius(pressed bool) {
	if pressed {
		if r.currentRadius <= r.endRadius {
			r.currentRadius += rippleRadiusStep
		}
	} else {
		if r.InProgress() {
			r.currentRadius = r.endRadius
		} else if r.Finished() {
			r.currentRadius = 0
		}
	}
}

// Draw advances the ripple, renders it clipped to the button circle at the
// last touch point and requests the next frame while it grows. Once finished
// with the button released, one delayed frame is requested to clear the
// pressed color from the base circle.
func (r *RippleEffect) Draw(ctx *DrawContext) {
	s := &ctx.Snapshot
	r.SetCircleRadius(s.CircleRadius)
	r.UpdateRadius(s.Pressed())

	c := ctx.Canvas
	c.Save()
	c.ClipCircle(s.CenterX, s.CenterY, s.CircleRadius)
	p := ctx.Paint
	p.Reset()
	p.Style = PaintFill
	p.Color = s.RippleColor
	c.DrawCircle(s.Touch.LastX(), s.Touch.LastY(), float64(r.currentRadius), p)
	c.Restore()

	if r.InProgress() {
		ctx.Invalidator.RequireInvalidation()
	} else if r.Finished() && !s.Pressed() {
		ctx.Invalidator.RequireDelayedInvalidation()
		ctx.Invalidator.SetInvalidationDelay(rippleCompletionDelay)
	}
	if tracing() {
		componentLog("ripple").WithFields(log.Fields{
			"radius": r.currentRadius,
			"end":    r.endRadius,
		}).Trace("ripple frame drawn")
	}
}
