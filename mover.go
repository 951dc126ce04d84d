package fab

import (
	"time"

	"github.com/tanema/gween/ease"
)

// DefaultMoveDuration is used when MovementParameters.Duration is zero.
const DefaultMoveDuration = 500 * time.Millisecond

// MovementParameters describes a move. Deltas are in dp.
type MovementParameters struct {
	XAxisDelta float64
	YAxisDelta float64
	Duration   time.Duration
	Ease       ease.TweenFunc
}

// NewMovementParameters returns parameters for a move by (dx, dy) dp with the
// default duration and linear easing.
func NewMovementParameters(dx, dy float64) MovementParameters {
	return MovementParameters{XAxisDelta: dx, YAxisDelta: dy, Duration: DefaultMoveDuration}
}

// Move slides the button by the given deltas and commits the new position
// when the slide ends. An axis whose end point would leave the host is not
// moved. Moves are skipped while another animation runs.
func (b *Button) Move(p MovementParameters) {
	b.log().WithField("dx", p.XAxisDelta).WithField("dy", p.YAxisDelta).Debug("about to move")
	if b.host == nil {
		b.log().Warn("unable to move the button: not attached")
		return
	}
	if b.Animating() {
		b.log().Warn("unable to move the button: it is being animated")
		return
	}
	p = b.convertMovement(p)
	if p.XAxisDelta == 0 && p.YAxisDelta == 0 {
		b.log().Warn("zero movement detected, no movement will be performed")
		return
	}
	dur := p.Duration
	if dur <= 0 {
		dur = DefaultMoveDuration
	}
	dx, dy := p.XAxisDelta, p.YAxisDelta
	g := TweenTranslation(b, dx, dy, float32(dur.Seconds()), p.Ease)
	b.startTween(g, func() {
		b.X += dx
		b.Y += dy
		b.log().WithField("x", b.X).WithField("y", b.Y).Debug("button moved")
	})
}

// convertMovement converts the deltas to pixels and zeroes an axis that has
// no room to move.
func (b *Button) convertMovement(p MovementParameters) MovementParameters {
	p.XAxisDelta = b.metrics.DpToPx(p.XAxisDelta)
	p.YAxisDelta = b.metrics.DpToPx(p.YAxisDelta)
	w, h := b.hostSize()
	if endX := b.X + p.XAxisDelta; endX < 0 || endX > w {
		b.log().Warn("unable to move the button horizontally: no space left")
		p.XAxisDelta = 0
	}
	if endY := b.Y + p.YAxisDelta; endY < 0 || endY > h {
		b.log().Warn("unable to move the button vertically: no space left")
		p.YAxisDelta = 0
	}
	return p
}

// MoveRight moves the button right by distance dp.
func (b *Button) MoveRight(distance float64) {
	b.Move(NewMovementParameters(distance, 0))
}

// MoveDown moves the button down by distance dp.
func (b *Button) MoveDown(distance float64) {
	b.Move(NewMovementParameters(0, distance))
}

// MoveLeft moves the button left by distance dp.
func (b *Button) MoveLeft(distance float64) {
	b.Move(NewMovementParameters(-distance, 0))
}

// MoveUp moves the button up by distance dp.
func (b *Button) MoveUp(distance float64) {
	b.Move(NewMovementParameters(0, -distance))
}
