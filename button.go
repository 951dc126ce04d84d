package fab

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

// Default configuration values, in dp unless stated otherwise.
const (
	defaultShadowRadius  = 2.0
	defaultShadowXOffset = 1.0
	defaultShadowYOffset = 1.5
	defaultImageSize     = 24.0

	// rippleDarkenFactor derives the ripple color from the pressed color.
	rippleDarkenFactor = 0.8
)

var (
	defaultButtonColor        = ColorFromARGB(0xFF9B9B9B)
	defaultButtonColorPressed = ColorFromARGB(0xFF696969)
	defaultShadowColor        = ColorFromARGB(0xFF757575)
)

// Button is a filled circular action button. It owns its configuration,
// touch state and effects, and draws itself onto a Canvas when its host asks
// for a frame. All methods must be called from the host's update goroutine.
type Button struct {
	// Identity
	ID       uint32
	Name     string
	EntityID uint32 // ECS entity; events are forwarded only when non-zero

	// Position of the measured box's top-left corner in host pixels.
	X, Y float64

	// OnClick fires when a press that started on the button is released
	// inside its circle.
	OnClick func(*Button)

	host    *Host
	view    View
	metrics Metrics

	// Configuration (px)
	typ                     ButtonType
	size                    float64
	buttonColor             Color
	buttonColorPressed      Color
	buttonColorRipple       Color
	rippleEnabled           bool
	shadowResponsiveEnabled bool
	shadowRadius            float64
	shadowXOffset           float64
	shadowYOffset           float64
	shadowColor             Color
	strokeWidth             float64
	strokeColor             Color
	image                   *ebiten.Image
	imageSize               float64
	elevation               float64
	showAnimation           *Animation
	hideAnimation           *Animation

	// Runtime state
	state       ButtonState
	touch       TouchPoint
	paint       Paint
	invalidator *Invalidator
	ripple      *RippleEffect
	shadow      *ShadowResponsiveEffect
	visibility  Visibility

	// Layout
	measuredW, measuredH int
	outline              Rect
	cache                *ebiten.Image // last rendered frame, owned by the host

	// Animation
	transform Transform
	tween     *TweenGroup
	onAnimEnd func()

	dirty bool
}

// NewButton creates a detached DEFAULT button. Dimensions configured through
// setters are in dp and converted with m.
func NewButton(name string, m Metrics) *Button {
	b := &Button{
		Name:                    name,
		metrics:                 m,
		typ:                     TypeDefault,
		buttonColor:             defaultButtonColor,
		buttonColorPressed:      defaultButtonColorPressed,
		shadowResponsiveEnabled: true,
		shadowColor:             defaultShadowColor,
		strokeColor:             ColorBlack,
		transform:               identityTransform,
		dirty:                   true,
	}
	b.size = m.DpToPx(b.typ.Size())
	b.buttonColorRipple = b.darkenButtonColorPressed()
	b.shadowRadius = m.DpToPx(defaultShadowRadius)
	b.shadowXOffset = m.DpToPx(defaultShadowXOffset)
	b.shadowYOffset = m.DpToPx(defaultShadowYOffset)
	b.imageSize = m.DpToPx(defaultImageSize)
	b.paint.Reset()
	b.ripple = NewRippleEffect(b.CircleRadius())
	b.shadow = NewShadowResponsiveEffect(b.shadowRadius)
	b.setView(detachedView{b})
	b.measure()
	b.log().Debug("button initialized")
	return b
}

func (b *Button) setView(v View) {
	b.view = v
	b.invalidator = NewInvalidator(v)
}

// Metrics returns the dp conversion used by the setters.
func (b *Button) Metrics() Metrics { return b.metrics }

// Host returns the host the button is attached to, or nil.
func (b *Button) Host() *Host { return b.host }

// Invalidate requests a redraw on the next frame.
func (b *Button) Invalidate() {
	b.view.Invalidate()
}

// Invalidator returns the per-frame redraw request accumulator.
func (b *Button) Invalidator() *Invalidator { return b.invalidator }

// NeedsRedraw reports whether a redraw has been requested since the last
// frame.
func (b *Button) NeedsRedraw() bool { return b.dirty }

func (b *Button) releaseCache() {
	if b.cache != nil {
		b.cache.Deallocate()
		b.cache = nil
	}
}

func (b *Button) requestLayout() {
	b.measure()
	b.Invalidate()
}

// --- Touch state machine ---

// OnTouchEvent feeds a touch event in button-local pixels into the state
// machine and reports whether it was consumed.
//
//   - down inside the circle: PRESSED, touch point recorded
//   - up inside the circle while PRESSED: NORMAL, touch point reset
//   - move outside the circle while PRESSED: NORMAL, touch point reset
//
// Every other combination is ignored. ActionCancel returns a pressed button
// to NORMAL without consuming the event.
func (b *Button) OnTouchEvent(action TouchAction, x, y float64) bool {
	point := NewTouchPoint(x, y)
	inside := point.IsInsideCircle(b.CenterX(), b.CenterY(), b.CircleRadius())
	switch action {
	case ActionDown:
		if inside {
			b.SetState(StatePressed)
			b.touch = point
			b.log().WithFields(log.Fields{"x": x, "y": y}).Debug("touch down")
			return true
		}
	case ActionUp:
		if inside && b.state == StatePressed {
			b.SetState(StateNormal)
			b.touch.Reset()
			b.log().WithFields(log.Fields{"x": x, "y": y}).Debug("touch up")
			return true
		}
	case ActionMove:
		if !inside && b.state == StatePressed {
			b.SetState(StateNormal)
			b.touch.Reset()
			b.log().WithFields(log.Fields{"x": x, "y": y}).Debug("touch left the circle")
			return true
		}
	case ActionCancel:
		if b.state == StatePressed {
			b.SetState(StateNormal)
			b.touch.Reset()
			b.log().Debug("touch cancelled")
		}
	default:
		b.log().WithField("action", action).Debug("unrecognized touch action")
	}
	return false
}

// TouchPoint returns the current touch point.
func (b *Button) TouchPoint() TouchPoint { return b.touch }

// State returns the touch state.
func (b *Button) State() ButtonState { return b.state }

// SetState changes the touch state and requests a redraw.
func (b *Button) SetState(s ButtonState) {
	b.state = s
	b.Invalidate()
	b.log().WithField("state", s).Debug("state changed")
}

// --- Geometry ---

// CenterX returns the circle center X in local pixels.
func (b *Button) CenterX() float64 { return float64(b.measuredW / 2) }

// CenterY returns the circle center Y in local pixels.
func (b *Button) CenterY() float64 { return float64(b.measuredH / 2) }

// CircleRadius returns the circle radius in pixels.
func (b *Button) CircleRadius() float64 { return b.size / 2 }

// HitArea returns the circle in local pixels.
func (b *Button) HitArea() HitCircle {
	return HitCircle{CenterX: b.CenterX(), CenterY: b.CenterY(), Radius: b.CircleRadius()}
}

// Measure returns the size of the box needed to draw the button with its
// shadow and stroke: diameter + shadow extent + stroke weight per axis.
func (b *Button) Measure() (width, height int) {
	width = int(b.size + float64(b.shadowWidth()) + float64(b.strokeWeight()))
	height = int(b.size + float64(b.shadowHeight()) + float64(b.strokeWeight()))
	return width, height
}

// MeasuredSize returns the result of the last layout pass.
func (b *Button) MeasuredSize() (width, height int) {
	return b.measuredW, b.measuredH
}

func (b *Button) measure() {
	b.measuredW, b.measuredH = b.Measure()
	b.ripple.SetCircleRadius(b.CircleRadius())
	if tracing() {
		b.log().WithFields(log.Fields{"width": b.measuredW, "height": b.measuredH}).Trace("measured")
	}
}

// effectiveShadowRadius is the largest radius the shadow can reach.
func (b *Button) effectiveShadowRadius() float64 {
	if b.shadowResponsiveEnabled {
		return MaxShadowRadius(b.shadowRadius)
	}
	return b.shadowRadius
}

func (b *Button) shadowWidth() int {
	if !b.HasShadow() {
		return 0
	}
	return int((b.effectiveShadowRadius() + math.Abs(b.shadowXOffset)) * 2)
}

func (b *Button) shadowHeight() int {
	if !b.HasShadow() {
		return 0
	}
	return int((b.effectiveShadowRadius() + math.Abs(b.shadowYOffset)) * 2)
}

func (b *Button) strokeWeight() int {
	return int(b.strokeWidth * 2)
}

// Outline returns the oval the host casts the elevation shadow from. It is
// empty unless elevation is active.
func (b *Button) Outline() Rect { return b.outline }

// --- Configuration ---

// Type returns the button type.
func (b *Button) Type() ButtonType { return b.typ }

// SetType changes the type and resets the size to the type's size.
func (b *Button) SetType(t ButtonType) {
	b.typ = t
	b.log().WithField("type", t).Debug("type changed")
	b.SetSize(t.Size())
}

// Size returns the diameter in pixels.
func (b *Button) Size() float64 { return b.size }

// SetSize sets the diameter in dp.
func (b *Button) SetSize(dp float64) {
	b.size = b.metrics.DpToPx(dp)
	b.requestLayout()
	b.log().WithField("size", b.size).Debug("size changed")
}

// ButtonColor returns the fill color in the NORMAL state.
func (b *Button) ButtonColor() Color { return b.buttonColor }

// SetButtonColor sets the fill color in the NORMAL state.
func (b *Button) SetButtonColor(c Color) {
	b.buttonColor = c
	b.Invalidate()
	b.log().WithField("color", c).Debug("button color changed")
}

// ButtonColorPressed returns the fill color in the PRESSED state.
func (b *Button) ButtonColorPressed() Color { return b.buttonColorPressed }

// SetButtonColorPressed sets the pressed fill color and resets the ripple
// color to a darker shade of it.
func (b *Button) SetButtonColorPressed(c Color) {
	b.buttonColorPressed = c
	b.SetButtonColorRipple(b.darkenButtonColorPressed())
	b.log().WithField("color", c).Debug("button pressed color changed")
}

func (b *Button) darkenButtonColorPressed() Color {
	return b.buttonColorPressed.ModifyExposure(rippleDarkenFactor)
}

// HasRipple reports whether the ripple effect is enabled.
func (b *Button) HasRipple() bool { return b.rippleEnabled }

// SetRippleEffectEnabled toggles the ripple effect.
func (b *Button) SetRippleEffectEnabled(enabled bool) {
	b.rippleEnabled = enabled
	b.log().WithField("enabled", enabled).Debug("ripple effect toggled")
}

// Ripple returns the ripple effect state.
func (b *Button) Ripple() *RippleEffect { return b.ripple }

// ButtonColorRipple returns the ripple color.
func (b *Button) ButtonColorRipple() Color { return b.buttonColorRipple }

// SetButtonColorRipple sets the ripple color.
func (b *Button) SetButtonColorRipple(c Color) {
	b.buttonColorRipple = c
	b.log().WithField("color", c).Debug("ripple color changed")
}

// HasShadowResponsiveEffect reports whether the shadow grows while pressed.
func (b *Button) HasShadowResponsiveEffect() bool { return b.shadowResponsiveEnabled }

// SetShadowResponsiveEffectEnabled toggles the shadow-responsive effect. The
// measured box depends on it, so a layout pass follows.
func (b *Button) SetShadowResponsiveEffectEnabled(enabled bool) {
	b.shadowResponsiveEnabled = enabled
	if enabled {
		b.shadow.SetRadius(b.shadowRadius)
	}
	b.requestLayout()
	b.log().WithField("enabled", enabled).Debug("shadow responsive effect toggled")
}

// ShadowResponsive returns the shadow-responsive effect state.
func (b *Button) ShadowResponsive() *ShadowResponsiveEffect { return b.shadow }

// HasShadow reports whether the button draws its own shadow: no elevation
// and a positive radius.
func (b *Button) HasShadow() bool {
	return !b.HasElevation() && b.shadowRadius > 0
}

// ShadowRadius returns the configured shadow radius in pixels.
func (b *Button) ShadowRadius() float64 { return b.shadowRadius }

// SetShadowRadius sets the shadow radius in dp. Zero disables the shadow.
func (b *Button) SetShadowRadius(dp float64) {
	b.shadowRadius = b.metrics.DpToPx(dp)
	if b.shadowResponsiveEnabled {
		b.shadow.SetRadius(b.shadowRadius)
	}
	b.requestLayout()
	b.log().WithField("radius", b.shadowRadius).Debug("shadow radius changed")
}

// RemoveShadow disables the shadow if present.
func (b *Button) RemoveShadow() {
	if b.HasShadow() {
		b.SetShadowRadius(0)
	}
}

// ShadowXOffset returns the shadow X offset in pixels.
func (b *Button) ShadowXOffset() float64 { return b.shadowXOffset }

// SetShadowXOffset sets the shadow X offset in dp.
func (b *Button) SetShadowXOffset(dp float64) {
	b.shadowXOffset = b.metrics.DpToPx(dp)
	b.requestLayout()
	b.log().WithField("offset", b.shadowXOffset).Debug("shadow x offset changed")
}

// ShadowYOffset returns the shadow Y offset in pixels.
func (b *Button) ShadowYOffset() float64 { return b.shadowYOffset }

// SetShadowYOffset sets the shadow Y offset in dp.
func (b *Button) SetShadowYOffset(dp float64) {
	b.shadowYOffset = b.metrics.DpToPx(dp)
	b.requestLayout()
	b.log().WithField("offset", b.shadowYOffset).Debug("shadow y offset changed")
}

// ShadowColor returns the shadow color.
func (b *Button) ShadowColor() Color { return b.shadowColor }

// SetShadowColor sets the shadow color.
func (b *Button) SetShadowColor(c Color) {
	b.shadowColor = c
	b.Invalidate()
	b.log().WithField("color", c).Debug("shadow color changed")
}

// StrokeWidth returns the stroke width in pixels.
func (b *Button) StrokeWidth() float64 { return b.strokeWidth }

// HasStroke reports whether a stroke ring is drawn.
func (b *Button) HasStroke() bool { return b.strokeWidth > 0 }

// SetStrokeWidth sets the stroke width in dp. Zero disables the stroke.
func (b *Button) SetStrokeWidth(dp float64) {
	b.strokeWidth = b.metrics.DpToPx(dp)
	b.requestLayout()
	b.log().WithField("width", b.strokeWidth).Debug("stroke width changed")
}

// RemoveStroke disables the stroke if present.
func (b *Button) RemoveStroke() {
	if b.HasStroke() {
		b.SetStrokeWidth(0)
	}
}

// StrokeColor returns the stroke color.
func (b *Button) StrokeColor() Color { return b.strokeColor }

// SetStrokeColor sets the stroke color.
func (b *Button) SetStrokeColor(c Color) {
	b.strokeColor = c
	b.Invalidate()
	b.log().WithField("color", c).Debug("stroke color changed")
}

// Image returns the icon, or nil.
func (b *Button) Image() *ebiten.Image { return b.image }

// HasImage reports whether an icon is set.
func (b *Button) HasImage() bool { return b.image != nil }

// SetImage sets the icon drawn centered on the button. Nil removes it.
func (b *Button) SetImage(img *ebiten.Image) {
	b.image = img
	b.Invalidate()
	b.log().Debug("image set")
}

// RemoveImage removes the icon if present.
func (b *Button) RemoveImage() {
	if b.HasImage() {
		b.SetImage(nil)
	}
}

// ImageSize returns the icon size in pixels, or 0 without an icon.
func (b *Button) ImageSize() float64 {
	if b.image == nil {
		return 0
	}
	return b.imageSize
}

// SetImageSize sets the icon size in dp.
func (b *Button) SetImageSize(dp float64) {
	b.imageSize = b.metrics.DpToPx(dp)
	b.log().WithField("size", b.imageSize).Debug("image size changed")
}

// Elevation returns the elevation in pixels.
func (b *Button) Elevation() float64 { return b.elevation }

// HasElevation reports whether the host casts the shadow instead of the
// button.
func (b *Button) HasElevation() bool { return b.elevation > 0 }

// SetElevation sets the elevation in dp. A positive elevation replaces the
// button's own shadow with one cast by the host under the outline.
func (b *Button) SetElevation(dp float64) {
	b.elevation = b.metrics.DpToPx(dp)
	if !b.HasElevation() {
		b.outline = Rect{}
	}
	b.requestLayout()
	b.log().WithField("elevation", b.elevation).Debug("elevation changed")
}

// --- Visibility ---

// Visibility returns the current visibility.
func (b *Button) Visibility() Visibility { return b.visibility }

func (b *Button) setVisibility(v Visibility) {
	b.visibility = v
	b.Invalidate()
}

// IsHidden reports whether the button was hidden.
func (b *Button) IsHidden() bool { return b.visibility == Invisible }

// IsDismissed reports whether the button is not attached to a host.
func (b *Button) IsDismissed() bool { return b.host == nil }

// Show plays the show animation and makes a hidden button visible.
func (b *Button) Show() {
	if b.IsHidden() {
		b.PlayShowAnimation()
		b.setVisibility(Visible)
		b.log().Debug("button shown")
	}
}

// Hide plays the hide animation and hides the button. Hidden buttons keep
// their place in the host but receive no input.
func (b *Button) Hide() {
	if !b.IsHidden() && !b.IsDismissed() {
		b.PlayHideAnimation()
		b.setVisibility(Invisible)
		b.log().Debug("button hidden")
	}
}

// Dismiss plays the hide animation unless hidden and removes the button from
// its host.
func (b *Button) Dismiss() {
	if b.IsDismissed() {
		return
	}
	if !b.IsHidden() {
		b.PlayHideAnimation()
	}
	b.setVisibility(Gone)
	b.host.Remove(b)
	b.log().Debug("button dismissed")
}

// log returns the button's entry on the current package logger. Attached
// buttons carry their id.
func (b *Button) log() *log.Entry {
	e := componentLog("button").WithField("name", b.Name)
	if b.ID != 0 {
		e = e.WithField("id", b.ID)
	}
	return e
}

// snapshot captures the read-only state effects draw from.
func (b *Button) snapshot() Snapshot {
	return Snapshot{
		State:         b.state,
		CenterX:       b.CenterX(),
		CenterY:       b.CenterY(),
		CircleRadius:  b.CircleRadius(),
		Touch:         b.touch,
		RippleColor:   b.buttonColorRipple,
		ShadowRadius:  b.shadowRadius,
		ShadowXOffset: b.shadowXOffset,
		ShadowYOffset: b.shadowYOffset,
		ShadowColor:   b.shadowColor,
	}
}

// detachedView marks the button dirty for every request. It serves buttons
// that have no host yet; there is no frame loop to defer to.
type detachedView struct{ b *Button }

func (v detachedView) Invalidate()                         { v.b.dirty = true }
func (v detachedView) PostInvalidate()                     { v.b.dirty = true }
func (v detachedView) PostInvalidateDelayed(time.Duration) { v.b.dirty = true }
