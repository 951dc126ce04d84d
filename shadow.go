package fab

import log "github.com/sirupsen/logrus"

const (
	// shadowResponseFactor bounds the pressed shadow radius relative to the
	// configured one.
	shadowResponseFactor = 1.75
	// shadowDrawingStep is the per-frame change of the shadow radius.
	shadowDrawingStep = 0.5
)

// ShadowResponsiveEffect grows the button shadow while pressed and shrinks
// it back on release, one step per frame, within
// [radius, radius*shadowResponseFactor].
type ShadowResponsiveEffect struct {
	currentRadius float64
}

// NewShadowResponsiveEffect creates the effect at rest for the given
// configured shadow radius.
func NewShadowResponsiveEffect(shadowRadius float64) *ShadowResponsiveEffect {
	return &ShadowResponsiveEffect{currentRadius: shadowRadius}
}

func (*ShadowResponsiveEffect) effect() {}

// Kind returns EffectShadowResponsive.
func (*ShadowResponsiveEffect) Kind() EffectKind { return EffectShadowResponsive }

// Radius returns the current shadow radius.
func (e *ShadowResponsiveEffect) Radius() float64 { return e.currentRadius }

// SetRadius force-sets the current radius. Called when the configured shadow
// radius changes so the bounds do not go stale.
func (e *ShadowResponsiveEffect) SetRadius(r float64) { e.currentRadius = r }

// MinShadowRadius returns the resting radius for the configured radius.
func MinShadowRadius(shadowRadius float64) float64 {
	return shadowRadius
}

// MaxShadowRadius returns the fully pressed radius for the configured radius.
func MaxShadowRadius(shadowRadius float64) float64 {
	return MinShadowRadius(shadowRadius) * shadowResponseFactor
}

// UpdateRadius advances the shadow by one frame and reports whether it is
// still moving. A released, settled shadow snaps to the configured radius.
func (e *ShadowResponsiveEffect) UpdateRadius(pressed bool, shadowRadius float64) bool {
	minR := MinShadowRadius(shadowRadius)
	maxR := MaxShadowRadius(shadowRadius)
	switch {
	case pressed && e.currentRadius < maxR:
		e.currentRadius += shadowDrawingStep
		if e.currentRadius > maxR {
			e.currentRadius = maxR
		}
		return true
	case !pressed && e.currentRadius > minR:
		e.currentRadius -= shadowDrawingStep
		if e.currentRadius < minR {
			e.currentRadius = minR
		}
		return true
	case !pressed:
		e.currentRadius = shadowRadius
	}
	return false
}

// Draw advances the shadow and attaches it to the scratch paint so the base
// circle drawn next carries it. Frames are requested while the radius moves.
func (e *ShadowResponsiveEffect) Draw(ctx *DrawContext) {
	s := &ctx.Snapshot
	if e.UpdateRadius(s.Pressed(), s.ShadowRadius) {
		ctx.Invalidator.RequireInvalidation()
	}
	ctx.Paint.SetShadowLayer(e.currentRadius, s.ShadowXOffset, s.ShadowYOffset, s.ShadowColor)
	if tracing() {
		componentLog("shadowResponsive").WithFields(log.Fields{
			"radius": e.currentRadius,
		}).Trace("shadow responsive frame drawn")
	}
}
