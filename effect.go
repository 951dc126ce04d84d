package fab

// EffectKind enumerates the visual effects a Button can run. The set is
// closed: every Effect is one of these kinds.
type EffectKind uint8

const (
	EffectRipple           EffectKind = iota // expanding fill from the touch point
	EffectShadowResponsive                   // shadow that grows while pressed
)

func (k EffectKind) String() string {
	switch k {
	case EffectRipple:
		return "ripple"
	case EffectShadowResponsive:
		return "shadowResponsive"
	default:
		return "unknown"
	}
}

// Snapshot is the read-only view of a Button that effects consume during one
// frame.
type Snapshot struct {
	State        ButtonState
	CenterX      float64
	CenterY      float64
	CircleRadius float64
	Touch        TouchPoint

	RippleColor Color

	ShadowRadius  float64
	ShadowXOffset float64
	ShadowYOffset float64
	ShadowColor   Color
}

// Pressed reports whether the button is in the PRESSED state.
func (s *Snapshot) Pressed() bool {
	return s.State == StatePressed
}

// DrawContext carries the per-frame collaborators of an effect: the canvas,
// the shared scratch paint, the invalidator effects request frames from and
// the button snapshot.
type DrawContext struct {
	Canvas      Canvas
	Paint       *Paint
	Invalidator *Invalidator
	Snapshot    Snapshot
}

// Effect is a frame-by-frame visual effect. Draw advances the effect's
// animation state by one frame, renders it and, while the effect is still
// animating, requests the next frame from ctx.Invalidator. Effects never
// apply invalidation themselves.
type Effect interface {
	Kind() EffectKind
	Draw(ctx *DrawContext)

	effect()
}
