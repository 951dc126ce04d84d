package fab

import (
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transform is the presentation transform an animation applies to a button
// when it is composited. It never affects layout or hit testing.
type Transform struct {
	Alpha      float64
	Scale      float64 // about the circle center
	TranslateX float64
	TranslateY float64
	Rotation   float64 // radians, about the circle center
}

var identityTransform = Transform{Alpha: 1, Scale: 1}

// IdentityTransform returns the transform of a button at rest.
func IdentityTransform() Transform { return identityTransform }

// Animation describes a show or hide transition. TranslateX and TranslateY
// of From and To are fractions of the host size; they are resolved to pixels
// when the animation starts.
type Animation struct {
	Name     string
	Duration time.Duration
	Ease     ease.TweenFunc
	From, To Transform
}

func (a *Animation) resolve(hostW, hostH float64) (from, to Transform) {
	from, to = a.From, a.To
	from.TranslateX *= hostW
	from.TranslateY *= hostH
	to.TranslateX *= hostW
	to.TranslateY *= hostH
	return from, to
}

func (a *Animation) seconds() float32 {
	s := float32(a.Duration.Seconds())
	if s <= 0 {
		s = float32(time.Millisecond.Seconds())
	}
	return s
}

// AnimationPreset names one of the built-in show/hide animations.
type AnimationPreset uint8

const (
	AnimNone AnimationPreset = iota
	AnimFadeIn
	AnimFadeOut
	AnimScaleUp
	AnimScaleDown
	AnimRollFromDown
	AnimRollToDown
	AnimRollFromRight
	AnimRollToRight
	AnimJumpFromDown
	AnimJumpToDown
	AnimJumpFromRight
	AnimJumpToRight
)

var presetNames = [...]string{
	AnimNone:          "none",
	AnimFadeIn:        "fade_in",
	AnimFadeOut:       "fade_out",
	AnimScaleUp:       "scale_up",
	AnimScaleDown:     "scale_down",
	AnimRollFromDown:  "roll_from_down",
	AnimRollToDown:    "roll_to_down",
	AnimRollFromRight: "roll_from_right",
	AnimRollToRight:   "roll_to_right",
	AnimJumpFromDown:  "jump_from_down",
	AnimJumpToDown:    "jump_to_down",
	AnimJumpFromRight: "jump_from_right",
	AnimJumpToRight:   "jump_to_right",
}

func (p AnimationPreset) String() string {
	if int(p) < len(presetNames) {
		return presetNames[p]
	}
	return "unknown"
}

// ParseAnimationPreset maps a snake_case preset name to its preset.
func ParseAnimationPreset(name string) (AnimationPreset, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range presetNames {
		if s == n {
			return AnimationPreset(i), nil
		}
	}
	return AnimNone, errors.Errorf("unknown animation %q", name)
}

const (
	fadeDuration  = 300 * time.Millisecond
	scaleDuration = 200 * time.Millisecond
	rollDuration  = 500 * time.Millisecond
	jumpDuration  = 400 * time.Millisecond
)

// Animation returns a fresh animation for the preset, or nil for AnimNone.
func (p AnimationPreset) Animation() *Animation {
	id := identityTransform
	at := func(mod func(*Transform)) Transform {
		t := identityTransform
		mod(&t)
		return t
	}
	a := &Animation{Name: p.String(), From: id, To: id}
	switch p {
	case AnimFadeIn:
		a.Duration, a.Ease = fadeDuration, ease.Linear
		a.From = at(func(t *Transform) { t.Alpha = 0 })
	case AnimFadeOut:
		a.Duration, a.Ease = fadeDuration, ease.Linear
		a.To = at(func(t *Transform) { t.Alpha = 0 })
	case AnimScaleUp:
		a.Duration, a.Ease = scaleDuration, ease.OutQuad
		a.From = at(func(t *Transform) { t.Scale = 0 })
	case AnimScaleDown:
		a.Duration, a.Ease = scaleDuration, ease.InQuad
		a.To = at(func(t *Transform) { t.Scale = 0 })
	case AnimRollFromDown:
		a.Duration, a.Ease = rollDuration, ease.OutQuad
		a.From = at(func(t *Transform) { t.TranslateY = 1; t.Rotation = -2 * math.Pi })
	case AnimRollToDown:
		a.Duration, a.Ease = rollDuration, ease.InQuad
		a.To = at(func(t *Transform) { t.TranslateY = 1; t.Rotation = 2 * math.Pi })
	case AnimRollFromRight:
		a.Duration, a.Ease = rollDuration, ease.OutQuad
		a.From = at(func(t *Transform) { t.TranslateX = 1; t.Rotation = -2 * math.Pi })
	case AnimRollToRight:
		a.Duration, a.Ease = rollDuration, ease.InQuad
		a.To = at(func(t *Transform) { t.TranslateX = 1; t.Rotation = 2 * math.Pi })
	case AnimJumpFromDown:
		a.Duration, a.Ease = jumpDuration, ease.OutBack
		a.From = at(func(t *Transform) { t.TranslateY = 1 })
	case AnimJumpToDown:
		a.Duration, a.Ease = jumpDuration, ease.InBack
		a.To = at(func(t *Transform) { t.TranslateY = 1 })
	case AnimJumpFromRight:
		a.Duration, a.Ease = jumpDuration, ease.OutBack
		a.From = at(func(t *Transform) { t.TranslateX = 1 })
	case AnimJumpToRight:
		a.Duration, a.Ease = jumpDuration, ease.InBack
		a.To = at(func(t *Transform) { t.TranslateX = 1 })
	default:
		return nil
	}
	return a
}

// --- Tweens ---

// TweenGroup animates up to 5 transform fields of a Button simultaneously.
// The host calls Update(dt) every tick while the button animates; values
// are applied immediately and the group reports Done once every tween has
// finished.
type TweenGroup struct {
	tweens [5]*gween.Tween
	count  int
	fields [5]*float64
	Done   bool
}

func (g *TweenGroup) add(field *float64, from, to float64, duration float32, fn ease.TweenFunc) {
	*field = from
	if from == to {
		return
	}
	g.tweens[g.count] = gween.New(float32(from), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// Update advances all tweens by dt seconds and writes the values to the
// target transform.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenTransform creates a TweenGroup that animates the button's transform
// from one value to another. Fields that do not change are set once and not
// tweened.
func TweenTransform(b *Button, from, to Transform, duration float32, fn ease.TweenFunc) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	g := &TweenGroup{}
	t := &b.transform
	g.add(&t.Alpha, from.Alpha, to.Alpha, duration, fn)
	g.add(&t.Scale, from.Scale, to.Scale, duration, fn)
	g.add(&t.TranslateX, from.TranslateX, to.TranslateX, duration, fn)
	g.add(&t.TranslateY, from.TranslateY, to.TranslateY, duration, fn)
	g.add(&t.Rotation, from.Rotation, to.Rotation, duration, fn)
	return g
}

// TweenTranslation creates a TweenGroup that slides the button by (dx, dy)
// pixels from its current position.
func TweenTranslation(b *Button, dx, dy float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	to := identityTransform
	to.TranslateX, to.TranslateY = dx, dy
	return TweenTransform(b, identityTransform, to, duration, fn)
}

// --- Button animation ---

// Transform returns the current presentation transform.
func (b *Button) Transform() Transform { return b.transform }

// Animating reports whether an animation is in flight.
func (b *Button) Animating() bool {
	return b.tween != nil && !b.tween.Done
}

// StartAnimation starts a. It is a no-op when a is nil or another animation
// is still running.
func (b *Button) StartAnimation(a *Animation) {
	if a == nil || b.Animating() {
		return
	}
	w, h := b.hostSize()
	from, to := a.resolve(w, h)
	b.startTween(TweenTransform(b, from, to, a.seconds(), a.Ease), nil)
	b.log().WithField("animation", a.Name).Debug("animation started")
}

func (b *Button) startTween(g *TweenGroup, onEnd func()) {
	b.tween = g
	b.onAnimEnd = onEnd
	b.Invalidate()
}

// updateAnimation advances the running animation by dt seconds. When it ends
// the transform returns to identity and the end callback runs.
func (b *Button) updateAnimation(dt float32) {
	if b.tween == nil {
		return
	}
	b.tween.Update(dt)
	if !b.tween.Done {
		return
	}
	b.tween = nil
	b.transform = identityTransform
	end := b.onAnimEnd
	b.onAnimEnd = nil
	if end != nil {
		end()
	}
	b.Invalidate()
}

// PlayShowAnimation starts the show animation, if any.
func (b *Button) PlayShowAnimation() {
	b.StartAnimation(b.showAnimation)
}

// PlayHideAnimation starts the hide animation, if any.
func (b *Button) PlayHideAnimation() {
	b.StartAnimation(b.hideAnimation)
}

// ShowAnimation returns the animation played by Show.
func (b *Button) ShowAnimation() *Animation { return b.showAnimation }

// SetShowAnimation sets the animation played by Show. Nil disables it.
func (b *Button) SetShowAnimation(a *Animation) {
	b.showAnimation = a
	b.log().Debug("show animation set")
}

// RemoveShowAnimation disables the show animation.
func (b *Button) RemoveShowAnimation() {
	b.SetShowAnimation(AnimNone.Animation())
}

// HideAnimation returns the animation played by Hide and Dismiss.
func (b *Button) HideAnimation() *Animation { return b.hideAnimation }

// SetHideAnimation sets the animation played by Hide and Dismiss. Nil
// disables it.
func (b *Button) SetHideAnimation(a *Animation) {
	b.hideAnimation = a
	b.log().Debug("hide animation set")
}

// RemoveHideAnimation disables the hide animation.
func (b *Button) RemoveHideAnimation() {
	b.SetHideAnimation(AnimNone.Animation())
}

func (b *Button) hostSize() (float64, float64) {
	if b.host == nil {
		return 0, 0
	}
	return b.host.Size()
}
