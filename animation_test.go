package fab

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

// runUntilIdle updates the host until b stops animating, failing after
// maxFrames.
func runUntilIdle(t *testing.T, h *Host, b *Button, maxFrames int) int {
	t.Helper()
	for i := 1; i <= maxFrames; i++ {
		h.Update()
		if !b.Animating() {
			return i
		}
	}
	t.Fatalf("button still animating after %d frames", maxFrames)
	return 0
}

func TestAnimationPresetNames(t *testing.T) {
	for p := AnimNone; p <= AnimJumpToRight; p++ {
		got, err := ParseAnimationPreset(p.String())
		if err != nil {
			t.Errorf("ParseAnimationPreset(%q): %v", p.String(), err)
			continue
		}
		if got != p {
			t.Errorf("ParseAnimationPreset(%q) = %v, want %v", p.String(), got, p)
		}
	}
	if _, err := ParseAnimationPreset("wobble"); err == nil {
		t.Error("unknown preset should fail")
	}
	if got, _ := ParseAnimationPreset(" Fade_Out "); got != AnimFadeOut {
		t.Errorf("ParseAnimationPreset(%q) = %v, want fade_out", " Fade_Out ", got)
	}
	if AnimationPreset(200).String() != "unknown" {
		t.Errorf("String of out of range preset = %q", AnimationPreset(200).String())
	}
}

func TestAnimationPresets(t *testing.T) {
	if AnimNone.Animation() != nil {
		t.Error("AnimNone should have no animation")
	}
	tests := []struct {
		preset   AnimationPreset
		duration time.Duration
		from, to Transform
	}{
		{AnimFadeIn, 300 * time.Millisecond, Transform{Alpha: 0, Scale: 1}, identityTransform},
		{AnimFadeOut, 300 * time.Millisecond, identityTransform, Transform{Alpha: 0, Scale: 1}},
		{AnimScaleUp, 200 * time.Millisecond, Transform{Alpha: 1, Scale: 0}, identityTransform},
		{AnimScaleDown, 200 * time.Millisecond, identityTransform, Transform{Alpha: 1, Scale: 0}},
		{AnimJumpFromDown, 400 * time.Millisecond, Transform{Alpha: 1, Scale: 1, TranslateY: 1}, identityTransform},
		{AnimJumpToRight, 400 * time.Millisecond, identityTransform, Transform{Alpha: 1, Scale: 1, TranslateX: 1}},
		{AnimRollToDown, 500 * time.Millisecond, identityTransform, Transform{Alpha: 1, Scale: 1, TranslateY: 1, Rotation: 2 * math.Pi}},
	}
	for _, tt := range tests {
		a := tt.preset.Animation()
		if a == nil {
			t.Errorf("%v: no animation", tt.preset)
			continue
		}
		if a.Duration != tt.duration {
			t.Errorf("%v: duration = %v, want %v", tt.preset, a.Duration, tt.duration)
		}
		if a.From != tt.from || a.To != tt.to {
			t.Errorf("%v: %+v -> %+v, want %+v -> %+v", tt.preset, a.From, a.To, tt.from, tt.to)
		}
		if a.Name != tt.preset.String() {
			t.Errorf("%v: name = %q", tt.preset, a.Name)
		}
	}
}

func TestAnimationResolveScalesTranslation(t *testing.T) {
	a := AnimRollFromRight.Animation()
	from, to := a.resolve(400, 300)
	if from.TranslateX != 400 || from.TranslateY != 0 {
		t.Errorf("from translation = (%v, %v), want (400, 0)", from.TranslateX, from.TranslateY)
	}
	if to != identityTransform {
		t.Errorf("to = %+v, want identity", to)
	}
}

func TestTweenTransformInterpolates(t *testing.T) {
	b := NewButton("fab", DefaultMetrics)
	from := Transform{Alpha: 0, Scale: 1}
	g := TweenTransform(b, from, identityTransform, 1, ease.Linear)

	if b.Transform().Alpha != 0 {
		t.Fatalf("initial alpha = %v, want 0", b.Transform().Alpha)
	}
	g.Update(0.5)
	if a := b.Transform().Alpha; math.Abs(a-0.5) > 0.01 {
		t.Errorf("alpha at half time = %v, want ~0.5", a)
	}
	if g.Done {
		t.Error("group done at half time")
	}
	g.Update(0.5)
	if !g.Done {
		t.Error("group not done at full time")
	}
	if a := b.Transform().Alpha; math.Abs(a-1) > 1e-6 {
		t.Errorf("final alpha = %v, want 1", a)
	}
}

func TestTweenTransformSkipsUnchangedFields(t *testing.T) {
	b := NewButton("fab", DefaultMetrics)
	g := TweenTransform(b, identityTransform, identityTransform, 1, nil)
	if g.count != 0 {
		t.Errorf("count = %d, want 0", g.count)
	}
	g.Update(0.01)
	if !g.Done {
		t.Error("an empty group should finish on its first update")
	}
}

func TestHideAnimationKeepsButtonDrawable(t *testing.T) {
	h, _ := newTestHost(400, 400)
	b := newFlatButton("fab")
	b.SetHideAnimation(AnimFadeOut.Animation())
	h.Add(b)

	b.Hide()
	if !b.IsHidden() || !b.Animating() {
		t.Fatalf("hidden = %v, animating = %v, want true, true", b.IsHidden(), b.Animating())
	}
	if !drawable(b) {
		t.Error("a hiding button should stay drawable while animating")
	}
	if h.hitTest(28, 28) != nil {
		t.Error("a hidden button should not be hit")
	}

	h.Update()
	if a := b.Transform().Alpha; a >= 1 || a <= 0 {
		t.Errorf("alpha after one frame = %v, want in (0, 1)", a)
	}

	runUntilIdle(t, h, b, 60)
	if drawable(b) {
		t.Error("a hidden button should not be drawable after its animation")
	}
	if b.Transform() != identityTransform {
		t.Errorf("transform after animation = %+v, want identity", b.Transform())
	}
}

func TestShowAnimationPlaysOnShow(t *testing.T) {
	h, _ := newTestHost(400, 400)
	b := newFlatButton("fab")
	b.SetShowAnimation(AnimScaleUp.Animation())
	h.Add(b)

	b.Show()
	if b.Animating() {
		t.Error("Show on a visible button should do nothing")
	}

	b.Hide()
	b.Show()
	if b.IsHidden() || !b.Animating() {
		t.Fatalf("hidden = %v, animating = %v, want false, true", b.IsHidden(), b.Animating())
	}
	if b.Transform().Scale != 0 {
		t.Errorf("scale at start = %v, want 0", b.Transform().Scale)
	}
	runUntilIdle(t, h, b, 60)
	if b.Transform().Scale != 1 {
		t.Errorf("scale after animation = %v, want 1", b.Transform().Scale)
	}
}

func TestStartAnimationIgnoredWhileRunning(t *testing.T) {
	h, _ := newTestHost(400, 400)
	b := newFlatButton("fab")
	h.Add(b)

	b.StartAnimation(AnimFadeOut.Animation())
	first := b.tween
	b.StartAnimation(AnimScaleDown.Animation())
	if b.tween != first {
		t.Error("a second animation replaced the running one")
	}
	b.StartAnimation(nil)
	if b.tween != first {
		t.Error("a nil animation replaced the running one")
	}
}

func TestRemoveAnimations(t *testing.T) {
	b := NewButton("fab", DefaultMetrics)
	b.SetShowAnimation(AnimFadeIn.Animation())
	b.SetHideAnimation(AnimFadeOut.Animation())
	b.RemoveShowAnimation()
	b.RemoveHideAnimation()
	if b.ShowAnimation() != nil || b.HideAnimation() != nil {
		t.Error("animations should be nil after removal")
	}
}

func TestDismissWithAnimation(t *testing.T) {
	h, _ := newTestHost(400, 400)
	b := newFlatButton("fab")
	b.SetHideAnimation(AnimScaleDown.Animation())
	h.Add(b)

	b.Dismiss()
	if !b.IsDismissed() || b.Host() != nil {
		t.Fatal("button should be detached after Dismiss")
	}
	if b.Visibility() != Gone {
		t.Errorf("Visibility = %v, want Gone", b.Visibility())
	}
	if len(h.Buttons()) != 0 {
		t.Errorf("Buttons = %d, want 0", len(h.Buttons()))
	}
	if len(h.disappearing) != 1 {
		t.Fatalf("disappearing = %d, want 1", len(h.disappearing))
	}

	runUntilIdle(t, h, b, 60)
	h.Update()
	if len(h.disappearing) != 0 {
		t.Errorf("disappearing = %d after the animation, want 0", len(h.disappearing))
	}

	b.Dismiss() // already dismissed
	h.Add(b)
	if b.Visibility() != Visible || b.IsDismissed() {
		t.Error("re-attached button should be visible")
	}
}
