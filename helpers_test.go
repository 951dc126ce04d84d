package fab

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Fakes shared by the package tests ---

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fakeView records redraw requests.
type fakeView struct {
	invalidated int
	posted      int
	delays      []time.Duration
}

func (v *fakeView) Invalidate()     { v.invalidated++ }
func (v *fakeView) PostInvalidate() { v.posted++ }

func (v *fakeView) PostInvalidateDelayed(d time.Duration) {
	v.delays = append(v.delays, d)
}

// fakeInput is an inputSource with a fixed idle mouse and no touches.
type fakeInput struct {
	x, y    int
	pressed bool
}

func (f *fakeInput) CursorPosition() (int, int) { return f.x, f.y }
func (f *fakeInput) MousePressed() bool         { return f.pressed }

func (f *fakeInput) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID { return ids }

func (f *fakeInput) TouchPosition(ebiten.TouchID) (int, int) { return 0, 0 }

// newTestHost returns a host driven by a fake clock and fake input.
func newTestHost(w, h float64) (*Host, *fakeClock) {
	clock := newFakeClock()
	host := NewHost(w, h, clock)
	host.input = &fakeInput{}
	return host, clock
}

// newFlatButton returns a 56px button without a shadow: the measured box is
// 56x56 and the circle is centered at (28, 28) with radius 28.
func newFlatButton(name string) *Button {
	b := NewButton(name, DefaultMetrics)
	b.SetShadowRadius(0)
	return b
}

// step runs n host updates.
func step(h *Host, n int) {
	for i := 0; i < n; i++ {
		h.Update()
	}
}
