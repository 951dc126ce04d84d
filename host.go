package fab

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

// EventSink is the interface for optional ECS integration.
// When set on a Host, interaction events are forwarded to the ECS.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	ButtonID  uint32
	EntityID  uint32
	PointerID int
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
}

// elevationShadowAlpha is the opacity of the shadow cast under an elevated
// button.
const elevationShadowAlpha = 0.3

// Host owns a set of buttons and drives them: it runs scheduled redraw
// tasks, advances animations, routes pointer input and composites each
// button's cached frame onto the screen. Buttons are painted in attach
// order; the last attached button is on top and hit first.
type Host struct {
	// ClearColor fills the screen before buttons are composited by Run.
	ClearColor Color

	width, height float64
	updateFunc    func() error

	buttons      []*Button
	disappearing []*Button // removed while animating; drawn until the animation ends
	ids          *IDAllocator
	scheduler    *Scheduler
	sink         EventSink

	debug bool
	stats debugStats

	// Render state
	pool    renderTexturePool
	shadows shadowCache
	canvas  *EbitenCanvas

	// Input state
	input        inputSource
	captured     [maxPointers]*Button
	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []syntheticPointerEvent
	injectedDown bool
	testRunner   *TestRunner

	// Screenshots
	ScreenshotDir   string
	screenshotQueue []string
}

// NewHost creates a host of the given size in pixels. A nil clock uses the
// system clock.
func NewHost(width, height float64, clock Clock) *Host {
	h := &Host{
		width:         width,
		height:        height,
		ids:           &IDAllocator{},
		scheduler:     NewScheduler(clock),
		input:         ebitenInput{},
		ScreenshotDir: "screenshots",
	}
	h.canvas = NewEbitenCanvas(nil, &h.pool, &h.shadows)
	return h
}

// Size returns the host size in pixels.
func (h *Host) Size() (width, height float64) {
	return h.width, h.height
}

// SetSize changes the host size. Moves are bounded by it.
func (h *Host) SetSize(width, height float64) {
	h.width, h.height = width, height
}

// Scheduler returns the task queue redraw requests are posted to.
func (h *Host) Scheduler() *Scheduler { return h.scheduler }

// IDs returns the allocator used for buttons attached without an id.
func (h *Host) IDs() *IDAllocator { return h.ids }

// SetIDAllocator shares an allocator between hosts.
func (h *Host) SetIDAllocator(a *IDAllocator) {
	if a != nil {
		h.ids = a
	}
}

// SetEventSink sets the optional ECS bridge.
func (h *Host) SetEventSink(sink EventSink) {
	h.sink = sink
}

// log returns the host's entry on the current package logger.
func (h *Host) log() *log.Entry { return componentLog("host") }

// SetDebugMode enables or disables per-frame stats logging at debug level.
func (h *Host) SetDebugMode(enabled bool) {
	h.debug = enabled
}

// Buttons returns the attached buttons in paint order. The returned slice
// MUST NOT be mutated.
func (h *Host) Buttons() []*Button {
	return h.buttons
}

// Add attaches b, assigning an id if it has none. A button attached to
// another host is moved.
func (h *Host) Add(b *Button) {
	if b.host == h {
		return
	}
	if b.host != nil {
		b.host.Remove(b)
	}
	h.dropDisappearing(b)
	if b.ID == 0 {
		b.ID = h.ids.Next()
	}
	b.host = h
	b.setView(hostView{h: h, b: b})
	if b.visibility == Gone {
		b.visibility = Visible
	}
	b.requestLayout()
	h.buttons = append(h.buttons, b)
	h.log().WithField("button", b.ID).Debug("button attached")
}

// Remove detaches b. A button that is still animating keeps being drawn
// until its animation ends.
func (h *Host) Remove(b *Button) {
	if b.host != h {
		return
	}
	for i, o := range h.buttons {
		if o == b {
			copy(h.buttons[i:], h.buttons[i+1:])
			h.buttons[len(h.buttons)-1] = nil
			h.buttons = h.buttons[:len(h.buttons)-1]
			break
		}
	}
	for i := range h.captured {
		if h.captured[i] == b {
			h.captured[i] = nil
			b.OnTouchEvent(ActionCancel, 0, 0)
		}
	}
	b.host = nil
	b.setView(detachedView{b})
	if b.Animating() {
		h.disappearing = append(h.disappearing, b)
	} else {
		b.releaseCache()
	}
	h.log().WithField("button", b.ID).Debug("button detached")
}

func (h *Host) dropDisappearing(b *Button) {
	for i, o := range h.disappearing {
		if o == b {
			h.disappearing = append(h.disappearing[:i], h.disappearing[i+1:]...)
			return
		}
	}
}

// Update runs due redraw tasks, advances animations by one tick and
// processes input.
func (h *Host) Update() {
	var t0 time.Time
	if h.debug {
		t0 = time.Now()
	}

	h.stats.tasksRun = h.scheduler.RunDue()

	dt := float32(1.0 / float64(ebiten.TPS()))
	for _, b := range h.buttons {
		b.updateAnimation(dt)
	}
	if len(h.disappearing) > 0 {
		kept := h.disappearing[:0]
		for _, b := range h.disappearing {
			b.updateAnimation(dt)
			if b.Animating() {
				kept = append(kept, b)
			} else {
				b.releaseCache()
			}
		}
		for i := len(kept); i < len(h.disappearing); i++ {
			h.disappearing[i] = nil
		}
		h.disappearing = kept
	}

	if h.testRunner != nil {
		h.testRunner.step(h)
	}
	h.processInput()

	if h.debug {
		h.stats.updateTime = time.Since(t0)
	}
}

// Draw redraws every button that requested a frame into its cached image,
// then composites all drawable buttons onto screen.
func (h *Host) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if h.debug {
		t0 = time.Now()
	}
	h.stats.redrawn = 0

	for _, b := range h.buttons {
		h.render(b)
	}
	for _, b := range h.disappearing {
		h.render(b)
	}

	if h.debug {
		h.stats.renderTime = time.Since(t0)
		t0 = time.Now()
	}

	h.stats.composited = 0
	for _, b := range h.buttons {
		h.composite(screen, b)
	}
	for _, b := range h.disappearing {
		h.composite(screen, b)
	}

	if h.debug {
		h.stats.compositeTime = time.Since(t0)
		h.stats.pending = h.scheduler.Pending()
		h.stats.nextTask = 0
		if due, ok := h.scheduler.NextDue(); ok {
			h.stats.nextTask = due.Sub(h.scheduler.clock.Now())
		}
		h.debugLog(h.stats)
	}

	h.flushScreenshots(screen)
}

// drawable reports whether b should be rendered this frame: visible, or
// hidden but still playing its hide animation.
func drawable(b *Button) bool {
	return b.visibility == Visible || b.Animating()
}

// render draws b into its cache if it requested a frame.
func (h *Host) render(b *Button) {
	if !drawable(b) || (!b.dirty && b.cache != nil) {
		return
	}
	w, ht := b.MeasuredSize()
	if w <= 0 || ht <= 0 {
		b.dirty = false
		return
	}
	if b.cache != nil {
		if cb := b.cache.Bounds(); cb.Dx() != w || cb.Dy() != ht {
			b.cache.Deallocate()
			b.cache = nil
		}
	}
	if b.cache == nil {
		b.cache = ebiten.NewImage(w, ht)
	} else {
		b.cache.Clear()
	}

	b.dirty = false
	h.canvas.Retarget(b.cache)
	b.Draw(h.canvas)
	h.canvas.Retarget(nil)
	h.stats.redrawn++
}

// composite draws b's cached frame at its position with its animation
// transform applied. Elevated buttons get a soft shadow under their outline.
func (h *Host) composite(dst *ebiten.Image, b *Button) {
	if !drawable(b) || b.cache == nil {
		return
	}
	t := b.transform
	if t.Alpha <= 0 || t.Scale == 0 {
		return
	}

	cx, cy := b.CenterX(), b.CenterY()
	var geo ebiten.GeoM
	geo.Translate(-cx, -cy)
	geo.Scale(t.Scale, t.Scale)
	geo.Rotate(t.Rotation)
	geo.Translate(cx+b.X+t.TranslateX, cy+b.Y+t.TranslateY)

	if b.HasElevation() && b.outline.Width > 0 {
		r := b.outline.Width / 2
		disc := h.shadows.get(r, b.elevation)
		half := float64(disc.Bounds().Dx()) / 2
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(b.outline.X+r-half, b.outline.Y+r-half+b.elevation/2)
		op.GeoM.Concat(geo)
		op.ColorScale.ScaleWithColor(ColorBlack.toRGBA())
		op.ColorScale.ScaleAlpha(float32(elevationShadowAlpha * t.Alpha))
		dst.DrawImage(disc, &op)
	}

	op := &ebiten.DrawImageOptions{GeoM: geo, Filter: ebiten.FilterLinear}
	op.ColorScale.ScaleAlpha(float32(t.Alpha))
	dst.DrawImage(b.cache, op)
	h.stats.composited++
}

// --- View ---

// hostView routes a button's redraw requests through the host: immediate
// requests mark the button dirty, posted ones go through the scheduler.
type hostView struct {
	h *Host
	b *Button
}

func (v hostView) markDirty() { v.b.dirty = true }

func (v hostView) Invalidate() { v.markDirty() }

func (v hostView) PostInvalidate() { v.h.scheduler.Post(v.markDirty) }

func (v hostView) PostInvalidateDelayed(d time.Duration) {
	v.h.scheduler.PostDelayed(v.markDirty, d)
}

// --- ECS bridge ---

func (h *Host) emitInteractionEvent(eventType EventType, b *Button, pointerID int, sx, sy float64) {
	if h.sink == nil || b == nil || b.EntityID == 0 {
		return
	}
	h.sink.EmitEvent(InteractionEvent{
		Type:      eventType,
		ButtonID:  b.ID,
		EntityID:  b.EntityID,
		PointerID: pointerID,
		GlobalX:   sx,
		GlobalY:   sy,
		LocalX:    sx - b.X,
		LocalY:    sy - b.Y,
	})
}
