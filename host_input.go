package fab

import "github.com/hajimehoshi/ebiten/v2"

// --- Constants ---

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Input source ---

// inputSource is the subset of ebiten's input API the host polls. Tests
// substitute a scripted source.
type inputSource interface {
	CursorPosition() (int, int)
	MousePressed() bool
	AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
}

type ebitenInput struct{}

func (ebitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenInput) MousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (ebitenInput) AppendTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return ebiten.AppendTouchIDs(ids)
}

func (ebitenInput) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

// --- Per-pointer state ---

type pointerState struct {
	down  bool
	lastX float64
	lastY float64
}

// hitTest returns the topmost visible button whose circle contains the
// screen point, or nil.
func (h *Host) hitTest(sx, sy float64) *Button {
	for i := len(h.buttons) - 1; i >= 0; i-- {
		b := h.buttons[i]
		if b.visibility != Visible {
			continue
		}
		if b.HitArea().Contains(sx-b.X, sy-b.Y) {
			return b
		}
	}
	return nil
}

// processInput handles injected events first. Real mouse input is skipped
// on frames that consumed one and while an injected press is held. Touches
// are always polled.
func (h *Host) processInput() {
	if !h.processInjectedInput() && !h.injectedDown {
		h.processMousePointer()
	}
	h.processTouchPointers()
}

// processMousePointer handles the mouse as pointer 0.
func (h *Host) processMousePointer() {
	mx, my := h.input.CursorPosition()
	h.processPointer(0, float64(mx), float64(my), h.input.MousePressed())
}

// processTouchPointers handles touch input (pointers 1-9).
func (h *Host) processTouchPointers() {
	touchIDs := h.input.AppendTouchIDs(h.prevTouchIDs[:0])
	h.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := h.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := h.input.TouchPosition(tid)
		h.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && !activeSlots[i] {
			ps := &h.pointers[i]
			if ps.down {
				h.processPointer(i, ps.lastX, ps.lastY, false)
			}
			h.touchUsed[i] = false
			h.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (h *Host) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if h.touchUsed[i] && h.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !h.touchUsed[i] {
			h.touchUsed[i] = true
			h.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer turns a pointer sample into button touch events. A press
// consumed by a button captures the pointer; moves and the release go to the
// captured button in its local coordinates.
func (h *Host) processPointer(pointerID int, sx, sy float64, pressed bool) {
	ps := &h.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.lastX, ps.lastY = sx, sy
		target := h.hitTest(sx, sy)
		if target == nil {
			return
		}
		if target.OnTouchEvent(ActionDown, sx-target.X, sy-target.Y) {
			h.captured[pointerID] = target
			h.emitInteractionEvent(EventPressed, target, pointerID, sx, sy)
		}

	case pressed && ps.down:
		if sx == ps.lastX && sy == ps.lastY {
			return
		}
		ps.lastX, ps.lastY = sx, sy
		b := h.captured[pointerID]
		if b == nil {
			return
		}
		if b.OnTouchEvent(ActionMove, sx-b.X, sy-b.Y) {
			h.emitInteractionEvent(EventReleased, b, pointerID, sx, sy)
		}

	case !pressed && ps.down:
		ps.down = false
		ps.lastX, ps.lastY = sx, sy
		b := h.captured[pointerID]
		h.captured[pointerID] = nil
		if b == nil {
			return
		}
		// A button hidden mid-press never clicks.
		if b.visibility != Visible {
			if b.State() == StatePressed {
				b.OnTouchEvent(ActionCancel, sx-b.X, sy-b.Y)
				h.emitInteractionEvent(EventReleased, b, pointerID, sx, sy)
			}
			return
		}
		if b.OnTouchEvent(ActionUp, sx-b.X, sy-b.Y) {
			h.emitInteractionEvent(EventReleased, b, pointerID, sx, sy)
			h.emitInteractionEvent(EventClick, b, pointerID, sx, sy)
			if b.OnClick != nil {
				b.OnClick(b)
			}
		} else if b.State() == StatePressed {
			b.OnTouchEvent(ActionCancel, sx-b.X, sy-b.Y)
			h.emitInteractionEvent(EventReleased, b, pointerID, sx, sy)
		}

	default:
		ps.lastX, ps.lastY = sx, sy
	}
}
