package fab

import "time"

// View is the redraw surface an Invalidator drives. Invalidate is the direct
// request used for discrete state changes; PostInvalidate and
// PostInvalidateDelayed schedule the next animation frame.
type View interface {
	Invalidate()
	PostInvalidate()
	PostInvalidateDelayed(delay time.Duration)
}

// Invalidator accumulates redraw requests made while a frame is drawn and
// applies them once at the end of the frame. At most one request of each kind
// is pending; repeated requests within a frame overwrite each other.
type Invalidator struct {
	view            View
	required        bool
	delayedRequired bool
	delay           time.Duration
}

// NewInvalidator creates an Invalidator that issues its requests to view.
// A nil view turns Invalidate into a plain reset.
func NewInvalidator(view View) *Invalidator {
	return &Invalidator{view: view}
}

// RequireInvalidation marks that the view must be redrawn right after the
// current frame.
func (iv *Invalidator) RequireInvalidation() {
	iv.required = true
}

// RequireDelayedInvalidation marks that the view must be redrawn after the
// configured delay.
func (iv *Invalidator) RequireDelayedInvalidation() {
	iv.delayedRequired = true
}

// SetInvalidationDelay sets the delay used by the delayed request.
func (iv *Invalidator) SetInvalidationDelay(d time.Duration) {
	iv.delay = d
}

// InvalidationRequired reports whether an immediate redraw is pending.
func (iv *Invalidator) InvalidationRequired() bool { return iv.required }

// DelayedInvalidationRequired reports whether a delayed redraw is pending.
func (iv *Invalidator) DelayedInvalidationRequired() bool { return iv.delayedRequired }

// InvalidationDelay returns the pending delay.
func (iv *Invalidator) InvalidationDelay() time.Duration { return iv.delay }

// Invalidate issues the pending requests and resets the invalidator. It is
// called exactly once at the end of every draw pass.
func (iv *Invalidator) Invalidate() {
	if iv.view != nil {
		if iv.required {
			iv.view.PostInvalidate()
		}
		if iv.delayedRequired {
			iv.view.PostInvalidateDelayed(iv.delay)
		}
	}
	iv.reset()
}

func (iv *Invalidator) reset() {
	iv.required = false
	iv.delayedRequired = false
	iv.delay = 0
}
