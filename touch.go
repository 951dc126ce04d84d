package fab

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// TouchPoint tracks the current touch location and the last positive one.
// The last coordinates survive Reset so that a ripple keeps its origin after
// the pointer is released.
type TouchPoint struct {
	x, y         float64
	lastX, lastY float64
}

// NewTouchPoint returns a touch point at (x, y).
func NewTouchPoint(x, y float64) TouchPoint {
	var p TouchPoint
	p.SetX(x)
	p.SetY(y)
	return p
}

// X returns the current X coordinate.
func (p *TouchPoint) X() float64 { return p.x }

// Y returns the current Y coordinate.
func (p *TouchPoint) Y() float64 { return p.y }

// LastX returns the last X coordinate that was greater than zero.
func (p *TouchPoint) LastX() float64 { return p.lastX }

// LastY returns the last Y coordinate that was greater than zero.
func (p *TouchPoint) LastY() float64 { return p.lastY }

// SetX sets the current X coordinate. The last X coordinate follows only
// when x > 0.
func (p *TouchPoint) SetX(x float64) {
	p.x = x
	if x > 0 {
		p.lastX = x
	}
}

// SetY sets the current Y coordinate. The last Y coordinate follows only
// when y > 0.
func (p *TouchPoint) SetY(y float64) {
	p.y = y
	if y > 0 {
		p.lastY = y
	}
}

// Reset moves the current point to (0, 0). LastX and LastY are kept.
func (p *TouchPoint) Reset() {
	p.SetX(0)
	p.SetY(0)
}

// IsInsideCircle reports whether the current point lies inside or on the
// circle centered at (cx, cy).
func (p *TouchPoint) IsInsideCircle(cx, cy, radius float64) bool {
	return HitCircle{CenterX: cx, CenterY: cy, Radius: radius}.Contains(p.x, p.y)
}
