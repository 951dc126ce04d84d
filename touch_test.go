package fab

import "testing"

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 28, CenterY: 28, Radius: 28}
	tests := []struct {
		x, y float64
		want bool
	}{
		{28, 28, true},
		{0, 28, true},  // on the edge
		{56, 28, true}, // on the edge
		{0, 0, false},  // box corner
		{56, 56, false},
		{28, 56.5, false},
	}
	for _, tt := range tests {
		if got := c.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestTouchPointLastFollowsPositiveValues(t *testing.T) {
	p := NewTouchPoint(10, 20)
	if p.LastX() != 10 || p.LastY() != 20 {
		t.Fatalf("last = (%v, %v), want (10, 20)", p.LastX(), p.LastY())
	}

	p.SetX(0)
	p.SetY(-5)
	if p.X() != 0 || p.Y() != -5 {
		t.Errorf("current = (%v, %v), want (0, -5)", p.X(), p.Y())
	}
	if p.LastX() != 10 || p.LastY() != 20 {
		t.Errorf("last = (%v, %v), want (10, 20)", p.LastX(), p.LastY())
	}

	p.SetX(3)
	if p.LastX() != 3 {
		t.Errorf("LastX = %v, want 3", p.LastX())
	}
}

func TestTouchPointResetKeepsLast(t *testing.T) {
	p := NewTouchPoint(12, 34)
	p.Reset()
	if p.X() != 0 || p.Y() != 0 {
		t.Errorf("current = (%v, %v), want (0, 0)", p.X(), p.Y())
	}
	if p.LastX() != 12 || p.LastY() != 34 {
		t.Errorf("last = (%v, %v), want (12, 34)", p.LastX(), p.LastY())
	}
}

func TestTouchPointIsInsideCircle(t *testing.T) {
	p := NewTouchPoint(30, 40)
	if !p.IsInsideCircle(28, 28, 28) {
		t.Error("(30, 40) should be inside the circle")
	}
	p.Reset()
	if p.IsInsideCircle(28, 28, 28) {
		t.Error("(0, 0) should be outside the circle")
	}
}
