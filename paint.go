package fab

// PaintStyle selects whether a shape is filled or outlined.
type PaintStyle uint8

const (
	PaintFill   PaintStyle = iota // fill the shape interior
	PaintStroke                   // outline the shape with StrokeWidth
)

// ShadowLayer is a blurred copy of the shape drawn beneath it. A zero Radius
// disables the layer.
type ShadowLayer struct {
	Radius float64
	DX, DY float64
	Color  Color
}

// Paint is the brush handed to a Canvas. A Button owns a single Paint and
// resets it before each sub-drawing step; callers never assume a style
// survives from one step to the next.
type Paint struct {
	Style       PaintStyle
	Color       Color
	StrokeWidth float64
	AntiAlias   bool
	Shadow      ShadowLayer
}

// Reset restores the default brush: opaque black fill, anti-aliased, no
// shadow layer.
func (p *Paint) Reset() {
	*p = Paint{Color: ColorBlack, AntiAlias: true}
}

// SetShadowLayer attaches a shadow layer to the brush.
func (p *Paint) SetShadowLayer(radius, dx, dy float64, c Color) {
	p.Shadow = ShadowLayer{Radius: radius, DX: dx, DY: dy, Color: c}
}

// HasShadowLayer reports whether a shadow layer is attached.
func (p *Paint) HasShadowLayer() bool {
	return p.Shadow.Radius > 0
}
