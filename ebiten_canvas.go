package fab

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvasLayer is one Save level. A clipped layer redirects drawing into an
// offscreen image that is masked to the clip circle on Restore.
type canvasLayer struct {
	dst      *ebiten.Image
	clipped  bool
	implicit bool
	cx, cy   float64
	r        float64
}

// EbitenCanvas rasterizes onto an ebiten.Image. Circles go through the
// vector package, clipping uses pooled offscreen layers masked with
// BlendMask, and shadow layers are drawn from cached feathered discs.
type EbitenCanvas struct {
	target  *ebiten.Image
	pool    *renderTexturePool
	shadows *shadowCache
	stack   []canvasLayer
}

// NewEbitenCanvas creates a canvas that draws onto target. The pool and
// shadow cache may be shared between canvases; nil allocates private ones.
func NewEbitenCanvas(target *ebiten.Image, pool *renderTexturePool, shadows *shadowCache) *EbitenCanvas {
	if pool == nil {
		pool = &renderTexturePool{}
	}
	if shadows == nil {
		shadows = &shadowCache{}
	}
	return &EbitenCanvas{target: target, pool: pool, shadows: shadows}
}

// Retarget points the canvas at a new image and drops any unbalanced layers.
func (c *EbitenCanvas) Retarget(target *ebiten.Image) {
	for len(c.stack) > 0 {
		c.Restore()
	}
	c.target = target
}

func (c *EbitenCanvas) dst() *ebiten.Image {
	if n := len(c.stack); n > 0 {
		return c.stack[n-1].dst
	}
	return c.target
}

// DrawCircle draws a filled or stroked circle. A shadow layer on p is drawn
// first, offset and blurred.
func (c *EbitenCanvas) DrawCircle(cx, cy, radius float64, p *Paint) {
	dst := c.dst()
	if p.HasShadowLayer() {
		c.drawShadow(dst, cx, cy, radius, p.Shadow)
	}
	clr := p.Color.toRGBA()
	switch p.Style {
	case PaintStroke:
		vector.StrokeCircle(dst, float32(cx), float32(cy), float32(radius), float32(p.StrokeWidth), clr, p.AntiAlias)
	default:
		vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(radius), clr, p.AntiAlias)
	}
}

func (c *EbitenCanvas) drawShadow(dst *ebiten.Image, cx, cy, radius float64, s ShadowLayer) {
	disc := c.shadows.get(radius, s.Radius)
	half := float64(disc.Bounds().Dx()) / 2
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(cx+s.DX-half, cy+s.DY-half)
	op.ColorScale.ScaleWithColor(s.Color.toRGBA())
	dst.DrawImage(disc, &op)
}

// DrawImage scales img into bounds.
func (c *EbitenCanvas) DrawImage(img *ebiten.Image, bounds Rect) {
	if img == nil {
		return
	}
	sb := img.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(bounds.Width/float64(sb.Dx()), bounds.Height/float64(sb.Dy()))
	op.GeoM.Translate(bounds.X, bounds.Y)
	op.Filter = ebiten.FilterLinear
	c.dst().DrawImage(img, &op)
}

// Save pushes a layer. Drawing continues on the current destination until
// ClipCircle is called.
func (c *EbitenCanvas) Save() {
	c.stack = append(c.stack, canvasLayer{dst: c.dst()})
}

// ClipCircle restricts drawing on the current layer to a circle. Clipping an
// already clipped layer, or clipping without a Save, pushes an implicit layer
// that the next Restore unwinds as well.
func (c *EbitenCanvas) ClipCircle(cx, cy, radius float64) {
	if n := len(c.stack); n == 0 || c.stack[n-1].clipped {
		c.stack = append(c.stack, canvasLayer{dst: c.dst(), implicit: true})
	}
	top := &c.stack[len(c.stack)-1]
	b := c.target.Bounds()
	top.dst = c.pool.Acquire(b.Dx(), b.Dy())
	top.clipped = true
	top.cx, top.cy, top.r = cx, cy, radius
}

// Restore pops a layer. A clipped layer is masked to its circle and
// composited onto the layer below.
func (c *EbitenCanvas) Restore() {
	for len(c.stack) > 0 {
		n := len(c.stack)
		top := c.stack[n-1]
		c.stack = c.stack[:n-1]
		if top.clipped {
			c.composite(top)
		}
		if !top.implicit {
			return
		}
	}
}

func (c *EbitenCanvas) composite(l canvasLayer) {
	b := l.dst.Bounds()
	mask := c.pool.Acquire(b.Dx(), b.Dy())
	vector.DrawFilledCircle(mask, float32(l.cx), float32(l.cy), float32(l.r), ColorWhite.toRGBA(), true)
	l.dst.DrawImage(mask, &ebiten.DrawImageOptions{Blend: BlendMask.EbitenBlend()})
	c.pool.Release(mask)

	c.dst().DrawImage(l.dst, &ebiten.DrawImageOptions{Blend: BlendNormal.EbitenBlend()})
	c.pool.Release(l.dst)
}
